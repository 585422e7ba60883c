// SPDX-License-Identifier: MIT
// Package lcs_test contains shared test helpers.
//
// Purpose:
//   - Provide an independent reference LCS-length routine (full 2-D table)
//     to cross-check the rolling-row builder.
//   - Provide an independent flat-buffer implementation of the recurrence
//     and traceback (integer codes 0 = good only, 1 = bad only, 2 = common)
//     to pin the exact tie-break op by op.
//   - Provide deterministic random sequence generators.

package lcs_test

import (
	"math/rand"

	"github.com/katalvlaran/seqdiff/lcs"
)

const (
	// seedDet is the deterministic seed for generated inputs.
	seedDet = int64(42)

	// alphabetSmall keeps collisions frequent so ties are exercised.
	alphabetSmall = 4

	// maxLenSmall bounds generated sequence lengths in property tests.
	maxLenSmall = 14
)

// refLength is the textbook LCS length over a full (m+1)×(n+1) table.
func refLength(a, b []int) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for j := range dp {
		dp[j] = make([]int, n+1)
	}
	for j := 1; j <= m; j++ {
		for i := 1; i <= n; i++ {
			if a[j-1] == b[i-1] {
				dp[j][i] = dp[j-1][i-1] + 1
			} else {
				dp[j][i] = max(dp[j-1][i], dp[j][i-1])
			}
		}
	}

	return dp[m][n]
}

// randSeq returns a non-nil sequence of length in [0, maxLen] over [0, alphabet).
func randSeq(r *rand.Rand, maxLen, alphabet int) []int {
	s := make([]int, r.Intn(maxLen+1))
	for k := range s {
		s[k] = r.Intn(alphabet)
	}

	return s
}

// seq returns [from, from+1, ..., from+n-1].
func seq(from, n int) []int {
	s := make([]int, n)
	for k := range s {
		s[k] = from + k
	}

	return s
}

// isSubsequence reports whether sub appears in s in order.
func isSubsequence(sub, s []int) bool {
	k := 0
	for _, v := range s {
		if k < len(sub) && sub[k] == v {
			k++
		}
	}

	return k == len(sub)
}

// Reference choice codes.
const (
	refGoodOnly = 0
	refBadOnly  = 1
	refCommon   = 2
)

// refScript computes the edit script with one flat choice buffer, two score rows
// swapped per good token, traceback from (len(good), len(bad)) filling the
// path from its end. Returned codes are mapped onto lcs op codes.
func refScript(good, bad []int) lcs.Script {
	n := len(bad)
	opt := make([]int, n+1)
	update := make([]int, n+1)
	choices := make([]int, (len(good)+1)*(n+1))
	for i := 0; i <= n; i++ {
		choices[i] = refBadOnly
	}
	current := 0
	for _, e := range good {
		current += n + 1
		update[0] = opt[0]
		choices[current] = refGoodOnly
		optI := opt[0] + 1
		updateI := update[0]
		for i := 0; i < n; i++ {
			optI1 := opt[i+1]
			best, choice := optI1, refGoodOnly
			if e == bad[i] && best < optI && updateI < optI {
				best, choice = optI, refCommon
			}
			if best < updateI {
				best, choice = updateI, refBadOnly
			}
			update[i+1] = best
			choices[current+i+1] = choice
			updateI = best
			optI = optI1 + 1
		}
		opt, update = update, opt
	}

	i, j := len(good), n
	path := make(lcs.Script, len(good)+n-opt[n])
	k := len(path)
	for i != 0 || j != 0 {
		choice := choices[i*(n+1)+j]
		k--
		switch choice {
		case refCommon:
			path[k] = lcs.Keep
		case refBadOnly:
			path[k] = lcs.InsertFromB
		default:
			path[k] = lcs.DeleteFromA
		}
		if choice != refGoodOnly {
			j--
		}
		if choice != refBadOnly {
			i--
		}
	}

	return path
}
