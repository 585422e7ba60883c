// SPDX-License-Identifier: MIT

// Package lcs computes minimal edit scripts between two token sequences
// using the longest-common-subsequence (LCS) dynamic program.
//
// 🚀 What is an edit script?
//
//	Given A ("old") and B ("new"), an edit script is an ordered list of
//	operations that turns A into B using only three moves:
//	  • Keep        — the token is present in both sequences
//	  • DeleteFromA — the token exists only in A
//	  • InsertFromB — the token exists only in B
//	There is no substitution. The script length is exactly m + n − L,
//	where L is the length of the longest common subsequence.
//
// ✨ Key features:
//   - exact LCS alignment over any comparable token type (generics)
//   - custom equality via ComputeFunc / BuildFunc
//   - deterministic tie-break (strict diagonal, then carry-down unless the
//     left neighbour is strictly greater)
//   - score rows use O(n) memory; only the choice matrix is O(m·n)
//   - length-only mode (Length) with O(min(m,n)) memory
//   - overflow-safe size guard (ErrTooLarge) before allocation
//   - replay helpers (Apply, Revert, Common) and change ranges (Script.Changes)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqdiff/lcs"
//
//	script, err := lcs.Compute(a, b, lcs.WithMaxCells(1<<24))
//	if err != nil {
//	  // ErrTooLarge: inputs exceed the configured budget
//	}
//	for _, c := range script.Changes() {
//	  fmt.Printf("@%d,%d -%d +%d\n", c.P1, c.P2, c.Del, c.Ins)
//	}
//
// Two phases:
//
//	Build      — forward pass, fills the (m+1)×(n+1) choice matrix while
//	             keeping only two rolling score rows.
//	Traceback  — backward pass from (m, n) to (0, 0), filling an output
//	             buffer of exactly m+n−L slots from the back.
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) bytes for the choice matrix (one byte per cell),
//     O(n) ints for scores.
//
// The engine performs no I/O and keeps no state between calls, so
// independent computations may run concurrently without locking. Callers
// that need bounded latency should bound m and n (see WithMaxCells).
package lcs
