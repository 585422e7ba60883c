// SPDX-License-Identifier: MIT

package lcs

// Compute returns the minimal edit script turning a into b.
//
// Degenerate inputs:
//   - a empty → len(b) InsertFromB codes
//   - b empty → len(a) DeleteFromA codes
//   - both empty → empty (non-nil) script
//
// Ties between equally long common subsequences are broken by the builder's
// comparison order: a match is kept only when the diagonal is strictly
// better than both the carry-down and the left neighbour; otherwise the
// carry-down wins unless the left neighbour is strictly greater. Repeated
// calls on the same inputs return identical scripts.
//
// Errors:
//   - ErrTooLarge — (len(a)+1)·(len(b)+1) exceeds the cell budget.
//
// Complexity: O(m·n) time and memory.
//
// Example:
//
//	script, _ := Compute([]int{1, 2, 3}, []int{3, 2, 1})
//	fmt.Println(script) // ++=--
func Compute[T comparable](a, b []T, opts ...Option) (Script, error) {
	t, err := Build(a, b, opts...)
	if err != nil {
		return nil, err
	}

	return t.Script(), nil
}

// ComputeFunc is Compute with a caller-supplied equality.
//
// Errors:
//   - ErrNilEqual — eq is nil.
//   - ErrTooLarge — see Compute.
func ComputeFunc[T any](a, b []T, eq func(x, y T) bool, opts ...Option) (Script, error) {
	t, err := BuildFunc(a, b, eq, opts...)
	if err != nil {
		return nil, err
	}

	return t.Script(), nil
}

// Length returns only the LCS length of a and b.
//
// It runs the same recurrence as Build without the choice matrix, keeping two
// rolling rows sized by the shorter sequence.
//
// Complexity: O(m·n) time, O(min(m,n)) memory.
func Length[T comparable](a, b []T) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := range a {
		curr[0] = 0
		for i := 1; i <= n; i++ {
			best := prev[i]
			if diag := prev[i-1] + 1; a[j] == b[i-1] && diag > best && diag > curr[i-1] {
				best = diag
			}
			if best < curr[i-1] {
				best = curr[i-1]
			}
			curr[i] = best
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
