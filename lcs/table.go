// SPDX-License-Identifier: MIT

package lcs

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/sanity-io/litter"
)

// Table is the Alignment Table Builder's result: the full choice matrix and
// the LCS length L.
//
// Row j corresponds to the prefix A[:j], column i to the prefix B[:i]; the
// cell (j, i) records the move that produced the optimal matched count for
// that prefix pair. Cells live in one owned row-major buffer of stride n+1.
type Table struct {
	m, n   int
	length int
	choice []OpCode
}

// Build fills the choice matrix for a and b using ==.
//
// Algorithm Outline:
//  1. Guard (m+1)·(n+1) against overflow and the cell budget.
//  2. Row 0: every i ≥ 1 is InsertFromB (no A tokens consumed yet).
//     Column 0: every j ≥ 1 is DeleteFromA.
//  3. For j = 1..m, for i = 1..n, in exactly this order:
//     best = prev[i], code = DeleteFromA          (carry-down)
//     diag = prev[i-1]+1
//     if a[j-1]==b[i-1] && diag > best && diag > curr[i-1]  → Keep
//     if best < curr[i-1]                                    → InsertFromB (strict)
//  4. L = score[m][n].
//
// Only two score rows of n+1 ints are kept and swapped each row.
//
// Errors:
//   - ErrTooLarge — the matrix would exceed the configured cell budget.
//
// Complexity: O(m·n) time, O(m·n) bytes for choices, O(n) for scores.
func Build[T comparable](a, b []T, opts ...Option) (*Table, error) {
	t, err := newTable(len(a), len(b), gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	t.fill(func(j, i int) bool { return a[j] == b[i] })

	return t, nil
}

// BuildFunc is Build with a caller-supplied equality.
// eq must be total, reflexive and stable for the duration of the call.
//
// Errors:
//   - ErrNilEqual — eq is nil.
//   - ErrTooLarge — see Build.
func BuildFunc[T any](a, b []T, eq func(x, y T) bool, opts ...Option) (*Table, error) {
	if eq == nil {
		return nil, ErrNilEqual
	}
	t, err := newTable(len(a), len(b), gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	t.fill(func(j, i int) bool { return eq(a[j], b[i]) })

	return t, nil
}

// newTable validates the requested shape and allocates the choice buffer.
func newTable(m, n int, o Options) (*Table, error) {
	cells, err := cellCount(m, n, o.maxCells)
	if err != nil {
		return nil, err
	}

	return &Table{m: m, n: n, choice: make([]OpCode, cells)}, nil
}

// cellCount returns (m+1)·(n+1) or ErrTooLarge on overflow / budget excess.
func cellCount(m, n int, limit uint64) (int, error) {
	hi, lo := bits.Mul64(uint64(m)+1, uint64(n)+1)
	if hi != 0 || lo > limit || lo > uint64(maxInt) {
		return 0, fmt.Errorf("%w: %d×%d cells, limit %d", ErrTooLarge, m+1, n+1, limit)
	}

	return int(lo), nil
}

const maxInt = int(^uint(0) >> 1)

// fill runs the forward pass. match(j, i) compares A[j] with B[i] (0-based).
func (t *Table) fill(match func(j, i int) bool) {
	m, n, stride := t.m, t.n, t.n+1

	// Row 0: only B tokens can have been consumed.
	for i := 1; i <= n; i++ {
		t.choice[i] = InsertFromB
	}

	prev := make([]int, stride)
	curr := make([]int, stride)
	for j := 1; j <= m; j++ {
		row := t.choice[j*stride : (j+1)*stride]
		row[0] = DeleteFromA
		curr[0] = 0
		for i := 1; i <= n; i++ {
			best, code := prev[i], DeleteFromA
			// Keep only when the diagonal beats both neighbours.
			if diag := prev[i-1] + 1; match(j-1, i-1) && diag > best && diag > curr[i-1] {
				best, code = diag, Keep
			}
			if best < curr[i-1] {
				best, code = curr[i-1], InsertFromB
			}
			row[i] = code
			curr[i] = best
		}
		prev, curr = curr, prev
	}

	// After the final swap prev holds row m (row 0 when m == 0: all zeros).
	t.length = prev[n]
}

// Rows returns m+1.
func (t *Table) Rows() int { return t.m + 1 }

// Cols returns n+1.
func (t *Table) Cols() int { return t.n + 1 }

// Length returns L, the length of the longest common subsequence.
func (t *Table) Length() int { return t.length }

// At returns the choice recorded for prefix pair (j, i).
// Cell (0, 0) holds the empty code.
func (t *Table) At(j, i int) (OpCode, error) {
	if j < 0 || j > t.m || i < 0 || i > t.n {
		return opNone, ErrOutOfRange
	}

	return t.at(j, i), nil
}

func (t *Table) at(j, i int) OpCode { return t.choice[j*(t.n+1)+i] }

// String prints the choice grid, one symbol per cell and one row per line.
func (t *Table) String() string {
	var sb strings.Builder
	stride := t.n + 1
	sb.Grow((t.m + 1) * (stride + 1))
	for j := 0; j <= t.m; j++ {
		for _, c := range t.choice[j*stride : (j+1)*stride] {
			sb.WriteByte(c.Symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Dump returns a structured debug dump: dimensions, L and the grid rows.
func (t *Table) Dump() string {
	rows := strings.Split(strings.TrimSuffix(t.String(), "\n"), "\n")

	return litter.Sdump(struct {
		M, N, Length int
		Choices      []string
	}{t.m, t.n, t.length, rows})
}
