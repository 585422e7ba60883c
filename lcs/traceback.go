// SPDX-License-Identifier: MIT

package lcs

// Script reconstructs the edit script from the choice matrix.
//
// Walks from (m, n) to (0, 0). Each cell's code is written into an output
// buffer of exactly m+n−L slots, from the last slot toward the first, so the
// result is forward ordered:
//   - Keep        → j--, i--
//   - InsertFromB → i--
//   - DeleteFromA → j--
//
// Panics if the walk leaves the table, reads an empty cell, or does not fill
// the buffer exactly: each of these is a Builder defect.
//
// Complexity: O(m+n) time, O(m+n−L) memory.
func (t *Table) Script() Script {
	out := make(Script, t.m+t.n-t.length)
	k := len(out)
	j, i := t.m, t.n
	for j != 0 || i != 0 {
		if j < 0 || i < 0 {
			panic(panicTraceOutOfBounds)
		}
		if k == 0 {
			panic(panicTraceOverrun)
		}
		code := t.at(j, i)
		k--
		out[k] = code
		switch code {
		case Keep:
			j--
			i--
		case InsertFromB:
			i--
		case DeleteFromA:
			j--
		default:
			panic(panicTraceEmptyCell)
		}
	}
	if k != 0 {
		panic(panicTraceUnderrun)
	}

	return out
}

// Traceback is the explicit-dimension form of Table.Script: m and n must be
// the lengths of the sequences t was built from.
//
// Errors:
//   - ErrNilTable          — t is nil.
//   - ErrNegativeLength    — m or n is negative.
//   - ErrDimensionMismatch — (m, n) differ from the table's dimensions.
func Traceback(t *Table, m, n int) (Script, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if m < 0 || n < 0 {
		return nil, ErrNegativeLength
	}
	if m != t.m || n != t.n || len(t.choice) != (m+1)*(n+1) {
		return nil, ErrDimensionMismatch
	}

	return t.Script(), nil
}
