// SPDX-License-Identifier: MIT

package lcs

import "fmt"

// Stats counts the script's operations by kind. Unset codes are ignored.
func (s Script) Stats() Stats {
	var st Stats
	for _, c := range s {
		switch c {
		case Keep:
			st.Keep++
		case DeleteFromA:
			st.Delete++
		case InsertFromB:
			st.Insert++
		}
	}

	return st
}

// Validate checks that s can be replayed against sequences of lengths m and n:
// every code is valid, Keep+Delete == m and Keep+Insert == n.
//
// Errors:
//   - ErrInvalidOpCode  — s contains an unset or unknown code.
//   - ErrScriptMismatch — the counts do not fit (m, n).
func (s Script) Validate(m, n int) error {
	for k, c := range s {
		if !c.valid() {
			return fmt.Errorf("%w: %d at position %d", ErrInvalidOpCode, c, k)
		}
	}
	st := s.Stats()
	if st.Keep+st.Delete != m || st.Keep+st.Insert != n {
		return fmt.Errorf("%w: consumes %d/%d tokens, have %d/%d",
			ErrScriptMismatch, st.Keep+st.Delete, st.Keep+st.Insert, m, n)
	}

	return nil
}

// Changes groups consecutive non-Keep operations into change ranges, in
// script order. An all-Keep script yields no changes.
//
// Complexity: O(len(s)).
func (s Script) Changes() []Change {
	var (
		out    []Change
		p1, p2 int
		cur    *Change
	)
	for _, c := range s {
		switch c {
		case Keep:
			cur = nil
			p1++
			p2++
			continue
		case DeleteFromA, InsertFromB:
		default:
			continue
		}
		if cur == nil {
			out = append(out, Change{P1: p1, P2: p2})
			cur = &out[len(out)-1]
		}
		if c == DeleteFromA {
			cur.Del++
			p1++
		} else {
			cur.Ins++
			p2++
		}
	}

	return out
}

// Apply replays s against a and b and returns the emitted B side: the tokens
// of every Keep and InsertFromB operation, in order. For a script computed
// from (a, b) the result equals b.
//
// Errors: see Script.Validate.
func Apply[T any](s Script, a, b []T) ([]T, error) {
	return replay(s, a, b, InsertFromB)
}

// Revert replays s and returns the emitted A side (Keep and DeleteFromA).
// For a script computed from (a, b) the result equals a.
//
// Errors: see Script.Validate.
func Revert[T any](s Script, a, b []T) ([]T, error) {
	return replay(s, a, b, DeleteFromA)
}

// Common returns the common subsequence selected by s: the A tokens at every
// Keep position. It only needs A because Keep tokens are equal on both sides.
//
// Errors:
//   - ErrInvalidOpCode  — s contains an unset or unknown code.
//   - ErrScriptMismatch — s consumes a different number of A tokens.
func Common[T any](s Script, a []T) ([]T, error) {
	st := s.Stats()
	out := make([]T, 0, st.Keep)
	j := 0
	for k, c := range s {
		switch c {
		case Keep:
			if j >= len(a) {
				return nil, ErrScriptMismatch
			}
			out = append(out, a[j])
			j++
		case DeleteFromA:
			j++
		case InsertFromB:
		default:
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidOpCode, c, k)
		}
	}
	if j != len(a) {
		return nil, ErrScriptMismatch
	}

	return out, nil
}

// Inserted returns the B tokens that have no counterpart in A, in order.
// Together with Stats().Keep it summarizes what the new side adds.
//
// Errors:
//   - ErrInvalidOpCode  — s contains an unset or unknown code.
//   - ErrScriptMismatch — s consumes a different number of B tokens.
func Inserted[T any](s Script, b []T) ([]T, error) {
	out := make([]T, 0, s.Stats().Insert)
	i := 0
	for k, c := range s {
		switch c {
		case InsertFromB:
			if i >= len(b) {
				return nil, ErrScriptMismatch
			}
			out = append(out, b[i])
			i++
		case Keep:
			i++
		case DeleteFromA:
		default:
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidOpCode, c, k)
		}
	}
	if i != len(b) {
		return nil, ErrScriptMismatch
	}

	return out, nil
}

// replay walks s over a and b, emitting Keep tokens plus those of side.
func replay[T any](s Script, a, b []T, side OpCode) ([]T, error) {
	if err := s.Validate(len(a), len(b)); err != nil {
		return nil, err
	}
	size := len(b)
	if side == DeleteFromA {
		size = len(a)
	}
	out := make([]T, 0, size)
	j, i := 0, 0
	for _, c := range s {
		switch c {
		case Keep:
			if side == DeleteFromA {
				out = append(out, a[j])
			} else {
				out = append(out, b[i])
			}
			j++
			i++
		case DeleteFromA:
			if side == DeleteFromA {
				out = append(out, a[j])
			}
			j++
		case InsertFromB:
			if side == InsertFromB {
				out = append(out, b[i])
			}
			i++
		}
	}

	return out, nil
}
