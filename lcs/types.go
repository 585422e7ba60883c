// SPDX-License-Identifier: MIT

// Package lcs defines the operation codes and the edit-script value.
package lcs

import "strings"

// OpCode is a single edit-script operation.
//
//   - Keep        — consume one token from A and one from B (they are equal).
//   - DeleteFromA — consume one token from A only.
//   - InsertFromB — consume one token from B only.
//
// The zero value is the empty code: it never appears in a valid script and
// marks unset cells of the choice matrix.
type OpCode uint8

const (
	opNone OpCode = iota

	// Keep marks a token common to both sequences.
	Keep

	// DeleteFromA marks a token present only in A.
	DeleteFromA

	// InsertFromB marks a token present only in B.
	InsertFromB
)

// String returns the lower-case name of the code.
func (c OpCode) String() string {
	switch c {
	case Keep:
		return "keep"
	case DeleteFromA:
		return "delete"
	case InsertFromB:
		return "insert"
	default:
		return "none"
	}
}

// Symbol returns a one-byte mnemonic: '=', '-', '+' or '.' for the empty code.
func (c OpCode) Symbol() byte {
	switch c {
	case Keep:
		return '='
	case DeleteFromA:
		return '-'
	case InsertFromB:
		return '+'
	default:
		return '.'
	}
}

// valid reports whether c may appear in a script.
func (c OpCode) valid() bool {
	return c == Keep || c == DeleteFromA || c == InsertFromB
}

// Script is an ordered edit script, earliest operation first.
// Its length is m + n − L for the sequences it was computed from.
type Script []OpCode

// Len returns the number of operations.
func (s Script) Len() int { return len(s) }

// String renders the script as a run of symbols, e.g. "++=--".
func (s Script) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		sb.WriteByte(c.Symbol())
	}

	return sb.String()
}

// Stats counts operations by kind.
type Stats struct {
	Keep   int
	Delete int
	Insert int
}

// Similarity returns 2·Keep / (m+n), the share of both sequences covered by
// the common subsequence. Two empty sequences are fully similar (1.0).
func (st Stats) Similarity() float64 {
	total := 2*st.Keep + st.Delete + st.Insert
	if total == 0 {
		return 1
	}

	return float64(2*st.Keep) / float64(total)
}

// Change is a maximal run of non-Keep operations.
//
//   - P1  — offset in A where the run starts
//   - P2  — offset in B where the run starts
//   - Del — number of A tokens removed (A[P1:P1+Del])
//   - Ins — number of B tokens inserted (B[P2:P2+Ins])
type Change struct {
	P1, P2   int
	Del, Ins int
}
