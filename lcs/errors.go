// SPDX-License-Identifier: MIT
// Package lcs: sentinel error set.
// All exported entry points return these sentinels (possibly wrapped with
// %w for context) and tests match them via errors.Is. Panics are reserved
// for internal invariant violations: a traceback that leaves the table or
// reads an empty cell is a Builder defect, and a silently wrong diff is
// worse than a crash.

package lcs

import "errors"

var (
	// ErrTooLarge is returned when (m+1)·(n+1) overflows or exceeds the
	// configured cell budget. Nothing is allocated in that case.
	ErrTooLarge = errors.New("lcs: choice matrix too large")

	// ErrNegativeLength indicates a negative dimension passed to Traceback.
	ErrNegativeLength = errors.New("lcs: negative sequence length")

	// ErrDimensionMismatch indicates that explicit dimensions do not match
	// the table they refer to.
	ErrDimensionMismatch = errors.New("lcs: dimension mismatch")

	// ErrNilTable indicates that a nil *Table was passed.
	ErrNilTable = errors.New("lcs: table is nil")

	// ErrNilEqual indicates that a nil equality function was passed.
	ErrNilEqual = errors.New("lcs: equality function is nil")

	// ErrOutOfRange indicates a (row, col) index outside the table.
	ErrOutOfRange = errors.New("lcs: index out of range")

	// ErrScriptMismatch indicates that a script does not fit the sequences
	// it is replayed against (wrong Keep/Delete/Insert counts).
	ErrScriptMismatch = errors.New("lcs: script does not match sequences")

	// ErrInvalidOpCode indicates a script containing an unset or unknown code.
	ErrInvalidOpCode = errors.New("lcs: invalid op code")
)

// Internal panic messages (no magic strings).
const (
	panicMaxCellsInvalid  = "lcs: WithMaxCells: limit must be > 0"
	panicTraceOutOfBounds = "lcs: traceback: step left the table"
	panicTraceEmptyCell   = "lcs: traceback: empty choice cell"
	panicTraceOverrun     = "lcs: traceback: output buffer overrun"
	panicTraceUnderrun    = "lcs: traceback: output buffer not filled"
)
