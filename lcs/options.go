// SPDX-License-Identifier: MIT

// Package lcs: functional configuration for the table builder.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); size violations at run time are errors.
package lcs

// DefaultMaxCells bounds the number of choice-matrix cells (one byte each)
// a single computation may allocate: 1 GiB.
const DefaultMaxCells = 1 << 30

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxCells uint64 // > 0; DefaultMaxCells
}

// WithMaxCells sets the largest (m+1)·(n+1) the builder accepts before
// returning ErrTooLarge.
//
// Panics when limit <= 0.
//
// Complexity: O(1).
func WithMaxCells(limit int) Option {
	if limit <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = uint64(limit) }
}

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxCells: DefaultMaxCells,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
