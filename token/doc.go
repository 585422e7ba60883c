// SPDX-License-Identifier: MIT

// Package token turns domain objects into the integer token sequences the
// lcs engine consumes.
//
// The diff core never tokenizes: it only compares tokens for equality.
// This package sits at its boundary and provides:
//   - Interner — dense, collision-free integer IDs for comparable keys
//   - Lines / EncodeLines — split two texts into lines and intern them
//     with a shared Interner, so equal lines get equal IDs
//   - Alphabet / Shared — token sets, e.g. to detect inputs with no
//     common token (L = 0) before paying for an O(m·n) table
//
// Usage:
//
//	ta, tb, in := token.EncodeLines(oldText, newText)
//	script, err := lcs.Compute(ta, tb)
//	// in.Key(ta[k]) recovers the line text for rendering
package token
