// SPDX-License-Identifier: MIT

package token

import "strings"

// Lines splits s into lines. "\r\n" is treated as "\n"; a trailing newline
// does not produce an empty final line. The empty string has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}

// EncodeLines splits both texts into lines and interns them with one shared
// Interner, so a line gets the same ID on both sides.
func EncodeLines(a, b string) (ta, tb []int, in *Interner[string]) {
	in = NewInterner[string]()
	ta = in.IDs(Lines(a))
	tb = in.IDs(Lines(b))

	return ta, tb, in
}
