// SPDX-License-Identifier: MIT

package token

import mapset "github.com/deckarep/golang-set/v2"

// Interner assigns dense integer IDs to keys in first-seen order.
// Equal keys always map to the same ID, distinct keys never collide.
//
// An Interner is not safe for concurrent use; give every diff its own.
type Interner[K comparable] struct {
	ids  map[K]int
	keys []K
}

// NewInterner returns an empty Interner.
func NewInterner[K comparable]() *Interner[K] {
	return &Interner[K]{ids: make(map[K]int)}
}

// ID returns the ID of k, assigning the next free one on first sight.
func (in *Interner[K]) ID(k K) int {
	if id, ok := in.ids[k]; ok {
		return id
	}
	id := len(in.keys)
	in.ids[k] = id
	in.keys = append(in.keys, k)

	return id
}

// IDs interns every key of seq and returns their IDs in order.
func (in *Interner[K]) IDs(seq []K) []int {
	out := make([]int, len(seq))
	for k, key := range seq {
		out[k] = in.ID(key)
	}

	return out
}

// Key returns the key behind id, or false for an unknown id.
func (in *Interner[K]) Key(id int) (K, bool) {
	if id < 0 || id >= len(in.keys) {
		var zero K
		return zero, false
	}

	return in.keys[id], true
}

// Len returns the number of distinct keys seen so far.
func (in *Interner[K]) Len() int { return len(in.keys) }

// Alphabet returns the set of distinct tokens in seq.
func Alphabet[T comparable](seq []T) mapset.Set[T] {
	return mapset.NewThreadUnsafeSet(seq...)
}

// Shared returns the tokens present in both a and b. An empty result means
// the longest common subsequence is empty and the edit script is a pure
// delete/insert of both sides.
func Shared[T comparable](a, b []T) mapset.Set[T] {
	return Alphabet(a).Intersect(Alphabet(b))
}
