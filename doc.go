// SPDX-License-Identifier: MIT

// Package seqdiff computes minimal edit scripts between two sequences of
// comparable tokens: hashed source lines, lexical units of two program
// submissions, or anything else that can be tested for equality.
//
// 🚀 What is seqdiff?
//
//	A small, pure-Go, deterministic diff engine built on the classic
//	longest-common-subsequence (LCS) dynamic program:
//		• lcs/   — Alignment Table Builder, Traceback Reconstructor and the
//		           Edit Script type (Keep / DeleteFromA / InsertFromB)
//		• token/ — encoder helpers that turn domain objects (text lines)
//		           into dense integer token sequences
//
// ✨ Why choose seqdiff?
//
//   - Exact LCS alignment, no heuristics, no fuzzy matching
//   - Deterministic tie-break: repeated runs give byte-identical scripts
//   - No global state – many diffs may run concurrently
//   - Overflow-safe size guard before the O(m·n) choice matrix is allocated
//
// Quick example:
//
//	a := []int{1, 2, 3}
//	b := []int{3, 2, 1}
//	script, err := lcs.Compute(a, b)
//	// script.String() == "++=--"
//
// Rendering (unified diffs, colors, hunks with context) is left to callers:
// lcs.Script.Changes() hands them the change ranges.
//
//	go get github.com/katalvlaran/seqdiff
package seqdiff
