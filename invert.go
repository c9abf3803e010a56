// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "sort"

// Invert reconstructs the original text from its Burrows-Wheeler
// Transform b. The trailing sentinel is stripped from the result, so
// Invert is the exact inverse of Transform and its output is one byte
// shorter than b.
//
// The sentinel must occur in b exactly once. Invert reports
// ErrMissingSentinel or ErrRepeatedSentinel otherwise instead of walking
// a malformed map out of bounds.
func Invert(b []byte, sentinel byte) ([]byte, error) {
	start := -1
	for i, c := range b {
		if c != sentinel {
			continue
		}
		if start >= 0 {
			return nil, ErrRepeatedSentinel
		}
		start = i
	}
	if start < 0 {
		return nil, ErrMissingSentinel
	}

	// The transform's row in the sorted rotation matrix is the sentinel's
	// position in the last column. Each step of the walk resolves the
	// preceding character of the original text; the map is a permutation,
	// so len(b) steps visit every index exactly once.
	lf := buildLFMap(b)
	text := make([]byte, len(b))
	pos := start
	for i := range text {
		pos = lf[pos]
		text[i] = b[pos]
	}
	return text[:len(text)-1], nil
}

// sortChars returns the bytes of b in sorted order. This is the first
// column of the conceptual sorted rotation matrix, recovered from the
// last column alone.
func sortChars(b []byte) []byte {
	first := make([]byte, len(b))
	copy(first, b)
	sort.SliceStable(first, func(i, j int) bool { return first[i] < first[j] })
	return first
}

// buildLFMap returns the last-first map of b: lf[k] is the index within b
// of the character that precedes, in the original text, the character at
// sorted position k of the first column.
//
// Positions of each character are queued in left-to-right order and
// consumed in first-column order, which enforces the standard last-first
// correspondence: the k-th occurrence of a character in the first column
// is the k-th occurrence of that character in the last column. Every
// position is queued once and popped once, so the result is a permutation
// of [0, len(b)).
func buildLFMap(b []byte) []int {
	var queues [256][]int
	for i, c := range b {
		queues[c] = append(queues[c], i)
	}

	lf := make([]int, 0, len(b))
	for _, c := range sortChars(b) {
		q := queues[c]
		lf = append(lf, q[0])
		queues[c] = q[1:]
	}
	return lf
}
