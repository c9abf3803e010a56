// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"sort"
)

// Transform returns the Burrows-Wheeler Transform of text. The sentinel
// is appended before the rotations are formed, so the output is always
// exactly one byte longer than the input. An empty text transforms to the
// sentinel alone.
//
// The sentinel must not already occur in text; validating that is the
// caller's responsibility.
func Transform(text []byte, sentinel byte) []byte {
	rots := rotations(text, sentinel)
	sortRotations(rots)
	return lastColumn(rots)
}

// rotations returns the cyclic rotations of text with the sentinel
// appended, where rotation i is the terminated text shifted left by i
// bytes and rotation 0 is the terminated text itself. Every rotation is a
// view into a single doubled buffer, so enumerating costs O(n) allocations
// rather than O(n²) byte copies.
func rotations(text []byte, sentinel byte) [][]byte {
	n := len(text) + 1
	t := make([]byte, 0, 2*n)
	t = append(t, text...)
	t = append(t, sentinel)
	t = append(t, t[:n]...)

	rots := make([][]byte, n)
	for i := range rots {
		rots[i] = t[i : i+n]
	}
	return rots
}

// sortRotations sorts rots in place by full lexicographic comparison of
// the byte sequences. The unique sentinel makes rotations pairwise
// distinct, but the sort must still be stable so that the relative order
// of equal prefixes is reproducible; the last-first mapping used by
// Invert relies on equal characters keeping their mutual order across
// the first and last columns.
func sortRotations(rots [][]byte) {
	sort.SliceStable(rots, func(i, j int) bool {
		return bytes.Compare(rots[i], rots[j]) < 0
	})
}

// lastColumn returns the last byte of each rotation, in order.
func lastColumn(rots [][]byte) []byte {
	last := make([]byte, len(rots))
	for i, rot := range rots {
		last[i] = rot[len(rot)-1]
	}
	return last
}
