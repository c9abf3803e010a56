// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform of short texts.
//
// The forward transform appends a sentinel character to the text,
// enumerates every cyclic rotation of the result, sorts the rotations
// lexicographically, and returns the last column of the sorted rotation
// matrix. The inverse transform rebuilds the text from the transform
// alone by following a last-first index map; no rotations are ever formed
// during inversion.
//
// The rotation-sort construction runs in O(n² log n) time and keeps all
// n rotations in memory. That is a deliberate tradeoff for short inputs
// such as single words or lines; transforming large inputs calls for a
// suffix array construction, which is a different algorithm and outside
// the scope of this package.
//
// The sentinel must not occur in the text handed to Transform, and must
// occur exactly once in the transform handed to Invert. Callers own the
// first precondition (see the alphabet package); Invert checks the second
// and fails rather than producing garbage.
package bwt

// DefaultSentinel is the end-of-text character used by the surrounding
// tooling when no other sentinel is configured.
const DefaultSentinel = '$'

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bwt: " + string(e) }

var (
	ErrMissingSentinel  error = Error("transform has no sentinel")
	ErrRepeatedSentinel error = Error("transform has multiple sentinels")
)
