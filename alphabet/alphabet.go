// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package alphabet defines the permitted character sets used to validate
// texts before they are transformed and transforms before they are
// inverted.
//
// A Set is an explicit value passed to each call rather than a
// process-wide constant, so different callers may operate with different
// alphabets concurrently.
package alphabet

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "alphabet: " + string(e) }

var (
	ErrBadChar   error = Error("text has characters outside the alphabet")
	ErrNoMark    error = Error("transform has no sentinel mark")
	ErrManyMarks error = Error("transform has more than one sentinel mark")
)

// Set is a permitted-character set over single-byte characters.
// The zero value is the empty set.
type Set struct {
	table [256]bool
}

// Default returns the alphabet used by the surrounding tooling:
// the space character, the digits, and the upper- and lowercase ASCII
// letters. Sentinel characters such as '$' are deliberately excluded.
func Default() Set {
	var s Set
	s.Add(' ')
	for c := byte('0'); c <= '9'; c++ {
		s.Add(c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		s.Add(c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		s.Add(c)
	}
	return s
}

// Add inserts c into the set.
func (s *Set) Add(c byte) { s.table[c] = true }

// Del removes c from the set.
func (s *Set) Del(c byte) { s.table[c] = false }

// Contains reports whether c is a member of the set.
func (s Set) Contains(c byte) bool { return s.table[c] }

// Validate checks that text draws exclusively from the set.
// It reports ErrBadChar otherwise.
func (s Set) Validate(text []byte) error {
	for _, c := range text {
		if !s.table[c] {
			return ErrBadChar
		}
	}
	return nil
}

// Normalize checks that b contains exactly one byte outside the set and
// returns a copy of b with that byte replaced by the sentinel. The
// transform of a valid text contains its sentinel exactly once, so a
// well-formed transform line carries exactly one mark no matter which
// sentinel produced it.
//
// Normalize reports ErrNoMark if every byte of b is in the set, and
// ErrManyMarks if more than one byte is not.
func (s Set) Normalize(b []byte, sentinel byte) ([]byte, error) {
	mark := -1
	for i, c := range b {
		if s.table[c] {
			continue
		}
		if mark >= 0 {
			return nil, ErrManyMarks
		}
		mark = i
	}
	if mark < 0 {
		return nil, ErrNoMark
	}

	out := make([]byte, len(b))
	copy(out, b)
	out[mark] = sentinel
	return out, nil
}
