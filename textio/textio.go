// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package textio implements newline-delimited batch processing of
// Burrows-Wheeler transformed text units.
//
// Each line of input is one independent unit. Encoding validates the unit
// against the configured alphabet, transforms it, and verifies the result
// by running the inverse pipeline. Decoding normalizes the unit's
// sentinel mark, inverts it, and verifies by re-encoding. A unit that
// fails produces an empty output line and a recorded UnitError; the batch
// then moves on to the next line, so one bad unit never blocks the rest.
package textio

import (
	"fmt"

	"github.com/lexrot/bwt"
	"github.com/lexrot/bwt/alphabet"
)

// DefaultMaxSize is the size cap applied to input files when Config does
// not specify one.
const DefaultMaxSize = 1 << 20 // 1 MiB

// Config configures the encoding and decoding of text units.
// The zero value is usable and selects the defaults noted per field.
type Config struct {
	// Sentinel is the end-of-text character appended by the transform.
	// It must not be a member of Alphabet. Defaults to '$'.
	Sentinel byte

	// Alphabet is the permitted character set for text units.
	// Defaults to alphabet.Default().
	Alphabet alphabet.Set

	// MaxSize bounds the size of input files in bytes and the length of a
	// single unit. Defaults to DefaultMaxSize.
	MaxSize int64

	// NoVerify disables the round-trip verification performed after each
	// unit is processed.
	NoVerify bool
}

func (cf *Config) fillDefaults() {
	if cf.Sentinel == 0 {
		cf.Sentinel = bwt.DefaultSentinel
	}
	if cf.Alphabet == (alphabet.Set{}) {
		cf.Alphabet = alphabet.Default()
	}
	if cf.MaxSize == 0 {
		cf.MaxSize = DefaultMaxSize
	}
}

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "textio: " + string(e) }

var (
	ErrVerify    error = Error("round-trip verification failed")
	ErrExtension error = Error("unexpected file extension")
	ErrTooLarge  error = Error("file exceeds size limit")
)

// UnitError records the failure of a single unit within a batch.
type UnitError struct {
	Line int   // 1-based input line number
	Err  error // The underlying failure
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("textio: line %d: %v", e.Line, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// BatchError aggregates the unit failures of a single batch.
type BatchError []*UnitError

func (e BatchError) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("textio: %d units failed (first: %v)", len(e), e[0].Err)
}
