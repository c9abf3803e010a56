// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

// This file exists to provide a harness for fuzz testing.

package bwt

import "bytes"

// Fuzz round-trips arbitrary sentinel-free inputs through the transform.
func Fuzz(data []byte) int {
	const sentinel = 0x00
	if bytes.IndexByte(data, sentinel) >= 0 {
		return 0
	}

	b := Transform(data, sentinel)
	if len(b) != len(data)+1 {
		panic("transform length mismatch")
	}
	text, err := Invert(b, sentinel)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(text, data) {
		panic("round-trip mismatch")
	}
	return 1
}
