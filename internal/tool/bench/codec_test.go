// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/lexrot/bwt"
)

func init() {
	Paths = []string{"../../../testdata"}
}

// TestCodecs tests that the output of each registered encoder is a valid
// input for each registered decoder, on both the raw and the transformed
// corpus.
func TestCodecs(t *testing.T) {
	corpus, err := LoadCorpus("words.txt", 1e4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, dd := range [][]byte{corpus, Preprocess(corpus)} {
		for ft := range Encoders {
			if len(Decoders[ft]) == 0 {
				continue
			}
			dd := dd
			t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) { testEncoders(t, ft, dd) })
		}
	}
}

func testEncoders(t *testing.T, ft Format, dd []byte) {
	const level = 6 // Default compression on all encoders
	for encName := range Encoders[ft] {
		encName := encName
		t.Run(fmt.Sprintf("Encoder:%v", encName), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[ft][encName](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			testDecoders(t, ft, dd, be.Bytes())
		})
	}
}

func testDecoders(t *testing.T, ft Format, dd, de []byte) {
	for decName := range Decoders[ft] {
		decName := decName
		t.Run(fmt.Sprintf("Decoder:%v", decName), func(t *testing.T) {
			bd := new(bytes.Buffer)
			zr := Decoders[ft][decName](bytes.NewReader(de))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(bd.Bytes(), dd) {
				t.Error("data mismatch")
			}
		})
	}
}

// TestPreprocess checks that preprocessing keeps the line structure of
// the corpus and that every output line inverts back to its source line.
func TestPreprocess(t *testing.T) {
	corpus, err := LoadCorpus("words.txt", 1e3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pre := Preprocess(corpus)

	src := bufio.NewScanner(bytes.NewReader(corpus))
	dst := bufio.NewScanner(bytes.NewReader(pre))
	for i := 0; src.Scan(); i++ {
		if !dst.Scan() {
			t.Fatalf("line %d, transformed corpus is short", i)
		}
		if len(dst.Bytes()) != len(src.Bytes())+1 {
			t.Errorf("line %d, length mismatch: got %d, want %d", i, len(dst.Bytes()), len(src.Bytes())+1)
		}
		text, err := bwt.Invert(dst.Bytes(), bwt.DefaultSentinel)
		if err != nil {
			t.Fatalf("line %d, unexpected error: %v", i, err)
		}
		if !bytes.Equal(text, src.Bytes()) {
			t.Errorf("line %d, round-trip mismatch: got %q, want %q", i, text, src.Bytes())
		}
	}
	if dst.Scan() {
		t.Errorf("transformed corpus has extra lines")
	}
}
