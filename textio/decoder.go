// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/golib/errs"
	"github.com/lexrot/bwt"
)

// Decoder inverts transformed units and writes the recovered texts to an
// underlying writer, one unit per line.
type Decoder struct {
	wr  io.Writer
	cfg Config
	cnt int64 // Total number of units written
	err error // Persistent I/O error
}

// NewDecoder creates a new Decoder writing to wr.
func NewDecoder(wr io.Writer, cfg Config) *Decoder {
	cfg.fillDefaults()
	return &Decoder{wr: wr, cfg: cfg}
}

// UnitCount reports the number of units written to the underlying writer.
func (dec *Decoder) UnitCount() int64 { return dec.cnt }

// Decode normalizes the unit's sentinel mark, inverts the transform,
// verifies the text by re-encoding it, and writes the text as one line.
//
// Normalization, inversion, and verification failures affect only the
// offending unit; the Decoder stays usable. Write errors are persistent.
func (dec *Decoder) Decode(unit []byte) (err error) {
	defer errs.Recover(&err)
	if dec.err != nil {
		return dec.err
	}

	b, err := dec.cfg.Alphabet.Normalize(unit, dec.cfg.Sentinel)
	errs.Panic(err)
	text, err := bwt.Invert(b, dec.cfg.Sentinel)
	errs.Panic(err)
	if !dec.cfg.NoVerify {
		errs.Assert(bytes.Equal(bwt.Transform(text, dec.cfg.Sentinel), b), ErrVerify)
	}

	if _, werr := dec.wr.Write(append(text, '\n')); werr != nil {
		dec.err = werr
		return werr
	}
	dec.cnt++
	return nil
}

// DecodeLines inverts each line of src and writes one recovered text per
// line to dst. Only the line delimiter is stripped from input lines;
// leading and trailing spaces may be part of a transform. A failing unit
// yields an empty output line and an entry in the returned BatchError;
// the batch continues. I/O errors abort the batch.
//
// The count returned is the number of units successfully decoded.
func DecodeLines(dst io.Writer, src io.Reader, cfg Config) (int64, error) {
	dec := NewDecoder(dst, cfg)
	var batch BatchError

	sc := bufio.NewScanner(src)
	sc.Buffer(nil, int(dec.cfg.MaxSize))
	for line := 1; sc.Scan(); line++ {
		err := dec.Decode(sc.Bytes())
		if err == nil {
			continue
		}
		if dec.err != nil {
			return dec.cnt, err
		}
		batch = append(batch, &UnitError{Line: line, Err: err})
		if _, werr := dst.Write([]byte{'\n'}); werr != nil {
			return dec.cnt, werr
		}
	}
	if err := sc.Err(); err != nil {
		return dec.cnt, err
	}
	if len(batch) > 0 {
		return dec.cnt, batch
	}
	return dec.cnt, nil
}
