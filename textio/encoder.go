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

// Encoder transforms text units and writes them to an underlying writer,
// one unit per line.
type Encoder struct {
	wr  io.Writer
	cfg Config
	cnt int64 // Total number of units written
	err error // Persistent I/O error
}

// NewEncoder creates a new Encoder writing to wr.
func NewEncoder(wr io.Writer, cfg Config) *Encoder {
	cfg.fillDefaults()
	return &Encoder{wr: wr, cfg: cfg}
}

// UnitCount reports the number of units written to the underlying writer.
func (enc *Encoder) UnitCount() int64 { return enc.cnt }

// Encode validates text against the alphabet, transforms it, verifies the
// transform by inverting it, and writes the transform as one line.
//
// Validation and verification failures affect only the offending unit;
// the Encoder stays usable. Write errors are persistent.
func (enc *Encoder) Encode(text []byte) (err error) {
	defer errs.Recover(&err)
	if enc.err != nil {
		return enc.err
	}

	errs.Panic(enc.cfg.Alphabet.Validate(text))
	b := bwt.Transform(text, enc.cfg.Sentinel)
	if !enc.cfg.NoVerify {
		orig, verr := bwt.Invert(b, enc.cfg.Sentinel)
		errs.Assert(verr == nil && bytes.Equal(orig, text), ErrVerify)
	}

	if _, werr := enc.wr.Write(append(b, '\n')); werr != nil {
		enc.err = werr
		return werr
	}
	enc.cnt++
	return nil
}

// EncodeLines transforms each line of src and writes one transform per
// line to dst. Leading and trailing whitespace of each input line is
// discarded before encoding. A failing unit yields an empty output line
// and an entry in the returned BatchError; the batch continues. I/O
// errors abort the batch.
//
// The count returned is the number of units successfully encoded.
func EncodeLines(dst io.Writer, src io.Reader, cfg Config) (int64, error) {
	enc := NewEncoder(dst, cfg)
	var batch BatchError

	sc := bufio.NewScanner(src)
	sc.Buffer(nil, int(enc.cfg.MaxSize))
	for line := 1; sc.Scan(); line++ {
		err := enc.Encode(bytes.TrimSpace(sc.Bytes()))
		if err == nil {
			continue
		}
		if enc.err != nil {
			return enc.cnt, err
		}
		batch = append(batch, &UnitError{Line: line, Err: err})
		if _, werr := dst.Write([]byte{'\n'}); werr != nil {
			return enc.cnt, werr
		}
	}
	if err := sc.Err(); err != nil {
		return enc.cnt, err
	}
	if len(batch) > 0 {
		return enc.cnt, batch
	}
	return enc.cnt, nil
}
