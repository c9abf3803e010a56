// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EncodeFile transforms path line by line and writes the result next to
// it with the extension replaced by ".bwt". The input must carry a ".txt"
// extension and must not exceed the configured size cap.
//
// The output path is returned even when the error is a BatchError: unit
// failures leave empty lines in the output but do not invalidate it.
func EncodeFile(path string, cfg Config) (string, error) {
	return processFile(path, ".txt", ".bwt", cfg, EncodeLines)
}

// DecodeFile inverts path line by line and writes the result next to it
// with the extension replaced by ".txt". The input must carry a ".bwt"
// extension and must not exceed the configured size cap.
//
// The output path is returned even when the error is a BatchError: unit
// failures leave empty lines in the output but do not invalidate it.
func DecodeFile(path string, cfg Config) (string, error) {
	return processFile(path, ".bwt", ".txt", cfg, DecodeLines)
}

func processFile(path, inExt, outExt string, cfg Config, proc func(io.Writer, io.Reader, Config) (int64, error)) (string, error) {
	cfg.fillDefaults()
	if filepath.Ext(path) != inExt {
		return "", ErrExtension
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.Size() > cfg.MaxSize {
		return "", ErrTooLarge
	}

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	outPath := strings.TrimSuffix(path, inExt) + outExt
	dst, err := os.Create(outPath)
	if err != nil {
		return "", err
	}

	_, perr := proc(dst, src, cfg)
	if cerr := dst.Close(); cerr != nil && perr == nil {
		perr = cerr
	}
	return outPath, perr
}
