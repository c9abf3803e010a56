// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Command line tool to convert text to and from its Burrows-Wheeler
// representation.
//
// Files are processed one line per unit: encoding a .txt file writes a
// .bwt file next to it and decoding a .bwt file writes a .txt file next
// to it. Lines that fail validation or verification are reported and
// leave an empty line in the output; they do not stop the run.
//
// Example usage:
//
//	$ go build -o bwt main.go
//	$ ./bwt -s 'mississippi'
//	ipssm$pissii
//	$ ./bwt -d -s 'ipssm$pissii'
//	mississippi
//	$ ./bwt -f words.txt
//	words.bwt
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/lexrot/bwt"
	"github.com/lexrot/bwt/alphabet"
	"github.com/lexrot/bwt/textio"
)

func main() {
	f0 := flag.String("f", "", "Path of the file to process (.txt to encode, .bwt to decode)")
	f1 := flag.String("s", "", "Single text unit to process (ignored if -f is given)")
	f2 := flag.Bool("d", false, "Decode instead of encode")
	f3 := flag.String("sentinel", "$", "End-of-text sentinel character")
	f4 := flag.String("maxsize", "1MiB", "Maximum input file size")
	flag.Parse()

	if len(*f3) != 1 {
		panic("invalid sentinel")
	}
	maxSize, err := strconv.ParsePrefix(*f4, strconv.AutoParse)
	if err != nil {
		panic("invalid size")
	}
	cfg := textio.Config{
		Sentinel: (*f3)[0],
		Alphabet: alphabet.Default(),
		MaxSize:  int64(maxSize),
	}

	switch {
	case *f0 != "":
		processFile(*f0, *f2, cfg)
	case *f1 != "":
		processString(*f1, *f2, cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func processFile(path string, decode bool, cfg textio.Config) {
	var outPath string
	var err error
	if decode {
		outPath, err = textio.DecodeFile(path, cfg)
	} else {
		outPath, err = textio.EncodeFile(path, cfg)
	}

	// Unit failures are reported per line; the output file is still valid.
	var batch textio.BatchError
	if errors.As(err, &batch) {
		for _, uerr := range batch {
			fmt.Fprintln(os.Stderr, uerr)
		}
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(outPath)
}

func processString(s string, decode bool, cfg textio.Config) {
	if decode {
		unit, err := cfg.Alphabet.Normalize([]byte(s), cfg.Sentinel)
		if err == nil {
			var text []byte
			if text, err = bwt.Invert(unit, cfg.Sentinel); err == nil {
				fmt.Printf("%s\n", text)
				return
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	text := []byte(strings.TrimSpace(s))
	if err := cfg.Alphabet.Validate(text); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", bwt.Transform(text, cfg.Sentinel))
}
