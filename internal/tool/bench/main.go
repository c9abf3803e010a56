// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to measure the effect of line-wise Burrows-Wheeler
// preprocessing on general-purpose compressors. Every benchmark runs
// twice, once on the raw corpus and once on the transformed corpus, so
// the two tables can be compared row by row.
//
// Example usage:
//
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-formats fl        \
//		-tests   ratio     \
//		-codecs  std,kp    \
//		-files   words.txt \
//		-levels  6         \
//		-sizes   1e3,1e4
//
//	BENCHMARK: fl:ratio (raw)
//		benchmark            std ratio  delta      kp ratio  delta
//		words.txt:6:1e3          1.95x  1.00x         1.93x  0.99x
//		words.txt:6:1e4          3.01x  1.00x         2.97x  0.99x
//
//	BENCHMARK: fl:ratio (bwt)
//		benchmark            std ratio  delta      kp ratio  delta
//		words.txt:6:1e3          1.71x  1.00x         1.70x  0.99x
//		words.txt:6:1e4          2.79x  1.00x         2.76x  0.99x
package main

import (
	"flag"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/lexrot/bwt/internal/tool/bench"
)

const (
	defaultFiles  = "words.txt"
	defaultLevels = "1,6,9"
	defaultSizes  = "1e3,1e4,1e5"
	defaultPaths  = "testdata,../../../testdata"
)

var (
	fmtToEnum = map[string]bench.Format{
		"fl": bench.FormatFlate,
		"xz": bench.FormatXZ,
	}
	enumToFmt = map[bench.Format]string{
		bench.FormatFlate: "fl",
		bench.FormatXZ:    "xz",
	}
	testNames = []string{"encRate", "ratio"}
)

func defaultFormats() string {
	var s []string
	for k := range bench.Encoders {
		s = append(s, enumToFmt[k])
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	hasStd := m["std"]
	delete(m, "std")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasStd {
		s = append([]string{"std"}, s...) // Ensure "std" always appears first
	}
	return strings.Join(s, ",")
}

func main() {
	f0 := flag.String("formats", defaultFormats(), "List of formats to benchmark")
	f1 := flag.String("tests", strings.Join(testNames, ","), "List of different benchmark tests")
	f2 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f3 := flag.String("paths", defaultPaths, "List of paths to search for corpus files")
	f4 := flag.String("files", defaultFiles, "List of corpus files to benchmark")
	f5 := flag.String("levels", defaultLevels, "List of compression levels to benchmark")
	f6 := flag.String("sizes", defaultSizes, "List of corpus sizes to benchmark")
	flag.Parse()

	var sep = regexp.MustCompile("[,:]")
	codecs := sep.Split(*f2, -1)
	paths := sep.Split(*f3, -1)
	files := sep.Split(*f4, -1)
	tests := sep.Split(*f1, -1)
	var formats []bench.Format
	var levels, sizes []int
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := fmtToEnum[s]; !ok {
			panic("invalid format")
		}
		formats = append(formats, fmtToEnum[s])
	}
	for _, s := range sep.Split(*f5, -1) {
		lvl, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid level")
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(*f6, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, formats, tests, levels, sizes)
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
}

func runBenchmarks(files, codecs []string, formats []bench.Format, tests []string, levels, sizes []int) {
	for _, f := range formats {
		var encs []string
		for _, c := range codecs {
			if _, ok := bench.Encoders[f][c]; ok {
				encs = append(encs, c)
			}
		}

		for _, t := range tests {
			for _, pre := range []bool{false, true} {
				mode := "raw"
				if pre {
					mode = "bwt"
				}
				fmt.Printf("BENCHMARK: %s:%s (%s)\n", enumToFmt[f], t, mode)
				if len(encs) == 0 {
					fmt.Printf("\tSKIP: There are no encoders available.\n\n")
					continue
				}

				var cnt int
				tick := func() {
					total := len(encs) * len(files) * len(levels) * len(sizes)
					pct := 100.0 * float64(cnt) / float64(total)
					fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
					cnt++
				}

				var results [][]bench.Result
				var names []string
				var title, suffix string
				switch t {
				case "encRate":
					title, suffix = "MB/s", ""
					results, names = bench.BenchmarkRateSuite(f, encs, files, levels, sizes, pre, tick)
				case "ratio":
					title, suffix = "ratio", "x"
					results, names = bench.BenchmarkRatioSuite(f, encs, files, levels, sizes, pre, tick)
				default:
					panic("unknown test")
				}

				printResults(results, names, encs, title, suffix)
				fmt.Println()
			}
		}
		fmt.Println()
	}
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
