// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench measures what line-wise Burrows-Wheeler preprocessing
// does to general-purpose compressors with respect to encode speed and
// compression ratio. Individual implementations are referred to as
// codecs and register themselves at init time.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/lexrot/bwt"
)

type Format int

const (
	FormatFlate Format = iota
	FormatXZ
)

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[Format]map[string]Encoder
	Decoders map[Format]map[string]Decoder

	// List of search paths for corpus files.
	Paths []string
)

func RegisterEncoder(format Format, name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[Format]map[string]Encoder)
	}
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format Format, name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[Format]map[string]Decoder)
	}
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// LoadCorpus returns the contents of a line-oriented corpus file,
// replicated line by line until it spans at least n bytes. If n <= 0,
// the file is returned as is.
func LoadCorpus(file string, n int) ([]byte, error) {
	buf, err := os.ReadFile(getPath(file))
	if err != nil {
		return nil, err
	}
	lines := bytes.Split(bytes.TrimRight(buf, "\n"), []byte("\n"))
	if n <= 0 {
		return append(bytes.Join(lines, []byte("\n")), '\n'), nil
	}

	var out bytes.Buffer
	for i := 0; out.Len() < n; i++ {
		out.Write(lines[i%len(lines)])
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

// Preprocess transforms every line of a corpus independently, which is
// how the surrounding tooling persists transformed files. The corpus must
// be sentinel-free.
func Preprocess(corpus []byte) []byte {
	var out bytes.Buffer
	for _, line := range bytes.Split(bytes.TrimRight(corpus, "\n"), []byte("\n")) {
		out.Write(bwt.Transform(line, bwt.DefaultSentinel))
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// BenchmarkEncoder benchmarks a single encoder on the given input data
// using the selected compression level and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder, lvl int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(io.Discard, lvl)
			_, err := io.Copy(wr, bytes.NewReader(input))
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkRateSuite measures encode rates across all codecs, files,
// levels, and sizes. If pre is set, each corpus is transformed line by
// line before it is handed to the compressors.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(levels)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(levels)*len(sizes)]string
func BenchmarkRateSuite(format Format, encs, files []string, levels, sizes []int, pre bool, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, levels, sizes, pre, tick,
		func(input []byte, enc string, lvl int) Result {
			result := BenchmarkEncoder(input, Encoders[format][enc], lvl)
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			return Result{R: float64(result.Bytes) / us}
		})
}

// BenchmarkRatioSuite measures compression ratios across all codecs,
// files, levels, and sizes. If pre is set, each corpus is transformed
// line by line before it is handed to the compressors.
//
// The values returned have the same structure as BenchmarkRateSuite's.
func BenchmarkRatioSuite(format Format, encs, files []string, levels, sizes []int, pre bool, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, levels, sizes, pre, tick,
		func(input []byte, enc string, lvl int) Result {
			buf := new(bytes.Buffer)
			wr := Encoders[format][enc](buf, lvl)
			if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
				return Result{}
			}
			if wr.Close() != nil {
				return Result{}
			}
			return Result{R: float64(len(input)) / float64(buf.Len())}
		})
}

type benchFunc func(input []byte, codec string, level int) Result

func benchmarkSuite(codecs, files []string, levels, sizes []int, pre bool, tick func(), run benchFunc) ([][]Result, []string) {
	d0 := len(files) * len(levels) * len(sizes)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, len(codecs))
	}
	names := make([]string, d0)

	var i int
	for _, f := range files {
		for _, l := range levels {
			for _, n := range sizes {
				b, err := LoadCorpus(f, n)
				if err == nil && pre {
					b = Preprocess(b)
				}
				name := getName(f, l, len(b))
				for j, c := range codecs {
					if tick != nil {
						tick()
					}
					names[i] = name
					if err == nil {
						results[i][j] = run(b, c, l)
					}
					results[i][j].D = results[i][j].R / results[i][0].R
				}
				i++
			}
		}
	}
	return results, names
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, l, n int) string {
	s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
	sn := strings.Replace(s, ".00", "", -1)
	return fmt.Sprintf("%s:%d:%s", path.Base(f), l, sn)
}
