// Copyright 2025, Lex Roth. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/lexrot/bwt/internal/testutil"
)

// alphaChars is the character set used for generated round-trip texts.
// It matches the alphabet the surrounding tooling permits.
const alphaChars = " 0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz"

func TestRotations(t *testing.T) {
	var vectors = []struct {
		input    string   // The input test string (sentinel not yet appended)
		sentinel byte     // The end-of-text character
		output   []string // Expected rotations, in enumeration order
	}{{
		input:    "",
		sentinel: '$',
		output:   []string{"$"},
	}, {
		input:    "a",
		sentinel: '$',
		output:   []string{"a$", "$a"},
	}, {
		input:    "aardvark",
		sentinel: '$',
		output: []string{
			"aardvark$", "ardvark$a", "rdvark$aa", "dvark$aar", "vark$aard",
			"ark$aardv", "rk$aardva", "k$aardvar", "$aardvark",
		},
	}, {
		input:    "mississippi",
		sentinel: '$',
		output: []string{
			"mississippi$", "ississippi$m", "ssissippi$mi", "sissippi$mis",
			"issippi$miss", "ssippi$missi", "sippi$missis", "ippi$mississ",
			"ppi$mississi", "pi$mississip", "i$mississipp", "$mississippi",
		},
	}}

	for i, v := range vectors {
		rots := rotations([]byte(v.input), v.sentinel)
		var got []string
		for _, rot := range rots {
			got = append(got, string(rot))
		}
		if !reflect.DeepEqual(got, v.output) {
			t.Errorf("test %d, rotation mismatch:\ngot  %q\nwant %q", i, got, v.output)
		}
	}
}

func TestSortRotations(t *testing.T) {
	var vectors = []struct {
		input  []string // Rotations in enumeration order
		output []string // Expected sorted order
	}{{
		input:  []string{"$"},
		output: []string{"$"},
	}, {
		input:  []string{"a$", "$a"},
		output: []string{"$a", "a$"},
	}, {
		input: []string{
			"aardvark$", "ardvark$a", "rdvark$aa", "dvark$aar", "vark$aard",
			"ark$aardv", "rk$aardva", "k$aardvar", "$aardvark",
		},
		output: []string{
			"$aardvark", "aardvark$", "ardvark$a", "ark$aardv", "dvark$aar",
			"k$aardvar", "rdvark$aa", "rk$aardva", "vark$aard",
		},
	}, {
		input: []string{
			"3 aardvarks$", " aardvarks$3", "aardvarks$3 ", "ardvarks$3 a",
			"rdvarks$3 aa", "dvarks$3 aar", "varks$3 aard", "arks$3 aardv",
			"rks$3 aardva", "ks$3 aardvar", "s$3 aardvark", "$3 aardvarks",
		},
		output: []string{
			" aardvarks$3", "$3 aardvarks", "3 aardvarks$", "aardvarks$3 ",
			"ardvarks$3 a", "arks$3 aardv", "dvarks$3 aar", "ks$3 aardvar",
			"rdvarks$3 aa", "rks$3 aardva", "s$3 aardvark", "varks$3 aard",
		},
	}}

	for i, v := range vectors {
		rots := make([][]byte, len(v.input))
		for j, s := range v.input {
			rots[j] = []byte(s)
		}
		sortRotations(rots)
		var got []string
		for _, rot := range rots {
			got = append(got, string(rot))
		}
		if !reflect.DeepEqual(got, v.output) {
			t.Errorf("test %d, sorted order mismatch:\ngot  %q\nwant %q", i, got, v.output)
		}

		// Sorting an already sorted sequence must not reorder anything.
		sortRotations(rots)
		var again []string
		for _, rot := range rots {
			again = append(again, string(rot))
		}
		if !reflect.DeepEqual(again, got) {
			t.Errorf("test %d, re-sort mismatch:\ngot  %q\nwant %q", i, again, got)
		}
	}
}

func TestTransform(t *testing.T) {
	var vectors = []struct {
		input    string // The input test string
		sentinel byte   // The end-of-text character
		output   string // Expected transform
	}{{
		input:    "",
		sentinel: '$',
		output:   "$",
	}, {
		input:    "a",
		sentinel: '$',
		output:   "a$",
	}, {
		input:    "mississippi",
		sentinel: '$',
		output:   "ipssm$pissii",
	}, {
		input:    "mississippi",
		sentinel: '#',
		output:   "ipssm#pissii",
	}, {
		input:    "aardvark",
		sentinel: '$',
		output:   "k$avrraad",
	}, {
		input:    "banana",
		sentinel: '$',
		output:   "annb$aa",
	}, {
		input:    "3 aardvarks",
		sentinel: '$',
		output:   "3s$ avrraakd",
	}}

	for i, v := range vectors {
		got := Transform([]byte(v.input), v.sentinel)
		if string(got) != v.output {
			t.Errorf("test %d, transform mismatch: got %q, want %q", i, got, v.output)
		}
		if len(got) != len(v.input)+1 {
			t.Errorf("test %d, length mismatch: got %d, want %d", i, len(got), len(v.input)+1)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 256; i++ {
		text := rand.Text(alphaChars, i)
		b := Transform(text, DefaultSentinel)
		if len(b) != len(text)+1 {
			t.Fatalf("test %d, transform length mismatch: got %d, want %d", i, len(b), len(text)+1)
		}
		got, err := Invert(b, DefaultSentinel)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if len(got) != len(b)-1 {
			t.Errorf("test %d, inverse length mismatch: got %d, want %d", i, len(got), len(b)-1)
		}
		if !bytes.Equal(got, text) {
			t.Errorf("test %d, round-trip mismatch:\ngot  %q\nwant %q", i, got, text)
		}
	}
}
