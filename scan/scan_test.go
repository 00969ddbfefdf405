// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/source"
)

func scan(t *testing.T, text string) ([]Token, *source.Error) {
	t.Helper()
	var in source.Inputs
	src := in.Add("", text)
	return Tokens(new(config.Config), &in, src)
}

// describe renders tokens as type:text pairs.
func describe(toks []Token) string {
	var s []string
	for _, tok := range toks {
		s = append(s, tok.Type.String()+":"+tok.Text)
	}
	return strings.Join(s, " ")
}

func TestScan(t *testing.T) {
	var tests = []struct {
		text string
		want string
	}{
		{"1 2 +", "Number:1 Number:2 Primitive:+"},
		{"`3 ` 4", "Number:`3 Primitive:` Number:4"},
		{"1.5e3 2.e`2", "Number:1.5e3 Number:2.e`2"},
		{"[1 2](+|×)", "LeftBrack:[ Number:1 Number:2 RightBrack:] LeftParen:( Primitive:+ Bar:| Primitive:× RightParen:)"},
		{"reduce add /+", "Primitive:reduce Primitive:add Primitive:/ Primitive:+"},
		{"1 # comment +\n2", "Number:1 Newline:\n Number:2"},
		{"\t1\r\n", "Number:1 Newline:\n"},
		{"2flip", "Number:2 Primitive:flip"},
		{"", ""},
	}
	for _, test := range tests {
		toks, err := scan(t, test.text)
		if err != nil {
			t.Errorf("%q: %v", test.text, err)
			continue
		}
		if got := describe(toks); got != test.want {
			t.Errorf("%q:\ngot  %s\nwant %s", test.text, got, test.want)
		}
	}
}

func TestPrimitives(t *testing.T) {
	toks, err := scan(t, "+ add * % ⊃")
	if err != nil {
		t.Fatal(err)
	}
	want := []prim.Primitive{prim.Add, prim.Add, prim.Multiply, prim.Modulo, prim.Fork}
	for i, tok := range toks {
		if tok.Prim != want[i] {
			t.Errorf("token %d is %v, want %v", i, tok.Prim, want[i])
		}
	}
}

func TestSpans(t *testing.T) {
	toks, err := scan(t, "⇡ 10\n+")
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		start, end source.Loc
	}{
		{source.Loc{Char: 0, Byte: 0}, source.Loc{Char: 1, Byte: 3}},
		{source.Loc{Char: 2, Byte: 4}, source.Loc{Char: 4, Byte: 6}},
		{source.Loc{Char: 4, Byte: 6}, source.Loc{Char: 5, Byte: 7}},
		{source.Loc{Char: 5, Byte: 7}, source.Loc{Char: 6, Byte: 8}},
	}
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens: %s", len(toks), describe(toks))
	}
	for i, test := range tests {
		if toks[i].Span.Start != test.start || toks[i].Span.End != test.end {
			t.Errorf("token %d span %s, want %d-%d", i, toks[i].Span, test.start.Char, test.end.Char)
		}
	}
}

func TestErrors(t *testing.T) {
	var tests = []struct {
		text string
		want string
	}{
		{"1 2 $", "Lex error at 1:5: Invalid character '$'"},
		{"1\n  bogus", "Lex error at 2:3: Unknown primitive name \"bogus\""},
		{"1 A", "Lex error at 1:3: Invalid character 'A'"},
		{"3e", "Lex error at 1:2: Unknown primitive name \"e\""},
	}
	for _, test := range tests {
		_, err := scan(t, test.text)
		if err == nil {
			t.Errorf("%q: no error", test.text)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("%q: got %q, want %q", test.text, err, test.want)
		}
	}
}
