// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns tokens into lines of words.
//
// A program is a sequence of lines. A line is a sequence of words:
//
//	number     1  `2.5  1e`3
//	function   a monadic or dyadic primitive, by glyph or name
//	modified   a modifier followed by its operands, as in /+ or ⊃(+|×)
//	func       ( words... ), which may span lines
//	array      [ words... ], which may span lines
//
// A modifier taking two functions may be given both at once as a
// pack, (f|g).
package parse // import "ufel.dev/ufel/parse"

import (
	"fmt"
	"strconv"
	"strings"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/scan"
	"ufel.dev/ufel/source"
)

// Word is one of *Number, *Mon, *Dy, *Modified, *Func and *Array.
type Word interface {
	Span() source.Span
}

// Line is the words of one line of the program.
type Line []Word

// Number is a numeric literal.
type Number struct {
	Val  float64
	span source.Span
}

// Mon is a monadic primitive.
type Mon struct {
	Prim prim.Monadic
	span source.Span
}

// Dy is a dyadic primitive.
type Dy struct {
	Prim prim.Dyadic
	span source.Span
}

// Modified is a modifier with its operands.
// Pack reports whether the operands were given as (f|g).
type Modified struct {
	Mod     prim.Primitive // prim.Mod or prim.DyMod
	ModSpan source.Span
	Args    []Word
	Pack    bool
	span    source.Span
}

// Func is a parenthesized function.
type Func struct {
	Lines []Line
	span  source.Span
}

// Array is a bracketed array literal.
type Array struct {
	Lines []Line
	span  source.Span
}

func (n *Number) Span() source.Span   { return n.span }
func (m *Mon) Span() source.Span      { return m.span }
func (d *Dy) Span() source.Span       { return d.span }
func (m *Modified) Span() source.Span { return m.span }
func (f *Func) Span() source.Span     { return f.span }
func (a *Array) Span() source.Span    { return a.span }

// Operands returns the number of functions the modifier takes.
func (m *Modified) Operands() int {
	if _, ok := m.Mod.(prim.DyMod); ok {
		return 2
	}
	return 1
}

// Parser is a recursive descent parser over the tokens of one input.
type Parser struct {
	conf   *config.Config
	inputs *source.Inputs
	toks   []scan.Token
	curr   int
	errs   []*source.Error
}

// Parse scans and parses input src. It returns the lines it could
// parse and the errors it found. A Lex error stops parsing at once.
func Parse(conf *config.Config, inputs *source.Inputs, src int) ([]Line, []*source.Error) {
	toks, err := scan.Tokens(conf, inputs, src)
	if err != nil {
		return nil, []*source.Error{err}
	}
	p := &Parser{
		conf:   conf,
		inputs: inputs,
		toks:   toks,
	}
	lines := p.block()
	if p.curr < len(p.toks) {
		tok := p.toks[p.curr]
		p.errorf(tok.Span, "Unexpected %s", describe(tok))
	}
	if conf != nil && conf.Debug("parse") {
		for _, line := range lines {
			conf.Logger().Debug().Msgf("parse %s", Tree(line))
		}
	}
	return lines, p.errs
}

func (p *Parser) errorf(s source.Span, format string, args ...interface{}) {
	p.errs = append(p.errs, p.inputs.Errorf(source.Parse, s, format, args...))
}

// peek returns the current token, or an EOF token at the end.
func (p *Parser) peek() scan.Token {
	if p.curr >= len(p.toks) {
		return scan.Token{Type: scan.EOF}
	}
	return p.toks[p.curr]
}

// accept consumes the current token if it has type t.
func (p *Parser) accept(t scan.Type) (scan.Token, bool) {
	tok := p.peek()
	if tok.Type != t || tok.Type == scan.EOF {
		return tok, false
	}
	p.curr++
	return tok, true
}

// currSpan is the span of the current token, or of the last one at
// the end of input.
func (p *Parser) currSpan() source.Span {
	if p.curr < len(p.toks) {
		return p.toks[p.curr].Span
	}
	return p.toks[len(p.toks)-1].Span
}

// expect consumes a token of type t. If there is none it records an
// error and returns the current span without consuming anything.
func (p *Parser) expect(t scan.Type) source.Span {
	if tok, ok := p.accept(t); ok {
		return tok.Span
	}
	p.errorf(p.currSpan(), "Expected %s", describeType(t))
	return p.currSpan()
}

// newlines skips any newlines.
func (p *Parser) newlines() {
	for {
		if _, ok := p.accept(scan.Newline); !ok {
			return
		}
	}
}

// words parses the words up to the end of the line. It returns nil if
// there are none.
func (p *Parser) words() Line {
	var line Line
	for {
		w := p.word()
		if w == nil {
			return line
		}
		line = append(line, w)
	}
}

// block parses lines of words up to a token that cannot start a word.
func (p *Parser) block() []Line {
	var lines []Line
	p.newlines()
	for {
		line := p.words()
		if line == nil {
			return lines
		}
		lines = append(lines, line)
		p.newlines()
	}
}

func (p *Parser) word() Word {
	tok := p.peek()
	switch tok.Type {
	case scan.Number:
		p.curr++
		return p.number(tok)
	case scan.Primitive:
		switch pr := tok.Prim.(type) {
		case prim.Monadic:
			p.curr++
			return &Mon{Prim: pr, span: tok.Span}
		case prim.Dyadic:
			p.curr++
			return &Dy{Prim: pr, span: tok.Span}
		}
		return p.modified()
	case scan.LeftParen:
		fns, _ := p.fn(false)
		return fns[0]
	case scan.LeftBrack:
		p.curr++
		lines := p.block()
		rbrack := p.expect(scan.RightBrack)
		return &Array{Lines: lines, span: tok.Span.Merge(rbrack)}
	}
	return nil
}

func (p *Parser) number(tok scan.Token) Word {
	x, err := strconv.ParseFloat(strings.ReplaceAll(tok.Text, "`", "-"), 64)
	if err != nil {
		p.errorf(tok.Span, "Invalid number %s", tok.Text)
	}
	return &Number{Val: x, span: tok.Span}
}

// fn parses a parenthesized function. If pack is allowed and the
// parentheses hold sections separated by |, it returns one Func per
// section and reports true.
func (p *Parser) fn(pack bool) ([]Word, bool) {
	open, _ := p.accept(scan.LeftParen)
	start := open.Span
	first := p.block()
	type section struct {
		start source.Span
		lines []Line
	}
	var rest []section
	if pack {
		for {
			bar, ok := p.accept(scan.Bar)
			if !ok {
				break
			}
			rest = append(rest, section{bar.Span, p.block()})
		}
	}
	rparen := p.expect(scan.RightParen)
	if len(rest) == 0 {
		return []Word{&Func{Lines: first, span: start.Merge(rparen)}}, false
	}
	fns := []Word{&Func{Lines: first, span: start.Merge(rest[0].start)}}
	for i, s := range rest {
		end := rparen
		if i+1 < len(rest) {
			end = rest[i+1].start
		}
		fns = append(fns, &Func{Lines: s.lines, span: s.start.Merge(end)})
	}
	return fns, true
}

// modified parses a modifier and its operands: a pack, or as many
// following words as the modifier takes.
func (p *Parser) modified() Word {
	tok := p.peek()
	p.curr++
	m := &Modified{Mod: tok.Prim, ModSpan: tok.Span}
	need := m.Operands()
	if p.peek().Type == scan.LeftParen {
		fns, pack := p.fn(true)
		m.Args = fns
		m.Pack = pack
		if !pack {
			need--
		} else {
			need = 0
		}
	}
	for range need {
		w := p.word()
		if w == nil {
			break
		}
		m.Args = append(m.Args, w)
	}
	m.span = tok.Span
	if len(m.Args) > 0 {
		m.span = m.span.Merge(m.Args[len(m.Args)-1].Span())
	}
	return m
}

// describe names a token in an error message.
func describe(tok scan.Token) string {
	switch tok.Type {
	case scan.Newline:
		return "newline"
	case scan.EOF:
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Text)
}

func describeType(t scan.Type) string {
	switch t {
	case scan.RightParen:
		return `")"`
	case scan.RightBrack:
		return `"]"`
	}
	return t.String()
}
