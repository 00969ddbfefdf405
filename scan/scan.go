// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns program text into tokens.
package scan // import "ufel.dev/ufel/scan"

import (
	"fmt"
	"unicode/utf8"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/source"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type           // The type of this item.
	Span source.Span    // Where it appears.
	Text string         // The text of this item.
	Prim prim.Primitive // For Primitive, the primitive named.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // end of input
	Error             // error occurred; value is text of error
	Newline
	Number     // number, with ` for a minus sign
	Primitive  // glyph or name of a primitive
	LeftParen  // '('
	RightParen // ')'
	LeftBrack  // '['
	RightBrack // ']'
	Bar        // '|'
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Newline:    "Newline",
	Number:     "Number",
	Primitive:  "Primitive",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	LeftBrack:  "LeftBrack",
	RightBrack: "RightBrack",
	Bar:        "Bar",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	input     string     // the text being scanned
	src       int        // index of the input; used in spans
	lastWidth int        // size of the most recent rune from next()
	start     source.Loc // start position of this item
	pos       source.Loc // current position in the input
	token     Token
}

// New creates and returns a new scanner for the text of input src.
func New(conf *config.Config, src int, text string) *Scanner {
	return &Scanner{conf: conf, input: text, src: src}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos.Byte >= len(l.input) {
		l.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos.Byte:])
	l.lastWidth = w
	l.pos.Byte += w
	l.pos.Char++
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	if l.pos.Byte >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos.Byte:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastWidth == 0 {
		return
	}
	l.pos.Byte -= l.lastWidth
	l.pos.Char--
	l.lastWidth = 0
}

func (l *Scanner) span() source.Span {
	return source.Span{Start: l.start, End: l.pos, Src: l.src}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{Type: t, Span: l.span(), Text: l.input[l.start.Byte:l.pos.Byte]}
	l.start = l.pos
	return nil
}

// acceptDigits consumes a run of decimal digits and reports whether
// there were any.
func (l *Scanner) acceptDigits() bool {
	n := 0
	for isDigit(l.peek()) {
		l.next()
		n++
	}
	return n > 0
}

// errorf returns an error token and skips the rest of the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Type: Error, Span: l.span(), Text: fmt.Sprintf(format, args...)}
	l.pos.Char += utf8.RuneCountInString(l.input[l.pos.Byte:])
	l.pos.Byte = len(l.input)
	l.start = l.pos
	return nil
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastWidth = 0
	l.token = Token{Type: EOF, Span: l.span(), Text: "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			if l.conf != nil && l.conf.Debug("tokens") {
				l.conf.Logger().Debug().Stringer("span", l.token.Span).Msgf("emit %s", l.token)
			}
			return l.token
		}
	}
}

// Tokens scans the whole of input src. Scanning stops at the first
// invalid character, which is reported as a Lex error.
func Tokens(conf *config.Config, in *source.Inputs, src int) ([]Token, *source.Error) {
	l := New(conf, src, in.Get(src).Text)
	var toks []Token
	for {
		tok := l.Next()
		switch tok.Type {
		case EOF:
			return toks, nil
		case Error:
			return toks, in.Errorf(source.Lex, tok.Span, "%s", tok.Text)
		}
		toks = append(toks, tok)
	}
}

// state functions

// lexComment scans a comment. The comment marker has been consumed.
// The newline ending it is left for lexAny.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if r == '\n' {
			l.backup()
			break
		}
	}
	l.start = l.pos
	return lexAny
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case r == '#':
		return lexComment
	case isSpace(r):
		return lexSpace
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case r == '[':
		return l.emit(LeftBrack)
	case r == ']':
		return l.emit(RightBrack)
	case r == '|':
		return l.emit(Bar)
	case isDigit(r):
		return lexNumber
	case r == '`' && isDigit(l.peek()):
		// A backtick directly before a digit is a minus sign.
		return lexNumber
	case isLower(r):
		l.backup()
		return lexName
	}
	r, _ := utf8.DecodeLastRuneInString(l.input[:l.pos.Byte])
	if p, ok := prim.ByGlyph(r); ok {
		l.emit(Primitive)
		l.token.Prim = p
		return nil
	}
	return l.errorf("Invalid character %q", r)
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexNumber scans a number. Its first digit or sign has been consumed.
// A number is digits, an optional fraction and an optional exponent.
// An e with no digits after it is not part of the number.
func lexNumber(l *Scanner) stateFn {
	l.acceptDigits()
	if l.peek() == '.' {
		l.next()
		l.acceptDigits()
	}
	if r := l.peek(); r == 'e' || r == 'E' {
		reset := l.pos
		l.next()
		if l.peek() == '`' {
			l.next()
		}
		if !l.acceptDigits() {
			l.pos = reset
		}
	}
	return l.emit(Number)
}

// lexName scans a primitive's name, a run of lower case letters.
func lexName(l *Scanner) stateFn {
	for isLower(l.peek()) {
		l.next()
	}
	word := l.input[l.start.Byte:l.pos.Byte]
	p, ok := prim.ByName(word)
	if !ok {
		return l.errorf("Unknown primitive name %q", word)
	}
	l.emit(Primitive)
	l.token.Prim = p
	return nil
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}
