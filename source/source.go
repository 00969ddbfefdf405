// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source records program texts and locations within them.
// Locations are kept as byte and character offsets and are turned
// into line and column numbers only when an error is reported.
package source // import "ufel.dev/ufel/source"

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Loc is a position in an input.
type Loc struct {
	Char int // character (rune) offset
	Byte int // byte offset
}

// Span is a range of one input, identified by its index in Inputs.
type Span struct {
	Start, End Loc
	Src        int
}

// Merge returns the smallest span covering s and t.
// Both must come from the same input.
func (s Span) Merge(t Span) Span {
	if s.Src != t.Src {
		panic("source: cannot merge spans from different inputs")
	}
	if t.Start.Byte < s.Start.Byte {
		s.Start = t.Start
	}
	if t.End.Byte > s.End.Byte {
		s.End = t.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Src, s.Start.Char, s.End.Char)
}

// Input is one program text. Name is the file it came from,
// or empty for text given directly.
type Input struct {
	Name string
	Text string
}

// Inputs is the list of texts loaded so far.
type Inputs struct {
	list []Input
}

// Add appends an input and returns its index.
func (in *Inputs) Add(name, text string) int {
	in.list = append(in.list, Input{Name: name, Text: text})
	return len(in.list) - 1
}

// Len returns the number of inputs.
func (in *Inputs) Len() int {
	return len(in.list)
}

// Get returns the input with index i.
func (in *Inputs) Get(i int) Input {
	return in.list[i]
}

// SpanText returns the text covered by the span.
func (in *Inputs) SpanText(s Span) string {
	return in.list[s.Src].Text[s.Start.Byte:s.End.Byte]
}

// HumanLoc is a 1-based line and column.
type HumanLoc struct {
	Line, Col int
}

// HumanSpan is a span as shown to people.
type HumanSpan struct {
	Start, End HumanLoc
	Name       string
}

func (h HumanSpan) String() string {
	if h.Name != "" {
		return fmt.Sprintf("%s:%d:%d", h.Name, h.Start.Line, h.Start.Col)
	}
	return fmt.Sprintf("%d:%d", h.Start.Line, h.Start.Col)
}

// HumanLoc converts a location in input src.
func (in *Inputs) HumanLoc(loc Loc, src int) HumanLoc {
	before := in.list[src].Text[:loc.Byte]
	line := strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return HumanLoc{Line: line, Col: utf8.RuneCountInString(before) + 1}
}

// HumanSpan converts a span.
func (in *Inputs) HumanSpan(s Span) HumanSpan {
	return HumanSpan{
		Start: in.HumanLoc(s.Start, s.Src),
		End:   in.HumanLoc(s.End, s.Src),
		Name:  in.list[s.Src].Name,
	}
}

// line returns the text of the 1-based line n of input src.
func (in *Inputs) line(src, n int) string {
	lines := strings.Split(in.list[src].Text, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// Errorf returns an error of the given phase located at s.
func (in *Inputs) Errorf(phase Phase, s Span, format string, args ...interface{}) *Error {
	h := in.HumanSpan(s)
	return &Error{
		Phase:   phase,
		Span:    h,
		Message: fmt.Sprintf(format, args...),
		Line:    in.line(s.Src, h.Start.Line),
	}
}
