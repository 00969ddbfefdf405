// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "strings"

// Phase says which stage of processing produced an error.
type Phase int

const (
	Lex Phase = iota
	Parse
	Compile
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Lex:
		return "Lex"
	case Parse:
		return "Parse"
	case Compile:
		return "Compile"
	case Runtime:
		return "Runtime"
	}
	return "Unknown"
}

// Error is a located error. When several independent errors are
// found together, the first is the primary and the rest are in Multi.
type Error struct {
	Phase   Phase
	Span    HumanSpan
	Message string
	Line    string // text of the offending source line, if known
	Multi   []*Error
}

func (e *Error) Error() string {
	loc := e.Span.String()
	if e.Span.Start.Line == 0 {
		loc = "<unknown>"
	}
	return e.Phase.String() + " error at " + loc + ": " + e.Message
}

// Unlocated returns an error with no known location.
func Unlocated(phase Phase, msg string) *Error {
	return &Error{Phase: phase, Message: msg}
}

// Errors returns e followed by its attached errors.
func (e *Error) Errors() []*Error {
	return append([]*Error{e}, e.Multi...)
}

// Report formats every error, one per line.
func (e *Error) Report() string {
	var b strings.Builder
	for i, err := range e.Errors() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Join combines errors into one. It returns nil if there are none.
func Join(errs []*Error) *Error {
	if len(errs) == 0 {
		return nil
	}
	first := *errs[0]
	first.Multi = append(append([]*Error(nil), first.Multi...), errs[1:]...)
	return &first
}
