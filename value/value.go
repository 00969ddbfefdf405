// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements arrays with dual-orientation forms and the
// operations on them: element-wise arithmetic, axis movement and folding.
package value // import "ufel.dev/ufel/value"

import "fmt"

// Error is the error type returned by array operations.
// Operations that are not yet implemented panic with an Error.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// unimplemented panics with an Error saying what is missing.
func unimplemented(what string) {
	panic(Errorf("%s is not yet implemented", what))
}

// Ori selects which reading of a Form is current.
type Ori int

const (
	Horizontal Ori = iota
	Vertical
)

// Flip returns the other orientation.
func (o Ori) Flip() Ori {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Ori) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}
