// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"

	"ufel.dev/ufel/source"
)

// Assembly is a compiled program. Nodes refer to their source
// locations by index into Spans.
type Assembly struct {
	Root   Node
	Spans  []source.Span
	Inputs *source.Inputs
}

// NewAssembly returns an empty assembly.
func NewAssembly() *Assembly {
	return &Assembly{
		Root:   Empty(),
		Inputs: new(source.Inputs),
	}
}

// AddSpan records s and returns its index.
func (a *Assembly) AddSpan(s source.Span) int {
	a.Spans = append(a.Spans, s)
	return len(a.Spans) - 1
}

// Errorf returns an error located at the span with index i.
func (a *Assembly) Errorf(phase source.Phase, i int, format string, args ...interface{}) *source.Error {
	if i < 0 || i >= len(a.Spans) {
		return source.Unlocated(phase, fmt.Sprintf(format, args...))
	}
	return a.Inputs.Errorf(phase, a.Spans[i], format, args...)
}
