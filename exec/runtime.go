// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs compiled programs on a stack of arrays.
package exec // import "ufel.dev/ufel/exec"

import (
	"slices"

	"ufel.dev/ufel/compile"
	"ufel.dev/ufel/config"
	"ufel.dev/ufel/node"
	"ufel.dev/ufel/source"
	"ufel.dev/ufel/value"
)

// Runtime holds execution state: the value stack, the spans of the
// nodes being executed, and the current orientation.
//
// Errors inside execution halt it by panicking with a *source.Error;
// Exec recovers them. The values on the stack when an error occurs are
// left there.
type Runtime struct {
	conf  *config.Config
	comp  *compile.Compiler
	stack []value.NumArray
	trace []int // span indexes, innermost last
	ori   value.Ori
}

// New returns a runtime with an empty stack, in the orientation the
// configuration asks for.
func New(conf *config.Config) *Runtime {
	if conf == nil {
		conf = new(config.Config)
	}
	rt := &Runtime{
		conf: conf,
		comp: compile.New(conf),
	}
	if conf.Vertical() {
		rt.ori = value.Vertical
	}
	return rt
}

func (rt *Runtime) Config() *config.Config {
	return rt.conf
}

// Compile compiles text, read from the named file, without running it.
func (rt *Runtime) Compile(name, text string) (node.Node, error) {
	return rt.comp.Load(name, text)
}

// Run compiles text, read from the named file, and executes it.
func (rt *Runtime) Run(name, text string) error {
	n, err := rt.comp.Load(name, text)
	if err != nil {
		return err
	}
	return rt.Exec(n)
}

// RunString runs text that did not come from a file.
func (rt *Runtime) RunString(text string) error {
	return rt.Run("", text)
}

// Exec executes n, which must come from this runtime's assembly.
func (rt *Runtime) Exec(n node.Node) (err error) {
	defer rt.recover(&err)
	rt.exec(n)
	return nil
}

// recover turns an error panic into a returned error. With the panic
// debug switch on, panics are left alone.
func (rt *Runtime) recover(errp *error) {
	if rt.conf.Debug("panic") {
		return
	}
	switch e := recover().(type) {
	case nil:
	case *source.Error:
		*errp = e
	case value.Error:
		*errp = rt.errorf("%s", e)
	default:
		panic(e)
	}
}

// Assembly returns everything compiled so far.
func (rt *Runtime) Assembly() *node.Assembly {
	return rt.comp.Assembly()
}

// Ori returns the current orientation.
func (rt *Runtime) Ori() value.Ori {
	return rt.ori
}

// SetOri sets the current orientation.
func (rt *Runtime) SetOri(o value.Ori) {
	rt.ori = o
}

// Push pushes a onto the stack.
func (rt *Runtime) Push(a value.NumArray) {
	rt.stack = append(rt.stack, a)
}

// Pop removes and returns the top value. The argument number n is
// used in the error for an empty stack.
func (rt *Runtime) Pop(n int) (value.NumArray, error) {
	if len(rt.stack) == 0 {
		return value.NumArray{}, rt.errorf("Stack was empty when getting argument %d", n)
	}
	return rt.pop(n), nil
}

// Stack returns the values on the stack, bottom first.
func (rt *Runtime) Stack() []value.NumArray {
	s := make([]value.NumArray, len(rt.stack))
	for i, a := range rt.stack {
		s[i] = a.Clone()
	}
	return s
}

// TakeStack empties the stack and returns what was on it, bottom first.
func (rt *Runtime) TakeStack() []value.NumArray {
	s := rt.stack
	rt.stack = nil
	return s
}

// errorf returns a Runtime error located at the innermost executing node.
func (rt *Runtime) errorf(format string, args ...interface{}) *source.Error {
	span := -1
	if len(rt.trace) > 0 {
		span = rt.trace[len(rt.trace)-1]
	}
	return rt.Assembly().Errorf(source.Runtime, span, format, args...)
}

// check halts execution if err is not nil.
func (rt *Runtime) check(err error) {
	if err != nil {
		panic(rt.errorf("%s", err))
	}
}

func (rt *Runtime) push(a value.NumArray) {
	rt.stack = append(rt.stack, a)
}

// pop removes the top value, which is argument n of the current
// function.
func (rt *Runtime) pop(n int) value.NumArray {
	if len(rt.stack) == 0 {
		panic(rt.errorf("Stack was empty when getting argument %d", n))
	}
	a := rt.stack[len(rt.stack)-1]
	rt.stack[len(rt.stack)-1] = value.NumArray{}
	rt.stack = rt.stack[:len(rt.stack)-1]
	return a
}

// requireHeight halts execution if the stack has fewer than n values.
func (rt *Runtime) requireHeight(n int) {
	if len(rt.stack) < n {
		panic(rt.errorf("Stack was empty when getting argument %d", n-len(rt.stack)))
	}
}

// take removes the top n values and returns them, bottom first.
func (rt *Runtime) take(n int) []value.NumArray {
	rt.requireHeight(n)
	start := len(rt.stack) - n
	vals := slices.Clone(rt.stack[start:])
	clear(rt.stack[start:])
	rt.stack = rt.stack[:start]
	return vals
}

// copyTop returns copies of the top n values, bottom first.
func (rt *Runtime) copyTop(n int) []value.NumArray {
	rt.requireHeight(n)
	vals := make([]value.NumArray, n)
	for i, a := range rt.stack[len(rt.stack)-n:] {
		vals[i] = a.Clone()
	}
	return vals
}

// withSpan runs f with span on the trace.
func (rt *Runtime) withSpan(span int, f func()) {
	rt.trace = append(rt.trace, span)
	defer func() {
		rt.trace = rt.trace[:len(rt.trace)-1]
	}()
	defer rt.locate()
	f()
}

// locate reports an array operation that panicked at the innermost
// span on the trace.
func (rt *Runtime) locate() {
	if rt.conf.Debug("panic") {
		return
	}
	if r := recover(); r != nil {
		if e, ok := r.(value.Error); ok {
			panic(rt.errorf("%s", e))
		}
		panic(r)
	}
}

func (rt *Runtime) exec(n node.Node) {
	rt.traceNode(n)
	switch n := n.(type) {
	case node.Run:
		for _, m := range n {
			rt.exec(m)
		}
	case *node.Push:
		rt.push(n.Val.Clone())
	case *node.ArrayBuild:
		rt.withSpan(n.Span, func() {
			rt.exec(n.Inner)
			rows := rt.take(n.Len)
			a, err := value.FromRowArrays(rows, rt.ori)
			rt.check(err)
			rt.push(a)
		})
	case *node.Mon:
		rt.withSpan(n.Span, func() { rt.monadic(n.Prim) })
	case *node.Dy:
		rt.withSpan(n.Span, func() { rt.dyadic(n.Prim) })
	case *node.Mod:
		rt.withSpan(n.Span, func() { rt.mod(n.Prim, n.F) })
	case *node.DyMod:
		rt.withSpan(n.Span, func() { rt.dyMod(n.Prim, n.F, n.G) })
	}
}
