// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compile turns parsed words into an instruction tree.
package compile // import "ufel.dev/ufel/compile"

import (
	"fmt"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/node"
	"ufel.dev/ufel/parse"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/source"
	"ufel.dev/ufel/value"
)

// Compiler adds programs to an Assembly.
type Compiler struct {
	conf *config.Config
	asm  *node.Assembly
}

// New returns a compiler with an empty assembly.
func New(conf *config.Config) *Compiler {
	if conf == nil {
		conf = new(config.Config)
	}
	return &Compiler{conf: conf, asm: node.NewAssembly()}
}

// Assembly returns everything compiled so far.
func (c *Compiler) Assembly() *node.Assembly {
	return c.asm
}

// Load compiles text, read from the file name (empty for text given
// directly), and appends it to the assembly. It returns the node for
// text alone.
//
// Each line is compiled even if an earlier one failed, keeping the
// first error of each failing line. If there are any errors nothing is
// added to the assembly and the returned error is a *source.Error
// holding them all.
func (c *Compiler) Load(name, text string) (node.Node, error) {
	src := c.asm.Inputs.Add(name, text)
	lines, errs := parse.Parse(c.conf, c.asm.Inputs, src)
	if len(errs) > 0 {
		return nil, source.Join(errs)
	}
	n := node.Empty()
	for _, line := range lines {
		ln, err := c.line(line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		n = node.Append(n, ln)
	}
	if len(errs) > 0 {
		return nil, source.Join(errs)
	}
	c.asm.Root = node.Append(c.asm.Root, n)
	return n, nil
}

func (c *Compiler) errorf(s source.Span, format string, args ...interface{}) *source.Error {
	return c.asm.Inputs.Errorf(source.Compile, s, format, args...)
}

func (c *Compiler) line(line parse.Line) (node.Node, *source.Error) {
	n := node.Empty()
	for _, w := range line {
		wn, err := c.word(w)
		if err != nil {
			return nil, err
		}
		n = node.Append(n, wn)
	}
	return n, nil
}

func (c *Compiler) lines(lines []parse.Line) (node.Node, *source.Error) {
	n := node.Empty()
	for _, line := range lines {
		ln, err := c.line(line)
		if err != nil {
			return nil, err
		}
		n = node.Append(n, ln)
	}
	return n, nil
}

func (c *Compiler) word(w parse.Word) (node.Node, *source.Error) {
	switch w := w.(type) {
	case *parse.Number:
		return &node.Push{Val: value.Scalar(value.Num(w.Val))}, nil
	case *parse.Mon:
		return &node.Mon{Prim: w.Prim, Span: c.asm.AddSpan(w.Span())}, nil
	case *parse.Dy:
		return &node.Dy{Prim: w.Prim, Span: c.asm.AddSpan(w.Span())}, nil
	case *parse.Func:
		return c.lines(w.Lines)
	case *parse.Array:
		inner, err := c.lines(w.Lines)
		if err != nil {
			return nil, err
		}
		return &node.ArrayBuild{
			Len:   node.SigOf(inner).Outputs,
			Inner: inner,
			Span:  c.asm.AddSpan(w.Span()),
		}, nil
	case *parse.Modified:
		return c.modified(w)
	}
	panic(fmt.Sprintf("compile: unexpected word %T", w))
}

func (c *Compiler) modified(m *parse.Modified) (node.Node, *source.Error) {
	want := m.Operands()
	if len(m.Args) != want {
		return nil, c.errorf(m.Span(), "%s takes %s but %s supplied",
			m.Mod.Name(), count(want, "operand"), were(len(m.Args)))
	}
	args := make([]node.SigNode, len(m.Args))
	for i, w := range m.Args {
		n, err := c.word(w)
		if err != nil {
			return nil, err
		}
		args[i] = node.NewSigNode(n)
		c.conf.Logger().Debug().
			Str("modifier", m.Mod.Name()).
			Int("operand", i).
			Stringer("sig", args[i].Sig).
			Msg(node.Tree(n))
	}
	span := c.asm.AddSpan(m.ModSpan)
	switch p := m.Mod.(type) {
	case prim.Mod:
		return &node.Mod{Prim: p, F: args[0], Span: span}, nil
	case prim.DyMod:
		return &node.DyMod{Prim: p, F: args[0], G: args[1], Span: span}, nil
	}
	panic(fmt.Sprintf("compile: %s is not a modifier", m.Mod))
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func were(n int) string {
	if n == 1 {
		return "1 was"
	}
	return fmt.Sprintf("%d were", n)
}
