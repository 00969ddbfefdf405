// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node defines the compiled instruction tree, its stack
// signatures and the Assembly holding a compiled program.
//
// A Node is never modified once built. The builders here return new
// nodes, so subtrees can be shared freely.
package node // import "ufel.dev/ufel/node"

import (
	"slices"

	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/value"
)

// Node is one of Run, Push, ArrayBuild, Mon, Dy, Mod and DyMod.
type Node interface {
	node()
}

// Run executes its nodes in order. The empty Run does nothing.
type Run []Node

// Push pushes a literal array.
type Push struct {
	Val value.NumArray
}

// ArrayBuild runs Inner and collects the top Len values into one array.
type ArrayBuild struct {
	Len   int
	Inner Node
	Span  int
}

// Mon applies a monadic function.
type Mon struct {
	Prim prim.Monadic
	Span int
}

// Dy applies a dyadic function.
type Dy struct {
	Prim prim.Dyadic
	Span int
}

// Mod applies a modifier to one function.
type Mod struct {
	Prim prim.Mod
	F    SigNode
	Span int
}

// DyMod applies a modifier to two functions.
type DyMod struct {
	Prim prim.DyMod
	F, G SigNode
	Span int
}

func (Run) node()         {}
func (*Push) node()       {}
func (*ArrayBuild) node() {}
func (*Mon) node()        {}
func (*Dy) node()         {}
func (*Mod) node()        {}
func (*DyMod) node()      {}

// A SigNode is a node with its signature.
type SigNode struct {
	Node Node
	Sig  Signature
}

// NewSigNode returns n with its computed signature.
func NewSigNode(n Node) SigNode {
	return SigNode{Node: n, Sig: SigOf(n)}
}

// Empty returns the node that does nothing.
func Empty() Node {
	return Run(nil)
}

// Nodes returns the sequence n stands for: its children for a Run,
// otherwise n alone.
func Nodes(n Node) []Node {
	if r, ok := n.(Run); ok {
		return r
	}
	if n == nil {
		return nil
	}
	return []Node{n}
}

// Append returns the node running a and then b.
// Runs are flattened and a single node is never wrapped in a Run.
func Append(a, b Node) Node {
	as, bs := Nodes(a), Nodes(b)
	switch {
	case len(as) == 0:
		return b
	case len(bs) == 0:
		return a
	}
	return Run(slices.Concat(as, bs))
}

// Prepend returns the node running b and then a.
func Prepend(a, b Node) Node {
	return Append(b, a)
}

// FromNodes returns the node running the nodes in order.
func FromNodes(nodes ...Node) Node {
	n := Empty()
	for _, m := range nodes {
		n = Append(n, m)
	}
	return n
}

// Span returns the span index of n, if it has one.
func Span(n Node) (int, bool) {
	switch n := n.(type) {
	case *ArrayBuild:
		return n.Span, true
	case *Mon:
		return n.Span, true
	case *Dy:
		return n.Span, true
	case *Mod:
		return n.Span, true
	case *DyMod:
		return n.Span, true
	}
	return 0, false
}

// AsFlippedDy reports whether n is a dyadic function, possibly under
// flip, and returns it.
func AsFlippedDy(n Node) (dy prim.Dyadic, flipped, ok bool) {
	switch n := n.(type) {
	case *Dy:
		return n.Prim, false, true
	case *Mod:
		if n.Prim != prim.Flip {
			break
		}
		if d, ok := n.F.Node.(*Dy); ok {
			return d.Prim, true, true
		}
	case Run:
		if len(n) == 1 {
			return AsFlippedDy(n[0])
		}
	}
	return 0, false, false
}
