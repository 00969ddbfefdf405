// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"

	"ufel.dev/ufel/prim"
)

// Signature is the stack effect of a node: it pops Args values and
// pushes Outputs values.
type Signature struct {
	Args    int
	Outputs int
}

func (s Signature) String() string {
	if s.Outputs == 1 {
		return fmt.Sprintf("|%d", s.Args)
	}
	return fmt.Sprintf("|%d.%d", s.Args, s.Outputs)
}

// checker simulates the stack height of a node.
// The height may drop below zero; the lowest point reached is the
// number of arguments the node needs.
type checker struct {
	height, min int
}

func (c *checker) effect(args, outputs int) {
	c.height -= args
	c.min = min(c.min, c.height)
	c.height += outputs
}

// SigOf computes the signature of n.
func SigOf(n Node) Signature {
	var c checker
	c.node(n)
	return Signature{Args: -c.min, Outputs: c.height - c.min}
}

func (c *checker) node(n Node) {
	switch n := n.(type) {
	case Run:
		for _, m := range n {
			c.node(m)
		}
	case *Push:
		c.effect(0, 1)
	case *ArrayBuild:
		c.node(n.Inner)
		c.effect(n.Len, 1)
	case *Mon:
		c.effect(1, 1)
	case *Dy:
		c.effect(2, 1)
	case *Mod:
		f := n.F.Sig
		switch n.Prim {
		case prim.Dip:
			c.effect(f.Args+1, f.Outputs+1)
		case prim.Turn:
			c.effect(f.Args, f.Outputs)
		case prim.Reduce, prim.Scan:
			c.effect(1, 1)
		case prim.Self:
			c.effect(1, 2)
			c.effect(f.Args, f.Outputs)
		case prim.Flip:
			c.effect(2, 2)
			c.effect(f.Args, f.Outputs)
		case prim.On, prim.By:
			c.effect(max(f.Args, 1), f.Outputs+1)
		case prim.Both:
			c.effect(f.Args*2, f.Outputs*2)
		default:
			panic(fmt.Sprintf("node: unknown modifier %d", n.Prim))
		}
	case *DyMod:
		f, g := n.F.Sig, n.G.Sig
		switch n.Prim {
		case prim.Fork:
			c.effect(max(f.Args, g.Args), f.Outputs+g.Outputs)
		case prim.Bracket:
			c.effect(f.Args+g.Args, f.Outputs+g.Outputs)
		default:
			panic(fmt.Sprintf("node: unknown modifier %d", n.Prim))
		}
	case nil:
	default:
		panic(fmt.Sprintf("node: unknown node %T", n))
	}
}
