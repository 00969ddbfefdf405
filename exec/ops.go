// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"slices"

	"ufel.dev/ufel/node"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/value"
)

// Functions pop their arguments in reverse order: the topmost value is
// argument 1, the one below it argument 2.

func (rt *Runtime) monadic(p prim.Monadic) {
	a := rt.pop(1)
	var (
		res value.NumArray
		err error
	)
	switch p {
	case prim.Identity:
		res = a
	case prim.Negate, prim.Not, prim.Absolute, prim.Sign:
		res, err = value.Unary(p.Name(), a)
	case prim.Length:
		res = value.Length(a, rt.ori)
	case prim.Shape:
		res = value.ShapeOf(a, rt.ori)
	case prim.Form:
		res = value.FormOf(a)
	case prim.First:
		res, err = value.First(a, rt.ori)
	case prim.Transpose:
		res, err = value.Transpose(a, rt.ori)
	case prim.Swap:
		res, err = value.Swap(a)
	case prim.Range:
		res, err = value.Range(a)
	case prim.Deform:
		res = value.Deform(a, rt.ori)
	default:
		panic(rt.errorf("monadic %s not implemented", p))
	}
	rt.check(err)
	rt.push(res)
}

func (rt *Runtime) dyadic(p prim.Dyadic) {
	a := rt.pop(1)
	b := rt.pop(2)
	var (
		res value.NumArray
		err error
	)
	switch p {
	case prim.Chunk:
		// The chunk size is on top.
		res, err = value.Chunk(b, a, rt.ori)
	default:
		res, err = value.Binary(a, p.Name(), b)
	}
	rt.check(err)
	rt.push(res)
}

func (rt *Runtime) mod(p prim.Mod, f node.SigNode) {
	switch p {
	case prim.Dip:
		a := rt.pop(1)
		rt.exec(f.Node)
		rt.push(a)
	case prim.Turn:
		rt.turn(f)
	case prim.Self:
		a := rt.pop(1)
		rt.push(a.Clone())
		rt.push(a)
		rt.exec(f.Node)
	case prim.Flip:
		a := rt.pop(1)
		b := rt.pop(2)
		rt.push(a)
		rt.push(b)
		rt.exec(f.Node)
	case prim.On:
		a := rt.pop(1)
		if f.Sig.Args > 0 {
			rt.push(a.Clone())
		}
		rt.exec(f.Node)
		rt.push(a)
	case prim.By:
		if n := f.Sig.Args; n > 0 {
			rt.requireHeight(n)
			i := len(rt.stack) - n
			rt.stack = slices.Insert(rt.stack, i, rt.stack[i].Clone())
		} else {
			rt.requireHeight(1)
		}
		rt.exec(f.Node)
	case prim.Both:
		g1 := rt.take(f.Sig.Args)
		rt.exec(f.Node)
		rt.stack = append(rt.stack, g1...)
		rt.exec(f.Node)
	case prim.Reduce, prim.Scan:
		rt.fold(p, f)
	default:
		panic(rt.errorf("modifier %s not implemented", p))
	}
}

// turn runs f in the other orientation. The orientation is restored
// however f finishes.
func (rt *Runtime) turn(f node.SigNode) {
	ori := rt.ori
	defer func() { rt.ori = ori }()
	rt.ori = ori.Flip()
	rt.exec(f.Node)
}

// fold reduces or scans the top value with a dyadic function, which
// may be flipped.
func (rt *Runtime) fold(p prim.Mod, f node.SigNode) {
	dy, flipped, ok := node.AsFlippedDy(f.Node)
	fn := value.BinaryFunc(dy.Name())
	if !ok || fn == nil || f.Sig != (node.Signature{Args: 2, Outputs: 1}) {
		verb := "reduced"
		if p == prim.Scan {
			verb = "scanned"
		}
		panic(rt.errorf("Function cannot be %s", verb))
	}
	if flipped {
		fn = value.Flip(fn)
	}
	a := rt.pop(1)
	if p == prim.Scan {
		rt.push(value.ScanWith(a, fn, rt.ori))
		return
	}
	identity, _ := value.Identity(dy.Name())
	rt.push(value.ReduceWith(a, identity, fn, rt.ori))
}

func (rt *Runtime) dyMod(p prim.DyMod, f, g node.SigNode) {
	switch p {
	case prim.Fork:
		args := rt.copyTop(g.Sig.Args)
		rt.exec(f.Node)
		rt.stack = append(rt.stack, args...)
		rt.exec(g.Node)
	case prim.Bracket:
		args := rt.take(g.Sig.Args)
		rt.exec(f.Node)
		rt.stack = append(rt.stack, args...)
		rt.exec(g.Node)
	default:
		panic(rt.errorf("modifier %s not implemented", p))
	}
}
