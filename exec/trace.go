// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"ufel.dev/ufel/node"
	"ufel.dev/ufel/value"
)

// traceNode logs n before it executes, when tracing is on.
func (rt *Runtime) traceNode(n node.Node) {
	e := rt.conf.Logger().Trace()
	if !e.Enabled() {
		return
	}
	e = e.Str("node", describe(n)).
		Int("depth", len(rt.trace)).
		Int("height", len(rt.stack)).
		Stringer("ori", rt.ori)
	if len(rt.stack) > 0 {
		e = e.Str("top", short(value.Sprint(rt.conf, rt.stack[len(rt.stack)-1])))
	}
	if span, ok := node.Span(n); ok {
		asm := rt.Assembly()
		if span >= 0 && span < len(asm.Spans) {
			e = e.Stringer("at", asm.Inputs.HumanSpan(asm.Spans[span]))
		}
	}
	e.Msg("exec")
}

// describe names a node in a trace.
func describe(n node.Node) string {
	switch n := n.(type) {
	case node.Run:
		return fmt.Sprintf("run(%d)", len(n))
	case *node.Push:
		return "push " + short(n.Val.String())
	case *node.ArrayBuild:
		return fmt.Sprintf("array(%d)", n.Len)
	case *node.Mon:
		return n.Prim.Name()
	case *node.Dy:
		return n.Prim.Name()
	case *node.Mod:
		return n.Prim.Name() + n.F.Sig.String()
	case *node.DyMod:
		return n.Prim.Name() + n.F.Sig.String() + n.G.Sig.String()
	}
	return fmt.Sprintf("%T", n)
}

// short returns its argument, truncating if it's too long.
func short(s string) string {
	if r := []rune(s); len(r) > 50 {
		s = string(r[:50]) + "..."
	}
	return s
}
