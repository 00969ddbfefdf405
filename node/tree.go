// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"strings"
)

// Tree returns a one-line description of n for debugging.
// Literals print as <...>, applications as (name operands...).
func Tree(n Node) string {
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case Run:
		s := make([]string, len(n))
		for i, m := range n {
			s[i] = Tree(m)
		}
		return "{" + strings.Join(s, " ") + "}"
	case *Push:
		return fmt.Sprintf("<%s>", n.Val)
	case *ArrayBuild:
		return fmt.Sprintf("[%d %s]", n.Len, Tree(n.Inner))
	case *Mon:
		return n.Prim.String()
	case *Dy:
		return n.Prim.String()
	case *Mod:
		return fmt.Sprintf("(%s %s%s)", n.Prim, Tree(n.F.Node), n.F.Sig)
	case *DyMod:
		return fmt.Sprintf("(%s %s%s %s%s)", n.Prim, Tree(n.F.Node), n.F.Sig, Tree(n.G.Node), n.G.Sig)
	}
	return fmt.Sprintf("%T", n)
}
