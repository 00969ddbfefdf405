// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree formats a line of words for debugging.
func Tree(line Line) string {
	s := make([]string, len(line))
	for i, w := range line {
		s[i] = tree(w)
	}
	return strings.Join(s, " ")
}

func lines(ls []Line) string {
	s := make([]string, len(ls))
	for i, l := range ls {
		s[i] = Tree(l)
	}
	return strings.Join(s, "; ")
}

func tree(w Word) string {
	switch w := w.(type) {
	case *Number:
		return "<" + strconv.FormatFloat(w.Val, 'g', -1, 64) + ">"
	case *Mon:
		return w.Prim.String()
	case *Dy:
		return w.Prim.String()
	case *Func:
		return "(" + lines(w.Lines) + ")"
	case *Array:
		return "[" + lines(w.Lines) + "]"
	case *Modified:
		args := make([]string, len(w.Args))
		for i, a := range w.Args {
			args[i] = tree(a)
		}
		sep := " "
		if w.Pack {
			sep = "|"
		}
		return fmt.Sprintf("(%s %s)", w.Mod, strings.Join(args, sep))
	}
	return fmt.Sprintf("%T", w)
}
