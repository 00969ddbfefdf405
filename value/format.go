// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ufel.dev/ufel/config"
)

// String formats a as 3, [1 2 3] for a list, or [[2×2] 1 2 3 4] with
// the form first for any other shape.
func (a Array[T]) String() string {
	return a.sprint(func(x T) string { return fmt.Sprint(x) })
}

// Sprint is like String but formats numbers with the configured format.
func Sprint(conf *config.Config, a NumArray) string {
	format := conf.Format()
	return a.sprint(func(x Num) string { return x.Sprint(format) })
}

func (a Array[T]) sprint(elem func(T) string) string {
	if a.Form.IsScalar() {
		return elem(a.Data.At(0))
	}
	var b strings.Builder
	b.WriteByte('[')
	if !a.Form.IsList() {
		b.WriteString(a.Form.String())
		b.WriteByte(' ')
	}
	for i, x := range a.Data.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem(x))
	}
	b.WriteByte(']')
	return b.String()
}

// Grid formats a as a box of at most width columns: one line per
// row of the last axis, a blank line between blocks of each outer
// axis, and an ellipsis where a line was cut short.
// Scalars and rank-1 arrays print as in Sprint.
func Grid(conf *config.Config, a NumArray, width int) string {
	f := a.Form
	if f.IsScalar() || f.DimsRank() == 1 {
		return Sprint(conf, a)
	}
	format := conf.Format()
	strs := make([]string, a.Data.Len())
	for i, x := range a.Data.All() {
		strs[i] = x.Sprint(format)
	}
	dims := f.Dims()
	last := dims[len(dims)-1]
	colWidth := make([]int, last)
	for i, s := range strs {
		colWidth[i%last] = max(colWidth[i%last], utf8.RuneCountInString(s))
	}
	w := max(last-1, 0) + 5
	for _, cw := range colWidth {
		w += cw
	}
	width = max(width, 8)
	overflow := width < w
	w = min(w, width)

	// Height: one line per row of the last axis, plus a blank line
	// between consecutive blocks of every outer axis but the innermost.
	h := 1
	for j, d := range slicesReverse(dims[:len(dims)-1]) {
		h *= d
		if j > 0 {
			h += max(d-1, 0)
		}
	}
	h = max(h, len(dims)-1) + 2

	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", w))
	}
	curr := make([]int, len(dims)-1)
	next := 0
	for y := 1; y < h; y++ {
		row := grid[y]
		x := 2
		for k := 0; k < last && next < len(strs); k++ {
			s := strs[next]
			next++
			if k > 0 {
				x++
			}
			x += colWidth[k] - utf8.RuneCountInString(s)
			for _, c := range s {
				if x >= w-3 {
					break
				}
				row[x] = c
				x++
			}
		}
		if overflow {
			row[w-3] = '…'
		}
		for i := len(curr) - 1; i >= 0; i-- {
			curr[i]++
			if curr[i] < dims[i] {
				break
			}
			curr[i] = 0
			y++
		}
	}
	grid[0][0], grid[0][1] = '╭', '─'
	for i := 1; i < len(dims) && i < h; i++ {
		grid[i][0] = '╷'
	}
	grid[h-1][w-2] = '╯'
	lines := make([]string, h)
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row[:w-1]), " ")
	}
	return strings.Join(lines, "\n")
}

func slicesReverse(s []int) []int {
	r := make([]int, len(s))
	for i, x := range s {
		r[len(s)-1-i] = x
	}
	return r
}
