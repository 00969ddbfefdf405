// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"
	"strings"
	"testing"

	"ufel.dev/ufel/config"
)

func TestSprintFormat(t *testing.T) {
	var conf config.Config
	a := List[Num](1, 2.5)
	if got := Sprint(&conf, a); got != "[1 2.5]" {
		t.Errorf("default Sprint = %q", got)
	}
	conf.SetFormat("%.2f")
	if got := Sprint(&conf, a); got != "[1.00 2.50]" {
		t.Errorf("Sprint with %%.2f = %q", got)
	}
}

func TestGrid(t *testing.T) {
	var conf config.Config
	got := Grid(&conf, nums(NormalForm(2, 2)), 80)
	want := strings.Join([]string{
		"╭─",
		"╷ 1 2",
		"  3 4",
		"      ╯",
	}, "\n")
	if got != want {
		t.Errorf("Grid:\n%s\nwant:\n%s", got, want)
	}
	if got := Grid(&conf, List[Num](1, 2), 80); got != "[1 2]" {
		t.Errorf("Grid of list = %q", got)
	}
}

func TestGridBlocks(t *testing.T) {
	var conf config.Config
	got := Grid(&conf, nums(NormalForm(2, 2, 2)), 80)
	lines := strings.Split(got, "\n")
	// Two blocks of two lines with a blank line between.
	want := []string{"╭─", "╷ 1 2", "╷ 3 4", "", "  5 6", "  7 8", "      ╯"}
	if !slices.Equal(lines, want) {
		t.Errorf("Grid:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestGridOverflow(t *testing.T) {
	var conf config.Config
	a := nums(NormalForm(2, 20))
	for _, line := range strings.Split(Grid(&conf, a, 20), "\n") {
		if n := len([]rune(line)); n > 19 {
			t.Errorf("line %q is %d runes wide", line, n)
		}
	}
}
