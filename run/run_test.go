// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/demo"
	"ufel.dev/ufel/exec"
	"ufel.dev/ufel/value"
)

func TestRun(t *testing.T) {
	var tests = []struct {
		text   string
		ok     bool
		stdout string
		stderr string
	}{
		{"1 2 +", true, "3\n", ""},
		{"1 [2 3]", true, "1\n[2 3]\n", ""},
		{"", true, "", ""},
		{"4 1 2 3 +\n+ [1 2] [1 2 3] +", false, "4\n6\n", "Runtime error at t.fel:2:17: Forms [3] and [2] are not compatible\n"},
		{"[1 2", false, "", "Parse error at t.fel:1:4: Expected \"]\"\n"},
	}
	for _, test := range tests {
		var stdout, stderr bytes.Buffer
		ok := Run(exec.New(nil), "t.fel", test.text, &stdout, &stderr)
		if ok != test.ok || stdout.String() != test.stdout || stderr.String() != test.stderr {
			t.Errorf("%q: got %t %q %q; want %t %q %q", test.text,
				ok, stdout.String(), stderr.String(),
				test.ok, test.stdout, test.stderr)
		}
	}
}

func TestGrid(t *testing.T) {
	var conf config.Config
	conf.SetGrid(true)
	var stdout, stderr bytes.Buffer
	if !Ufel(&conf, "[[1 2] [3 4]]", &stdout, &stderr) {
		t.Fatal(stderr.String())
	}
	want := "╭─\n╷ 1 2\n  3 4\n      ╯\n"
	if stdout.String() != want {
		t.Errorf("got\n%s\nwant\n%s", stdout.String(), want)
	}
}

func TestIsSpecial(t *testing.T) {
	for _, s := range []string{")help", "  )debug trace", ")format \"%v\"\n"} {
		if !IsSpecial(s) {
			t.Errorf("%q is not special", s)
		}
	}
	for _, s := range []string{")", "1 )", "(1\n", ") x", "# )help"} {
		if IsSpecial(s) {
			t.Errorf("%q is special", s)
		}
	}
}

func TestScript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ok := Ufel(nil, "1\n)grid\n+ +", &stdout, &stderr)
	if ok {
		t.Fatal("script succeeded")
	}
	if got := stdout.String(); got != "1\n1\n" {
		t.Errorf("stdout %q", got)
	}
	// The error line counts the special command.
	if got := stderr.String(); got != "Runtime error at 3:1: Stack was empty when getting argument 1\n" {
		t.Errorf("stderr %q", got)
	}
}

func TestSpecial(t *testing.T) {
	var tests = []struct {
		line string
		out  string
		err  string
	}{
		{")help fork", "⊃ fork: Call two functions on the same values\n", ""},
		{")help ⊃", "⊃ fork: Call two functions on the same values\n", ""},
		{")help nothing", "", `)help: no primitive "nothing"`},
		{")debug trace", "1\n", ""},
		{")debug nothing", "", "no such debug flag: nothing"},
		{")format", "\"%v\"\n", ""},
		{")prompt", "\"\"\n", ""},
		{")vertical", "vertical\n", ""},
		{")width 30", "", ""},
		{")width none", "", `illegal width "none"`},
		{")get \"no such file.fel\"", "", "open no such file.fel: no such file or directory"},
		{")frobnicate", "", ")frobnicate: not recognized"},
	}
	for _, test := range tests {
		var conf config.Config
		rt := exec.New(&conf)
		var out bytes.Buffer
		err := Special(rt, test.line, &out)
		errStr := ""
		if err != nil {
			errStr = err.Error()
		}
		if out.String() != test.out || errStr != test.err {
			t.Errorf("%q: got %q %q; want %q %q", test.line, out.String(), errStr, test.out, test.err)
		}
	}
}

func TestSpecialSettings(t *testing.T) {
	var conf config.Config
	rt := exec.New(&conf)
	var out bytes.Buffer
	for _, line := range []string{`)format "%.1f"`, ")vertical", ")grid", ")width 30", `)prompt "> "`} {
		if err := Special(rt, line, &out); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if conf.Format() != "%.1f" || !conf.Vertical() || !conf.Grid() || conf.Width() != 30 || conf.Prompt() != "> " {
		t.Errorf("settings not applied: %+v", conf)
	}
	if rt.Ori() != value.Vertical {
		t.Errorf("runtime orientation %s", rt.Ori())
	}
	if err := Special(rt, ")vertical", &out); err != nil || rt.Ori() != value.Horizontal {
		t.Errorf("second )vertical: %v %s", err, rt.Ori())
	}
}

func TestHelpLists(t *testing.T) {
	rt := exec.New(nil)
	var out bytes.Buffer
	if err := Special(rt, ")help", &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), ") help\n") {
		t.Errorf("help starts %q", out.String())
	}
	out.Reset()
	if err := Special(rt, ")help prims", &out); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 36 {
		t.Errorf("%d primitives listed", lines)
	}
}

func TestGet(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "lib.fel")
	if err := os.WriteFile(name, []byte("2 3\n×\n"), 0666); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if !Ufel(nil, ")get "+name, &stdout, &stderr) {
		t.Fatal(stderr.String())
	}
	if stdout.String() != "6\n" {
		t.Errorf("got %q", stdout.String())
	}

	bad := filepath.Join(dir, "bad.fel")
	if err := os.WriteFile(bad, []byte("1\n+ +\n"), 0666); err != nil {
		t.Fatal(err)
	}
	stdout.Reset()
	stderr.Reset()
	if Ufel(nil, ")get "+bad, &stdout, &stderr) {
		t.Fatal("bad file succeeded")
	}
	want := "Runtime error at " + bad + ":2:1: Stack was empty when getting argument 2\n"
	if stderr.String() != want {
		t.Errorf("got %q, want %q", stderr.String(), want)
	}
}

func TestDemo(t *testing.T) {
	var conf config.Config
	var out, errs bytes.Buffer
	conf.SetErrOutput(&errs)
	rt := exec.New(&conf)
	if err := demo.Run(nil, demoRunner(rt, &out), &out); err != nil {
		t.Fatal(err)
	}
	if errs.Len() != 0 {
		t.Fatalf("demo errors:\n%s", errs.String())
	}
	for _, want := range []string{"[[2×3] 1 2 3 4 5 6]", "\n2.5\n", "\n4\n3\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("demo output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestIncomplete(t *testing.T) {
	var conf config.Config
	var tests = []struct {
		text string
		want bool
	}{
		{"1 2 +", false},
		{"[1 2", true},
		{"[[1 2]\n[3 4]", true},
		{"⊃(+|×", true},
		{"[1 2]]", false},
		{"[1 $", false},
	}
	for _, test := range tests {
		if got := Incomplete(&conf, test.text); got != test.want {
			t.Errorf("Incomplete(%q) = %t", test.text, got)
		}
	}
}
