// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for ufel.
// It is factored out of main so it can be used for tests.
package run // import "ufel.dev/ufel/run"

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goforj/godump"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/exec"
	"ufel.dev/ufel/scan"
	"ufel.dev/ufel/source"
	"ufel.dev/ufel/value"
)

// Run compiles and executes text, read from the named file, once.
// Whatever is left on the stack is then printed to stdout, bottom
// first and one value per line, even if execution failed; the error,
// if any, goes to stderr.
// The return value says whether we completed without error.
func Run(rt *exec.Runtime, name, text string, stdout, stderr io.Writer) (success bool) {
	conf := rt.Config()
	n, err := rt.Compile(name, text)
	if err == nil {
		if conf.Debug("dump") {
			godump.Dump(n)
		}
		err = rt.Exec(n)
	}
	printValues(conf, stdout, rt.TakeStack())
	if err != nil {
		report(stderr, err)
		return false
	}
	return true
}

// report prints err, and every error joined to it, to w.
func report(w io.Writer, err error) {
	var e *source.Error
	if errors.As(err, &e) {
		fmt.Fprintln(w, e.Report())
		return
	}
	fmt.Fprintln(w, err)
}

// Script is like Run but also obeys special commands, lines that
// start with a right parenthesis and a letter. The text between
// special commands is run in order, stopping at the first failure.
// Line numbers in errors count from the start of text.
func Script(rt *exec.Runtime, name, text string, stdout, stderr io.Writer) (success bool) {
	lines := strings.SplitAfter(text, "\n")
	start := 0
	flush := func(end int) bool {
		if start == end {
			return true
		}
		// Blank lines keep the line numbers right.
		chunk := strings.Repeat("\n", start) + strings.Join(lines[start:end], "")
		if strings.TrimSpace(chunk) == "" {
			return true
		}
		return Run(rt, name, chunk, stdout, stderr)
	}
	for i, line := range lines {
		if !IsSpecial(line) {
			continue
		}
		if !flush(i) {
			return false
		}
		start = i + 1
		if err := Special(rt, line, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return false
		}
	}
	return flush(len(lines))
}

// Ufel runs text in a fresh runtime with the given configuration,
// writing to stdout and stderr. It is the entry point for tests.
func Ufel(conf *config.Config, text string, stdout, stderr io.Writer) bool {
	return Script(exec.New(conf), "", text, stdout, stderr)
}

// printValues prints the values one per line, as grids if the
// configuration asks for them.
func printValues(conf *config.Config, w io.Writer, values []value.NumArray) {
	for _, v := range values {
		if conf.Grid() {
			fmt.Fprintln(w, value.Grid(conf, v, conf.Width()))
		} else {
			fmt.Fprintln(w, value.Sprint(conf, v))
		}
	}
}

// Incomplete reports whether text leaves a parenthesis or bracket open,
// so an interactive reader should ask for another line.
func Incomplete(conf *config.Config, text string) bool {
	in := new(source.Inputs)
	toks, err := scan.Tokens(conf, in, in.Add("", text))
	if err != nil {
		return false
	}
	depth := 0
	for _, tok := range toks {
		switch tok.Type {
		case scan.LeftParen, scan.LeftBrack:
			depth++
		case scan.RightParen, scan.RightBrack:
			depth--
		}
	}
	return depth > 0
}
