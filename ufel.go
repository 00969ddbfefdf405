// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/exec"
	"ufel.dev/ufel/run"
)

var (
	execute  = flag.String("e", "", "run the argument as a program and exit")
	vertical = flag.Bool("vertical", false, "start in vertical orientation")
	grid     = flag.Bool("grid", false, "print arrays as boxed grids")
	format   = flag.String("format", "", "fmt verb for printing numbers")
	debugs   = flag.String("debug", "", "comma-separated list of debug flags to enable")
	prompt   = flag.String("prompt", "", "interactive prompt")
	width    = flag.Int("width", 0, "width for printing grids; 0 asks the terminal")
)

const (
	defaultFile = "main.fel"
	historyFile = ".ufel_history"
)

var conf config.Config

func main() {
	flag.Usage = usage
	flag.Parse()

	conf.SetVertical(*vertical)
	conf.SetGrid(*grid)
	conf.SetFormat(*format)
	conf.SetPrompt(*prompt)
	conf.SetWidth(*width)
	if *debugs != "" {
		for _, d := range strings.Split(*debugs, ",") {
			if !conf.SetDebug(d, true) {
				fmt.Fprintf(os.Stderr, "ufel: unknown debug flag %q\n", d)
				os.Exit(2)
			}
		}
	}

	rt := exec.New(&conf)

	if *execute != "" {
		if !run.Script(rt, "", *execute, os.Stdout, os.Stderr) {
			os.Exit(1)
		}
		return
	}

	switch flag.NArg() {
	case 0:
		if _, err := os.Stat(defaultFile); err == nil {
			runFile(rt, defaultFile)
			return
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			interactive(rt)
			return
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ufel: %s\n", err)
			os.Exit(1)
		}
		if !run.Script(rt, "<stdin>", string(data), os.Stdout, os.Stderr) {
			os.Exit(1)
		}
	case 1:
		if flag.Arg(0) == "help" {
			help(os.Stdout)
			return
		}
		runFile(rt, flag.Arg(0))
	default:
		usage()
	}
}

// runFile runs the named file and exits with status 1 if it fails.
func runFile(rt *exec.Runtime, name string) {
	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ufel: Failed to read %s: %s\n", name, err)
		os.Exit(1)
	}
	if !run.Script(rt, name, string(data), os.Stdout, os.Stderr) {
		os.Exit(1)
	}
}

// interactive reads programs from the terminal, with line editing and
// history, and runs each as it is completed. The stack is printed and
// emptied after each one.
func interactive(rt *exec.Runtime) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		text, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(text, "\n", " "))
		if run.IsSpecial(text) {
			if err := run.Special(rt, text, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		run.Run(rt, "", text, os.Stdout, os.Stderr)
	}
}

// readProgram reads lines until the brackets they open are closed.
// It reports false at end of input or on interrupt.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		p := conf.Prompt()
		if b.Len() > 0 {
			p = strings.Repeat(" ", len([]rune(p)))
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ufel: %s\n", err)
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !run.Incomplete(&conf, b.String()) {
			return b.String(), true
		}
	}
}

func help(w io.Writer) {
	fmt.Fprintln(w, "Ufel - Uiua form experimentation language")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ufel [flags] [file]")
	fmt.Fprintf(w, "  Defaults to %s if no file is specified, then to the\n", defaultFile)
	fmt.Fprintln(w, "  interactive prompt or standard input.")
	fmt.Fprintln(w, "  Type )help at the prompt for the special commands.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

func usage() {
	help(os.Stderr)
	os.Exit(2)
}
