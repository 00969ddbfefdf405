// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the compiler, the runtime
// and the command: where output goes, how numbers print, which debug
// switches are on and which orientation execution starts in.
package config // import "ufel.dev/ufel/config"

import (
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"compile", // log operand signatures while compiling
	"dump",    // dump the compiled instruction tree before running
	"panic",   // do not recover internal panics
	"parse",   // log the parsed words of each line
	"tokens",  // log every scanned token
	"trace",   // log every executed node
}

// DefaultWidth is the display width used when the output is not a terminal.
const DefaultWidth = 80

type Config struct {
	prompt    string
	format    string
	vertical  bool
	grid      bool
	width     int
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
	logger    *zerolog.Logger
}

// Format returns the fmt verb used to print array elements.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// Debug reports whether the named debug switch is on.
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug turns the named switch on or off. It reports whether
// the name is one of DebugFlags.
func (c *Config) SetDebug(s string, state bool) bool {
	i := sort.SearchStrings(DebugFlags, s)
	if i >= len(DebugFlags) || DebugFlags[i] != s {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	c.logger = nil
	return true
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Vertical reports whether execution starts in vertical orientation.
func (c *Config) Vertical() bool {
	return c.vertical
}

func (c *Config) SetVertical(v bool) {
	c.vertical = v
}

// Grid reports whether arrays print as boxed grids.
func (c *Config) Grid() bool {
	return c.grid
}

func (c *Config) SetGrid(g bool) {
	c.grid = g
}

// Width returns the display width for grid output. If none has been set
// it asks the terminal, falling back to DefaultWidth.
func (c *Config) Width() int {
	if c.width > 0 {
		return c.width
	}
	if f, ok := c.Output().(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

func (c *Config) SetWidth(w int) {
	c.width = w
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
	c.logger = nil
}

// Logger returns the diagnostic logger. It writes to the error output
// and its level follows the debug switches.
func (c *Config) Logger() *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	level := zerolog.WarnLevel
	switch {
	case c.Debug("trace"):
		level = zerolog.TraceLevel
	case c.Debug("compile"), c.Debug("parse"), c.Debug("tokens"):
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: c.ErrOutput(), NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	l := zerolog.New(w).Level(level)
	c.logger = &l
	return c.logger
}
