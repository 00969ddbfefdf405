// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to ufel,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The package holds one runtime, so only one execution stream
// (Eval or Demo) can be active at a time.
package mobile // import "ufel.dev/ufel/mobile"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/exec"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/run"
)

var (
	conf config.Config
	rt   *exec.Runtime
)

func init() {
	Reset()
}

// Eval runs the input string and returns what it printed: the values
// left on the stack, one per line. If execution failed, the error
// text is returned in the error value.
func Eval(expr string) (result string, errors error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	run.Script(rt, " ", expr, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset clears all state to the initial value.
func Reset() {
	conf = config.Config{}
	rt = exec.New(&conf)
}

// Help returns a table of the primitives, one per line.
func Help() string {
	var b strings.Builder
	for _, p := range prim.All() {
		fmt.Fprintf(&b, "%c %s: %s\n", p.Glyph(), p.Name(), p.Description())
	}
	return b.String()
}
