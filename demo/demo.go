// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the )demo
// special command. The script for the demo is in demo.fel
// in this directory. Its content is embedded in this source file.
package demo // import "ufel.dev/ufel/demo"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	_ "embed"
)

//go:embed demo.fel
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Run runs the demo. The arguments are the user's input, a Writer used to
// deliver lines to an interpreter, and a Writer for the output, which the
// interpreter is assumed to share. When the user enters a blank line, the
// next line of the script is shown and delivered. If the user's line has
// text, that is delivered instead and the script does not advance.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, toUfel io.Writer, output io.Writer) error {
	text := demoText
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	nextLine := func() (line []byte) {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 {
			return nil
		}
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	// The first line holds the instructions.
	output.Write(nextLine())
	for userInput == nil || scan.Scan() {
		if userInput != nil && len(bytes.TrimSpace(scan.Bytes())) > 0 {
			line := []byte(fmt.Sprintf("%s\n", scan.Bytes()))
			if string(bytes.TrimSpace(line)) == "quit" {
				break
			}
			if _, err := toUfel.Write(line); err != nil {
				return err
			}
			continue
		}
		line := nextLine()
		if line == nil {
			break
		}
		output.Write(line)
		if _, err := toUfel.Write(line); err != nil {
			return err
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}
