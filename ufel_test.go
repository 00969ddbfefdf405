// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/run"
)

const verbose = false

// Each test in a testdata file is one or more lines of input followed
// by the expected output, indented by a tab. An indented "#" is an
// expected blank line. Every test in a file whose name ends _fail.fel
// must fail.
func TestAll(t *testing.T) {
	names, err := filepath.Glob(filepath.Join("testdata", "*.fel"))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no test files")
	}
	for _, path := range names {
		t.Log(path)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(string(data), "\n")
		// Will have a trailing empty string.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		lineNum := 1
		errCount := 0
		for len(lines) > 0 {
			input, output, length := getText(lines)
			if input == nil {
				break
			}
			if verbose {
				t.Logf("%s:%d: %s", path, lineNum, input)
			}
			if !runTest(t, path, lineNum, input, output) {
				errCount++
				if errCount > 3 {
					t.Fatal("too many errors")
				}
			}
			lines = lines[length:]
			lineNum += length
		}
	}
}

func runTest(t *testing.T, name string, lineNum int, input, output []string) bool {
	shouldFail := strings.HasSuffix(name, "_fail.fel")
	var conf config.Config
	in := strings.Join(input, "\n")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	ok := run.Ufel(&conf, in, stdout, stderr)
	if shouldFail {
		if ok || stderr.Len() == 0 {
			t.Errorf("\nexpected execution failure at %s:%d:\n%s", name, lineNum, in)
			return false
		}
		if len(output) > 0 && !equal(strings.Split(stderr.String(), "\n"), output) {
			t.Errorf("\n%s:%d:\n\t%s\ngot error:\n\t%s\nwant:\n\t%s",
				name, lineNum,
				strings.Join(input, "\n\t"),
				strings.TrimSpace(stderr.String()),
				strings.Join(output, "\n\t"))
			return false
		}
		return true
	}
	if !ok || stderr.Len() != 0 {
		t.Errorf("\nexecution failure (%s) at %s:%d:\n%s", stderr, name, lineNum, in)
		return false
	}
	result := strings.Split(stdout.String(), "\n")
	if !equal(result, output) {
		t.Errorf("\n%s:%d:\n\t%s\ngot:\n\t%s\nwant:\n\t%s",
			name, lineNum,
			strings.Join(input, "\n\t"),
			strings.Join(result, "\n\t"),
			strings.Join(output, "\n\t"))
		return false
	}
	return true
}

func equal(a, b []string) bool {
	// Split leaves an empty trailing line.
	if len(a) > 0 && a[len(a)-1] == "" {
		a = a[:len(a)-1]
	}
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if strings.TrimSpace(s) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

func getText(lines []string) (input, output []string, length int) {
	// Skip blank and initial comment lines.
	for _, line := range lines {
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			break
		}
		length++
	}

	// Input ends at tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(line, "\t") {
			break
		}
		input = append(input, line)
		length++
	}

	// Output ends at non-blank, non-tab-indented line.
	// Indented "#" is expected blank line in output.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if line != "" && !strings.HasPrefix(line, "\t") {
			break
		}
		output = append(output, strings.TrimPrefix(line, "\t"))
		length++
	}
	for len(output) > 0 && output[len(output)-1] == "" {
		output = output[:len(output)-1]
	}
	for i, line := range output {
		if line == "#" {
			output[i] = ""
		}
	}

	return // Will return nil if no more tests exist.
}
