// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ufel.dev/ufel/config"
	"ufel.dev/ufel/demo"
	"ufel.dev/ufel/exec"
	"ufel.dev/ufel/prim"
	"ufel.dev/ufel/value"
)

const specialHelpMessage = `
) help
	Print this list of special commands.
) help prims
	List the primitives with their glyphs.
) help name
	Describe the primitive with the given name or glyph.
) debug name
	Toggle the named debugging flag. With no argument,
	lists the settings.
) demo
	Step through a short tour of the language. Press return
	to see the next line; type quit to stop.
) format "%.3f"
	Set the fmt verb for printing numbers. With no argument,
	show the current format.
) get "file.fel"
	Run the named file; return to interactive execution
	afterwards.
) grid
	Toggle printing arrays as boxed grids.
) prompt "> "
	Set the interactive prompt.
) vertical
	Toggle the orientation programs start in.
) width 80
	Set the width used to print grids.
`

// IsSpecial reports whether line is a special command.
func IsSpecial(line string) bool {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), ")")
	return ok && rest != "" && 'a' <= rest[0] && rest[0] <= 'z'
}

// Special obeys the special command on line, which starts with ")".
// Output is written to w.
func Special(rt *exec.Runtime, line string, w io.Writer) error {
	conf := rt.Config()
	words := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ")"))
	if len(words) == 0 {
		return fmt.Errorf("empty special command")
	}
	cmd, args := words[0], words[1:]
	arg := strings.Join(args, " ")
	switch cmd {
	case "help":
		switch arg {
		case "":
			fmt.Fprint(w, specialHelpMessage[1:])
		case "prims", "primitives":
			for _, p := range prim.All() {
				fmt.Fprintf(w, "%c\t%-10s%s\n", p.Glyph(), p.Name(), p.Description())
			}
		default:
			p, ok := prim.ByName(arg)
			if !ok {
				if r := []rune(arg); len(r) == 1 {
					p, ok = prim.ByGlyph(r[0])
				}
			}
			if !ok {
				return fmt.Errorf(")help: no primitive %q", arg)
			}
			fmt.Fprintf(w, "%c %s: %s\n", p.Glyph(), p.Name(), p.Description())
		}
	case "debug":
		if arg == "" {
			for _, f := range config.DebugFlags {
				fmt.Fprintf(w, "%s\t%d\n", f, truth(conf.Debug(f)))
			}
			break
		}
		if !conf.SetDebug(arg, !conf.Debug(arg)) {
			return fmt.Errorf("no such debug flag: %s", arg)
		}
		fmt.Fprintln(w, truth(conf.Debug(arg)))
	case "demo":
		return demo.Run(os.Stdin, demoRunner(rt, w), w)
	case "format":
		if arg == "" {
			fmt.Fprintf(w, "%q\n", conf.Format())
			break
		}
		s, err := unquote(arg)
		if err != nil {
			return err
		}
		conf.SetFormat(s)
	case "get":
		name, err := unquote(arg)
		if err != nil {
			return err
		}
		return runFromFile(rt, name, w)
	case "grid":
		conf.SetGrid(!conf.Grid())
		fmt.Fprintln(w, truth(conf.Grid()))
	case "prompt":
		if arg == "" {
			fmt.Fprintf(w, "%q\n", conf.Prompt())
			break
		}
		s, err := unquote(arg)
		if err != nil {
			return err
		}
		conf.SetPrompt(s)
	case "vertical":
		conf.SetVertical(!conf.Vertical())
		rt.SetOri(value.Horizontal)
		if conf.Vertical() {
			rt.SetOri(value.Vertical)
		}
		fmt.Fprintln(w, rt.Ori())
	case "width":
		if arg == "" {
			fmt.Fprintln(w, conf.Width())
			break
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return fmt.Errorf("illegal width %q", arg)
		}
		conf.SetWidth(n)
	default:
		return fmt.Errorf(")%s: not recognized", cmd)
	}
	return nil
}

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

// unquote returns s without its double quotes, if it has them.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	u, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("bad string %s", s)
	}
	return u, nil
}

var runDepth = 0

// runFromFile executes the contents of the named file.
func runFromFile(rt *exec.Runtime, name string, w io.Writer) error {
	runDepth++
	defer func() { runDepth-- }()
	if runDepth > 10 {
		return fmt.Errorf("get %q nested too deep", name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	var errs strings.Builder
	if !Script(rt, name, string(data), w, &errs) {
		return fmt.Errorf("%s", strings.TrimSuffix(errs.String(), "\n"))
	}
	return nil
}

// demoRunner returns a writer that runs each line written to it.
func demoRunner(rt *exec.Runtime, w io.Writer) io.Writer {
	return lineRunner(func(line string) {
		Script(rt, "demo", line, w, rt.Config().ErrOutput())
	})
}

type lineRunner func(line string)

func (r lineRunner) Write(b []byte) (int, error) {
	r(string(b))
	return len(b), nil
}
