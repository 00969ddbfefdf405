// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prim lists the built-in functions and modifiers.
// Each has a lowercase name and a one-character glyph; either may be
// written in a program.
package prim // import "ufel.dev/ufel/prim"

import "sort"

// Primitive is implemented by Monadic, Dyadic, Mod and DyMod.
type Primitive interface {
	Name() string
	Glyph() rune
	Description() string
	String() string
}

// Monadic functions take one array.
type Monadic int

const (
	Identity Monadic = iota
	Negate
	Not
	Absolute
	Sign
	Length
	Shape
	Form
	First
	Transpose
	Swap
	Range
	Deform
	numMonadic
)

// Dyadic functions take two arrays.
type Dyadic int

const (
	Add Dyadic = iota
	Subtract
	Multiply
	Divide
	Modulo
	Equals
	NotEquals
	Less
	Greater
	Minimum
	Maximum
	Chunk
	numDyadic
)

// Mod is a modifier taking one function.
type Mod int

const (
	Dip Mod = iota
	Turn
	Self
	Flip
	On
	By
	Both
	Reduce
	Scan
	numMod
)

// DyMod is a modifier taking two functions.
type DyMod int

const (
	Fork DyMod = iota
	Bracket
	numDyMod
)

type info struct {
	name  string
	glyph rune
	desc  string
}

var monadic = [numMonadic]info{
	Identity:  {"identity", '∘', "Do nothing"},
	Negate:    {"negate", '`', "Negate an array"},
	Not:       {"not", '¬', "Logical not of an array"},
	Absolute:  {"absolute", '⌵', "Get the absolute value of an array"},
	Sign:      {"sign", '±', "Get the sign of an array"},
	Length:    {"length", '⧻', "Get the number of rows of an array"},
	Shape:     {"shape", '△', "Get the shape of an array"},
	Form:      {"form", '◇', "Get the form of an array"},
	First:     {"first", '⊢', "Get the first row of an array"},
	Transpose: {"transpose", '⍉', "Move the last axis of an array to the front"},
	Swap:      {"swap", '⤨', "Exchange the horizontal and vertical readings of an array"},
	Range:     {"range", '⇡', "Make a list of the integers up to a number"},
	Deform:    {"deform", '♭', "Collapse the form of an array"},
}

var dyadic = [numDyadic]info{
	Add:       {"add", '+', "Add two arrays"},
	Subtract:  {"subtract", '-', "Subtract two arrays"},
	Multiply:  {"multiply", '×', "Multiply two arrays"},
	Divide:    {"divide", '÷', "Divide two arrays"},
	Modulo:    {"modulo", '◿', "Modulo two arrays"},
	Equals:    {"equals", '=', "Compare two arrays for equality"},
	NotEquals: {"notequals", '≠', "Compare two arrays for inequality"},
	Less:      {"less", '<', "Check if one array is less than another"},
	Greater:   {"greater", '>', "Check if one array is greater than another"},
	Minimum:   {"minimum", '↧', "Take the minimum of two arrays"},
	Maximum:   {"maximum", '↥', "Take the maximum of two arrays"},
	Chunk:     {"chunk", '⑄', "Split the axes of an array into chunks"},
}

var mod = [numMod]info{
	Dip:    {"dip", '⊙', "Temporarily pop a value from the stack"},
	Turn:   {"turn", '⤾', "Call a function with the other orientation"},
	Self:   {"self", '˙', "Call a function with the same value twice"},
	Flip:   {"flip", ':', "Call a function with its arguments swapped"},
	On:     {"on", '⟜', "Call a function but keep its first argument on top"},
	By:     {"by", '⊸', "Call a function but keep its last argument below"},
	Both:   {"both", '∩', "Call a function on two sets of values"},
	Reduce: {"reduce", '/', "Reduce with a function"},
	Scan:   {"scan", '\\', "Scan with a function"},
}

var dyMod = [numDyMod]info{
	Fork:    {"fork", '⊃', "Call two functions on the same values"},
	Bracket: {"bracket", '⊓', "Call two functions on different values"},
}

func (p Monadic) Name() string        { return monadic[p].name }
func (p Monadic) Glyph() rune         { return monadic[p].glyph }
func (p Monadic) Description() string { return monadic[p].desc }
func (p Monadic) String() string      { return monadic[p].name }

func (p Dyadic) Name() string        { return dyadic[p].name }
func (p Dyadic) Glyph() rune         { return dyadic[p].glyph }
func (p Dyadic) Description() string { return dyadic[p].desc }
func (p Dyadic) String() string      { return dyadic[p].name }

func (p Mod) Name() string        { return mod[p].name }
func (p Mod) Glyph() rune         { return mod[p].glyph }
func (p Mod) Description() string { return mod[p].desc }
func (p Mod) String() string      { return mod[p].name }

func (p DyMod) Name() string        { return dyMod[p].name }
func (p DyMod) Glyph() rune         { return dyMod[p].glyph }
func (p DyMod) Description() string { return dyMod[p].desc }
func (p DyMod) String() string      { return dyMod[p].name }

// Operands returns the number of functions a modifier takes.
func (Mod) Operands() int   { return 1 }
func (DyMod) Operands() int { return 2 }

// aliases are extra ASCII glyphs.
var aliases = map[rune]Primitive{
	'*': Multiply,
	'%': Modulo,
}

var (
	all     []Primitive
	byName  map[string]Primitive
	byGlyph map[rune]Primitive
)

func init() {
	for p := range numMonadic {
		all = append(all, p)
	}
	for p := range numDyadic {
		all = append(all, p)
	}
	for p := range numMod {
		all = append(all, p)
	}
	for p := range numDyMod {
		all = append(all, p)
	}
	byName = make(map[string]Primitive)
	byGlyph = make(map[rune]Primitive)
	for _, p := range all {
		byName[p.Name()] = p
		byGlyph[p.Glyph()] = p
	}
	for r, p := range aliases {
		byGlyph[r] = p
	}
}

// All returns every primitive: monadic functions, dyadic functions,
// then modifiers.
func All() []Primitive {
	return append([]Primitive(nil), all...)
}

// ByName returns the primitive with the given name.
func ByName(name string) (Primitive, bool) {
	p, ok := byName[name]
	return p, ok
}

// ByGlyph returns the primitive written with r.
func ByGlyph(r rune) (Primitive, bool) {
	p, ok := byGlyph[r]
	return p, ok
}

// Names returns every primitive name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
