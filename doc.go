// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Ufel is an interpreter for a stack-based array language. It is a place
to experiment with forms: every array has a shape that can be read two
ways, horizontally or vertically, and a program can switch between the
readings as it runs.

Usage:

	ufel [flags] [file]

With no file, ufel runs main.fel if it exists. Otherwise it reads lines
from the terminal, with editing and history, or reads a whole program
from standard input. The -e flag runs its argument as a program.
When a program finishes, the values left on the stack are printed,
bottom first, one per line. If it fails the error is printed too and
ufel exits with status 1.

The flags are:

	-e text
		Run text as the program.
	-vertical
		Start in vertical orientation.
	-grid
		Print arrays as boxed grids.
	-format verb
		Print numbers with the fmt verb, for example %.3f.
	-debug list
		Enable the comma-separated debug flags: compile, dump, panic,
		parse, tokens, trace.
	-prompt text
		Set the interactive prompt.
	-width n
		Set the width for printing grids.

# Programs

A program is a sequence of words run left to right. A number pushes
itself. A negative number is written with a leading backtick: `3.
Functions take their arguments from the top of the stack and push
their results, so

	1 2 +

leaves 3. The topmost value is the first argument, so 5 3 - is 2.
Text from # to the end of a line is a comment.

Brackets build an array from the values their contents produce, each
becoming one row:

	[[1 2 3] [4 5 6]]

is a 2 by 3 array. Parentheses group words into one function.

Every primitive has a glyph and a lowercase name; either may be used.

Monadic functions.

	∘  identity   Do nothing
	`  negate     Negate an array
	¬  not        Logical not of an array
	⌵  absolute   Get the absolute value of an array
	±  sign       Get the sign of an array
	⧻  length     Get the number of rows of an array
	△  shape      Get the shape of an array
	◇  form       Get the form of an array
	⊢  first      Get the first row of an array
	⍉  transpose  Move the last axis of an array to the front
	⤨  swap       Exchange the horizontal and vertical readings of an array
	⇡  range      Make a list of the integers up to a number
	♭  deform     Collapse the form of an array

Dyadic functions. These pervade: arrays of equal form pair up element
by element, and a smaller array whose form is a prefix of the larger
one's repeats against it.

	+  add
	-  subtract
	×  multiply (also *)
	÷  divide
	◿  modulo (also %); the result is never negative
	=  equals
	≠  notequals
	<  less
	>  greater
	↧  minimum
	↥  maximum
	⑄  chunk      Split the axes of an array into chunks

Modifiers take the functions that follow them. A group of functions
separated by | in parentheses supplies all of them at once, as in
⊃(/+|⧻).

	⊙  dip        Temporarily pop a value from the stack
	⤾  turn       Call a function with the other orientation
	˙  self       Call a function with the same value twice
	:  flip       Call a function with its arguments swapped
	⟜  on         Call a function but keep its first argument on top
	⊸  by         Call a function but keep its last argument below
	∩  both       Call a function on two sets of values
	/  reduce     Reduce with a function
	\  scan       Scan with a function
	⊃  fork       Call two functions on the same values
	⊓  bracket    Call two functions on different values

# Forms

The form of an array is a grid of axes: some number of groups, each
with the same number of axes. Read horizontally, the shape is the
first group and a row drops the leading axis of every group. Read
vertically, the shape is the leading axis of each group and a row
drops the first group. An ordinary array has a single group, so read
horizontally [[1 2 3] [4 5 6]] has 2 rows of 3, while read vertically
it has 6 rows, each a single number.

# Special commands

In the interactive prompt and in files, a line starting with a right
parenthesis is a special command. Type )help for the list.
*/
package main
