// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A Form is the shape of an array: a grid of vert groups of hori axes,
// stored row-major so axis j of group i is dims[i*hori+j].
//
// Read horizontally, the shape is the first group, a row drops the
// leading axis of every group, and rows are counted by multiplying those
// leading axes. Read vertically, the shape is the leading axis of each
// group, a row drops the whole first group, and rows are counted by
// multiplying the first group.
//
// Forms are values. Methods never modify the receiver.
type Form struct {
	vert, hori int
	dims       []int
}

// ScalarForm returns the form of a scalar.
func ScalarForm() Form {
	return Form{}
}

// EmptyList returns the form of a list with no elements.
func EmptyList() Form {
	return Form{vert: 1, hori: 1, dims: []int{0}}
}

// NewForm returns the vert×hori form with the given axes.
// It panics if len(dims) != vert*hori.
func NewForm(vert, hori int, dims []int) Form {
	f := Form{vert: vert, hori: hori, dims: slices.Clone(dims)}
	f.validate()
	return f.canon()
}

// NormalForm returns the single-group form with the given axes.
func NormalForm(dims ...int) Form {
	return NewForm(1, len(dims), dims)
}

// ListForm returns the form of a list of n elements.
func ListForm(n int) Form {
	return NormalForm(n)
}

func (f Form) validate() {
	if f.vert < 0 || f.hori < 0 || f.vert*f.hori != len(f.dims) {
		panic(fmt.Sprintf("form is %d×%d but has %d axes", f.vert, f.hori, len(f.dims)))
	}
}

// canon turns any form without axes into the 0×0 scalar form.
func (f Form) canon() Form {
	if len(f.dims) == 0 {
		return Form{}
	}
	return f
}

// Elems returns the number of elements an array of this form holds.
func (f Form) Elems() int {
	return product(f.dims)
}

func product(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// groups returns the axis groups in order.
func (f Form) groups() [][]int {
	if f.hori == 0 {
		return nil
	}
	g := make([][]int, 0, f.vert)
	for i := 0; i < f.vert; i++ {
		g = append(g, f.dims[i*f.hori:(i+1)*f.hori])
	}
	return g
}

// Group returns the axes of group i. The result must not be modified.
func (f Form) Group(i int) []int {
	if i < 0 || i >= f.vert {
		panic(fmt.Sprintf("Index %d out of bounds of %d form rows", i, f.vert))
	}
	return f.dims[i*f.hori : (i+1)*f.hori : (i+1)*f.hori]
}

// RowCount returns the number of rows under the orientation.
func (f Form) RowCount(ori Ori) int {
	groups := f.groups()
	if ori == Horizontal {
		n := 1
		for _, g := range groups {
			n *= g[0]
		}
		return n
	}
	if len(groups) == 0 {
		return 1
	}
	return product(groups[0])
}

// RowLen returns the number of elements in each row under the orientation.
func (f Form) RowLen(ori Ori) int {
	groups := f.groups()
	n := 1
	if ori == Horizontal {
		for _, g := range groups {
			n *= product(g[1:])
		}
		return n
	}
	for _, g := range groups[min(1, len(groups)):] {
		n *= product(g)
	}
	return n
}

// Shape returns the shape under the orientation.
func (f Form) Shape(ori Ori) []int {
	groups := f.groups()
	if ori == Horizontal {
		if len(groups) == 0 {
			return []int{}
		}
		return slices.Clone(groups[0])
	}
	s := make([]int, 0, len(groups))
	for _, g := range groups {
		s = append(s, g[0])
	}
	return s
}

func (f Form) IsScalar() bool {
	return f.vert == 0 || f.hori == 0
}

// IsNormal reports whether the form has at most one group.
func (f Form) IsNormal() bool {
	return f.vert <= 1 || f.hori == 0
}

// AsNormal returns the axes of a normal form.
func (f Form) AsNormal() ([]int, bool) {
	if f.IsScalar() {
		return []int{}, true
	}
	if !f.IsNormal() {
		return nil, false
	}
	return f.Group(0), true
}

// NormalRank returns the rank of a normal form.
func (f Form) NormalRank() (int, bool) {
	if !f.IsNormal() {
		return 0, false
	}
	return f.hori, true
}

// IsList reports whether the form is normal with exactly one axis.
func (f Form) IsList() bool {
	r, ok := f.NormalRank()
	return ok && r == 1
}

// Rank returns the length of the shape under the orientation.
func (f Form) Rank(ori Ori) int {
	if ori == Horizontal {
		return f.hori
	}
	return f.vert
}

func (f Form) VertRank() int { return f.vert }
func (f Form) HoriRank() int { return f.hori }

// DimsRank returns the total number of axes.
func (f Form) DimsRank() int {
	return f.vert * f.hori
}

// Dims returns every axis in grid order. The result must not be modified.
func (f Form) Dims() []int {
	return f.dims[:len(f.dims):len(f.dims)]
}

// Row returns the form of one row under the orientation.
func (f Form) Row(ori Ori) Form {
	var r Form
	switch ori {
	case Horizontal:
		r.vert, r.hori = f.vert, max(f.hori-1, 0)
		r.dims = make([]int, 0, r.vert*r.hori)
		for i := 0; i < r.vert; i++ {
			r.dims = append(r.dims, f.dims[i*f.hori+1:(i+1)*f.hori]...)
		}
	case Vertical:
		r.vert, r.hori = max(f.vert-1, 0), f.hori
		r.dims = slices.Clone(f.dims[min(f.hori, len(f.dims)):])
	}
	r.validate()
	return r.canon()
}

// Fix returns the form with a new leading axis of size 1 under the
// orientation. Fixing a scalar gives the list form [1].
// Vertically fixing a form of more than one group is not implemented.
func (f Form) Fix(ori Ori) Form {
	if f.IsScalar() {
		return NormalForm(1)
	}
	var r Form
	switch ori {
	case Horizontal:
		r.vert, r.hori = f.vert, f.hori+1
		r.dims = make([]int, 0, r.vert*r.hori)
		for _, g := range f.groups() {
			r.dims = append(r.dims, 1)
			r.dims = append(r.dims, g...)
		}
	case Vertical:
		if f.vert > 1 {
			unimplemented("vertical fix of a multi-group form")
		}
		r.vert, r.hori = f.vert+1, f.hori
		r.dims = make([]int, 0, r.vert*r.hori)
		for range f.hori {
			r.dims = append(r.dims, 1)
		}
		r.dims = append(r.dims, f.dims...)
	}
	r.validate()
	return r
}

// Deform collapses the grid into a single group (horizontal) or a
// single axis per group (vertical). The axes keep their order.
func (f Form) Deform(ori Ori) Form {
	r := Form{dims: slices.Clone(f.dims)}
	switch ori {
	case Horizontal:
		r.vert, r.hori = 1, f.hori*f.vert
	case Vertical:
		r.vert, r.hori = f.vert*f.hori, 1
	}
	r.validate()
	return r.canon()
}

// WithDim returns a copy of f with axis j of group i set to n.
func (f Form) WithDim(i, j, n int) Form {
	if j < 0 || j >= f.hori {
		panic(fmt.Sprintf("Index %d out of bounds of %d form columns", j, f.hori))
	}
	f.Group(i)
	r := Form{vert: f.vert, hori: f.hori, dims: slices.Clone(f.dims)}
	r.dims[i*f.hori+j] = n
	return r
}

// IsPrefixOf reports whether every axis of f matches the axis
// in the same grid cell of g.
func (f Form) IsPrefixOf(g Form) bool {
	if f.vert > g.vert || f.hori > g.hori {
		return false
	}
	for i := 0; i < f.vert; i++ {
		for j := 0; j < f.hori; j++ {
			if f.dims[i*f.hori+j] != g.dims[i*g.hori+j] {
				return false
			}
		}
	}
	return true
}

// PrefixesMatch reports whether either form is a prefix of the other.
func (f Form) PrefixesMatch(g Form) bool {
	return f.IsPrefixOf(g) || g.IsPrefixOf(f)
}

func (f Form) Equal(g Form) bool {
	return f.vert == g.vert && f.hori == g.hori && slices.Equal(f.dims, g.dims)
}

// String formats the form as [2×3], or [2×3 4×5] with more than one group.
func (f Form) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if dims, ok := f.AsNormal(); ok {
		writeDims(&b, dims)
	} else {
		for i, g := range f.groups() {
			if i > 0 {
				b.WriteByte(' ')
			}
			if f.hori == 1 {
				b.WriteString("×")
			}
			writeDims(&b, g)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ShapeString formats a shape as [2×3].
func ShapeString(shape []int) string {
	var b strings.Builder
	b.WriteByte('[')
	writeDims(&b, shape)
	b.WriteByte(']')
	return b.String()
}

func writeDims(b *strings.Builder, dims []int) {
	for i, d := range dims {
		if i > 0 {
			b.WriteString("×")
		}
		b.WriteString(strconv.Itoa(d))
	}
}
