// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "ufel.dev/ufel/value/cow"

// Flip returns f with its arguments exchanged.
func Flip[T any](f func(a, b T) T) func(a, b T) T {
	return func(a, b T) T { return f(b, a) }
}

// ReduceWith folds the rows of a under the orientation with f, starting
// from the first row. Each step computes f(row, acc). A scalar is
// returned unchanged, and an array with an empty axis gives one row
// filled with identity.
func ReduceWith[T Element[T]](a Array[T], identity T, f func(a, b T) T, ori Ori) Array[T] {
	f = Flip(f)
	form := a.Form
	if form.IsScalar() {
		return a
	}
	row := form.Row(ori)
	if form.Elems() == 0 {
		return NewArray(row, cow.Repeat(identity, row.Elems()))
	}
	if form.Rank(ori) == 1 && form.Rank(ori.Flip()) == 1 {
		data := a.Data.View()
		acc := data[0]
		for _, x := range data[1:] {
			acc = f(acc, x)
		}
		return Scalar(acc)
	}
	rowLen := form.RowLen(ori)
	if ori == Horizontal && !form.IsNormal() {
		acc := make([]T, rowLen)
		split := rowSplitter(form)
		for k, x := range a.Data.All() {
			r, p := split(k)
			if r == 0 {
				acc[p] = x
			} else {
				acc[p] = f(acc[p], x)
			}
		}
		return NewArray(row, cow.From(acc))
	}
	data := a.Data.Mut()
	acc := data[:rowLen]
	for off := rowLen; off < len(data); off += rowLen {
		for i, x := range data[off : off+rowLen] {
			acc[i] = f(acc[i], x)
		}
	}
	a.Data.Truncate(rowLen)
	return NewArray(row, a.Data)
}

// ScanWith is like ReduceWith but keeps every intermediate row,
// so the result has the form of a.
func ScanWith[T Element[T]](a Array[T], f func(a, b T) T, ori Ori) Array[T] {
	f = Flip(f)
	form := a.Form
	if form.IsScalar() || form.Elems() == 0 {
		return a
	}
	rowLen := form.RowLen(ori)
	data := a.Data.Mut()
	if ori == Horizontal && !form.IsNormal() {
		acc := make([]T, rowLen)
		split := rowSplitter(form)
		for k := range data {
			r, p := split(k)
			if r > 0 {
				data[k] = f(acc[p], data[k])
			}
			acc[p] = data[k]
		}
		return a
	}
	for off := rowLen; off < len(data); off += rowLen {
		prev := data[off-rowLen : off]
		for i := range prev {
			data[off+i] = f(prev[i], data[off+i])
		}
	}
	return a
}

// rowSplitter returns a function splitting a flat element index of an
// array of form f into its horizontal row and its position in that row.
// Elements of one position are met in increasing row order.
func rowSplitter(f Form) func(k int) (row, pos int) {
	index := make([]int, len(f.dims))
	return func(k int) (row, pos int) {
		flatToDims(f.dims, k, index)
		for i, x := range index {
			if i%f.hori == 0 {
				row = row*f.dims[i] + x
			} else {
				pos = pos*f.dims[i] + x
			}
		}
		return row, pos
	}
}
