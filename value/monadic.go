// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "ufel.dev/ufel/value/cow"

// Structural functions of one array.

// Length returns the number of rows of a under the orientation.
func Length[T Element[T]](a Array[T], ori Ori) NumArray {
	return Scalar(Num(a.Form.RowCount(ori)))
}

// ShapeOf returns the shape of a under the orientation as a list.
func ShapeOf[T Element[T]](a Array[T], ori Ori) NumArray {
	return intList(a.Form.Shape(ori))
}

// FormOf returns the form of a as an array. See FromForm.
func FormOf[T Element[T]](a Array[T]) NumArray {
	return FromForm(a.Form)
}

// Deform collapses the form of a; the elements are unchanged.
func Deform[T Element[T]](a Array[T], ori Ori) Array[T] {
	a.Form = a.Form.Deform(ori)
	return a
}

// Range returns the list 0, 1, ... n-1, where n is the scalar a.
func Range(a NumArray) (NumArray, error) {
	if !a.Form.IsScalar() {
		return a, Errorf("Range must be given a scalar, but its form is %s", a.Form)
	}
	x := a.Data.At(0)
	n, ok := x.Int()
	if !ok || n < 0 {
		return a, Errorf("Range must be given a non-negative integer, but it is %s", x)
	}
	data := make([]Num, n)
	for i := range data {
		data[i] = Num(i)
	}
	return NewArray(ListForm(n), cow.From(data)), nil
}

func intList(xs []int) NumArray {
	data := make([]Num, len(xs))
	for i, x := range xs {
		data[i] = Num(x)
	}
	return NewArray(ListForm(len(xs)), cow.From(data))
}
