// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"hash/maphash"

	"ufel.dev/ufel/value/cow"
)

// An Array is a form and the elements it describes, in row-major order.
//
// The elements are shared copy-on-write. An Array passed by value to a
// function is handed over to it; use Clone to keep a copy.
type Array[T Element[T]] struct {
	Form Form
	Data cow.Slice[T]
}

// NumArray is the array type the runtime works with.
type NumArray = Array[Num]

// NewArray returns the array of the given form and elements.
// It panics if the number of elements does not match the form.
func NewArray[T Element[T]](form Form, data cow.Slice[T]) Array[T] {
	a := Array[T]{Form: form, Data: data}
	a.validate()
	return a
}

func (a Array[T]) validate() {
	a.Form.validate()
	if a.Form.Elems() != a.Data.Len() {
		panic(fmt.Sprintf("Form is %s but data has %d elements", a.Form, a.Data.Len()))
	}
}

// Scalar returns the scalar array holding x.
func Scalar[T Element[T]](x T) Array[T] {
	return NewArray(ScalarForm(), cow.Of(x))
}

// List returns the list holding xs.
func List[T Element[T]](xs ...T) Array[T] {
	return NewArray(ListForm(len(xs)), cow.Of(xs...))
}

// Default returns the empty list.
func Default[T Element[T]]() Array[T] {
	return Array[T]{Form: EmptyList()}
}

// FromForm returns the form's axes as a vert×hori array.
func FromForm(f Form) NumArray {
	data := make([]Num, len(f.dims))
	for i, d := range f.dims {
		data[i] = Num(d)
	}
	return NewArray(NormalForm(f.vert, f.hori), cow.From(data))
}

// FromRowArrays builds the array whose rows under ori are rows.
// Every row must have the same form. No rows gives the empty list.
func FromRowArrays[T Element[T]](rows []Array[T], ori Ori) (Array[T], error) {
	if len(rows) == 0 {
		return Default[T](), nil
	}
	first := rows[0]
	if !first.Form.IsNormal() {
		unimplemented("building an array from rows of non-normal form")
	}
	data := first.Data
	for _, row := range rows[1:] {
		if !row.Form.Equal(first.Form) {
			return Array[T]{}, Errorf("Cannot create array with different row forms %s and %s", first.Form, row.Form)
		}
		data.AppendSlice(row.Data)
	}
	form := first.Form.Fix(ori).WithDim(0, 0, len(rows))
	return NewArray(form, data), nil
}

// Clone returns a copy of a sharing its elements.
func (a Array[T]) Clone() Array[T] {
	return Array[T]{Form: a.Form, Data: a.Data.Share()}
}

// Equal reports whether the arrays have equal forms and elements.
func (a Array[T]) Equal(b Array[T]) bool {
	if !a.Form.Equal(b.Form) || a.Data.Len() != b.Data.Len() {
		return false
	}
	bv := b.Data.View()
	for i, x := range a.Data.View() {
		if !x.ArrayEq(bv[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the array consistent with Equal.
func (a Array[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, a.Form.vert)
	maphash.WriteComparable(&h, a.Form.hori)
	for _, d := range a.Form.dims {
		maphash.WriteComparable(&h, d)
	}
	for _, x := range a.Data.View() {
		x.ArrayHash(&h)
	}
	return h.Sum64()
}
