// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"

	"ufel.dev/ufel/value/cow"
)

// MoveAxes moves every axis of a, taken in grid order, to a new position.
// Source axis j goes to position indices[j]. Axes beyond len(indices)
// fill the unused positions in increasing order. Two axes sent to the
// same position merge into one axis as long as the shorter of them,
// taking the diagonal.
func MoveAxes[T Element[T]](a Array[T], indices []int) (Array[T], error) {
	dims := a.Form.dims
	indices, newDims, trailing, err := orient(indices, dims)
	if err != nil {
		return Array[T]{}, err
	}
	form := Form{vert: a.Form.vert, hori: a.Form.hori, dims: newDims}
	if len(newDims) != len(dims) {
		form = Form{vert: 1, hori: len(newDims), dims: newDims}
	}
	n := product(newDims)
	if n == 0 {
		return NewArray(form.canon(), cow.Slice[T]{}), nil
	}
	if trailing == len(dims) {
		return a, nil
	}

	origDims := dims[:len(dims)-trailing]
	newLead := newDims[:len(newDims)-trailing]
	rowLen := product(dims[len(origDims):])
	src := a.Data.View()
	out := make([]T, n)
	origIndex := make([]int, len(origDims))
	newIndex := make([]int, len(newLead))
	for i := 0; i < n/rowLen; i++ {
		flatToDims(newLead, i, newIndex)
		for j := range origIndex {
			origIndex[j] = newIndex[indices[j]]
		}
		k := dimsToFlat(origDims, origIndex)
		copy(out[i*rowLen:(i+1)*rowLen], src[k*rowLen:(k+1)*rowLen])
	}
	return NewArray(form.canon(), cow.From(out)), nil
}

// orient completes indices so every axis has a destination and returns
// the new axes along with how many trailing axes stay in place.
func orient(indices, dims []int) ([]int, []int, int, error) {
	rank := len(dims)
	indices = slices.Clone(indices)
	dups := 0
	for i, x := range indices {
		if slices.Contains(indices[:i], x) {
			dups++
		}
	}
	maxIndex := 0
	if len(indices) > 0 {
		maxIndex = slices.Max(indices)
	}
	if minRank := maxIndex + dups + 1; rank < minRank {
		return nil, nil, 0, Errorf("Indices imply a rank of at least %d, but the array is rank %d", minRank, rank)
	}
	newRank := rank - dups
	for i := 0; i < newRank; i++ {
		if !slices.Contains(indices, i) {
			indices = append(indices, i)
		}
	}

	newDims := make([]int, newRank)
	for i := range newDims {
		size := -1
		for j, x := range indices {
			if x == i && (size < 0 || dims[j] < size) {
				size = dims[j]
			}
		}
		newDims[i] = size
	}

	trailing := 0
	for i, want := len(indices)-1, newRank-1; i >= 0 && want >= 0; i, want = i-1, want-1 {
		if slices.Contains(indices[:i], indices[i]) || indices[i] != want {
			break
		}
		trailing++
	}
	return indices, newDims, trailing, nil
}

// flatToDims decodes flat into coordinates along dims.
func flatToDims(dims []int, flat int, index []int) {
	for i := len(dims) - 1; i >= 0; i-- {
		index[i] = flat % dims[i]
		flat /= dims[i]
	}
}

// dimsToFlat encodes coordinates along dims.
func dimsToFlat(dims, index []int) int {
	flat := 0
	for i, d := range dims {
		flat = flat*d + index[i]
	}
	return flat
}

// Transpose moves the last axis to the front: of every group when
// horizontal, or the last group to the front when vertical.
func Transpose[T Element[T]](a Array[T], ori Ori) (Array[T], error) {
	if a.Form.IsScalar() {
		return a, nil
	}
	h := a.Form.hori
	axes := make([]int, a.Form.DimsRank())
	for i := range axes {
		axes[i] = i
	}
	switch ori {
	case Horizontal:
		for i := 0; i < len(axes); i += h {
			rotateLeft(axes[i:i+h], 1)
		}
	case Vertical:
		rotateLeft(axes, h)
	}
	return MoveAxes(a, axes)
}

func rotateLeft(s []int, n int) {
	if len(s) == 0 {
		return
	}
	n %= len(s)
	tmp := slices.Clone(s[:n])
	copy(s, s[n:])
	copy(s[len(s)-n:], tmp)
}

// Swap exchanges the two readings of a: the vert×hori grid
// becomes hori×vert with group i axis j moved to group j axis i.
func Swap[T Element[T]](a Array[T]) (Array[T], error) {
	v, h := a.Form.vert, a.Form.hori
	if v <= 1 || h <= 1 {
		a.Form = Form{vert: h, hori: v, dims: a.Form.dims}.canon()
		return a, nil
	}
	indices := make([]int, v*h)
	for i := 0; i < v; i++ {
		for j := 0; j < h; j++ {
			indices[i*h+j] = j*v + i
		}
	}
	r, err := MoveAxes(a, indices)
	if err != nil {
		return r, err
	}
	r.Form = Form{vert: h, hori: v, dims: r.Form.dims}
	return r, nil
}

// Chunk splits each leading axis of a into a count of chunks and the
// chunk size. The counts stay in the first group and the sizes form a
// new second group. A negative size is a number of chunks instead.
func Chunk[T Element[T]](a Array[T], size NumArray, ori Ori) (Array[T], error) {
	if !size.Form.IsNormal() {
		return a, Errorf("Chunk size must be normal, but its form is %s", size.Form)
	}
	if size.Form.hori > 1 {
		return a, Errorf("Chunk size must be a scalar or list, but its form is %s", size.Form)
	}
	sizes := size.Data.View()
	for _, sz := range sizes {
		if _, ok := sz.Int(); !ok {
			return a, Errorf("Chunk size must be all integers, but one element is %s", sz)
		}
	}
	shape := a.Form.Shape(ori)
	if len(sizes) > len(shape) {
		return a, Errorf("Chunk size has too many axes for %s shape %s", ori, ShapeString(shape))
	}
	if ori == Vertical {
		unimplemented("vertical chunk")
	}
	f := a.Form
	if f.IsScalar() {
		return a, nil
	}
	newDims := make([]int, 0, f.DimsRank()+len(sizes))
	dests := make([]int, 0, f.DimsRank()+len(sizes))
	for i := 0; i < f.hori; i++ {
		dim := f.dims[i]
		sz := 1
		if i < len(sizes) {
			n, _ := sizes[i].Int()
			abs := max(n, -n)
			if abs == 0 || dim%abs != 0 {
				return a, Errorf("Chunk size %d does not evenly divide axis %d size %d", n, i, dim)
			}
			sz = abs
			if n < 0 {
				sz = dim / abs
			}
		}
		newDims = append(newDims, dim/sz, sz)
		dests = append(dests, i, i+len(shape))
	}
	newDims = append(newDims, f.dims[f.hori:]...)
	a.Form = NewForm(f.vert+1, f.hori, newDims)
	return MoveAxes(a, dests)
}

// First returns row 0 of a under the orientation.
//
// The first group holds the outermost axes, so a vertical row and the
// horizontal row of a normal form are contiguous and share a's
// elements. The horizontal row of a form with several groups fixes the
// leading axis of every group and is gathered with a stride per group.
func First[T Element[T]](a Array[T], ori Ori) (Array[T], error) {
	f := a.Form
	if f.RowCount(ori) == 0 {
		return a, Error("Cannot get first row of an empty array")
	}
	form := f.Row(ori)
	n := f.RowLen(ori)
	if ori == Vertical || f.IsNormal() {
		return NewArray(form, a.Data.Slice(0, n)), nil
	}
	src := a.Data.View()
	data := make([]T, n)
	index := make([]int, len(form.dims))
	orig := make([]int, len(f.dims))
	for i := range data {
		flatToDims(form.dims, i, index)
		for g := 0; g < f.vert; g++ {
			orig[g*f.hori] = 0
			copy(orig[g*f.hori+1:(g+1)*f.hori], index[g*form.hori:(g+1)*form.hori])
		}
		data[i] = src[dimsToFlat(f.dims, orig)]
	}
	return NewArray(form, cow.From(data)), nil
}
