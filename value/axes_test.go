// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestTransposeMatrix(t *testing.T) {
	m := nums(NormalForm(2, 2))
	r, err := Transpose(m, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Form.Equal(NormalForm(2, 2)) || !slices.Equal(elems(r), []Num{1, 3, 2, 4}) {
		t.Errorf("transpose [[1 2][3 4]] = %s", r)
	}
}

func TestTranspose(t *testing.T) {
	var tests = []struct {
		form Form
		ori  Ori
		want Form
		data []Num
	}{
		{NormalForm(2, 3), Horizontal, NormalForm(3, 2), []Num{1, 4, 2, 5, 3, 6}},
		{NormalForm(3), Horizontal, NormalForm(3), []Num{1, 2, 3}},
		{NewForm(2, 1, []int{2, 3}), Vertical, NewForm(2, 1, []int{3, 2}), []Num{1, 4, 2, 5, 3, 6}},
	}
	for _, test := range tests {
		r, err := Transpose(nums(test.form), test.ori)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Form.Equal(test.want) || !slices.Equal(elems(r), test.data) {
			t.Errorf("%s transpose of %s = %s", test.ori, test.form, r)
		}
	}
	s, err := Transpose(Scalar[Num](7), Vertical)
	if err != nil || !s.Equal(Scalar[Num](7)) {
		t.Errorf("transpose of scalar = %s, %v", s, err)
	}
}

func TestMoveAxesDuplicate(t *testing.T) {
	// Sending both axes of a 3×3 matrix to axis 0 takes the diagonal.
	r, err := MoveAxes(nums(NormalForm(3, 3)), []int{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if !r.Form.Equal(NormalForm(3)) || !slices.Equal(elems(r), []Num{1, 5, 9}) {
		t.Errorf("diagonal = %s", r)
	}
	_, err = MoveAxes(nums(NormalForm(3)), []int{0, 0})
	if err == nil {
		t.Error("duplicate axes of a list succeeded")
	}
}

func TestMoveAxesUnchanged(t *testing.T) {
	a := nums(NormalForm(2, 3, 4))
	r, err := MoveAxes(a.Clone(), []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(a) {
		t.Errorf("identity move = %s", r)
	}
	if &r.Data.View()[0] != &a.Data.View()[0] {
		t.Error("identity move copied the elements")
	}
}

func TestMoveAxesEmpty(t *testing.T) {
	a := NewArray[Num](NormalForm(0, 3), Default[Num]().Data)
	r, err := MoveAxes(a, []int{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if !r.Form.Equal(NormalForm(3, 0)) || r.Data.Len() != 0 {
		t.Errorf("moved empty array = %s", r)
	}
}

// Moving axes by a permutation and then by its inverse
// gives back the array.
func TestMoveAxesRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 300 {
		f := randForm(r)
		if f.IsScalar() {
			continue
		}
		a := nums(f)
		perm := r.Perm(f.DimsRank())
		inv := make([]int, len(perm))
		for i, p := range perm {
			inv[p] = i
		}
		b, err := MoveAxes(a.Clone(), perm)
		if err != nil {
			t.Fatalf("%s by %v: %v", f, perm, err)
		}
		c, err := MoveAxes(b, inv)
		if err != nil {
			t.Fatalf("%s by %v: %v", b.Form, inv, err)
		}
		if !c.Equal(a) {
			t.Fatalf("%s by %v and back = %s", a, perm, c)
		}
	}
}

func TestSwap(t *testing.T) {
	l, err := Swap(nums(NormalForm(3)))
	if err != nil {
		t.Fatal(err)
	}
	if !l.Form.Equal(ListForm(3)) {
		t.Errorf("swap of list = %s", l.Form)
	}

	m, err := Swap(nums(NormalForm(2, 3)))
	if err != nil {
		t.Fatal(err)
	}
	if want := NewForm(2, 1, []int{2, 3}); !m.Form.Equal(want) || !slices.Equal(elems(m), elems(nums(NormalForm(2, 3)))) {
		t.Errorf("swap of [2×3] = %s", m)
	}

	g, err := Swap(nums(grid))
	if err != nil {
		t.Fatal(err)
	}
	if want := NewForm(2, 2, []int{2, 4, 3, 5}); !g.Form.Equal(want) {
		t.Errorf("swap of %s = %s, want %s", grid, g.Form, want)
	}
	back, err := Swap(g)
	if err != nil || !back.Equal(nums(grid)) {
		t.Errorf("swapping twice = %s, %v", back, err)
	}
}

func TestChunk(t *testing.T) {
	var tests = []struct {
		form Form
		size NumArray
		want Form
	}{
		{NormalForm(6), Scalar[Num](2), NewForm(2, 1, []int{3, 2})},
		{NormalForm(6), Scalar[Num](-2), NewForm(2, 1, []int{2, 3})},
		{NormalForm(4, 6), List[Num](2, 3), NewForm(2, 2, []int{2, 2, 2, 3})},
		{NormalForm(4, 6), List[Num](2), NewForm(2, 2, []int{2, 6, 2, 1})},
	}
	for _, test := range tests {
		r, err := Chunk(nums(test.form), test.size, Horizontal)
		if err != nil {
			t.Errorf("chunk %s by %s: %v", test.form, test.size, err)
			continue
		}
		if !r.Form.Equal(test.want) {
			t.Errorf("chunk %s by %s = %s, want %s", test.form, test.size, r.Form, test.want)
		}
	}
	// Chunking a list keeps element order.
	r, _ := Chunk(nums(NormalForm(6)), Scalar[Num](2), Horizontal)
	if !slices.Equal(elems(r), []Num{1, 2, 3, 4, 5, 6}) {
		t.Errorf("chunked list = %s", r)
	}
}

func TestChunkErrors(t *testing.T) {
	var tests = []struct {
		size NumArray
		want string
	}{
		{Scalar[Num](4), "Chunk size 4 does not evenly divide axis 0 size 6"},
		{Scalar[Num](0), "Chunk size 0 does not evenly divide axis 0 size 6"},
		{Scalar[Num](1.5), "Chunk size must be all integers, but one element is 1.5"},
		{List[Num](1, 2), "Chunk size has too many axes for horizontal shape [6]"},
		{nums(NormalForm(1, 1)), "Chunk size must be a scalar or list, but its form is [1×1]"},
	}
	for _, test := range tests {
		_, err := Chunk(nums(NormalForm(6)), test.size, Horizontal)
		if err == nil || err.Error() != test.want {
			t.Errorf("chunk by %s: got %v, want %q", test.size, err, test.want)
		}
	}
}

func TestChunkVertical(t *testing.T) {
	defer func() {
		if _, ok := recover().(Error); !ok {
			t.Error("vertical chunk did not panic with an Error")
		}
	}()
	Chunk(nums(NormalForm(6)), Scalar[Num](2), Vertical)
}

func TestFirst(t *testing.T) {
	var tests = []struct {
		form Form
		ori  Ori
		want Form
		data []Num
	}{
		{NormalForm(3), Horizontal, ScalarForm(), []Num{1}},
		{NormalForm(2, 3), Horizontal, NormalForm(3), []Num{1, 2, 3}},
		{NormalForm(2, 3), Vertical, ScalarForm(), []Num{1}},
		{NewForm(2, 1, []int{2, 3}), Vertical, NormalForm(3), []Num{1, 2, 3}},
		{NewForm(2, 2, []int{2, 2, 2, 2}), Horizontal, NewForm(2, 1, []int{2, 2}), []Num{1, 2, 5, 6}},
		{NewForm(2, 2, []int{2, 2, 2, 2}), Vertical, NormalForm(2, 2), []Num{1, 2, 3, 4}},
	}
	for _, test := range tests {
		r, err := First(nums(test.form), test.ori)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Form.Equal(test.want) || !slices.Equal(elems(r), test.data) {
			t.Errorf("%s first of %s = %s", test.ori, test.form, r)
		}
	}
	if _, err := First(Default[Num](), Horizontal); err == nil {
		t.Error("first of empty list succeeded")
	}
}
