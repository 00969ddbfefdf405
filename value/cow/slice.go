// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cow implements a copy-on-write slice.
//
// Many [Slice] values may view the same underlying block of elements.
// Reading is free. Writing goes through [Slice.Mut], which hands back
// the block itself only when the slice is its sole owner and views
// all of it; otherwise Mut first takes a private copy.
//
// Ownership is counted explicitly: plain assignment of a Slice does not
// create a new owner, [Slice.Share] does. A Slice passed by value to a
// function that may write to it is given away; code that wants to keep
// using its copy must Share first.
package cow

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"
)

// A Slice is a copy-on-write view of a block of elements.
// The zero Slice is empty and ready to use.
type Slice[T any] struct {
	b   *block[T]
	off int
	n   int
}

// A block is the shared storage behind one or more Slices.
type block[T any] struct {
	data   []T
	owners atomic.Int32
}

func newBlock[T any](data []T) *block[T] {
	b := &block[T]{data: data}
	b.owners.Store(1)
	return b
}

// From returns a Slice that takes ownership of data.
// The caller must not use data afterwards.
func From[T any](data []T) Slice[T] {
	return Slice[T]{b: newBlock(data), n: len(data)}
}

// Of returns a Slice holding a copy of the elements.
func Of[T any](elems ...T) Slice[T] {
	return From(slices.Clone(elems))
}

// Make returns a Slice of n zero values.
func Make[T any](n int) Slice[T] {
	return From(make([]T, n))
}

// Repeat returns a Slice of n copies of x.
func Repeat[T any](x T, n int) Slice[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = x
	}
	return From(data)
}

// Len returns len(s).
func (s Slice[T]) Len() int {
	return s.n
}

// At returns s[i].
func (s Slice[T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("index %d out of range [0:%d]", i, s.n))
	}
	return s.b.data[s.off+i]
}

// View returns the elements of s. The result must not be modified.
func (s Slice[T]) View() []T {
	if s.b == nil {
		return nil
	}
	return s.b.data[s.off : s.off+s.n : s.off+s.n]
}

// All returns an iterator over s[0:len(s)].
func (s Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range s.View() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Share returns a new owner of the elements of s.
func (s Slice[T]) Share() Slice[T] {
	if s.b != nil {
		s.b.owners.Add(1)
	}
	return s
}

// Slice returns a new owner of s[i:j]. No elements are copied.
func (s Slice[T]) Slice(i, j int) Slice[T] {
	if i < 0 || j < i || j > s.n {
		panic(fmt.Sprintf("slice [%d:%d] out of range [0:%d]", i, j, s.n))
	}
	t := s.Share()
	t.off += i
	t.n = j - i
	return t
}

// Unique reports whether s may write its elements in place.
func (s Slice[T]) Unique() bool {
	return s.b == nil || s.b.owners.Load() == 1 && s.off == 0 && s.n == len(s.b.data)
}

// Mut returns the elements of s for writing, first giving s a private
// copy if the storage is shared or only partly viewed.
func (s *Slice[T]) Mut() []T {
	if s.b == nil {
		return nil
	}
	if !s.Unique() {
		data := slices.Clone(s.View())
		s.release()
		s.b, s.off = newBlock(data), 0
	}
	return s.b.data
}

// release gives up s's ownership of its block.
func (s *Slice[T]) release() {
	if s.b != nil {
		s.b.owners.Add(-1)
	}
}

// Append appends the elements to s, writing in place when s is unique.
func (s *Slice[T]) Append(src ...T) {
	if len(src) == 0 {
		return
	}
	if s.b == nil {
		*s = Of(src...)
		return
	}
	data := append(s.Mut(), src...)
	s.b.data = data
	s.n = len(data)
}

// AppendSlice appends the elements of t to s.
func (s *Slice[T]) AppendSlice(t Slice[T]) {
	s.Append(t.View()...)
}

// Truncate shortens s to n elements. It never copies.
func (s *Slice[T]) Truncate(n int) {
	if n < 0 || n > s.n {
		panic(fmt.Sprintf("truncate to %d out of range [0:%d]", n, s.n))
	}
	if s.Unique() && s.b != nil {
		s.b.data = s.b.data[:n]
	}
	s.n = n
}
