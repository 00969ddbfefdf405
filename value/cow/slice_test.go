// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cow

import (
	"slices"
	"testing"
)

func TestMutUnique(t *testing.T) {
	s := Of(1, 2, 3)
	before := &s.View()[0]
	m := s.Mut()
	m[0] = 10
	if &m[0] != before {
		t.Error("Mut copied a uniquely owned slice")
	}
	if s.At(0) != 10 {
		t.Errorf("At(0) = %d after write", s.At(0))
	}
}

func TestMutShared(t *testing.T) {
	s := Of(1, 2, 3)
	u := s.Share()
	u.Mut()[0] = 10
	if s.At(0) != 1 {
		t.Errorf("write through shared copy changed original: %v", s.View())
	}
	if u.At(0) != 10 {
		t.Errorf("u.At(0) = %d", u.At(0))
	}
	// u now has its own block, so it writes in place.
	p := &u.View()[0]
	if &u.Mut()[0] != p {
		t.Error("Mut copied again after taking a private copy")
	}
}

func TestSlice(t *testing.T) {
	s := Of(0, 1, 2, 3, 4, 5)
	sub := s.Slice(2, 5)
	if !slices.Equal(sub.View(), []int{2, 3, 4}) {
		t.Fatalf("Slice(2, 5) = %v", sub.View())
	}
	if &sub.View()[0] != &s.View()[2] {
		t.Error("Slice copied elements")
	}
	sub.Mut()[0] = 20
	if s.At(2) != 2 {
		t.Error("write to sub-slice changed original")
	}
	if sub.Len() != 3 || sub.At(0) != 20 {
		t.Errorf("sub = %v", sub.View())
	}
}

func TestAppend(t *testing.T) {
	var s Slice[int]
	s.Append()
	if s.Len() != 0 {
		t.Fatalf("empty Append gave %v", s.View())
	}
	s.Append(1, 2)
	shared := s.Share()
	s.Append(3)
	s.AppendSlice(Of(4, 5))
	if !slices.Equal(s.View(), []int{1, 2, 3, 4, 5}) {
		t.Errorf("s = %v", s.View())
	}
	if !slices.Equal(shared.View(), []int{1, 2}) {
		t.Errorf("shared = %v", shared.View())
	}
}

func TestTruncate(t *testing.T) {
	s := Of(1, 2, 3, 4)
	u := s.Share()
	s.Truncate(2)
	if !slices.Equal(s.View(), []int{1, 2}) || u.Len() != 4 {
		t.Errorf("s = %v, u = %v", s.View(), u.View())
	}
	s.Append(9)
	if u.At(2) != 3 {
		t.Errorf("append after truncate overwrote shared element: %v", u.View())
	}
}

func TestAll(t *testing.T) {
	s := Repeat("x", 3)
	n := 0
	for i, v := range s.All() {
		if i != n || v != "x" {
			t.Errorf("All yielded %d, %q", i, v)
		}
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times", n)
	}
	if Make[int](4).Len() != 4 {
		t.Error("Make(4) has wrong length")
	}
}
