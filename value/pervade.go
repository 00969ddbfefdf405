// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "ufel.dev/ufel/value/cow"

// Pervade applies f element-wise to a and b.
//
// If the forms are equal the elements pair up by position. If one form
// is a prefix of the other, the smaller array is repeated against each
// block of the larger one and the result takes the larger form.
// Otherwise the forms are incompatible.
func Pervade[A Element[A], B Element[B], C Element[C]](a Array[A], b Array[B], f func(A, B) C) (Array[C], error) {
	av, bv := a.Data.View(), b.Data.View()
	switch {
	case a.Form.Equal(b.Form):
		out := make([]C, len(av))
		for i := range out {
			out[i] = f(av[i], bv[i])
		}
		return NewArray(a.Form, cow.From(out)), nil
	case a.Form.IsPrefixOf(b.Form):
		out := make([]C, len(bv))
		if n := len(av); n > 0 {
			for i := range out {
				out[i] = f(av[i%n], bv[i])
			}
		}
		return NewArray(b.Form, cow.From(out)), nil
	case b.Form.IsPrefixOf(a.Form):
		out := make([]C, len(av))
		if n := len(bv); n > 0 {
			for i := range out {
				out[i] = f(av[i], bv[i%n])
			}
		}
		return NewArray(a.Form, cow.From(out)), nil
	}
	return Array[C]{}, Errorf("Forms %s and %s are not compatible", a.Form, b.Form)
}
