// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"hash/maphash"
	"math"
	"strconv"
)

// Element is implemented by the types an Array can hold.
// Equality and hashing are the ones arrays use, which may differ from ==.
type Element[T any] interface {
	ArrayEq(T) bool
	ArrayHash(*maphash.Hash)
}

// Num is a numeric element. Under ArrayEq every NaN equals every other NaN.
type Num float64

func (x Num) ArrayEq(y Num) bool {
	return x == y || math.IsNaN(float64(x)) && math.IsNaN(float64(y))
}

func (x Num) ArrayHash(h *maphash.Hash) {
	bits := math.Float64bits(float64(x))
	if math.IsNaN(float64(x)) {
		bits = math.Float64bits(math.NaN())
	}
	maphash.WriteComparable(h, bits)
}

func (x Num) String() string {
	return strconv.FormatFloat(float64(x), 'f', -1, 64)
}

// Sprint formats x with the fmt verb format, or as String for "%v".
func (x Num) Sprint(format string) string {
	if format == "" || format == "%v" {
		return x.String()
	}
	return fmt.Sprintf(format, float64(x))
}

// Int returns x as an int if it is integral.
func (x Num) Int() (int, bool) {
	f := float64(x)
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}

func bool2Num(t bool) Num {
	if t {
		return 1
	}
	return 0
}
