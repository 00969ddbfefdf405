// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"sort"
)

// Scalar functions. A binary function receives the topmost stack
// value first, so subtract computes b-a.

type unaryOp struct {
	name string
	fn   func(Num) Num
}

type binaryOp struct {
	name     string
	identity Num
	fn       func(a, b Num) Num
}

var (
	unaryOps  map[string]*unaryOp
	binaryOps map[string]*binaryOp
)

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

func init() {
	unary := []*unaryOp{
		{"negate", func(x Num) Num { return -x }},
		{"not", func(x Num) Num { return 1 - x }},
		{"absolute", func(x Num) Num { return Num(math.Abs(float64(x))) }},
		{"sign", func(x Num) Num {
			if math.IsNaN(float64(x)) {
				return x
			}
			return Num(math.Copysign(1, float64(x)))
		}},
	}
	unaryOps = make(map[string]*unaryOp)
	for _, op := range unary {
		unaryOps[op.name] = op
	}

	binary := []*binaryOp{
		{"add", 0, func(a, b Num) Num { return b + a }},
		{"subtract", 0, func(a, b Num) Num { return b - a }},
		{"multiply", 1, func(a, b Num) Num { return b * a }},
		{"divide", 1, func(a, b Num) Num { return b / a }},
		{"modulo", 0, remEuclid},
		{"equals", 0, func(a, b Num) Num { return bool2Num(a.ArrayEq(b)) }},
		{"notequals", 0, func(a, b Num) Num { return bool2Num(!a.ArrayEq(b)) }},
		{"less", 0, func(a, b Num) Num { return bool2Num(b < a) }},
		{"greater", 0, func(a, b Num) Num { return bool2Num(b > a) }},
		{"minimum", 0, func(a, b Num) Num { return minMax(a, b, math.Min) }},
		{"maximum", 1, func(a, b Num) Num { return minMax(a, b, math.Max) }},
	}
	binaryOps = make(map[string]*binaryOp)
	for _, op := range binary {
		binaryOps[op.name] = op
	}
}

// remEuclid returns the least non-negative remainder of b divided by a.
func remEuclid(a, b Num) Num {
	r := math.Mod(float64(b), float64(a))
	if r < 0 {
		r += math.Abs(float64(a))
	}
	return Num(r)
}

// minMax applies f, ignoring one NaN operand.
func minMax(a, b Num, f func(x, y float64) float64) Num {
	switch {
	case math.IsNaN(float64(a)):
		return b
	case math.IsNaN(float64(b)):
		return a
	}
	return Num(f(float64(a), float64(b)))
}

// UnaryOps returns the names of the element-wise unary functions.
func UnaryOps() []string {
	return sortedKeys(unaryOps)
}

// BinaryOps returns the names of the pervasive binary functions.
func BinaryOps() []string {
	return sortedKeys(binaryOps)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unary applies the named unary function to every element of a,
// in place when a holds the only reference to its elements.
func Unary(op string, a NumArray) (NumArray, error) {
	u := unaryOps[op]
	if u == nil {
		return NumArray{}, Errorf("unary %s not implemented", op)
	}
	data := a.Data.Mut()
	for i, x := range data {
		data[i] = u.fn(x)
	}
	return a, nil
}

// Binary applies the named binary function to a, the topmost value,
// and b, pervading over their forms.
func Binary(a NumArray, op string, b NumArray) (NumArray, error) {
	fn := BinaryFunc(op)
	if fn == nil {
		return NumArray{}, Errorf("binary %s not implemented", op)
	}
	return Pervade(a, b, fn)
}

// BinaryFunc returns the scalar function of the named binary operator,
// or nil if there is none.
func BinaryFunc(op string) func(a, b Num) Num {
	if b := binaryOps[op]; b != nil {
		return b.fn
	}
	return nil
}

// Identity returns the identity used when folding the named operator
// over an empty axis.
func Identity(op string) (Num, bool) {
	if b := binaryOps[op]; b != nil {
		return b.identity, true
	}
	return 0, false
}
