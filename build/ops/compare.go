// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ops

import "github.com/gx-org/tensorir/build/ir"

func boolImm(v bool) ir.Expr {
	var val uint64
	if v {
		val = 1
	}
	return &ir.UIntImm{T: ir.Bool(1), Value: val}
}

// compare unifies the operand types, then folds when both operands are
// immediates of the same kind or builds the node returned by mk.
func compare(a, b ir.Expr, onInt func(x, y int64) bool, onFloat func(x, y float64) bool, mk func(x, y ir.Expr) ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil:
		return boolImm(onInt(opd.pa.Value, opd.pb.Value)), nil
	case opd.fa != nil && opd.fb != nil:
		return boolImm(onFloat(opd.fa.Value, opd.fb.Value)), nil
	}
	return mk(opd.a, opd.b), nil
}

// GT reports whether a is greater than b.
func GT(a, b ir.Expr) (ir.Expr, error) {
	return compare(a, b,
		func(x, y int64) bool { return x > y },
		func(x, y float64) bool { return x > y },
		func(x, y ir.Expr) ir.Expr { return &ir.GT{X: x, Y: y} })
}

// GE reports whether a is greater than or equal to b.
func GE(a, b ir.Expr) (ir.Expr, error) {
	return compare(a, b,
		func(x, y int64) bool { return x >= y },
		func(x, y float64) bool { return x >= y },
		func(x, y ir.Expr) ir.Expr { return &ir.GE{X: x, Y: y} })
}

// LT reports whether a is less than b.
func LT(a, b ir.Expr) (ir.Expr, error) {
	return compare(a, b,
		func(x, y int64) bool { return x < y },
		func(x, y float64) bool { return x < y },
		func(x, y ir.Expr) ir.Expr { return &ir.LT{X: x, Y: y} })
}

// LE reports whether a is less than or equal to b.
func LE(a, b ir.Expr) (ir.Expr, error) {
	return compare(a, b,
		func(x, y int64) bool { return x <= y },
		func(x, y float64) bool { return x <= y },
		func(x, y ir.Expr) ir.Expr { return &ir.LE{X: x, Y: y} })
}

// EQ reports whether a is equal to b.
func EQ(a, b ir.Expr) (ir.Expr, error) {
	return compare(a, b,
		func(x, y int64) bool { return x == y },
		func(x, y float64) bool { return x == y },
		func(x, y ir.Expr) ir.Expr { return &ir.EQ{X: x, Y: y} })
}

// NE reports whether a is different from b.
func NE(a, b ir.Expr) (ir.Expr, error) {
	return compare(a, b,
		func(x, y int64) bool { return x != y },
		func(x, y float64) bool { return x != y },
		func(x, y ir.Expr) ir.Expr { return &ir.NE{X: x, Y: y} })
}
