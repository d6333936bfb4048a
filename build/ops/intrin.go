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

import (
	"math"

	"github.com/gx-org/tensorir/build/fmterr"
	"github.com/gx-org/tensorir/build/ir"
)

func pureCall(t ir.Type, name string, args ...ir.Expr) ir.Expr {
	return &ir.Call{T: t, Name: name, Args: args, CallKind: ir.PureIntrinsic}
}

// Pow returns x raised to the power y. The operands are unified first and
// their common type must be float.
func Pow(x, y ir.Expr) (ir.Expr, error) {
	x, y, err := MatchTypes(x, y)
	if err != nil {
		return nil, err
	}
	if !x.TypeOf().IsFloat() {
		return nil, fmterr.UnsupportedType("pow", x.TypeOf())
	}
	return pureCall(x.TypeOf(), ir.IntrinPow, x, y), nil
}

// Fmod returns the floating point remainder of x divided by y.
func Fmod(x, y ir.Expr) (ir.Expr, error) {
	x, y, err := MatchTypes(x, y)
	if err != nil {
		return nil, err
	}
	if !x.TypeOf().IsFloat() {
		return nil, fmterr.UnsupportedType("fmod", x.TypeOf())
	}
	return pureCall(x.TypeOf(), ir.IntrinFmod, x, y), nil
}

// foldUnaryFloat folds a float immediate with f, or emits a pure
// intrinsic call named name.
func foldUnaryFloat(name string, x ir.Expr, f func(float64) float64) ir.Expr {
	if fx, ok := ir.ConstFloat(x); ok {
		return &ir.FloatImm{T: fx.T, Value: f(fx.Value)}
	}
	return pureCall(x.TypeOf(), name, x)
}

// Floor returns x rounded towards negative infinity.
func Floor(x ir.Expr) ir.Expr {
	return foldUnaryFloat(ir.IntrinFloor, x, math.Floor)
}

// Ceil returns x rounded towards positive infinity.
func Ceil(x ir.Expr) ir.Expr {
	return foldUnaryFloat(ir.IntrinCeil, x, math.Ceil)
}

// Round returns x rounded to the nearest integer, ties to even.
func Round(x ir.Expr) ir.Expr {
	return foldUnaryFloat(ir.IntrinRound, x, math.RoundToEven)
}

// Trunc returns x rounded towards zero.
func Trunc(x ir.Expr) ir.Expr {
	return foldUnaryFloat(ir.IntrinTrunc, x, func(v float64) float64 {
		if v < 0 {
			return math.Ceil(v)
		}
		return math.Floor(v)
	})
}

// Abs returns the absolute value of x. An unsigned operand is returned
// unchanged.
func Abs(x ir.Expr) (ir.Expr, error) {
	t := x.TypeOf()
	switch {
	case t.IsInt():
		if px, ok := ir.ConstInt(x); ok {
			value := px.Value
			if value < 0 {
				value = -value
			}
			return &ir.IntImm{T: px.T, Value: value}, nil
		}
		zero, err := ir.MakeZero(t)
		if err != nil {
			return nil, err
		}
		nonNeg, err := GE(x, zero)
		if err != nil {
			return nil, err
		}
		neg, err := Neg(x)
		if err != nil {
			return nil, err
		}
		return &ir.Select{Cond: nonNeg, TrueValue: x, FalseValue: neg}, nil
	case t.IsFloat():
		if fx, ok := ir.ConstFloat(x); ok {
			return &ir.FloatImm{T: fx.T, Value: math.Abs(fx.Value)}, nil
		}
		return pureCall(t, ir.IntrinFabs, x), nil
	case t.IsUint():
		return x, nil
	}
	return nil, fmterr.UnsupportedType("abs", t)
}

// IfThenElse returns t when cond holds and f otherwise, evaluating only
// the selected branch. The condition must be a single boolean.
func IfThenElse(cond, t, f ir.Expr) (ir.Expr, error) {
	if cond.TypeOf() != ir.Bool(1) {
		return nil, fmterr.UnsupportedType("if_then_else condition", cond.TypeOf())
	}
	t, f, err := MatchTypes(t, f)
	if err != nil {
		return nil, err
	}
	if imm, ok := ir.ConstUint(cond); ok {
		if imm.Value != 0 {
			return t, nil
		}
		return f, nil
	}
	if imm, ok := ir.ConstInt(cond); ok {
		if imm.Value != 0 {
			return t, nil
		}
		return f, nil
	}
	return pureCall(t.TypeOf(), ir.IntrinIfThenElse, cond, t, f), nil
}

// Likely marks cond as probably true. A constant condition is returned
// unchanged.
func Likely(cond ir.Expr) ir.Expr {
	if ir.IsConst(cond) {
		return cond
	}
	return pureCall(cond.TypeOf(), ir.IntrinLikely, cond)
}
