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
	"github.com/gx-org/tensorir/build/fmterr"
	"github.com/gx-org/tensorir/build/ir"
)

// Add returns the sum of a and b.
func Add(a, b ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil:
		return &ir.IntImm{T: opd.rtype, Value: opd.pa.Value + opd.pb.Value}, nil
	case opd.pa != nil && opd.pa.Value == 0:
		return simpleCast(opd.rtype, opd.b), nil
	case opd.pb != nil && opd.pb.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.fa != nil && opd.fb != nil:
		return &ir.FloatImm{T: opd.rtype, Value: opd.fa.Value + opd.fb.Value}, nil
	case opd.fa != nil && opd.fa.Value == 0:
		return simpleCast(opd.rtype, opd.b), nil
	case opd.fb != nil && opd.fb.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	}
	return &ir.Add{X: opd.a, Y: opd.b}, nil
}

// Neg returns the negation of a, built as zero minus a when a is not an
// immediate. Sub deliberately has no 0-b rewrite towards Neg, so the two
// builders cannot rewrite into each other forever.
func Neg(a ir.Expr) (ir.Expr, error) {
	if imm, ok := ir.ConstInt(a); ok {
		return &ir.IntImm{T: imm.T, Value: -imm.Value}, nil
	}
	if imm, ok := ir.ConstFloat(a); ok {
		return &ir.FloatImm{T: imm.T, Value: -imm.Value}, nil
	}
	zero, err := ir.MakeZero(a.TypeOf())
	if err != nil {
		return nil, err
	}
	return Sub(zero, a)
}

// Sub returns the difference of a and b.
func Sub(a, b ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil:
		return &ir.IntImm{T: opd.rtype, Value: opd.pa.Value - opd.pb.Value}, nil
	case opd.pb != nil && opd.pb.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.fa != nil && opd.fb != nil:
		return &ir.FloatImm{T: opd.rtype, Value: opd.fa.Value - opd.fb.Value}, nil
	case opd.fb != nil && opd.fb.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	}
	return &ir.Sub{X: opd.a, Y: opd.b}, nil
}

// Mul returns the product of a and b.
func Mul(a, b ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil:
		return &ir.IntImm{T: opd.rtype, Value: opd.pa.Value * opd.pb.Value}, nil
	case opd.pa != nil && opd.pa.Value == 1:
		return simpleCast(opd.rtype, opd.b), nil
	case opd.pa != nil && opd.pa.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.pb != nil && opd.pb.Value == 1:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.pb != nil && opd.pb.Value == 0:
		return simpleCast(opd.rtype, opd.b), nil
	case opd.fa != nil && opd.fb != nil:
		return &ir.FloatImm{T: opd.rtype, Value: opd.fa.Value * opd.fb.Value}, nil
	case opd.fa != nil && opd.fa.Value == 1:
		return simpleCast(opd.rtype, opd.b), nil
	case opd.fa != nil && opd.fa.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.fb != nil && opd.fb.Value == 1:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.fb != nil && opd.fb.Value == 0:
		return simpleCast(opd.rtype, opd.b), nil
	}
	return &ir.Mul{X: opd.a, Y: opd.b}, nil
}

// Div returns the quotient of a and b. Division modes differ across
// targets, so integer constants fold only in the non-negative quadrant
// where the rule is fixed; signed corner cases are left to lowering.
// A literal zero divisor is a construction error.
func Div(a, b ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil && opd.pa.Value >= 0 && opd.pb.Value > 0:
		return &ir.IntImm{T: opd.rtype, Value: opd.pa.Value / opd.pb.Value}, nil
	case opd.pa != nil && opd.pa.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.pb != nil:
		if opd.pb.Value == 1 {
			return simpleCast(opd.rtype, opd.a), nil
		}
		if opd.pb.Value == 0 {
			return nil, fmterr.DivideByZero("div")
		}
	case opd.fa != nil && opd.fb != nil && opd.fb.Value != 0:
		return &ir.FloatImm{T: opd.rtype, Value: opd.fa.Value / opd.fb.Value}, nil
	case opd.fa != nil && opd.fa.Value == 0:
		return simpleCast(opd.rtype, opd.a), nil
	case opd.fb != nil:
		if opd.fb.Value == 1 {
			return simpleCast(opd.rtype, opd.a), nil
		}
		if opd.fb.Value == 0 {
			return nil, fmterr.DivideByZero("div")
		}
	}
	return &ir.Div{X: opd.a, Y: opd.b}, nil
}

// Mod returns the remainder of the division of a by b. Only index-typed
// operands fold: remainder modes differ across targets and index
// expressions are the ones later passes need folded. A literal zero
// divisor is a construction error.
func Mod(a, b ir.Expr) (ir.Expr, error) {
	if pa, pb, rtype, ok := matchIndex(a, b); ok {
		switch {
		case pa != nil && pb != nil && pa.Value >= 0 && pb.Value > 0:
			return &ir.IntImm{T: rtype, Value: pa.Value % pb.Value}, nil
		case pa != nil && pa.Value == 0:
			return simpleCast(rtype, a), nil
		case pb != nil:
			if pb.Value == 1 {
				return ir.MakeZero(rtype)
			}
			if pb.Value == 0 {
				return nil, fmterr.DivideByZero("mod")
			}
		}
	}
	a, b, err := MatchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if pb, ok := ir.ConstInt(b); ok && pb.Value == 0 {
		return nil, fmterr.DivideByZero("mod")
	}
	if fb, ok := ir.ConstFloat(b); ok && fb.Value == 0 {
		return nil, fmterr.DivideByZero("mod")
	}
	return &ir.Mod{X: a, Y: b}, nil
}

// Min returns the smallest of a and b.
func Min(a, b ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil:
		return &ir.IntImm{T: opd.rtype, Value: min(opd.pa.Value, opd.pb.Value)}, nil
	case opd.fa != nil && opd.fb != nil:
		return &ir.FloatImm{T: opd.rtype, Value: min(opd.fa.Value, opd.fb.Value)}, nil
	}
	return &ir.Min{X: opd.a, Y: opd.b}, nil
}

// Max returns the largest of a and b.
func Max(a, b ir.Expr) (ir.Expr, error) {
	opd, err := matchArith(a, b)
	if err != nil {
		return nil, err
	}
	switch {
	case opd.pa != nil && opd.pb != nil:
		return &ir.IntImm{T: opd.rtype, Value: max(opd.pa.Value, opd.pb.Value)}, nil
	case opd.fa != nil && opd.fb != nil:
		return &ir.FloatImm{T: opd.rtype, Value: max(opd.fa.Value, opd.fb.Value)}, nil
	}
	return &ir.Max{X: opd.a, Y: opd.b}, nil
}
