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

// Bitwise operations and shifts have no dedicated node variant: they are
// emitted as pure intrinsic calls. Only index-typed operands fold;
// vector, unsigned and narrow integer constants are left to lowering.

func bitwiseCall(name string, a, b ir.Expr) (ir.Expr, error) {
	a, b, err := MatchTypes(a, b)
	if err != nil {
		return nil, err
	}
	return &ir.Call{
		T:        a.TypeOf(),
		Name:     name,
		Args:     []ir.Expr{a, b},
		CallKind: ir.PureIntrinsic,
	}, nil
}

// foldableShift reports whether the shift count has a defined fold.
func foldableShift(pb *ir.IntImm) bool {
	return pb.Value >= 0 && pb.Value < 64
}

// Shl returns a shifted left by b bits.
func Shl(a, b ir.Expr) (ir.Expr, error) {
	if pa, pb, rtype, ok := matchIndex(a, b); ok {
		switch {
		case pa != nil && pb != nil && foldableShift(pb):
			return &ir.IntImm{T: rtype, Value: pa.Value << uint(pb.Value)}, nil
		case pb != nil && pb.Value == 0:
			return simpleCast(rtype, a), nil
		}
	}
	return bitwiseCall(ir.IntrinShiftLeft, a, b)
}

// Shr returns a shifted right by b bits.
func Shr(a, b ir.Expr) (ir.Expr, error) {
	if pa, pb, rtype, ok := matchIndex(a, b); ok {
		switch {
		case pa != nil && pb != nil && foldableShift(pb):
			return &ir.IntImm{T: rtype, Value: pa.Value >> uint(pb.Value)}, nil
		case pb != nil && pb.Value == 0:
			return simpleCast(rtype, a), nil
		}
	}
	return bitwiseCall(ir.IntrinShiftRight, a, b)
}

// BitAnd returns the bitwise conjunction of a and b.
func BitAnd(a, b ir.Expr) (ir.Expr, error) {
	if pa, pb, rtype, ok := matchIndex(a, b); ok && pa != nil && pb != nil {
		return &ir.IntImm{T: rtype, Value: pa.Value & pb.Value}, nil
	}
	return bitwiseCall(ir.IntrinBitwiseAnd, a, b)
}

// BitOr returns the bitwise disjunction of a and b.
func BitOr(a, b ir.Expr) (ir.Expr, error) {
	if pa, pb, rtype, ok := matchIndex(a, b); ok && pa != nil && pb != nil {
		return &ir.IntImm{T: rtype, Value: pa.Value | pb.Value}, nil
	}
	return bitwiseCall(ir.IntrinBitwiseOr, a, b)
}

// BitXor returns the bitwise exclusive disjunction of a and b.
func BitXor(a, b ir.Expr) (ir.Expr, error) {
	if pa, pb, rtype, ok := matchIndex(a, b); ok && pa != nil && pb != nil {
		return &ir.IntImm{T: rtype, Value: pa.Value ^ pb.Value}, nil
	}
	return bitwiseCall(ir.IntrinBitwiseXor, a, b)
}

// BitNot returns the bitwise complement of a. The operand must be an
// integer.
func BitNot(a ir.Expr) (ir.Expr, error) {
	t := a.TypeOf()
	if !t.IsInt() && !t.IsUint() {
		return nil, fmterr.UnsupportedType("bitwise not", t)
	}
	return &ir.Call{
		T:        t,
		Name:     ir.IntrinBitwiseNot,
		Args:     []ir.Expr{a},
		CallKind: ir.PureIntrinsic,
	}, nil
}

func constPowerOfTwo[T int64 | uint64](val T) (int, bool) {
	if val <= 0 {
		return 0, false
	}
	shift := 0
	for val != 0 {
		if val&1 != 0 {
			return shift, val == 1
		}
		shift++
		val = val >> 1
	}
	return 0, false
}

// IsConstPowerOfTwoInteger reports whether x is a positive power of two
// integer immediate, and returns the power.
func IsConstPowerOfTwoInteger(x ir.Expr) (int, bool) {
	if imm, ok := ir.ConstInt(x); ok {
		return constPowerOfTwo(imm.Value)
	}
	if imm, ok := ir.ConstUint(x); ok {
		return constPowerOfTwo(imm.Value)
	}
	return 0, false
}
