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

// Package ops builds tensor IR expressions.
//
// Each builder takes already built operand expressions, brings them to a
// common type, folds constants and drops algebraic identities, then
// allocates the corresponding node. Later passes rely on trivial
// identities being collapsed here, so expressions must always be built
// through this package rather than with node literals.
//
// Builders are pure: they never mutate their operands and are safe to
// call concurrently.
package ops

import (
	"github.com/gx-org/tensorir/build/fmterr"
	"github.com/gx-org/tensorir/build/ir"
)

// isIndexType reports whether a type is used to represent an index.
// Index types are frequently used in shape computation and need to be
// aggressively constant-folded.
func isIndexType(t ir.Type) bool {
	return t.IsInt() && t.Lanes == 1 && (t.Bits == 32 || t.Bits == 64)
}

// simpleCast casts value to t, allocating a node only when the types differ.
func simpleCast(t ir.Type, value ir.Expr) ir.Expr {
	if value.TypeOf() == t {
		return value
	}
	return &ir.Cast{T: t, Value: value}
}

// MatchTypes brings two operands to a common type and returns them
// rebound. A scalar operand is broadcast to the lanes of a vector
// operand. Element types are then promoted: integer towards float,
// narrow towards wide, and a signed with an unsigned integer both
// towards a signed integer of the widest bit count. Only these simple
// coercions are applied; anything more exotic must be pre-cast by the
// caller so that hidden conversions do not degrade precision in
// generated kernels.
func MatchTypes(a, b ir.Expr) (ir.Expr, ir.Expr, error) {
	if a.TypeOf() == b.TypeOf() {
		return a, b, nil
	}
	ltype, rtype := a.TypeOf(), b.TypeOf()
	if ltype.Lanes == 1 && rtype.Lanes != 1 {
		a = &ir.Broadcast{Value: a, Lanes: rtype.Lanes}
	} else if rtype.Lanes == 1 && ltype.Lanes != 1 {
		b = &ir.Broadcast{Value: b, Lanes: ltype.Lanes}
	} else if ltype.Lanes != rtype.Lanes {
		return nil, nil, fmterr.TypeMismatch(ltype, rtype)
	}
	if a.TypeOf() == b.TypeOf() {
		return a, b, nil
	}
	// Only simple conversions: int to float and narrow to wide.
	// The caller pre-casts anything else, which keeps the code
	// generated by operators small and surfaces conversion problems.
	ta, tb := a.TypeOf(), b.TypeOf()
	var err error
	switch {
	case (ta.IsInt() || ta.IsUint()) && tb.IsFloat():
		a, err = Cast(tb, a)
	case ta.IsFloat() && (tb.IsInt() || tb.IsUint()):
		b, err = Cast(ta, b)
	case ta.IsInt() && tb.IsInt(), ta.IsUint() && tb.IsUint():
		if ta.Bits < tb.Bits {
			a, err = Cast(tb, a)
		} else {
			b, err = Cast(ta, b)
		}
	case ta.IsInt() && tb.IsUint(), ta.IsUint() && tb.IsInt():
		bits := max(ta.Bits, tb.Bits)
		a = simpleCast(ir.Int(bits, ta.Lanes), a)
		b = simpleCast(ir.Int(bits, tb.Lanes), b)
	default:
		return nil, nil, fmterr.TypeMismatch(ltype, rtype)
	}
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Cast converts value to type t. A signed integer or floating point
// immediate is folded into an immediate of the target type; an unsigned
// immediate is wrapped in a cast node. Casting a scalar to a vector type casts
// to the element type then broadcasts over the lanes.
func Cast(t ir.Type, value ir.Expr) (ir.Expr, error) {
	if value.TypeOf() == t {
		return value, nil
	}
	if t.Lanes == 1 {
		return castScalar(t, value)
	}
	if value.TypeOf().Lanes == 1 {
		vtype := t.ElementOf()
		if value.TypeOf() != vtype {
			elem, err := castScalar(vtype, value)
			if err != nil {
				return nil, err
			}
			value = elem
		}
		return &ir.Broadcast{Value: value, Lanes: t.Lanes}, nil
	}
	if value.TypeOf().Lanes != t.Lanes {
		return nil, fmterr.TypeMismatch(t, value.TypeOf())
	}
	return &ir.Cast{T: t, Value: value}, nil
}

// castScalar folds signed integer and floating point immediates, as they
// are used in index computations.
func castScalar(t ir.Type, value ir.Expr) (ir.Expr, error) {
	if imm, ok := ir.ConstInt(value); ok {
		return ir.MakeConst(t, imm.Value)
	}
	if imm, ok := ir.ConstFloat(value); ok {
		return ir.MakeConst(t, imm.Value)
	}
	return &ir.Cast{T: t, Value: value}, nil
}

// Reinterpret returns value with its bits reinterpreted as type t.
// Immediates are never folded: the bit representation is not
// reconstructed at build time.
func Reinterpret(t ir.Type, value ir.Expr) ir.Expr {
	if value.TypeOf() == t {
		return value
	}
	return &ir.Call{
		T:        t,
		Name:     ir.IntrinReinterpret,
		Args:     []ir.Expr{value},
		CallKind: ir.PureIntrinsic,
	}
}

// arithOperands unifies the types of two operands and extracts their
// scalar immediate views for the fold rules of the arithmetic builders.
type arithOperands struct {
	a, b ir.Expr
	// rtype is the common type of both operands after unification.
	rtype  ir.Type
	pa, pb *ir.IntImm
	fa, fb *ir.FloatImm
}

func matchArith(a, b ir.Expr) (arithOperands, error) {
	a, b, err := MatchTypes(a, b)
	if err != nil {
		return arithOperands{}, err
	}
	opd := arithOperands{a: a, b: b, rtype: a.TypeOf()}
	opd.pa, _ = ir.ConstInt(a)
	opd.pb, _ = ir.ConstInt(b)
	opd.fa, _ = ir.ConstFloat(a)
	opd.fb, _ = ir.ConstFloat(b)
	return opd, nil
}

// matchIndex extracts the immediate views for the index fast path: both
// operands must be index-typed. The result type is the wider of the two.
func matchIndex(a, b ir.Expr) (pa, pb *ir.IntImm, rtype ir.Type, ok bool) {
	ta, tb := a.TypeOf(), b.TypeOf()
	if !isIndexType(ta) || !isIndexType(tb) {
		return nil, nil, ir.Type{}, false
	}
	rtype = ta
	if tb.Bits > ta.Bits {
		rtype = tb
	}
	pa, _ = ir.ConstInt(a)
	pb, _ = ir.ConstInt(b)
	return pa, pb, rtype, true
}
