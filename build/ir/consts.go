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

package ir

import (
	"math"

	"github.com/pkg/errors"
)

// ConstValue is the set of Go values an immediate can be built from.
type ConstValue interface {
	~int | ~int64 | ~uint64 | ~float64
}

// MakeConst returns an immediate of type t holding the value v,
// dispatching on the kind of t. A vector type yields a scalar immediate
// replicated with a broadcast.
func MakeConst[T ConstValue](t Type, v T) (Expr, error) {
	if t.Lanes > 1 {
		elem, err := MakeConst(t.ElementOf(), v)
		if err != nil {
			return nil, err
		}
		return &Broadcast{Value: elem, Lanes: t.Lanes}, nil
	}
	switch {
	case t.IsInt():
		return &IntImm{T: t, Value: int64(v)}, nil
	case t.IsBool():
		val := uint64(0)
		if v != 0 {
			val = 1
		}
		return &UIntImm{T: t, Value: val}, nil
	case t.IsUint():
		return &UIntImm{T: t, Value: uint64(v)}, nil
	case t.IsFloat():
		return &FloatImm{T: t, Value: float64(v)}, nil
	}
	return nil, errors.Errorf("cannot make a constant of type %s", t)
}

// MakeZero returns the zero immediate of type t.
func MakeZero(t Type) (Expr, error) {
	return MakeConst(t, 0)
}

// MakeOne returns the one immediate of type t.
func MakeOne(t Type) (Expr, error) {
	return MakeConst(t, 1)
}

// ConstInt returns the view of an expression as a scalar signed integer
// immediate.
func ConstInt(e Expr) (*IntImm, bool) {
	imm, ok := e.(*IntImm)
	return imm, ok
}

// ConstUint returns the view of an expression as a scalar unsigned
// integer immediate.
func ConstUint(e Expr) (*UIntImm, bool) {
	imm, ok := e.(*UIntImm)
	return imm, ok
}

// ConstFloat returns the view of an expression as a scalar floating
// point immediate.
func ConstFloat(e Expr) (*FloatImm, bool) {
	imm, ok := e.(*FloatImm)
	return imm, ok
}

// IsConst reports whether an expression is an immediate, or an immediate
// replicated over vector lanes.
func IsConst(e Expr) bool {
	switch eT := e.(type) {
	case *IntImm, *UIntImm, *FloatImm:
		return true
	case *Broadcast:
		return IsConst(eT.Value)
	}
	return false
}

func broadcast(e Expr, lanes int) Expr {
	if lanes == 1 {
		return e
	}
	return &Broadcast{Value: e, Lanes: lanes}
}

// Min returns the smallest value representable by the type.
func (t Type) Min() (Expr, error) {
	elem := t.ElementOf()
	switch {
	case t.IsInt():
		if t.Bits > 64 {
			return nil, errors.Errorf("no minimum value for type %s", t)
		}
		return broadcast(&IntImm{T: elem, Value: -(int64(1) << (t.Bits - 1))}, t.Lanes), nil
	case t.IsUint():
		return broadcast(&UIntImm{T: elem, Value: 0}, t.Lanes), nil
	case t.IsFloat():
		max, err := floatMax(t)
		if err != nil {
			return nil, err
		}
		return broadcast(&FloatImm{T: elem, Value: -max}, t.Lanes), nil
	}
	return nil, errors.Errorf("no minimum value for type %s", t)
}

// Max returns the largest value representable by the type.
func (t Type) Max() (Expr, error) {
	elem := t.ElementOf()
	switch {
	case t.IsInt():
		if t.Bits > 64 {
			return nil, errors.Errorf("no maximum value for type %s", t)
		}
		return broadcast(&IntImm{T: elem, Value: (int64(1)<<(t.Bits-1) - 1)}, t.Lanes), nil
	case t.IsUint():
		if t.Bits >= 64 {
			return broadcast(&UIntImm{T: elem, Value: math.MaxUint64}, t.Lanes), nil
		}
		return broadcast(&UIntImm{T: elem, Value: uint64(1)<<t.Bits - 1}, t.Lanes), nil
	case t.IsFloat():
		max, err := floatMax(t)
		if err != nil {
			return nil, err
		}
		return broadcast(&FloatImm{T: elem, Value: max}, t.Lanes), nil
	}
	return nil, errors.Errorf("no maximum value for type %s", t)
}

func floatMax(t Type) (float64, error) {
	switch t.Bits {
	case 32:
		return math.MaxFloat32, nil
	case 64:
		return math.MaxFloat64, nil
	}
	return 0, errors.Errorf("no extremal value for type %s", t)
}
