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
	"fmt"

	"github.com/gx-org/backend/dtype"
)

// TypeCode is the category of the values a type describes.
type TypeCode uint8

// Categories of values supported by the IR.
const (
	// CodeInt is a signed integer.
	CodeInt TypeCode = iota
	// CodeUint is an unsigned integer. Booleans are 1-bit unsigned integers.
	CodeUint
	// CodeFloat is a floating point value.
	CodeFloat
	// CodeHandle is an opaque pointer.
	CodeHandle
)

// String returns a string representation of the code.
func (c TypeCode) String() string {
	switch c {
	case CodeInt:
		return "int"
	case CodeUint:
		return "uint"
	case CodeFloat:
		return "float"
	case CodeHandle:
		return "handle"
	}
	return "invalid"
}

// Type describes the value computed by an expression.
//
// A type is an element category and width replicated over a number of
// vector lanes. Lanes equal to 1 means a scalar. Types are small values
// and compare with ==.
type Type struct {
	// Code is the category of the element values.
	Code TypeCode
	// Bits is the width of one element in bits.
	Bits int
	// Lanes is the number of vector lanes.
	Lanes int
}

// Int returns a signed integer type.
func Int(bits, lanes int) Type {
	return Type{Code: CodeInt, Bits: bits, Lanes: lanes}
}

// UInt returns an unsigned integer type.
func UInt(bits, lanes int) Type {
	return Type{Code: CodeUint, Bits: bits, Lanes: lanes}
}

// Float returns a floating point type.
func Float(bits, lanes int) Type {
	return Type{Code: CodeFloat, Bits: bits, Lanes: lanes}
}

// Bool returns a boolean type, that is a 1-bit unsigned integer.
func Bool(lanes int) Type {
	return Type{Code: CodeUint, Bits: 1, Lanes: lanes}
}

// Handle returns the type of an opaque pointer.
func Handle() Type {
	return Type{Code: CodeHandle, Bits: 64, Lanes: 1}
}

// Common scalar types.
var (
	Int32   = Int(32, 1)
	Int64   = Int(64, 1)
	UInt32  = UInt(32, 1)
	UInt64  = UInt(64, 1)
	Float32 = Float(32, 1)
	Float64 = Float(64, 1)
)

// IsInt reports whether the type is a signed integer.
func (t Type) IsInt() bool {
	return t.Code == CodeInt
}

// IsUint reports whether the type is an unsigned integer.
// Booleans are unsigned integers.
func (t Type) IsUint() bool {
	return t.Code == CodeUint
}

// IsFloat reports whether the type is a floating point.
func (t Type) IsFloat() bool {
	return t.Code == CodeFloat
}

// IsBool reports whether the type is a boolean.
func (t Type) IsBool() bool {
	return t.Code == CodeUint && t.Bits == 1
}

// IsHandle reports whether the type is an opaque pointer.
func (t Type) IsHandle() bool {
	return t.Code == CodeHandle
}

// IsScalar reports whether the type has a single lane.
func (t Type) IsScalar() bool {
	return t.Lanes == 1
}

// ElementOf returns the type of one lane of the type.
func (t Type) ElementOf() Type {
	t.Lanes = 1
	return t
}

// LanesOf returns the type replicated over lanes vector lanes.
func (t Type) LanesOf(lanes int) Type {
	t.Lanes = lanes
	return t
}

// DType returns the backend data type of one element of the type.
// Returns dtype.Invalid for element types the backend cannot store.
func (t Type) DType() dtype.DataType {
	if t.IsBool() {
		return dtype.Bool
	}
	switch t.Code {
	case CodeInt:
		switch t.Bits {
		case 32:
			return dtype.Int32
		case 64:
			return dtype.Int64
		}
	case CodeUint:
		switch t.Bits {
		case 32:
			return dtype.Uint32
		case 64:
			return dtype.Uint64
		}
	case CodeFloat:
		switch t.Bits {
		case 32:
			return dtype.Float32
		case 64:
			return dtype.Float64
		}
	}
	return dtype.Invalid
}

// String returns a string representation of the type.
func (t Type) String() string {
	var elem string
	switch {
	case t.IsBool():
		elem = "bool"
	case t.IsHandle():
		elem = "handle"
	default:
		elem = fmt.Sprintf("%s%d", t.Code, t.Bits)
	}
	if t.Lanes == 1 {
		return elem
	}
	return fmt.Sprintf("%sx%d", elem, t.Lanes)
}
