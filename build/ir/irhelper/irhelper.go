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

// Package irhelper provides helper functions to build IR programmatically.
package irhelper

import "github.com/gx-org/tensorir/build/ir"

// IntImm returns a signed integer immediate.
func IntImm(t ir.Type, v int64) *ir.IntImm {
	return &ir.IntImm{T: t, Value: v}
}

// UIntImm returns an unsigned integer immediate.
func UIntImm(t ir.Type, v uint64) *ir.UIntImm {
	return &ir.UIntImm{T: t, Value: v}
}

// FloatImm returns a floating point immediate.
func FloatImm(t ir.Type, v float64) *ir.FloatImm {
	return &ir.FloatImm{T: t, Value: v}
}

// Bool returns a boolean immediate.
func Bool(v bool) *ir.UIntImm {
	imm := &ir.UIntImm{T: ir.Bool(1)}
	if v {
		imm.Value = 1
	}
	return imm
}

// Var returns a variable given its name and its type.
func Var(name string, t ir.Type) *ir.Var {
	return &ir.Var{Name: name, T: t}
}

// IterVar returns an iteration variable over [min, min+extent), bound
// to a variable of the default index type.
func IterVar(name string, min, extent int64) *ir.IterVar {
	return &ir.IterVar{
		Var: Var(name, ir.Int32),
		Dom: ir.Range{
			Min:    IntImm(ir.Int32, min),
			Extent: IntImm(ir.Int32, extent),
		},
	}
}
