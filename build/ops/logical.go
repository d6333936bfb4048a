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

// And returns the conjunction of a and b, short-circuiting on boolean
// constants.
func And(a, b ir.Expr) (ir.Expr, error) {
	if a.TypeOf().IsBool() && b.TypeOf().IsBool() {
		pa, _ := ir.ConstUint(a)
		pb, _ := ir.ConstUint(b)
		switch {
		case pa != nil && pa.Value != 0:
			return b, nil
		case pa != nil:
			return a, nil
		case pb != nil && pb.Value != 0:
			return a, nil
		case pb != nil:
			return b, nil
		}
	}
	return &ir.And{X: a, Y: b}, nil
}

// Or returns the disjunction of a and b, short-circuiting on boolean
// constants.
func Or(a, b ir.Expr) (ir.Expr, error) {
	if a.TypeOf().IsBool() && b.TypeOf().IsBool() {
		pa, _ := ir.ConstUint(a)
		pb, _ := ir.ConstUint(b)
		switch {
		case pa != nil && pa.Value != 0:
			return a, nil
		case pa != nil:
			return b, nil
		case pb != nil && pb.Value != 0:
			return b, nil
		case pb != nil:
			return a, nil
		}
	}
	return &ir.Or{X: a, Y: b}, nil
}

// Not returns the negation of a.
func Not(a ir.Expr) (ir.Expr, error) {
	if pa, ok := ir.ConstUint(a); ok {
		return boolImm(pa.Value == 0), nil
	}
	return &ir.Not{X: a}, nil
}
