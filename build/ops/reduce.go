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

// validateDomain checks that every iteration variable of a reduction
// domain is bound to a scalar integer range, accumulating all the
// violations.
func validateDomain(op string, rdom []*ir.IterVar) error {
	errs := &fmterr.Errors{}
	prefix := fmterr.PrefixWith("%s: ", op)
	for i, iv := range rdom {
		if iv == nil || iv.Var == nil {
			errs.Appendf("%s: iteration variable %d is not defined", op, i)
			continue
		}
		if iv.Dom.Min == nil || iv.Dom.Extent == nil {
			errs.Appendf("%s: iteration variable %s has no range", op, iv.Var.Name)
			continue
		}
		for _, bound := range []ir.Expr{iv.Dom.Min, iv.Dom.Extent} {
			t := bound.TypeOf()
			if !t.IsInt() || !t.IsScalar() {
				errs.Append(prefix(fmterr.UnsupportedType("range of "+iv.Var.Name, t)))
			}
		}
	}
	return errs.ErrorOrNil()
}

// commReduce builds a reduction of source over rdom with the combiner
// body built by mk over two fresh variables of the source type.
func commReduce(op string, source ir.Expr, rdom []*ir.IterVar, mk func(x, y ir.Expr) ir.Expr, identity ir.Expr) (ir.Expr, error) {
	if err := validateDomain(op, rdom); err != nil {
		return nil, err
	}
	t := source.TypeOf()
	x := &ir.Var{Name: "x", T: t}
	y := &ir.Var{Name: "y", T: t}
	combiner := &ir.CommReducer{
		Lhs:             []*ir.Var{x},
		Rhs:             []*ir.Var{y},
		Result:          []ir.Expr{mk(x, y)},
		IdentityElement: []ir.Expr{identity},
	}
	return &ir.Reduce{
		Combiner:   combiner,
		Source:     []ir.Expr{source},
		Axis:       rdom,
		Condition:  boolImm(true),
		ValueIndex: 0,
	}, nil
}

// Sum reduces source by addition over the domain rdom.
func Sum(source ir.Expr, rdom []*ir.IterVar) (ir.Expr, error) {
	identity, err := ir.MakeZero(source.TypeOf())
	if err != nil {
		return nil, err
	}
	return commReduce("sum", source, rdom,
		func(x, y ir.Expr) ir.Expr { return &ir.Add{X: x, Y: y} }, identity)
}

// Prod reduces source by multiplication over the domain rdom.
func Prod(source ir.Expr, rdom []*ir.IterVar) (ir.Expr, error) {
	identity, err := ir.MakeOne(source.TypeOf())
	if err != nil {
		return nil, err
	}
	return commReduce("prod", source, rdom,
		func(x, y ir.Expr) ir.Expr { return &ir.Mul{X: x, Y: y} }, identity)
}

// MaxOver reduces source to its largest value over the domain rdom.
func MaxOver(source ir.Expr, rdom []*ir.IterVar) (ir.Expr, error) {
	identity, err := source.TypeOf().Min()
	if err != nil {
		return nil, err
	}
	return commReduce("max", source, rdom,
		func(x, y ir.Expr) ir.Expr { return &ir.Max{X: x, Y: y} }, identity)
}

// MinOver reduces source to its smallest value over the domain rdom.
func MinOver(source ir.Expr, rdom []*ir.IterVar) (ir.Expr, error) {
	identity, err := source.TypeOf().Max()
	if err != nil {
		return nil, err
	}
	return commReduce("min", source, rdom,
		func(x, y ir.Expr) ir.Expr { return &ir.Min{X: x, Y: y} }, identity)
}

// FoldReduce collapses a reduction over a domain known to be empty at
// build time to the identity element of its combiner, cast to the type
// of the reduction. Any other reduction is returned unchanged.
func FoldReduce(red *ir.Reduce) ir.Expr {
	if !emptyDomain(red.Axis) {
		return red
	}
	identity := red.Combiner.IdentityElement[red.ValueIndex]
	return simpleCast(red.TypeOf(), identity)
}

// emptyDomain reports whether a domain iterates over nothing: it has no
// axis, or one of its extents is a literal zero.
func emptyDomain(rdom []*ir.IterVar) bool {
	if len(rdom) == 0 {
		return true
	}
	for _, iv := range rdom {
		if ext, ok := ir.ConstInt(iv.Dom.Extent); ok && ext.Value == 0 {
			return true
		}
		if ext, ok := ir.ConstUint(iv.Dom.Extent); ok && ext.Value == 0 {
			return true
		}
	}
	return false
}
