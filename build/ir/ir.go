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

// Package ir is the tensor intermediate representation (IR) tree.
//
// The tree is a closed set of expression variants. Expressions are
// immutable once built and shared by pointer: a node never changes after
// construction, so handles can alias freely across goroutines.
//
// Expressions are built by the smart constructors in
// [github.com/gx-org/tensorir/build/ops], which unify operand types and
// fold constants before allocating a node. Constructing nodes directly
// with composite literals is supported but bypasses that simplification.
package ir

import "github.com/pkg/errors"

// ----------------------------------------------------------------------------
// Types of node in the tree.
type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents using arbitrary structures of this package as nodes.
		node()
	}

	// Expr is an expression computing a value of a given type.
	Expr interface {
		Node

		// TypeOf returns the type of the value computed by the expression.
		TypeOf() Type

		// String representation of the expression.
		String() string
	}
)

// ----------------------------------------------------------------------------
// Leaf expressions.
type (
	// IntImm is a signed integer immediate.
	IntImm struct {
		T     Type
		Value int64
	}

	// UIntImm is an unsigned integer immediate.
	// Boolean constants are UIntImm of type Bool(1).
	UIntImm struct {
		T     Type
		Value uint64
	}

	// FloatImm is a floating point immediate.
	FloatImm struct {
		T     Type
		Value float64
	}

	// Var is a named variable.
	Var struct {
		Name string
		T    Type
	}
)

var (
	_ Expr = (*IntImm)(nil)
	_ Expr = (*UIntImm)(nil)
	_ Expr = (*FloatImm)(nil)
	_ Expr = (*Var)(nil)
)

func (*IntImm) node()   {}
func (*UIntImm) node()  {}
func (*FloatImm) node() {}
func (*Var) node()      {}

// TypeOf returns the type of the immediate.
func (x *IntImm) TypeOf() Type { return x.T }

// TypeOf returns the type of the immediate.
func (x *UIntImm) TypeOf() Type { return x.T }

// TypeOf returns the type of the immediate.
func (x *FloatImm) TypeOf() Type { return x.T }

// TypeOf returns the type of the variable.
func (x *Var) TypeOf() Type { return x.T }

// ----------------------------------------------------------------------------
// Type conversions.
type (
	// Cast converts the value of an expression to a type.
	Cast struct {
		T     Type
		Value Expr
	}

	// Broadcast replicates a scalar over vector lanes.
	Broadcast struct {
		Value Expr
		Lanes int
	}
)

var (
	_ Expr = (*Cast)(nil)
	_ Expr = (*Broadcast)(nil)
)

func (*Cast) node()      {}
func (*Broadcast) node() {}

// TypeOf returns the target type of the cast.
func (x *Cast) TypeOf() Type { return x.T }

// TypeOf returns the type of the value replicated over the lanes.
func (x *Broadcast) TypeOf() Type {
	return x.Value.TypeOf().LanesOf(x.Lanes)
}

// ----------------------------------------------------------------------------
// Arithmetic expressions. The operands of a binary expression always have
// the same type, which is also the type of the expression.
type (
	// Add is the sum of two operands.
	Add struct{ X, Y Expr }

	// Sub is the difference of two operands.
	Sub struct{ X, Y Expr }

	// Mul is the product of two operands.
	Mul struct{ X, Y Expr }

	// Div is the quotient of two operands.
	Div struct{ X, Y Expr }

	// Mod is the remainder of the division of two operands.
	Mod struct{ X, Y Expr }

	// Min is the smallest of two operands.
	Min struct{ X, Y Expr }

	// Max is the largest of two operands.
	Max struct{ X, Y Expr }
)

var (
	_ Expr = (*Add)(nil)
	_ Expr = (*Sub)(nil)
	_ Expr = (*Mul)(nil)
	_ Expr = (*Div)(nil)
	_ Expr = (*Mod)(nil)
	_ Expr = (*Min)(nil)
	_ Expr = (*Max)(nil)
)

func (*Add) node() {}
func (*Sub) node() {}
func (*Mul) node() {}
func (*Div) node() {}
func (*Mod) node() {}
func (*Min) node() {}
func (*Max) node() {}

// TypeOf returns the type of the operands.
func (x *Add) TypeOf() Type { return x.X.TypeOf() }

// TypeOf returns the type of the operands.
func (x *Sub) TypeOf() Type { return x.X.TypeOf() }

// TypeOf returns the type of the operands.
func (x *Mul) TypeOf() Type { return x.X.TypeOf() }

// TypeOf returns the type of the operands.
func (x *Div) TypeOf() Type { return x.X.TypeOf() }

// TypeOf returns the type of the operands.
func (x *Mod) TypeOf() Type { return x.X.TypeOf() }

// TypeOf returns the type of the operands.
func (x *Min) TypeOf() Type { return x.X.TypeOf() }

// TypeOf returns the type of the operands.
func (x *Max) TypeOf() Type { return x.X.TypeOf() }

// ----------------------------------------------------------------------------
// Comparisons. A comparison is boolean over the lane count of its operands.
type (
	// EQ compares two operands for equality.
	EQ struct{ X, Y Expr }

	// NE compares two operands for inequality.
	NE struct{ X, Y Expr }

	// LT reports whether the first operand is less than the second.
	LT struct{ X, Y Expr }

	// LE reports whether the first operand is less than or equal to the second.
	LE struct{ X, Y Expr }

	// GT reports whether the first operand is greater than the second.
	GT struct{ X, Y Expr }

	// GE reports whether the first operand is greater than or equal to the second.
	GE struct{ X, Y Expr }
)

var (
	_ Expr = (*EQ)(nil)
	_ Expr = (*NE)(nil)
	_ Expr = (*LT)(nil)
	_ Expr = (*LE)(nil)
	_ Expr = (*GT)(nil)
	_ Expr = (*GE)(nil)
)

func (*EQ) node() {}
func (*NE) node() {}
func (*LT) node() {}
func (*LE) node() {}
func (*GT) node() {}
func (*GE) node() {}

func compareType(x Expr) Type {
	return Bool(x.TypeOf().Lanes)
}

// TypeOf returns the boolean type of the comparison.
func (x *EQ) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the comparison.
func (x *NE) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the comparison.
func (x *LT) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the comparison.
func (x *LE) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the comparison.
func (x *GT) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the comparison.
func (x *GE) TypeOf() Type { return compareType(x.X) }

// ----------------------------------------------------------------------------
// Boolean expressions.
type (
	// And is the conjunction of two operands.
	And struct{ X, Y Expr }

	// Or is the disjunction of two operands.
	Or struct{ X, Y Expr }

	// Not is the negation of its operand.
	Not struct{ X Expr }
)

var (
	_ Expr = (*And)(nil)
	_ Expr = (*Or)(nil)
	_ Expr = (*Not)(nil)
)

func (*And) node() {}
func (*Or) node()  {}
func (*Not) node() {}

// TypeOf returns the boolean type of the conjunction.
func (x *And) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the disjunction.
func (x *Or) TypeOf() Type { return compareType(x.X) }

// TypeOf returns the boolean type of the negation.
func (x *Not) TypeOf() Type { return compareType(x.X) }

// ----------------------------------------------------------------------------
// Select.

// Select evaluates to TrueValue when Cond holds and to FalseValue
// otherwise. Both branches have the same type and, unlike a conditional
// intrinsic, both may be evaluated.
type Select struct {
	Cond       Expr
	TrueValue  Expr
	FalseValue Expr
}

var _ Expr = (*Select)(nil)

func (*Select) node() {}

// TypeOf returns the type of the branches.
func (x *Select) TypeOf() Type { return x.TrueValue.TypeOf() }

// ----------------------------------------------------------------------------
// Calls.

// CallKind describes how a call target is resolved and whether the call
// has side effects.
type CallKind uint8

// Kinds of call.
const (
	// Extern is a call to an external function.
	Extern CallKind = iota
	// PureExtern is a call to an external function free of side effects.
	PureExtern
	// Intrinsic is a call lowered by the compiler.
	Intrinsic
	// PureIntrinsic is a call lowered by the compiler and free of side effects.
	PureIntrinsic
)

// String returns a string representation of the call kind.
func (k CallKind) String() string {
	switch k {
	case Extern:
		return "extern"
	case PureExtern:
		return "pure_extern"
	case Intrinsic:
		return "intrinsic"
	case PureIntrinsic:
		return "pure_intrinsic"
	}
	return "invalid"
}

// Call applies a named function or intrinsic to arguments.
// Operations with no dedicated variant in the tree are represented as
// pure intrinsic calls.
type Call struct {
	T        Type
	Name     string
	Args     []Expr
	CallKind CallKind
}

var _ Expr = (*Call)(nil)

func (*Call) node() {}

// TypeOf returns the result type of the call.
func (x *Call) TypeOf() Type { return x.T }

// Pure reports whether the call is free of side effects.
func (x *Call) Pure() bool {
	return x.CallKind == PureExtern || x.CallKind == PureIntrinsic
}

// ----------------------------------------------------------------------------
// Reductions.
type (
	// Range of an iteration, from Min to Min+Extent exclusive.
	Range struct {
		Min    Expr
		Extent Expr
	}

	// IterVar is a variable bound to an iteration range.
	IterVar struct {
		Var *Var
		Dom Range
	}

	// CommReducer packages a commutative and associative binary
	// operation with its identity element. Lhs and Rhs are the bound
	// argument variables of Result. The slices all have the same length:
	// a reducer may combine several values at once.
	CommReducer struct {
		Lhs             []*Var
		Rhs             []*Var
		Result          []Expr
		IdentityElement []Expr
	}

	// Reduce combines the values of Source over the iteration domain
	// Axis with a commutative reducer. Condition guards which iterations
	// contribute. ValueIndex selects which result of the combiner this
	// expression evaluates to.
	Reduce struct {
		Combiner   *CommReducer
		Source     []Expr
		Axis       []*IterVar
		Condition  Expr
		ValueIndex int
	}
)

var (
	_ Node = (*IterVar)(nil)
	_ Node = (*CommReducer)(nil)
	_ Expr = (*Reduce)(nil)
)

func (*IterVar) node()     {}
func (*CommReducer) node() {}
func (*Reduce) node()      {}

// Arity returns the number of values the reducer combines at once.
func (c *CommReducer) Arity() int {
	return len(c.Result)
}

// Apply returns the results of the combiner with its bound variables
// replaced by the lhs and rhs arguments.
func (c *CommReducer) Apply(lhs, rhs []Expr) ([]Expr, error) {
	if len(lhs) != len(c.Lhs) || len(rhs) != len(c.Rhs) {
		return nil, errors.Errorf("cannot combine %d and %d values with a reducer of arity %d", len(lhs), len(rhs), c.Arity())
	}
	sub := make(map[*Var]Expr, len(lhs)+len(rhs))
	for i, v := range c.Lhs {
		sub[v] = lhs[i]
	}
	for i, v := range c.Rhs {
		sub[v] = rhs[i]
	}
	results := make([]Expr, len(c.Result))
	for i, result := range c.Result {
		results[i] = substitute(result, sub)
	}
	return results, nil
}

// substitute rewrites an expression, replacing the bound variables
// listed in sub. Variables are identified by pointer: only the exact
// bound instances are replaced.
func substitute(e Expr, sub map[*Var]Expr) Expr {
	switch eT := e.(type) {
	case *Var:
		if repl, ok := sub[eT]; ok {
			return repl
		}
	case *Cast:
		return &Cast{T: eT.T, Value: substitute(eT.Value, sub)}
	case *Broadcast:
		return &Broadcast{Value: substitute(eT.Value, sub), Lanes: eT.Lanes}
	case *Add:
		return &Add{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Sub:
		return &Sub{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Mul:
		return &Mul{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Div:
		return &Div{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Mod:
		return &Mod{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Min:
		return &Min{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Max:
		return &Max{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *EQ:
		return &EQ{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *NE:
		return &NE{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *LT:
		return &LT{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *LE:
		return &LE{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *GT:
		return &GT{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *GE:
		return &GE{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *And:
		return &And{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Or:
		return &Or{X: substitute(eT.X, sub), Y: substitute(eT.Y, sub)}
	case *Not:
		return &Not{X: substitute(eT.X, sub)}
	case *Select:
		return &Select{
			Cond:       substitute(eT.Cond, sub),
			TrueValue:  substitute(eT.TrueValue, sub),
			FalseValue: substitute(eT.FalseValue, sub),
		}
	case *Call:
		args := make([]Expr, len(eT.Args))
		for i, arg := range eT.Args {
			args[i] = substitute(arg, sub)
		}
		return &Call{T: eT.T, Name: eT.Name, Args: args, CallKind: eT.CallKind}
	}
	return e
}

// TypeOf returns the type of the source the reduction evaluates to.
func (x *Reduce) TypeOf() Type {
	return x.Source[x.ValueIndex].TypeOf()
}
