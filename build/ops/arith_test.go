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

package ops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/tensorir/build/ir"
	"github.com/gx-org/tensorir/build/ir/irhelper"
	"github.com/gx-org/tensorir/build/ops"
)

type binaryBuilder func(a, b ir.Expr) (ir.Expr, error)

type binaryTest struct {
	desc string
	a, b ir.Expr
	want ir.Expr
}

func runBinaryTests(t *testing.T, name string, build binaryBuilder, tests []binaryTest) {
	t.Helper()
	for _, test := range tests {
		got, err := build(test.a, test.b)
		if err != nil {
			t.Errorf("%s: %s: %v", name, test.desc, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: %s: incorrect expression:\n%s", name, test.desc, diff)
		}
	}
}

func TestAdd(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	f := irhelper.Var("f", ir.Float32)
	runBinaryTests(t, "Add", ops.Add, []binaryTest{
		{
			desc: "constant fold",
			a:    irhelper.IntImm(ir.Int32, 2),
			b:    irhelper.IntImm(ir.Int32, 3),
			want: irhelper.IntImm(ir.Int32, 5),
		},
		{
			desc: "float constant fold",
			a:    irhelper.FloatImm(ir.Float32, 1.5),
			b:    irhelper.FloatImm(ir.Float32, 2),
			want: irhelper.FloatImm(ir.Float32, 3.5),
		},
		{
			desc: "zero on the left",
			a:    irhelper.IntImm(ir.Int32, 0),
			b:    x,
			want: x,
		},
		{
			desc: "zero on the right",
			a:    x,
			b:    irhelper.IntImm(ir.Int32, 0),
			want: x,
		},
		{
			desc: "float zero on the left",
			a:    irhelper.FloatImm(ir.Float32, 0),
			b:    f,
			want: f,
		},
		{
			desc: "no fold",
			a:    x,
			b:    irhelper.Var("y", ir.Int32),
			want: &ir.Add{X: x, Y: irhelper.Var("y", ir.Int32)},
		},
		{
			desc: "zero of a narrow type is promoted then dropped",
			a:    irhelper.IntImm(ir.Int32, 0),
			b:    irhelper.Var("y", ir.Int64),
			want: irhelper.Var("y", ir.Int64),
		},
	})
}

func TestAddBroadcastsScalar(t *testing.T) {
	s := irhelper.Var("s", ir.Float32)
	v := irhelper.Var("v", ir.Float(32, 4))
	got, err := ops.Add(s, v)
	if err != nil {
		t.Fatal(err)
	}
	want := &ir.Add{
		X: &ir.Broadcast{Value: s, Lanes: 4},
		Y: v,
	}
	if diff := cmp.Diff(ir.Expr(want), got); diff != "" {
		t.Errorf("incorrect expression:\n%s", diff)
	}
	if gotT := got.TypeOf(); gotT != ir.Float(32, 4) {
		t.Errorf("expression type %s but want %s", gotT, ir.Float(32, 4))
	}
}

func TestNeg(t *testing.T) {
	tests := []struct {
		desc string
		a    ir.Expr
		want ir.Expr
	}{
		{
			desc: "int immediate",
			a:    irhelper.IntImm(ir.Int32, 5),
			want: irhelper.IntImm(ir.Int32, -5),
		},
		{
			desc: "float immediate",
			a:    irhelper.FloatImm(ir.Float64, 2.5),
			want: irhelper.FloatImm(ir.Float64, -2.5),
		},
		{
			desc: "variable is subtracted from zero",
			a:    irhelper.Var("x", ir.Int32),
			want: &ir.Sub{
				X: irhelper.IntImm(ir.Int32, 0),
				Y: irhelper.Var("x", ir.Int32),
			},
		},
	}
	for _, test := range tests {
		got, err := ops.Neg(test.a)
		if err != nil {
			t.Errorf("%s: %v", test.desc, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: incorrect expression:\n%s", test.desc, diff)
		}
	}
}

func TestSub(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	zero := irhelper.IntImm(ir.Int32, 0)
	runBinaryTests(t, "Sub", ops.Sub, []binaryTest{
		{
			desc: "constant fold",
			a:    irhelper.IntImm(ir.Int32, 5),
			b:    irhelper.IntImm(ir.Int32, 3),
			want: irhelper.IntImm(ir.Int32, 2),
		},
		{
			desc: "float constant fold",
			a:    irhelper.FloatImm(ir.Float64, 1),
			b:    irhelper.FloatImm(ir.Float64, 0.5),
			want: irhelper.FloatImm(ir.Float64, 0.5),
		},
		{
			desc: "zero on the right",
			a:    x,
			b:    zero,
			want: x,
		},
		{
			// There is no 0-x rewrite towards a negation: the
			// negation builder lowers to this very subtraction.
			desc: "zero on the left builds the node",
			a:    zero,
			b:    x,
			want: &ir.Sub{X: zero, Y: x},
		},
	})
}

func TestMul(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	f := irhelper.Var("f", ir.Float32)
	runBinaryTests(t, "Mul", ops.Mul, []binaryTest{
		{
			desc: "constant fold",
			a:    irhelper.IntImm(ir.Int32, 6),
			b:    irhelper.IntImm(ir.Int32, 7),
			want: irhelper.IntImm(ir.Int32, 42),
		},
		{
			desc: "one on the left",
			a:    irhelper.IntImm(ir.Int32, 1),
			b:    x,
			want: x,
		},
		{
			desc: "one on the right",
			a:    x,
			b:    irhelper.IntImm(ir.Int32, 1),
			want: x,
		},
		{
			desc: "zero on the left",
			a:    irhelper.IntImm(ir.Int32, 0),
			b:    x,
			want: irhelper.IntImm(ir.Int32, 0),
		},
		{
			desc: "zero on the right",
			a:    x,
			b:    irhelper.IntImm(ir.Int32, 0),
			want: irhelper.IntImm(ir.Int32, 0),
		},
		{
			desc: "float one on the right",
			a:    f,
			b:    irhelper.FloatImm(ir.Float32, 1),
			want: f,
		},
		{
			desc: "float zero on the left",
			a:    irhelper.FloatImm(ir.Float32, 0),
			b:    f,
			want: irhelper.FloatImm(ir.Float32, 0),
		},
		{
			desc: "int zero immediate against a float operand folds as float",
			a:    irhelper.IntImm(ir.Int32, 0),
			b:    f,
			want: irhelper.FloatImm(ir.Float32, 0),
		},
		{
			desc: "no fold",
			a:    x,
			b:    irhelper.Var("y", ir.Int32),
			want: &ir.Mul{X: x, Y: irhelper.Var("y", ir.Int32)},
		},
	})
}

func TestDiv(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	runBinaryTests(t, "Div", ops.Div, []binaryTest{
		{
			desc: "positive quotient folds",
			a:    irhelper.IntImm(ir.Int32, 7),
			b:    irhelper.IntImm(ir.Int32, 2),
			want: irhelper.IntImm(ir.Int32, 3),
		},
		{
			// Signed division semantics differ across targets:
			// only the non-negative quadrant folds.
			desc: "negative numerator builds the node",
			a:    irhelper.IntImm(ir.Int32, -7),
			b:    irhelper.IntImm(ir.Int32, 2),
			want: &ir.Div{
				X: irhelper.IntImm(ir.Int32, -7),
				Y: irhelper.IntImm(ir.Int32, 2),
			},
		},
		{
			desc: "zero numerator",
			a:    irhelper.IntImm(ir.Int32, 0),
			b:    x,
			want: irhelper.IntImm(ir.Int32, 0),
		},
		{
			desc: "one divisor",
			a:    x,
			b:    irhelper.IntImm(ir.Int32, 1),
			want: x,
		},
		{
			desc: "float fold",
			a:    irhelper.FloatImm(ir.Float32, 1),
			b:    irhelper.FloatImm(ir.Float32, 4),
			want: irhelper.FloatImm(ir.Float32, 0.25),
		},
		{
			desc: "float one divisor",
			a:    irhelper.Var("f", ir.Float32),
			b:    irhelper.FloatImm(ir.Float32, 1),
			want: irhelper.Var("f", ir.Float32),
		},
	})
}

func TestDivByZero(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	if _, err := ops.Div(x, irhelper.IntImm(ir.Int32, 0)); err == nil {
		t.Errorf("Div by a literal zero returned no error")
	}
	f := irhelper.Var("f", ir.Float32)
	if _, err := ops.Div(f, irhelper.FloatImm(ir.Float32, 0)); err == nil {
		t.Errorf("Div by a literal float zero returned no error")
	}
}

func TestMod(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	runBinaryTests(t, "Mod", ops.Mod, []binaryTest{
		{
			desc: "positive remainder folds",
			a:    irhelper.IntImm(ir.Int32, 10),
			b:    irhelper.IntImm(ir.Int32, 3),
			want: irhelper.IntImm(ir.Int32, 1),
		},
		{
			desc: "negative numerator builds the node",
			a:    irhelper.IntImm(ir.Int32, -10),
			b:    irhelper.IntImm(ir.Int32, 3),
			want: &ir.Mod{
				X: irhelper.IntImm(ir.Int32, -10),
				Y: irhelper.IntImm(ir.Int32, 3),
			},
		},
		{
			desc: "one divisor folds to zero",
			a:    x,
			b:    irhelper.IntImm(ir.Int32, 1),
			want: irhelper.IntImm(ir.Int32, 0),
		},
		{
			desc: "zero numerator",
			a:    irhelper.IntImm(ir.Int32, 0),
			b:    x,
			want: irhelper.IntImm(ir.Int32, 0),
		},
		{
			desc: "mixed index widths fold to the wider type",
			a:    irhelper.IntImm(ir.Int32, 10),
			b:    irhelper.IntImm(ir.Int64, 3),
			want: irhelper.IntImm(ir.Int64, 1),
		},
		{
			// Only index-typed operands take the fold fast path.
			desc: "narrow int operands build the node",
			a:    irhelper.IntImm(ir.Int(8, 1), 10),
			b:    irhelper.IntImm(ir.Int(8, 1), 1),
			want: &ir.Mod{
				X: irhelper.IntImm(ir.Int(8, 1), 10),
				Y: irhelper.IntImm(ir.Int(8, 1), 1),
			},
		},
	})
}

func TestModByZero(t *testing.T) {
	if _, err := ops.Mod(irhelper.IntImm(ir.Int32, 10), irhelper.IntImm(ir.Int32, 0)); err == nil {
		t.Errorf("Mod by a literal zero returned no error")
	}
}

func TestMinMax(t *testing.T) {
	x := irhelper.Var("x", ir.Int32)
	y := irhelper.Var("y", ir.Int32)
	runBinaryTests(t, "Min", ops.Min, []binaryTest{
		{
			desc: "int fold",
			a:    irhelper.IntImm(ir.Int32, 3),
			b:    irhelper.IntImm(ir.Int32, 7),
			want: irhelper.IntImm(ir.Int32, 3),
		},
		{
			desc: "float fold",
			a:    irhelper.FloatImm(ir.Float32, 2.5),
			b:    irhelper.FloatImm(ir.Float32, -1),
			want: irhelper.FloatImm(ir.Float32, -1),
		},
		{
			desc: "no fold",
			a:    x,
			b:    y,
			want: &ir.Min{X: x, Y: y},
		},
	})
	runBinaryTests(t, "Max", ops.Max, []binaryTest{
		{
			desc: "int fold",
			a:    irhelper.IntImm(ir.Int32, 3),
			b:    irhelper.IntImm(ir.Int32, 7),
			want: irhelper.IntImm(ir.Int32, 7),
		},
		{
			desc: "float fold",
			a:    irhelper.FloatImm(ir.Float32, 2.5),
			b:    irhelper.FloatImm(ir.Float32, -1),
			want: irhelper.FloatImm(ir.Float32, 2.5),
		},
		{
			desc: "no fold",
			a:    x,
			b:    y,
			want: &ir.Max{X: x, Y: y},
		},
	})
}

func TestBinaryTypeClosure(t *testing.T) {
	// The type of a binary expression is the unified operand type.
	builders := map[string]binaryBuilder{
		"Add": ops.Add,
		"Sub": ops.Sub,
		"Mul": ops.Mul,
		"Div": ops.Div,
		"Min": ops.Min,
		"Max": ops.Max,
	}
	a := irhelper.Var("a", ir.Int32)
	b := irhelper.Var("b", ir.Int64)
	for name, build := range builders {
		got, err := build(a, b)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if gotT := got.TypeOf(); gotT != ir.Int64 {
			t.Errorf("%s(int32, int64) has type %s but want %s", name, gotT, ir.Int64)
		}
	}
}
