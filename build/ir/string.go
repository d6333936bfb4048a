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
	"strconv"
	"strings"
)

func (x *IntImm) String() string {
	return strconv.FormatInt(x.Value, 10)
}

func (x *UIntImm) String() string {
	if x.T.IsBool() {
		return strconv.FormatBool(x.Value != 0)
	}
	return strconv.FormatUint(x.Value, 10)
}

func (x *FloatImm) String() string {
	return strconv.FormatFloat(x.Value, 'g', -1, 64) + "f"
}

func (x *Var) String() string {
	return x.Name
}

func (x *Cast) String() string {
	return fmt.Sprintf("%s(%s)", x.T, x.Value)
}

func (x *Broadcast) String() string {
	return fmt.Sprintf("x%d(%s)", x.Lanes, x.Value)
}

func binaryString(op string, x, y Expr) string {
	return fmt.Sprintf("(%s %s %s)", x, op, y)
}

func (x *Add) String() string { return binaryString("+", x.X, x.Y) }
func (x *Sub) String() string { return binaryString("-", x.X, x.Y) }
func (x *Mul) String() string { return binaryString("*", x.X, x.Y) }
func (x *Div) String() string { return binaryString("/", x.X, x.Y) }
func (x *Mod) String() string { return binaryString("%", x.X, x.Y) }

func (x *Min) String() string { return fmt.Sprintf("min(%s, %s)", x.X, x.Y) }
func (x *Max) String() string { return fmt.Sprintf("max(%s, %s)", x.X, x.Y) }

func (x *EQ) String() string { return binaryString("==", x.X, x.Y) }
func (x *NE) String() string { return binaryString("!=", x.X, x.Y) }
func (x *LT) String() string { return binaryString("<", x.X, x.Y) }
func (x *LE) String() string { return binaryString("<=", x.X, x.Y) }
func (x *GT) String() string { return binaryString(">", x.X, x.Y) }
func (x *GE) String() string { return binaryString(">=", x.X, x.Y) }

func (x *And) String() string { return binaryString("&&", x.X, x.Y) }
func (x *Or) String() string  { return binaryString("||", x.X, x.Y) }
func (x *Not) String() string { return fmt.Sprintf("!%s", x.X) }

func (x *Select) String() string {
	return fmt.Sprintf("select(%s, %s, %s)", x.Cond, x.TrueValue, x.FalseValue)
}

func (x *Call) String() string {
	args := make([]string, len(x.Args))
	for i, arg := range x.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", x.Name, strings.Join(args, ", "))
}

func (x *Range) String() string {
	return fmt.Sprintf("range(min=%s, ext=%s)", x.Min, x.Extent)
}

func (x *IterVar) String() string {
	return fmt.Sprintf("iter_var(%s, %s)", x.Var, x.Dom.String())
}

func (c *CommReducer) String() string {
	results := make([]string, len(c.Result))
	for i, result := range c.Result {
		results[i] = result.String()
	}
	return fmt.Sprintf("comm_reducer(%s)", strings.Join(results, ", "))
}

func (x *Reduce) String() string {
	axes := make([]string, len(x.Axis))
	for i, axis := range x.Axis {
		axes[i] = axis.String()
	}
	srcs := make([]string, len(x.Source))
	for i, src := range x.Source {
		srcs[i] = src.String()
	}
	return fmt.Sprintf("reduce(combiner=%s, source=%s, axis=[%s], where=%s, value_index=%d)",
		x.Combiner, strings.Join(srcs, ", "), strings.Join(axes, ", "), x.Condition, x.ValueIndex)
}
