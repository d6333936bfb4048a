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

package fmterr_test

import (
	"strings"
	"testing"

	"github.com/gx-org/tensorir/build/fmterr"
	"github.com/gx-org/tensorir/build/ir"
)

func TestPrefixWith(t *testing.T) {
	prefix := fmterr.PrefixWith("%s: ", "mul")
	err := prefix(fmterr.TypeMismatch(ir.Int32, ir.Float32))
	want := "mul: cannot match type int32 vs float32"
	if got := err.Error(); got != want {
		t.Errorf("error %q but want %q", got, want)
	}
}

func TestErrors(t *testing.T) {
	errs := &fmterr.Errors{}
	if !errs.Empty() {
		t.Errorf("Empty() = false on a new set")
	}
	if errs.ErrorOrNil() != nil {
		t.Errorf("ErrorOrNil() != nil on a new set")
	}
	errs.Append(nil)
	if !errs.Empty() {
		t.Errorf("appending nil accumulated an error")
	}
	errs.Append(fmterr.DivideByZero("mod"))
	errs.Appendf("operand %d is not defined", 1)
	err := errs.ErrorOrNil()
	if err == nil {
		t.Fatal("ErrorOrNil() = nil after appending errors")
	}
	msg := err.Error()
	for _, want := range []string{"divide by zero in mod", "operand 1 is not defined"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestUnsupportedType(t *testing.T) {
	err := fmterr.UnsupportedType("pow", ir.Int(32, 4))
	want := "type int32x4 not supported by pow"
	if got := err.Error(); got != want {
		t.Errorf("error %q but want %q", got, want)
	}
}
