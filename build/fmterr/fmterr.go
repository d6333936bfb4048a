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

// Package fmterr builds and accumulates expression construction errors.
//
// Construction errors are fatal for the expression being built: the
// builders return them to the caller and never produce a partial node.
package fmterr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/gx-org/tensorir/build/ir"
)

// PrefixWith returns a function to prefix errors with a formatted string.
func PrefixWith(s string, o ...any) func(err error) error {
	return func(err error) error {
		return fmt.Errorf("%s%w", fmt.Sprintf(s, o...), err)
	}
}

// TypeMismatch returns the error for two operand types that cannot be
// brought to a common type.
func TypeMismatch(a, b ir.Type) error {
	return errors.Errorf("cannot match type %s vs %s", a, b)
}

// UnsupportedType returns the error for an operation applied to a type
// it does not accept.
func UnsupportedType(op string, t ir.Type) error {
	return errors.Errorf("type %s not supported by %s", t, op)
}

// DivideByZero returns the error for a division or remainder with a
// literal zero divisor.
func DivideByZero(op string) error {
	return errors.Errorf("divide by zero in %s", op)
}
