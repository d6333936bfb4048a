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

package fmterr

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Errors is a set of errors accumulated while validating the operands of
// an expression under construction.
type Errors struct {
	errs error
}

// Append an error to the set. Appending nil is a no-op.
func (e *Errors) Append(err error) {
	e.errs = multierr.Append(e.errs, err)
}

// Appendf appends a formatted error to the set.
func (e *Errors) Appendf(format string, o ...any) {
	e.Append(errors.Errorf(format, o...))
}

// Empty reports whether no error has been accumulated.
func (e *Errors) Empty() bool {
	return e.errs == nil
}

// ErrorOrNil returns the accumulated errors as a single error, or nil
// when the set is empty.
func (e *Errors) ErrorOrNil() error {
	return e.errs
}
