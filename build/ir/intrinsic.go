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
	"slices"

	"golang.org/x/exp/maps"
)

// Names of the intrinsics emitted by the expression builders for
// operations with no dedicated variant in the tree.
const (
	// IntrinReinterpret reinterprets the bits of a value as another type.
	IntrinReinterpret = "reinterpret"
	// IntrinShiftLeft shifts an integer left.
	IntrinShiftLeft = "shift_left"
	// IntrinShiftRight shifts an integer right.
	IntrinShiftRight = "shift_right"
	// IntrinBitwiseAnd is the bitwise conjunction of two integers.
	IntrinBitwiseAnd = "bitwise_and"
	// IntrinBitwiseOr is the bitwise disjunction of two integers.
	IntrinBitwiseOr = "bitwise_or"
	// IntrinBitwiseXor is the bitwise exclusive disjunction of two integers.
	IntrinBitwiseXor = "bitwise_xor"
	// IntrinBitwiseNot is the bitwise complement of an integer.
	IntrinBitwiseNot = "bitwise_not"
	// IntrinLikely marks a condition as probably true.
	IntrinLikely = "likely"
	// IntrinIfThenElse selects one of two values without evaluating the other.
	IntrinIfThenElse = "tvm_if_then_else"
	// IntrinPow raises a float to a power.
	IntrinPow = "pow"
	// IntrinFmod is the floating point remainder.
	IntrinFmod = "fmod"
	// IntrinFabs is the floating point absolute value.
	IntrinFabs = "fabs"
	// IntrinFloor rounds a float towards negative infinity.
	IntrinFloor = "floor"
	// IntrinCeil rounds a float towards positive infinity.
	IntrinCeil = "ceil"
	// IntrinRound rounds a float to the nearest integer, ties to even.
	IntrinRound = "round"
	// IntrinTrunc rounds a float towards zero.
	IntrinTrunc = "trunc"
)

var intrinsics = map[string]CallKind{
	IntrinReinterpret: PureIntrinsic,
	IntrinShiftLeft:   PureIntrinsic,
	IntrinShiftRight:  PureIntrinsic,
	IntrinBitwiseAnd:  PureIntrinsic,
	IntrinBitwiseOr:   PureIntrinsic,
	IntrinBitwiseXor:  PureIntrinsic,
	IntrinBitwiseNot:  PureIntrinsic,
	IntrinLikely:      PureIntrinsic,
	IntrinIfThenElse:  PureIntrinsic,
	IntrinPow:         PureIntrinsic,
	IntrinFmod:        PureIntrinsic,
	IntrinFabs:        PureIntrinsic,
	IntrinFloor:       PureIntrinsic,
	IntrinCeil:        PureIntrinsic,
	IntrinRound:       PureIntrinsic,
	IntrinTrunc:       PureIntrinsic,
}

// IsIntrinsic reports whether name is an intrinsic emitted by the
// expression builders.
func IsIntrinsic(name string) bool {
	_, ok := intrinsics[name]
	return ok
}

// Intrinsics returns the names of all builder intrinsics in sorted order.
func Intrinsics() []string {
	names := maps.Keys(intrinsics)
	slices.Sort(names)
	return names
}
