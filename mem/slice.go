// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mem

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types an arena can hold: fixed-size values with no
// pointer shape. Generated enum types satisfy it through ~int32.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// MakeSlice allocates a zeroed slice of length n and capacity c on the
// arena. A capacity below n is raised to n.
func MakeSlice[T Scalar](a *Arena, n, c int) []T {
	if c < n {
		c = n
	}
	if c == 0 {
		return nil
	}
	var zero T
	raw := a.Alloc(c * int(unsafe.Sizeof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), c)[:n]
}

// Append appends v to s, reallocating s on the arena if it is out of
// capacity.
//
// Growth abandons the old backing block to the arena rather than returning
// it; [Arena.Free] reclaims it with everything else.
func Append[T Scalar](a *Arena, s []T, v T) []T {
	if len(s) < cap(s) {
		return append(s, v)
	}
	grown := MakeSlice[T](a, len(s), max(cap(s)*2, 4))
	copy(grown, s)
	return append(grown, v)
}
