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

package wire

import (
	"github.com/planetscale/vtprotobuf/protohelpers"
	"google.golang.org/protobuf/encoding/protowire"
)

// SizeEnums returns the exact number of bytes [AppendEnums] writes for a
// repeated enum field with the given number and values.
//
// An empty slice contributes no bytes at all. A single value is counted as
// one unpacked record: the field tag with [VarintType] followed by the value
// as a varint. Two or more values are counted as one packed record: the
// field tag with [BytesType], a varint payload length, and each value as a
// varint.
func SizeEnums[E ~int32](num Number, vals []E) int {
	switch len(vals) {
	case 0:
		return 0
	case 1:
		return protowire.SizeTag(num) + protohelpers.SizeOfVarint(uint64(vals[0]))
	default:
		n := sizeEnumsPacked(vals)
		return protowire.SizeTag(num) + protohelpers.SizeOfVarint(uint64(n)) + n
	}
}

// sizeEnumsPacked counts the payload bytes of a packed record holding vals.
//
// Negative values sign-extend to 64 bits before varint encoding, same as
// every int32-flavored Protobuf field, so each costs ten bytes.
func sizeEnumsPacked[E ~int32](vals []E) int {
	var n int
	for _, v := range vals {
		n += protohelpers.SizeOfVarint(uint64(v))
	}
	return n
}
