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
	"google.golang.org/protobuf/encoding/protowire"
)

// AppendEnums appends a repeated enum field to b and returns the extended
// buffer.
//
// The representation is chosen by cardinality, mirroring [SizeEnums] byte
// for byte: nothing for an empty slice, a single unpacked varint record for
// one value, and a single packed record for two or more. Values are written
// in slice order. The output is deterministic: equal inputs always produce
// equal bytes.
func AppendEnums[E ~int32](b []byte, num Number, vals []E) []byte {
	switch len(vals) {
	case 0:
		return b
	case 1:
		b = protowire.AppendTag(b, num, VarintType)
		return protowire.AppendVarint(b, uint64(vals[0]))
	default:
		b = protowire.AppendTag(b, num, BytesType)
		b = protowire.AppendVarint(b, uint64(sizeEnumsPacked(vals)))
		for _, v := range vals {
			b = protowire.AppendVarint(b, uint64(v))
		}
		return b
	}
}
