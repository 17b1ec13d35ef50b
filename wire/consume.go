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

// ConsumeVarint decodes a base-128 varint in b starting at off. It returns
// the value and the offset of the first byte past it.
func ConsumeVarint(b []byte, off int) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b[off:])
	if n < 0 {
		return 0, 0, errParse(n, off)
	}
	return v, off + n, nil
}

// ConsumeInt32 decodes a varint in b starting at off and truncates it to 32
// bits, the interpretation Protobuf gives int32 and enum fields.
func ConsumeInt32(b []byte, off int) (int32, int, error) {
	v, next, err := ConsumeVarint(b, off)
	if err != nil {
		return 0, 0, err
	}
	return int32(v), next, nil
}

// ConsumeLen decodes the length prefix of a length-delimited record starting
// at off. It returns the payload length and the offset of the payload.
//
// A length that runs past the end of b is reported as a truncation error at
// off, so callers can trust off+len to be in bounds.
func ConsumeLen(b []byte, off int) (int, int, error) {
	v, next, err := ConsumeVarint(b, off)
	if err != nil {
		return 0, 0, err
	}
	if v > uint64(len(b)-next) {
		return 0, 0, &DecodeError{code: errCodeTruncated, offset: off}
	}
	return int(v), next, nil
}
