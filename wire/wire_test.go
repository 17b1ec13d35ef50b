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

package wire_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"buf.build/go/lazypb/wire"
)

type level int32

func TestAppendEnums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		num  wire.Number
		vals []level
		want []byte
	}{
		{name: "empty", num: 7, vals: nil, want: []byte{}},
		{name: "empty/non-nil", num: 7, vals: []level{}, want: []byte{}},
		{name: "single", num: 7, vals: []level{1}, want: []byte{0x38, 0x01}},
		{name: "single/zero", num: 7, vals: []level{0}, want: []byte{0x38, 0x00}},
		{name: "packed", num: 7, vals: []level{0, 1, 2}, want: []byte{0x3a, 0x03, 0x00, 0x01, 0x02}},
		{name: "packed/pair", num: 1, vals: []level{2, 2}, want: []byte{0x0a, 0x02, 0x02, 0x02}},
		{
			name: "packed/multibyte",
			num:  7,
			vals: []level{300, 1},
			want: []byte{0x3a, 0x03, 0xac, 0x02, 0x01},
		},
		{
			// Negative enum values sign-extend to ten varint bytes.
			name: "single/negative",
			num:  7,
			vals: []level{-1},
			want: []byte{0x38, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		},
		{
			name: "wide-tag",
			num:  1000,
			vals: []level{1},
			want: []byte{0xc0, 0x3e, 0x01},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wire.AppendEnums(nil, tt.num, tt.vals)
			assert.Equal(t, tt.want, append([]byte{}, got...))
			assert.Len(t, got, wire.SizeEnums(tt.num, tt.vals))

			// Appending must extend, not replace.
			prefix := []byte{0xaa}
			assert.Equal(t, append(prefix, tt.want...), wire.AppendEnums(prefix, tt.num, tt.vals))
		})
	}
}

func TestSizeMatchesAppend(t *testing.T) {
	t.Parallel()

	cases := [][]level{
		nil,
		{0},
		{5},
		{-1},
		{math.MaxInt32, math.MinInt32},
		{0, 1, 2, 3, 4, 5, 6, 7},
		make([]level, 1000),
	}
	for i := range cases[len(cases)-1] {
		cases[len(cases)-1][i] = level(i * 31)
	}

	for _, vals := range cases {
		vals := vals
		t.Run(fmt.Sprintf("n=%d", len(vals)), func(t *testing.T) {
			t.Parallel()
			for _, num := range []wire.Number{1, 7, 16, 2048, 536870911} {
				got := wire.AppendEnums(nil, num, vals)
				assert.Len(t, got, wire.SizeEnums(num, vals), "field %d", num)
			}
		})
	}
}

// TestAppendEnumsRecords re-parses the emitted bytes and checks the record
// structure: one varint record for a single element, exactly one packed
// record otherwise.
func TestAppendEnumsRecords(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		b := wire.AppendEnums(nil, 7, []level{9})

		num, typ, n := protowire.ConsumeTag(b)
		require.Positive(t, n)
		assert.Equal(t, wire.Number(7), num)
		assert.Equal(t, wire.VarintType, typ)

		v, m := protowire.ConsumeVarint(b[n:])
		require.Positive(t, m)
		assert.Equal(t, uint64(9), v)
		assert.Len(t, b, n+m)
	})

	t.Run("packed", func(t *testing.T) {
		t.Parallel()
		vals := []level{4, 5, 6, 300}
		b := wire.AppendEnums(nil, 7, vals)

		num, typ, n := protowire.ConsumeTag(b)
		require.Positive(t, n)
		assert.Equal(t, wire.Number(7), num)
		assert.Equal(t, wire.BytesType, typ)

		payload, m := protowire.ConsumeBytes(b[n:])
		require.Positive(t, m)
		assert.Len(t, b, n+m, "exactly one record")

		var got []level
		for len(payload) > 0 {
			v, k := protowire.ConsumeVarint(payload)
			require.Positive(t, k)
			got = append(got, level(int32(v)))
			payload = payload[k:]
		}
		assert.Equal(t, vals, got)
	})
}
