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

package lazypb_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/lazypb"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// orderFile is a hand-assembled schema equivalent to a one-enum,
// one-message source file.
func orderFile() *lazypb.File {
	return &lazypb.File{
		Name:      "shop.proto",
		Package:   "shop.v1",
		GoPackage: "shoppb",
		Enums: []*lazypb.Enum{{
			Name: "Level",
			Values: []lazypb.EnumValue{
				{Name: "LEVEL_UNSPECIFIED", Number: 0},
				{Name: "LEVEL_BASIC", Number: 1},
			},
		}},
		Messages: []*lazypb.Message{{
			Name: "Order",
			Fields: []lazypb.Field{{
				Name:        "status",
				Number:      7,
				Kind:        protoreflect.EnumKind,
				Cardinality: protoreflect.Repeated,
				Enum:        "Level",
			}},
		}},
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	out, err := lazypb.Generate(orderFile())
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "// Code generated by lazypb. DO NOT EDIT.")
	assert.Contains(t, src, "// Source: shop.proto")
	assert.Contains(t, src, "package shoppb")

	// Everything the generated file references is imported up front, in
	// fixed groups.
	assert.Contains(t, src, "import (\n\t\"fmt\"\n\n\t\"buf.build/go/lazypb/mem\"\n\t\"buf.build/go/lazypb/wire\"\n)")

	assert.Contains(t, src, "type Level int32")
	assert.Contains(t, src, "LevelUnspecified Level = 0")
	assert.Contains(t, src, "orderStatusWire = wire.Number(7)")
	assert.Contains(t, src, "func (w *OrderWriter) Size() int {")
	assert.Contains(t, src, "func (w *OrderWriter) Encode(b []byte) []byte {")
	assert.Contains(t, src, "func DecodeOrder(src []byte) (*OrderReader, error) {")
	assert.Contains(t, src, "func (r *OrderReader) GetStatus(a *mem.Arena) ([]Level, error) {")
	assert.Contains(t, src, "func (r *OrderReader) Reset() {")
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	first, err := lazypb.Generate(orderFile())
	require.NoError(t, err)
	second, err := lazypb.Generate(orderFile())
	require.NoError(t, err)

	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Fatalf("generation is not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateHeader(t *testing.T) {
	t.Parallel()

	out, err := lazypb.Generate(orderFile(), lazypb.WithHeader("// Custom header.\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out),
		"// Custom header.\n\n// Code generated by lazypb. DO NOT EDIT.\n"))
}

// TestGenerateEnumOnly checks that a file with no messages imports neither
// of the runtime packages.
func TestGenerateEnumOnly(t *testing.T) {
	t.Parallel()

	f := orderFile()
	f.Messages = nil
	f.GoPackage = ""

	out, err := lazypb.Generate(f)
	require.NoError(t, err)
	src := string(out)

	// GoPackage falls back to the last Protobuf package segment.
	assert.Contains(t, src, "package v1")
	assert.Contains(t, src, "import (\n\t\"fmt\"\n)")
	assert.NotContains(t, src, "buf.build/go/lazypb/wire")
	assert.NotContains(t, src, "buf.build/go/lazypb/mem")
}

// TestGenerateFieldlessMessage checks the inverse: a message with no fields
// still gets its full decode surface, but nothing needs fmt or an arena.
func TestGenerateFieldlessMessage(t *testing.T) {
	t.Parallel()

	f := &lazypb.File{
		Name:     "empty.proto",
		Package:  "demo.v1",
		Messages: []*lazypb.Message{{Name: "Empty"}},
	}
	out, err := lazypb.Generate(f)
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "import (\n\t\"buf.build/go/lazypb/wire\"\n)")
	assert.NotContains(t, src, `"fmt"`)
	assert.NotContains(t, src, "mem.Arena")

	assert.Contains(t, src, "type EmptyWriter struct {\n}")
	assert.Contains(t, src, "func (r *EmptyReader) Decode(src []byte) error {")
	assert.NotContains(t, src, "// Field numbers of")
}

// TestGenerateEnumAlias declares two values with the same number; the
// Stringer keeps only the first, since duplicate case values do not
// compile.
func TestGenerateEnumAlias(t *testing.T) {
	t.Parallel()

	f := &lazypb.File{
		Name:    "alias.proto",
		Package: "demo.v1",
		Enums: []*lazypb.Enum{{
			Name: "Level",
			Values: []lazypb.EnumValue{
				{Name: "LEVEL_UNSPECIFIED", Number: 0},
				{Name: "LEVEL_BASIC", Number: 1},
				{Name: "LEVEL_ALIAS", Number: 1},
			},
		}},
	}
	out, err := lazypb.Generate(f)
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "LevelAlias")
	assert.Contains(t, src, "case LevelBasic:")
	assert.NotContains(t, src, "case LevelAlias:")
}

func TestGenerateNoPackage(t *testing.T) {
	t.Parallel()

	_, err := lazypb.Generate(&lazypb.File{Name: "x.proto"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "has no package to name the generated code after")
}

func TestGenerateUnresolvedEnum(t *testing.T) {
	t.Parallel()

	f := &lazypb.File{
		Name:    "x.proto",
		Package: "demo.v1",
		Messages: []*lazypb.Message{{
			Name: "M",
			Fields: []lazypb.Field{{
				Name:        "levels",
				Number:      1,
				Kind:        protoreflect.EnumKind,
				Cardinality: protoreflect.Repeated,
				Enum:        "Missing",
			}},
		}},
	}
	_, err := lazypb.Generate(f)
	require.Error(t, err)

	var unresolved *lazypb.UnresolvedEnumError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "levels", unresolved.Field)
	assert.Equal(t, "Missing", unresolved.Enum)
}

// TestGenerateMessageErrors declares unsupported fields in two messages
// and checks the failure reports both.
func TestGenerateMessageErrors(t *testing.T) {
	t.Parallel()

	f := &lazypb.File{
		Name:    "bad.proto",
		Package: "demo.v1",
		Messages: []*lazypb.Message{
			{Name: "A", Fields: []lazypb.Field{{
				Name: "name", Number: 1,
				Kind: protoreflect.StringKind, Cardinality: protoreflect.Optional,
			}}},
			{Name: "B", Fields: []lazypb.Field{{
				Name: "blob", Number: 1,
				Kind: protoreflect.BytesKind, Cardinality: protoreflect.Optional,
			}}},
		},
	}
	_, err := lazypb.Generate(f)
	require.Error(t, err)
	assert.ErrorContains(t, err, `"name"`)
	assert.ErrorContains(t, err, `"blob"`)
}

func TestGenerateAll(t *testing.T) {
	t.Parallel()

	files := []*lazypb.File{
		orderFile(),
		{Name: "bad.proto"},
		orderFile(),
	}
	out, err := lazypb.GenerateAll(context.Background(), files)
	require.Error(t, err)
	assert.ErrorContains(t, err, "bad.proto:")

	require.Len(t, out, 3)
	assert.NotNil(t, out[0])
	assert.Nil(t, out[1])
	assert.NotNil(t, out[2])

	// The fan-out produces exactly what a direct call does.
	single, err := lazypb.Generate(orderFile())
	require.NoError(t, err)
	assert.Equal(t, single, out[0])
	assert.Equal(t, single, out[2])
}

func TestGenerateAllParallelism(t *testing.T) {
	t.Parallel()

	files := []*lazypb.File{orderFile(), orderFile(), orderFile()}
	out, err := lazypb.GenerateAll(context.Background(), files, lazypb.WithParallelism(1))
	require.NoError(t, err)
	for _, b := range out {
		assert.NotNil(t, b)
	}
}

func TestGenerateAllCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := lazypb.GenerateAll(ctx, []*lazypb.File{orderFile(), orderFile()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	for _, b := range out {
		assert.Nil(t, b)
	}
}
