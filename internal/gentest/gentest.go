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

// Package gentest feeds generated readers a YAML corpus of wire specimens.
//
// Each corpus file names a message type and carries specimens in up to
// three encodings. Tests decode every specimen with the generated reader
// under test and with [dynamicpb], and require the two to agree.
package gentest

import (
	"bytes"
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
	"gopkg.in/yaml.v3"
)

//go:embed testdata
var corpus embed.FS

// Harness is a generalization of [testing.TB] that also includes the
// [testing.T.Run] method. It must be generic because the signature of this
// method varies across [testing.T] and [testing.B].
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// Case is one corpus entry.
type Case struct {
	Name string `yaml:"-"`

	TypeName string `yaml:"type"`

	// If set, run this case as a benchmark.
	Benchmark bool `yaml:"benchmark"`

	// Error marks specimens every decoder must reject.
	Error bool `yaml:"error"`

	// Three ways to encode a specimen: hex, textproto, and protoscope.
	Hex        []string `yaml:"hex"`
	TextProto  []string `yaml:"textproto"`
	Protoscope []string `yaml:"protoscope"`

	Specimens [][]byte `yaml:"-"`

	// Desc is the resolved descriptor of TypeName.
	Desc protoreflect.MessageDescriptor `yaml:"-"`
}

// RunAll runs every corpus case against the given harness, resolving each
// case's message type in files.
func RunAll[T Harness[T]](t T, files *protoregistry.Files, f func(T, *Case)) {
	t.Helper()

	err := fs.WalkDir(corpus, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading case %q", path)

		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimPrefix(path, "testdata/"), func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}

			data, err := fs.ReadFile(corpus, path)
			require.NoError(t, err, "loading case %q", path)

			c := parseCase(t, files, path, data)
			if c != nil {
				f(t, c)
			}
		})

		return nil
	})
	require.NoError(t, err)
}

// Reference decodes specimen with the dynamic reference implementation and
// returns each repeated enum field's numbers, keyed by field name. Fields
// with no occurrences have no entry.
func (c *Case) Reference(specimen []byte) (map[string][]int32, error) {
	m := dynamicpb.NewMessage(c.Desc)
	if err := proto.Unmarshal(specimen, m); err != nil {
		return nil, err
	}

	out := make(map[string][]int32)
	fields := c.Desc.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if !fd.IsList() || fd.Kind() != protoreflect.EnumKind {
			continue
		}
		list := m.Get(fd).List()
		if list.Len() == 0 {
			continue
		}
		vals := make([]int32, list.Len())
		for j := range vals {
			vals[j] = int32(list.Get(j).Enum())
		}
		out[string(fd.Name())] = vals
	}
	return out, nil
}

// parseCase parses a single corpus case from the given data.
//
// This will call t.FailNow() if parsing fails.
func parseCase(t testing.TB, files *protoregistry.Files, path string, file []byte) *Case {
	t.Helper()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	c := new(Case)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	err := dec.Decode(&c)
	require.NoError(t, err, "loading case %q", path)

	_, isBench := t.(*testing.B)
	if isBench && !c.Benchmark {
		t.SkipNow()
	}

	c.Name = strings.TrimPrefix(path, "testdata/")

	d, err := files.FindDescriptorByName(protoreflect.FullName(c.TypeName))
	require.NoError(t, err, "loading type %q", c.TypeName)
	md, ok := d.(protoreflect.MessageDescriptor)
	require.True(t, ok, "type %q is not a message", c.TypeName)
	c.Desc = md

	for _, raw := range c.Hex {
		r := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")
		b, err := hex.DecodeString(r.Replace(raw))
		require.NoError(t, err, "loading case %q", path)

		c.Specimens = append(c.Specimens, b)
	}

	for _, raw := range c.TextProto {
		m := dynamicpb.NewMessage(md)
		err := prototext.Unmarshal([]byte(raw), m)
		require.NoError(t, err, "loading case %q", path)

		b, err := proto.Marshal(m)
		require.NoError(t, err, "loading case %q", path)

		c.Specimens = append(c.Specimens, b)
	}

	for _, raw := range c.Protoscope {
		s := protoscope.NewScanner(raw)
		b, err := s.Exec()
		require.NoError(t, err, "loading case %q", path)

		c.Specimens = append(c.Specimens, b)
	}

	return c
}
