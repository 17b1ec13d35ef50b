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

package lazypb

import (
	"fmt"
	"path"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"buf.build/go/lazypb/wire"
)

// File describes one .proto file's worth of schema to generate code for.
//
// A File can be assembled directly, or adapted from a compiled descriptor
// with [FromFile]. Declaration order is meaningful: names are derived and
// code is emitted in the order given here.
type File struct {
	// Name is the path of the source file, echoed into the generated
	// header.
	Name string
	// Package is the Protobuf package, used to qualify names in generated
	// doc comments.
	Package string
	// GoPackage is the package name of the generated file. When empty it
	// is derived from Package.
	GoPackage string

	Enums    []*Enum
	Messages []*Message
}

// Enum describes an enum type declared at the top level of a file.
type Enum struct {
	// Name is the Protobuf name of the type, e.g. "Level".
	Name   string
	Values []EnumValue
}

// EnumValue is one declared enum number.
type EnumValue struct {
	// Name is the Protobuf name of the value, e.g. "LEVEL_BASIC".
	Name   string
	Number int32
}

// Message describes a message and the fields to generate code for.
type Message struct {
	Name   string
	Fields []Field
}

// Field describes one field of a message.
type Field struct {
	// Name is the Protobuf name of the field, e.g. "status".
	Name        string
	Number      wire.Number
	Kind        protoreflect.Kind
	Cardinality protoreflect.Cardinality

	// Enum is the Protobuf name of the field's enum type, for enum fields.
	// It must name an [Enum] declared in the same [File].
	Enum string
}

// FromFile adapts a compiled file descriptor into the schema model
// [Generate] consumes.
//
// The adapter takes descriptors at face value: it does not drop fields no
// generator supports, so unsupported shapes surface from [Generate] rather
// than silently vanishing here. Declarations nested inside messages and
// references to enums declared in other files are rejected; resolving
// across files belongs to the compiler front end that produced fd.
func FromFile(fd protoreflect.FileDescriptor) (*File, error) {
	f := &File{
		Name:      fd.Path(),
		Package:   string(fd.Package()),
		GoPackage: goPackageName(fd),
	}

	enums := fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		ed := enums.Get(i)
		e := &Enum{Name: string(ed.Name())}
		vals := ed.Values()
		for j := 0; j < vals.Len(); j++ {
			vd := vals.Get(j)
			e.Values = append(e.Values, EnumValue{
				Name:   string(vd.Name()),
				Number: int32(vd.Number()),
			})
		}
		f.Enums = append(f.Enums, e)
	}

	msgs := fd.Messages()
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		if md.Messages().Len() > 0 || md.Enums().Len() > 0 {
			return nil, fmt.Errorf("lazypb: %s: message %s: nested declarations are not supported", fd.Path(), md.Name())
		}
		m := &Message{Name: string(md.Name())}
		fields := md.Fields()
		for j := 0; j < fields.Len(); j++ {
			fdesc := fields.Get(j)
			field := Field{
				Name:        string(fdesc.Name()),
				Number:      fdesc.Number(),
				Kind:        fdesc.Kind(),
				Cardinality: fdesc.Cardinality(),
			}
			if ed := fdesc.Enum(); ed != nil {
				if ed.ParentFile().Path() != fd.Path() {
					return nil, fmt.Errorf("lazypb: %s: field %s references enum %s from another file; cross-file references are not supported",
						fd.Path(), fdesc.FullName(), ed.FullName())
				}
				field.Enum = string(ed.Name())
			}
			m.Fields = append(m.Fields, field)
		}
		f.Messages = append(f.Messages, m)
	}

	return f, nil
}

// goPackageName extracts the generated package name from the file's
// go_package option, falling back to the last segment of the Protobuf
// package.
func goPackageName(fd protoreflect.FileDescriptor) string {
	opts, _ := fd.Options().(*descriptorpb.FileOptions)
	gopkg := opts.GetGoPackage()
	if gopkg == "" {
		pkg := string(fd.Package())
		if i := strings.LastIndexByte(pkg, '.'); i >= 0 {
			pkg = pkg[i+1:]
		}
		return pkg
	}
	if i := strings.IndexByte(gopkg, ';'); i >= 0 {
		return gopkg[i+1:]
	}
	return path.Base(gopkg)
}
