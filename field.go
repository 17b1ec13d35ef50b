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
	"google.golang.org/protobuf/reflect/protoreflect"
)

// fieldGen generates the per-field portions of a message's writer and
// reader types. One implementation exists per supported field shape;
// [newFieldGen] is the only constructor, so the set of shapes is closed.
//
// A generator moves through three phases. Construction derives and reserves
// every identifier the field will ever emit. resolve then binds the
// generator to the Go name of its referent type. Emission methods may be
// called any number of times afterward, in any order; apart from wireConst,
// calling one before resolve is a bug in this package and panics.
type fieldGen interface {
	// resolve binds the field to the generated Go name of its referent
	// type. Calling it again rebinds.
	resolve(goType string)

	// wireConst returns the const block entry binding the field's number.
	// It is the one emission legal before resolve.
	wireConst() string

	// writerField returns the writer struct field declaration carrying
	// the field's values.
	writerField() []string

	// sizeStmt returns the statement adding the field's exact encoded
	// size to n.
	sizeStmt() string

	// encodeStmt returns the statement appending the field's encoding
	// to b.
	encodeStmt() string

	// readerFields returns the reader struct field declarations that
	// record the field's occurrences during the decode scan.
	readerFields() []string

	// decodeCase returns the case clause run when the scan hits the
	// field's number, including the payload skip.
	decodeCase() []string

	// accessor returns the method that materializes the field's values
	// from its recorded occurrences.
	accessor() []string

	// resetStmt returns the statement releasing the recorded occurrences.
	resetStmt() string

	// needsAlloc reports whether the accessor takes an arena. The
	// assembler imports the mem package iff some field reports true.
	needsAlloc() bool
}

// newFieldGen classifies f into a generator for its shape.
func newFieldGen(f Field, ctx *genContext) (fieldGen, error) {
	switch {
	case f.Cardinality == protoreflect.Repeated && f.Kind == protoreflect.EnumKind:
		return newEnumRepeatedGen(f, ctx), nil
	default:
		return nil, &UnsupportedFieldError{
			Field:       f.Name,
			Kind:        f.Kind,
			Cardinality: f.Cardinality,
		}
	}
}

// genContext carries the naming spaces and doc-comment context a field
// generator derives its identifiers from.
type genContext struct {
	// pkg is the Protobuf package of the file, for doc comments.
	pkg string
	// msg is the Protobuf name of the declaring message.
	msg string
	// goMsg is the reserved Go spelling of the message name.
	goMsg string
	// goReader is the reserved Go name of the message's reader type,
	// which accessors hang off of.
	goReader string
	// members is the identifier space shared by the message's writer and
	// reader: struct fields, methods and member const spellings.
	members *Scope
	// names is the package-level identifier space of the generated file.
	names *Scope
}

// qualify joins a Protobuf package and declaration name the way they read
// in doc comments.
func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
