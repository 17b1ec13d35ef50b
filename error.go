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

	"google.golang.org/protobuf/reflect/protoreflect"
)

// UnsupportedFieldError reports a field no generator exists for. Generation
// of the declaring message fails; errors for all of a file's unsupported
// fields are aggregated before [Generate] returns.
type UnsupportedFieldError struct {
	// Field is the Protobuf name of the field.
	Field       string
	Kind        protoreflect.Kind
	Cardinality protoreflect.Cardinality
}

// Error implements [error].
func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("lazypb: no generator for %v %v field %q", e.Cardinality, e.Kind, e.Field)
}

// UnresolvedEnumError reports an enum field whose type is not declared in
// the file being generated.
type UnresolvedEnumError struct {
	// Field is the Protobuf name of the field.
	Field string
	// Enum is the Protobuf name the field refers to.
	Enum string
}

// Error implements [error].
func (e *UnresolvedEnumError) Error() string {
	return fmt.Sprintf("lazypb: field %q: enum %q is not declared in this file", e.Field, e.Enum)
}
