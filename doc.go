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

// Package lazypb generates Go code for Protobuf schemas whose messages are
// encoded eagerly and decoded lazily.
//
// For each message, [Generate] emits a writer type that produces the exact
// wire encoding of its fields, and a reader type whose decode function makes
// a single linear scan over a buffer, recording where each field's bytes
// live without interpreting them. Accessors materialize values on first use,
// allocating on a caller-supplied [buf.build/go/lazypb/mem.Arena].
//
// Input schemas are described by [File], either built directly or adapted
// from a compiled [protoreflect.FileDescriptor] with [FromFile]. Parsing
// .proto source and resolving symbols across files is the business of a
// Protobuf compiler front end such as github.com/bufbuild/protocompile; this
// package starts where descriptors end.
//
// # Support Status
//
// Only repeated enum fields have a generator. Messages using any other
// field shape fail generation with [UnsupportedFieldError]. Other field
// shapes may be added as time goes on; the per-field machinery does not
// assume enums.
package lazypb
