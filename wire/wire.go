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

// Package wire implements the portion of the Protobuf wire format that
// lazypb-generated code calls into.
//
// Generated encoders use [SizeEnums] and [AppendEnums]; generated decoders
// use [Scanner] to record field occurrences and the Consume functions to
// materialize them later. Everything here is a thin layer over
// [google.golang.org/protobuf/encoding/protowire], kept separate so that
// generated files import exactly one runtime package for wire access.
package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Number is a Protobuf field number.
type Number = protowire.Number

// Type is a Protobuf wire type, i.e. the low three bits of a field tag.
type Type = protowire.Type

const (
	VarintType     Type = protowire.VarintType
	Fixed32Type    Type = protowire.Fixed32Type
	Fixed64Type    Type = protowire.Fixed64Type
	BytesType      Type = protowire.BytesType
	StartGroupType Type = protowire.StartGroupType
	EndGroupType   Type = protowire.EndGroupType
)
