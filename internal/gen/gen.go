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

// Package gen regenerates this repository's checked-in generated code.
//
// The packages below it hold the output; tests compare them against a fresh
// [Build] of the schemas under testdata to catch stale gencode.
package gen

import (
	"context"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/lazypb"
)

// Header is the license header carried into generated files.
const Header = `// Copyright 2020-2025 Buf Technologies, Inc.
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
// limitations under the License.`

// Compile compiles the named .proto file, resolving imports against dir.
func Compile(ctx context.Context, dir, name string) (protoreflect.FileDescriptor, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: []string{dir},
		}),
	}
	fds, err := compiler.Compile(ctx, name)
	if err != nil {
		return nil, err
	}
	return fds[0], nil
}

// Build compiles the named .proto file and generates lazy accessor code for
// it, with the repository license header.
func Build(ctx context.Context, dir, name string) ([]byte, error) {
	fd, err := Compile(ctx, dir, name)
	if err != nil {
		return nil, err
	}
	f, err := lazypb.FromFile(fd)
	if err != nil {
		return nil, err
	}
	return lazypb.Generate(f, lazypb.WithHeader(Header))
}
