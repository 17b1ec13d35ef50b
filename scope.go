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
	"go/token"

	"github.com/tidwall/btree"

	"buf.build/go/lazypb/internal/debug"
)

// Scope allocates identifiers that are unique within one declaration space,
// such as a generated file's package scope or one message's member scope.
//
// A Scope is owned by a single file generation and is not safe for
// concurrent use.
type Scope struct {
	taken btree.Set[string]
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return new(Scope)
}

// Reserve claims a spelling for candidate and returns it. The result is
// candidate itself when it is free, otherwise candidate with as many "_"
// appended as it takes to reach a free spelling. Go keywords are never
// returned.
//
// Reserve never hands out the same spelling twice, so every name drawn from
// one Scope is distinct from every other.
func (s *Scope) Reserve(candidate string) string {
	name := candidate
	for !token.IsIdentifier(name) || s.taken.Contains(name) {
		name += "_"
	}
	s.taken.Insert(name)
	if name != candidate {
		debug.Log(nil, "rename", "%q taken, reserved %q", candidate, name)
	}
	return name
}

// Taken reports whether name has been reserved in this scope.
func (s *Scope) Taken(name string) bool {
	return s.taken.Contains(name)
}

// Names returns every reserved spelling in lexical order.
func (s *Scope) Names() []string {
	out := make([]string, 0, s.taken.Len())
	s.taken.Scan(func(name string) bool {
		out = append(out, name)
		return true
	})
	return out
}
