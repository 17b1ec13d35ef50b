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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeReserve(t *testing.T) {
	t.Parallel()

	s := NewScope()
	assert.Equal(t, "status", s.Reserve("status"))
	assert.Equal(t, "status_", s.Reserve("status"))
	assert.Equal(t, "status__", s.Reserve("status"))

	// The fallback spelling is itself reserved now.
	assert.Equal(t, "status___", s.Reserve("status_"))

	assert.True(t, s.Taken("status"))
	assert.True(t, s.Taken("status__"))
	assert.False(t, s.Taken("regions"))
}

func TestScopeKeywords(t *testing.T) {
	t.Parallel()

	s := NewScope()
	assert.Equal(t, "type_", s.Reserve("type"))
	assert.Equal(t, "range_", s.Reserve("range"))
	assert.Equal(t, "func_", s.Reserve("func"))

	// Not an identifier at all; "_" is the first valid extension.
	assert.Equal(t, "_", s.Reserve(""))
}

func TestScopeNames(t *testing.T) {
	t.Parallel()

	s := NewScope()
	for _, name := range []string{"wire", "fmt", "mem"} {
		s.Reserve(name)
	}
	assert.Equal(t, []string{"fmt", "mem", "wire"}, s.Names())
}
