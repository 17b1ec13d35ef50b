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

func TestCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"status", "Status"},
		{"order_status", "OrderStatus"},
		{"Order", "Order"},
		{"_foo", "XFoo"},
		{"k8s_field", "K8SField"},
		{"already_Camel", "Already_Camel"},
		{"foo.bar", "FooBar"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, camelCase(tt.in))
		})
	}
}

func TestLowerFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "status", lowerFirst("Status"))
	assert.Equal(t, "status", lowerFirst("status"))
	assert.Equal(t, "x", lowerFirst("X"))
	assert.Equal(t, "", lowerFirst(""))
}

func TestScreamingSnake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LEVEL", screamingSnake("Level"))
	assert.Equal(t, "ORDER_KIND", screamingSnake("OrderKind"))
}

func TestEnumValueName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goEnum, protoEnum, value, want string
	}{
		{"Level", "Level", "LEVEL_UNSPECIFIED", "LevelUnspecified"},
		{"Level", "Level", "LEVEL_BASIC", "LevelBasic"},
		{"OrderKind", "OrderKind", "ORDER_KIND_RETAIL", "OrderKindRetail"},
		// Values that skip the conventional prefix keep their whole name.
		{"Level", "Level", "WEIRD", "LevelWeird"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, enumValueName(tt.goEnum, tt.protoEnum, tt.value))
		})
	}
}
