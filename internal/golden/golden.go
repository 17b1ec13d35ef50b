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

// Package golden compares generated text against checked-in files.
package golden

import (
	"os"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// Diff renders a unified diff between want and got. It returns "" when the
// two are equal.
func Diff(want, got string) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  5,
	})
	return diff
}

// RequireEqual fails the test when got differs from want, printing the
// mismatch as a unified diff rather than two walls of text.
func RequireEqual(t *testing.T, want, got string) {
	t.Helper()
	if diff := Diff(want, got); diff != "" {
		t.Fatalf("output mismatch:\n%s", diff)
	}
}

// RequireFile fails the test when got differs from the contents of the
// checked-in file at path.
func RequireFile(t *testing.T, path string, got []byte) {
	t.Helper()
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	if diff := Diff(string(want), string(got)); diff != "" {
		t.Fatalf("%s is out of date:\n%s", path, diff)
	}
}
