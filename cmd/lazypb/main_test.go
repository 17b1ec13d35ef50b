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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOutName(t *testing.T) {
	assert.Equal(t, "shop.lazy.go", outName("shop.proto"))
	assert.Equal(t, "a/b/shop.lazy.go", outName("a/b/shop.proto"))
	assert.Equal(t, "odd.lazy.go", outName("odd"))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{
		Out:     dir,
		Include: []string{"../../testdata"},
		NoColor: true,
	}
	require.NoError(t, run(context.Background(), cfg, []string{"shop.proto"}))

	b, err := os.ReadFile(filepath.Join(dir, "shop.lazy.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "package shoppb")
	assert.Contains(t, string(b), "func DecodeOrder(src []byte) (*OrderReader, error) {")
	assert.Contains(t, string(b), "func (w *OrderWriter) Size() int {")
}

func TestRunHeader(t *testing.T) {
	dir := t.TempDir()
	head := filepath.Join(dir, "header.txt")
	require.NoError(t, os.WriteFile(head, []byte("// Custom header.\n"), 0o644))

	cfg := &config{
		Out:     dir,
		Header:  head,
		Include: []string{"../../testdata"},
		NoColor: true,
	}
	require.NoError(t, run(context.Background(), cfg, []string{"shop.proto"}))

	b, err := os.ReadFile(filepath.Join(dir, "shop.lazy.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "// Custom header.\n\n// Code generated by lazypb. DO NOT EDIT.")
}

func TestRunBadProto(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.proto")
	require.NoError(t, os.WriteFile(bad, []byte("syntax = \"proto3\";\npackage bad;\nmessage M { repeated M m = 1; }\n"), 0o644))

	cfg := &config{Out: dir, Include: []string{dir}, NoColor: true}
	err := run(context.Background(), cfg, []string{"bad.proto"})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "bad.lazy.go"))
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("LAZYPB_OUT", "elsewhere")
	t.Setenv("LAZYPB_NO_COLOR", "true")

	cfg, err := loadConfig(newCommand().Flags())
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.Out)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 0, cfg.Parallelism)
}
