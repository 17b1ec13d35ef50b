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

// Package mem provides the memory arena that generated accessors allocate
// their results on.
//
// Deferred fields materialize on first access, so the accessor rather than
// the decoder is what allocates. Threading an [Arena] through accessors lets
// the caller decide how long those results live and recycle the memory in
// bulk with [Arena.Free].
//
// Arenas only hand out pointer-free memory (see [Scalar]). A returned slice
// keeps its own chunk alive through ordinary GC reachability, and chunks
// never point to each other, so no extra liveness bookkeeping is needed.
package mem

import (
	"unsafe"

	"buf.build/go/lazypb/internal/debug"
)

// Arena is a bump allocator over reusable chunks.
//
// A zero Arena is empty and ready to use. An Arena is not safe for
// concurrent use; it belongs to one goroutine at a time.
type Arena struct {
	_ noCopy

	// Write position within cur. Kept aligned to Align.
	off int
	cur []byte

	// Chunks with live allocations, oldest first.
	used [][]byte
	// Chunks retained by Free for reuse.
	spare [][]byte
}

// Align is the alignment of every block an arena hands out. It covers the
// largest Scalar type.
const Align = 8

const minChunk = 256

// Alloc returns a zeroed block of exactly size bytes, aligned to Align.
func (a *Arena) Alloc(size int) []byte {
	a.off += Align - 1
	a.off &^= Align - 1

	if size > len(a.cur)-a.off {
		a.grow(size)
	}

	b := a.cur[a.off : a.off+size : a.off+size]
	a.off += size
	debug.Log([]any{"%p", a}, "alloc", "%d, off %d", size, a.off)
	return b
}

// Free resets the arena to an empty state, allowing the memory behind every
// block it has handed out to be reused by later allocations.
//
// This amortizes trips into Go's allocator at the cost of safety: blocks
// obtained before Free must not be referenced afterward.
func (a *Arena) Free() {
	if a.cur != nil {
		a.used = append(a.used, a.cur)
		a.cur = nil
	}
	for _, c := range a.used {
		clear(c)
	}
	a.spare = append(a.spare, a.used...)
	a.used = nil
	a.off = 0
	debug.Log([]any{"%p", a}, "free", "%d spare chunks", len(a.spare))
}

// grow swaps cur for a chunk with at least size free bytes, preferring a
// chunk retained by an earlier Free.
func (a *Arena) grow(size int) {
	n := minChunk
	if a.cur != nil {
		n = len(a.cur) * 2
		a.used = append(a.used, a.cur)
		a.cur = nil
	}
	// Chunk sizes double and stay powers of two.
	for n < size {
		n *= 2
	}

	for i, c := range a.spare {
		if len(c) >= n {
			a.cur = c
			a.spare = append(a.spare[:i], a.spare[i+1:]...)
			break
		}
	}
	if a.cur == nil {
		a.cur = newChunk(n)
	}
	a.off = 0
	debug.Log([]any{"%p", a}, "grow", "%d", len(a.cur))
}

// newChunk allocates a zeroed chunk of n bytes backed by uint64s, which
// pins every Align boundary within it to the underlying allocation.
func newChunk(n int) []byte {
	words := make([]uint64, n/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}

// noCopy triggers the copylocks vet check for types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
