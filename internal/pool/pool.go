// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package pool holds a generic scratch-buffer pool, generalizing the
// single-purpose sliding_window_pool.go of the teacher (one sync.Pool for
// one dictionary type) to any byte scratch buffer. No codec in this module
// draws from a BytePool: the LZ10/LZ11 match finders, the Huffman tree
// arena, and LZ-Overlay's whole-file output buffer are all allocated fresh
// on every call.
package pool

import "sync"

// BytePool hands out byte slices of a fixed capacity, zeroing length on
// acquire and clearing references to the caller's data before release so a
// lingering pooled buffer cannot retain memory on their behalf.
type BytePool struct {
	pool sync.Pool
	cap  int
}

// NewBytePool returns a BytePool whose buffers have the given capacity.
func NewBytePool(capacity int) *BytePool {
	p := &BytePool{cap: capacity}
	p.pool.New = func() any {
		b := make([]byte, 0, capacity)
		return &b
	}
	return p
}

// Get returns a zero-length buffer with at least the pool's configured
// capacity.
func (p *BytePool) Get() []byte {
	bp := p.pool.Get().(*[]byte)
	return (*bp)[:0]
}

// Put returns buf to the pool for reuse. Buffers grown past the pool's
// original capacity are still accepted (sync.Pool does not care), but
// callers that expect bounded memory should avoid growing far beyond it.
func (p *BytePool) Put(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	b := buf[:0]
	p.pool.Put(&b)
}
