// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package bitio provides the small bit-reader/writer abstractions the LZ and
// Huffman codecs need. MSB-first and LSB-first traversal are kept as
// separate types rather than unified behind one configurable reader: LZ10
// and LZ11 read flags MSB-first one byte at a time, the Huffman bitstream
// reads 32-bit little-endian words MSB-first, while LZ-Overlay reads
// LSB-first because its whole traversal runs
// backwards through the file. Trying to parameterize a single type over bit
// order made both call sites harder to read for no shared benefit.
package bitio

// FlagReader hands out LZ-style control-byte flags, MSB-first, 8 flags per
// byte, re-filling from src on demand. It is not a general bit reader: LZ10
// and LZ11 only ever need "next flag bit", never arbitrary bit widths.
type FlagReader struct {
	next     func() (byte, error)
	flags    byte
	bitsLeft int
}

// NewFlagReader builds a FlagReader that pulls its flag bytes from next.
func NewFlagReader(next func() (byte, error)) *FlagReader {
	return &FlagReader{next: next}
}

// Next returns the next flag bit (true = set), reading a fresh flag byte
// from the source when the current one is exhausted.
func (f *FlagReader) Next() (bool, error) {
	if f.bitsLeft == 0 {
		b, err := f.next()
		if err != nil {
			return false, err
		}
		f.flags = b
		f.bitsLeft = 8
	}
	bit := f.flags&0x80 != 0
	f.flags <<= 1
	f.bitsLeft--
	return bit, nil
}

// FlagWriter accumulates up to 8 MSB-first flag bits and flushes them to a
// caller-supplied sink exactly when full, mirroring FlagReader.
type FlagWriter struct {
	emit  func(byte)
	flags byte
	count int
}

// NewFlagWriter builds a FlagWriter that calls emit with each completed flag
// byte.
func NewFlagWriter(emit func(byte)) *FlagWriter {
	return &FlagWriter{emit: emit}
}

// Put appends one flag bit. It returns true if this call flushed a full
// byte via emit.
func (f *FlagWriter) Put(bit bool) bool {
	f.flags <<= 1
	if bit {
		f.flags |= 1
	}
	f.count++
	if f.count == 8 {
		f.emit(f.flags)
		f.flags = 0
		f.count = 0
		return true
	}
	return false
}

// Flush emits a final partial flag byte (left-justified, i.e. the bits
// written so far occupy the high end as if the byte had been filled with
// zero flag bits) if any bits are pending. It reports whether anything was
// flushed.
func (f *FlagWriter) Flush() bool {
	if f.count == 0 {
		return false
	}
	f.flags <<= uint(8 - f.count)
	f.emit(f.flags)
	f.flags = 0
	f.count = 0
	return true
}

// Pending reports how many flag bits are buffered but not yet flushed.
func (f *FlagWriter) Pending() int {
	return f.count
}
