// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package header implements the shared 4-byte (+ optional 4-byte overflow)
// header format used by LZ10, LZ11, RLE, and Huffman: a first byte whose
// high nibble is the codec's type/magic and whose low nibble is a
// codec-specific data-size parameter, followed by a 24-bit decompressed
// length, with a following 32-bit little-endian length when the 24-bit
// field is zero.
package header

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/retrocomp/dscomp/dserr"
)

// Magic byte values. LZ10 and LZ11 share type nibble 0x1 but are
// distinguished by the full byte: LZ10 always has data-size nibble 0
// (MagicLZ10 == 0x10); LZ11 fixes it to 1 (MagicLZ11 == 0x11). Huffman's
// low nibble carries the real alphabet width (4 or 8 bits).
const (
	MagicNull     = 0x00
	MagicLZ10     = 0x10
	MagicLZ11     = 0x11
	MagicHuffman4 = 0x24
	MagicHuffman8 = 0x28
	MagicRLE      = 0x30
)

// MaxLength24 is the largest decompressed length the 24-bit header field can
// hold directly.
const MaxLength24 = 0xFFFFFF

// Read parses the first header byte plus the 24-bit (or 32-bit overflow)
// length from r. magic is the raw first byte (type nibble and data-size
// nibble both included).
func Read(r io.Reader) (magic byte, length int, err error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, err
	}

	magic = buf[0]
	length = int(buf[1]) | int(buf[2])<<8 | int(buf[3])<<16

	if length == 0 {
		var ext [4]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return 0, 0, err
		}
		length = int(binary.LittleEndian.Uint32(ext[:]))
	}

	return magic, length, nil
}

// Write emits the 4-byte header (plus a 32-bit overflow form if length is
// zero or exceeds MaxLength24) for the given magic byte and decompressed
// length, returning dserr.ErrInputTooLarge for a length that does not fit
// in 32 bits. length == 0 cannot use the short form: a zero 24-bit field is
// itself the sentinel Read takes to mean "the 32-bit length follows", so
// the short form would be misread as "read 4 more length bytes" by every
// decoder.
func Write(w io.Writer, magic byte, length int) (int, error) {
	if length < 0 {
		return 0, fmt.Errorf("dscomp/header: negative length %d", length)
	}
	if uint64(length) > math.MaxUint32 {
		return 0, dserr.ErrInputTooLarge
	}

	if length > 0 && length <= MaxLength24 {
		buf := [4]byte{magic, byte(length), byte(length >> 8), byte(length >> 16)}
		return w.Write(buf[:])
	}

	buf := make([]byte, 8)
	buf[0] = magic
	binary.LittleEndian.PutUint32(buf[4:], uint32(length)) //nolint:gosec // G115: length already range-checked above
	return w.Write(buf)
}
