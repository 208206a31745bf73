// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package rle implements the GBA/NDS run-length encoding (magic 0x30): a
// flag byte per block whose high bit selects a repeated-byte run or a raw
// literal run, with the low 7 bits carrying a biased length.
package rle

import (
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/internal/header"
)

// Length bounds per spec §4.5: compressed runs are biased by 3, literal
// runs by 1, both fitting the flag byte's low 7 bits.
const (
	MinRunLen     = 3
	MaxRunLen     = 3 + 0x7F
	MaxLiteralLen = 128
)

// Codec implements codec.Codec for the RLE format.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

// Descriptor describes the RLE codec.
func (*Codec) Descriptor() codec.Descriptor {
	return codec.Descriptor{
		ShortName:          "RLE",
		Description:        "run-length encoding (magic 0x30)",
		Flag:               "rle",
		SupportsCompress:   true,
		SupportsDecompress: true,
	}
}

// Supports reports whether r looks like an RLE stream.
func (*Codec) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	if declaredLength < 4 {
		return false, nil
	}
	magic, ok, err := header.PeekMagic(r, declaredLength)
	if err != nil || !ok {
		return false, err
	}
	return magic == header.MagicRLE, nil
}

// ParseCompressionOptions claims nothing: RLE has no compression flags.
func (*Codec) ParseCompressionOptions(args []string) (int, error) {
	return 0, nil
}
