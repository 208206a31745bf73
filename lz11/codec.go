// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package lz11 implements the NDS-era LZ77 variant (magic 0x11): the same
// flag-byte/block shape as lz10, but matches are encoded in three
// variable-width forms selected by an indicator nibble, reaching much
// longer match lengths at the cost of a wider header per match.
package lz11

import (
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/internal/header"
)

// WindowSize is the LZ11 sliding-window size in bytes, shared with LZ10.
const WindowSize = 4096

// Match length ranges per indicator form (spec §4.3).
const (
	Form2MinLen = 3
	Form2MaxLen = 16

	Form3MinLen = 0x11
	Form3MaxLen = 0x110

	Form4MinLen = 0x111
	Form4MaxLen = 0x10110
)

// Codec implements codec.Codec for the LZ11 format.
type Codec struct {
	LookAhead bool
}

var _ codec.Codec = (*Codec)(nil)

// Descriptor describes the LZ11 codec.
func (*Codec) Descriptor() codec.Descriptor {
	return codec.Descriptor{
		ShortName:          "LZ11",
		Description:        "NDS-era LZ77, variable-width matches (magic 0x11)",
		Flag:               "lz11",
		SupportsCompress:   true,
		SupportsDecompress: true,
	}
}

// Supports reports whether r looks like an LZ11 stream.
func (*Codec) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	if declaredLength < 4 {
		return false, nil
	}
	magic, ok, err := header.PeekMagic(r, declaredLength)
	if err != nil || !ok {
		return false, err
	}
	return magic == header.MagicLZ11, nil
}

// ParseCompressionOptions claims "-opt", enabling DP-optimal matching.
func (c *Codec) ParseCompressionOptions(args []string) (int, error) {
	if len(args) > 0 && args[0] == "-opt" {
		c.LookAhead = true
		return 1, nil
	}
	return 0, nil
}
