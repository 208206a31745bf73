// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package lz10 implements the GBA-native LZ77 variant (magic 0x10): a
// forward bitstream of 8-block groups, one flag byte MSB-first per group,
// literal bytes or (length, displacement) back-references within a
// 4096-byte sliding window.
package lz10

import (
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/internal/header"
)

// WindowSize is the LZ10 sliding-window size in bytes.
const WindowSize = 4096

// MinMatch and MaxMatch bound the single back-reference form's length
// field: n = (B1>>4)+3, n in [3,18].
const (
	MinMatch = 3
	MaxMatch = 18
)

// Codec implements codec.Codec for the LZ10 format. LookAhead switches
// Compress from greedy to DP-optimal match selection (the "-opt" flag).
type Codec struct {
	LookAhead bool
}

var _ codec.Codec = (*Codec)(nil)

// Descriptor describes the LZ10 codec.
func (*Codec) Descriptor() codec.Descriptor {
	return codec.Descriptor{
		ShortName:          "LZ10",
		Description:        "GBA-native LZ77 (magic 0x10)",
		Flag:               "lz10",
		SupportsCompress:   true,
		SupportsDecompress: true,
	}
}

// Supports reports whether r looks like an LZ10 stream: first byte 0x10 and
// at least 4 declared bytes available for a header.
func (*Codec) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	if declaredLength < 4 {
		return false, nil
	}
	magic, ok, err := header.PeekMagic(r, declaredLength)
	if err != nil || !ok {
		return false, err
	}
	return magic == header.MagicLZ10, nil
}

// ParseCompressionOptions claims "-opt", enabling LookAhead (DP-optimal
// matching) for subsequent Compress calls.
func (c *Codec) ParseCompressionOptions(args []string) (int, error) {
	if len(args) > 0 && args[0] == "-opt" {
		c.LookAhead = true
		return 1, nil
	}
	return 0, nil
}
