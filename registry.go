// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package dscomp

import (
	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/huffman"
	"github.com/retrocomp/dscomp/lz10"
	"github.com/retrocomp/dscomp/lz11"
	"github.com/retrocomp/dscomp/lzovl"
	"github.com/retrocomp/dscomp/null"
	"github.com/retrocomp/dscomp/rle"
)

// defaultCodecs lists every non-composite codec this module implements,
// built once at package init, in the order AllCodecs and CodecByFlag
// search them.
var defaultCodecs = []codec.Codec{
	&null.Codec{},
	&lz10.Codec{},
	&lz11.Codec{},
	&lzovl.Codec{},
	&lzovl.Codec{Alias: true},
	&rle.Codec{},
	&huffman.Codec{FourBit: true},
	&huffman.Codec{},
}

// AllCodecs returns every codec this module implements. When
// includeComposites is true, the result also contains GBA, NDS, and
// Huffman-any as additional entries.
func AllCodecs(includeComposites bool) []codec.Codec {
	out := make([]codec.Codec, len(defaultCodecs))
	copy(out, defaultCodecs)

	if includeComposites {
		out = append(out, GBA(), NDS(), HuffmanAny())
	}
	return out
}

// CodecByFlag returns the codec whose Descriptor().Flag matches flag,
// searching defaultCodecs only (not the composites).
func CodecByFlag(flag string) (codec.Codec, bool) {
	for _, c := range defaultCodecs {
		if c.Descriptor().Flag == flag {
			return c, true
		}
	}
	return nil, false
}

// GBA returns a fresh Composite over the GBA-era codec set: Huffman-4,
// Huffman-8, and LZ10.
func GBA() *Composite {
	return NewComposite("GBA",
		&huffman.Codec{FourBit: true},
		&huffman.Codec{},
		&lz10.Codec{},
	)
}

// NDS returns a fresh Composite over the NDS-era codec set: Huffman-4,
// Huffman-8, LZ10, and LZ11.
func NDS() *Composite {
	return NewComposite("NDS",
		&huffman.Codec{FourBit: true},
		&huffman.Codec{},
		&lz10.Codec{},
		&lz11.Codec{},
	)
}

// HuffmanAny returns a fresh Composite over just the two Huffman alphabet
// widths.
func HuffmanAny() *Composite {
	return NewComposite("Huffman-any",
		&huffman.Codec{FourBit: true},
		&huffman.Codec{},
	)
}
