// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package huffman

import (
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/internal/header"
)

// Codec implements codec.Codec for the Huffman format. FourBit selects the
// 4-bit symbol alphabet (magic 0x24, nibble-split input) instead of the
// default 8-bit alphabet (magic 0x28).
type Codec struct {
	FourBit bool
}

var _ codec.Codec = (*Codec)(nil)

func (c *Codec) magic() byte {
	if c.FourBit {
		return header.MagicHuffman4
	}
	return header.MagicHuffman8
}

// Descriptor describes this Huffman codec instance.
func (c *Codec) Descriptor() codec.Descriptor {
	if c.FourBit {
		return codec.Descriptor{
			ShortName:          "Huffman4",
			Description:        "Huffman coding, 4-bit alphabet (magic 0x24)",
			Flag:               "huff4",
			SupportsCompress:   true,
			SupportsDecompress: true,
		}
	}
	return codec.Descriptor{
		ShortName:          "Huffman8",
		Description:        "Huffman coding, 8-bit alphabet (magic 0x28)",
		Flag:               "huff8",
		SupportsCompress:   true,
		SupportsDecompress: true,
	}
}

// Supports reports whether r looks like a stream of this codec's alphabet
// width.
func (c *Codec) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	if declaredLength < 4 {
		return false, nil
	}
	magic, ok, err := header.PeekMagic(r, declaredLength)
	if err != nil || !ok {
		return false, err
	}
	return magic == c.magic(), nil
}

// ParseCompressionOptions claims nothing: Huffman has no compression flags.
func (*Codec) ParseCompressionOptions(args []string) (int, error) {
	return 0, nil
}
