// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package lzovl implements the reverse end-of-file LZ format used for NDS
// overlay binaries and arm9.bin. Unlike every other codec in this module,
// the stream is read from the end of the file backward: a short trailer at
// EOF gives the size of a compressed region that sits just before it, and
// decoding walks that region (and the output it produces) from high
// address to low address.
//
// The format has no defined encoder; the reference tool this was modeled
// on never implemented compression for it, so Compress always fails and
// Descriptor reports SupportsCompress: false.
package lzovl

import (
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/dserr"
)

// Codec implements codec.Codec for the LZ-Overlay format. Alias switches
// the reported Descriptor to the "LZE" name some tools use for this same
// wire format when selecting it as a compression-option target rather
// than by trailer detection; the decoder is identical either way.
type Codec struct {
	Alias bool
}

var _ codec.Codec = (*Codec)(nil)

// Descriptor describes the LZ-Overlay codec (or its LZE alias).
func (c *Codec) Descriptor() codec.Descriptor {
	if c.Alias {
		return codec.Descriptor{
			ShortName:          "LZE",
			Description:        "reverse end-of-file LZ, LZ-Overlay's options-surface name",
			Flag:               "lze",
			SupportsCompress:   false,
			SupportsDecompress: true,
		}
	}
	return codec.Descriptor{
		ShortName:          "LZ-Overlay",
		Description:        "reverse end-of-file LZ for NDS overlays / arm9.bin",
		Flag:               "lzovl",
		SupportsCompress:   false,
		SupportsDecompress: true,
	}
}

// minTrailerSize is headerSize's minimum: 4 bytes extraSize + 1 byte
// headerSize + 3 bytes compressedLength, with zero padding bytes.
const minTrailerSize = 8

// Supports inspects the trailer at the end of the declared stream without
// consuming r: a plausible headerSize byte at declaredLength-5 and, when
// nonzero, 0xFF padding filling out the rest of the trailer.
func (*Codec) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	if declaredLength < minTrailerSize {
		return false, nil
	}

	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	defer r.Seek(pos, io.SeekStart) //nolint:errcheck // best-effort restore

	if _, err := r.Seek(pos+int64(declaredLength)-5, io.SeekStart); err != nil {
		return false, err
	}
	var hb [1]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return false, nil
	}
	headerSize := int(hb[0])
	if headerSize < minTrailerSize || headerSize > declaredLength {
		return false, nil
	}

	padLen := headerSize - minTrailerSize
	if padLen == 0 {
		return true, nil
	}

	if _, err := r.Seek(pos+int64(declaredLength)-int64(headerSize), io.SeekStart); err != nil {
		return false, err
	}
	pad := make([]byte, padLen)
	if _, err := io.ReadFull(r, pad); err != nil {
		return false, nil
	}
	for _, b := range pad {
		if b != 0xFF {
			return false, nil
		}
	}
	return true, nil
}

// Compress always fails: the format has no defined encoder (spec §4.4).
func (*Codec) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	return 0, dserr.NewInvalidData(0, "lzovl: compression is not implemented, the reference decoder's format has no defined encoder")
}

// ParseCompressionOptions claims nothing: there is no encoder to configure.
func (*Codec) ParseCompressionOptions(args []string) (int, error) {
	return 0, nil
}
