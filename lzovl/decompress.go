// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lzovl

import (
	"encoding/binary"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
)

// matchDispBias is added to the raw 12-bit displacement field, per spec
// §4.4 (LZ-Overlay's bias of 3, versus LZ10/LZ11's bias of 1).
const matchDispBias = 3

// Decompress buffers the entire declared input (reverse access is
// inherent to the format), parses the trailer at its end, decodes the
// compressed region from high address to low address into an output
// buffer sized to the final decompressed length, and writes that buffer
// forward to w.
func (*Codec) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	if declaredLength < minTrailerSize {
		return 0, dserr.ErrStreamTooShort
	}

	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	extraSize := binary.LittleEndian.Uint32(data[declaredLength-4:])
	if extraSize == 0 {
		n := declaredLength - 4
		if _, err := w.Write(data[:n]); err != nil {
			return 0, err
		}
		return n, nil
	}

	headerSize := int(data[declaredLength-5])
	if headerSize < minTrailerSize || headerSize > declaredLength {
		return 0, dserr.NewInvalidData(int64(declaredLength-5), "lzovl: implausible trailer headerSize %d", headerSize)
	}

	clPos := declaredLength - 8
	compressedLength := int(data[clPos]) | int(data[clPos+1])<<8 | int(data[clPos+2])<<16

	trailerStart := declaredLength - headerSize
	compressedRegionStart := trailerStart - compressedLength
	if compressedRegionStart < 0 {
		return 0, dserr.NewInvalidData(int64(trailerStart), "lzovl: compressedLength %d exceeds available data", compressedLength)
	}
	region := data[compressedRegionStart:trailerStart]

	decompressedSize := compressedLength + int(extraSize)
	uncompressedPrefixLen := compressedRegionStart

	out := make([]byte, uncompressedPrefixLen+decompressedSize)
	copy(out, data[:uncompressedPrefixLen])

	regionOut := out[uncompressedPrefixLen:]
	if err := decodeRegion(region, regionOut); err != nil {
		return 0, err
	}

	if _, err := w.Write(out); err != nil {
		return 0, err
	}
	return len(out), nil
}

// decodeRegion fills dst (length compressedLength+extraSize) by walking
// src backward from its last byte, writing dst backward from its last
// byte, per spec §4.4's reverse flag/match semantics.
func decodeRegion(src, dst []byte) error {
	inPos := len(src)
	outPos := len(dst)

	readByte := func() (byte, error) {
		if inPos == 0 {
			return 0, dserr.ErrStreamTooShort
		}
		inPos--
		return src[inPos], nil
	}

	flags := bitio.NewLSBFlagReader(readByte)

	for outPos > 0 {
		bit, err := flags.Next()
		if err != nil {
			return dserr.NewNotEnoughData(len(dst)-outPos, len(dst))
		}

		if !bit {
			b, err := readByte()
			if err != nil {
				return dserr.NewNotEnoughData(len(dst)-outPos, len(dst))
			}
			outPos--
			dst[outPos] = b
			continue
		}

		b1, err := readByte()
		if err != nil {
			return dserr.NewNotEnoughData(len(dst)-outPos, len(dst))
		}
		b2, err := readByte()
		if err != nil {
			return dserr.NewNotEnoughData(len(dst)-outPos, len(dst))
		}

		length := int(b1>>4) + 3
		disp := (int(b1&0x0F)<<8 | int(b2)) + matchDispBias

		writtenSoFar := len(dst) - outPos
		if disp > writtenSoFar {
			if writtenSoFar >= 2 {
				disp = 2
			} else {
				return dserr.NewInvalidData(int64(inPos), "lzovl: displacement %d exceeds %d bytes written", disp, writtenSoFar)
			}
		}

		for j := 0; j < length && outPos > 0; j++ {
			outPos--
			src := outPos + disp
			dst[outPos] = dst[src]
		}
	}

	return nil
}
