// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package rle

import (
	"errors"
	"io"

	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/bounded"
	"github.com/retrocomp/dscomp/internal/header"
)

// Decompress reads an RLE stream from r (bounded to declaredLength input
// bytes), writes the decoded bytes to w, and returns the number written.
func (*Codec) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	br := bounded.New(r, declaredLength)

	magic, outLen, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	if magic != header.MagicRLE {
		return 0, dserr.NewInvalidData(0, "bad RLE magic 0x%02x", magic)
	}

	out := make([]byte, 0, outLen)

	for len(out) < outLen {
		flag, err := br.ReadByte()
		if err != nil {
			return finish(w, out, outLen, err)
		}

		if flag&0x80 != 0 {
			length := int(flag&0x7F) + MinRunLen
			b, err := br.ReadByte()
			if err != nil {
				return finish(w, out, outLen, err)
			}
			for j := 0; j < length && len(out) < outLen; j++ {
				out = append(out, b)
			}
			continue
		}

		length := int(flag&0x7F) + 1
		for j := 0; j < length && len(out) < outLen; j++ {
			b, err := br.ReadByte()
			if err != nil {
				return finish(w, out, outLen, err)
			}
			out = append(out, b)
		}
	}

	if _, err := w.Write(out); err != nil {
		return 0, err
	}

	if br.Remaining() > 0 {
		return len(out), dserr.NewTooMuchInput(br.Remaining())
	}

	return len(out), nil
}

func readHeader(br *bounded.Reader) (magic byte, length int, err error) {
	var buf [4]byte
	if _, err := br.Read(buf[:]); err != nil {
		if errors.Is(err, bounded.ErrUnderrun) || errors.Is(err, bounded.ErrLimitReached) {
			return 0, 0, dserr.ErrStreamTooShort
		}
		return 0, 0, err
	}

	magic = buf[0]
	length = int(buf[1]) | int(buf[2])<<8 | int(buf[3])<<16

	if length == 0 {
		var ext [4]byte
		if _, err := br.Read(ext[:]); err != nil {
			if errors.Is(err, bounded.ErrUnderrun) || errors.Is(err, bounded.ErrLimitReached) {
				return 0, 0, dserr.ErrStreamTooShort
			}
			return 0, 0, err
		}
		length = int(ext[0]) | int(ext[1])<<8 | int(ext[2])<<16 | int(ext[3])<<24
	}

	return magic, length, nil
}

func finish(w io.Writer, out []byte, outLen int, err error) (int, error) {
	if errors.Is(err, bounded.ErrLimitReached) {
		if _, werr := w.Write(out); werr != nil {
			return 0, werr
		}
		return len(out), dserr.NewNotEnoughData(len(out), outLen)
	}
	if errors.Is(err, bounded.ErrUnderrun) {
		return 0, dserr.ErrStreamTooShort
	}
	return 0, err
}
