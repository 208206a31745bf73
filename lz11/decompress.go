// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lz11

import (
	"errors"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/bounded"
	"github.com/retrocomp/dscomp/internal/header"
)

// Decompress reads an LZ11 stream from r (bounded to declaredLength input
// bytes) and writes the decompressed bytes to w, truncating the final match
// if it would overrun the header-declared output size, exactly as lz10 does.
func (*Codec) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	br := bounded.New(r, declaredLength)

	magic, outLen, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	if magic != header.MagicLZ11 {
		return 0, dserr.NewInvalidData(0, "bad LZ11 magic 0x%02x", magic)
	}

	out := make([]byte, 0, outLen)
	flags := bitio.NewFlagReader(br.ReadByte)

	for len(out) < outLen {
		bit, err := flags.Next()
		if err != nil {
			return finish(w, out, outLen, err)
		}

		if !bit {
			b, err := br.ReadByte()
			if err != nil {
				return finish(w, out, outLen, err)
			}
			out = append(out, b)
			continue
		}

		length, disp, err := readMatch(br)
		if err != nil {
			return finish(w, out, outLen, err)
		}

		if disp > len(out) {
			return 0, dserr.NewInvalidData(int64(br.Consumed()), "displacement %d exceeds %d bytes written", disp, len(out))
		}

		src := len(out) - disp
		for j := 0; j < length && len(out) < outLen; j++ {
			out = append(out, out[src+j])
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

// readMatch parses one of the three indicator-nibble match forms (spec §4.3)
// from the top nibble of the first match byte.
func readMatch(br *bounded.Reader) (length, disp int, err error) {
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	indicator := b1 >> 4

	switch {
	case indicator > 1:
		b2, err := br.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		length = int(indicator) + 1
		disp = (int(b1&0x0F)<<8 | int(b2)) + 1
		return length, disp, nil

	case indicator == 0:
		b2, err := br.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		b3, err := br.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		length = (int(b1&0x0F)<<4 | int(b2>>4)) + 0x11
		disp = (int(b2&0x0F)<<8 | int(b3)) + 1
		return length, disp, nil

	default: // indicator == 1
		b2, err := br.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		b3, err := br.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		b4, err := br.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		length = (int(b1&0x0F)<<12 | int(b2)<<4 | int(b3>>4)) + 0x111
		disp = (int(b3&0x0F)<<8 | int(b4)) + 1
		return length, disp, nil
	}
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
