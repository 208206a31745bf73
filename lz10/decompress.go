// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lz10

import (
	"errors"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/bounded"
	"github.com/retrocomp/dscomp/internal/header"
)

// Decompress reads an LZ10 stream from r (bounded to declaredLength input
// bytes) and writes the decompressed bytes to w, returning the number
// written. It never writes more than the header's declared decompressed
// size, truncating a back-reference that would overrun it rather than
// erroring — a well-formed game file never needs the truncated tail, and a
// decoder that insisted on writing the full nominal match length would
// reject otherwise-valid streams whose final match block is longer than
// what remains to be produced.
func (*Codec) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	br := bounded.New(r, declaredLength)

	magic, outLen, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	if magic != header.MagicLZ10 {
		return 0, dserr.NewInvalidData(0, "bad LZ10 magic 0x%02x", magic)
	}

	out := make([]byte, 0, outLen)
	flags := bitio.NewFlagReader(br.ReadByte)

	for len(out) < outLen {
		bit, err := flags.Next()
		if err != nil {
			if errors.Is(err, bounded.ErrLimitReached) {
				return flushErr(w, out, outLen)
			}
			if errors.Is(err, bounded.ErrUnderrun) {
				return 0, dserr.ErrStreamTooShort
			}
			return 0, err
		}

		if len(out) >= outLen {
			break
		}

		if !bit {
			b, err := br.ReadByte()
			if err != nil {
				return flushOnEOF(w, out, outLen, err)
			}
			out = append(out, b)
			continue
		}

		b1, err := br.ReadByte()
		if err != nil {
			return flushOnEOF(w, out, outLen, err)
		}
		b2, err := br.ReadByte()
		if err != nil {
			return flushOnEOF(w, out, outLen, err)
		}

		length := int(b1>>4) + 3
		disp := (int(b1&0x0F)<<8 | int(b2)) + 1

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
		// Soft, recoverable: declared input budget still has bytes beyond
		// what decoding consumed (alignment padding or trailing garbage).
		return len(out), dserr.NewTooMuchInput(br.Remaining())
	}

	return len(out), nil
}

func readHeader(br *bounded.Reader) (magic byte, length int, err error) {
	var buf [4]byte
	n, err := br.Read(buf[:])
	if err != nil {
		if errors.Is(err, bounded.ErrUnderrun) || errors.Is(err, bounded.ErrLimitReached) {
			return 0, 0, dserr.ErrStreamTooShort
		}
		return 0, 0, err
	}
	_ = n

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

// flushErr is called when the declared input budget ran out before outLen
// bytes were produced: a not-enough-data condition, reported with what was
// actually decoded so far.
func flushErr(w io.Writer, out []byte, outLen int) (int, error) {
	if _, err := w.Write(out); err != nil {
		return 0, err
	}
	return len(out), dserr.NewNotEnoughData(len(out), outLen)
}

func flushOnEOF(w io.Writer, out []byte, outLen int, err error) (int, error) {
	if errors.Is(err, bounded.ErrLimitReached) {
		return flushErr(w, out, outLen)
	}
	if errors.Is(err, bounded.ErrUnderrun) {
		return 0, dserr.ErrStreamTooShort
	}
	return 0, err
}
