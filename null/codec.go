// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package null implements the trivial passthrough codec (magic 0x00),
// useful mainly as a baseline for Composite's smallest-output comparison
// and for round-trip tests that want a codec with no format-specific
// behavior to get out of the way.
package null

import (
	"errors"
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/bounded"
	"github.com/retrocomp/dscomp/internal/header"
)

// Codec implements codec.Codec as a verbatim copy-through.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

// Descriptor describes the NULL codec.
func (*Codec) Descriptor() codec.Descriptor {
	return codec.Descriptor{
		ShortName:          "NULL",
		Description:        "uncompressed passthrough (magic 0x00)",
		Flag:               "null",
		SupportsCompress:   true,
		SupportsDecompress: true,
	}
}

// Supports reports whether r's header magic is 0x00 and its declared
// length agrees with the body that follows.
func (*Codec) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	if declaredLength < 4 {
		return false, nil
	}
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	defer r.Seek(start, io.SeekStart) //nolint:errcheck // best-effort restore

	magic, length, err := header.Read(r)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	end, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	return magic == header.MagicNull && int(end-start)+length == declaredLength, nil
}

// Decompress copies the header-declared number of bytes from r to w
// verbatim.
func (*Codec) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	br := bounded.New(r, declaredLength)

	magic, outLen, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	if magic != header.MagicNull {
		return 0, dserr.NewInvalidData(0, "bad NULL magic 0x%02x", magic)
	}

	body := make([]byte, outLen)
	n, err := br.Read(body)
	if err != nil {
		if n < outLen {
			if _, werr := w.Write(body[:n]); werr != nil {
				return 0, werr
			}
			return n, dserr.NewNotEnoughData(n, outLen)
		}
		return 0, dserr.ErrStreamTooShort
	}

	if _, err := w.Write(body); err != nil {
		return 0, err
	}
	return outLen, nil
}

// Compress writes a 4-byte NULL header followed by the declaredLength
// bytes read from r, verbatim.
func (*Codec) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	total := 0
	n, err := header.Write(w, header.MagicNull, len(data))
	if err != nil {
		return total, err
	}
	total += n

	n, err = w.Write(data)
	if err != nil {
		return total, err
	}
	total += n

	return total, nil
}

// ParseCompressionOptions claims nothing: NULL has no compression flags.
func (*Codec) ParseCompressionOptions(args []string) (int, error) {
	return 0, nil
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
