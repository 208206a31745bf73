// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package rle

import (
	"bytes"
	"io"

	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/header"
)

// Compress reads exactly declaredLength bytes from r, writes their RLE
// encoding to w, and returns the number of bytes written. It scans greedily:
// a run of 3 or more identical bytes becomes a compressed block; everything
// else accumulates into a literal block of up to MaxLiteralLen bytes,
// flushed as soon as it is full, a qualifying run starts, or input ends.
func (*Codec) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	var body bytes.Buffer
	var literal []byte

	flushLiteral := func() {
		if len(literal) == 0 {
			return
		}
		body.WriteByte(byte(len(literal) - 1))
		body.Write(literal)
		literal = nil
	}

	i := 0
	for i < len(data) {
		runLen := 1
		for i+runLen < len(data) && data[i+runLen] == data[i] && runLen < MaxRunLen {
			runLen++
		}

		if runLen >= MinRunLen {
			flushLiteral()
			body.WriteByte(0x80 | byte(runLen-MinRunLen))
			body.WriteByte(data[i])
			i += runLen
			continue
		}

		literal = append(literal, data[i])
		i++
		if len(literal) == MaxLiteralLen {
			flushLiteral()
		}
	}
	flushLiteral()

	total := 0
	n, err := header.Write(w, header.MagicRLE, len(data))
	if err != nil {
		return total, err
	}
	total += n

	n, err = w.Write(body.Bytes())
	if err != nil {
		return total, err
	}
	total += n

	return total, nil
}
