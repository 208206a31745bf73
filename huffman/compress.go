// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package huffman

import (
	"bytes"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/header"
)

// Compress reads exactly declaredLength bytes from r, writes their Huffman
// encoding to w, and returns the number of bytes written.
func (c *Codec) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	alphabetSize := 256
	if c.FourBit {
		alphabetSize = 16
	}
	freq := make([]int, alphabetSize)

	if c.FourBit {
		for _, b := range data {
			freq[b>>4]++
			freq[b&0x0F]++
		}
	} else {
		for _, b := range data {
			freq[b]++
		}
	}

	t := buildTree(freq)
	tableBytes, err := serializeTree(t)
	if err != nil {
		// No offset-bounded layout exists for the canonical tree's shape
		// (only a pathologically flat 8-bit frequency table gets here —
		// see rankNodes); fall back to a width-bounded comb tree, which
		// always serializes, at the cost of longer codewords for the
		// affected symbols.
		t = buildCombTree(freq)
		tableBytes, err = serializeTree(t)
		if err != nil {
			return 0, err
		}
	}
	codes := t.codewords()

	var body bytes.Buffer
	words := bitio.NewWordWriter(func(word uint32) {
		var buf [4]byte
		buf[0] = byte(word)
		buf[1] = byte(word >> 8)
		buf[2] = byte(word >> 16)
		buf[3] = byte(word >> 24)
		body.Write(buf[:])
	})

	emit := func(sym byte) {
		for _, bit := range codes[sym] {
			words.PutBit(bit)
		}
	}

	if c.FourBit {
		for _, b := range data {
			emit(b >> 4)
			emit(b & 0x0F)
		}
	} else {
		for _, b := range data {
			emit(b)
		}
	}
	words.Flush()

	total := 0
	n, err := header.Write(w, c.magic(), len(data))
	if err != nil {
		return total, err
	}
	total += n

	treeSizeByte := byte(len(tableBytes)/2 - 1)
	bn, err := w.Write([]byte{treeSizeByte})
	if err != nil {
		return total, err
	}
	total += bn

	n, err = w.Write(tableBytes)
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
