// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package huffman

import (
	"errors"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/bounded"
)

// Decompress reads a Huffman stream from r (bounded to declaredLength input
// bytes), writes the decoded bytes to w, and returns the number written.
func (c *Codec) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	br := bounded.New(r, declaredLength)

	magic, outLen, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	if magic != c.magic() {
		return 0, dserr.NewInvalidData(0, "bad huffman magic 0x%02x", magic)
	}

	treeSizeByte, err := br.ReadByte()
	if err != nil {
		return 0, toStreamErr(err)
	}
	treeLen := 2 * (int(treeSizeByte) + 1)
	table := make([]byte, treeLen)
	if _, err := br.Read(table); err != nil {
		return 0, toStreamErr(err)
	}

	words := bitio.NewWordReader(func() ([4]byte, error) {
		var buf [4]byte
		if _, err := br.Read(buf[:]); err != nil {
			return buf, err
		}
		return buf, nil
	})

	out := make([]byte, 0, outLen)

	if c.FourBit {
		for len(out) < outLen {
			hi, err := decodeSymbol(table, words.ReadBit)
			if err != nil {
				return finish(w, out, outLen, err)
			}
			lo, err := decodeSymbol(table, words.ReadBit)
			if err != nil {
				return finish(w, out, outLen, err)
			}
			out = append(out, hi<<4|lo&0x0F)
		}
	} else {
		for len(out) < outLen {
			sym, err := decodeSymbol(table, words.ReadBit)
			if err != nil {
				return finish(w, out, outLen, err)
			}
			out = append(out, sym)
		}
	}

	if _, err := w.Write(out); err != nil {
		return 0, err
	}

	// The word reader already consumed the remainder of its current word in
	// 4-byte chunks; whatever is left in the declared input budget beyond
	// that is genuine trailing data.
	if br.Remaining() > 0 {
		return len(out), dserr.NewTooMuchInput(br.Remaining())
	}

	return len(out), nil
}

func readHeader(br *bounded.Reader) (magic byte, length int, err error) {
	var buf [4]byte
	if _, err := br.Read(buf[:]); err != nil {
		return 0, 0, toStreamErr(err)
	}

	magic = buf[0]
	length = int(buf[1]) | int(buf[2])<<8 | int(buf[3])<<16

	if length == 0 {
		var ext [4]byte
		if _, err := br.Read(ext[:]); err != nil {
			return 0, 0, toStreamErr(err)
		}
		length = int(ext[0]) | int(ext[1])<<8 | int(ext[2])<<16 | int(ext[3])<<24
	}

	return magic, length, nil
}

func toStreamErr(err error) error {
	if errors.Is(err, bounded.ErrUnderrun) || errors.Is(err, bounded.ErrLimitReached) {
		return dserr.ErrStreamTooShort
	}
	return err
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
