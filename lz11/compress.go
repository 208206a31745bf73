// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lz11

import (
	"bytes"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/header"
	"github.com/retrocomp/dscomp/internal/lzcore"
)

const literalCostBits = 1 + 8

// Cost in bits of each match form, per spec §4.3.
const (
	form2CostBits = 1 + 16
	form3CostBits = 1 + 24
	form4CostBits = 1 + 32
)

const maxChain = 64

// Compress reads exactly declaredLength bytes from r, writes their LZ11
// encoding to w, and returns the number of bytes written.
func (c *Codec) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	tiers := []lzcore.Tier{
		{MinLen: Form2MinLen, MaxLen: Form2MaxLen, CostBits: form2CostBits},
		{MinLen: Form3MinLen, MaxLen: Form3MaxLen, CostBits: form3CostBits},
		{MinLen: Form4MinLen, MaxLen: Form4MaxLen, CostBits: form4CostBits},
	}

	var ops []lzcore.Op
	if c.LookAhead {
		ops = lzcore.Optimal(data, lzcore.OptimalOptions{
			WindowSize:      WindowSize,
			MinLen:          Form2MinLen,
			MaxChain:        maxChain,
			LiteralCostBits: literalCostBits,
			Tiers:           tiers,
		})
	} else {
		ops = lzcore.Greedy(data, lzcore.GreedyOptions{
			WindowSize: WindowSize,
			MinLen:     Form2MinLen,
			MaxLen:     Form4MaxLen,
			MaxChain:   maxChain,
		})
	}

	// Each flag byte precedes the up-to-8 blocks it describes, so a group's
	// block bytes must be buffered until the flag bit for the group's last
	// block is known, then written flag-first.
	var body bytes.Buffer
	var group bytes.Buffer
	flags := bitio.NewFlagWriter(func(b byte) {
		body.WriteByte(b)
		body.Write(group.Bytes())
		group.Reset()
	})

	for _, op := range ops {
		if op.Literal {
			group.WriteByte(op.Byte)
			flags.Put(false)
			continue
		}
		writeMatch(&group, op.Length, op.Disp)
		flags.Put(true)
	}
	flags.Flush()

	total := 0
	n, err := header.Write(w, header.MagicLZ11, len(data))
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

// writeMatch picks the narrowest form that fits length and writes it.
func writeMatch(body *bytes.Buffer, length, disp int) {
	d := disp - 1

	switch {
	case length <= Form2MaxLen:
		indicator := length - 1
		body.WriteByte(byte(indicator<<4) | byte(d>>8))
		body.WriteByte(byte(d))

	case length <= Form3MaxLen:
		l := length - 0x11
		body.WriteByte(byte(l >> 4))
		body.WriteByte(byte(l&0x0F)<<4 | byte(d>>8)&0x0F)
		body.WriteByte(byte(d))

	default:
		l := length - 0x111
		body.WriteByte(0x10 | byte(l>>12)&0x0F)
		body.WriteByte(byte(l >> 4))
		body.WriteByte(byte(l&0x0F)<<4 | byte(d>>8)&0x0F)
		body.WriteByte(byte(d))
	}
}
