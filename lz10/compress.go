// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lz10

import (
	"bytes"
	"io"

	"github.com/retrocomp/dscomp/bitio"
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/internal/header"
	"github.com/retrocomp/dscomp/internal/lzcore"
)

// literalCostBits is the bit cost lzcore.Optimal charges for emitting one
// literal byte: a flag bit plus the byte itself.
const literalCostBits = 1 + 8

// matchCostBits is the bit cost of the single LZ10 match form: a flag bit
// plus the two-byte (length, displacement) pair.
const matchCostBits = 1 + 16

// maxChain bounds how many hash-chain candidates Best walks per position;
// it trades compression ratio for running time the way the teacher's
// level-dependent compress9x.go parameters do.
const maxChain = 64

// Compress reads exactly declaredLength bytes from r, writes their LZ10
// encoding to w, and returns the number of bytes written.
func (c *Codec) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	var ops []lzcore.Op
	if c.LookAhead {
		ops = lzcore.Optimal(data, lzcore.OptimalOptions{
			WindowSize:      WindowSize,
			MinLen:          MinMatch,
			MaxChain:        maxChain,
			LiteralCostBits: literalCostBits,
			Tiers: []lzcore.Tier{
				{MinLen: MinMatch, MaxLen: MaxMatch, CostBits: matchCostBits},
			},
		})
	} else {
		ops = lzcore.Greedy(data, lzcore.GreedyOptions{
			WindowSize: WindowSize,
			MinLen:     MinMatch,
			MaxLen:     MaxMatch,
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
		n := op.Length - 3
		d := op.Disp - 1
		group.WriteByte(byte(n<<4) | byte(d>>8))
		group.WriteByte(byte(d))
		flags.Put(true)
	}
	flags.Flush()

	total := 0
	n, err := header.Write(w, header.MagicLZ10, len(data))
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
