// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package dscomp

import (
	"bytes"
	"io"

	"github.com/retrocomp/dscomp/codec"
	"github.com/retrocomp/dscomp/dserr"
)

// Composite wraps a fixed list of member codecs and dispatches across them:
// Supports is true if any member supports the stream; Decompress tries
// members in order, skipping any whose decode fails (other than a
// soft/recoverable too-much-input result); Compress runs every
// compression-capable member and keeps the smallest output.
type Composite struct {
	name    string
	members []codec.Codec

	lastUsed codec.Descriptor
}

var _ codec.Codec = (*Composite)(nil)

// NewComposite builds a Composite named name over the given members, in
// the order Decompress should try them.
func NewComposite(name string, members ...codec.Codec) *Composite {
	return &Composite{name: name, members: members}
}

// Descriptor describes the composite itself, not any one member.
func (c *Composite) Descriptor() codec.Descriptor {
	return codec.Descriptor{
		ShortName:          c.name,
		Description:        "composite codec over " + c.name + "'s members",
		Flag:               c.name,
		SupportsCompress:   true,
		SupportsDecompress: true,
	}
}

// Members returns the composite's member codecs in dispatch order.
func (c *Composite) Members() []codec.Codec {
	return c.members
}

// LastUsedSubCodec reports which member's encoding Compress last kept.
func (c *Composite) LastUsedSubCodec() codec.Descriptor {
	return c.lastUsed
}

// Supports reports whether any member supports r.
func (c *Composite) Supports(r io.ReadSeeker, declaredLength int) (bool, error) {
	for _, m := range c.members {
		ok, err := m.Supports(r, declaredLength)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Decompress tries each member that supports the stream, in order, until
// one decodes it without error. A member error other than a soft
// too-much-input result moves on to the next member; if every supporting
// member fails, Decompress raises invalid-data.
func (c *Composite) Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		buf, err := io.ReadAll(io.LimitReader(r, int64(declaredLength)))
		if err != nil {
			return 0, err
		}
		rs = bytes.NewReader(buf)
		r = rs
	}

	for _, m := range c.members {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return 0, err
		}
		supported, err := m.Supports(rs, declaredLength)
		if err != nil || !supported {
			continue
		}

		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return 0, err
		}
		var out bytes.Buffer
		n, err := m.Decompress(rs, declaredLength, &out)
		if err == nil || dserr.IsRecoverable(err) {
			if _, werr := w.Write(out.Bytes()); werr != nil {
				return 0, werr
			}
			return n, err
		}
	}

	return 0, dserr.NewInvalidData(0, "composite %s: no member could decode the stream", c.name)
}

// Compress runs every compression-capable member against the same input
// and writes whichever produced the smallest output, recording it for
// LastUsedSubCodec.
func (c *Composite) Compress(r io.Reader, declaredLength int, w io.Writer) (int, error) {
	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, dserr.ErrStreamTooShort
	}

	var best []byte
	var bestDescriptor codec.Descriptor
	found := false

	for _, m := range c.members {
		d := m.Descriptor()
		if !d.SupportsCompress {
			continue
		}

		var out bytes.Buffer
		if _, err := m.Compress(bytes.NewReader(data), len(data), &out); err != nil {
			continue
		}

		if !found || out.Len() < len(best) {
			best = out.Bytes()
			bestDescriptor = d
			found = true
		}
	}

	if !found {
		return 0, dserr.NewInvalidData(0, "composite %s: no member could compress the stream", c.name)
	}

	c.lastUsed = bestDescriptor
	n, err := w.Write(best)
	return n, err
}

// ParseCompressionOptions forwards args to every member in rounds,
// accumulating the maximum number of options any single member consumed
// per round, stopping when a round consumes nothing.
func (c *Composite) ParseCompressionOptions(args []string) (int, error) {
	total := 0
	for {
		roundMax := 0
		for _, m := range c.members {
			n, err := m.ParseCompressionOptions(args)
			if err != nil {
				return total, err
			}
			if n > roundMax {
				roundMax = n
			}
		}
		if roundMax == 0 {
			return total, nil
		}
		args = args[roundMax:]
		total += roundMax
	}
}
