// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lzovl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp/lzovl"
)

func TestDecompressUncompressedPassthrough(t *testing.T) {
	// extraSize == 0 means the whole declared stream (minus the trailing
	// 4-byte extraSize field) is copied through verbatim.
	in := append([]byte("hello overlay"), 0x00, 0x00, 0x00, 0x00)

	c := &lzovl.Codec{}
	var out bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, len(in)-4, n)
	require.Equal(t, "hello overlay", out.String())
}

func TestDecompressMatchWithDispQuirk(t *testing.T) {
	// Two literal 'A' blocks followed by a match whose natural displacement
	// (3, LZ-Overlay's bias) exceeds the 2 bytes written so far, triggering
	// the documented D=2 substitution quirk; decodes to six 'A' bytes.
	region := []byte{0x00, 0x10, 'A', 'A', 0x04}
	trailer := []byte{5, 0, 0, 8, 1, 0, 0, 0}

	in := append(append([]byte{}, region...), trailer...)

	c := &lzovl.Codec{}
	var out bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("AAAAAA"), out.Bytes())
}

func TestSupportsRejectsShortStream(t *testing.T) {
	c := &lzovl.Codec{}
	in := []byte{1, 2, 3}
	ok, err := c.Supports(bytes.NewReader(in), len(in))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompressUnsupported(t *testing.T) {
	c := &lzovl.Codec{}
	var out bytes.Buffer
	_, err := c.Compress(bytes.NewReader(nil), 0, &out)
	require.Error(t, err)
}
