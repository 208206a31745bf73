// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package rle_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp/rle"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	data := []byte("AAAAAAAAABCDEFGHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHHH")

	c := &rle.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestDecompressScenarioC(t *testing.T) {
	// header declares 5 bytes; literal block of 2 ("XY"), then a
	// compressed run of 3 'Z's.
	in := []byte{0x30, 0x05, 0x00, 0x00, 0x01, 'X', 'Y', 0x80, 'Z'}

	var out bytes.Buffer
	c := &rle.Codec{}
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("XYZZZ"), out.Bytes())
}

func TestEmptyInput(t *testing.T) {
	c := &rle.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(nil), 0, &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
