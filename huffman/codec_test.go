// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package huffman_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp/huffman"
)

func TestCompressDecompressRoundTrip8Bit(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog repeatedly, again and again")

	c := &huffman.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestCompressDecompressRoundTrip4Bit(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x11, 0x22, 0x33, 0x44}

	c := &huffman.Codec{FourBit: true}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestSingleSymbolAlphabet(t *testing.T) {
	data := bytes.Repeat([]byte{0x41}, 37)

	c := &huffman.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestCompressDecompressRoundTripWideAlphabet(t *testing.T) {
	// All 256 distinct byte values, each occurring exactly once: this
	// perfectly flat distribution builds a canonical tree wide enough that
	// no offset-bounded layout exists at all, forcing Compress's
	// buildCombTree fallback regardless of how the packing is done.
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	c := &huffman.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestEmptyInput(t *testing.T) {
	c := &huffman.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(nil), 0, &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestSupportsDistinguishesAlphabetWidth(t *testing.T) {
	h4 := &huffman.Codec{FourBit: true}
	h8 := &huffman.Codec{}

	data4 := []byte{0x24, 0x01, 0x00, 0x00}
	ok, err := h4.Supports(bytes.NewReader(data4), len(data4))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h8.Supports(bytes.NewReader(data4), len(data4))
	require.NoError(t, err)
	require.False(t, ok)
}
