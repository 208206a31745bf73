// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lz11_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp/lz11"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)

	for _, lookAhead := range []bool{false, true} {
		c := &lz11.Codec{LookAhead: lookAhead}

		var compressed bytes.Buffer
		_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
		require.NoError(t, err)

		var decompressed bytes.Buffer
		n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
		require.NoError(t, err)
		require.Equal(t, len(data), n)
		require.Equal(t, data, decompressed.Bytes())
	}
}

func TestDecompressForm2Match(t *testing.T) {
	// literal 'A', then indicator=5 (L=6, D=1): flag byte top two bits 0,1
	in := []byte{0x11, 0x07, 0x00, 0x00, 0x40, 'A', 0x50, 0x00}

	var out bytes.Buffer
	c := &lz11.Codec{}
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, []byte{'A', 'A', 'A', 'A', 'A', 'A', 'A'}, out.Bytes())
}

func TestOptimalNeverLargerThanGreedy(t *testing.T) {
	data := bytes.Repeat([]byte("AAAABBBBCCCCDDDD"), 200)

	var greedyOut, optimalOut bytes.Buffer
	greedy := &lz11.Codec{}
	_, err := greedy.Compress(bytes.NewReader(data), len(data), &greedyOut)
	require.NoError(t, err)

	optimal := &lz11.Codec{LookAhead: true}
	_, err = optimal.Compress(bytes.NewReader(data), len(data), &optimalOut)
	require.NoError(t, err)

	require.LessOrEqual(t, optimalOut.Len(), greedyOut.Len())
}

func TestSupports(t *testing.T) {
	c := &lz11.Codec{}
	data := []byte{0x11, 0x05, 0x00, 0x00}
	ok, err := c.Supports(bytes.NewReader(data), len(data))
	require.NoError(t, err)
	require.True(t, ok)
}
