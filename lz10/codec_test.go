// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lz10_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp/lz10"
)

func TestDecompressScenarioA(t *testing.T) {
	// header: magic 0x10, length 5; body: flags 0x00 (all literal), "ABCDE"
	in := []byte{0x10, 0x05, 0x00, 0x00, 0x00, 'A', 'B', 'C', 'D', 'E'}

	var out bytes.Buffer
	c := &lz10.Codec{}
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "ABCDE", out.String())
}

func TestDecompressScenarioB_TruncatedMatch(t *testing.T) {
	// header declares 6 output bytes; body is one literal 'A' then a match
	// (B1=0xF0 -> n=15, L=18; B2=0x00 -> disp=1) that nominally runs 18
	// bytes but must stop the instant 6 total output bytes are written; the
	// 8 input bytes are consumed exactly, so no too-much-input is reported.
	in := []byte{0x10, 0x06, 0x00, 0x00, 0x40, 0x41, 0xF0, 0x00}

	var out bytes.Buffer
	c := &lz10.Codec{}
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte{'A', 'A', 'A', 'A', 'A', 'A'}, out.Bytes())
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps again")

	for _, lookAhead := range []bool{false, true} {
		c := &lz10.Codec{LookAhead: lookAhead}

		var compressed bytes.Buffer
		n, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
		require.NoError(t, err)
		require.Equal(t, compressed.Len(), n)

		var decompressed bytes.Buffer
		dn, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
		require.NoError(t, err)
		require.Equal(t, len(data), dn)
		require.Equal(t, data, decompressed.Bytes())
	}
}

func TestOptimalNeverLargerThanGreedy(t *testing.T) {
	data := bytes.Repeat([]byte("ABCABCABCDEF"), 40)

	var greedyOut, optimalOut bytes.Buffer
	greedy := &lz10.Codec{}
	_, err := greedy.Compress(bytes.NewReader(data), len(data), &greedyOut)
	require.NoError(t, err)

	optimal := &lz10.Codec{LookAhead: true}
	_, err = optimal.Compress(bytes.NewReader(data), len(data), &optimalOut)
	require.NoError(t, err)

	require.LessOrEqual(t, optimalOut.Len(), greedyOut.Len())
}

func TestSupports(t *testing.T) {
	c := &lz10.Codec{}
	data := []byte{0x10, 0x05, 0x00, 0x00, 0x00, 'A', 'B', 'C', 'D', 'E'}
	ok, err := c.Supports(bytes.NewReader(data), len(data))
	require.NoError(t, err)
	require.True(t, ok)

	other := []byte{0x11, 0x05, 0x00, 0x00}
	ok, err = c.Supports(bytes.NewReader(other), len(other))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseCompressionOptions(t *testing.T) {
	c := &lz10.Codec{}
	n, err := c.ParseCompressionOptions([]string{"-opt", "-other"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, c.LookAhead)
}
