// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package null_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp/null"
)

func TestDecompressScenarioF(t *testing.T) {
	in := []byte{0x00, 0x03, 0x00, 0x00, 'A', 'B', 'C'}

	c := &null.Codec{}
	var out bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(in), len(in), &out)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "ABC", out.String())
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	data := []byte("passthrough data, nothing fancy")

	c := &null.Codec{}
	var compressed bytes.Buffer
	_, err := c.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	n, err := c.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestSupports(t *testing.T) {
	c := &null.Codec{}
	data := []byte{0x00, 0x03, 0x00, 0x00, 'A', 'B', 'C'}
	ok, err := c.Supports(bytes.NewReader(data), len(data))
	require.NoError(t, err)
	require.True(t, ok)

	other := []byte{0x10, 0x03, 0x00, 0x00}
	ok, err = c.Supports(bytes.NewReader(other), len(other))
	require.NoError(t, err)
	require.False(t, ok)
}
