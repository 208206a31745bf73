// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package dscomp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrocomp/dscomp"
)

func TestGBACompressDecompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("round trip through a composite codec "), 20)

	gba := dscomp.GBA()
	var compressed bytes.Buffer
	_, err := gba.Compress(bytes.NewReader(data), len(data), &compressed)
	require.NoError(t, err)
	require.NotEmpty(t, gba.LastUsedSubCodec().ShortName)

	var decompressed bytes.Buffer
	n, err := gba.Decompress(bytes.NewReader(compressed.Bytes()), compressed.Len(), &decompressed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decompressed.Bytes())
}

func TestCodecByFlag(t *testing.T) {
	c, ok := dscomp.CodecByFlag("lz10")
	require.True(t, ok)
	require.Equal(t, "LZ10", c.Descriptor().ShortName)

	_, ok = dscomp.CodecByFlag("nonexistent")
	require.False(t, ok)
}

func TestAllCodecsIncludesComposites(t *testing.T) {
	withComposites := dscomp.AllCodecs(true)
	without := dscomp.AllCodecs(false)
	require.Greater(t, len(withComposites), len(without))
}

func TestParseCompressionOptionsRoundRobin(t *testing.T) {
	nds := dscomp.NDS()
	n, err := nds.ParseCompressionOptions([]string{"-opt"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
