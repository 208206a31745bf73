// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRankNodesPacksWideSkewedAlphabet exercises a realistic wide 8-bit
// frequency table (all 256 symbols present, weights skewed rather than
// perfectly flat) and requires serializeTree to succeed on the canonical
// tree directly, without buildCombTree's fallback. A Zipf-shaped table
// like this is representative of real byte-frequency distributions and is
// exactly the case rankNodes's EDF packing exists to rescue from plain
// breadth-first layout's offset overflow.
func TestRankNodesPacksWideSkewedAlphabet(t *testing.T) {
	freq := make([]int, 256)
	for i := range freq {
		freq[i] = 100000 / (i + 1)
	}

	tr := buildTree(freq)
	table, err := serializeTree(tr)
	require.NoError(t, err)
	require.NotEmpty(t, table)

	var maxDepth uint8
	for _, n := range tr.nodes {
		if n.leaf && n.depth > maxDepth {
			maxDepth = n.depth
		}
	}
	// A comb tree over 256 symbols has leaves as deep as 255; a canonical
	// Huffman tree over a Zipf-shaped table stays far shallower.
	require.Less(t, int(maxDepth), 32)
}

// TestRankNodesRejectsFlatAlphabet documents a tree shape the EDF packing
// genuinely cannot place within the 6-bit offset field: a fully populated
// 8-bit alphabet with every symbol equally likely. No
// offset-bounded assignment exists for a tree this wide at every level, so
// rankNodes must report it rather than silently emitting an invalid table.
func TestRankNodesRejectsFlatAlphabet(t *testing.T) {
	freq := make([]int, 256)
	for i := range freq {
		freq[i] = 1
	}

	tr := buildTree(freq)
	_, err := serializeTree(tr)
	require.Error(t, err)
}
