// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

/*
Package dscomp implements the compression codecs used by first-party
GBA/NDS-era Nintendo handheld games: LZ10, LZ11, the end-of-file reverse
LZ-Overlay format, Nintendo RLE, and Huffman with 4-bit or 8-bit alphabets.

Every codec implements the Codec interface from the codec subpackage and is
stateless between calls; per-call scratch state (sliding windows, tree
arenas, priority queues) is allocated fresh (or drawn from an internal pool)
and released on every exit path, including errors.

# Decoding

Ask a specific codec, or let a Composite pick one by magic byte:

	out := &bytes.Buffer{}
	n, err := (&lz10.Codec{}).Decompress(r, declaredLength, out)

	gba := dscomp.GBA()
	n, err = gba.Decompress(r, declaredLength, out)

# Encoding

	out := &bytes.Buffer{}
	n, err := (&lz10.Codec{}).Compress(r, len(data), out)

Composites try every member that supports compression and keep the smallest
output:

	nds := dscomp.NDS()
	n, err := nds.Compress(r, len(data), out)
	fmt.Println(nds.LastUsedSubCodec())

# Options

Compression-option strings are claimed by ParseCompressionOptions; "-opt"
switches an LZ codec (or a composite's LZ members) from greedy to
DP-optimal match selection.
*/
package dscomp
