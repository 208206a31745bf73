// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package lzcore is the sliding-window match finder and greedy/optimal
// selection shared by LZ10 and LZ11. It generalizes the teacher's
// hash-chain sliding-window dictionary (sliding_window.go /
// compress_1x_999.go in WoozyMasta-lzo) down to the fixed 4096-byte window
// and small, codec-supplied cost model spec.md describes, instead of
// carrying LZO1X's M1-M4 offset classes and lazy-insert heuristics, which
// have no equivalent in the GBA/NDS wire formats.
package lzcore

const (
	hashBits = 15
	hashSize = 1 << hashBits
)

func hash3(b0, b1, b2 byte) uint32 {
	v := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
	return (v * 2654435761) >> (32 - hashBits)
}

// Finder is a hash-chain match finder over a fully-buffered plaintext. It
// only ever reports matches with displacement within windowSize, consistent
// with the §3 sliding-window invariant (1 <= D <= min(windowSize,
// written_so_far)).
type Finder struct {
	data       []byte
	windowSize int
	minLen     int
	maxLen     int
	maxChain   int
	head       []int32
	prev       []int32
}

// NewFinder builds a Finder over data. minLen/maxLen bound the match
// lengths it will report; windowSize bounds displacement; maxChain caps how
// many hash-chain candidates are inspected per position (a search-effort
// knob, not a correctness one: a smaller value may miss a longer match but
// never reports an invalid one).
func NewFinder(data []byte, windowSize, minLen, maxLen, maxChain int) *Finder {
	f := &Finder{
		data:       data,
		windowSize: windowSize,
		minLen:     minLen,
		maxLen:     maxLen,
		maxChain:   maxChain,
		head:       make([]int32, hashSize),
		prev:       make([]int32, len(data)),
	}
	for i := range f.head {
		f.head[i] = -1
	}
	for i := range f.prev {
		f.prev[i] = -1
	}
	return f
}

// Insert records pos in the hash chain so later calls to Best can match
// against it. Callers must insert position i only after computing the
// match at i (the window only contains already-written data).
func (f *Finder) Insert(pos int) {
	if pos+3 > len(f.data) {
		return
	}
	h := hash3(f.data[pos], f.data[pos+1], f.data[pos+2])
	f.prev[pos] = f.head[h]
	f.head[h] = int32(pos)
}

// Best returns the longest match at pos (length 0 if none qualifies). Among
// matches of the same (longest) length it returns the smallest
// displacement, because the hash chain is walked newest-to-oldest and the
// first length to beat the running best therefore already has the smallest
// displacement for that length.
func (f *Finder) Best(pos int) (length int, disp int) {
	remaining := len(f.data) - pos
	if remaining < f.minLen || pos+3 > len(f.data) {
		return 0, 0
	}

	limit := f.maxLen
	if remaining < limit {
		limit = remaining
	}

	h := hash3(f.data[pos], f.data[pos+1], f.data[pos+2])
	cand := f.head[h]
	chain := 0
	bestLen, bestDisp := 0, 0

	for cand >= 0 && chain < f.maxChain {
		cpos := int(cand)
		d := pos - cpos
		if d > f.windowSize {
			break
		}

		l := matchLen(f.data, pos, cpos, limit)
		if l > bestLen {
			bestLen = l
			bestDisp = d
			if bestLen >= limit {
				break
			}
		}

		cand = f.prev[cpos]
		chain++
	}

	if bestLen < f.minLen {
		return 0, 0
	}
	return bestLen, bestDisp
}

// matchLen compares data[cpos:] against data[pos:] up to maxLen bytes.
// Because cpos < pos, reading data[cpos+l] for cpos+l >= pos is exactly the
// run-of-pattern semantics a back-reference with length > displacement
// produces: the source position has "caught up" to bytes the match itself
// would have just written, and since data already holds the true plaintext
// at those positions, comparing against it directly finds the correct
// maximal pattern-run length.
func matchLen(data []byte, pos, cpos, maxLen int) int {
	l := 0
	for l < maxLen && pos+l < len(data) {
		if data[cpos+l] != data[pos+l] {
			break
		}
		l++
	}
	return l
}
