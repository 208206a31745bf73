// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package lzcore

// Tier describes one wire-level match-encoding form: the range of match
// lengths it can express and its fixed bit cost (the header/spec's §4.2/§4.3
// 17-bit LZ10 match, and LZ11's 17/25/33-bit three-form tiers). Tiers must
// be supplied in ascending MinLen order.
type Tier struct {
	MinLen   int
	MaxLen   int
	CostBits int
}

// Op is one emitted operation: either a literal byte or a back-reference of
// Length bytes at displacement Disp (1-based, §3: 1 <= Disp <=
// written_so_far).
type Op struct {
	Literal bool
	Byte    byte
	Length  int
	Disp    int
}

// GreedyOptions configures Greedy.
type GreedyOptions struct {
	WindowSize int
	MinLen     int
	MaxLen     int
	MaxChain   int
}

// Greedy walks data left to right, at each position taking the longest
// available match (if it meets minLen) or else a literal, exactly as the
// teacher's fast encoder (compress_1x_fast.go) does for LZO1X-1.
func Greedy(data []byte, opts GreedyOptions) []Op {
	f := NewFinder(data, opts.WindowSize, opts.MinLen, opts.MaxLen, opts.MaxChain)
	ops := make([]Op, 0, len(data))

	i := 0
	for i < len(data) {
		length, disp := f.Best(i)
		if length >= opts.MinLen {
			ops = append(ops, Op{Length: length, Disp: disp})
			for j := 0; j < length; j++ {
				f.Insert(i + j)
			}
			i += length
		} else {
			ops = append(ops, Op{Literal: true, Byte: data[i]})
			f.Insert(i)
			i++
		}
	}

	return ops
}

// OptimalOptions configures Optimal, the DP ("-opt") mode.
type OptimalOptions struct {
	WindowSize      int
	MinLen          int
	MaxChain        int
	LiteralCostBits int
	Tiers           []Tier // ascending MinLen; MaxLen of the last entry bounds the matcher.
}

// Optimal runs the suffix-cost dynamic program spec.md §4.2/§4.3 describe:
// dp[i] is the lowest bit cost of encoding data[i:] found among the
// candidates below, built backward from dp[len(data)] = 0. At each position
// the candidates are the literal plus, per tier, one match: the longest
// length Finder reported, capped to the tier's MaxLen. Shorter lengths
// within a tier are not tried, so a split where a shorter match lets the
// next position start a cheaper match is missed (for "SUVaPQRSbPQRSUVc"
// the result costs 125 bits where 124 is possible). The greedy path is
// always among the candidates, so the result never costs more bits than
// Greedy's. Ties prefer more bytes consumed (a match over a literal, a
// later tier over an earlier one); for equal match lengths Finder already
// returns the smallest displacement.
func Optimal(data []byte, opts OptimalOptions) []Op {
	n := len(data)
	if n == 0 {
		return nil
	}

	maxLen := opts.MinLen
	for _, t := range opts.Tiers {
		if t.MaxLen > maxLen {
			maxLen = t.MaxLen
		}
	}

	f := NewFinder(data, opts.WindowSize, opts.MinLen, maxLen, opts.MaxChain)
	bestLen := make([]int, n)
	bestDisp := make([]int, n)
	for i := 0; i < n; i++ {
		l, d := f.Best(i)
		bestLen[i] = l
		bestDisp[i] = d
		f.Insert(i)
	}

	dp := make([]int, n+1)
	type choice struct {
		isMatch bool
		length  int
	}
	pick := make([]choice, n)

	for i := n - 1; i >= 0; i-- {
		bestCost := opts.LiteralCostBits + dp[i+1]
		bestChoice := choice{isMatch: false}

		if bestLen[i] >= opts.MinLen {
			for _, t := range opts.Tiers {
				if bestLen[i] < t.MinLen {
					continue
				}
				l := bestLen[i]
				if l > t.MaxLen {
					l = t.MaxLen
				}
				if l < t.MinLen {
					continue
				}
				cost := t.CostBits + dp[i+l]
				if cost <= bestCost {
					bestCost = cost
					bestChoice = choice{isMatch: true, length: l}
				}
			}
		}

		dp[i] = bestCost
		pick[i] = bestChoice
	}

	ops := make([]Op, 0, n)
	i := 0
	for i < n {
		c := pick[i]
		if c.isMatch {
			ops = append(ops, Op{Length: c.length, Disp: bestDisp[i]})
			i += c.length
		} else {
			ops = append(ops, Op{Literal: true, Byte: data[i]})
			i++
		}
	}

	return ops
}
