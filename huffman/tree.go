// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package huffman implements the GBA/NDS Huffman codecs (magic 0x24 for a
// 4-bit symbol alphabet, 0x28 for 8-bit): a canonical-ish binary tree
// serialized as a flat offset-linked byte table, followed by a 32-bit-word
// MSB-first bitstream of codewords.
package huffman

import (
	"sort"

	"github.com/retrocomp/dscomp/pqueue"
)

// node is one element of the tree arena. Indices into the owning []node
// slice serve as node IDs; -1 means "no child" (only ever true for leaves).
type node struct {
	left, right int32
	leaf        bool
	sym         byte
	freq        int
	depth       uint8
}

// tree is a built Huffman tree: an arena plus the index of its root.
type tree struct {
	nodes []node
	root  int32
}

func (t *tree) newLeaf(sym byte, freq int) int32 {
	t.nodes = append(t.nodes, node{left: -1, right: -1, leaf: true, sym: sym, freq: freq})
	return int32(len(t.nodes) - 1)
}

func (t *tree) newInternal(left, right int32, freq int) int32 {
	t.nodes = append(t.nodes, node{left: left, right: right, freq: freq})
	return int32(len(t.nodes) - 1)
}

// buildTree constructs a Huffman tree over the given per-symbol frequency
// table using two reverse-priority queues, one for unpaired leaves and one
// for combined internal nodes, per the algorithm spec.md §4.6 describes:
// repeatedly pop the two globally-smallest-priority nodes (a tie between a
// leaf and an internal node favors the leaf, producing deeper leaves last),
// combine them into a new internal node, and push it onto the internal
// queue. If no symbol has a nonzero frequency, a zero-frequency leaf for
// symbol 0 stands in; if only one leaf results, a synthetic zero-frequency
// sibling leaf is added so the tree always has two children at every
// internal node.
func buildTree(freq []int) *tree {
	t := &tree{nodes: make([]node, 0, 2*len(freq))}

	type queued struct {
		idx  int32
		freq int
	}
	leaves := pqueue.New[queued]()
	internals := pqueue.New[queued]()

	present := 0
	for sym, f := range freq {
		if f > 0 {
			idx := t.newLeaf(byte(sym), f)
			leaves.Enqueue(f, queued{idx: idx, freq: f})
			present++
		}
	}

	if present == 0 {
		idx := t.newLeaf(0, 0)
		leaves.Enqueue(0, queued{idx: idx, freq: 0})
		present++
	}
	if present == 1 {
		// Find a symbol distinct from the one real leaf to pair it with.
		realSym := t.nodes[0].sym
		dummySym := byte(0)
		if realSym == 0 {
			dummySym = 1
		}
		idx := t.newLeaf(dummySym, 0)
		leaves.Enqueue(0, queued{idx: idx, freq: 0})
	}

	popSmallest := func() queued {
		lp, lv, lok := leaves.Peek()
		ip, iv, iok := internals.Peek()
		switch {
		case lok && (!iok || lp <= ip):
			leaves.Dequeue()
			return lv
		case iok:
			internals.Dequeue()
			return iv
		default:
			panic("dscomp/huffman: both priority queues empty")
		}
	}

	for leaves.Len()+internals.Len() > 1 {
		a := popSmallest()
		b := popSmallest()
		idx := t.newInternal(a.idx, b.idx, a.freq+b.freq)
		internals.Enqueue(a.freq+b.freq, queued{idx: idx, freq: a.freq + b.freq})
	}

	if internals.Len() == 1 {
		_, v, _ := internals.Dequeue()
		t.root = v.idx
	} else {
		_, v, _ := leaves.Dequeue()
		t.root = v.idx
	}

	t.assignDepths()
	return t
}

// buildCombTree constructs a width-bounded fallback tree: a left-leaning
// chain where, at every depth, exactly one internal node is still pending
// expansion, in ascending-frequency fold order (so the most frequent
// symbol lands at depth 1, the least frequent at maximum depth). Unlike
// buildTree's canonical construction, this shape's breadth-first
// serialization offset is always 0 regardless of alphabet width, since
// each level has exactly one pair awaiting allocation — see serializeTree
// and Compress's fallback. It sacrifices code-length optimality for
// alphabets buildTree's layout can't serialize.
func buildCombTree(freq []int) *tree {
	t := &tree{nodes: make([]node, 0, 2*len(freq))}

	type leafFreq struct {
		idx  int32
		freq int
	}
	var leaves []leafFreq

	present := 0
	for sym, f := range freq {
		if f > 0 {
			idx := t.newLeaf(byte(sym), f)
			leaves = append(leaves, leafFreq{idx: idx, freq: f})
			present++
		}
	}
	if present == 0 {
		idx := t.newLeaf(0, 0)
		leaves = append(leaves, leafFreq{idx: idx, freq: 0})
		present++
	}
	if present == 1 {
		realSym := t.nodes[0].sym
		dummySym := byte(0)
		if realSym == 0 {
			dummySym = 1
		}
		idx := t.newLeaf(dummySym, 0)
		leaves = append(leaves, leafFreq{idx: idx, freq: 0})
	}

	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].freq != leaves[j].freq {
			return leaves[i].freq < leaves[j].freq
		}
		return t.nodes[leaves[i].idx].sym < t.nodes[leaves[j].idx].sym
	})

	acc := leaves[0].idx
	accFreq := leaves[0].freq
	for i := 1; i < len(leaves); i++ {
		acc = t.newInternal(acc, leaves[i].idx, accFreq+leaves[i].freq)
		accFreq += leaves[i].freq
	}
	t.root = acc

	t.assignDepths()
	return t
}

// assignDepths walks the tree top-down, setting every node's depth (root
// depth 0), used when computing codeword lengths for the bitstream.
func (t *tree) assignDepths() {
	var walk func(idx int32, depth uint8)
	walk = func(idx int32, depth uint8) {
		if idx < 0 {
			return
		}
		t.nodes[idx].depth = depth
		n := t.nodes[idx]
		if !n.leaf {
			walk(n.left, depth+1)
			walk(n.right, depth+1)
		}
	}
	walk(t.root, 0)
}

// codewords returns, for every symbol with a leaf in the tree, its bit
// sequence from root to leaf (false = left, true = right), MSB (root bit)
// first.
func (t *tree) codewords() map[byte][]bool {
	out := make(map[byte][]bool)
	var walk func(idx int32, path []bool)
	walk = func(idx int32, path []bool) {
		n := t.nodes[idx]
		if n.leaf {
			cp := make([]bool, len(path))
			copy(cp, path)
			out[n.sym] = cp
			return
		}
		left := append(append([]bool{}, path...), false)
		right := append(append([]bool{}, path...), true)
		walk(n.left, left)
		walk(n.right, right)
	}
	walk(t.root, nil)
	return out
}
