// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package huffman

import (
	"github.com/retrocomp/dscomp/dserr"
	"github.com/retrocomp/dscomp/pqueue"
)

// maxOffset is the largest offset an internal node's byte can encode in its
// low 6 bits (spec.md §4.6's invariant: every internal node's byte must
// carry an offset <= 0x3F).
const maxOffset = 0x3F

// serializeTree lays the tree out as a flat byte table: the root occupies
// byte 0, byte 1 is unused padding (no node's children can ever resolve to
// it — the offset formula's minimum child position is 2), and every
// internal node's two children occupy the byte pair rankNodes assigned it.
// Packing by rank rather than plain breadth-first order is what keeps wide,
// near-uniform-frequency alphabets — the 8-bit symbol set can produce tree
// generations over a hundred nodes across — inside the 6-bit offset field
// whenever any assignment could fit them at all. serializeTree reports
// invalid-data only when rankNodes finds no such assignment; Compress then
// retries with buildCombTree, whose one-pair-wide generations never
// overflow regardless of alphabet width.
func serializeTree(t *tree) ([]byte, error) {
	rank, err := rankNodes(t)
	if err != nil {
		return nil, err
	}

	m := 0
	for _, r := range rank {
		if r+1 > m {
			m = r + 1
		}
	}
	buf := make([]byte, 2+2*m)

	var place func(idx int32, pos int) error
	place = func(idx int32, pos int) error {
		n := t.nodes[idx]
		if n.leaf {
			buf[pos] = n.sym
			return nil
		}

		childPos0 := 2 * (rank[idx] + 1)
		childPos1 := childPos0 + 1

		anchor := (pos &^ 1) + 2
		offset := (childPos0 - anchor) / 2
		if offset < 0 || offset > maxOffset {
			return dserr.NewInvalidData(int64(pos), "huffman tree offset %d exceeds %#x", offset, maxOffset)
		}

		b := byte(offset)
		if t.nodes[n.left].leaf {
			b |= 0x80
		}
		if t.nodes[n.right].leaf {
			b |= 0x40
		}
		buf[pos] = b

		if err := place(n.left, childPos0); err != nil {
			return err
		}
		return place(n.right, childPos1)
	}

	if err := place(t.root, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// rankNodes assigns every internal node of t a distinct non-negative rank
// (its table byte-pair index, zero-based) such that every node's rank falls
// within [parent's rank + 1, parent's rank + 1 + maxOffset] — exactly the
// window serializeTree's offset formula needs. Leaves are left at rank -1;
// they never own a byte pair of their own.
//
// A node can be assigned a rank only once its parent has one (a rank
// doubles as a release time) and must get one no later than its parent's
// rank + 1 + maxOffset (its deadline). Always assigning the next free rank
// to whichever eligible node has the earliest deadline — classic EDF
// scheduling for unit-time jobs with release times and deadlines — is
// optimal for this: if any assignment keeps every node inside its window,
// earliest-deadline-first finds one. Reaching a node past its own deadline
// therefore proves no offset-bounded layout exists for this tree shape.
// That happens for wide, near-uniform 8-bit frequency tables (for example
// all 256 symbols equally likely, 256 symbols weighted alternately 1 and
// 2, or 200 symbols equally likely), whose generations fan out too far to
// stay within 64 slots of their parents; buildCombTree is Compress's
// fallback for that case.
func rankNodes(t *tree) ([]int, error) {
	rank := make([]int, len(t.nodes))
	for i := range rank {
		rank[i] = -1
	}

	ready := pqueue.New[int32]()
	enqueueChildren := func(parent int32, parentRank int) {
		n := t.nodes[parent]
		for _, c := range [2]int32{n.left, n.right} {
			if c >= 0 && !t.nodes[c].leaf {
				ready.Enqueue(parentRank+1+maxOffset, c)
			}
		}
	}

	rank[t.root] = 0
	enqueueChildren(t.root, 0)

	next := 1
	for ready.Len() > 0 {
		deadline, idx, _ := ready.Dequeue()
		if next > deadline {
			return nil, dserr.NewInvalidData(0, "huffman: tree admits no offset-bounded layout")
		}
		rank[idx] = next
		enqueueChildren(idx, next)
		next++
	}

	return rank, nil
}

// decodeSymbol walks a serialized tree table starting at the root (always
// an internal node, since buildTree never produces a single-leaf tree),
// consuming bits from next until a leaf is reached, and returns the
// leaf's symbol byte.
func decodeSymbol(table []byte, next func() (bool, error)) (byte, error) {
	pos := 0

	for {
		if pos >= len(table) {
			return 0, dserr.NewInvalidData(int64(pos), "huffman tree position out of range")
		}
		b := table[pos]
		offset := int(b & maxOffset)
		child0Leaf := b&0x80 != 0
		child1Leaf := b&0x40 != 0

		anchor := (pos &^ 1) + 2
		child0 := anchor + 2*offset
		child1 := child0 + 1

		bit, err := next()
		if err != nil {
			return 0, err
		}

		var childPos int
		var childIsLeaf bool
		if !bit {
			childPos, childIsLeaf = child0, child0Leaf
		} else {
			childPos, childIsLeaf = child1, child1Leaf
		}

		if childPos >= len(table) {
			return 0, dserr.NewInvalidData(int64(childPos), "huffman tree child position out of range")
		}
		if childIsLeaf {
			return table[childPos], nil
		}
		pos = childPos
	}
}
