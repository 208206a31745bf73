// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package pqueue implements the small reverse-priority queue the Huffman
// tree builder needs: smallest priority first, ties broken FIFO (the item
// enqueued earlier among equal priorities is dequeued first). It is built
// on top of container/heap rather than a hand-rolled array shuffle — Go's
// heap package is the idiomatic way to express exactly this shape, and
// nothing in the retrieved corpus hand-rolls one or reaches for a
// third-party priority-queue package instead.
package pqueue

import "container/heap"

// Queue is a reverse-priority queue of (priority, value) pairs, FIFO among
// equal priorities.
type Queue[T any] struct {
	h   *items[T]
	seq uint64
}

type item[T any] struct {
	priority int
	seq      uint64
	value    T
}

type items[T any] []item[T]

func (q items[T]) Len() int { return len(q) }

func (q items[T]) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q items[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *items[T]) Push(x any) {
	*q = append(*q, x.(item[T]))
}

func (q *items[T]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	h := make(items[T], 0)
	return &Queue[T]{h: &h}
}

// Len reports the number of items currently queued.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Enqueue adds value with the given priority.
func (q *Queue[T]) Enqueue(priority int, value T) {
	heap.Push(q.h, item[T]{priority: priority, seq: q.seq, value: value})
	q.seq++
}

// Peek returns the lowest-priority item without removing it. ok is false if
// the queue is empty.
func (q *Queue[T]) Peek() (priority int, value T, ok bool) {
	if q.h.Len() == 0 {
		var zero T
		return 0, zero, false
	}
	top := (*q.h)[0]
	return top.priority, top.value, true
}

// Dequeue removes and returns the lowest-priority item. ok is false if the
// queue is empty.
func (q *Queue[T]) Dequeue() (priority int, value T, ok bool) {
	if q.h.Len() == 0 {
		var zero T
		return 0, zero, false
	}
	top := heap.Pop(q.h).(item[T])
	return top.priority, top.value, true
}
