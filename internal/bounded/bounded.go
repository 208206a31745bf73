// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package bounded wraps an io.Reader with the declared-length input budget
// every Codec.Decompress call is given, distinguishing the two ways a
// decode can run out of input: the underlying source ending before the
// caller's declared budget was reached (stream-too-short), versus the
// budget itself being exhausted before the format's own header-declared
// output size was satisfied (not-enough-data, left for the caller to
// report with the output byte count it has in hand).
package bounded

import (
	"errors"
	"io"
)

// ErrLimitReached is returned by ReadByte once exactly Limit bytes have
// been consumed from the wrapped reader. Callers use this to distinguish
// "ran out of declared budget" from "underlying source ended early".
var ErrLimitReached = errors.New("dscomp/bounded: declared length limit reached")

// Reader bounds reads to Limit bytes and turns an early io.EOF from the
// wrapped reader into dserr's stream-too-short condition (surfaced to the
// caller as ErrUnderrun here, which callers map to dserr.ErrStreamTooShort).
type Reader struct {
	r        io.Reader
	limit    int
	consumed int
}

// ErrUnderrun is returned when the wrapped reader ends before Limit bytes
// were consumed.
var ErrUnderrun = errors.New("dscomp/bounded: underlying reader ended before declared length")

// New wraps r with a budget of limit bytes.
func New(r io.Reader, limit int) *Reader {
	return &Reader{r: r, limit: limit}
}

// Consumed reports how many bytes have been read so far.
func (b *Reader) Consumed() int { return b.consumed }

// Remaining reports how many bytes may still be read before ErrLimitReached.
func (b *Reader) Remaining() int { return b.limit - b.consumed }

// ReadByte reads one byte, returning ErrLimitReached if the budget is
// already exhausted, or ErrUnderrun if the wrapped reader hit io.EOF while
// budget remained.
func (b *Reader) ReadByte() (byte, error) {
	if b.consumed >= b.limit {
		return 0, ErrLimitReached
	}

	var buf [1]byte
	n, err := b.r.Read(buf[:])
	if n == 1 {
		b.consumed++
		return buf[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	if errors.Is(err, io.EOF) {
		return 0, ErrUnderrun
	}
	return 0, err
}

// Read implements io.Reader over the same budget/translation rules as
// ReadByte, for callers that want to read multiple bytes at once (e.g. a
// 4-byte header). When len(p) exceeds the remaining budget, Read still
// reads as many bytes as the budget allows and reports them in n, but
// always returns ErrLimitReached in that case — it never reports success
// for fewer bytes than the caller asked for, so a caller that ignores the
// returned error can never mistake a truncated read for a complete one.
func (b *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	remaining := b.Remaining()
	if remaining <= 0 {
		return 0, ErrLimitReached
	}

	want := p
	truncated := len(p) > remaining
	if truncated {
		want = p[:remaining]
	}

	n, err := io.ReadFull(b.r, want)
	b.consumed += n
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, ErrUnderrun
		}
		return n, err
	}
	if truncated {
		return n, ErrLimitReached
	}
	return n, nil
}
