// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package dserr defines the error taxonomy shared by every codec in dscomp:
// invalid data, not-enough-data, stream-too-short, too-much-input (soft,
// recoverable) and input-too-large, each carrying the positional context a
// caller needs to diagnose a bad game file.
package dserr

import (
	"errors"
	"fmt"
)

// ErrStreamTooShort is returned when the underlying input source hit EOF
// before the declared length was reached. Unlike InvalidDataError, no
// offset is attached: the failure is the stream itself, not its contents.
var ErrStreamTooShort = errors.New("dscomp: stream too short")

// ErrInputTooLarge is returned by an encoder when declaredLength cannot be
// represented in the format's header length field (24 bits, or 32 where a
// format defines an overflow form). The shared header writer returns it for
// lengths above 32 bits.
var ErrInputTooLarge = errors.New("dscomp: input too large for header length field")

// InvalidDataError reports a format rule violation: bad magic, an
// impossible back-reference displacement, a Huffman tree walk past its
// declared bound, and so on. Offset is the byte position in the input
// stream where the violation was detected.
type InvalidDataError struct {
	Offset int64
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("dscomp: invalid data at offset 0x%x: %s", e.Offset, e.Reason)
}

// NewInvalidData builds an InvalidDataError with the given offset and
// formatted reason.
func NewInvalidData(offset int64, format string, args ...any) error {
	return &InvalidDataError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// NotEnoughDataError reports that the declared input length was exhausted
// mid-stream: the codec ran out of input before producing Expected bytes of
// output.
type NotEnoughDataError struct {
	Written  int
	Expected int
}

func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("dscomp: not enough data: wrote %d of %d expected bytes", e.Written, e.Expected)
}

// NewNotEnoughData builds a NotEnoughDataError.
func NewNotEnoughData(written, expected int) error {
	return &NotEnoughDataError{Written: written, Expected: expected}
}

// TooMuchInputError is a soft, recoverable signal: decompression completed
// successfully (the output is valid) but declaredLength left Extra bytes
// unread. Every unread byte counts toward Extra, including any 4-byte
// alignment padding after the stream; padding is not skipped. Callers may
// treat this as a warning rather than a failure.
type TooMuchInputError struct {
	Extra int
}

func (e *TooMuchInputError) Error() string {
	return fmt.Sprintf("dscomp: too much input: %d unread trailing byte(s)", e.Extra)
}

// NewTooMuchInput builds a TooMuchInputError.
func NewTooMuchInput(extra int) error {
	return &TooMuchInputError{Extra: extra}
}

// IsRecoverable reports whether err is a soft failure (too-much-input) that
// a caller may choose to treat as success.
func IsRecoverable(err error) bool {
	var tmi *TooMuchInputError
	return errors.As(err, &tmi)
}
