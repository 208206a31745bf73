// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package bitio

// LSBFlagReader hands out LZ-Overlay-style control-byte flags, least
// significant bit first, one flag per upcoming reverse-direction block.
// LZ-Overlay's whole stream is read back-to-front, so its flag bits are
// consumed in the opposite bit order from LZ10/LZ11/Huffman.
type LSBFlagReader struct {
	next     func() (byte, error)
	flags    byte
	bitsLeft int
}

// NewLSBFlagReader builds an LSBFlagReader pulling flag bytes from next.
func NewLSBFlagReader(next func() (byte, error)) *LSBFlagReader {
	return &LSBFlagReader{next: next}
}

// Next returns the next flag bit, least significant bit of the current flag
// byte first.
func (f *LSBFlagReader) Next() (bool, error) {
	if f.bitsLeft == 0 {
		b, err := f.next()
		if err != nil {
			return false, err
		}
		f.flags = b
		f.bitsLeft = 8
	}
	bit := f.flags&1 != 0
	f.flags >>= 1
	f.bitsLeft--
	return bit, nil
}
