// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

package header

import "io"

// PeekMagic reads the first byte of r and seeks back to where it started,
// giving codecs a cheap, non-consuming Supports check. declaredLength is
// accepted for symmetry with the Codec.Supports signature; it is only used
// to report ok == false without reading when it is below 1.
func PeekMagic(r io.ReadSeeker, declaredLength int) (magic byte, ok bool, err error) {
	if declaredLength < 1 {
		return 0, false, nil
	}

	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false, err
	}

	var buf [1]byte
	n, err := r.Read(buf[:])
	if n == 1 {
		if _, serr := r.Seek(start, io.SeekStart); serr != nil {
			return 0, false, serr
		}
	}
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}

	return buf[0], true, nil
}
