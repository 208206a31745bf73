// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocomp
// Source: github.com/retrocomp/dscomp

// Package codec defines the uniform Codec interface every compression
// format implements and the Descriptor that identifies it. It is kept
// separate from the root dscomp package (which holds the registry and
// composite codecs) purely to break the import cycle that would otherwise
// exist between the root package and each per-format subpackage.
package codec

import "io"

// Descriptor identifies a codec: a short identifier, a human description,
// the command-line tag a caller's front-end would use to select it, and
// which directions it supports.
type Descriptor struct {
	ShortName          string
	Description        string
	Flag               string
	SupportsCompress   bool
	SupportsDecompress bool
}

// Codec is the uniform interface every compression format in dscomp
// implements: header/magic detection, streaming decompress and compress,
// and a hook for claiming command-line-style compression-option flags.
//
// Decompress may read up to declaredLength bytes from r but must never
// exceed it; it returns the number of bytes written to w. Compress writes
// the compressed form of exactly declaredLength bytes read from r and
// returns the number of bytes written to w.
type Codec interface {
	Descriptor() Descriptor

	// Supports performs a cheap, non-consuming pre-check: it reads header
	// bytes from r and restores r's position before returning (r must be
	// an io.ReadSeeker positioned where the stream starts). It returns
	// false rather than an error for an ordinary format mismatch; only an
	// I/O failure from r is propagated.
	Supports(r io.ReadSeeker, declaredLength int) (bool, error)

	Decompress(r io.Reader, declaredLength int, w io.Writer) (int, error)
	Compress(r io.Reader, declaredLength int, w io.Writer) (int, error)

	// ParseCompressionOptions lets a codec claim leading flags out of args,
	// returning how many it consumed. Composites forward to every member
	// and repeat in rounds until a round claims nothing.
	ParseCompressionOptions(args []string) (consumed int, err error)
}
