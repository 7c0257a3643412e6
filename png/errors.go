// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import "errors"

// Sentinel errors for the different structural and integrity violations a
// chunk stream can exhibit. Concrete errors wrap these, so callers should
// inspect them with errors.Is.
var (
	// ErrFormat indicates a chunk type string which is not exactly four
	// ASCII letters.
	ErrFormat = errors.New("chunk type is not four ASCII letters")

	// ErrInvalidSignature indicates input which does not start with the
	// eight-octet PNG file signature.
	ErrInvalidSignature = errors.New("invalid PNG signature")

	// ErrTruncatedInput indicates a chunk whose declared length demands
	// more octets than the input holds.
	ErrTruncatedInput = errors.New("truncated chunk input")

	// ErrCrcMismatch indicates a chunk whose stored CRC-32 disagrees with
	// the checksum computed over its type and data octets.
	ErrCrcMismatch = errors.New("chunk CRC mismatch")

	// ErrNotText indicates chunk data which was requested as text, but is
	// no valid UTF-8.
	ErrNotText = errors.New("chunk data is not valid text")

	// ErrChunkNotFound indicates a lookup or removal for a chunk type that
	// is not present in the sequence.
	ErrChunkNotFound = errors.New("no chunk with requested type")
)
