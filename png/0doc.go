// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package png implements the PNG container format on the chunk level: typed,
// length-prefixed, CRC-32 checksummed records between a fixed eight-octet
// file signature and the end of the stream.
//
// The package does not decode pixel data. It parses, validates, rearranges
// and re-serializes chunk sequences, which is all that is needed to hide,
// read and remove application-defined data inside an otherwise valid image.
// All operations work on in-memory buffers; file handling is left to the
// caller.
package png
