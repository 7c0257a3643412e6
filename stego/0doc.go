// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package stego maps user intents onto chunk-level operations: embedding a
// payload under a chunk type, extracting it, scrubbing it from the image
// and taking an inventory of all chunks. Payloads may be XZ-compressed
// before embedding; extraction recognizes and undoes this transparently.
//
// Like package png, this package is pure: it works on in-memory images and
// performs neither I/O nor logging.
package stego
