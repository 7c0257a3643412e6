// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"unicode/utf8"
)

// crcTable is the CRC-32 lookup table for the IEEE polynomial, the same
// checksum zlib and the PNG format use.
var crcTable = crc32.MakeTable(crc32.IEEE)

// Chunk is one record within a PNG stream: a four-octet big-endian data
// length, a ChunkType, the data octets and a CRC-32 over type and data.
//
// A Chunk exclusively owns its data and is immutable after construction.
// Length and CRC are derived from type and data, so they cannot
// desynchronize from the octets they describe.
type Chunk struct {
	chunkType ChunkType
	data      []byte
}

// NewChunk creates a Chunk for a ChunkType and data octets. The data is
// copied. The ChunkType is not required to satisfy IsValid, matching the
// format's tolerance of unknown types.
func NewChunk(chunkType ChunkType, data []byte) Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)

	return Chunk{
		chunkType: chunkType,
		data:      owned,
	}
}

// Length returns the number of data octets.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns this Chunk's ChunkType.
func (c Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns a copy of the data octets.
func (c Chunk) Data() []byte {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return data
}

// CRC returns the CRC-32 checksum over the type and data octets.
func (c Chunk) CRC() uint32 {
	h := crc32.New(crcTable)
	_, _ = h.Write(c.chunkType[:])
	_, _ = h.Write(c.data)
	return h.Sum32()
}

// Text returns the data octets as a string and errors with ErrNotText if
// they are no valid UTF-8.
func (c Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrNotText
	}
	return string(c.data), nil
}

func (c Chunk) String() string {
	return fmt.Sprintf("Chunk(Type=%v, Length=%d, CRC=%#08x)",
		c.chunkType, c.Length(), c.CRC())
}

// Marshal writes this Chunk's wire representation: length, type, data, CRC.
func (c Chunk) Marshal(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, c.Length()); err != nil {
		return err
	}

	if n, err := w.Write(c.chunkType[:]); err != nil {
		return err
	} else if n != len(c.chunkType) {
		return fmt.Errorf("Chunk type: wrote %d octets instead of %d", n, len(c.chunkType))
	}

	if n, err := w.Write(c.data); err != nil {
		return err
	} else if n != len(c.data) {
		return fmt.Errorf("Chunk data: wrote %d octets instead of %d", n, len(c.data))
	}

	return binary.Write(w, binary.BigEndian, c.CRC())
}

// Bytes returns this Chunk's wire representation as a new octet slice.
func (c Chunk) Bytes() []byte {
	var buf bytes.Buffer
	_ = c.Marshal(&buf)
	return buf.Bytes()
}

// Unmarshal reads a Chunk from its wire representation. It errors with
// ErrTruncatedInput if the reader holds fewer octets than the declared
// length demands and with ErrCrcMismatch if the stored checksum disagrees
// with the one computed over type and data. A failed Unmarshal leaves no
// partially decoded Chunk behind.
func (c *Chunk) Unmarshal(r io.Reader) error {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return fmt.Errorf("%w: reading length and type: %v", ErrTruncatedInput, err)
	}

	length := binary.BigEndian.Uint32(head[:4])

	var chunkType ChunkType
	copy(chunkType[:], head[4:])

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return fmt.Errorf("%w: expected %d data octets: %v", ErrTruncatedInput, length, err)
	}

	var crcBuf [4]byte
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		return fmt.Errorf("%w: reading CRC: %v", ErrTruncatedInput, err)
	}
	storedCrc := binary.BigEndian.Uint32(crcBuf[:])

	chunk := Chunk{
		chunkType: chunkType,
		data:      data,
	}

	if computed := chunk.CRC(); computed != storedCrc {
		return fmt.Errorf("%w: computed %#08x, stored %#08x", ErrCrcMismatch, computed, storedCrc)
	}

	*c = chunk
	return nil
}

// DecodeChunk reads one Chunk from the beginning of an octet slice.
func DecodeChunk(data []byte) (c Chunk, err error) {
	err = c.Unmarshal(bytes.NewReader(data))
	return
}
