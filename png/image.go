// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Signature is the fixed eight-octet sequence opening every PNG file.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Image is a full PNG file on the chunk level: the file signature followed
// by an ordered sequence of Chunks. The order is kept exactly as decoded or
// built, so a valid input round-trips octet for octet.
//
// An Image exclusively owns its chunk sequence. Mutations work on the
// in-memory sequence only; serialization through Marshal is the single way
// to produce file octets.
type Image struct {
	chunks []Chunk
}

// NewImage creates an Image from a sequence of Chunks, kept in the given
// order.
func NewImage(chunks ...Chunk) *Image {
	img := &Image{
		chunks: make([]Chunk, len(chunks)),
	}
	copy(img.chunks, chunks)

	return img
}

// DecodeImage parses a complete PNG file from an octet buffer. It errors
// with ErrInvalidSignature if the buffer does not start with the file
// signature and propagates every chunk-level decode error. Decoding is
// all-or-nothing; no partially decoded Image is returned.
func DecodeImage(data []byte) (*Image, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, fmt.Errorf("%w: input starts with %x", ErrInvalidSignature, data[:min(len(data), len(Signature))])
	}

	var (
		img = &Image{}
		r   = bytes.NewReader(data[len(Signature):])
	)

	for r.Len() > 0 {
		var chunk Chunk
		if err := chunk.Unmarshal(r); err != nil {
			return nil, err
		}

		img.chunks = append(img.chunks, chunk)
	}

	return img, nil
}

// UnmarshalImage reads a complete PNG file from a reader.
func UnmarshalImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return DecodeImage(data)
}

// AppendChunk adds a Chunk to the end of the sequence. Chunk types may
// repeat; no uniqueness is enforced.
func (img *Image) AppendChunk(c Chunk) {
	img.chunks = append(img.chunks, c)
}

// RemoveFirstChunkByType removes and returns the first Chunk whose type
// equals the given type string. It errors with ErrChunkNotFound and leaves
// the sequence unmodified if no such Chunk exists. The relative order of
// the remaining Chunks is preserved.
func (img *Image) RemoveFirstChunkByType(chunkType string) (Chunk, error) {
	for i, c := range img.chunks {
		if c.Type().String() == chunkType {
			img.chunks = append(img.chunks[:i], img.chunks[i+1:]...)
			return c, nil
		}
	}

	return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, chunkType)
}

// ChunkByType returns the first Chunk whose type equals the given type
// string, or nil if no such Chunk exists.
func (img *Image) ChunkByType(chunkType string) *Chunk {
	for i := range img.chunks {
		if img.chunks[i].Type().String() == chunkType {
			return &img.chunks[i]
		}
	}

	return nil
}

// Chunks returns the chunk sequence in its current order.
func (img *Image) Chunks() []Chunk {
	chunks := make([]Chunk, len(img.chunks))
	copy(chunks, img.chunks)
	return chunks
}

// Marshal writes the file signature followed by every Chunk's wire
// representation in sequence order.
func (img *Image) Marshal(w io.Writer) error {
	if n, err := w.Write(Signature[:]); err != nil {
		return err
	} else if n != len(Signature) {
		return fmt.Errorf("Signature: wrote %d octets instead of %d", n, len(Signature))
	}

	for _, c := range img.chunks {
		if err := c.Marshal(w); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the complete file octets as a new slice.
func (img *Image) Bytes() []byte {
	var buf bytes.Buffer
	_ = img.Marshal(&buf)
	return buf.Bytes()
}

func (img *Image) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Image(%d chunks", len(img.chunks))

	for _, c := range img.chunks {
		fmt.Fprintf(&b, ", %v", c.Type())
	}
	b.WriteString(")")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
