// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package stego

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/pngstash/pngstash/png"
)

// xzMagic is the stream header every XZ container starts with. Extract uses
// it to recognize compressed payloads.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// Embed appends a chunk of the given type carrying the payload. With
// compress set, the payload is wrapped in an XZ stream first.
func Embed(img *png.Image, chunkType string, payload []byte, compress bool) error {
	ct, err := png.ParseChunkType(chunkType)
	if err != nil {
		return err
	}

	if compress {
		var buf bytes.Buffer
		if xzW, xzErr := xz.NewWriter(&buf); xzErr != nil {
			return xzErr
		} else if _, err := xzW.Write(payload); err != nil {
			return err
		} else if err := xzW.Close(); err != nil {
			return err
		}

		payload = buf.Bytes()
	}

	img.AppendChunk(png.NewChunk(ct, payload))
	return nil
}

// Extract returns the payload of the first chunk with the given type,
// decompressing it if Embed compressed it. Without a matching chunk,
// png.ErrChunkNotFound is returned.
func Extract(img *png.Image, chunkType string) ([]byte, error) {
	c := img.ChunkByType(chunkType)
	if c == nil {
		return nil, png.ErrChunkNotFound
	}

	data := c.Data()
	if !bytes.HasPrefix(data, xzMagic) {
		return data, nil
	}

	xzR, err := xz.NewReader(bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(xzR)
}

// Scrub removes the first chunk with the given type from the image and
// returns it.
func Scrub(img *png.Image, chunkType string) (png.Chunk, error) {
	return img.RemoveFirstChunkByType(chunkType)
}
