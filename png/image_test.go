// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

// testImage builds a minimal image: an IHDR-like critical chunk and an
// empty IEND chunk.
func testImage(t *testing.T) *Image {
	t.Helper()

	ihdr := NewChunk(TypeIHDR, []byte{
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x00, 0x00, 0x00, 0x00,
	})
	iend := NewChunk(TypeIEND, nil)

	return NewImage(ihdr, iend)
}

func TestImageDecodeInvalidSignature(t *testing.T) {
	tests := [][]byte{
		{},
		{0x89},
		{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A},
		{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0B},
		{0x13, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x23, 0x42},
		[]byte("definitely not a PNG file"),
	}

	for _, test := range tests {
		if _, err := DecodeImage(test); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("%x: expected ErrInvalidSignature, got %v", test, err)
		}
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := testImage(t)

	img2, err := DecodeImage(img.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(img.Chunks(), img2.Chunks()) {
		t.Fatalf("Images do not match, expected %v and got %v", img, img2)
	}
	if !bytes.Equal(img.Bytes(), img2.Bytes()) {
		t.Fatal("Serializations do not match")
	}
}

func TestImageDecodePropagatesChunkErrors(t *testing.T) {
	img := testImage(t)
	data := img.Bytes()

	// Corrupt one octet within the first chunk's data region.
	corrupted := make([]byte, len(data))
	copy(corrupted, data)
	corrupted[8+8+2] ^= 0x01

	if _, err := DecodeImage(corrupted); !errors.Is(err, ErrCrcMismatch) {
		t.Fatalf("Expected ErrCrcMismatch, got %v", err)
	}

	// Drop the last octets, truncating the final chunk.
	if _, err := DecodeImage(data[:len(data)-2]); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("Expected ErrTruncatedInput, got %v", err)
	}
}

func TestImageAppendRemove(t *testing.T) {
	img := testImage(t)

	ct, err := ParseChunkType("ruSt")
	if err != nil {
		t.Fatal(err)
	}
	chunk := NewChunk(ct, []byte("hidden message"))

	img.AppendChunk(chunk)

	if found := img.ChunkByType("ruSt"); found == nil {
		t.Fatal("Appended chunk was not found")
	} else if !reflect.DeepEqual(*found, chunk) {
		t.Fatalf("Chunks do not match, expected %v and got %v", chunk, *found)
	}

	removed, err := img.RemoveFirstChunkByType("ruSt")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(removed, chunk) {
		t.Fatalf("Removed chunk does not match, expected %v and got %v", chunk, removed)
	}

	if img.ChunkByType("ruSt") != nil {
		t.Fatal("Chunk is still present after removal")
	}
	if l := len(img.Chunks()); l != 2 {
		t.Fatalf("Expected 2 chunks, got %d", l)
	}
}

func TestImageRemoveNotFound(t *testing.T) {
	img := testImage(t)
	before := img.Bytes()

	if _, err := img.RemoveFirstChunkByType("ruSt"); !errors.Is(err, ErrChunkNotFound) {
		t.Fatalf("Expected ErrChunkNotFound, got %v", err)
	}

	if !bytes.Equal(before, img.Bytes()) {
		t.Fatal("Sequence was modified by a failed removal")
	}
}

func TestImageRemoveFirstOfMultiple(t *testing.T) {
	img := testImage(t)

	ct, _ := ParseChunkType("ruSt")
	first := NewChunk(ct, []byte("first"))
	second := NewChunk(ct, []byte("second"))

	img.AppendChunk(first)
	img.AppendChunk(second)

	if removed, err := img.RemoveFirstChunkByType("ruSt"); err != nil {
		t.Fatal(err)
	} else if !reflect.DeepEqual(removed, first) {
		t.Fatalf("Expected the first match, got %v", removed)
	}

	if found := img.ChunkByType("ruSt"); found == nil {
		t.Fatal("Second chunk is gone as well")
	} else if text, _ := found.Text(); text != "second" {
		t.Fatalf("Remaining chunk holds %q", text)
	}
}

func TestImageHiddenMessageScenario(t *testing.T) {
	img := testImage(t)

	data := img.Bytes()
	decoded, err := DecodeImage(data)
	if err != nil {
		t.Fatal(err)
	}

	ct, err := ParseChunkType("ruSt")
	if err != nil {
		t.Fatal(err)
	}
	decoded.AppendChunk(NewChunk(ct, []byte("hidden message")))

	decoded2, err := DecodeImage(decoded.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	found := decoded2.ChunkByType("ruSt")
	if found == nil {
		t.Fatal("Hidden chunk was not found after the round trip")
	}
	if text, textErr := found.Text(); textErr != nil {
		t.Fatal(textErr)
	} else if text != "hidden message" {
		t.Fatalf("Hidden message is %q", text)
	}

	chunks := decoded2.Chunks()
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0].Type() != TypeIHDR || chunks[1].Type() != TypeIEND || chunks[2].Type() != ct {
		t.Fatalf("Chunk order is wrong: %v", decoded2)
	}
}

func TestImageCheckValid(t *testing.T) {
	img := testImage(t)
	if err := img.CheckValid(); err != nil {
		t.Fatalf("Minimal image has findings: %v", err)
	}

	// A chunk appended after IEND and an invalid reserved bit are findings,
	// but neither decoding nor serialization rejects them.
	img.AppendChunk(NewChunk(NewChunkType([4]byte{'R', 'u', 's', 't'}), []byte("x")))

	if err := img.CheckValid(); err == nil {
		t.Fatal("Expected findings, got none")
	}

	if _, err := DecodeImage(img.Bytes()); err != nil {
		t.Fatal(err)
	}
}
