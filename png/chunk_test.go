// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

const testMessage = "This is where your secret message will be!"

// testMessageCrc is the CRC-32 over "RuSt" ++ testMessage.
const testMessageCrc uint32 = 2882656334

// testChunkBytes builds the wire representation for a chunk by hand.
func testChunkBytes(length uint32, chunkType, data string, crc uint32) []byte {
	var buf bytes.Buffer

	_ = binary.Write(&buf, binary.BigEndian, length)
	buf.WriteString(chunkType)
	buf.WriteString(data)
	_ = binary.Write(&buf, binary.BigEndian, crc)

	return buf.Bytes()
}

func TestNewChunk(t *testing.T) {
	ct, err := ParseChunkType("RuSt")
	if err != nil {
		t.Fatal(err)
	}

	chunk := NewChunk(ct, []byte(testMessage))

	if chunk.Length() != uint32(len(testMessage)) {
		t.Fatalf("Length is %d, expected %d", chunk.Length(), len(testMessage))
	}
	if chunk.CRC() != testMessageCrc {
		t.Fatalf("CRC is %d, expected %d", chunk.CRC(), testMessageCrc)
	}
	if chunk.Type() != ct {
		t.Fatalf("Type is %v, expected %v", chunk.Type(), ct)
	}
}

func TestChunkUnmarshal(t *testing.T) {
	data := testChunkBytes(uint32(len(testMessage)), "RuSt", testMessage, testMessageCrc)

	chunk, err := DecodeChunk(data)
	if err != nil {
		t.Fatal(err)
	}

	if chunk.Length() != uint32(len(testMessage)) {
		t.Fatalf("Length is %d, expected %d", chunk.Length(), len(testMessage))
	}
	if chunk.Type().String() != "RuSt" {
		t.Fatalf("Type is %v, expected RuSt", chunk.Type())
	}
	if text, textErr := chunk.Text(); textErr != nil {
		t.Fatal(textErr)
	} else if text != testMessage {
		t.Fatalf("Text is %q, expected %q", text, testMessage)
	}
	if chunk.CRC() != testMessageCrc {
		t.Fatalf("CRC is %d, expected %d", chunk.CRC(), testMessageCrc)
	}
}

func TestChunkUnmarshalCrcMismatch(t *testing.T) {
	data := testChunkBytes(uint32(len(testMessage)), "RuSt", testMessage, testMessageCrc+1)

	if _, err := DecodeChunk(data); !errors.Is(err, ErrCrcMismatch) {
		t.Fatalf("Expected ErrCrcMismatch, got %v", err)
	}
}

func TestChunkUnmarshalBitFlip(t *testing.T) {
	valid := testChunkBytes(uint32(len(testMessage)), "RuSt", testMessage, testMessageCrc)

	// Flip one bit in every position of the data and CRC regions.
	for pos := 8; pos < len(valid); pos++ {
		data := make([]byte, len(valid))
		copy(data, valid)
		data[pos] ^= 0x10

		if _, err := DecodeChunk(data); !errors.Is(err, ErrCrcMismatch) {
			t.Fatalf("Bit flip at %d: expected ErrCrcMismatch, got %v", pos, err)
		}
	}
}

func TestChunkUnmarshalTruncated(t *testing.T) {
	valid := testChunkBytes(uint32(len(testMessage)), "RuSt", testMessage, testMessageCrc)

	tests := [][]byte{
		{},
		valid[:4],
		valid[:11],
		valid[:len(valid)-5],
		valid[:len(valid)-1],
	}

	for _, test := range tests {
		if _, err := DecodeChunk(test); !errors.Is(err, ErrTruncatedInput) {
			t.Fatalf("%d octets: expected ErrTruncatedInput, got %v", len(test), err)
		}
	}
}

func TestChunkRoundTrip(t *testing.T) {
	tests := []struct {
		chunkType string
		data      []byte
	}{
		{"RuSt", []byte(testMessage)},
		{"ruSt", []byte("hidden message")},
		{"IEND", []byte{}},
		{"teXt", []byte{0x00, 0xff, 0x23, 0x42}},
	}

	for _, test := range tests {
		ct, err := ParseChunkType(test.chunkType)
		if err != nil {
			t.Fatal(err)
		}

		chunk := NewChunk(ct, test.data)

		var buf = new(bytes.Buffer)
		if err := chunk.Marshal(buf); err != nil {
			t.Fatal(err)
		}

		var chunk2 Chunk
		if err := chunk2.Unmarshal(buf); err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(chunk, chunk2) {
			t.Fatalf("Chunks do not match, expected %v and got %v", chunk, chunk2)
		}
	}
}

func TestChunkText(t *testing.T) {
	ct, _ := ParseChunkType("teXt")

	if _, err := NewChunk(ct, []byte{0xff, 0xfe, 0x00}).Text(); !errors.Is(err, ErrNotText) {
		t.Fatalf("Expected ErrNotText, got %v", err)
	}

	if text, err := NewChunk(ct, []byte("hello wörld")).Text(); err != nil {
		t.Fatal(err)
	} else if text != "hello wörld" {
		t.Fatalf("Text is %q", text)
	}
}

func TestChunkDataOwnership(t *testing.T) {
	ct, _ := ParseChunkType("ruSt")

	input := []byte("payload")
	chunk := NewChunk(ct, input)

	// Mutating the input or an extracted copy must not reach the chunk.
	input[0] = 'X'
	extracted := chunk.Data()
	extracted[1] = 'Y'

	if !bytes.Equal(chunk.Data(), []byte("payload")) {
		t.Fatalf("Chunk data was mutated: %q", chunk.Data())
	}
}
