// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"fmt"
)

// ChunkType is the four-octet type code of a chunk. Each octet is an ASCII
// letter and bit 5, the case bit, carries one property of the chunk: the
// first octet's case distinguishes critical from ancillary chunks, the
// second public from private types, the third is reserved and must be
// uppercase, and the fourth marks a chunk as safe to copy for editors which
// do not understand it.
//
// A ChunkType is a plain value. Construction never fails; validity is a
// query, as the format tolerates unusual type codes in the wild.
type ChunkType [4]byte

// caseBit selects the ASCII case within a type code octet.
const caseBit byte = 0x20

// Well-known chunk types.
var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
)

// NewChunkType creates a ChunkType from four raw octets.
func NewChunkType(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkType creates a ChunkType from a string of exactly four ASCII
// letters and errors with ErrFormat otherwise.
func ParseChunkType(s string) (ct ChunkType, err error) {
	if len(s) != 4 {
		err = fmt.Errorf("%w: got %d octets", ErrFormat, len(s))
		return
	}

	copy(ct[:], s)

	for _, b := range ct {
		if !isASCIILetter(b) {
			err = fmt.Errorf("%w: octet %#02x", ErrFormat, b)
			return
		}
	}

	return
}

// isASCIILetter checks an octet for A-Z or a-z.
func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsValid returns true if all four octets are ASCII letters and the
// reserved bit is valid.
func (ct ChunkType) IsValid() bool {
	for _, b := range ct {
		if !isASCIILetter(b) {
			return false
		}
	}

	return ct.IsReservedBitValid()
}

// IsCritical returns true if a decoder must understand this chunk to render
// the image, indicated by an uppercase first octet.
func (ct ChunkType) IsCritical() bool {
	return ct[0]&caseBit == 0
}

// IsPublic returns true for registered chunk types, indicated by an
// uppercase second octet.
func (ct ChunkType) IsPublic() bool {
	return ct[1]&caseBit == 0
}

// IsReservedBitValid returns true if the third octet is uppercase, as every
// conformant chunk type requires.
func (ct ChunkType) IsReservedBitValid() bool {
	return ct[2]&caseBit == 0
}

// IsSafeToCopy returns true if editors unaware of this chunk type may copy
// it unmodified, indicated by a lowercase fourth octet.
func (ct ChunkType) IsSafeToCopy() bool {
	return ct[3]&caseBit != 0
}

// Bytes returns the four raw octets.
func (ct ChunkType) Bytes() [4]byte {
	return [4]byte(ct)
}

// Strings returns the properties of this ChunkType as a string
// representation.
func (ct ChunkType) Strings() (fields []string) {
	checks := []struct {
		set  bool
		text string
	}{
		{ct.IsCritical(), "CRITICAL"},
		{ct.IsPublic(), "PUBLIC"},
		{!ct.IsReservedBitValid(), "RESERVED_BIT_INVALID"},
		{ct.IsSafeToCopy(), "SAFE_TO_COPY"},
	}

	for _, check := range checks {
		if check.set {
			fields = append(fields, check.text)
		}
	}

	return
}

func (ct ChunkType) String() string {
	return string(ct[:])
}
