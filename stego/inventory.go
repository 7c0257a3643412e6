// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package stego

import (
	"fmt"

	"github.com/pngstash/pngstash/png"
)

// ChunkInfo describes one chunk of an image for listings.
type ChunkInfo struct {
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	Crc        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
	Valid      bool   `json:"valid"`
}

func (ci ChunkInfo) String() string {
	kind := "ancillary"
	if ci.Critical {
		kind = "critical"
	}

	return fmt.Sprintf("%s(Length=%d, CRC=%#08x, %s)", ci.Type, ci.Length, ci.Crc, kind)
}

// Inventory lists every chunk of the image in sequence order.
func Inventory(img *png.Image) (infos []ChunkInfo) {
	for _, c := range img.Chunks() {
		ct := c.Type()
		infos = append(infos, ChunkInfo{
			Type:       ct.String(),
			Length:     c.Length(),
			Crc:        c.CRC(),
			Critical:   ct.IsCritical(),
			Public:     ct.IsPublic(),
			SafeToCopy: ct.IsSafeToCopy(),
			Valid:      ct.IsValid(),
		})
	}

	return
}
