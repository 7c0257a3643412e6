// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CheckValid inspects a single Chunk for conformance problems beyond the
// structural and CRC guarantees construction already gives. Decoding stays
// permissive; this is an advisory check.
func (c Chunk) CheckValid() error {
	if !c.Type().IsValid() {
		return fmt.Errorf("Chunk %v: type code is not conformant", c.Type())
	}

	return nil
}

// CheckValid inspects the whole chunk sequence and aggregates all findings.
// It reports non-conformant chunk types and, if the respective chunks are
// present at all, an IHDR which is not the first chunk or an IEND which is
// not the last one. A nil return means no findings.
//
// This check never modifies the sequence and has no influence on decoding
// or serialization, which tolerate such images on purpose.
func (img *Image) CheckValid() (errs error) {
	for _, c := range img.chunks {
		if err := c.CheckValid(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	for i, c := range img.chunks {
		if c.Type() == TypeIHDR && i != 0 {
			errs = multierror.Append(errs,
				fmt.Errorf("Image: IHDR is chunk %d, not the first", i))
		}
		if c.Type() == TypeIEND && i != len(img.chunks)-1 {
			errs = multierror.Append(errs,
				fmt.Errorf("Image: IEND is chunk %d of %d, not the last", i, len(img.chunks)))
		}
	}

	return
}
