// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/pngstash/pngstash/png"
	"github.com/pngstash/pngstash/stego"
)

// removeAction for the "remove" CLI option.
func removeAction(args []string) {
	if len(args) != 3 {
		printUsage()
	}

	var (
		inName    = args[0]
		chunkType = args[1]
		outName   = args[2]
	)

	data, err := os.ReadFile(inName)
	if err != nil {
		log.WithError(err).Fatal("Reading input file errored")
	}

	img, err := png.DecodeImage(data)
	if err != nil {
		log.WithError(err).Fatal("Decoding PNG errored")
	}

	removed, err := stego.Scrub(img, chunkType)
	if err != nil {
		log.WithError(err).WithField("chunk_type", chunkType).Fatal("Removing chunk errored")
	}

	log.WithField("chunk", removed.String()).Info("Removed chunk")

	if err := os.WriteFile(outName, img.Bytes(), 0644); err != nil {
		log.WithError(err).Fatal("Writing output file errored")
	}
}
