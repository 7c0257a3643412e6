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

// decodeAction for the "decode" CLI option.
func decodeAction(args []string) {
	if len(args) != 2 {
		printUsage()
	}

	var (
		inName    = args[0]
		chunkType = args[1]
	)

	data, err := os.ReadFile(inName)
	if err != nil {
		log.WithError(err).Fatal("Reading input file errored")
	}

	img, err := png.DecodeImage(data)
	if err != nil {
		log.WithError(err).Fatal("Decoding PNG errored")
	}

	payload, err := stego.Extract(img, chunkType)
	if err != nil {
		log.WithError(err).WithField("chunk_type", chunkType).Fatal("Extracting payload errored")
	}

	if _, err := os.Stdout.Write(payload); err != nil {
		log.WithError(err).Fatal("Writing payload errored")
	}
}
