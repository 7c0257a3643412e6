// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/pngstash/pngstash/png"
	"github.com/pngstash/pngstash/stego"
)

// encodeAction for the "encode" CLI option.
func encodeAction(args []string) {
	var compress bool
	if len(args) > 0 && args[0] == "-z" {
		compress = true
		args = args[1:]
	}

	if len(args) != 4 {
		printUsage()
	}

	var (
		inName    = args[0]
		chunkType = args[1]
		msgInput  = args[2]
		outName   = args[3]

		err     error
		message []byte
	)

	if msgInput == "-" {
		message, err = io.ReadAll(os.Stdin)
	} else {
		message = []byte(msgInput)
	}
	if err != nil {
		log.WithError(err).Fatal("Reading message errored")
	}

	data, err := os.ReadFile(inName)
	if err != nil {
		log.WithError(err).Fatal("Reading input file errored")
	}

	img, err := png.DecodeImage(data)
	if err != nil {
		log.WithError(err).Fatal("Decoding PNG errored")
	}

	if err := stego.Embed(img, chunkType, message, compress); err != nil {
		log.WithError(err).Fatal("Embedding message errored")
	}

	if err := os.WriteFile(outName, img.Bytes(), 0644); err != nil {
		log.WithError(err).Fatal("Writing output file errored")
	}
}
