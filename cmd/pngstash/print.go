// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/pngstash/pngstash/png"
	"github.com/pngstash/pngstash/stego"
)

// printAction for the "print" CLI option.
func printAction(args []string) {
	if len(args) != 1 {
		printUsage()
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.WithError(err).Fatal("Reading input file errored")
	}

	img, err := png.DecodeImage(data)
	if err != nil {
		log.WithError(err).Fatal("Decoding PNG errored")
	}

	for _, info := range stego.Inventory(img) {
		fmt.Println(info)
	}

	if err := img.CheckValid(); err != nil {
		log.WithError(err).Warn("Image has conformance findings")
	}
}
