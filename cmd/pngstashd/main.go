// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"net/http"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

// waitSigint blocks the current thread until a SIGINT appears.
func waitSigint() {
	signalSyn := make(chan os.Signal, 1)
	signalAck := make(chan struct{})

	signal.Notify(signalSyn, os.Interrupt)

	go func() {
		<-signalSyn
		close(signalAck)
	}()

	<-signalAck
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s configuration.toml", os.Args[0])
	}

	server, store, err := parseConfig(os.Args[1])
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Fatal("Failed to parse config")
	}

	go func() {
		log.WithField("address", server.Addr).Info("Starting agent")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Agent errored")
		}
	}()

	waitSigint()
	log.Info("Shutting down..")

	if err := server.Close(); err != nil {
		log.WithError(err).Error("Closing agent errored")
	}

	if store != nil {
		if err := store.Close(); err != nil {
			log.WithError(err).Error("Closing store errored")
		}
	}
}
