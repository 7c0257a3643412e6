// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fsnotify/fsnotify"

	"github.com/pngstash/pngstash/png"
	"github.com/pngstash/pngstash/stego"
)

// watch extracts hidden payloads from PNG files dropped into a directory.
type watch struct {
	directory  string
	chunkType  string
	knownFiles sync.Map
	watcher    *fsnotify.Watcher

	closeChan chan os.Signal
}

// watchAction for the "watch" CLI option.
func watchAction(args []string) {
	if len(args) != 2 {
		printUsage()
	}

	wt := &watch{
		chunkType: args[0],
		directory: args[1],
		closeChan: make(chan os.Signal),
	}

	if _, err := png.ParseChunkType(wt.chunkType); err != nil {
		log.WithError(err).Fatal("Invalid chunk type")
	}

	signal.Notify(wt.closeChan, os.Interrupt)

	var err error
	if wt.watcher, err = fsnotify.NewWatcher(); err != nil {
		log.WithError(err).Fatal("Starting file watcher errored")
	}
	if err = wt.watcher.Add(wt.directory); err != nil {
		log.WithError(err).Fatal("Adding directory to file watcher errored")
	}

	wt.handler()
}

// cleanFilepath creates a relative path from the watched directory to a new
// file's path.
func (wt *watch) cleanFilepath(f string) string {
	if rel, err := filepath.Rel(wt.directory, f); err != nil {
		log.WithField("path", f).WithError(err).Fatal("Failed to clean file path")
		return ""
	} else {
		return rel
	}
}

func (wt *watch) handler() {
	defer func() {
		_ = wt.watcher.Close()
	}()

	for {
		select {
		case <-wt.closeChan:
			log.Info("Received interrupt signal")
			return

		case e, ok := <-wt.watcher.Events:
			if !ok {
				log.Error("fsnotify's Event channel was closed")
				return
			}

			if _, ok := wt.knownFiles.Load(wt.cleanFilepath(e.Name)); ok {
				log.WithField("file", e.Name).Debug("Skipping file; already known")
				continue
			}

			if e.Op&fsnotify.Create == 0 {
				log.WithFields(log.Fields{
					"file":      e.Name,
					"operation": e.Op.String(),
				}).Debug("Ignoring fsnotify event")
				continue
			}

			if !strings.HasSuffix(strings.ToLower(e.Name), ".png") {
				log.WithField("file", e.Name).Debug("Ignoring non-PNG file")
				continue
			}

			wt.readNewFile(e)

		case err, ok := <-wt.watcher.Errors:
			if !ok {
				log.Error("fsnotify's Errors channel was closed")
				return
			}

			log.WithError(err).Error("fsnotify errored")
			return
		}
	}
}

func (wt *watch) readNewFile(e fsnotify.Event) {
	for i := 0; i < 5; i++ {
		if data, err := os.ReadFile(e.Name); err != nil {
			log.WithError(err).WithField("file", e.Name).Warn("Reading file errored, retrying..")
		} else if img, err := png.DecodeImage(data); err != nil {
			log.WithError(err).WithField("file", e.Name).Warn("Decoding PNG errored, retrying..")
		} else {
			wt.knownFiles.Store(wt.cleanFilepath(e.Name), struct{}{})

			if payload, err := stego.Extract(img, wt.chunkType); err != nil {
				log.WithError(err).WithFields(log.Fields{
					"file":       e.Name,
					"chunk_type": wt.chunkType,
				}).Info("No payload in this file")
			} else {
				fmt.Printf("%s: %s\n", e.Name, payload)
			}
			return
		}

		time.Sleep(time.Duration(math.Pow(2, float64(i))) * 100 * time.Millisecond)
	}

	log.WithField("file", e.Name).Error("Failed to process file, giving up.")
}
