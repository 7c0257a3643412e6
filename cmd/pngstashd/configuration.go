// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BurntSushi/toml"
	"github.com/gorilla/mux"

	"github.com/pngstash/pngstash/agent"
	"github.com/pngstash/pngstash/storage"
)

// tomlConfig describes the TOML-configuration.
type tomlConfig struct {
	Logging logConf
	Agent   agentConf
	Store   storeConf
}

// logConf describes the Logging-configuration block.
type logConf struct {
	Level        string
	ReportCaller bool `toml:"report-caller"`
	Format       string
}

// agentConf describes the Agent-configuration block.
type agentConf struct {
	Listen    string
	Websocket bool
}

// storeConf describes the Store-configuration block.
type storeConf struct {
	Path string
}

// configureLogging as requested in the Logging block.
func configureLogging(conf logConf) {
	if conf.Level != "" {
		if lvl, err := log.ParseLevel(conf.Level); err != nil {
			log.WithFields(log.Fields{
				"level":    conf.Level,
				"error":    err,
				"provided": "panic,fatal,error,warn,info,debug,trace",
			}).Warn("Failed to set log level. Please select one of the provided ones")
		} else {
			log.SetLevel(lvl)
		}
	}

	log.SetReportCaller(conf.ReportCaller)

	switch conf.Format {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})

	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})

	default:
		log.Warn("Unknown logging format")
	}
}

// parseConfig reads the configuration file and assembles the HTTP server
// and, if configured, the payload store.
func parseConfig(filename string) (server *http.Server, store *storage.Store, err error) {
	var conf tomlConfig
	if _, err = toml.DecodeFile(filename, &conf); err != nil {
		return
	}

	configureLogging(conf.Logging)

	if conf.Agent.Listen == "" {
		err = fmt.Errorf("agent.listen is not configured")
		return
	}

	if conf.Store.Path != "" {
		if store, err = storage.NewStore(conf.Store.Path); err != nil {
			return
		}
	}

	router := mux.NewRouter()

	restRouter := router.PathPrefix("/rest").Subrouter()
	agent.NewRestAgent(restRouter, store)

	if conf.Agent.Websocket {
		router.Handle("/ws", agent.NewWebsocketAgent())
	}

	server = &http.Server{
		Addr:    conf.Agent.Listen,
		Handler: router,
	}

	return
}
