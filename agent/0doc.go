// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package agent exposes the chunk operations over the network: a RESTful
// agent with JSON messages and a WebSocket agent answering binary PNG
// frames with chunk inventories. Both are plain http handlers to be mounted
// by the daemon.
package agent
