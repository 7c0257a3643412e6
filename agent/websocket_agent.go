package agent

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gorilla/websocket"

	"github.com/pngstash/pngstash/png"
	"github.com/pngstash/pngstash/stego"
)

// WebsocketAgent is a WebSocket endpoint for chunk inventories. A client
// sends a complete PNG file as one binary frame and receives a
// RestInventoryResponse as JSON. Each connection is handled on its own; the
// agent keeps no shared state.
type WebsocketAgent struct {
	upgrader websocket.Upgrader
}

// NewWebsocketAgent creates a new WebsocketAgent to be bound to a HTTP
// endpoint, e.g., /ws.
func NewWebsocketAgent() *WebsocketAgent {
	return &WebsocketAgent{
		upgrader: websocket.Upgrader{},
	}
}

func (wa *WebsocketAgent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wa.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("Upgrading HTTP connection to WebSocket errored")
		return
	}

	go wa.handleConnection(conn)
}

// handleConnection answers binary PNG frames until the client disconnects.
func (wa *WebsocketAgent) handleConnection(conn *websocket.Conn) {
	logger := log.WithField("client", conn.RemoteAddr())
	defer func() { _ = conn.Close() }()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			logger.WithError(err).Debug("Closing WebSocket connection")
			return
		}

		var response RestInventoryResponse

		if messageType != websocket.BinaryMessage {
			response.Error = "expected one binary PNG frame"
		} else if img, imgErr := png.DecodeImage(data); imgErr != nil {
			response.Error = imgErr.Error()
		} else {
			response.Chunks = stego.Inventory(img)
		}

		logger.WithFields(log.Fields{
			"chunks": len(response.Chunks),
			"error":  response.Error,
		}).Info("Processed WebSocket inventory request")

		if err := conn.WriteJSON(response); err != nil {
			logger.WithError(err).Warn("Failed to write WebSocket response")
			return
		}
	}
}
