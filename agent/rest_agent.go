package agent

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gorilla/mux"

	"github.com/pngstash/pngstash/png"
	"github.com/pngstash/pngstash/stego"
	"github.com/pngstash/pngstash/storage"
)

// RestAgent is a RESTful agent for chunk operations over HTTP. Every
// operation works on the image octets sent within the request; the agent
// itself holds no image state. An optional Store records the processed
// payloads.
type RestAgent struct {
	router *mux.Router
	store  *storage.Store
}

// NewRestAgent creates a new RESTful agent on the given router. The store
// may be nil; then no records are kept.
func NewRestAgent(router *mux.Router, store *storage.Store) (ra *RestAgent) {
	ra = &RestAgent{
		router: router,
		store:  store,
	}

	ra.router.HandleFunc("/embed", ra.handleEmbed).Methods(http.MethodPost)
	ra.router.HandleFunc("/extract", ra.handleExtract).Methods(http.MethodPost)
	ra.router.HandleFunc("/scrub", ra.handleScrub).Methods(http.MethodPost)
	ra.router.HandleFunc("/inventory", ra.handleInventory).Methods(http.MethodPost)

	return ra
}

// ServeHTTP is a http.Handler to be bound to a HTTP endpoint, e.g., /rest.
func (ra *RestAgent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ra.router.ServeHTTP(w, r)
}

// record a processed payload in the store, if one is attached.
func (ra *RestAgent) record(op storage.Operation, chunkType string, size uint32, compressed bool) {
	if ra.store == nil {
		return
	}

	if err := ra.store.Push(storage.NewPayloadItem(op, chunkType, size, compressed)); err != nil {
		log.WithError(err).Warn("Failed to record payload item")
	}
}

// handleEmbed processes /embed POST requests.
func (ra *RestAgent) handleEmbed(w http.ResponseWriter, r *http.Request) {
	var (
		embedRequest  RestEmbedRequest
		embedResponse RestEmbedResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&embedRequest); jsonErr != nil {
		embedResponse.Error = jsonErr.Error()
	} else if img, imgErr := png.DecodeImage(embedRequest.Image); imgErr != nil {
		embedResponse.Error = imgErr.Error()
	} else if embedErr := stego.Embed(img, embedRequest.ChunkType, embedRequest.Payload, embedRequest.Compress); embedErr != nil {
		embedResponse.Error = embedErr.Error()
	} else {
		embedResponse.Image = img.Bytes()
		ra.record(storage.OpEmbed, embedRequest.ChunkType,
			uint32(len(embedRequest.Payload)), embedRequest.Compress)
	}

	log.WithFields(log.Fields{
		"chunk_type": embedRequest.ChunkType,
		"error":      embedResponse.Error,
	}).Info("Processed REST embed request")

	if err := json.NewEncoder(w).Encode(embedResponse); err != nil {
		log.WithError(err).Warn("Failed to write REST embed response")
	}
}

// handleExtract processes /extract POST requests.
func (ra *RestAgent) handleExtract(w http.ResponseWriter, r *http.Request) {
	var (
		extractRequest  RestExtractRequest
		extractResponse RestExtractResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&extractRequest); jsonErr != nil {
		extractResponse.Error = jsonErr.Error()
	} else if img, imgErr := png.DecodeImage(extractRequest.Image); imgErr != nil {
		extractResponse.Error = imgErr.Error()
	} else if payload, extractErr := stego.Extract(img, extractRequest.ChunkType); extractErr != nil {
		extractResponse.Error = extractErr.Error()
	} else {
		extractResponse.Payload = payload
		ra.record(storage.OpExtract, extractRequest.ChunkType, uint32(len(payload)), false)
	}

	log.WithFields(log.Fields{
		"chunk_type": extractRequest.ChunkType,
		"error":      extractResponse.Error,
	}).Info("Processed REST extract request")

	if err := json.NewEncoder(w).Encode(extractResponse); err != nil {
		log.WithError(err).Warn("Failed to write REST extract response")
	}
}

// handleScrub processes /scrub POST requests.
func (ra *RestAgent) handleScrub(w http.ResponseWriter, r *http.Request) {
	var (
		scrubRequest  RestScrubRequest
		scrubResponse RestScrubResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&scrubRequest); jsonErr != nil {
		scrubResponse.Error = jsonErr.Error()
	} else if img, imgErr := png.DecodeImage(scrubRequest.Image); imgErr != nil {
		scrubResponse.Error = imgErr.Error()
	} else if removed, scrubErr := stego.Scrub(img, scrubRequest.ChunkType); scrubErr != nil {
		scrubResponse.Error = scrubErr.Error()
	} else {
		scrubResponse.Image = img.Bytes()
		ra.record(storage.OpScrub, scrubRequest.ChunkType, removed.Length(), false)
	}

	log.WithFields(log.Fields{
		"chunk_type": scrubRequest.ChunkType,
		"error":      scrubResponse.Error,
	}).Info("Processed REST scrub request")

	if err := json.NewEncoder(w).Encode(scrubResponse); err != nil {
		log.WithError(err).Warn("Failed to write REST scrub response")
	}
}

// handleInventory processes /inventory POST requests.
func (ra *RestAgent) handleInventory(w http.ResponseWriter, r *http.Request) {
	var (
		inventoryRequest  RestInventoryRequest
		inventoryResponse RestInventoryResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&inventoryRequest); jsonErr != nil {
		inventoryResponse.Error = jsonErr.Error()
	} else if img, imgErr := png.DecodeImage(inventoryRequest.Image); imgErr != nil {
		inventoryResponse.Error = imgErr.Error()
	} else {
		inventoryResponse.Chunks = stego.Inventory(img)
	}

	log.WithFields(log.Fields{
		"chunks": len(inventoryResponse.Chunks),
		"error":  inventoryResponse.Error,
	}).Info("Processed REST inventory request")

	if err := json.NewEncoder(w).Encode(inventoryResponse); err != nil {
		log.WithError(err).Warn("Failed to write REST inventory response")
	}
}
