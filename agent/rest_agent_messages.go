package agent

import "github.com/pngstash/pngstash/stego"

// Image and payload octets travel base64-encoded within the JSON bodies,
// which encoding/json does on its own for []byte fields.

// RestEmbedRequest describes a JSON to be POSTed to /embed.
type RestEmbedRequest struct {
	Image     []byte `json:"image"`
	ChunkType string `json:"chunk_type"`
	Payload   []byte `json:"payload"`
	Compress  bool   `json:"compress"`
}

// RestEmbedResponse describes a JSON response for /embed.
type RestEmbedResponse struct {
	Error string `json:"error,omitempty"`
	Image []byte `json:"image,omitempty"`
}

// RestExtractRequest describes a JSON to be POSTed to /extract.
type RestExtractRequest struct {
	Image     []byte `json:"image"`
	ChunkType string `json:"chunk_type"`
}

// RestExtractResponse describes a JSON response for /extract.
type RestExtractResponse struct {
	Error   string `json:"error,omitempty"`
	Payload []byte `json:"payload"`
}

// RestScrubRequest describes a JSON to be POSTed to /scrub.
type RestScrubRequest struct {
	Image     []byte `json:"image"`
	ChunkType string `json:"chunk_type"`
}

// RestScrubResponse describes a JSON response for /scrub.
type RestScrubResponse struct {
	Error string `json:"error,omitempty"`
	Image []byte `json:"image,omitempty"`
}

// RestInventoryRequest describes a JSON to be POSTed to /inventory.
type RestInventoryRequest struct {
	Image []byte `json:"image"`
}

// RestInventoryResponse describes a JSON response for /inventory.
type RestInventoryResponse struct {
	Error  string            `json:"error,omitempty"`
	Chunks []stego.ChunkInfo `json:"chunks"`
}
