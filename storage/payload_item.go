package storage

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Operation names the chunk operation a PayloadItem was recorded for.
type Operation string

const (
	OpEmbed   Operation = "embed"
	OpExtract Operation = "extract"
	OpScrub   Operation = "scrub"
)

// PayloadItem is one audit record of a processed payload. Only metadata is
// kept; neither the payload nor the image octets are stored.
type PayloadItem struct {
	Id string `badgerhold:"key"`

	Operation Operation `badgerholdIndex:"Operation"`
	ChunkType string    `badgerholdIndex:"ChunkType"`

	PayloadSize uint32
	Compressed  bool

	Recorded time.Time
}

// NewPayloadItem creates a PayloadItem for an operation, recorded now.
func NewPayloadItem(op Operation, chunkType string, payloadSize uint32, compressed bool) PayloadItem {
	id := fmt.Sprintf("%x", sha1.Sum([]byte(fmt.Sprintf(
		"%s-%s-%d-%d", op, chunkType, payloadSize, time.Now().UnixNano()))))

	return PayloadItem{
		Id: id,

		Operation: op,
		ChunkType: chunkType,

		PayloadSize: payloadSize,
		Compressed:  compressed,

		Recorded: time.Now(),
	}
}

func (pi PayloadItem) String() string {
	return fmt.Sprintf("PayloadItem(%s, %s, %s, %d octets)",
		pi.Id[:8], pi.Operation, pi.ChunkType, pi.PayloadSize)
}
