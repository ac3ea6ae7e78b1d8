package rawdata

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Payload is an archived external payload kept verbatim for audit and replay.
type Payload struct {
	Source      string
	EntityType  string
	EntityKey   string
	MatchID     string
	EAMatchID   string
	PayloadJSON string
	PayloadHash string
	IngestedAt  *time.Time
}

// HashPayload fingerprints an archived payload so unchanged re-imports can be
// spotted without comparing bodies.
func HashPayload(payloadJSON string) string {
	sum := sha256.Sum256([]byte(payloadJSON))
	return hex.EncodeToString(sum[:])
}
