package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// NewRequestID creates a short random identifier attached to each request log line.
func NewRequestID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
