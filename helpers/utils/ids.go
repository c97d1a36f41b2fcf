package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID random v4 UUID used as a log correlation id
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateShortID first 8 hex chars of a fresh UUID
func GenerateShortID() string {
	return GenerateUUID()[:8]
}
