package pkg

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateGameID - generates a unique identifier for the room.
func GenerateGameID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateToken - generates a new unique user token.
func GenerateToken() string {
	return uuid.NewString()
}

// GenerateConnectionID - identifies one accepted connection in logs and room membership.
func GenerateConnectionID() string {
	return uuid.NewString()
}
