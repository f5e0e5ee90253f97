package pkg

import "github.com/google/uuid"

// GenerateID returns a globally-unique opaque identifier for games,
// players and ships.
func GenerateID() string {
	return uuid.NewString()
}
