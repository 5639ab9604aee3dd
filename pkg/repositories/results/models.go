package results

import (
	"time"

	"github.com/fadedpez/warsim/pkg/war"
)

// GameResult is the stored outcome of one simulated game
type GameResult struct {
	ID      string
	BatchID string
	// Index is the game's position within its batch
	Index       int
	Seed        int64
	Metadata    war.GameMetadata
	CompletedAt time.Time
}
