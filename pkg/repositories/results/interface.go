package results

import (
	"context"

	"github.com/fadedpez/warsim/internal/types"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_results

// ErrResultNotFound matches, via errors.Is, the error returned for an unknown result ID
var ErrResultNotFound = types.NewGameError(types.ErrResultNotFound, "result not found")

// Repository defines storage operations for simulated game results
type Repository interface {
	SaveResult(ctx context.Context, result *GameResult) error
	// GetBatchResults returns a batch's results ordered by Index
	GetBatchResults(ctx context.Context, batchID string) ([]*GameResult, error)
	GetResult(ctx context.Context, id string) (*GameResult, error)

	// Close closes any resources used by the repository
	Close() error
}
