package results

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/fadedpez/warsim/internal/types"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of result ID to result
	results map[string]*GameResult
	// Map of batch ID to its results in insertion order
	batches map[string][]*GameResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		results: make(map[string]*GameResult),
		batches: make(map[string][]*GameResult),
	}
}

// SaveResult stores a result under its ID and batch. IDs must be unique.
func (r *MemoryRepository) SaveResult(ctx context.Context, result *GameResult) error {
	if result == nil || result.ID == "" {
		return types.NewGameError(types.ErrInvalidArgument, "result requires an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.results[result.ID]; exists {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("result %s already stored", result.ID))
	}

	r.results[result.ID] = result
	r.batches[result.BatchID] = append(r.batches[result.BatchID], result)
	return nil
}

// GetBatchResults retrieves a batch's results ordered by game index. An
// unknown batch has no results.
func (r *MemoryRepository) GetBatchResults(ctx context.Context, batchID string) ([]*GameResult, error) {
	r.mu.RLock()
	results := slices.Clone(r.batches[batchID])
	r.mu.RUnlock()

	if results == nil {
		return []*GameResult{}, nil
	}

	// Workers finish out of order
	slices.SortFunc(results, func(a, b *GameResult) int {
		return a.Index - b.Index
	})
	return results, nil
}

// GetResult retrieves one result by ID
func (r *MemoryRepository) GetResult(ctx context.Context, id string) (*GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.results[id]
	if !exists {
		return nil, types.NewGameError(types.ErrResultNotFound, fmt.Sprintf("no result with id %s", id))
	}
	return result, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
