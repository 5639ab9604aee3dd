// Package simulation plays single games of War and parallel batches of
// them, storing every finished game in a results repository.
package simulation

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fadedpez/warsim/internal/logging"
	"github.com/fadedpez/warsim/internal/types"
	"github.com/fadedpez/warsim/pkg/repositories/results"
	"github.com/fadedpez/warsim/pkg/rng"
	"github.com/fadedpez/warsim/pkg/services/statistics"
	"github.com/fadedpez/warsim/pkg/war"
)

// SeedStride is the distance between the seeds of consecutive games in a
// seeded batch
const SeedStride = 1

// Observer is called after every battle with its 1-based number
type Observer func(n int64, battle *war.Battle)

// Option configures a Service
type Option func(*Service)

// WithLogger replaces the default logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithSeedGenerator sets where unseeded batches draw game seeds from
func WithSeedGenerator(seeds *rng.SeedGenerator) Option {
	return func(s *Service) {
		s.seeds = seeds
	}
}

// Service runs games and batches of games
type Service struct {
	repository results.Repository
	statistics *statistics.Service
	logger     *logging.Logger
	seeds      *rng.SeedGenerator
}

// NewService creates a new simulation service
func NewService(repository results.Repository, opts ...Option) *Service {
	s := &Service{
		repository: repository,
		statistics: statistics.NewService(repository),
		logger:     logging.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seeds == nil {
		s.seeds = rng.NewTimeSeedGenerator()
	}
	return s
}

// BatchOptions describes a batch of games
type BatchOptions struct {
	Games int
	// Workers bounds how many games run at once; below 1 means one per CPU
	Workers    int
	MaxBattles int64
	// Seed makes the batch reproducible: game i uses Seed + i*SeedStride.
	// When nil every game draws a seed from the service's generator.
	Seed *int64
}

// BatchReport is the outcome of RunBatch
type BatchReport struct {
	BatchID string
	Summary *statistics.BatchSummary
	Elapsed time.Duration
}

// Metadata returns the batch's aggregate game metadata
func (r *BatchReport) Metadata() war.GamesMetadata {
	return r.Summary.Metadata
}

// String renders the report
func (r *BatchReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch: %s\n", r.BatchID)
	fmt.Fprintf(&b, "%s\n", r.Summary.Metadata)
	fmt.Fprintf(&b, "Left Wins: %s\n", humanize.Comma(r.Summary.LeftWins))
	fmt.Fprintf(&b, "Right Wins: %s\n", humanize.Comma(r.Summary.RightWins))
	fmt.Fprintf(&b, "Unfinished: %s\n", humanize.Comma(r.Summary.Unfinished))
	fmt.Fprintf(&b, "Elapsed: %s", r.Elapsed.Round(time.Millisecond))
	return b.String()
}

// PlayGame plays one game from seed for at most maxBattles battles, calling
// observe (if non-nil) after each one
func (s *Service) PlayGame(seed int64, maxBattles int64, observe Observer) war.GameMetadata {
	return s.play(war.NewGame(seed), maxBattles, observe)
}

func (s *Service) play(game *war.Game, maxBattles int64, observe Observer) war.GameMetadata {
	for n := int64(1); n <= maxBattles; n++ {
		battle, ok := game.Advance()
		if !ok {
			return game.Metadata()
		}
		if observe != nil {
			observe(n, battle)
		}
	}

	// A game can end on exactly the last allowed battle. Advance completes it
	// without playing another one. An undealt game (cap below 1) stays as is.
	if game.State() != war.StateInProgress {
		return game.Metadata()
	}
	if left, right := game.Hands(); len(left) == 0 || len(right) == 0 {
		game.Advance()
	}
	return game.Metadata()
}

// RunBatch plays opts.Games games in parallel, stores each result and
// returns the batch summary. A cancelled context stops dispatching new
// games and returns the context error.
func (s *Service) RunBatch(ctx context.Context, opts BatchOptions) (*BatchReport, error) {
	if opts.Games < 0 {
		return nil, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("games must not be negative, got %d", opts.Games))
	}
	if opts.MaxBattles < 1 {
		return nil, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("max battles must be positive, got %d", opts.MaxBattles))
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	batchID := uuid.New().String()
	start := time.Now()
	s.logger.Info("starting batch %s: %s games on %d workers", batchID, humanize.Comma(int64(opts.Games)), workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Games; i++ {
		if gctx.Err() != nil {
			break
		}

		// Seeds are assigned in dispatch order so a game's seed never
		// depends on scheduling
		seed := s.seedFor(opts.Seed, i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return s.runOne(gctx, batchID, i, seed, opts.MaxBattles)
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.LogError(err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary, err := s.statistics.Summarize(ctx, batchID)
	if err != nil {
		return nil, types.WrapError(types.ErrInternalError, "summarizing batch", err)
	}

	report := &BatchReport{
		BatchID: batchID,
		Summary: summary,
		Elapsed: time.Since(start),
	}
	s.logger.Zerolog().Info().
		Str("batch", batchID).
		Int64("games", summary.Metadata.Games).
		Float64("completion_rate", summary.Metadata.CompletionRate()).
		Dur("elapsed", report.Elapsed).
		Msg("batch finished")

	return report, nil
}

func (s *Service) seedFor(base *int64, index int) int64 {
	if base == nil {
		return s.seeds.Next()
	}
	return *base + int64(index)*SeedStride
}

func (s *Service) runOne(ctx context.Context, batchID string, index int, seed int64, maxBattles int64) error {
	game := war.NewGame(seed)
	meta := s.play(game, maxBattles, nil)

	result := &results.GameResult{
		ID:          game.ID(),
		BatchID:     batchID,
		Index:       index,
		Seed:        seed,
		Metadata:    meta,
		CompletedAt: time.Now(),
	}
	if err := s.repository.SaveResult(ctx, result); err != nil {
		return types.WrapError(types.ErrInternalError, fmt.Sprintf("saving game %d of batch %s", index, batchID), err)
	}

	s.logger.Debug("game %d (seed %d) finished after %s battles, complete=%t",
		index, seed, humanize.Comma(meta.Battles), meta.IsComplete)
	return nil
}
