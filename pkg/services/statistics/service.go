package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/warsim/pkg/repositories/results"
	"github.com/fadedpez/warsim/pkg/war"
)

// Service provides methods for summarising stored batch results
type Service struct {
	repository results.Repository
}

// NewService creates a new statistics service
func NewService(repository results.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// BatchSummary is the aggregate of one batch's stored results
type BatchSummary struct {
	BatchID   string
	Metadata  war.GamesMetadata
	LeftWins  int64
	RightWins int64
	// Unfinished counts games that hit the battle cap or ended in a tie
	Unfinished int64
}

// Summarize folds every stored result of a batch into a BatchSummary
func (s *Service) Summarize(ctx context.Context, batchID string) (*BatchSummary, error) {
	stored, err := s.repository.GetBatchResults(ctx, batchID)
	if err != nil {
		return nil, err
	}

	summary := &BatchSummary{BatchID: batchID}
	items := make([]*war.GameMetadata, 0, len(stored))
	for _, result := range stored {
		meta := result.Metadata
		items = append(items, &meta)

		winner, ok := meta.FinalWinner()
		switch {
		case ok && winner == war.Left:
			summary.LeftWins++
		case ok && winner == war.Right:
			summary.RightWins++
		default:
			summary.Unfinished++
		}
	}
	summary.Metadata = war.NewGamesMetadata(items)

	return summary, nil
}

// GameRank represents a game's result with ranking information
type GameRank struct {
	*results.GameResult
	Rank int
	// IsLongest marks the game with the most battles
	IsLongest bool
	// IsDeepest marks the game with the most deep battles
	IsDeepest bool
}

// GameLeaderboard represents a paginated ranking of a batch's games
type GameLeaderboard struct {
	Games        []*GameRank
	TotalGames   int
	CurrentPage  int
	TotalPages   int
	GamesPerPage int
	LastUpdated  time.Time
}

// GetLongestGames ranks a batch's games by battle count, longest first
func (s *Service) GetLongestGames(ctx context.Context, batchID string, page, gamesPerPage int) (*GameLeaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if gamesPerPage < 1 {
		gamesPerPage = 10
	}

	stored, err := s.repository.GetBatchResults(ctx, batchID)
	if err != nil {
		return nil, err
	}

	ranks := make([]*GameRank, 0, len(stored))
	for _, result := range stored {
		ranks = append(ranks, &GameRank{GameResult: result})
	}

	// Sort by battles (descending), then by index so ties stay stable
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Metadata.Battles != ranks[j].Metadata.Battles {
			return ranks[i].Metadata.Battles > ranks[j].Metadata.Battles
		}
		return ranks[i].Index < ranks[j].Index
	})

	if len(ranks) > 0 {
		ranks[0].IsLongest = true

		deepestIdx := 0
		for i := 1; i < len(ranks); i++ {
			if ranks[i].Metadata.DeepBattles > ranks[deepestIdx].Metadata.DeepBattles {
				deepestIdx = i
			}
		}
		ranks[deepestIdx].IsDeepest = true
	}

	for i := range ranks {
		ranks[i].Rank = i + 1
	}

	// Calculate pagination
	totalGames := len(ranks)
	totalPages := (totalGames + gamesPerPage - 1) / gamesPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * gamesPerPage
	end := start + gamesPerPage
	if end > totalGames {
		end = totalGames
	}

	var currentPage []*GameRank
	if start < totalGames {
		currentPage = ranks[start:end]
	} else {
		currentPage = []*GameRank{}
	}

	return &GameLeaderboard{
		Games:        currentPage,
		TotalGames:   totalGames,
		CurrentPage:  page,
		TotalPages:   totalPages,
		GamesPerPage: gamesPerPage,
		LastUpdated:  time.Now(),
	}, nil
}
