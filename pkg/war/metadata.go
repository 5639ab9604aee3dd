package war

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/fadedpez/warsim/pkg/stats"
)

// GameMetadata is the running tally of one game
type GameMetadata struct {
	Battles             int64
	BattlesLeftWon      int64
	BattlesRightWon     int64
	DeepBattles         int64
	DeepBattlesLeftWon  int64
	DeepBattlesRightWon int64
	// DeepBattleDepthTotal is the sum of Depth over all deep battles
	DeepBattleDepthTotal int64
	IsComplete           bool

	lastWinner Winner
}

// AddBattle folds one top-level battle into the tally. A nil battle is
// ignored.
func (m *GameMetadata) AddBattle(b *Battle) {
	if b == nil {
		return
	}

	m.Battles++
	switch b.Winner() {
	case Left:
		m.BattlesLeftWon++
	case Right:
		m.BattlesRightWon++
	}

	if b.IsDeep() {
		m.DeepBattles++
		m.DeepBattleDepthTotal += int64(b.Depth())
		switch b.Winner() {
		case Left:
			m.DeepBattlesLeftWon++
		case Right:
			m.DeepBattlesRightWon++
		}
	}

	m.lastWinner = b.Winner()
}

// Complete marks the game finished, fixing the winner of the last battle
// as the final winner
func (m *GameMetadata) Complete() {
	m.IsComplete = true
}

// Ties returns the number of battles nobody won
func (m GameMetadata) Ties() int64 {
	return m.Battles - m.BattlesLeftWon - m.BattlesRightWon
}

// AverageDeepBattleDepth returns the mean depth of deep battles, or 0 when
// there were none
func (m GameMetadata) AverageDeepBattleDepth() float64 {
	if m.DeepBattles == 0 {
		return 0
	}
	return float64(m.DeepBattleDepthTotal) / float64(m.DeepBattles)
}

// FinalWinner returns the game's winner. The second result is false until
// the game is complete.
func (m GameMetadata) FinalWinner() (Winner, bool) {
	if !m.IsComplete {
		return Tie, false
	}
	return m.lastWinner, true
}

// String renders the tally
func (m GameMetadata) String() string {
	var b strings.Builder
	if winner, ok := m.FinalWinner(); ok {
		fmt.Fprintf(&b, "Winner: %s\n", winner)
	}
	fmt.Fprintf(&b, "Battles: %s (%s vs %s)\n",
		humanize.Comma(m.Battles), humanize.Comma(m.BattlesLeftWon), humanize.Comma(m.BattlesRightWon))
	fmt.Fprintf(&b, "Deep Battles: %s (%s vs %s)\n",
		humanize.Comma(m.DeepBattles), humanize.Comma(m.DeepBattlesLeftWon), humanize.Comma(m.DeepBattlesRightWon))
	fmt.Fprintf(&b, "Average Deep Battle Depth: %s", humanize.FormatFloat("#,###.##", m.AverageDeepBattleDepth()))
	return b.String()
}

// GamesMetadata summarises a batch of games
type GamesMetadata struct {
	Games int64
	// BattlesPerCompletedGame only counts games that ran to an empty hand
	BattlesPerCompletedGame stats.Stats
}

// NewGamesMetadata builds the batch summary, skipping nil entries
func NewGamesMetadata(items []*GameMetadata) GamesMetadata {
	var (
		games   int64
		battles []int64
	)
	for _, item := range items {
		if item == nil {
			continue
		}
		games++
		if item.IsComplete {
			battles = append(battles, item.Battles)
		}
	}

	return GamesMetadata{
		Games:                   games,
		BattlesPerCompletedGame: stats.New(battles),
	}
}

// CompletionRate returns the fraction of games that completed. An empty
// batch counts as fully complete.
func (m GamesMetadata) CompletionRate() float64 {
	if m.Games == 0 {
		return 1.0
	}
	return float64(m.BattlesPerCompletedGame.Count) / float64(m.Games)
}

// String renders the batch summary
func (m GamesMetadata) String() string {
	return fmt.Sprintf("Games: %s\nCompletion Rate: %s%%\nBattles per Game:\n%s",
		humanize.Comma(m.Games),
		humanize.FormatFloat("#,###.##", m.CompletionRate()*100),
		m.BattlesPerCompletedGame.Format("  "))
}
