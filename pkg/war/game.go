package war

import (
	"github.com/google/uuid"

	"github.com/fadedpez/warsim/internal/types"
	"github.com/fadedpez/warsim/pkg/cards"
	"github.com/fadedpez/warsim/pkg/rng"
)

// SafeBattleBound is a generous upper bound on the battles a game needs to
// finish. Callers imposing their own cap should use something at least
// this large if they want every game to complete.
const SafeBattleBound = 50000

// State is the phase of a game
type State uint8

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateCompleted:
		return "COMPLETED"
	default:
		return "NOT_STARTED"
	}
}

// Option configures a Game
type Option func(*Game)

// WithSourceFactory replaces the function that builds the game's random
// source from its seed
func WithSourceFactory(factory func(seed int64) rng.Source) Option {
	return func(g *Game) {
		g.newSource = factory
	}
}

// Game drives one game of War as a forward-only sequence of battles.
// A Game is not safe for concurrent use.
type Game struct {
	id        string
	seed      int64
	newSource func(seed int64) rng.Source

	state    State
	src      rng.Source
	left     *Hand
	right    *Hand
	current  *Battle
	metadata GameMetadata
}

// NewGame creates a game whose deal and every war shuffle are determined
// by seed
func NewGame(seed int64, opts ...Option) *Game {
	g := &Game{
		id:        uuid.New().String(),
		seed:      seed,
		newSource: rng.NewSource,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// ID returns the game's unique identifier
func (g *Game) ID() string {
	return g.id
}

// Seed returns the seed the game replays from
func (g *Game) Seed() int64 {
	return g.seed
}

// State returns the current phase
func (g *Game) State() State {
	return g.state
}

// Reset returns the game to StateNotStarted with a freshly seeded source,
// so the next run replays the same game exactly
func (g *Game) Reset() {
	g.state = StateNotStarted
	g.src = g.newSource(g.seed)
	g.left = nil
	g.right = nil
	g.current = nil
	g.metadata = GameMetadata{}
}

// Advance plays the next battle. The first call deals the hands. Once
// either hand is empty the game completes and Advance returns nil and
// false from then on.
func (g *Game) Advance() (*Battle, bool) {
	switch g.state {
	case StateCompleted:
		return nil, false
	case StateNotStarted:
		g.deal()
		g.state = StateInProgress
	}

	if g.left.IsEmpty() || g.right.IsEmpty() {
		g.state = StateCompleted
		g.current = nil
		g.metadata.Complete()
		return nil, false
	}

	g.current = Resolve(g.left, g.right, g.src)
	g.metadata.AddBattle(g.current)
	return g.current, true
}

// Current returns the battle produced by the last successful Advance
func (g *Game) Current() (*Battle, error) {
	if g.current != nil {
		return g.current, nil
	}
	if g.state == StateCompleted {
		return nil, types.ErrGameAlreadyEnded
	}
	return nil, types.ErrGameNotStarted
}

// Metadata returns a snapshot of the game's tally
func (g *Game) Metadata() GameMetadata {
	return g.metadata
}

// Hands returns copies of both hands, front first. Both are nil before the
// deal.
func (g *Game) Hands() (left, right []cards.Card) {
	if g.left == nil {
		return nil, nil
	}
	return g.left.Cards(), g.right.Cards()
}

// String renders the game's tally
func (g *Game) String() string {
	return g.metadata.String()
}

func (g *Game) deal() {
	deck := cards.NewDeck()
	deck.Shuffle(g.src)
	left, right := deck.Split()
	g.left = NewHand(left...)
	g.right = NewHand(right...)
}
