package war

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/warsim/internal/types"
	"github.com/fadedpez/warsim/pkg/cards"
)

type BattleTestSuite struct {
	suite.Suite
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) TestSimpleBattleWinner() {
	testCases := []struct {
		name     string
		left     cards.Card
		right    cards.Card
		expected Winner
	}{
		{name: "higher left wins", left: c(cards.King, cards.Spades), right: c(cards.Queen, cards.Hearts), expected: Left},
		{name: "higher right wins", left: c(cards.Two, cards.Spades), right: c(cards.Three, cards.Clubs), expected: Right},
		{name: "ace is high", left: c(cards.Ace, cards.Spades), right: c(cards.King, cards.Hearts), expected: Left},
		{name: "ace beats king on the right", left: c(cards.King, cards.Spades), right: c(cards.Ace, cards.Clubs), expected: Right},
		{name: "absent right", left: c(cards.Two, cards.Spades), right: cards.Card{}, expected: Left},
		{name: "absent left", left: cards.Card{}, right: c(cards.Two, cards.Spades), expected: Right},
		{name: "both absent", left: cards.Card{}, right: cards.Card{}, expected: Tie},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			battle := NewSimpleBattle(tc.left, tc.right)

			s.Equal(tc.expected, battle.Winner())
			s.Equal(KindSimple, battle.Kind())
			s.False(battle.IsDeep())
			s.Nil(battle.Next())
			s.Equal(0, battle.Depth())
		})
	}
}

func (s *BattleTestSuite) TestSimpleBattlePanicsOnMatchingFaces() {
	defer func() {
		r := recover()
		s.Require().NotNil(r)
		err, ok := r.(*types.GameError)
		s.Require().True(ok, "panic value should be a GameError")
		s.Equal(types.ErrFaceMatch, err.Code)
	}()

	NewSimpleBattle(c(cards.Nine, cards.Spades), c(cards.Nine, cards.Hearts))
}

func (s *BattleTestSuite) TestDeepBattleConstructionPanics() {
	next := NewSimpleBattle(c(cards.King, cards.Spades), c(cards.Two, cards.Hearts))

	testCases := []struct {
		name  string
		build func()
		code  types.ErrorCode
	}{
		{
			name:  "absent left",
			build: func() { NewDeepBattle(cards.Card{}, c(cards.Five, cards.Hearts), nil, nil, next) },
			code:  types.ErrInvalidCard,
		},
		{
			name:  "absent right",
			build: func() { NewDeepBattle(c(cards.Five, cards.Hearts), cards.Card{}, nil, nil, next) },
			code:  types.ErrInvalidCard,
		},
		{
			name:  "different faces",
			build: func() { NewDeepBattle(c(cards.Five, cards.Hearts), c(cards.Six, cards.Hearts), nil, nil, next) },
			code:  types.ErrFaceMismatch,
		},
		{
			name:  "missing next",
			build: func() { NewDeepBattle(c(cards.Five, cards.Hearts), c(cards.Five, cards.Spades), nil, nil, nil) },
			code:  types.ErrInvalidBattle,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			defer func() {
				err, ok := recover().(*types.GameError)
				s.Require().True(ok, "panic value should be a GameError")
				s.Equal(tc.code, err.Code)
			}()
			tc.build()
		})
	}
}

func (s *BattleTestSuite) TestDeepBattleTakesWinnerFromNext() {
	next := NewSimpleBattle(c(cards.Two, cards.Spades), c(cards.Jack, cards.Hearts))

	battle := NewDeepBattle(c(cards.Five, cards.Spades), c(cards.Five, cards.Hearts), nil, nil, next)

	s.Equal(Right, battle.Winner())
	s.True(battle.IsDeep())
	s.Same(next, battle.Next())
}

func (s *BattleTestSuite) TestDeepBattleTieWhenNextIsEmpty() {
	battle := NewDeepBattle(c(cards.Five, cards.Spades), c(cards.Five, cards.Hearts), nil, nil,
		NewSimpleBattle(cards.Card{}, cards.Card{}))

	s.Equal(Tie, battle.Winner())
}

func (s *BattleTestSuite) TestDepth() {
	leaf := NewSimpleBattle(c(cards.Two, cards.Spades), c(cards.Three, cards.Spades))
	one := NewDeepBattle(c(cards.Four, cards.Spades), c(cards.Four, cards.Hearts), nil, nil, leaf)
	two := NewDeepBattle(c(cards.Six, cards.Spades), c(cards.Six, cards.Hearts), nil, nil, one)
	three := NewDeepBattle(c(cards.Seven, cards.Spades), c(cards.Seven, cards.Hearts), nil, nil, two)

	s.Equal(0, leaf.Depth())
	s.Equal(1, one.Depth())
	s.Equal(2, two.Depth())
	s.Equal(1+two.Depth(), three.Depth())
}

func (s *BattleTestSuite) TestCardsCollectsEveryLevel() {
	leaf := NewSimpleBattle(c(cards.King, cards.Spades), cards.Card{})
	battle := NewDeepBattle(
		c(cards.Five, cards.Spades), c(cards.Five, cards.Hearts),
		[]cards.Card{c(cards.Two, cards.Spades), c(cards.Three, cards.Spades)},
		[]cards.Card{c(cards.Two, cards.Hearts)},
		leaf)

	s.Equal([]cards.Card{
		c(cards.Five, cards.Spades), c(cards.Five, cards.Hearts),
		c(cards.Two, cards.Spades), c(cards.Three, cards.Spades),
		c(cards.Two, cards.Hearts),
		c(cards.King, cards.Spades),
	}, battle.Cards(), "absent cards are not collected")
}

func (s *BattleTestSuite) TestCasualtiesAreCopied() {
	casualties := []cards.Card{c(cards.Two, cards.Spades)}
	battle := NewDeepBattle(c(cards.Five, cards.Spades), c(cards.Five, cards.Hearts), casualties, nil,
		NewSimpleBattle(c(cards.Ace, cards.Spades), c(cards.Two, cards.Hearts)))

	casualties[0] = c(cards.King, cards.Clubs)
	got := battle.LeftCasualties()
	got[0] = c(cards.Queen, cards.Clubs)

	s.Equal([]cards.Card{c(cards.Two, cards.Spades)}, battle.LeftCasualties())
	s.Empty(battle.RightCasualties())
}

func (s *BattleTestSuite) TestString() {
	simple := NewSimpleBattle(c(cards.King, cards.Spades), c(cards.Queen, cards.Hearts))
	absent := NewSimpleBattle(cards.Card{}, c(cards.Queen, cards.Hearts))
	deep := NewDeepBattle(
		c(cards.Five, cards.Spades), c(cards.Five, cards.Hearts),
		[]cards.Card{c(cards.Two, cards.Spades), c(cards.Three, cards.Spades), c(cards.Four, cards.Spades)},
		[]cards.Card{c(cards.Two, cards.Hearts), c(cards.Three, cards.Hearts), c(cards.Four, cards.Hearts)},
		simple)

	s.Equal("KS QH L", simple.String())
	s.Equal("xx QH R", absent.String())
	s.Equal("5S 5H T\n  -> (2S, 3S, 4S) (2H, 3H, 4H)\n  -> KS QH L", deep.String())
}
