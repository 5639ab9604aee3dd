package war

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/warsim/pkg/cards"
)

func c(face cards.Face, suit cards.Suit) cards.Card {
	return cards.NewCard(face, suit)
}

func TestHandTakeOne(t *testing.T) {
	hand := NewHand(c(cards.Two, cards.Spades), c(cards.Three, cards.Hearts))

	first, ok := hand.TakeOne()
	assert.True(t, ok)
	assert.Equal(t, c(cards.Two, cards.Spades), first)

	second, ok := hand.TakeOne()
	assert.True(t, ok)
	assert.Equal(t, c(cards.Three, cards.Hearts), second)

	empty, ok := hand.TakeOne()
	assert.False(t, ok)
	assert.True(t, empty.IsZero(), "empty hand should yield the absent card")
	assert.True(t, hand.IsEmpty())
}

func TestHandTakeUpTo(t *testing.T) {
	testCases := []struct {
		name      string
		take      int
		expected  int
		remaining int
	}{
		{name: "negative behaves as zero", take: -2, expected: 0, remaining: 5},
		{name: "zero", take: 0, expected: 0, remaining: 5},
		{name: "fewer than held", take: 3, expected: 3, remaining: 2},
		{name: "exactly held", take: 5, expected: 5, remaining: 0},
		{name: "more than held", take: 9, expected: 5, remaining: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deck := cards.NewDeck()
			hand := NewHand(deck.Draw(5)...)

			taken := hand.TakeUpTo(tc.take)

			assert.Len(t, taken, tc.expected)
			assert.Equal(t, tc.remaining, hand.Len())
			assert.Equal(t, cards.NewDeck().Cards[:tc.expected], taken, "cards come off the front in order")
		})
	}
}

func TestHandAddAllAppendsInOrderAndSkipsAbsent(t *testing.T) {
	hand := NewHand(c(cards.Ace, cards.Clubs))

	hand.AddAll(c(cards.Two, cards.Clubs), cards.Card{}, c(cards.Three, cards.Clubs))

	assert.Equal(t, []cards.Card{
		c(cards.Ace, cards.Clubs),
		c(cards.Two, cards.Clubs),
		c(cards.Three, cards.Clubs),
	}, hand.Cards())
	assert.Equal(t, "AC 2C 3C", hand.String())
}

func TestHandIsFIFO(t *testing.T) {
	hand := NewHand(c(cards.Four, cards.Spades), c(cards.Five, cards.Spades))

	taken, _ := hand.TakeOne()
	hand.AddAll(taken)

	assert.Equal(t, []cards.Card{c(cards.Five, cards.Spades), c(cards.Four, cards.Spades)}, hand.Cards(),
		"won cards go to the back and are not replayed immediately")
}

func TestHandCardsIsACopy(t *testing.T) {
	hand := NewHand(c(cards.Four, cards.Spades))

	snapshot := hand.Cards()
	snapshot[0] = c(cards.King, cards.Hearts)

	front, _ := hand.TakeOne()
	assert.Equal(t, c(cards.Four, cards.Spades), front)
}
