package war

import (
	"strings"

	"github.com/fadedpez/warsim/pkg/cards"
)

// Hand is a player's deck-in-play. Cards leave from the front and arrive
// at the back; nothing is ever reordered in place.
type Hand struct {
	cards []cards.Card
}

// NewHand creates a hand holding cs in order
func NewHand(cs ...cards.Card) *Hand {
	h := &Hand{cards: make([]cards.Card, 0, len(cs))}
	h.AddAll(cs...)
	return h
}

// IsEmpty reports whether the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// TakeOne removes and returns the front card. It returns the absent card
// and false when the hand is empty.
func (h *Hand) TakeOne() (cards.Card, bool) {
	if h.IsEmpty() {
		return cards.Card{}, false
	}
	card := h.cards[0]
	h.cards = h.cards[1:]
	return card, true
}

// TakeUpTo removes and returns up to n front cards in order
func (h *Hand) TakeUpTo(n int) []cards.Card {
	if n < 0 {
		n = 0
	}
	if n > len(h.cards) {
		n = len(h.cards)
	}

	taken := make([]cards.Card, n)
	copy(taken, h.cards[:n])
	h.cards = h.cards[n:]
	return taken
}

// AddAll appends cs to the back of the hand, skipping absent cards
func (h *Hand) AddAll(cs ...cards.Card) {
	for _, card := range cs {
		if card.IsZero() {
			continue
		}
		h.cards = append(h.cards, card)
	}
}

// Cards returns a copy of the hand, front first
func (h *Hand) Cards() []cards.Card {
	out := make([]cards.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// String returns the card indicators front first, space separated
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.Indicator()
	}
	return strings.Join(parts, " ")
}
