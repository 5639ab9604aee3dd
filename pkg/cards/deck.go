package cards

import "github.com/fadedpez/warsim/pkg/rng"

// Deck represents a deck of cards
type Deck struct {
	Cards []Card
}

// NewDeck creates the ordered 52-card deck: suits in ordinal order and,
// within each suit, faces from Ace through King.
func NewDeck() *Deck {
	deck := &Deck{Cards: make([]Card, 0, len(Suits)*len(Faces))}
	for _, suit := range Suits {
		for _, face := range Faces {
			deck.Cards = append(deck.Cards, NewCard(face, suit))
		}
	}
	return deck
}

// Shuffle permutes the deck with src
func (d *Deck) Shuffle(src rng.Source) {
	rng.Shuffle(src, len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns up to n cards from the top of the deck
func (d *Deck) Draw(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	drawn := make([]Card, n)
	copy(drawn, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return drawn
}

// Split deals the deck into two halves, the first half going left. An odd
// card goes to the right.
func (d *Deck) Split() (left, right []Card) {
	left = d.Draw(len(d.Cards) / 2)
	right = d.Draw(len(d.Cards))
	return left, right
}
