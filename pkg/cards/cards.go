package cards

import (
	"fmt"

	"github.com/fadedpez/warsim/internal/types"
)

// DefaultAceHigh is the ace mode used when a caller does not choose one
const DefaultAceHigh = false

// Suit represents a card suit. Its value is the suit ordinal.
type Suit uint8

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Suits lists every suit in ordinal order
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

var suitNames = [...]string{"Spades", "Clubs", "Diamonds", "Hearts"}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return int(s) < len(suitNames)
}

// Ordinal returns the suit's position used for ordering
func (s Suit) Ordinal() int {
	return int(s)
}

// Indicator returns the first letter of the suit name
func (s Suit) Indicator() byte {
	if !s.Valid() {
		return '?'
	}
	return suitNames[s][0]
}

// String returns the suit name
func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Face represents a card face. Its value is the default (ace-low) ordinal.
type Face uint8

const (
	NoFace Face = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// aceHighOrdinal is the Ace's ordinal when aces rank above kings
const aceHighOrdinal = 14

// Faces lists every face in deck construction order
var Faces = []Face{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var faceNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const faceIndicators = "?A23456789TJQK"

// Valid reports whether f is one of the thirteen faces
func (f Face) Valid() bool {
	return f > NoFace && f <= King
}

// Ordinal returns the face's rank under the given ace mode
func (f Face) Ordinal(aceHigh bool) int {
	if aceHigh && f == Ace {
		return aceHighOrdinal
	}
	return int(f)
}

// Indicator returns the single-character face symbol
func (f Face) Indicator() byte {
	if !f.Valid() {
		return '?'
	}
	return faceIndicators[f]
}

// String returns the face name
func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", uint8(f))
	}
	return faceNames[f]
}

// CompareFaces orders two faces under the given ace mode. NoFace sorts
// before every real face.
func CompareFaces(a, b Face, aceHigh bool) int {
	return faceOrdinal(a, aceHigh) - faceOrdinal(b, aceHigh)
}

func faceOrdinal(f Face, aceHigh bool) int {
	if !f.Valid() {
		return 0
	}
	return f.Ordinal(aceHigh)
}

// Card represents a playing card. The zero value is the absent card.
type Card struct {
	Face Face
	Suit Suit
}

// NewCard creates a card, panicking if face or suit is unknown
func NewCard(face Face, suit Suit) Card {
	if !face.Valid() {
		panic(types.NewGameError(types.ErrInvalidCard, fmt.Sprintf("unknown face %d", uint8(face))))
	}
	if !suit.Valid() {
		panic(types.NewGameError(types.ErrInvalidCard, fmt.Sprintf("unknown suit %d", uint8(suit))))
	}
	return Card{Face: face, Suit: suit}
}

// IsZero reports whether c is the absent card
func (c Card) IsZero() bool {
	return c.Face == NoFace
}

// Indicator returns the two-character form, e.g. "AS" or "TH"
func (c Card) Indicator() string {
	if c.IsZero() {
		return "xx"
	}
	return string([]byte{c.Face.Indicator(), c.Suit.Indicator()})
}

// Name returns the long form, e.g. "Ace of Spades"
func (c Card) Name() string {
	return c.Face.String() + " of " + c.Suit.String()
}

// String returns the string representation of the card
func (c Card) String() string {
	return c.Indicator()
}

// Compare orders c against other using DefaultAceHigh
func (c Card) Compare(other Card) int {
	return Compare(c, other, DefaultAceHigh)
}

// Compare orders two cards by face under the given ace mode, then by suit
// ordinal. The absent card sorts first.
func Compare(a, b Card, aceHigh bool) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return -1
	case b.IsZero():
		return 1
	}

	if result := CompareFaces(a.Face, b.Face, aceHigh); result != 0 {
		return result
	}
	return a.Suit.Ordinal() - b.Suit.Ordinal()
}
