package war

import (
	"fmt"
	"strings"

	"github.com/fadedpez/warsim/internal/types"
	"github.com/fadedpez/warsim/pkg/cards"
)

// Kind distinguishes the two battle variants
type Kind uint8

const (
	// KindSimple is a single comparison of two possibly-absent cards
	KindSimple Kind = iota
	// KindDeep is a war: two matching cards, casualties, and a nested battle
	KindDeep
)

// String returns the kind name
func (k Kind) String() string {
	if k == KindDeep {
		return "deep"
	}
	return "simple"
}

// Battle is the immutable record of one turn. A simple battle is a leaf; a
// deep battle wraps the war that broke a face tie and always has a non-nil
// Next.
type Battle struct {
	kind            Kind
	left            cards.Card
	right           cards.Card
	leftCasualties  []cards.Card
	rightCasualties []cards.Card
	next            *Battle
	winner          Winner
}

// NewSimpleBattle records a comparison of left and right. Either card may
// be absent, in which case the other side wins; both absent is a Tie.
// Present cards with the same face panic because that is a war.
func NewSimpleBattle(left, right cards.Card) *Battle {
	b := &Battle{kind: KindSimple, left: left, right: right}

	switch {
	case left.IsZero() && right.IsZero():
		b.winner = Tie
	case left.IsZero():
		b.winner = Right
	case right.IsZero():
		b.winner = Left
	case left.Face == right.Face:
		panic(types.NewGameError(types.ErrFaceMatch,
			fmt.Sprintf("simple battle between matching faces %s and %s", left, right)))
	case cards.CompareFaces(left.Face, right.Face, true) > 0:
		b.winner = Left
	default:
		b.winner = Right
	}

	return b
}

// NewDeepBattle records a war. left and right must be present and share a
// face, and next must not be nil; anything else panics.
func NewDeepBattle(left, right cards.Card, leftCasualties, rightCasualties []cards.Card, next *Battle) *Battle {
	if left.IsZero() || right.IsZero() {
		panic(types.NewGameError(types.ErrInvalidCard, "deep battle requires both cards"))
	}
	if left.Face != right.Face {
		panic(types.NewGameError(types.ErrFaceMismatch,
			fmt.Sprintf("deep battle between different faces %s and %s", left, right)))
	}
	if next == nil {
		panic(types.NewGameError(types.ErrInvalidBattle, "deep battle requires a next battle"))
	}

	return &Battle{
		kind:            KindDeep,
		left:            left,
		right:           right,
		leftCasualties:  append([]cards.Card(nil), leftCasualties...),
		rightCasualties: append([]cards.Card(nil), rightCasualties...),
		next:            next,
		winner:          next.Winner(),
	}
}

// Kind returns the battle variant
func (b *Battle) Kind() Kind { return b.kind }

// IsDeep reports whether the battle is a war
func (b *Battle) IsDeep() bool { return b.kind == KindDeep }

// Left returns the left player's face-up card, absent if their hand was empty
func (b *Battle) Left() cards.Card { return b.left }

// Right returns the right player's face-up card, absent if their hand was empty
func (b *Battle) Right() cards.Card { return b.right }

// Winner returns the side that takes the battle's cards
func (b *Battle) Winner() Winner { return b.winner }

// Next returns the nested battle of a war, or nil for a simple battle
func (b *Battle) Next() *Battle { return b.next }

// LeftCasualties returns the cards the left side committed face down
func (b *Battle) LeftCasualties() []cards.Card {
	return append([]cards.Card(nil), b.leftCasualties...)
}

// RightCasualties returns the cards the right side committed face down
func (b *Battle) RightCasualties() []cards.Card {
	return append([]cards.Card(nil), b.rightCasualties...)
}

// Depth returns the number of consecutive deep battles starting at b
func (b *Battle) Depth() int {
	depth := 0
	for cur := b; cur != nil && cur.kind == KindDeep; cur = cur.next {
		depth++
	}
	return depth
}

// Cards returns every card the battle consumed: the face-up pair and the
// casualties of each level, outermost first. Absent cards are omitted.
func (b *Battle) Cards() []cards.Card {
	var out []cards.Card
	for cur := b; cur != nil; cur = cur.next {
		for _, c := range [2]cards.Card{cur.left, cur.right} {
			if !c.IsZero() {
				out = append(out, c)
			}
		}
		out = append(out, cur.leftCasualties...)
		out = append(out, cur.rightCasualties...)
	}
	return out
}

// String renders the battle. A simple battle is "AS KD L"; a deep battle
// adds one line for the casualties and one for the nested battle.
func (b *Battle) String() string {
	if b.kind == KindSimple {
		return fmt.Sprintf("%s %s %c", b.left.Indicator(), b.right.Indicator(), b.winner.Initial())
	}
	return fmt.Sprintf("%s %s %c\n  -> (%s) (%s)\n  -> %s",
		b.left.Indicator(),
		b.right.Indicator(),
		Tie.Initial(),
		joinIndicators(b.leftCasualties),
		joinIndicators(b.rightCasualties),
		b.next)
}

func joinIndicators(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Indicator()
	}
	return strings.Join(parts, ", ")
}
