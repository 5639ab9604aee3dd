package war

import (
	"fmt"

	"github.com/fadedpez/warsim/internal/types"
	"github.com/fadedpez/warsim/pkg/rng"
)

const (
	// WarCasualties is how many cards each side commits face down in a war
	WarCasualties = 3

	// MaxWarDepth bounds war recursion. Every level consumes at least one
	// card from each hand, so a 52-card game cannot get near it.
	MaxWarDepth = 52
)

// Resolve plays one top-level battle between the two hands. Unless the
// result is a Tie, every card it consumed is shuffled with src and added to
// the back of the winning hand. Tied cards leave play for good.
func Resolve(left, right *Hand, src rng.Source) *Battle {
	battle := resolve(left, right, 0)

	if battle.Winner() == Tie {
		return battle
	}

	won := battle.Cards()
	rng.Shuffle(src, len(won), func(i, j int) {
		won[i], won[j] = won[j], won[i]
	})

	if battle.Winner() == Left {
		left.AddAll(won...)
	} else {
		right.AddAll(won...)
	}
	return battle
}

func resolve(left, right *Hand, depth int) *Battle {
	if depth > MaxWarDepth {
		panic(types.NewGameError(types.ErrInternalError, fmt.Sprintf("war recursion exceeded %d levels", MaxWarDepth)))
	}

	l, _ := left.TakeOne()
	r, _ := right.TakeOne()
	if l.IsZero() || r.IsZero() || l.Face != r.Face {
		return NewSimpleBattle(l, r)
	}

	leftCasualties := left.TakeUpTo(WarCasualties)
	rightCasualties := right.TakeUpTo(WarCasualties)
	next := resolve(left, right, depth+1)

	return NewDeepBattle(l, r, leftCasualties, rightCasualties, next)
}
