package evaluator

import (
	"github.com/lox/headsup-equity/internal/deck"
)

// Hand is a five card poker hand
type Hand [5]deck.Card

// String returns the cards of the hand separated by spaces
func (h Hand) String() string {
	return deck.FormatCards(h[:])
}

// wheel is the five-high straight A-2-3-4-5 as sorted ascending ranks.
var wheel = [5]deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}

// Evaluate classifies five distinct cards into a Strength.
// The result does not depend on the order of the cards.
func Evaluate(h Hand) Strength {
	var (
		ranks  [5]deck.Rank
		counts [deck.NumRanks]uint8
		flush  = true
	)
	for i, c := range h {
		ranks[i] = c.Rank
		counts[c.Rank]++
		if c.Suit != h[0].Suit {
			flush = false
		}
	}
	sortAscending(&ranks)

	// Distinct ranks in ascending order
	var (
		order    [5]deck.Rank
		distinct int
	)
	for i, r := range ranks {
		if i == 0 || r != ranks[i-1] {
			order[distinct] = r
			distinct++
		}
	}

	isWheel := ranks == wheel
	straight := distinct == 5 && (ranks[4]-ranks[0] == 4 || isWheel)
	high := ranks[4]
	if isWheel {
		high = deck.Five
	}

	// Canonical tiebreak order: higher count first, then higher rank
	sortByCount(order[:distinct], &counts)
	top := counts[order[0]]
	second := uint8(0)
	if distinct > 1 {
		second = counts[order[1]]
	}

	switch {
	case flush && straight:
		if high == deck.Ace {
			return NewStrength(RoyalFlush, high)
		}
		return NewStrength(StraightFlush, high)
	case top == 4:
		return classify(FourOfAKind, order)
	case top == 3 && second == 2:
		return classify(FullHouse, order)
	case flush:
		return classify(Flush, order)
	case straight:
		return NewStrength(Straight, high)
	case top == 3:
		return classify(ThreeOfAKind, order)
	case top == 2 && second == 2:
		return classify(TwoPair, order)
	case top == 2:
		return classify(Pair, order)
	default:
		return classify(HighCard, order)
	}
}

// classify takes the first arity ranks of the canonical order as tiebreak.
func classify(c Category, order [5]deck.Rank) Strength {
	return NewStrength(c, order[:c.arity()]...)
}

// sortAscending insertion-sorts the five ranks in place.
func sortAscending(r *[5]deck.Rank) {
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r[j] < r[j-1]; j-- {
			r[j], r[j-1] = r[j-1], r[j]
		}
	}
}

func sortByCount(ranks []deck.Rank, counts *[deck.NumRanks]uint8) {
	before := func(a, b deck.Rank) bool {
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a > b
	}
	for i := 1; i < len(ranks); i++ {
		for j := i; j > 0 && before(ranks[j], ranks[j-1]); j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
		}
	}
}
