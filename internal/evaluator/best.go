package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/headsup-equity/internal/deck"
)

// ErrTooFewCards is returned when fewer than five cards are offered to BestHand.
var ErrTooFewCards = errors.New("need at least 5 cards")

// sevenChooseFive holds the 21 index tuples selecting five of seven cards.
var sevenChooseFive = func() (out [21][5]int) {
	i := 0
	for idx := range Combinations(7, 5) {
		copy(out[i][:], idx)
		i++
	}
	return out
}()

// BestHand returns the strongest five card hand among all five card subsets
// of cards. Ties between subsets are broken by enumeration order.
func BestHand(cards []deck.Card) (Hand, Strength, error) {
	if len(cards) < 5 {
		return Hand{}, Strength{}, fmt.Errorf("%w: got %d", ErrTooFewCards, len(cards))
	}
	if err := deck.Distinct(cards...); err != nil {
		return Hand{}, Strength{}, err
	}

	var (
		best     Hand
		bestRank Strength
		found    bool
	)
	for idx := range Combinations(len(cards), 5) {
		var h Hand
		for i, j := range idx {
			h[i] = cards[j]
		}
		if s := Evaluate(h); !found || s.Beats(bestRank) {
			best, bestRank, found = h, s, true
		}
	}
	return best, bestRank, nil
}

// Best7 is BestHand specialised for two hole cards plus a five card board.
// The caller guarantees the seven cards are distinct.
func Best7(cards [7]deck.Card) (Hand, Strength) {
	var (
		best     Hand
		bestRank Strength
	)
	for n, idx := range sevenChooseFive {
		h := Hand{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]}
		if s := Evaluate(h); n == 0 || s.Beats(bestRank) {
			best, bestRank = h, s
		}
	}
	return best, bestRank
}
