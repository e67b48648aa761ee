package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// maxDrawAttempts bounds the rejection loop. With at most 9 of 52 cards banned
// the chance of a legitimate draw needing this many attempts is negligible, so
// hitting it means the banned set was corrupted.
const maxDrawAttempts = 64 * NumCards

// Sampler draws a single card that is not in the banned set.
type Sampler interface {
	Draw(banned CardSet) (Card, error)
}

// RandomSampler draws uniformly from the unbanned cards by rejection sampling
// over the 13x4 rank and suit space. A RandomSampler is not safe for concurrent
// use; give each worker its own.
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler creates a sampler drawing from rng
func NewRandomSampler(rng *rand.Rand) *RandomSampler {
	return &RandomSampler{rng: rng}
}

// Draw samples a rank and a suit independently and resamples while the card is banned.
func (s *RandomSampler) Draw(banned CardSet) (Card, error) {
	if banned.Len() >= NumCards {
		return Card{}, fmt.Errorf("%w: all %d cards are banned", ErrDeckExhausted, NumCards)
	}

	for range maxDrawAttempts {
		card := Card{
			Rank: Rank(s.rng.IntN(NumRanks)),
			Suit: Suit(s.rng.IntN(NumSuits)),
		}
		if !banned.Contains(card) {
			return card, nil
		}
	}
	return Card{}, fmt.Errorf("%w: no unbanned card after %d attempts (%d banned)",
		ErrDeckExhausted, maxDrawAttempts, banned.Len())
}

// Deal fills dst with drawn cards, adding each to banned so later draws cannot repeat it.
func Deal(s Sampler, banned *CardSet, dst []Card) error {
	for i := range dst {
		card, err := s.Draw(*banned)
		if err != nil {
			return err
		}
		banned.Add(card)
		dst[i] = card
	}
	return nil
}
