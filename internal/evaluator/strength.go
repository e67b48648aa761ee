package evaluator

import (
	"fmt"

	"github.com/lox/headsup-equity/internal/deck"
)

const maxTiebreak = 5

// Strength is the totally ordered value of a five card hand: the category
// first, then the tiebreak rank-indices, most significant first.
type Strength struct {
	Category Category
	tiebreak [maxTiebreak]deck.Rank
	n        uint8
}

// NewStrength builds a Strength from a category and its tiebreak ranks.
// Ranks beyond the fifth are ignored.
func NewStrength(c Category, tiebreak ...deck.Rank) Strength {
	s := Strength{Category: c}
	s.n = uint8(copy(s.tiebreak[:], tiebreak))
	return s
}

// Tiebreak returns the tiebreak ranks, most significant first
func (s Strength) Tiebreak() []deck.Rank {
	out := make([]deck.Rank, s.n)
	copy(out, s.tiebreak[:s.n])
	return out
}

// Compare returns -1 if s is weaker than other, 0 if equal, 1 if s is stronger.
// Tiebreaks are compared element by element; a missing element counts as 0.
func (s Strength) Compare(other Strength) int {
	if s.Category != other.Category {
		if s.Category < other.Category {
			return -1
		}
		return 1
	}
	n := max(s.n, other.n)
	for i := range n {
		a, b := s.at(i), other.at(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

func (s Strength) at(i uint8) int {
	if i >= s.n {
		return 0
	}
	return s.tiebreak[i].Index()
}

// Beats returns true if s is strictly stronger than other
func (s Strength) Beats(other Strength) bool {
	return s.Compare(other) > 0
}

// String describes the hand, e.g. "Full House, Threes full of Aces".
func (s Strength) String() string {
	t := s.tiebreak
	switch s.Category {
	case RoyalFlush:
		return s.Category.String()
	case StraightFlush, Straight, Flush, HighCard:
		return fmt.Sprintf("%s, %s high", s.Category, t[0].Name())
	case FourOfAKind, ThreeOfAKind:
		return fmt.Sprintf("%s, %s", s.Category, plural(t[0]))
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", s.Category, plural(t[0]), plural(t[1]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", s.Category, plural(t[0]), plural(t[1]))
	case Pair:
		return fmt.Sprintf("Pair of %s", plural(t[0]))
	default:
		return s.Category.String()
	}
}

func plural(r deck.Rank) string {
	if r == deck.Six {
		return "Sixes"
	}
	return r.Name() + "s"
}
