package deck

import "fmt"

// HoleHand is a player's two private cards.
type HoleHand [2]Card

// ParseHoleHand parses two concatenated tokens such as "ASAD".
func ParseHoleHand(s string) (HoleHand, error) {
	if len(s) != 4 {
		return HoleHand{}, fmt.Errorf("%w: hole hand %q must be 4 characters", ErrInvalidCard, s)
	}
	first, err := ParseCard(s[:2])
	if err != nil {
		return HoleHand{}, fmt.Errorf("hole hand %q: %w", s, err)
	}
	second, err := ParseCard(s[2:])
	if err != nil {
		return HoleHand{}, fmt.Errorf("hole hand %q: %w", s, err)
	}
	if first == second {
		return HoleHand{}, fmt.Errorf("hole hand %q: %w: %s", s, ErrDuplicateCard, first)
	}
	return HoleHand{first, second}, nil
}

// MustParseHoleHand parses a hole hand and panics on error (for tests)
func MustParseHoleHand(s string) HoleHand {
	h, err := ParseHoleHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hole hand '%s': %v", s, err))
	}
	return h
}

// String returns the concatenated tokens, e.g. "ASAD".
func (h HoleHand) String() string {
	return h[0].String() + h[1].String()
}

// Cards returns the hand as a slice
func (h HoleHand) Cards() []Card {
	return h[:]
}
