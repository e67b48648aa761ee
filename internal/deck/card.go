package deck

import (
	"fmt"
	"strings"
)

const (
	rankSymbols = "23456789TJQKA"
	suitSymbols = "SDCH"

	// NumRanks and NumSuits describe the 13x4 card space.
	NumRanks = len(rankSymbols)
	NumSuits = len(suitSymbols)
	NumCards = NumRanks * NumSuits
)

// Rank is a card rank stored as its rank-index: 0 for a Two up to 12 for an Ace.
type Rank uint8

const (
	Two Rank = iota
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
	Ace
)

// Index returns the rank-index (0-12) used for ordering and tiebreaks.
func (r Rank) Index() int {
	return int(r)
}

// String returns the single character rank symbol
func (r Rank) String() string {
	if int(r) >= NumRanks {
		return "?"
	}
	return rankSymbols[r : r+1]
}

// Name returns the English name of the rank, e.g. "Ace".
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Suit represents a card suit. Suits carry no ordering; they only matter for flushes.
type Suit uint8

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

// String returns the single character suit symbol
func (s Suit) String() string {
	if int(s) >= NumSuits {
		return "?"
	}
	return suitSymbols[s : s+1]
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Card represents a playing card. Two cards are equal iff rank and suit match,
// so Card can be compared with == and used as a map key.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank symbol (23456789TJQKA) and a suit symbol (SDCH).
// Lower case symbols are accepted.
func NewCard(rank, suit byte) (Card, error) {
	r := strings.IndexByte(rankSymbols, upper(rank))
	if r < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, rank)
	}
	s := strings.IndexByte(suitSymbols, upper(suit))
	if s < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suit)
	}
	return Card{Rank: Rank(r), Suit: Suit(s)}, nil
}

// String returns the two character token for the card, e.g. "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a unicode suit pip, e.g. "A♠".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// index maps the card to 0-51, rank major.
func (c Card) index() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// ParseCard parses a single two character token such as "AS" or "td".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: token %q must be 2 characters", ErrInvalidCard, token)
	}
	return NewCard(token[0], token[1])
}

// ParseCards parses concatenated card tokens, e.g. "3C3D3HKS2D".
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string %q has odd length %d", ErrInvalidCard, s, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := NewCard(s[i], s[i+1])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// Distinct returns ErrDuplicateCard if any card appears more than once.
func Distinct(cards ...Card) error {
	var seen CardSet
	for _, card := range cards {
		if seen.Contains(card) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.Add(card)
	}
	return nil
}

// FormatCards joins card tokens with spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
