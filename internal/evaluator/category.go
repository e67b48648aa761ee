package evaluator

// Category is the class of a five card hand. Higher values are stronger.
type Category uint8

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest
var Categories = [...]Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// arity is the number of tiebreak values a category carries.
func (c Category) arity() int {
	switch c {
	case StraightFlush, RoyalFlush, Straight:
		return 1
	case FourOfAKind, FullHouse:
		return 2
	case ThreeOfAKind, TwoPair:
		return 3
	case Pair:
		return 4
	case Flush, HighCard:
		return 5
	default:
		return 0
	}
}
