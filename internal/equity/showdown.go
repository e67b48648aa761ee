package equity

import (
	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/evaluator"
)

// Outcome is the result of a single showdown between the two hole hands
type Outcome uint8

const (
	Tie Outcome = iota
	Hand1Wins
	Hand2Wins
)

// String returns a readable form of the outcome
func (o Outcome) String() string {
	switch o {
	case Hand1Wins:
		return "Hand1 wins"
	case Hand2Wins:
		return "Hand2 wins"
	default:
		return "It's a tie"
	}
}

// Board is a completed five card board
type Board [5]deck.Card

// String returns the board cards separated by spaces
func (b Board) String() string {
	return deck.FormatCards(b[:])
}

// ShowdownResult holds both players' best hands for a completed board
type ShowdownResult struct {
	Outcome   Outcome
	Best1     evaluator.Hand
	Best2     evaluator.Hand
	Strength1 evaluator.Strength
	Strength2 evaluator.Strength
}

// Showdown finds each player's best five card hand on board and compares them.
// The caller guarantees that the nine cards are distinct.
func Showdown(h1, h2 deck.HoleHand, board Board) ShowdownResult {
	var r ShowdownResult
	r.Best1, r.Strength1 = evaluator.Best7(seven(h1, board))
	r.Best2, r.Strength2 = evaluator.Best7(seven(h2, board))

	switch r.Strength1.Compare(r.Strength2) {
	case 1:
		r.Outcome = Hand1Wins
	case -1:
		r.Outcome = Hand2Wins
	default:
		r.Outcome = Tie
	}
	return r
}

func seven(h deck.HoleHand, board Board) (cards [7]deck.Card) {
	copy(cards[:2], h[:])
	copy(cards[2:], board[:])
	return cards
}
