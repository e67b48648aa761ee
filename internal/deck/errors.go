package deck

import "errors"

var (
	// ErrInvalidCard is returned for an illegal rank or suit symbol or a malformed token.
	ErrInvalidCard = errors.New("invalid card")

	// ErrDuplicateCard is returned when the same card appears twice in a hand or across hands.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrDeckExhausted is returned when no unbanned card is left to draw.
	ErrDeckExhausted = errors.New("deck exhausted")
)
