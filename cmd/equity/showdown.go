package main

import (
	"fmt"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/equity"
)

// ShowdownCmd evaluates both hands on a fully dealt board
type ShowdownCmd struct {
	Hand1 string `required:"" help:"First hole hand, e.g. ASAD"`
	Hand2 string `required:"" help:"Second hole hand, e.g. 2H7S"`
	Board string `short:"b" required:"" help:"Five board cards, e.g. 3C3D3HKS2D"`
	JSON  bool   `help:"Print the result as JSON"`
}

func (c *ShowdownCmd) Run(app *App) error {
	h1, err := deck.ParseHoleHand(c.Hand1)
	if err != nil {
		return fmt.Errorf("hand1: %w", err)
	}
	h2, err := deck.ParseHoleHand(c.Hand2)
	if err != nil {
		return fmt.Errorf("hand2: %w", err)
	}
	cards, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(cards) != len(equity.Board{}) {
		return fmt.Errorf("board: need 5 cards, got %d: %w", len(cards), deck.ErrInvalidCard)
	}
	board := equity.Board(cards)

	all := append(h1.Cards(), h2.Cards()...)
	if err := deck.Distinct(append(all, cards...)...); err != nil {
		return err
	}

	sd := equity.Showdown(h1, h2, board)
	app.Logger.Debug("Showdown", "hand1", sd.Strength1, "hand2", sd.Strength2, "outcome", sd.Outcome)

	if c.JSON || app.Config.Output.JSON {
		return writeJSON(app.Out, newShowdownReport(h1.String(), h2.String(), board, sd))
	}
	renderShowdown(app.Out, app.Styles, app.Color, h1, h2, board, sd)
	return nil
}
