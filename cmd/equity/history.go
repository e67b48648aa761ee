package main

import (
	"context"
	"errors"

	"github.com/lox/headsup-equity/internal/history"
)

// HistoryCmd lists runs recorded with --history
type HistoryCmd struct {
	History string `type:"path" env:"EQUITY_HISTORY" help:"SQLite database of recorded runs"`
	Limit   int    `short:"l" default:"20" help:"Maximum runs to show (0 for all)"`
	JSON    bool   `help:"Print runs as JSON"`
}

func (c *HistoryCmd) Run(ctx context.Context, app *App) error {
	db := c.History
	if db == "" {
		db = app.Config.Output.History
	}
	if db == "" {
		return errors.New("no history database: pass --history or set output.history")
	}

	repo, err := history.NewSQLiteRepository(db)
	if err != nil {
		return err
	}
	defer repo.Close()

	records, err := repo.List(ctx, c.Limit)
	if err != nil {
		return err
	}

	if c.JSON || app.Config.Output.JSON {
		if records == nil {
			records = []*history.Record{}
		}
		return writeJSON(app.Out, records)
	}
	renderHistory(app.Out, app.Styles, records)
	return nil
}
