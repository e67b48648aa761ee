package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/equity"
	"github.com/lox/headsup-equity/internal/fileutil"
	"github.com/lox/headsup-equity/internal/history"
)

// RunCmd estimates equity by simulation
type RunCmd struct {
	Hand1         string `env:"EQUITY_HAND1" help:"First hole hand, e.g. ASAD"`
	Hand2         string `env:"EQUITY_HAND2" help:"Second hole hand, e.g. 2H7S"`
	Trials        *int   `short:"n" env:"EQUITY_TRIALS" help:"Number of Monte Carlo trials"`
	Workers       int    `short:"w" env:"EQUITY_WORKERS" help:"Parallel workers (0 = one per CPU, at most 8)"`
	Seed          *int64 `env:"EQUITY_SEED" help:"Random seed for reproducible results"`
	Possibilities bool   `short:"p" help:"Show hand category probabilities"`
	JSON          bool   `help:"Print the result as JSON"`
	Output        string `short:"o" type:"path" help:"Also write the JSON result to this file"`
	History       string `type:"path" env:"EQUITY_HISTORY" help:"SQLite database to record the run in"`
	Progress      bool   `help:"Show a progress bar on stderr"`
}

// settings merges flags over the config file
func (c *RunCmd) settings(app *App) (h1, h2 deck.HoleHand, cfg equity.Config, err error) {
	sim := app.Config.Simulation
	hand1, hand2 := sim.Hand1, sim.Hand2
	if c.Hand1 != "" {
		hand1 = c.Hand1
	}
	if c.Hand2 != "" {
		hand2 = c.Hand2
	}

	if h1, err = deck.ParseHoleHand(hand1); err != nil {
		return h1, h2, cfg, fmt.Errorf("hand1: %w", err)
	}
	if h2, err = deck.ParseHoleHand(hand2); err != nil {
		return h1, h2, cfg, fmt.Errorf("hand2: %w", err)
	}

	cfg = equity.Config{
		Trials:  sim.Trials,
		Workers: sim.Workers,
		Seed:    sim.Seed,
		Logger:  app.Logger,
	}
	if c.Trials != nil {
		cfg.Trials = *c.Trials
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}
	switch {
	case c.Seed != nil:
		cfg.Seed = *c.Seed
	case sim.Seed == 0:
		cfg.Seed = time.Now().UnixNano()
	}

	if cfg.Trials <= 0 {
		return h1, h2, cfg, fmt.Errorf("%w: got %d", equity.ErrInvalidTrialCount, cfg.Trials)
	}
	if err := deck.Distinct(h1[0], h1[1], h2[0], h2[1]); err != nil {
		return h1, h2, cfg, err
	}
	return h1, h2, cfg, nil
}

func (c *RunCmd) Run(ctx context.Context, app *App) error {
	h1, h2, cfg, err := c.settings(app)
	if err != nil {
		return err
	}

	var bar *progressBar
	if c.Progress {
		bar = newProgressBar(app.Err, app.Color)
		cfg.Progress = bar.Update
	}

	result, err := equity.New(cfg).Run(ctx, h1, h2)
	if bar != nil {
		bar.Finish()
	}
	// An interrupted run still reports the trials that completed
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := c.save(ctx, app, result); err != nil {
		return err
	}

	asJSON := c.JSON || app.Config.Output.JSON
	if asJSON {
		if err := writeJSON(app.Out, newReport(result, c.Possibilities)); err != nil {
			return err
		}
	} else {
		renderResult(app.Out, app.Styles, result, c.Possibilities)
	}
	return nil
}

// save writes the optional JSON file and history record
func (c *RunCmd) save(ctx context.Context, app *App, result *equity.Result) error {
	output := c.Output
	if output == "" {
		output = app.Config.Output.File
	}
	if output != "" {
		if err := fileutil.WriteJSONAtomic(output, newReport(result, c.Possibilities)); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		app.Logger.Info("Wrote result", "file", output)
	}

	db := c.History
	if db == "" {
		db = app.Config.Output.History
	}
	if db == "" {
		return nil
	}

	repo, err := history.NewSQLiteRepository(db)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Use a fresh context so an interrupted run is still recorded
	if err := repo.Save(context.WithoutCancel(ctx), history.FromResult(result)); err != nil {
		return err
	}
	app.Logger.Debug("Recorded run", "id", result.ID, "db", db)
	return nil
}
