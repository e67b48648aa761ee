// Package history persists completed equity runs.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lox/headsup-equity/internal/equity"
	"github.com/lox/headsup-equity/internal/statistics"
)

// ErrRunNotFound is returned when no run has the requested ID
var ErrRunNotFound = errors.New("run not found")

// Record is the stored summary of one equity run
type Record struct {
	ID        uuid.UUID     `json:"id"`
	Hand1     string        `json:"hand1"`
	Hand2     string        `json:"hand2"`
	Requested int           `json:"requested"`
	Trials    int           `json:"trials"`
	Seed      int64         `json:"seed"`
	Workers   int           `json:"workers"`
	Tally     equity.Tally  `json:"tally"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	CreatedAt time.Time     `json:"created_at"`
}

// FromResult summarises a simulation result for storage
func FromResult(r *equity.Result) *Record {
	return &Record{
		ID:        r.ID,
		Hand1:     r.Hand1.String(),
		Hand2:     r.Hand2.String(),
		Requested: r.Requested,
		Trials:    r.Trials,
		Seed:      r.Seed,
		Workers:   r.Workers,
		Tally:     r.Tally,
		Elapsed:   r.Elapsed,
		CreatedAt: r.StartedAt.UTC(),
	}
}

// Validate checks the tally is consistent with the trial counts
func (r *Record) Validate() error {
	if r.Trials > r.Requested {
		return fmt.Errorf("run %s: %d trials exceeds %d requested", r.ID, r.Trials, r.Requested)
	}
	if got := r.Tally.Total(); got != r.Trials {
		return fmt.Errorf("run %s: tally sums to %d, want %d", r.ID, got, r.Trials)
	}
	for _, o := range []equity.Outcome{equity.Hand1Wins, equity.Hand2Wins, equity.Tie} {
		p := statistics.Proportion{Successes: r.Tally.Count(o), Trials: r.Trials}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("run %s: %s: %w", r.ID, o, err)
		}
	}
	return nil
}

// Rates returns the stored tally as fractions of the completed trials
func (r *Record) Rates() equity.Rates {
	if r.Trials == 0 {
		return equity.Rates{}
	}
	n := float64(r.Trials)
	return equity.Rates{
		Hand1Wins: float64(r.Tally.Hand1Wins) / n,
		Hand2Wins: float64(r.Tally.Hand2Wins) / n,
		Ties:      float64(r.Tally.Ties) / n,
	}
}

// Repository defines storage operations for run history
type Repository interface {
	// Save stores a record. Saving an existing ID replaces it.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id uuid.UUID) (*Record, error)

	// List returns up to limit records, newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]*Record, error)

	Close() error
}
