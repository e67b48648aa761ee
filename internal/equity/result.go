package equity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/evaluator"
	"github.com/lox/headsup-equity/internal/statistics"
)

// Tally counts showdown outcomes. Each worker owns one; they are summed at the end.
type Tally struct {
	Hand1Wins int `json:"hand1_wins"`
	Hand2Wins int `json:"hand2_wins"`
	Ties      int `json:"ties"`
}

// Add records one outcome
func (t *Tally) Add(o Outcome) {
	switch o {
	case Hand1Wins:
		t.Hand1Wins++
	case Hand2Wins:
		t.Hand2Wins++
	default:
		t.Ties++
	}
}

// Merge adds the counts of other into t
func (t *Tally) Merge(other Tally) {
	t.Hand1Wins += other.Hand1Wins
	t.Hand2Wins += other.Hand2Wins
	t.Ties += other.Ties
}

// Total returns the number of recorded outcomes
func (t Tally) Total() int {
	return t.Hand1Wins + t.Hand2Wins + t.Ties
}

// Count returns the counter for o
func (t Tally) Count(o Outcome) int {
	switch o {
	case Hand1Wins:
		return t.Hand1Wins
	case Hand2Wins:
		return t.Hand2Wins
	default:
		return t.Ties
	}
}

// CategoryCounts counts how often each best-hand category was made, indexed by Category.
type CategoryCounts [evaluator.RoyalFlush + 1]int

// Add records one best hand
func (c *CategoryCounts) Add(cat evaluator.Category) {
	c[cat]++
}

// Merge adds the counts of other into c
func (c *CategoryCounts) Merge(other CategoryCounts) {
	for i, n := range other {
		c[i] += n
	}
}

// Rates are the tally counts divided by the number of trials
type Rates struct {
	Hand1Wins float64 `json:"hand1_win_rate"`
	Hand2Wins float64 `json:"hand2_win_rate"`
	Ties      float64 `json:"tie_rate"`
}

// Result is the outcome of a simulation run
type Result struct {
	ID         uuid.UUID
	Hand1      deck.HoleHand
	Hand2      deck.HoleHand
	Requested  int
	Trials     int
	Seed       int64
	Workers    int
	Tally      Tally
	Categories [2]CategoryCounts
	StartedAt  time.Time
	Elapsed    time.Duration
}

// Rates returns each count divided by the number of completed trials
func (r *Result) Rates() Rates {
	return Rates{
		Hand1Wins: r.proportion(Hand1Wins).Rate(),
		Hand2Wins: r.proportion(Hand2Wins).Rate(),
		Ties:      r.proportion(Tie).Rate(),
	}
}

// Interval returns the 95% confidence interval of the rate of o
func (r *Result) Interval(o Outcome) (float64, float64) {
	return r.proportion(o).ConfidenceInterval95()
}

// CategoryRate returns the fraction of trials in which player (0 or 1) made cat
func (r *Result) CategoryRate(player int, cat evaluator.Category) float64 {
	return statistics.Proportion{Successes: r.Categories[player][cat], Trials: r.Trials}.Rate()
}

// Complete reports whether every requested trial ran
func (r *Result) Complete() bool {
	return r.Trials == r.Requested
}

func (r *Result) proportion(o Outcome) statistics.Proportion {
	return statistics.Proportion{Successes: r.Tally.Count(o), Trials: r.Trials}
}
