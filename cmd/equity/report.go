package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lox/headsup-equity/internal/equity"
	"github.com/lox/headsup-equity/internal/evaluator"
)

// Report is the JSON form of an equity run
type Report struct {
	ID         uuid.UUID             `json:"id"`
	Hand1      string                `json:"hand1"`
	Hand2      string                `json:"hand2"`
	Requested  int                   `json:"requested"`
	Trials     int                   `json:"trials"`
	Complete   bool                  `json:"complete"`
	Seed       int64                 `json:"seed"`
	Workers    int                   `json:"workers"`
	Counts     equity.Tally          `json:"counts"`
	Rates      equity.Rates          `json:"rates"`
	Intervals  map[string][2]float64 `json:"confidence_95"`
	Categories []map[string]int      `json:"categories,omitempty"`
	StartedAt  time.Time             `json:"started_at"`
	ElapsedMS  float64               `json:"elapsed_ms"`
}

func newReport(r *equity.Result, possibilities bool) Report {
	interval := func(o equity.Outcome) [2]float64 {
		lo, hi := r.Interval(o)
		return [2]float64{lo, hi}
	}

	rep := Report{
		ID:        r.ID,
		Hand1:     r.Hand1.String(),
		Hand2:     r.Hand2.String(),
		Requested: r.Requested,
		Trials:    r.Trials,
		Complete:  r.Complete(),
		Seed:      r.Seed,
		Workers:   r.Workers,
		Counts:    r.Tally,
		Rates:     r.Rates(),
		Intervals: map[string][2]float64{
			"hand1_win_rate": interval(equity.Hand1Wins),
			"hand2_win_rate": interval(equity.Hand2Wins),
			"tie_rate":       interval(equity.Tie),
		},
		StartedAt: r.StartedAt,
		ElapsedMS: float64(r.Elapsed) / float64(time.Millisecond),
	}

	if possibilities {
		for player := range 2 {
			counts := make(map[string]int)
			for _, cat := range evaluator.Categories {
				if n := r.Categories[player][cat]; n > 0 {
					counts[cat.String()] = n
				}
			}
			rep.Categories = append(rep.Categories, counts)
		}
	}
	return rep
}

// ShowdownReport is the JSON form of a fixed board comparison
type ShowdownReport struct {
	Hand1     string   `json:"hand1"`
	Hand2     string   `json:"hand2"`
	Board     string   `json:"board"`
	Outcome   string   `json:"outcome"`
	Best1     string   `json:"best1"`
	Best2     string   `json:"best2"`
	Category1 string   `json:"category1"`
	Category2 string   `json:"category2"`
	Tiebreak1 []string `json:"tiebreak1"`
	Tiebreak2 []string `json:"tiebreak2"`
}

func newShowdownReport(h1, h2 string, board equity.Board, sd equity.ShowdownResult) ShowdownReport {
	ranks := func(s evaluator.Strength) []string {
		var out []string
		for _, r := range s.Tiebreak() {
			out = append(out, r.String())
		}
		return out
	}
	return ShowdownReport{
		Hand1:     h1,
		Hand2:     h2,
		Board:     board.String(),
		Outcome:   sd.Outcome.String(),
		Best1:     sd.Best1.String(),
		Best2:     sd.Best2.String(),
		Category1: sd.Strength1.Category.String(),
		Category2: sd.Strength2.Category.String(),
		Tiebreak1: ranks(sd.Strength1),
		Tiebreak2: ranks(sd.Strength2),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
