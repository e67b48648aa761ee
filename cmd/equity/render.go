package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/equity"
	"github.com/lox/headsup-equity/internal/evaluator"
	"github.com/lox/headsup-equity/internal/history"
)

// Styles holds the lipgloss styles used for table output
type Styles struct {
	Header   lipgloss.Style
	Hand     lipgloss.Style
	Win      lipgloss.Style
	Tie      lipgloss.Style
	Category lipgloss.Style
	Percent  lipgloss.Style
	Muted    lipgloss.Style
}

func newStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		Tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		Category: r.NewStyle().Foreground(lipgloss.Color("12")),
		Percent:  r.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func pct(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// renderResult prints the equity table, optionally followed by the category breakdown
func renderResult(w io.Writer, s Styles, r *equity.Result, possibilities bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		s.Header.Render("hand"),
		s.Header.Render("class"),
		s.Header.Render("pctl"),
		s.Header.Render("win"),
		s.Header.Render("tie"),
		s.Header.Render("95% ci"))

	rates := r.Rates()
	tieLo, tieHi := r.Interval(equity.Tie)
	rows := []struct {
		hand    deck.HoleHand
		outcome equity.Outcome
		rate    float64
	}{
		{r.Hand1, equity.Hand1Wins, rates.Hand1Wins},
		{r.Hand2, equity.Hand2Wins, rates.Hand2Wins},
	}
	for _, row := range rows {
		lo, hi := r.Interval(row.outcome)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Hand.Render(row.hand.String()),
			deck.HandClass(row.hand),
			s.Muted.Render(fmt.Sprintf("%.0f", deck.Percentile(row.hand)*100)),
			s.Win.Render(pct(row.rate)),
			s.Tie.Render(pct(rates.Ties)),
			s.Muted.Render(pct(lo)+" - "+pct(hi)))
	}
	tw.Flush()

	if possibilities {
		fmt.Fprintln(w)
		renderCategories(w, s, r)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d hand1 wins, %d hand2 wins, %d ties (tie 95%% ci %s - %s)\n",
		r.Tally.Hand1Wins, r.Tally.Hand2Wins, r.Tally.Ties, pct(tieLo), pct(tieHi))
	if !r.Complete() {
		fmt.Fprintf(w, "%s\n", s.Percent.Render(fmt.Sprintf("stopped after %d of %d trials", r.Trials, r.Requested)))
	}
	fmt.Fprintf(w, "%d trials in %v (%d workers, seed %d)\n",
		r.Trials, r.Elapsed.Truncate(time.Millisecond), r.Workers, r.Seed)
}

// renderCategories prints how often each hand finished in each category, strongest first
func renderCategories(w io.Writer, s Styles, r *equity.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		s.Category.Render("hand"),
		s.Hand.Render(r.Hand1.String()),
		s.Hand.Render(r.Hand2.String()))

	for _, cat := range slices.Backward(evaluator.Categories[:]) {
		if r.Categories[0][cat] == 0 && r.Categories[1][cat] == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s", s.Category.Render(cat.String()))
		for player := range 2 {
			if r.Categories[player][cat] == 0 {
				fmt.Fprintf(tw, "\t%s", s.Percent.Render("."))
				continue
			}
			fmt.Fprintf(tw, "\t%s", s.Percent.Render(pct(r.CategoryRate(player, cat))))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// showCards joins card tokens, using suit pips when pretty is set
func showCards(cards []deck.Card, pretty bool) string {
	if !pretty {
		return deck.FormatCards(cards)
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

// renderShowdown prints both best hands on a fixed board and the outcome
func renderShowdown(w io.Writer, s Styles, pretty bool, h1, h2 deck.HoleHand, board equity.Board, sd equity.ShowdownResult) {
	fmt.Fprintf(w, "%s\n", s.Header.Render("board"))
	fmt.Fprintf(w, "%s\n\n", showCards(board[:], pretty))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		s.Header.Render("hand"),
		s.Header.Render("best five"),
		s.Header.Render("strength"))
	fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Hand.Render(showCards(h1[:], pretty)), showCards(sd.Best1[:], pretty), s.Category.Render(sd.Strength1.String()))
	fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Hand.Render(showCards(h2[:], pretty)), showCards(sd.Best2[:], pretty), s.Category.Render(sd.Strength2.String()))
	tw.Flush()

	fmt.Fprintln(w)
	style := s.Win
	if sd.Outcome == equity.Tie {
		style = s.Tie
	}
	fmt.Fprintln(w, style.Render(sd.Outcome.String()))
}

// renderHistory prints stored runs, newest first
func renderHistory(w io.Writer, s Styles, records []*history.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, s.Muted.Render("no saved runs"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		s.Header.Render("id"),
		s.Header.Render("when"),
		s.Header.Render("hand1"),
		s.Header.Render("hand2"),
		s.Header.Render("trials"),
		s.Header.Render("hand1 win"),
		s.Header.Render("hand2 win"),
		s.Header.Render("tie"))
	for _, rec := range records {
		rates := rec.Rates()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			s.Muted.Render(rec.ID.String()[:8]),
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Hand.Render(rec.Hand1),
			s.Hand.Render(rec.Hand2),
			rec.Trials,
			s.Win.Render(pct(rates.Hand1Wins)),
			s.Win.Render(pct(rates.Hand2Wins)),
			s.Tie.Render(pct(rates.Ties)))
	}
	tw.Flush()
}
