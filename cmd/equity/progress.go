package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"
)

// progressBar draws a single line bubbles progress bar, redrawn in place
type progressBar struct {
	mu      sync.Mutex
	w       io.Writer
	bar     progress.Model
	last    int // last drawn whole percent
	started bool
}

func newProgressBar(w io.Writer, color bool) *progressBar {
	opts := []progress.Option{progress.WithWidth(40)}
	if color {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii), progress.WithoutPercentage())
	}
	return &progressBar{w: w, bar: progress.New(opts...), last: -1}
}

// Update is safe to call from worker goroutines
func (p *progressBar) Update(done, total int) {
	if total <= 0 {
		return
	}
	percent := min(done*100/total, 100)

	p.mu.Lock()
	defer p.mu.Unlock()
	if percent <= p.last {
		return
	}
	p.last = percent
	p.started = true
	fmt.Fprintf(p.w, "\r%s %3d%%", p.bar.ViewAs(float64(percent)/100), percent)
}

// Finish ends the progress line
func (p *progressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		fmt.Fprintln(p.w)
	}
}
