package equity

import (
	"context"
	"fmt"
	"testing"

	"github.com/lox/headsup-equity/internal/deck"
)

func BenchmarkRun(b *testing.B) {
	h1 := deck.MustParseHoleHand("ASKH")
	h2 := deck.MustParseHoleHand("QDQC")

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			sim := New(Config{Trials: 10000, Workers: workers, Seed: 42, Logger: quietLogger()})
			for b.Loop() {
				if _, err := sim.Run(context.Background(), h1, h2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkShowdown(b *testing.B) {
	h1 := deck.MustParseHoleHand("ASKH")
	h2 := deck.MustParseHoleHand("QDQC")
	board := Board(deck.MustParseCards("2C7DJSQH3D"))

	for b.Loop() {
		Showdown(h1, h2, board)
	}
}
