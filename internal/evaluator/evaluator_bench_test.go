package evaluator

import (
	"testing"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/randutil"
)

// randomSevens deals n random 7-card hands from a fixed seed
func randomSevens(seed int64, n int) [][7]deck.Card {
	rng := randutil.New(seed)
	sampler := deck.NewRandomSampler(rng)
	hands := make([][7]deck.Card, n)
	for i := range hands {
		var banned deck.CardSet
		if err := deck.Deal(sampler, &banned, hands[i][:]); err != nil {
			panic(err)
		}
	}
	return hands
}

var tortureHands = []struct {
	name string
	hand string
}{
	{"RoyalFlush", "ASKSQSJSTS"},
	{"StraightFlush", "9H8H7H6H5H"},
	{"Wheel", "AS2D3C4H5S"},
	{"FourOfAKind", "ASAHADACKS"},
	{"FullHouse", "KSKHKDQSQH"},
	{"TwoPair", "JSJHTDTC2S"},
	{"HighCard", "AS9D7C4H2S"},
}

func BenchmarkEvaluate(b *testing.B) {
	for _, tc := range tortureHands {
		hand := Hand(deck.MustParseCards(tc.hand))
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				Evaluate(hand)
			}
		})
	}
}

func BenchmarkBest7(b *testing.B) {
	hands := randomSevens(42, 1024)

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		Best7(hands[i&1023])
		i++
	}
}

func BenchmarkBestHand(b *testing.B) {
	hands := randomSevens(42, 1024)

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		if _, _, err := BestHand(hands[i&1023][:]); err != nil {
			b.Fatal(err)
		}
		i++
	}
}
