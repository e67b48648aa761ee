package equity

import (
	"context"
	"errors"
	"io"
	rand "math/rand/v2"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/evaluator"
)

var (
	aces     = deck.MustParseHoleHand("ASAD")
	sevenTwo = deck.MustParseHoleHand("2H7S")
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestShowdownFixedDeal(t *testing.T) {
	t.Parallel()
	board := Board(deck.MustParseCards("3C3D3HKS2D"))

	sd := Showdown(aces, sevenTwo, board)

	assert.Equal(t, Hand1Wins, sd.Outcome)
	assert.Equal(t, "Hand1 wins", sd.Outcome.String())
	assert.Equal(t, evaluator.NewStrength(evaluator.FullHouse, deck.Three, deck.Ace), sd.Strength1)
	assert.Equal(t, evaluator.NewStrength(evaluator.FullHouse, deck.Three, deck.Two), sd.Strength2)
	assert.Equal(t, "Full House, Threes full of Aces", sd.Strength1.String())
	assert.ElementsMatch(t, deck.MustParseCards("ASAD3C3D3H"), sd.Best1[:])
}

func TestShowdownOutcomes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		h1    string
		h2    string
		board string
		want  Outcome
	}{
		{"overpair holds", "ASAD", "2H7S", "KC9D4S3HJD", Hand1Wins},
		{"runner runner straight", "ASAD", "2H7S", "3C4D5S6HJD", Hand2Wins},
		{"board plays", "2C3D", "4H5S", "ASKSQSJSTS", Tie},
		{"wheel loses to six high", "AHKD", "6C9D", "2S3H4D5CJS", Hand2Wins},
		{"split broadway", "AHKH", "ADKD", "QSJCTS4C2H", Tie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sd := Showdown(deck.MustParseHoleHand(tt.h1), deck.MustParseHoleHand(tt.h2), Board(deck.MustParseCards(tt.board)))
			assert.Equal(t, tt.want, sd.Outcome, "%s vs %s", sd.Strength1, sd.Strength2)
		})
	}
}

func TestRunFixedDealWithMockSampler(t *testing.T) {
	t.Parallel()
	sampler := new(MockSampler)
	// The first draw must already ban both hole hands
	sampler.On("Draw", mock.MatchedBy(func(banned deck.CardSet) bool {
		return banned == deck.NewCardSet(aces[0], aces[1], sevenTwo[0], sevenTwo[1])
	})).Return(deck.Card{Rank: deck.Three, Suit: deck.Clubs}, nil).Once()
	sampler.deals(deck.MustParseCards("3D3HKS2D")...)

	sim := New(Config{
		Trials:     1,
		Workers:    1,
		Logger:     quietLogger(),
		NewSampler: func(*rand.Rand) deck.Sampler { return sampler },
	})

	result, err := sim.Run(context.Background(), aces, sevenTwo)
	require.NoError(t, err)

	assert.Equal(t, Tally{Hand1Wins: 1}, result.Tally)
	assert.Equal(t, 1, result.Categories[0][evaluator.FullHouse])
	assert.Equal(t, 1, result.Categories[1][evaluator.FullHouse])
	assert.Equal(t, Rates{Hand1Wins: 1}, result.Rates())
	sampler.AssertExpectations(t)
	sampler.AssertNumberOfCalls(t, "Draw", 5)
}

func TestRunBansDrawnCards(t *testing.T) {
	t.Parallel()
	queue := deck.MustParseCards("KCQCJC9D8D")
	var seen []deck.CardSet
	recorder := samplerFunc(func(banned deck.CardSet) (deck.Card, error) {
		seen = append(seen, banned)
		card := queue[0]
		queue = queue[1:]
		return card, nil
	})

	sim := New(Config{Trials: 1, Workers: 1, Logger: quietLogger(),
		NewSampler: func(*rand.Rand) deck.Sampler { return recorder }})
	_, err := sim.Run(context.Background(), aces, sevenTwo)
	require.NoError(t, err)

	require.Len(t, seen, 5)
	for i, banned := range seen {
		assert.Equal(t, 4+i, banned.Len(), "draw %d", i)
	}
	assert.True(t, seen[4].Contains(deck.Card{Rank: deck.Jack, Suit: deck.Clubs}))
	assert.False(t, seen[4].Contains(deck.Card{Rank: deck.Eight, Suit: deck.Diamonds}))
}

type samplerFunc func(banned deck.CardSet) (deck.Card, error)

func (f samplerFunc) Draw(banned deck.CardSet) (deck.Card, error) { return f(banned) }

func TestRunAcesVersusSevenDeuce(t *testing.T) {
	t.Parallel()
	const trials = 100000
	sim := New(Config{Trials: trials, Seed: 12345, Logger: quietLogger()})

	result, err := sim.Run(context.Background(), aces, sevenTwo)
	require.NoError(t, err)

	assert.Equal(t, trials, result.Trials)
	assert.True(t, result.Complete())
	assert.Equal(t, trials, result.Tally.Hand1Wins+result.Tally.Hand2Wins+result.Tally.Ties)

	rates := result.Rates()
	assert.Greater(t, rates.Hand1Wins, 0.80)
	assert.InDelta(t, 1.0, rates.Hand1Wins+rates.Hand2Wins+rates.Ties, 1e-9)
	for _, r := range []float64{rates.Hand1Wins, rates.Hand2Wins, rates.Ties} {
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}

	lo, hi := result.Interval(Hand1Wins)
	assert.Less(t, lo, rates.Hand1Wins)
	assert.Greater(t, hi, rates.Hand1Wins)

	for p := range 2 {
		total := 0
		for _, n := range result.Categories[p] {
			total += n
		}
		assert.Equal(t, trials, total, "player %d category counts", p+1)
	}
	// Pocket aces always make at least a pair
	assert.Zero(t, result.Categories[0][evaluator.HighCard])
	assert.Greater(t, result.CategoryRate(1, evaluator.HighCard), 0.0)
}

func TestRunSingleTrial(t *testing.T) {
	t.Parallel()
	sim := New(Config{Trials: 1, Workers: 8, Logger: quietLogger()})
	result, err := sim.Run(context.Background(), aces, sevenTwo)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Workers)
	assert.Equal(t, 1, result.Tally.Total())
	rates := result.Rates()
	assert.InDelta(t, 1.0, rates.Hand1Wins+rates.Hand2Wins+rates.Ties, 1e-12)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		trials  int
		h1      deck.HoleHand
		h2      deck.HoleHand
		wantErr error
	}{
		{"zero trials", 0, aces, sevenTwo, ErrInvalidTrialCount},
		{"negative trials", -10, aces, sevenTwo, ErrInvalidTrialCount},
		{"shared card", 100, aces, deck.MustParseHoleHand("AS7S"), deck.ErrDuplicateCard},
		{"same hand twice", 100, aces, aces, deck.ErrDuplicateCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sampler := new(MockSampler)
			sim := New(Config{Trials: tt.trials, Logger: quietLogger(),
				NewSampler: func(*rand.Rand) deck.Sampler { return sampler }})

			result, err := sim.Run(context.Background(), tt.h1, tt.h2)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			sampler.AssertNotCalled(t, "Draw", mock.Anything)
		})
	}
}

func TestRunSurfacesSamplerFailure(t *testing.T) {
	t.Parallel()
	sampler := new(MockSampler)
	sampler.On("Draw", mock.Anything).Return(deck.Card{}, deck.ErrDeckExhausted)

	sim := New(Config{Trials: 10, Workers: 1, Logger: quietLogger(),
		NewSampler: func(*rand.Rand) deck.Sampler { return sampler }})
	result, err := sim.Run(context.Background(), aces, sevenTwo)
	require.ErrorIs(t, err, deck.ErrDeckExhausted)
	assert.Nil(t, result)
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	t.Parallel()
	for _, workers := range []int{1, 4} {
		run := func() Tally {
			sim := New(Config{Trials: 20000, Workers: workers, Seed: 99, Logger: quietLogger()})
			result, err := sim.Run(context.Background(), deck.MustParseHoleHand("KSQS"), deck.MustParseHoleHand("JDJC"))
			require.NoError(t, err)
			return result.Tally
		}
		assert.Equal(t, run(), run(), "workers=%d", workers)
	}
}

func TestRunSymmetricHands(t *testing.T) {
	t.Parallel()
	sim := New(Config{Trials: 50000, Seed: 7, Logger: quietLogger()})
	result, err := sim.Run(context.Background(), deck.MustParseHoleHand("ASKS"), deck.MustParseHoleHand("ADKD"))
	require.NoError(t, err)

	rates := result.Rates()
	assert.Greater(t, rates.Ties, 0.8)
	assert.InDelta(t, rates.Hand1Wins, rates.Hand2Wins, 0.02)
}

func TestRunCancelledReturnsPartialResult(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{Trials: 50000, Workers: 2, Logger: quietLogger()})
	result, err := sim.Run(ctx, aces, sevenTwo)
	require.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, result)

	assert.False(t, result.Complete())
	assert.Equal(t, result.Trials, result.Tally.Total())
	assert.Less(t, result.Trials, result.Requested)
}

func TestRunReportsProgress(t *testing.T) {
	t.Parallel()
	const trials = 10000
	var mu sync.Mutex
	last := 0
	calls := 0

	sim := New(Config{Trials: trials, Workers: 3, Logger: quietLogger(),
		Progress: func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, trials, total)
			last = max(last, done)
			calls++
		}})
	_, err := sim.Run(context.Background(), aces, sevenTwo)
	require.NoError(t, err)

	assert.Equal(t, trials, last)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestRunUsesClock(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	sim := New(Config{Trials: 100, Workers: 1, Logger: quietLogger(), Clock: clock})

	result, err := sim.Run(context.Background(), aces, sevenTwo)
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), result.StartedAt)
	assert.Zero(t, result.Elapsed)
	assert.NotEqual(t, uuid.Nil, result.ID)
}

func TestTally(t *testing.T) {
	t.Parallel()
	var a, b Tally
	a.Add(Hand1Wins)
	a.Add(Tie)
	b.Add(Hand2Wins)
	b.Add(Hand2Wins)
	a.Merge(b)

	assert.Equal(t, Tally{Hand1Wins: 1, Hand2Wins: 2, Ties: 1}, a)
	assert.Equal(t, 4, a.Total())
	assert.Equal(t, 2, a.Count(Hand2Wins))
	assert.Equal(t, "It's a tie", Tie.String())
}
