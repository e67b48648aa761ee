package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/headsup-equity/internal/deck"
	"github.com/lox/headsup-equity/internal/randutil"
)

// ErrInvalidTrialCount is returned when the number of trials is not positive.
var ErrInvalidTrialCount = errors.New("trial count must be positive")

const (
	// DefaultTrials is the trial count used when none is configured
	DefaultTrials = 100000

	// maxWorkers caps the default worker count
	maxWorkers = 8

	// checkEvery is how many trials a worker runs between context checks
	checkEvery = 1024
)

// Config holds configuration for an equity run
type Config struct {
	Trials  int
	Workers int // 0 picks runtime.NumCPU() capped at 8
	Seed    int64
	Logger  *log.Logger
	Clock   quartz.Clock

	// NewSampler builds the board sampler for one worker. Defaults to deck.NewRandomSampler.
	NewSampler func(rng *rand.Rand) deck.Sampler

	// Progress, if set, is called from worker goroutines as trials complete.
	// It must be safe for concurrent use.
	Progress func(done, total int)
}

// Simulator estimates heads-up equity by Monte Carlo simulation
type Simulator struct {
	config Config
}

// New creates a simulator, filling in defaults for unset fields
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), maxWorkers)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.NewSampler == nil {
		config.NewSampler = func(rng *rand.Rand) deck.Sampler {
			return deck.NewRandomSampler(rng)
		}
	}
	return &Simulator{config: config}
}

// workerResult holds the results from a Monte Carlo worker
type workerResult struct {
	tally      Tally
	categories [2]CategoryCounts
}

// Run plays Config.Trials random boards between h1 and h2. Inputs are validated
// before any trial runs. If ctx is cancelled mid run, the result for the trials
// completed so far is returned together with the context error.
func (s *Simulator) Run(ctx context.Context, h1, h2 deck.HoleHand) (*Result, error) {
	if s.config.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, s.config.Trials)
	}
	if err := deck.Distinct(h1[0], h1[1], h2[0], h2[1]); err != nil {
		return nil, fmt.Errorf("hole hands %s and %s: %w", h1, h2, err)
	}

	workers := min(s.config.Workers, s.config.Trials)
	result := &Result{
		ID:        uuid.New(),
		Hand1:     h1,
		Hand2:     h2,
		Requested: s.config.Trials,
		Seed:      s.config.Seed,
		Workers:   workers,
		StartedAt: s.config.Clock.Now(),
	}
	logger := s.config.Logger.With("run", result.ID.String()[:8])
	logger.Info("Starting equity run", "hand1", h1, "hand2", h2, "trials", s.config.Trials, "workers", workers, "seed", s.config.Seed)

	// Divide trials among workers
	perWorker := s.config.Trials / workers
	remainder := s.config.Trials % workers

	results := make([]workerResult, workers)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		trials := perWorker
		if w < remainder {
			trials++
		}

		g.Go(func() error {
			// Create independent RNG for each worker to avoid contention
			rng := randutil.New(randutil.Derive(s.config.Seed, w))
			sampler := s.config.NewSampler(rng)

			err := s.work(gctx, sampler, h1, h2, trials, &results[w], &done)
			logger.Debug("Worker finished", "worker", w, "trials", results[w].tally.Total(), "err", err)
			return err
		})
	}
	err := g.Wait()

	for _, wr := range results {
		result.Tally.Merge(wr.tally)
		result.Categories[0].Merge(wr.categories[0])
		result.Categories[1].Merge(wr.categories[1])
	}
	result.Trials = result.Tally.Total()
	result.Elapsed = s.config.Clock.Since(result.StartedAt)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn("Equity run interrupted", "completed", result.Trials, "requested", result.Requested)
			return result, ctxErr
		}
		return nil, err
	}

	rates := result.Rates()
	logger.Info("Equity run complete",
		"hand1_wins", result.Tally.Hand1Wins,
		"hand2_wins", result.Tally.Hand2Wins,
		"ties", result.Tally.Ties,
		"hand1_rate", rates.Hand1Wins,
		"elapsed", result.Elapsed)
	return result, nil
}

// work runs trials on one worker, accumulating into out as it goes so that a
// cancelled worker still reports what it completed.
func (s *Simulator) work(ctx context.Context, sampler deck.Sampler, h1, h2 deck.HoleHand,
	trials int, out *workerResult, done *atomic.Int64) error {

	base := deck.NewCardSet(h1[0], h1[1], h2[0], h2[1])
	reported := 0
	for i := range trials {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i > 0 {
				s.report(done.Add(int64(i - reported)))
				reported = i
			}
		}

		sd, err := playTrial(sampler, base, h1, h2)
		if err != nil {
			return err
		}
		out.tally.Add(sd.Outcome)
		out.categories[0].Add(sd.Strength1.Category)
		out.categories[1].Add(sd.Strength2.Category)
	}
	s.report(done.Add(int64(trials - reported)))
	return nil
}

func (s *Simulator) report(done int64) {
	if s.config.Progress != nil {
		s.config.Progress(int(done), s.config.Trials)
	}
}

// playTrial deals a fresh board avoiding the hole cards and scores the showdown.
// banned is copied, so no state leaks between trials.
func playTrial(sampler deck.Sampler, banned deck.CardSet, h1, h2 deck.HoleHand) (ShowdownResult, error) {
	var board Board
	if err := deck.Deal(sampler, &banned, board[:]); err != nil {
		return ShowdownResult{}, fmt.Errorf("dealing board: %w", err)
	}
	return Showdown(h1, h2, board), nil
}
