package equity

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/preflop-equity/internal/progress"
	"github.com/lox/preflop-equity/poker"
)

// DefaultBatchSize is the number of trials a Sampler runs between
// cancellation checks and progress reports.
const DefaultBatchSize = 1024

// Sampler runs a sequence of trials on a single goroutine and accumulates the
// results into its own counters.
type Sampler struct {
	runner    *TrialRunner
	sink      progress.Sink
	batchSize int
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithProgress reports completed trials to sink after every batch.
func WithProgress(sink progress.Sink) SamplerOption {
	return func(s *Sampler) {
		s.sink = sink
	}
}

// WithBatchSize sets how many trials run between cancellation checks.
func WithBatchSize(n int) SamplerOption {
	return func(s *Sampler) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewSampler returns a sampler driving runner.
func NewSampler(runner *TrialRunner, opts ...SamplerOption) *Sampler {
	s := &Sampler{runner: runner, batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays trials trials using rng and returns fresh counters holding only
// this run's results. Cancellation is checked between batches; a cancelled
// run returns the context error and no counters.
func (s *Sampler) Run(ctx context.Context, trials int, rng *rand.Rand) (Counters, error) {
	var counters Counters
	if trials < 1 {
		return counters, ErrInvalidTrials
	}

	var deck *poker.Deck
	t := Trial{Seats: make([]Seat, s.runner.Seats())}

	for done := 0; done < trials; {
		if err := ctx.Err(); err != nil {
			return Counters{}, err
		}

		batch := min(s.batchSize, trials-done)
		for range batch {
			if deck == nil {
				deck = poker.NewDeck(rng)
			} else {
				deck.Reset()
			}
			if err := s.runner.Deal(deck, &counters, &t); err != nil {
				return Counters{}, fmt.Errorf("trial %d: %w", done+1, err)
			}
			done++
		}

		if s.sink != nil {
			s.sink.Add(int64(batch))
		}
	}
	return counters, nil
}
