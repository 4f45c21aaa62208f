package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/preflop-equity/internal/progress"
	"github.com/lox/preflop-equity/internal/randutil"
	"github.com/lox/preflop-equity/internal/showdown"
)

// Config holds configuration for a simulation run.
type Config struct {
	Seats   int
	Trials  int
	Workers int   // 0 uses runtime.NumCPU()
	Seed    int64 // 0 picks a random seed, recorded in the table

	// EvaluatorName selects a registered evaluator; empty means native.
	// Evaluator, when set, is used instead.
	EvaluatorName string
	Evaluator     showdown.Evaluator

	BatchSize int
	Progress  progress.Sink
	Logger    *log.Logger
}

func (c *Config) resolve() (showdown.Evaluator, error) {
	if err := validateSeats(c.Seats); err != nil {
		return nil, err
	}
	if c.Trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, c.Trials)
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = randutil.RandomSeed()
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}

	if c.Evaluator != nil {
		if c.EvaluatorName == "" {
			c.EvaluatorName = "custom"
		}
		return c.Evaluator, nil
	}
	if c.EvaluatorName == "" {
		c.EvaluatorName = showdown.Native
	}
	return showdown.New(c.EvaluatorName)
}

// Aggregate runs cfg.Trials trials split across cfg.Workers goroutines and
// merges the results into a Table.
//
// Every worker owns its random stream, derived from the run seed and the
// worker index, so a run is reproducible for a given seed and worker count.
// A worker that fails or panics is reported as a *WorkerFailure and its
// trials are left out; the table is then marked Partial and the returned
// error joins the failures. Cancelling ctx aborts the run and returns the
// context error with no table.
func Aggregate(ctx context.Context, cfg Config) (*Table, error) {
	evaluator, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	runner, err := NewTrialRunner(cfg.Seats, evaluator)
	if err != nil {
		return nil, err
	}

	workers := min(cfg.Workers, cfg.Trials)
	perWorker := cfg.Trials / workers
	remainder := cfg.Trials % workers
	logger := cfg.Logger

	logger.Debug("Starting simulation",
		"seats", cfg.Seats,
		"trials", cfg.Trials,
		"workers", workers,
		"seed", cfg.Seed,
		"evaluator", cfg.EvaluatorName)

	results := make([]Counters, workers)
	failures := make([]*WorkerFailure, workers)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		trials := perWorker
		if w < remainder {
			trials++
		}
		rng := randutil.Derive(cfg.Seed, w)
		sampler := NewSampler(runner, WithProgress(cfg.Progress), WithBatchSize(cfg.BatchSize))

		g.Go(func() error {
			counters, err := runWorker(gctx, sampler, trials, rng)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failures[w] = &WorkerFailure{Worker: w, Trials: trials, Err: err}
				logger.Warn("Worker failed", "worker", w, "trials", trials, "error", err)
				return nil
			}
			results[w] = counters
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}

	var (
		merged    Counters
		completed int
		failed    []*WorkerFailure
		errs      []error
	)
	for w := range workers {
		if f := failures[w]; f != nil {
			failed = append(failed, f)
			errs = append(errs, f)
			continue
		}
		merged.Merge(&results[w])
		completed += perWorker
		if w < remainder {
			completed++
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("merged counters: %w", err)
	}

	table := NewTable(merged, cfg.Seats, completed)
	table.Seed = cfg.Seed
	table.Evaluator = cfg.EvaluatorName
	table.Workers = workers
	table.Elapsed = time.Since(start)
	table.Failures = failed
	table.Partial = len(failed) > 0

	logger.Debug("Simulation complete",
		"trials", completed,
		"elapsed", table.Elapsed,
		"failed_workers", len(failed))

	return table, errors.Join(errs...)
}

func runWorker(ctx context.Context, s *Sampler, trials int, rng *rand.Rand) (counters Counters, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Run(ctx, trials, rng)
}
