// Package progress tracks how many trials a run has completed and reports it
// periodically. Progress never influences simulation results.
package progress

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultInterval is how often a Reporter logs.
const DefaultInterval = 2 * time.Second

// Sink receives completed trial counts. Implementations must be safe for
// concurrent use.
type Sink interface {
	Add(n int64)
}

// Tracker is a Sink that counts completed trials against a known total.
type Tracker struct {
	total int64
	done  atomic.Int64
}

// NewTracker returns a tracker expecting total trials.
func NewTracker(total int64) *Tracker {
	return &Tracker{total: total}
}

// Add implements Sink.
func (t *Tracker) Add(n int64) {
	t.done.Add(n)
}

// Done returns the number of completed trials.
func (t *Tracker) Done() int64 {
	return t.done.Load()
}

// Total returns the expected number of trials.
func (t *Tracker) Total() int64 {
	return t.total
}

// Fraction returns completion in [0, 1].
func (t *Tracker) Fraction() float64 {
	if t.total <= 0 {
		return 1
	}
	f := float64(t.Done()) / float64(t.total)
	return min(max(f, 0), 1)
}

// Complete reports whether every expected trial has been counted.
func (t *Tracker) Complete() bool {
	return t.Done() >= t.total
}

// Reporter logs a tracker's progress on a fixed interval.
type Reporter struct {
	tracker *Tracker
	logger  *log.Logger
	ticker  *quartz.Ticker
	clock   quartz.Clock
	started time.Time
}

// NewReporter starts the reporting ticker on clock. Call Run to consume it.
func NewReporter(tracker *Tracker, logger *log.Logger, clock quartz.Clock, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		tracker: tracker,
		logger:  logger,
		clock:   clock,
		ticker:  clock.NewTicker(interval, "progress"),
		started: clock.Now(),
	}
}

// Run logs on every tick until ctx is cancelled or the tracker completes.
func (r *Reporter) Run(ctx context.Context) {
	defer r.ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.ticker.C:
			r.Report()
			if r.tracker.Complete() {
				return
			}
		}
	}
}

// Report logs the current progress once.
func (r *Reporter) Report() {
	done := r.tracker.Done()
	elapsed := r.clock.Since(r.started)

	fields := []any{
		"done", done,
		"total", r.tracker.Total(),
		"percent", int(r.tracker.Fraction() * 100),
		"elapsed", elapsed.Round(time.Second),
	}
	if secs := elapsed.Seconds(); secs > 0 {
		fields = append(fields, "trials_per_sec", int64(float64(done)/secs))
	}
	r.logger.Info("Simulation progress", fields...)
}
