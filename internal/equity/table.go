package equity

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/lox/preflop-equity/internal/statistics"
	"github.com/lox/preflop-equity/poker"
)

// Entry is one hand class's result.
type Entry struct {
	Class  poker.HandClass
	Played uint64
	Won    uint64
}

// Sampled reports whether the class was dealt at least once.
func (e Entry) Sampled() bool {
	return e.Played > 0
}

// Equity returns won/played for the class.
func (e Entry) Equity() (float64, error) {
	if e.Played == 0 {
		return 0, &InsufficientSamplesError{Class: e.Class}
	}
	return float64(e.Won) / float64(e.Played), nil
}

// Proportion returns the entry as a binomial count of wins over plays.
func (e Entry) Proportion() statistics.Proportion {
	return statistics.Proportion{Successes: e.Won, Trials: e.Played}
}

// StdError returns the standard error of the equity estimate, or 0 for an
// unsampled class.
func (e Entry) StdError() float64 {
	return e.Proportion().StdError()
}

// ConfidenceInterval95 returns the 95% confidence interval for the equity,
// clamped to [0, 1]. An unsampled class spans the whole range.
func (e Entry) ConfidenceInterval95() (float64, float64) {
	return e.Proportion().ConfidenceInterval95()
}

// Table is the merged result of a simulation: one entry per hand class plus
// the run's metadata.
type Table struct {
	Seats     int
	Trials    int // trials that contributed to the counters
	Workers   int
	Seed      int64
	Evaluator string
	Elapsed   time.Duration

	// Partial is set when some workers failed; Failures lists them.
	Partial  bool
	Failures []*WorkerFailure

	counters Counters
}

// NewTable wraps merged counters for a run of trials trials at seats seats.
func NewTable(counters Counters, seats, trials int) *Table {
	return &Table{Seats: seats, Trials: trials, counters: counters}
}

// Counters returns a copy of the underlying counters.
func (t *Table) Counters() Counters {
	return t.counters
}

// Entry returns the result for hc.
func (t *Table) Entry(hc poker.HandClass) Entry {
	if !hc.Valid() {
		return Entry{Class: hc}
	}
	tally := t.counters[hc]
	return Entry{Class: hc, Played: tally.Played, Won: tally.Won}
}

// Equity returns the win probability of hc. A class that was never dealt
// returns *InsufficientSamplesError.
func (t *Table) Equity(hc poker.HandClass) (float64, error) {
	if !hc.Valid() {
		return 0, fmt.Errorf("invalid hand class %d", hc)
	}
	return t.Entry(hc).Equity()
}

// Lookup returns the entry for a class label such as "AKs" or "72o".
func (t *Table) Lookup(label string) (Entry, error) {
	hc, err := poker.ParseHandClass(label)
	if err != nil {
		return Entry{}, err
	}
	return t.Entry(hc), nil
}

// Entries returns all 169 entries in grid order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, poker.NumHandClasses)
	for _, hc := range poker.AllHandClasses() {
		entries = append(entries, t.Entry(hc))
	}
	return entries
}

// Ranked returns all entries ordered by equity, strongest first. Unsampled
// classes sort last; equal equities keep grid order.
func (t *Table) Ranked() []Entry {
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.Sampled() != b.Sampled() {
			if a.Sampled() {
				return -1
			}
			return 1
		}
		ea, _ := a.Equity()
		eb, _ := b.Equity()
		return cmp.Compare(eb, ea)
	})
	return entries
}

// TotalPlayed returns the number of seat occurrences across all classes,
// which is Trials*Seats for a complete run.
func (t *Table) TotalPlayed() uint64 {
	return t.counters.Played()
}

// Coverage returns the number of classes dealt at least once.
func (t *Table) Coverage() int {
	n := 0
	for i := range t.counters {
		if t.counters[i].Played > 0 {
			n++
		}
	}
	return n
}

// EquitySample collects the equities of every sampled class.
func (t *Table) EquitySample() *statistics.Sample {
	s := &statistics.Sample{}
	for _, e := range t.Entries() {
		if eq, err := e.Equity(); err == nil {
			s.Add(eq)
		}
	}
	return s
}
