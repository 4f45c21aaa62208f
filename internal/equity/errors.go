package equity

import (
	"errors"
	"fmt"

	"github.com/lox/preflop-equity/poker"
)

const (
	// MinSeats is the smallest seat count a trial supports.
	MinSeats = 1
	// MaxSeats is the largest seat count a 52-card deck can deal: 2*23 + 5 = 51.
	MaxSeats = (poker.DeckSize - BoardSize) / 2
	// BoardSize is the number of community cards.
	BoardSize = 5
)

var (
	// ErrInvalidTrials is returned for a trial count below one.
	ErrInvalidTrials = errors.New("trial count must be positive")
	// ErrInvalidWorkers is returned for a worker count below one.
	ErrInvalidWorkers = errors.New("worker count must be positive")
)

// InvalidSeatCountError reports a seat count outside [MinSeats, MaxSeats].
type InvalidSeatCountError struct {
	Seats int
}

func (e *InvalidSeatCountError) Error() string {
	return fmt.Sprintf("invalid seat count %d: must be between %d and %d", e.Seats, MinSeats, MaxSeats)
}

// InsufficientSamplesError reports a class that was never dealt, so its
// equity is undefined.
type InsufficientSamplesError struct {
	Class poker.HandClass
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("hand class %s was never dealt: equity undefined", e.Class)
}

// WorkerFailure reports a worker whose chunk of trials did not complete. Its
// counters are excluded from the merged result.
type WorkerFailure struct {
	Worker int
	Trials int
	Err    error
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("worker %d (%d trials) failed: %v", e.Worker, e.Trials, e.Err)
}

func (e *WorkerFailure) Unwrap() error {
	return e.Err
}

func validateSeats(seats int) error {
	if seats < MinSeats || seats > MaxSeats {
		return &InvalidSeatCountError{Seats: seats}
	}
	return nil
}
