package equity

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/preflop-equity/internal/showdown"
	"github.com/lox/preflop-equity/poker"
)

// Dealer supplies cards for one trial. *poker.Deck is the production dealer;
// tests stack the cards.
type Dealer interface {
	Draw() (poker.Card, error)
}

// Seat is one player's part of a trial.
type Seat struct {
	Hole  [2]poker.Card
	Class poker.HandClass
	Score showdown.Score
	Won   bool
}

// Trial records one simulated deal.
type Trial struct {
	Seats []Seat
	Board [BoardSize]poker.Card
}

// Winners returns the indexes of the winning seats.
func (t *Trial) Winners() []int {
	var winners []int
	for i := range t.Seats {
		if t.Seats[i].Won {
			winners = append(winners, i)
		}
	}
	return winners
}

// TrialRunner deals and scores single trials for a fixed seat count. It keeps
// no state between trials and is safe to share between goroutines.
type TrialRunner struct {
	seats     int
	evaluator showdown.Evaluator
}

// NewTrialRunner returns a runner for the given seat count.
func NewTrialRunner(seats int, evaluator showdown.Evaluator) (*TrialRunner, error) {
	if err := validateSeats(seats); err != nil {
		return nil, err
	}
	if evaluator == nil {
		return nil, fmt.Errorf("trial runner: nil evaluator")
	}
	return &TrialRunner{seats: seats, evaluator: evaluator}, nil
}

// Seats returns the configured seat count.
func (r *TrialRunner) Seats() int {
	return r.seats
}

// Run plays one trial from a freshly shuffled deck and records it in counters.
func (r *TrialRunner) Run(rng *rand.Rand, counters *Counters) (Trial, error) {
	t := Trial{Seats: make([]Seat, r.seats)}
	err := r.Deal(poker.NewDeck(rng), counters, &t)
	return t, err
}

// Deal plays one trial with cards from d and records it in counters. The
// trial's Seats slice is reused when it already has the right length.
//
// Each seat takes two consecutive cards in seat order, then the board takes
// five. Every seat holding the lowest score wins; ties give each tied seat a
// full win.
func (r *TrialRunner) Deal(d Dealer, counters *Counters, t *Trial) error {
	if len(t.Seats) != r.seats {
		t.Seats = make([]Seat, r.seats)
	}

	for i := range t.Seats {
		for j := range t.Seats[i].Hole {
			card, err := d.Draw()
			if err != nil {
				return fmt.Errorf("dealing seat %d: %w", i+1, err)
			}
			t.Seats[i].Hole[j] = card
		}
	}
	for i := range t.Board {
		card, err := d.Draw()
		if err != nil {
			return fmt.Errorf("dealing board: %w", err)
		}
		t.Board[i] = card
	}

	best := ^showdown.Score(0)
	var cards [7]poker.Card
	copy(cards[2:], t.Board[:])
	for i := range t.Seats {
		seat := &t.Seats[i]
		cards[0], cards[1] = seat.Hole[0], seat.Hole[1]
		seat.Score = r.evaluator.Rank(cards)
		best = min(best, seat.Score)
	}

	for i := range t.Seats {
		seat := &t.Seats[i]
		seat.Won = seat.Score == best
		seat.Class = poker.Classify(seat.Hole[0], seat.Hole[1])
		counters.Record(seat.Class, seat.Won)
	}
	return nil
}
