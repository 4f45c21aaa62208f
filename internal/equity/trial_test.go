package equity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-equity/internal/randutil"
	"github.com/lox/preflop-equity/internal/showdown"
	"github.com/lox/preflop-equity/poker"
)

// stackedDealer deals its cards front to back.
type stackedDealer struct {
	cards []poker.Card
}

func stack(t *testing.T, s string) *stackedDealer {
	t.Helper()
	return &stackedDealer{cards: poker.MustParseCards(s)}
}

func (d *stackedDealer) Draw() (poker.Card, error) {
	if len(d.cards) == 0 {
		return 0, poker.ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func newRunner(t *testing.T, seats int) *TrialRunner {
	t.Helper()
	r, err := NewTrialRunner(seats, showdown.NativeEvaluator{})
	require.NoError(t, err)
	return r
}

func mustClass(t *testing.T, label string) poker.HandClass {
	t.Helper()
	hc, err := poker.ParseHandClass(label)
	require.NoError(t, err)
	return hc
}

func TestNewTrialRunnerSeatBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		seats int
		valid bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{2, true},
		{23, true},
		{24, false},
	}

	for _, tt := range tests {
		_, err := NewTrialRunner(tt.seats, showdown.NativeEvaluator{})
		if tt.valid {
			assert.NoError(t, err, "seats=%d", tt.seats)
			continue
		}
		var seatErr *InvalidSeatCountError
		require.True(t, errors.As(err, &seatErr), "seats=%d", tt.seats)
		assert.Equal(t, tt.seats, seatErr.Seats)
	}

	_, err := NewTrialRunner(2, nil)
	assert.Error(t, err)
}

func TestDealPocketAcesBeatKings(t *testing.T) {
	t.Parallel()
	r := newRunner(t, 2)
	var counters Counters
	var trial Trial

	require.NoError(t, r.Deal(stack(t, "AhAsKdKc2c7d9hJs3s"), &counters, &trial))

	aa, kk := mustClass(t, "AA"), mustClass(t, "KK")
	assert.Equal(t, aa, trial.Seats[0].Class)
	assert.Equal(t, kk, trial.Seats[1].Class)
	assert.Equal(t, []int{0}, trial.Winners())

	assert.Equal(t, Tally{Played: 1, Won: 1}, counters[aa])
	assert.Equal(t, Tally{Played: 1, Won: 0}, counters[kk])
	assert.Equal(t, uint64(2), counters.Played())
	assert.Equal(t, uint64(1), counters.Won())
}

func TestDealTiesAllWin(t *testing.T) {
	t.Parallel()
	r := newRunner(t, 3)
	var counters Counters
	var trial Trial

	// The board is a royal flush, so every seat plays it.
	require.NoError(t, r.Deal(stack(t, "2c3d4h5d7c8d AsKsQsJsTs"), &counters, &trial))

	assert.Equal(t, []int{0, 1, 2}, trial.Winners())
	assert.Equal(t, uint64(3), counters.Played())
	assert.Equal(t, uint64(3), counters.Won(), "each tied seat counts a full win")
}

func TestDealSplitBetweenSomeSeats(t *testing.T) {
	t.Parallel()
	r := newRunner(t, 3)
	var counters Counters
	var trial Trial

	// Seats one and three both make the ace-high straight; seat two has a pair.
	require.NoError(t, r.Deal(stack(t, "Ad2c 5h5c Ac3d KsQhJdTc4s"), &counters, &trial))
	assert.Equal(t, []int{0, 2}, trial.Winners())
	assert.Equal(t, uint64(2), counters.Won())
}

func TestDealEmptyDeck(t *testing.T) {
	t.Parallel()
	r := newRunner(t, 2)
	var counters Counters
	var trial Trial

	err := r.Deal(stack(t, "AhAsKdKc2c"), &counters, &trial)
	require.ErrorIs(t, err, poker.ErrEmptyDeck)

	err = r.Deal(stack(t, "AhAs"), &counters, &trial)
	require.ErrorIs(t, err, poker.ErrEmptyDeck)
	assert.Contains(t, err.Error(), "seat 2")
}

func TestRunDealsDistinctCards(t *testing.T) {
	t.Parallel()
	for _, seats := range []int{1, 2, 6, 10, 23} {
		r := newRunner(t, seats)
		rng := randutil.New(int64(seats))
		var counters Counters

		for range 200 {
			trial, err := r.Run(rng, &counters)
			require.NoError(t, err)

			var used poker.Hand
			for _, seat := range trial.Seats {
				used.AddCard(seat.Hole[0])
				used.AddCard(seat.Hole[1])
			}
			for _, c := range trial.Board {
				used.AddCard(c)
			}
			require.Equal(t, 2*seats+BoardSize, used.CountCards(), "seats=%d", seats)
		}
		assert.Equal(t, uint64(200*seats), counters.Played())
	}
}

func TestRunWinnersHoldMinimumScore(t *testing.T) {
	t.Parallel()
	r := newRunner(t, 6)
	rng := randutil.New(99)
	var counters Counters

	for range 500 {
		trial, err := r.Run(rng, &counters)
		require.NoError(t, err)

		best := trial.Seats[0].Score
		for _, seat := range trial.Seats {
			best = min(best, seat.Score)
		}
		winners := trial.Winners()
		require.NotEmpty(t, winners)
		for i, seat := range trial.Seats {
			assert.Equal(t, seat.Score == best, seat.Won, "seat %d", i)
			assert.Equal(t, poker.Classify(seat.Hole[0], seat.Hole[1]), seat.Class)
		}
	}
	require.NoError(t, counters.Validate())
}

func TestRunSingleSeatAlwaysWins(t *testing.T) {
	t.Parallel()
	r := newRunner(t, 1)
	rng := randutil.New(3)
	var counters Counters

	for range 100 {
		_, err := r.Run(rng, &counters)
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(100), counters.Played())
	assert.Equal(t, uint64(100), counters.Won())
}
