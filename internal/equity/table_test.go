package equity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-equity/poker"
)

func fixtureTable(t *testing.T) *Table {
	t.Helper()
	var c Counters
	c[mustClass(t, "AA")] = Tally{Played: 100, Won: 85}
	c[mustClass(t, "KK")] = Tally{Played: 100, Won: 82}
	c[mustClass(t, "72o")] = Tally{Played: 200, Won: 70}
	c[mustClass(t, "AKs")] = Tally{Played: 50, Won: 33}
	return NewTable(c, 2, 225)
}

func TestTableEquity(t *testing.T) {
	t.Parallel()
	table := fixtureTable(t)

	eq, err := table.Equity(mustClass(t, "AA"))
	require.NoError(t, err)
	assert.InDelta(t, 0.85, eq, 1e-12)

	eq, err = table.Equity(mustClass(t, "72o"))
	require.NoError(t, err)
	assert.InDelta(t, 0.35, eq, 1e-12)

	_, err = table.Equity(mustClass(t, "32s"))
	var insufficient *InsufficientSamplesError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "32s", insufficient.Class.String())

	_, err = table.Equity(poker.HandClass(poker.NumHandClasses))
	assert.Error(t, err)
}

func TestTableLookup(t *testing.T) {
	t.Parallel()
	table := fixtureTable(t)

	e, err := table.Lookup("AKs")
	require.NoError(t, err)
	assert.Equal(t, uint64(50), e.Played)
	assert.Equal(t, uint64(33), e.Won)

	_, err = table.Lookup("AKx")
	assert.Error(t, err)
}

func TestTableEntriesGridOrder(t *testing.T) {
	t.Parallel()
	entries := fixtureTable(t).Entries()
	require.Len(t, entries, poker.NumHandClasses)
	for i, e := range entries {
		assert.Equal(t, poker.HandClass(i), e.Class)
	}
}

func TestTableRanked(t *testing.T) {
	t.Parallel()
	ranked := fixtureTable(t).Ranked()
	require.Len(t, ranked, poker.NumHandClasses)

	labels := []string{ranked[0].Class.String(), ranked[1].Class.String(), ranked[2].Class.String(), ranked[3].Class.String()}
	assert.Equal(t, []string{"AA", "KK", "AKs", "72o"}, labels)
	for _, e := range ranked[4:] {
		assert.False(t, e.Sampled())
	}
}

func TestTableTotals(t *testing.T) {
	t.Parallel()
	table := fixtureTable(t)
	assert.Equal(t, uint64(450), table.TotalPlayed())
	assert.Equal(t, 4, table.Coverage())
}

func TestEntryStatistics(t *testing.T) {
	t.Parallel()
	e := Entry{Played: 100, Won: 50}
	assert.InDelta(t, 0.05, e.StdError(), 1e-12)

	lo, hi := e.ConfidenceInterval95()
	assert.InDelta(t, 0.402, lo, 1e-9)
	assert.InDelta(t, 0.598, hi, 1e-9)

	always := Entry{Played: 10, Won: 10}
	assert.Equal(t, 0.0, always.StdError())
	lo, hi = always.ConfidenceInterval95()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)

	empty := Entry{}
	assert.Equal(t, 0.0, empty.StdError())
	lo, hi = empty.ConfidenceInterval95()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.False(t, math.IsNaN(empty.StdError()))
}

func TestTableEquitySample(t *testing.T) {
	t.Parallel()
	sample := fixtureTable(t).EquitySample()
	require.Equal(t, 4, sample.Len())
	assert.InDelta(t, (0.85+0.82+0.66+0.35)/4, sample.Mean(), 1e-12)
	assert.InDelta(t, (0.66+0.82)/2, sample.Median(), 1e-12)
}
