package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card1, card2 string
		expected     string
	}{
		{"As", "Ah", "AA"},
		{"Kd", "Kc", "KK"},
		{"2c", "2h", "22"},
		{"Ah", "Kh", "AKs"},
		{"Ah", "Ks", "AKo"},
		{"Ks", "Ah", "AKo"},
		{"Th", "9h", "T9s"},
		{"9d", "Tc", "T9o"},
		{"7c", "2h", "72o"},
		{"3s", "2s", "32s"},
	}

	for _, tt := range tests {
		t.Run(tt.card1+tt.card2, func(t *testing.T) {
			t.Parallel()
			c1, err1 := ParseCard(tt.card1)
			c2, err2 := ParseCard(tt.card2)
			require.NoError(t, err1)
			require.NoError(t, err2)

			assert.Equal(t, tt.expected, Classify(c1, c2).String())
			assert.Equal(t, Classify(c1, c2), Classify(c2, c1))
		})
	}
}

func TestClassifyCoversAllCombos(t *testing.T) {
	t.Parallel()
	counts := make(map[HandClass]int)
	total := 0
	for i := range DeckSize {
		for j := i + 1; j < DeckSize; j++ {
			a, b := Card(1)<<i, Card(1)<<j
			hc := Classify(a, b)
			require.True(t, hc.Valid())
			require.Equal(t, hc, Classify(b, a))
			counts[hc]++
			total++
		}
	}

	assert.Equal(t, 1326, total)
	require.Len(t, counts, NumHandClasses)

	pairs, suited, offsuit := 0, 0, 0
	for hc, n := range counts {
		assert.Equal(t, hc.Combos(), n, "class %s", hc)
		switch {
		case hc.Pair():
			pairs++
			assert.Equal(t, 6, n)
		case hc.Suited():
			suited++
			assert.Equal(t, 4, n)
		default:
			offsuit++
			assert.Equal(t, 12, n)
		}
	}
	assert.Equal(t, 13, pairs)
	assert.Equal(t, 78, suited)
	assert.Equal(t, 78, offsuit)
}

func TestHandClassLabelsAreUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]HandClass)
	for _, hc := range AllHandClasses() {
		label := hc.String()
		_, dup := seen[label]
		require.False(t, dup, "duplicate label %s", label)
		seen[label] = hc
	}
	assert.Len(t, seen, NumHandClasses)
}

func TestHandClassGridOrder(t *testing.T) {
	t.Parallel()
	classes := AllHandClasses()
	assert.Equal(t, "AA", classes[0].String())
	assert.Equal(t, "AKs", classes[1].String())
	assert.Equal(t, "A2s", classes[12].String())
	assert.Equal(t, "AKo", classes[13].String())
	assert.Equal(t, "KK", classes[14].String())
	assert.Equal(t, "32o", classes[167].String())
	assert.Equal(t, "22", classes[168].String())

	row, col := classes[13].Grid()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestRepresentativeIsIdempotent(t *testing.T) {
	t.Parallel()
	for _, hc := range AllHandClasses() {
		a, b := hc.Representative()
		require.NotEqual(t, a, b)
		assert.Equal(t, hc, Classify(a, b), "class %s", hc)
		assert.Equal(t, hc.String(), Classify(b, a).String())
	}
}

func TestParseHandClass(t *testing.T) {
	t.Parallel()
	for _, hc := range AllHandClasses() {
		parsed, err := ParseHandClass(hc.String())
		require.NoError(t, err)
		assert.Equal(t, hc, parsed)
	}

	parsed, err := ParseHandClass("kas")
	require.NoError(t, err)
	assert.Equal(t, "AKs", parsed.String())

	for _, bad := range []string{"", "A", "AK", "AAs", "AKx", "XKs", "AKso"} {
		_, err := ParseHandClass(bad)
		assert.Error(t, err, "label %q", bad)
	}
}

func TestHandClassCategory(t *testing.T) {
	t.Parallel()
	tests := []struct {
		label    string
		expected HoleCardCategory
	}{
		{"AA", CategoryPremium},
		{"JJ", CategoryPremium},
		{"AKs", CategoryPremium},
		{"AKo", CategoryPremium},
		{"TT", CategoryStrong},
		{"AQo", CategoryStrong},
		{"AJs", CategoryStrong},
		{"99", CategoryMedium},
		{"77", CategoryMedium},
		{"KQs", CategoryMedium},
		{"QJs", CategoryMedium},
		{"66", CategoryWeak},
		{"22", CategoryWeak},
		{"76s", CategoryWeak},
		{"53s", CategoryWeak},
		{"72o", CategoryTrash},
		{"KQo", CategoryTrash},
		{"J4o", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			hc, err := ParseHandClass(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hc.Category())
		})
	}
}
