package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProportion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		p          Proportion
		mean       float64
		stdErr     float64
		low, high  float64
		shouldFail bool
	}{
		{"empty", Proportion{}, 0, 0, 0, 1, false},
		{"half", Proportion{Successes: 50, Trials: 100}, 0.5, 0.05, 0.402, 0.598, false},
		{"always", Proportion{Successes: 10, Trials: 10}, 1, 0, 1, 1, false},
		{"never", Proportion{Successes: 0, Trials: 10}, 0, 0, 0, 0, false},
		{"impossible", Proportion{Successes: 11, Trials: 10}, 1.1, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.shouldFail {
				assert.Error(t, tt.p.Validate())
				return
			}
			assert.NoError(t, tt.p.Validate())
			assert.InDelta(t, tt.mean, tt.p.Mean(), 1e-12)
			assert.InDelta(t, tt.stdErr, tt.p.StdError(), 1e-12)
			low, high := tt.p.ConfidenceInterval95()
			assert.InDelta(t, tt.low, low, 1e-9)
			assert.InDelta(t, tt.high, high, 1e-9)
		})
	}
}

func TestProportionIntervalClamped(t *testing.T) {
	t.Parallel()
	low, high := Proportion{Successes: 1, Trials: 2}.ConfidenceInterval95()
	assert.GreaterOrEqual(t, low, 0.0)
	assert.LessOrEqual(t, high, 1.0)
}

func TestSampleEmpty(t *testing.T) {
	t.Parallel()
	var s Sample
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.Percentile(0.5))
}

func TestSample(t *testing.T) {
	t.Parallel()
	var s Sample
	for _, v := range []float64{5, 1, 4, 2, 3} {
		s.Add(v)
	}

	assert.Equal(t, 5, s.Len())
	assert.InDelta(t, 3.0, s.Mean(), 1e-12)
	assert.InDelta(t, 1.5811388300841898, s.StdDev(), 1e-12)
	assert.InDelta(t, 3.0, s.Median(), 1e-12)
	assert.InDelta(t, 1.0, s.Percentile(0), 1e-12)
	assert.InDelta(t, 5.0, s.Percentile(1), 1e-12)
	assert.InDelta(t, 2.0, s.Percentile(0.25), 1e-12)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, s.Values, "input order is preserved")

	s.Add(6)
	assert.InDelta(t, 3.5, s.Median(), 1e-12)
}
