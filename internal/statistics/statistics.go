// Package statistics provides the estimators used to summarise simulation
// results.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Proportion is a binomial count: Successes out of Trials.
type Proportion struct {
	Successes uint64
	Trials    uint64
}

// Mean returns the observed success rate, or 0 with no trials.
func (p Proportion) Mean() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Trials)
}

// Variance returns the per-trial variance p(1-p).
func (p Proportion) Variance() float64 {
	m := p.Mean()
	return m * (1 - m)
}

// StdError returns the standard error of the success rate
func (p Proportion) StdError() float64 {
	if p.Trials == 0 {
		return 0
	}
	return math.Sqrt(p.Variance() / float64(p.Trials))
}

// ConfidenceInterval95 returns the normal-approximation 95% interval for the
// success rate, clamped to [0, 1]. With no trials the interval is [0, 1].
func (p Proportion) ConfidenceInterval95() (float64, float64) {
	if p.Trials == 0 {
		return 0, 1
	}
	mean := p.Mean()
	margin := z95 * p.StdError()
	return math.Max(mean-margin, 0), math.Min(mean+margin, 1)
}

// Validate checks that successes do not exceed trials.
func (p Proportion) Validate() error {
	if p.Successes > p.Trials {
		return fmt.Errorf("successes %d exceed trials %d", p.Successes, p.Trials)
	}
	return nil
}

// Sample holds a set of observations.
type Sample struct {
	Values []float64
}

// Add appends an observation.
func (s *Sample) Add(v float64) {
	s.Values = append(s.Values, v)
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	n := len(s.Values)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	var sq float64
	for _, v := range s.Values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(n-1))
}

// Median returns the median value
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// interpolating between neighbouring observations.
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Sample) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}
