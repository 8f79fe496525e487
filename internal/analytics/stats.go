package analytics

import (
	"math"

	"salescli/pkg/contracts/domain"
)

// Series is an ordered sequence of observations
type Series []float64

// Sum returns the total of the series
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean, or 0 for an empty series
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s))
}

// Std returns the sample (N-1) standard deviation. It is undefined for fewer
// than two observations.
func (s Series) Std() domain.NullFloat {
	if len(s) < 2 {
		return domain.Null
	}

	// Welford's online update
	var mean, m2 float64
	for i, v := range s {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	return domain.Float(math.Sqrt(m2 / float64(len(s)-1)))
}

// MovingAverage returns the trailing mean at every position with a full
// window. The result is empty when the series is shorter than window.
func (s Series) MovingAverage(window int) Series {
	if window < 1 || len(s) < window {
		return nil
	}

	out := make(Series, 0, len(s)-window+1)
	var sum float64
	for i, v := range s {
		sum += v
		if i >= window {
			sum -= s[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// Last returns the final observation
func (s Series) Last() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}
