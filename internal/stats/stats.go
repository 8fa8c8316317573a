// internal/stats/stats.go

// Package stats computes descriptive statistics over a column of values.
// Quartiles, Summarize and Bin expect input sorted with Sort.
package stats

import (
	"math"
	"slices"
)

// MinSummaryLength is the smallest input for which a summary is meaningful.
const MinSummaryLength = 5

// DomainError reports a computation requested on data it is not defined for.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string { return e.Reason }

var (
	// ErrEmpty is returned by computations that need at least one value.
	ErrEmpty = &DomainError{Reason: "no data points in input"}
	// ErrTooSmall is returned by Summarize for fewer than MinSummaryLength values.
	ErrTooSmall = &DomainError{Reason: "Input too small for meaningful summary"}
)

// Summary is the full set of statistics printed in summary mode.
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Mean   float64
	Q3     float64
	Max    float64
	Range  float64
	StdDev float64
	Length int
}

// Sort orders values ascending in place.
func Sort(values []float64) {
	slices.Sort(values)
}

// Mean returns the arithmetic average of values. A constant column yields
// its value exactly.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	if constant(values) {
		return values[0], nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// StdDev returns the population standard deviation of values around mean.
func StdDev(values []float64, mean float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	if constant(values) {
		return 0, nil
	}
	var squares float64
	for _, v := range values {
		d := v - mean
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(values))), nil
}

// constant reports whether every value equals the first.
func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// Summarize computes every summary statistic of a sorted slice.
func Summarize(sorted []float64) (Summary, error) {
	if len(sorted) < MinSummaryLength {
		return Summary{}, ErrTooSmall
	}
	mean, _ := Mean(sorted)
	std, _ := StdDev(sorted, mean)
	q := Quartiles(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	return Summary{
		Min:    lo,
		Q1:     q.First,
		Median: q.Median,
		Mean:   mean,
		Q3:     q.Third,
		Max:    hi,
		Range:  hi - lo,
		StdDev: std,
		Length: len(sorted),
	}, nil
}
