// internal/stats/frequency.go
package stats

import "math"

// Distribution is the result of Bin. Boundaries has one more element than
// Counts: bucket i covers [Boundaries[i], Boundaries[i+1]).
type Distribution struct {
	Boundaries []float64
	Counts     []int
}

// Total returns the number of values counted across all buckets.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// DefaultBreaks picks a bucket count for n values: ceil(ln(n)) + 1.
func DefaultBreaks(n int) int {
	if n < 1 {
		return 1
	}
	return int(math.Ceil(math.Log(float64(n)))) + 1
}

// Bin counts a sorted, non-empty slice into breaks buckets spanning
// [min, max]. A bucket pointer only moves forward, so the pass is linear.
func Bin(sorted []float64, breaks int) (Distribution, error) {
	if len(sorted) == 0 {
		return Distribution{}, ErrEmpty
	}
	if breaks < 1 {
		return Distribution{}, &DomainError{Reason: "number of breaks must be at least 1"}
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	bounds := intervals(lo, hi, breaks)
	counts := make([]int, breaks)
	bucket := 0
	for _, v := range sorted {
		for bucket < breaks-1 && v >= bounds[bucket+1] {
			bucket++
		}
		counts[bucket]++
	}
	// The last edge sits one above max while counting so max lands inside.
	// Undoing the +1 by subtraction can be off by an ulp, so restore hi.
	bounds[breaks] = hi

	return Distribution{Boundaries: bounds, Counts: counts}, nil
}

// intervals builds breaks+1 edges from lo to hi+1. The -1 folded into step
// is cancelled by the (i-1)+1 terms, leaving edges lo + i*(hi-lo)/breaks.
func intervals(lo, hi float64, breaks int) []float64 {
	step := (hi-lo)/float64(breaks) - 1
	bounds := make([]float64, breaks+1)
	bounds[0] = lo
	for i := 1; i < breaks; i++ {
		bounds[i] = float64(i)*step + float64(i-1) + lo + 1
	}
	bounds[breaks] = hi + 1
	return bounds
}
