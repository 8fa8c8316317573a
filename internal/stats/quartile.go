// internal/stats/quartile.go
package stats

// QuartileSet holds the first quartile, the median and the third quartile.
type QuartileSet struct {
	First  float64
	Median float64
	Third  float64
}

// Quartiles returns the quartiles of a sorted, non-empty slice using fixed
// positional offsets from the middle index. No interpolation is done; the
// only averaging is between two neighbouring elements.
//
// Inputs shorter than MinSummaryLength have offsets that fall outside the
// slice; those reads are clamped to the nearest end.
func Quartiles(sorted []float64) QuartileSet {
	n := len(sorted)
	at := func(i int) float64 {
		if i < 0 {
			i = 0
		}
		if i > n-1 {
			i = n - 1
		}
		return sorted[i]
	}
	pair := func(i int) float64 {
		return (at(i) + at(i+1)) / 2
	}

	var q QuartileSet
	if n%2 == 1 {
		mid := n / 2
		q.Median = sorted[mid]
		if mid%2 == 0 {
			i1 := mid / 2
			q.First = at(i1)
			q.Third = at(mid + 1 + i1)
		} else {
			i1 := mid/2 - 1
			q.First = pair(i1)
			q.Third = pair(i1 + 1 + mid)
		}
		return q
	}

	a := n / 2
	b := a - 1
	q.Median = (sorted[b] + sorted[a]) / 2
	if a%2 == 0 {
		i1 := b / 2
		q.First = at(i1)
		q.Third = at(i1 + a)
	} else {
		i1 := a/2 - 1
		q.First = pair(i1)
		q.Third = pair(i1 + a)
	}
	return q
}
