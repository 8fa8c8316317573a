// internal/stats/frequency_test.go
package stats

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBreaks(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 5: 3, 10: 4, 100: 6, 1000: 8}
	for n, want := range cases {
		if got := DefaultBreaks(n); got != want {
			t.Fatalf("DefaultBreaks(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBin_EqualWidthEdges(t *testing.T) {
	d, err := Bin(seq(10), 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3.25, 5.5, 7.75, 10}, d.Boundaries)
	assert.Equal(t, []int{3, 2, 2, 3}, d.Counts)
	assert.Equal(t, 10, d.Total())
}

func TestBin_SingleBucket(t *testing.T) {
	d, err := Bin([]float64{1, 5, 9}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9}, d.Boundaries)
	assert.Equal(t, []int{3}, d.Counts)
}

func TestBin_IdenticalValues(t *testing.T) {
	d, err := Bin([]float64{2, 2, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Total())
	assert.Equal(t, 2.0, d.Boundaries[0])
	assert.Equal(t, 2.0, d.Boundaries[3])
}

func TestBin_SkipsEmptyBuckets(t *testing.T) {
	d, err := Bin([]float64{0, 0, 0, 100}, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 0, 0, 1}, d.Counts)
}

func TestBin_Errors(t *testing.T) {
	_, err := Bin(nil, 3)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	_, err = Bin(seq(3), 0)
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
}

func TestBin_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 300; trial++ {
		n := 1 + r.Intn(500)
		values := make([]float64, n)
		for i := range values {
			values[i] = r.ExpFloat64() * 37.5
		}
		Sort(values)
		breaks := 1 + r.Intn(20)

		d, err := Bin(values, breaks)
		require.NoError(t, err)
		if len(d.Counts) != breaks || len(d.Boundaries) != breaks+1 {
			t.Fatalf("unexpected shape: %d counts, %d boundaries", len(d.Counts), len(d.Boundaries))
		}
		if d.Total() != n {
			t.Fatalf("bucket counts sum to %d, want %d", d.Total(), n)
		}
		if d.Boundaries[0] != values[0] {
			t.Fatalf("first boundary %v, want min %v", d.Boundaries[0], values[0])
		}
		if d.Boundaries[breaks] != values[n-1] {
			t.Fatalf("last boundary %v, want max %v", d.Boundaries[breaks], values[n-1])
		}
		for i := 1; i < breaks; i++ {
			if d.Boundaries[i] < d.Boundaries[i-1]-1e-9 {
				t.Fatalf("boundaries decrease at %d: %v", i, d.Boundaries)
			}
		}
	}
}
