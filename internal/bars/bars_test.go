// internal/bars/bars_test.go
package bars

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/qstats/internal/stats"
)

func markers(line string) int {
	_, bar, _ := strings.Cut(line, "\t")
	return strings.Count(bar, "#")
}

func TestRender_SingleFullBucket(t *testing.T) {
	lines, err := Render([]int{0, 12, 0}, 80, "#")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "0.0%\t", lines[0])
	assert.Equal(t, "100.0%\t"+strings.Repeat("#", 65), lines[1])
	assert.Equal(t, 0, markers(lines[2]))
}

func TestRender_ProportionalBars(t *testing.T) {
	lines, err := Render([]int{1, 2, 1}, 55, "#")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(lines[0], "25.0%\t"))
	assert.True(t, strings.HasPrefix(lines[1], "50.0%\t"))
	assert.Equal(t, 20, markers(lines[0]))
	assert.Equal(t, 40, markers(lines[1]))
	assert.Equal(t, 20, markers(lines[2]))
}

func TestRender_CustomMarkerAndNarrowWidth(t *testing.T) {
	lines, err := Render([]int{3, 1}, 10, "*")
	require.NoError(t, err)
	assert.Equal(t, "75.0%\t", lines[0])
	assert.Equal(t, "25.0%\t", lines[1])

	lines, err = Render([]int{1}, 20, "")
	require.NoError(t, err)
	assert.Equal(t, "100.0%\t#####", lines[0])

	lines, err = Render([]int{2, 2}, 17, "*")
	require.NoError(t, err)
	assert.Equal(t, "50.0%\t**", lines[0])
}

func TestRender_Degenerate(t *testing.T) {
	for _, counts := range [][]int{nil, {}, {0, 0, 0}} {
		_, err := Render(counts, 80, "#")
		if !errors.Is(err, ErrDegenerate) {
			t.Fatalf("counts %v: expected ErrDegenerate, got %v", counts, err)
		}
		var derr *stats.DomainError
		require.ErrorAs(t, err, &derr)
	}
}

func TestPercentages(t *testing.T) {
	rel, err := Percentages([]int{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, rel[0], 1e-12)
	assert.InDelta(t, 75.0, rel[1], 1e-12)
}

func TestTerminalWidth_FallbackWhenNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 42, TerminalWidth(f, 42))
	assert.Equal(t, DefaultWidth, TerminalWidth(nil, DefaultWidth))
}
