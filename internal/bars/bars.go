// internal/bars/bars.go

// Package bars draws a horizontal bar chart of bucket counts scaled to the
// width of the terminal.
package bars

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	log "github.com/sirupsen/logrus"

	"github.com/mwiater/qstats/internal/stats"
)

const (
	// LabelWidth is the room reserved on each line for the percentage label.
	LabelWidth = 15
	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 80
	// DefaultMarker is the character a bar is drawn with.
	DefaultMarker = "#"
)

// ErrDegenerate is returned when there is nothing to scale against.
var ErrDegenerate = &stats.DomainError{Reason: "cannot draw bars: all buckets are empty"}

// Percentages returns each count as a percentage of the total.
func Percentages(counts []int) ([]float64, error) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrDegenerate
	}
	rel := make([]float64, len(counts))
	for i, c := range counts {
		rel[i] = 100 * float64(c) / float64(total)
	}
	return rel, nil
}

// Render returns one line per bucket: the percentage with one decimal, a tab,
// and a run of marker proportional to the bucket's share. The largest
// bucket gets width-LabelWidth markers.
func Render(counts []int, width int, marker string) ([]string, error) {
	rel, err := Percentages(counts)
	if err != nil {
		return nil, err
	}
	peak := 0.0
	for _, r := range rel {
		if r > peak {
			peak = r
		}
	}
	if peak == 0 {
		return nil, ErrDegenerate
	}
	if marker == "" {
		marker = DefaultMarker
	}

	room := float64(width - LabelWidth)
	lines := make([]string, len(rel))
	for i, r := range rel {
		// room/peak*r, grouped so the peak bucket scales to exactly room
		n := int(math.Floor(room * (r / peak)))
		if n < 0 {
			n = 0
		}
		lines[i] = fmt.Sprintf("%.1f%%\t%s", r, strings.Repeat(marker, n))
	}
	return lines, nil
}

// TerminalWidth returns the column count of f, or fallback when f is not a
// terminal or its size cannot be read.
func TerminalWidth(f *os.File, fallback int) int {
	if f == nil || !term.IsTerminal(f.Fd()) {
		return fallback
	}
	w, _, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 {
		log.WithError(err).Debug("could not read terminal size")
		return fallback
	}
	log.WithField("columns", w).Debug("detected terminal width")
	return w
}
