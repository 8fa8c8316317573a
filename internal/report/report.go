// internal/report/report.go

// Package report runs the requested statistics over one or more inputs and
// writes them in qstats' line-oriented output format.
package report

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mwiater/qstats/internal/bars"
	"github.com/mwiater/qstats/internal/config"
	"github.com/mwiater/qstats/internal/ingest"
	"github.com/mwiater/qstats/internal/stats"
)

// Run reads one input from src and writes every section opts asks for, in
// the order mean, length, bar chart, frequency table, summary.
func Run(w io.Writer, src io.Reader, opts config.Options) error {
	values, err := ingest.Read(src)
	if err != nil {
		return err
	}
	out, err := Format(values, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Format computes the report for values and returns it as text. values is
// sorted in place when a section needs order statistics. Nothing is
// returned on error, so a failing input produces no partial output.
func Format(values []float64, opts config.Options) (string, error) {
	opts = opts.Resolve()
	if opts.Summary && len(values) < stats.MinSummaryLength {
		return "", stats.ErrTooSmall
	}
	if opts.NeedsSort() {
		stats.Sort(values)
	}
	return FormatSorted(values, opts)
}

// FormatSorted is Format for values already ordered with stats.Sort. values
// is never modified, so data rendered repeatedly is sorted once.
func FormatSorted(values []float64, opts config.Options) (string, error) {
	opts = opts.Resolve()
	if opts.Summary && len(values) < stats.MinSummaryLength {
		return "", stats.ErrTooSmall
	}

	var b strings.Builder

	if opts.Mean {
		mean, err := stats.Mean(values)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%g\n", mean)
	}

	if opts.Length {
		fmt.Fprintf(&b, "%d\n", len(values))
	}

	if opts.Frequency {
		breaks := opts.BreaksFor(len(values))
		log.WithFields(log.Fields{"breaks": breaks, "values": len(values)}).Debug("binning")
		dist, err := stats.Bin(values, breaks)
		if err != nil {
			return "", err
		}
		if opts.Bars {
			width := opts.Width
			if width <= 0 {
				width = bars.DefaultWidth
			}
			lines, err := bars.Render(dist.Counts, width, opts.Marker)
			if err != nil {
				return "", err
			}
			for _, l := range lines {
				b.WriteString(l + "\n")
			}
		}
		if opts.Table {
			b.WriteString(FrequencyTable(dist))
		}
	}

	if opts.Summary {
		s, err := stats.Summarize(values)
		if err != nil {
			return "", err
		}
		b.WriteString(SummaryTable(s))
	}

	return b.String(), nil
}

// FrequencyTable renders "[lower - upper): count" lines, labels right-aligned
// to the widest one.
func FrequencyTable(d stats.Distribution) string {
	labels := make([]string, len(d.Counts))
	widest := 0
	for i := range d.Counts {
		labels[i] = fmt.Sprintf("[%.1f - %.1f):", d.Boundaries[i], d.Boundaries[i+1])
		if len(labels[i]) > widest {
			widest = len(labels[i])
		}
	}

	var b strings.Builder
	for i, c := range d.Counts {
		fmt.Fprintf(&b, "%*s %d\n", widest, labels[i], c)
	}
	return b.String()
}

// SummaryTable renders the nine summary lines with a 9-column label.
func SummaryTable(s stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Min.     %g\n", s.Min)
	fmt.Fprintf(&b, "1st Qu.  %g\n", s.Q1)
	fmt.Fprintf(&b, "Median   %g\n", s.Median)
	fmt.Fprintf(&b, "Mean     %g\n", s.Mean)
	fmt.Fprintf(&b, "3rd Qu.  %g\n", s.Q3)
	fmt.Fprintf(&b, "Max.     %g\n", s.Max)
	fmt.Fprintf(&b, "Range    %g\n", s.Range)
	fmt.Fprintf(&b, "Std Dev. %g\n", s.StdDev)
	fmt.Fprintf(&b, "Length   %d\n", s.Length)
	return b.String()
}
