// internal/view/view.go

// Package view shows a qstats report in a scrollable terminal UI that redraws
// the bar chart whenever the terminal is resized.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/mwiater/qstats/internal/config"
	"github.com/mwiater/qstats/internal/ingest"
	"github.com/mwiater/qstats/internal/report"
	"github.com/mwiater/qstats/internal/stats"
)

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 4

// Model is the Bubble Tea model of the report viewer.
type Model struct {
	title  string
	values []float64
	opts   config.Options

	viewport      viewport.Model
	ready         bool
	width, height int
	err           error
}

// New returns a viewer for values, which it sorts in place. The bar chart and frequency table are
// always shown; the summary is shown when there is enough data for one.
func New(title string, values []float64, opts config.Options) *Model {
	opts = opts.Resolve()
	opts.Frequency = true
	opts.Bars = true
	opts.Table = true
	opts.Summary = len(values) >= stats.MinSummaryLength
	stats.Sort(values)
	return &Model{title: title, values: values, opts: opts}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		bodyHeight := msg.Height - chromeHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.viewport.SetContent(m.render())
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// render formats the report for the current terminal width.
func (m *Model) render() string {
	opts := m.opts
	opts.Width = m.width
	out, err := report.FormatSorted(m.values, opts)
	m.err = err
	if err != nil {
		log.WithError(err).Debug("render failed")
		return ""
	}
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginLeft(1)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(m.title),
		countStyle.Render(fmt.Sprintf("%d values, %d breaks", len(m.values), m.opts.BreaksFor(len(m.values)))),
	)

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return header + "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(m.viewport.View())
	help := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(" %3.f%%  (arrows to scroll, q to quit)", m.viewport.ScrollPercent()*100))
	b.WriteString("\n" + help)
	return b.String()
}

// Start reads path and runs the viewer until the user quits. When logPath is
// set, debug output is written there instead of the terminal.
func Start(path string, opts config.Options, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "qstats")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	f, err := ingest.Open(path)
	if err != nil {
		return err
	}
	values, err := ingest.Read(f)
	f.Close()
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return stats.ErrEmpty
	}

	p := tea.NewProgram(New(path, values, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}
