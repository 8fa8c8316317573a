// internal/ingest/ingest.go

// Package ingest reads a column of numbers from a text source into memory.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// decimal matches a plain decimal number with optional sign, fraction and
// exponent. strconv also takes hex floats and underscores, which are not
// valid records.
var decimal = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// InputError reports a source that could not be opened.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("Unable to open '%s': %s", e.Path, osErrorText(e.Err))
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseError reports a record whose leading token is not a number.
// Line is 1-based, Text is the raw record without its line terminator.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error parsing numerics on line %d: %s", e.Line, e.Text)
}

// osErrorText strips the "open <path>: " prefix so only the OS reason remains.
func osErrorText(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// Open opens path for reading. The caller closes the returned file.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	log.WithField("path", path).Debug("opened input")
	return f, nil
}

// Read consumes r one line at a time and returns the parsed values.
// Blank lines are skipped. Only the first whitespace-delimited token of a
// line is parsed; anything after it is ignored. A nil r reads os.Stdin.
func Read(r io.Reader) ([]float64, error) {
	if r == nil {
		r = os.Stdin
	}

	var values []float64
	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return values, readErr
		}
		if len(raw) > 0 {
			line++
			v, ok, err := parseRecord(raw, line)
			if err != nil {
				return values, err
			}
			if ok {
				values = append(values, v)
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	log.WithField("count", len(values)).Debug("ingested values")
	return values, nil
}

// parseRecord returns ok=false for a record that is empty after trimming.
func parseRecord(raw string, line int) (float64, bool, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, false, nil
	}
	if !decimal.MatchString(fields[0]) {
		return 0, false, &ParseError{Line: line, Text: strings.TrimRight(raw, "\r\n")}
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false, &ParseError{Line: line, Text: strings.TrimRight(raw, "\r\n")}
	}
	return v, true, nil
}
