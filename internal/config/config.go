// internal/config/config.go

// Package config holds the options of one statistics run and the settings
// read through viper.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mwiater/qstats/internal/bars"
	"github.com/mwiater/qstats/internal/stats"
)

// Keys under which settings are stored in viper.
const (
	KeyWidth   = "width"
	KeyMarker  = "marker"
	KeyVerbose = "verbose"
	KeyConfig  = "config"

	EnvPrefix = "QSTATS"
)

// Options selects what is computed for each input. It is built once from
// the command line and passed by value to every unit of work.
type Options struct {
	Mean      bool
	Summary   bool
	Length    bool
	Frequency bool // bucket the data; Table and/or Bars choose how it is shown
	Table     bool
	Bars      bool

	Breaks int    // 0 falls back to stats.DefaultBreaks
	Width  int    // bar chart width; 0 detects the terminal
	Marker string // bar marker
}

// Resolve applies defaults: summary mode when no mode was asked for, and the
// default marker.
func (o Options) Resolve() Options {
	if !o.Mean && !o.Summary && !o.Length && !o.Frequency {
		o.Summary = true
	}
	if o.Marker == "" {
		o.Marker = bars.DefaultMarker
	}
	return o
}

// NeedsSort reports whether any requested output depends on sorted data.
func (o Options) NeedsSort() bool {
	return o.Summary || o.Frequency
}

// BreaksFor returns the bucket count to use for n values.
func (o Options) BreaksFor(n int) int {
	if o.Breaks > 0 {
		return o.Breaks
	}
	return stats.DefaultBreaks(n)
}

// ArgumentError reports a malformed breaks value on the command line.
type ArgumentError struct {
	Flag  string
	Value string
}

func (e *ArgumentError) Error() string {
	if e.Flag == "bars" {
		return "Can't barchart breaks, expects integer"
	}
	return "Can't parse breaks, expects integer"
}

// ParseBreaks parses the optional integer argument of -f and -b.
func ParseBreaks(flag, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, &ArgumentError{Flag: flag, Value: value}
	}
	return n, nil
}

// BreaksFlag is a pflag.Value for a mode flag with an optional breaks count.
// Several flags may share one Breaks target; the last one parsed wins.
type BreaksFlag struct {
	Name    string
	Enabled *bool
	Breaks  *int
}

var _ pflag.Value = (*BreaksFlag)(nil)

func (f *BreaksFlag) String() string {
	if f.Breaks == nil {
		return "0"
	}
	return strconv.Itoa(*f.Breaks)
}

func (f *BreaksFlag) Set(value string) error {
	n, err := ParseBreaks(f.Name, value)
	if err != nil {
		return err
	}
	*f.Enabled = true
	*f.Breaks = n
	return nil
}

func (f *BreaksFlag) Type() string { return "int" }

// InitViper prepares v to read QSTATS_* environment variables and, when
// cfgFile is set, that file. Without cfgFile a qstats.yaml in the working
// directory or $HOME/.config/qstats is read if present.
func InitViper(v *viper.Viper, cfgFile string) error {
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyMarker, bars.DefaultMarker)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName("qstats")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/qstats")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("could not read config file: %w", err)
	}
	return nil
}
