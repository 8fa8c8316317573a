// cmd/qstats/list.go
package qstats

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mwiater/qstats/internal/config"
)

// settingInfo is one row of the --settings listing.
type settingInfo struct {
	flag    string
	sources string
	usage   string
}

// listSettings prints every flag of flags in padded columns: the flag
// spelling, where else the value can come from, and its description.
func listSettings(w io.Writer, flags *pflag.FlagSet, bound []string) {
	rows := collectSettings(flags, bound)

	maxFlag, maxSources := 0, 0
	for _, r := range rows {
		maxFlag = max(maxFlag, len(r.flag))
		maxSources = max(maxSources, len(r.sources))
	}

	fmt.Fprintln(w, "Modes and Settings:")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s%s%s%s%s\n",
			r.flag, strings.Repeat(" ", maxFlag-len(r.flag)+2),
			r.sources, strings.Repeat(" ", maxSources-len(r.sources)+2),
			r.usage)
	}
}

// collectSettings flattens flags into rows, sorted by long name. Flags in
// bound are also read from the environment and the config file.
func collectSettings(flags *pflag.FlagSet, bound []string) []settingInfo {
	fromViper := map[string]bool{}
	for _, key := range bound {
		fromViper[key] = true
	}

	var rows []settingInfo
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		spelling := "    --" + f.Name
		if f.Shorthand != "" {
			spelling = "-" + f.Shorthand + ", --" + f.Name
		}
		switch {
		case f.NoOptDefVal != "" && f.Value.Type() != "bool":
			spelling += "[=N]"
		case f.Value.Type() != "bool":
			spelling += " " + f.Value.Type()
		}

		sources := "-"
		if fromViper[f.Name] {
			sources = config.EnvPrefix + "_" + strings.ToUpper(f.Name) + ", " + f.Name + ":"
		}
		rows = append(rows, settingInfo{flag: spelling, sources: sources, usage: f.Usage})
	})
	return rows
}
