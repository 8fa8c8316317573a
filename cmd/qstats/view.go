// cmd/qstats/view.go
package qstats

import (
	"fmt"

	"github.com/mwiater/qstats/internal/config"
	"github.com/mwiater/qstats/internal/view"
)

// startView is swapped out in tests.
var startView = view.Start

// runView opens the single file in args in the interactive viewer. The
// breaks count of -f or -b, when given, sets the number of buckets.
func (st *runState) runView(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("--view expects exactly one file, got %d\n\nusage: %s", len(args), usageText)
	}
	opts := config.Options{
		Breaks: st.breaks,
		Marker: st.v.GetString(config.KeyMarker),
	}
	logPath := ""
	if st.v.GetBool(config.KeyVerbose) {
		logPath = "qstats-debug.log"
	}
	return startView(args[0], opts, logPath)
}
