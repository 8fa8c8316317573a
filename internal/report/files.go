// internal/report/files.go
package report

import (
	"fmt"
	"io"

	"github.com/mwiater/qstats/internal/config"
	"github.com/mwiater/qstats/internal/ingest"
)

// RunFiles processes each path in order as an independent unit. With no
// paths it reads stdin once. With more than one path every report is
// preceded by its file name and separated from the next by a blank line.
// The first error stops the run; later files are not opened.
func RunFiles(w io.Writer, paths []string, stdin io.Reader, opts config.Options) error {
	if len(paths) == 0 {
		return Run(w, stdin, opts)
	}

	multiple := len(paths) > 1
	for i, path := range paths {
		if err := runFile(w, path, multiple, opts); err != nil {
			return err
		}
		if multiple && i != len(paths)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func runFile(w io.Writer, path string, header bool, opts config.Options) error {
	f, err := ingest.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if header {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	return Run(w, f, opts)
}
