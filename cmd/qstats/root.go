// cmd/qstats/root.go
package qstats

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/qstats/internal/bars"
	"github.com/mwiater/qstats/internal/config"
	"github.com/mwiater/qstats/internal/report"
)

const usageText = "qstats [-mshl | -f<breaks> | -b<breaks>] file"

// runState collects everything the flags of one command tree write into.
type runState struct {
	v       *viper.Viper
	cfgFile string

	mean, summary, length bool
	table, bars           bool
	breaks                int

	view, settings bool
}

// boundKeys are the flags that viper also reads from QSTATS_* variables and
// the config file.
var boundKeys = []string{config.KeyWidth, config.KeyMarker, config.KeyVerbose}

// rootCmd is the base command; everything else hangs off it.
var rootCmd = newRootCmd()

// Execute runs the root command with the process arguments. Any error is
// printed to standard error and the process exits with status 1.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &runState{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "qstats [flags] [file...]",
		Short: "Quick and dirty statistics tool for the Unix pipeline",
		Long: `qstats -- quick and dirty statistics tool for the Unix pipeline

usage: ` + usageText + `

Reads one number per line from each file (or standard input when no file is
given) and prints a summary: min, quartiles, mean, max, range, standard
deviation and count. -f prints a frequency table and -b a bar chart; both take
an optional attached bucket count (-f8, --bars=8). --view opens one file in a
terminal viewer that redraws the bar chart on resize.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if st.settings {
				listSettings(cmd.OutOrStdout(), cmd.Flags(), boundKeys)
				return nil
			}
			if st.view {
				return st.runView(args)
			}
			opts := st.options(cmd.OutOrStdout())
			log.Debug("resolved options: " + pp.Sprint(opts))
			return report.RunFiles(cmd.OutOrStdout(), args, cmd.InOrStdin(), opts)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\nusage: %s", err, usageText)
	})

	flags := cmd.Flags()
	flags.BoolVarP(&st.mean, "mean", "m", false, "print the mean")
	flags.BoolVarP(&st.summary, "summary", "s", false, "print the summary (default)")
	flags.BoolVarP(&st.length, "length", "l", false, "print the number of values")
	flags.VarP(&config.BreaksFlag{Name: "frequencies", Enabled: &st.table, Breaks: &st.breaks},
		"frequencies", "f", "print a frequency table, optionally with a bucket count")
	flags.VarP(&config.BreaksFlag{Name: "bars", Enabled: &st.bars, Breaks: &st.breaks},
		"bars", "b", "draw a bar chart of the frequencies, optionally with a bucket count")
	flags.Lookup("frequencies").NoOptDefVal = "0"
	flags.Lookup("bars").NoOptDefVal = "0"
	flags.BoolVar(&st.view, "view", false, "browse the report of one file interactively")
	flags.BoolVar(&st.settings, "settings", false, "list every flag with its environment variable and config key")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&st.cfgFile, config.KeyConfig, "", "config file (default ./qstats.yaml or $HOME/.config/qstats/qstats.yaml)")
	persistent.Int(config.KeyWidth, 0, "bar chart width in columns (default: terminal width)")
	persistent.String(config.KeyMarker, bars.DefaultMarker, "character bars are drawn with")
	persistent.BoolP(config.KeyVerbose, "v", false, "log debug output to standard error")
	for _, key := range boundKeys {
		_ = st.v.BindPFlag(key, persistent.Lookup(key))
	}
	return cmd
}

// setup reads settings and configures logging before any command runs.
func (st *runState) setup(stderr io.Writer) error {
	if err := config.InitViper(st.v, st.cfgFile); err != nil {
		return err
	}
	log.SetOutput(stderr)
	log.SetLevel(log.WarnLevel)
	if st.v.GetBool(config.KeyVerbose) {
		log.SetLevel(log.DebugLevel)
	}
	if used := st.v.ConfigFileUsed(); used != "" {
		log.WithField("file", used).Debug("loaded config")
	}
	return nil
}

// options builds the immutable per-run options from flags and settings.
func (st *runState) options(out io.Writer) config.Options {
	opts := config.Options{
		Mean:      st.mean,
		Summary:   st.summary,
		Length:    st.length,
		Frequency: st.table || st.bars,
		Table:     st.table,
		Bars:      st.bars,
		Breaks:    st.breaks,
		Width:     st.v.GetInt(config.KeyWidth),
		Marker:    st.v.GetString(config.KeyMarker),
	}
	if opts.Bars && opts.Width <= 0 {
		f, _ := out.(*os.File)
		opts.Width = bars.TerminalWidth(f, bars.DefaultWidth)
	}
	return opts.Resolve()
}
