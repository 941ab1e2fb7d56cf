// Package cli implements the pull-calendars command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driving"
	"github.com/custodia-labs/eventor-calendars/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// PullOptions carries command-line overrides for the configured settings.
// Zero values leave the configuration untouched.
type PullOptions struct {
	ConfigPath    string
	CataloguePath string
	Verify        bool
	Year          int
}

// PullerFactory builds a Puller for one run. Progress lines go to progress.
// The returned close function releases any resources the puller holds.
type PullerFactory func(opts PullOptions, progress io.Writer) (driving.Puller, func() error, error)

var (
	pullerFactory PullerFactory

	configPath    string
	verbose       bool
	verify        bool
	cataloguePath string
	year          int
)

var rootCmd = &cobra.Command{
	Use:   "pull-calendars <output-dir>",
	Short: "Download Eventor calendars and write an HTML index",
	Long: `Downloads the Eventor iCalendar export for every combination of
organisation, classification set and discipline set into <output-dir>,
and writes an HTML index linking each calendar to standard output.

Calendars are fetched one at a time. The first failure stops the run.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runPull,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request details to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "parse each calendar and count its events")
	rootCmd.Flags().StringVar(&cataloguePath, "catalogue", "", "directory of the SQLite run catalogue")
	rootCmd.Flags().IntVar(&year, "year", 0, "calendar year to pull (default current year)")
}

// SetPullerFactory sets the factory used to build the pull service.
func SetPullerFactory(f PullerFactory) {
	pullerFactory = f
}

// Run executes the command line with args, writing the index to stdout and
// progress and errors to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func runPull(cmd *cobra.Command, args []string) error {
	if pullerFactory == nil {
		return errors.New("pull service not configured")
	}
	if year < 0 {
		return fmt.Errorf("invalid year %d", year)
	}

	opts := PullOptions{
		ConfigPath:    configPath,
		CataloguePath: cataloguePath,
		Verify:        verify,
		Year:          year,
	}

	puller, closeFn, err := pullerFactory(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if closeFn != nil {
			if err := closeFn(); err != nil {
				logger.Warn("closing: %v", err)
			}
		}
	}()

	summary, err := puller.Pull(cmd.Context(), args[0], cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info("pulled %d calendars (%d bytes) for %d",
		len(summary.Entries), summary.TotalBytes(), summary.Run.Year)
	return nil
}
