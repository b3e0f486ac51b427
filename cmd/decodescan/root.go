package main

import (
	"github.com/charmbracelet/log"
	"github.com/praetorian-inc/decodescan/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "decodescan [path]",
	Short: "Find decode occurrences in an unpacked script",
	Long: `decodescan loads a UTF-8 text file and reports every occurrence of "decode"
with its character offset and 50 characters of context on each side.

Without a path it reads the unpacked player script at the default location.
Other built-in probes can be selected with --probe.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	registerScanFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(probesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger creates the diagnostic logger for cmd. It writes to stderr only.
func newLogger(cmd *cobra.Command) *log.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: verbose, Quiet: quiet})
}
