package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options configures the CLI logger.
type Options struct {
	Verbose bool // debug level, with timestamps and caller
	Quiet   bool // errors only; wins over Verbose
}

// prefix returns the styled "decodescan" prefix.
func prefix() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#6366F1")).
		Bold(true).
		Padding(0, 1)
	return style.Render("decodescan")
}

// New creates a logger writing to w. Scan output never goes through it.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.Verbose,
		ReportTimestamp: opts.Verbose,
		TimeFormat:      "15:04:05",
		Prefix:          prefix(),
	})

	switch {
	case opts.Quiet:
		logger.SetLevel(log.ErrorLevel)
	case opts.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
