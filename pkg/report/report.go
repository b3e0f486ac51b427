package report

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Reporter receives scan results as they are produced.
type Reporter interface {
	// Begin is called once after the content is loaded, before any match.
	Begin(content *types.Content) error
	// Match is called for each match in discovery order.
	Match(m types.Match) error
	// End is called once after the last match.
	End(total int) error
}

// Options configures reporter construction.
type Options struct {
	Format      string       // "human", "json", "yaml" or "sarif"
	Color       bool         // human format only
	Summary     bool         // human format only: print a total line at the end
	Probe       *types.Probe // sarif format only: described as the run's rule
	ToolVersion string       // sarif format only
}

// New creates the reporter for opts.Format writing to w.
func New(w io.Writer, opts Options) (Reporter, error) {
	switch opts.Format {
	case "human", "":
		return NewHuman(w, opts.Color, opts.Summary), nil
	case "json":
		return NewJSON(w), nil
	case "yaml":
		return NewYAML(w), nil
	case "sarif":
		return NewSARIF(w, opts.Probe, opts.ToolVersion), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", opts.Format)
	}
}

// Document is the structured form of a scan used by the json and yaml reporters.
type Document struct {
	Path          string        `json:"path" yaml:"path"`
	ContentLength int           `json:"content_length" yaml:"content_length"`
	Total         int           `json:"total" yaml:"total"`
	Matches       []types.Match `json:"matches" yaml:"matches"`
}
