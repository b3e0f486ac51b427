package scanner

import (
	"fmt"
	"iter"

	"github.com/charmbracelet/log"
	"github.com/praetorian-inc/decodescan/pkg/matcher"
	"github.com/praetorian-inc/decodescan/pkg/prefilter"
	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Config configures a Scanner.
type Config struct {
	Probe  *types.Probe
	Limit  int         // maximum matches yielded (0 = unlimited)
	Logger *log.Logger // optional; nil discards debug output
}

// Scanner runs one probe over loaded content.
type Scanner struct {
	probe     *types.Probe
	matcher   matcher.Matcher
	prefilter *prefilter.Prefilter
	limit     int
	logger    *log.Logger
}

// New creates a Scanner for cfg.Probe.
func New(cfg Config) (*Scanner, error) {
	if cfg.Probe == nil {
		return nil, fmt.Errorf("no probe provided")
	}
	m, err := matcher.New(cfg.Probe)
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}
	return &Scanner{
		probe:     cfg.Probe,
		matcher:   m,
		prefilter: prefilter.New([]*types.Probe{cfg.Probe}),
		limit:     cfg.Limit,
		logger:    cfg.Logger,
	}, nil
}

// Probe returns the probe being run.
func (s *Scanner) Probe() *types.Probe {
	return s.probe
}

// Scan returns the probe's matches in content, in discovery order.
// Content rejected by the prefilter yields nothing.
func (s *Scanner) Scan(content *types.Content) iter.Seq[types.Match] {
	return func(yield func(types.Match) bool) {
		if !s.prefilter.Accepts(s.probe, []byte(content.Text)) {
			s.debug("prefilter rejected content", "probe", s.probe.ID, "path", content.Path)
			return
		}

		n := 0
		for m := range s.matcher.Matches(content) {
			if !yield(m) {
				return
			}
			n++
			if s.limit > 0 && n >= s.limit {
				s.debug("match limit reached", "probe", s.probe.ID, "limit", s.limit)
				return
			}
		}
	}
}

// Err returns the error that cut the last scan short, if any.
func (s *Scanner) Err() error {
	return s.matcher.Err()
}

func (s *Scanner) debug(msg string, keyvals ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}
