package matcher

import (
	"fmt"
	"iter"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/decodescan/pkg/types"
)

// MatchTimeout bounds a single regex search to prevent catastrophic backtracking.
const MatchTimeout = 5 * time.Second

// Regex matches a probe pattern as a regular expression using regexp2,
// which accepts the JavaScript-style syntax the probes are written in.
type Regex struct {
	probe *types.Probe
	re    *regexp2.Regexp
	err   error
}

// NewRegex compiles probe's pattern.
func NewRegex(probe *types.Probe) (*Regex, error) {
	re, err := Compile(probe.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q for probe %s: %w", probe.Pattern, probe.ID, err)
	}
	return &Regex{probe: probe, re: re}, nil
}

// Compile compiles pattern, trying RE2 mode first and falling back to the
// default Perl-compatible mode for features RE2 rejects.
func Compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.Multiline)
	if err != nil {
		re, err = regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
	}
	re.MatchTimeout = MatchTimeout
	return re, nil
}

// Matches implements Matcher. Like the literal matcher, each search resumes
// one character after the previous match start.
func (r *Regex) Matches(content *types.Content) iter.Seq[types.Match] {
	return func(yield func(types.Match) bool) {
		r.err = nil
		runes := content.Runes()
		pos := newPositions(content)
		for start := 0; start <= len(runes); {
			m, err := r.re.FindRunesMatchStartingAt(runes, start)
			if err != nil {
				r.err = fmt.Errorf("probe %s: %w", r.probe.ID, err)
				return
			}
			if m == nil {
				return
			}
			if !yield(buildMatch(content, r.probe, pos, m.Index, m.Length, captureGroups(m))) {
				return
			}
			start = m.Index + 1
		}
	}
}

// Err implements Matcher.
func (r *Regex) Err() error {
	return r.err
}

// captureGroups extracts positional capture groups from a regexp2 match.
func captureGroups(m *regexp2.Match) []string {
	var groups []string
	matchGroups := m.Groups()
	for i := 1; i < len(matchGroups); i++ {
		group := matchGroups[i]
		if len(group.Captures) > 0 {
			groups = append(groups, group.Captures[0].String())
		} else {
			groups = append(groups, "")
		}
	}
	return groups
}
