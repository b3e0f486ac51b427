package matcher

import (
	"fmt"
	"iter"

	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Matcher scans content for occurrences of a single probe.
type Matcher interface {
	// Matches returns the matches in content in increasing offset order.
	// The sequence is lazy: nothing is searched until it is ranged over.
	Matches(content *types.Content) iter.Seq[types.Match]

	// Err returns the error that stopped the last iteration early, if any.
	Err() error
}

// New creates the Matcher for probe's kind.
func New(probe *types.Probe) (Matcher, error) {
	if probe == nil {
		return nil, fmt.Errorf("probe is nil")
	}
	switch probe.Kind {
	case types.ProbeLiteral, "":
		return NewLiteral(probe), nil
	case types.ProbeRegex:
		return NewRegex(probe)
	default:
		return nil, fmt.Errorf("probe %s has unknown kind %q", probe.ID, probe.Kind)
	}
}

// positions tracks line/column for match starts and ends separately,
// since each advances monotonically on its own.
type positions struct {
	start *types.LineTracker
	end   *types.LineTracker
}

func newPositions(content *types.Content) positions {
	return positions{
		start: types.NewLineTracker(content.Text),
		end:   types.NewLineTracker(content.Text),
	}
}

// buildMatch constructs a types.Match for a hit at offset.
func buildMatch(content *types.Content, probe *types.Probe, pos positions, offset, length int, groups []string) types.Match {
	startLine, startColumn := pos.start.Advance(offset)
	endLine, endColumn := pos.end.Advance(offset + length)
	return types.Match{
		ProbeID: probe.ID,
		Label:   probe.DisplayLabel(),
		Offset:  offset,
		Length:  length,
		Location: types.Location{
			Start: types.SourcePoint{Line: startLine, Column: startColumn},
			End:   types.SourcePoint{Line: endLine, Column: endColumn},
		},
		Context: Window(content, offset, probe.Before, probe.After),
		Groups:  groups,
	}
}
