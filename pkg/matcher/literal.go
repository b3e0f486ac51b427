package matcher

import (
	"iter"
	"unicode/utf8"

	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Literal matches a probe pattern as an exact substring.
type Literal struct {
	probe  *types.Probe
	length int
}

// NewLiteral creates a literal matcher for probe.
func NewLiteral(probe *types.Probe) *Literal {
	return &Literal{
		probe:  probe,
		length: utf8.RuneCountInString(probe.Pattern),
	}
}

// Matches implements Matcher.
func (l *Literal) Matches(content *types.Content) iter.Seq[types.Match] {
	return func(yield func(types.Match) bool) {
		pos := newPositions(content)
		for offset := range FindAll(content, l.probe.Pattern) {
			if !yield(buildMatch(content, l.probe, pos, offset, l.length, nil)) {
				return
			}
		}
	}
}

// Err implements Matcher. Literal search cannot fail.
func (l *Literal) Err() error {
	return nil
}
