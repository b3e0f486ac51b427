package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/praetorian-inc/decodescan/pkg/types"
)

// groupPreviewLen is how much of a capture group is shown before truncation.
const groupPreviewLen = 50

// styles holds color formatters for human output.
type styles struct {
	heading *color.Color
	offset  *color.Color
	context *color.Color
	group   *color.Color
}

// newStyles creates color formatters. enabled=false yields plain text.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		offset:  color.New(color.FgHiGreen),
		context: color.New(color.FgYellow),
		group:   color.New(color.FgHiBlue),
	}

	if !enabled {
		s.heading.DisableColor()
		s.offset.DisableColor()
		s.context.DisableColor()
		s.group.DisableColor()
	} else {
		s.heading.EnableColor()
		s.offset.EnableColor()
		s.context.EnableColor()
		s.group.EnableColor()
	}

	return s
}

// Human writes the line-oriented report:
//
//	Content length: <n>
//	Found '<label>' at <offset>
//	Context: ...<window>...
type Human struct {
	w       io.Writer
	s       *styles
	summary bool
}

// NewHuman creates a human reporter.
func NewHuman(w io.Writer, colored, summary bool) *Human {
	return &Human{w: w, s: newStyles(colored), summary: summary}
}

// Begin implements Reporter.
func (h *Human) Begin(content *types.Content) error {
	_, err := fmt.Fprintf(h.w, "Content length: %d\n", content.Len())
	return err
}

// Match implements Reporter.
func (h *Human) Match(m types.Match) error {
	if _, err := fmt.Fprintf(h.w, "%s %s\n",
		h.s.heading.Sprintf("Found '%s' at", m.Label),
		h.s.offset.Sprint(m.Offset)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(h.w, "Context: ...%s...\n", h.s.context.Sprint(m.Context)); err != nil {
		return err
	}
	for i, g := range m.Groups {
		if _, err := fmt.Fprintf(h.w, "Group %d: %s\n", i+1, h.s.group.Sprint(preview(g))); err != nil {
			return err
		}
	}
	return nil
}

// End implements Reporter.
func (h *Human) End(total int) error {
	if !h.summary {
		return nil
	}
	_, err := fmt.Fprintf(h.w, "Total matches: %d\n", total)
	return err
}

// preview truncates s to groupPreviewLen characters, marking the cut with "...".
func preview(s string) string {
	r := []rune(s)
	if len(r) <= groupPreviewLen {
		return s
	}
	return string(r[:groupPreviewLen]) + "..."
}
