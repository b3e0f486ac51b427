package types

// ProbeKind selects how a probe pattern is interpreted.
type ProbeKind string

const (
	// ProbeLiteral matches the pattern as an exact substring.
	ProbeLiteral ProbeKind = "literal"
	// ProbeRegex matches the pattern as a regular expression.
	ProbeRegex ProbeKind = "regex"
)

// Probe is a named search definition run against loaded content.
type Probe struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Kind             ProbeKind `json:"kind"`
	Pattern          string    `json:"pattern"`
	Label            string    `json:"label"` // shown in "Found '<label>' at N"
	Description      string    `json:"description,omitempty"`
	Before           int       `json:"context_before"` // characters of context before the match offset
	After            int       `json:"context_after"`  // characters of context after the match offset
	Keywords         []string  `json:"keywords,omitempty"`
	Examples         []string  `json:"examples,omitempty"`
	NegativeExamples []string  `json:"negative_examples,omitempty"`
}

// DisplayLabel returns the label, falling back to the pattern.
func (p *Probe) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Pattern
}
