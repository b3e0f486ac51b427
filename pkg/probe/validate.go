package probe

import (
	"fmt"

	"github.com/praetorian-inc/decodescan/pkg/matcher"
	"github.com/praetorian-inc/decodescan/pkg/prefilter"
	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Validate checks probe consistency and required fields, then runs its
// examples: every example must pass the keyword prefilter and match, and
// no negative example may match.
func Validate(p *types.Probe) error {
	if p == nil {
		return fmt.Errorf("probe is nil")
	}

	if p.ID == "" {
		return fmt.Errorf("probe ID is required")
	}
	if p.Name == "" {
		return fmt.Errorf("probe %s: name is required", p.ID)
	}
	if p.Pattern == "" {
		return fmt.Errorf("probe %s: pattern is required", p.ID)
	}
	if p.Before < 0 || p.After < 0 {
		return fmt.Errorf("probe %s: context radii must not be negative", p.ID)
	}

	m, err := matcher.New(p)
	if err != nil {
		return err
	}

	pf := prefilter.New([]*types.Probe{p})
	for _, example := range p.Examples {
		if !pf.Accepts(p, []byte(example)) {
			return fmt.Errorf("probe %s: example %q contains none of the keywords %q", p.ID, example, p.Keywords)
		}
		if !matchesOnce(m, example) {
			return fmt.Errorf("probe %s: example %q does not match", p.ID, example)
		}
	}
	for _, example := range p.NegativeExamples {
		if matchesOnce(m, example) {
			return fmt.Errorf("probe %s: negative example %q matches", p.ID, example)
		}
	}

	return nil
}

// ValidateAll validates every probe and rejects duplicate IDs.
func ValidateAll(probes []*types.Probe) error {
	seen := make(map[string]bool)
	for _, p := range probes {
		if err := Validate(p); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate probe ID: %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

func matchesOnce(m matcher.Matcher, text string) bool {
	for range m.Matches(types.NewContent("", text)) {
		return true
	}
	return false
}
