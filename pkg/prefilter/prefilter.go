package prefilter

import (
	"github.com/cloudflare/ahocorasick"
	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
type Prefilter struct {
	matcher         *ahocorasick.Matcher
	keywords        []string                  // keyword at each index
	keywordProbes   map[string][]*types.Probe // keyword -> probes needing it
	noKeywordProbes []*types.Probe            // probes without keywords (always run)
}

// New creates a prefilter from probes.
func New(probes []*types.Probe) *Prefilter {
	pf := &Prefilter{
		keywordProbes:   make(map[string][]*types.Probe),
		noKeywordProbes: make([]*types.Probe, 0),
	}

	keywordSet := make(map[string]bool)
	for _, probe := range probes {
		if len(probe.Keywords) == 0 {
			pf.noKeywordProbes = append(pf.noKeywordProbes, probe)
			continue
		}
		for _, keyword := range probe.Keywords {
			if !keywordSet[keyword] {
				keywordSet[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			pf.keywordProbes[keyword] = append(pf.keywordProbes[keyword], probe)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns probes that might match content (keywords found OR no keywords defined).
// Order follows the keyword hits, after the keyword-less probes.
func (pf *Prefilter) Filter(content []byte) []*types.Probe {
	result := make([]*types.Probe, 0, len(pf.noKeywordProbes))
	result = append(result, pf.noKeywordProbes...)

	if pf.matcher == nil {
		return result
	}

	seen := make(map[*types.Probe]bool)
	for _, probe := range pf.noKeywordProbes {
		seen[probe] = true
	}

	for _, hit := range pf.matcher.Match(content) {
		for _, probe := range pf.keywordProbes[pf.keywords[hit]] {
			if !seen[probe] {
				seen[probe] = true
				result = append(result, probe)
			}
		}
	}

	return result
}

// Accepts reports whether probe survives the prefilter for content.
func (pf *Prefilter) Accepts(probe *types.Probe, content []byte) bool {
	for _, p := range pf.Filter(content) {
		if p == probe {
			return true
		}
	}
	return false
}
