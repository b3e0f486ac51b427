package types

// Match is a single occurrence of a probe pattern in content.
type Match struct {
	ProbeID  string   `json:"probe_id" yaml:"probe_id"`
	Label    string   `json:"label" yaml:"label"`
	Offset   int      `json:"offset" yaml:"offset"` // character offset of the match start
	Length   int      `json:"length" yaml:"length"` // matched length in characters
	Location Location `json:"location" yaml:"location"`
	Context  string   `json:"context" yaml:"context"`
	Groups   []string `json:"groups,omitempty" yaml:"groups,omitempty"` // regex capture groups, positional
}

