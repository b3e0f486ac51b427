package types

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Location is the start-end line:column range of a match.
// End is the position just past the last matched character.
type Location struct {
	Start SourcePoint `json:"start" yaml:"start"`
	End   SourcePoint `json:"end" yaml:"end"`
}
