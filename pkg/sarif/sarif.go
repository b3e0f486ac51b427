package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/decodescan/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version   = "2.1.0"
	ToolName  = "decodescan"

	// ColumnKind declares that columns and char offsets count code points.
	ColumnKind = "unicodeCodePoints"
)

// Report is the top-level SARIF log.
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool       Tool       `json:"tool"`
	ColumnKind string     `json:"columnKind"`
	Artifacts  []Artifact `json:"artifacts,omitempty"`
	Results    []Result   `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes a probe to SARIF consumers.
type Rule struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription Message `json:"shortDescription"`
}

// Artifact records the scanned file and its length in characters.
type Artifact struct {
	Location ArtifactLocation `json:"location"`
	Length   int              `json:"length"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
	ContextRegion    *ContextRegion   `json:"contextRegion,omitempty"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region locates the match itself. Offsets are in characters.
type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
	CharOffset  int `json:"charOffset"`
	CharLength  int `json:"charLength"`
}

// ContextRegion carries the context window shown for a match.
type ContextRegion struct {
	Snippet Snippet `json:"snippet"`
}

type Snippet struct {
	Text string `json:"text"`
}

// NewReport creates an empty single-run report for toolVersion.
func NewReport(toolVersion string) *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: toolVersion,
						Rules:   []Rule{},
					},
				},
				ColumnKind: ColumnKind,
				Results:    []Result{},
			},
		},
	}
}

// AddRule registers probe as a rule.
func (r *Report) AddRule(probe *types.Probe) {
	r.Runs[0].Tool.Driver.Rules = append(r.Runs[0].Tool.Driver.Rules, Rule{
		ID:               probe.ID,
		Name:             probe.Name,
		ShortDescription: Message{Text: strings.TrimSpace(probe.Description)},
	})
}

// AddArtifact records the scanned content.
func (r *Report) AddArtifact(content *types.Content) {
	r.Runs[0].Artifacts = append(r.Runs[0].Artifacts, Artifact{
		Location: ArtifactLocation{URI: formatFileURI(content.Path)},
		Length:   content.Len(),
	})
}

// AddResult adds a match found in the file at filePath.
func (r *Report) AddResult(match *types.Match, filePath string) {
	result := Result{
		RuleID: match.ProbeID,
		Level:  "note",
		Message: Message{
			Text: fmt.Sprintf("Found '%s' at %d", match.Label, match.Offset),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{URI: formatFileURI(filePath)},
					Region: Region{
						StartLine:   match.Location.Start.Line,
						StartColumn: match.Location.Start.Column,
						EndLine:     match.Location.End.Line,
						EndColumn:   match.Location.End.Column,
						CharOffset:  match.Offset,
						CharLength:  match.Length,
					},
				},
			},
		},
	}
	if match.Context != "" {
		result.Locations[0].PhysicalLocation.ContextRegion = &ContextRegion{
			Snippet: Snippet{Text: match.Context},
		}
	}

	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format.
// Absolute paths get file:// prefix, relative paths stay as-is.
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
