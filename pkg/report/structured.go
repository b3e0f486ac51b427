package report

import (
	"encoding/json"
	"io"

	"github.com/praetorian-inc/decodescan/pkg/sarif"
	"github.com/praetorian-inc/decodescan/pkg/types"
	"gopkg.in/yaml.v3"
)

// collector accumulates a Document for the structured reporters.
type collector struct {
	doc Document
}

func (c *collector) Begin(content *types.Content) error {
	c.doc = Document{
		Path:          content.Path,
		ContentLength: content.Len(),
		Matches:       []types.Match{},
	}
	return nil
}

func (c *collector) Match(m types.Match) error {
	c.doc.Matches = append(c.doc.Matches, m)
	return nil
}

// JSON writes a single indented JSON document when the scan ends.
type JSON struct {
	collector
	w io.Writer
}

// NewJSON creates a JSON reporter.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// End implements Reporter.
func (j *JSON) End(total int) error {
	j.doc.Total = total
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(j.doc)
}

// YAML writes a single YAML document when the scan ends.
type YAML struct {
	collector
	w io.Writer
}

// NewYAML creates a YAML reporter.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

// End implements Reporter.
func (y *YAML) End(total int) error {
	y.doc.Total = total
	encoder := yaml.NewEncoder(y.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(y.doc); err != nil {
		return err
	}
	return encoder.Close()
}

// SARIF writes a SARIF 2.1.0 log when the scan ends.
type SARIF struct {
	w      io.Writer
	report *sarif.Report
	path   string
}

// NewSARIF creates a SARIF reporter. probe may be nil.
func NewSARIF(w io.Writer, probe *types.Probe, toolVersion string) *SARIF {
	r := sarif.NewReport(toolVersion)
	if probe != nil {
		r.AddRule(probe)
	}
	return &SARIF{w: w, report: r}
}

// Begin implements Reporter.
func (s *SARIF) Begin(content *types.Content) error {
	s.path = content.Path
	s.report.AddArtifact(content)
	return nil
}

// Match implements Reporter.
func (s *SARIF) Match(m types.Match) error {
	s.report.AddResult(&m, s.path)
	return nil
}

// End implements Reporter.
func (s *SARIF) End(total int) error {
	data, err := s.report.ToJSON()
	if err != nil {
		return err
	}
	_, err = s.w.Write(append(data, '\n'))
	return err
}
