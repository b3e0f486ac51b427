// Package decodescan finds occurrences of a probe pattern in text and reports
// each one with its character offset and a window of surrounding context.
//
// # Basic Usage
//
// Scan a file with the default "decode" probe:
//
//	scanner, err := decodescan.NewScanner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := scanner.ScanFile("prorcp-unpacked.js")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, match := range matches {
//	    fmt.Printf("Found '%s' at %d\n", match.Label, match.Offset)
//	}
//
// # Other Probes
//
// Select a built-in probe by ID, or supply one directly:
//
//	scanner, err := decodescan.NewScanner(decodescan.WithProbeID("decode-hash-call"))
package decodescan

import (
	"fmt"
	"slices"

	"github.com/praetorian-inc/decodescan/pkg/probe"
	"github.com/praetorian-inc/decodescan/pkg/scanner"
	"github.com/praetorian-inc/decodescan/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// Match is a single occurrence of a probe pattern.
	Match = types.Match

	// Probe is a named search definition.
	Probe = types.Probe

	// Content is loaded text addressed by character offset.
	Content = types.Content

	// IOError reports a failure to load a file.
	IOError = scanner.IOError
)

// Scanner runs one probe over strings or files.
type Scanner struct {
	inner  *scanner.Scanner
	config *scannerConfig
}

type scannerConfig struct {
	probe    *types.Probe
	probeID  string
	limit    int
	stripBOM bool
}

// Option configures a Scanner.
type Option func(*scannerConfig)

// WithProbe runs p instead of a built-in probe.
func WithProbe(p *Probe) Option {
	return func(c *scannerConfig) {
		c.probe = p
	}
}

// WithProbeID selects a built-in probe by ID.
func WithProbeID(id string) Option {
	return func(c *scannerConfig) {
		c.probeID = id
	}
}

// WithLimit stops each scan after n matches (0 = unlimited).
func WithLimit(n int) Option {
	return func(c *scannerConfig) {
		c.limit = n
	}
}

// WithStripBOM drops a leading byte order mark from files before scanning.
func WithStripBOM() Option {
	return func(c *scannerConfig) {
		c.stripBOM = true
	}
}

// NewScanner creates a Scanner. Without options it runs the "decode" probe
// with 50 characters of context on each side.
func NewScanner(opts ...Option) (*Scanner, error) {
	config := &scannerConfig{
		probeID: probe.DefaultID,
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.probe == nil {
		probes, err := probe.NewLoader().LoadBuiltinProbes()
		if err != nil {
			return nil, fmt.Errorf("loading builtin probes: %w", err)
		}
		p, err := probe.Find(probes, config.probeID)
		if err != nil {
			return nil, err
		}
		config.probe = p
	}

	inner, err := scanner.New(scanner.Config{
		Probe: config.probe,
		Limit: config.limit,
	})
	if err != nil {
		return nil, err
	}

	return &Scanner{inner: inner, config: config}, nil
}

// Probe returns the probe the scanner runs.
func (s *Scanner) Probe() *Probe {
	return s.config.probe
}

// ScanString scans text and returns every match.
func (s *Scanner) ScanString(text string) ([]Match, error) {
	return s.ScanContent(types.NewContent("", text))
}

// ScanContent scans already loaded content and returns every match.
func (s *Scanner) ScanContent(content *Content) ([]Match, error) {
	matches := slices.Collect(s.inner.Scan(content))
	if err := s.inner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// ScanFile loads path as UTF-8 text and scans it.
// Load failures are returned as *IOError.
func (s *Scanner) ScanFile(path string) ([]Match, error) {
	content, err := scanner.LoadWithOptions(path, scanner.LoadOptions{StripBOM: s.config.stripBOM})
	if err != nil {
		return nil, err
	}
	return s.ScanContent(content)
}

// LoadBuiltinProbes returns the built-in probes.
func LoadBuiltinProbes() ([]*Probe, error) {
	return probe.NewLoader().LoadBuiltinProbes()
}
