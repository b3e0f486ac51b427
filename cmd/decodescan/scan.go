package main

import (
	"fmt"

	"github.com/praetorian-inc/decodescan/pkg/probe"
	"github.com/praetorian-inc/decodescan/pkg/report"
	"github.com/praetorian-inc/decodescan/pkg/scanner"
	"github.com/praetorian-inc/decodescan/pkg/types"
	"github.com/spf13/cobra"
)

// defaultTarget is the unpacked player script scanned when no path is given.
const defaultTarget = "/opt/flyx/scripts/reverse-engineering/prorcp-unpacked.js"

var (
	scanProbeID      string
	scanProbesPath   string
	scanOutputFormat string
	scanColor        string
	scanLimit        int
	scanStripBOM     bool
	scanSummary      bool
)

func registerScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scanProbeID, "probe", probe.DefaultID, "Probe to run (see 'probes list')")
	cmd.Flags().StringVar(&scanProbesPath, "probes", "", "Path to a custom probes YAML file")
	cmd.Flags().StringVar(&scanOutputFormat, "format", "human", "Output format: human, json, yaml, sarif")
	cmd.Flags().StringVar(&scanColor, "color", "auto", "Color output: auto, always, never")
	cmd.Flags().IntVar(&scanLimit, "limit", 0, "Stop after this many matches (0 = unlimited)")
	cmd.Flags().BoolVar(&scanStripBOM, "strip-bom", false, "Drop a leading byte order mark before scanning")
	cmd.Flags().BoolVar(&scanSummary, "summary", false, "Print the total match count at the end (human format)")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := defaultTarget
	if len(args) > 0 {
		target = args[0]
	}
	logger := newLogger(cmd)

	probes, err := loadProbes(scanProbesPath)
	if err != nil {
		return err
	}
	p, err := probe.Find(probes, scanProbeID)
	if err != nil {
		return err
	}

	colored, err := report.ResolveColor(scanColor)
	if err != nil {
		return err
	}
	reporter, err := report.New(cmd.OutOrStdout(), report.Options{
		Format:      scanOutputFormat,
		Color:       colored,
		Summary:     scanSummary,
		Probe:       p,
		ToolVersion: version,
	})
	if err != nil {
		return err
	}

	s, err := scanner.New(scanner.Config{
		Probe:  p,
		Limit:  scanLimit,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	// Load before writing anything so a missing file produces no output.
	content, err := scanner.LoadWithOptions(target, scanner.LoadOptions{StripBOM: scanStripBOM})
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	logger.Debug("content loaded", "path", target, "length", content.Len(), "probe", p.ID)

	if err := reporter.Begin(content); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	total := 0
	for m := range s.Scan(content) {
		if err := reporter.Match(m); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		total++
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	if err := reporter.End(total); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.Debug("scan complete", "matches", total)
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// loadProbes returns the probes to scan with. Custom probe files are
// validated before use.
func loadProbes(path string) ([]*types.Probe, error) {
	probes, err := readProbes(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := probe.ValidateAll(probes); err != nil {
			return nil, fmt.Errorf("validating probes from %s: %w", path, err)
		}
	}
	return probes, nil
}
