package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/decodescan/pkg/probe"
	"github.com/praetorian-inc/decodescan/pkg/types"
	"github.com/spf13/cobra"
)

var (
	probesPath         string
	probesInclude      string
	probesExclude      string
	probesOutputFormat string
)

var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "Inspect search probes",
	Long:  "Commands for listing and checking the probes decodescan can run",
}

var probesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available probes",
	Long:  "Display all available probes with their IDs, kinds and patterns",
	RunE:  runProbesList,
}

var probesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate probes against their examples",
	Long:  "Check that every probe compiles, matches its examples and rejects its negative examples",
	RunE:  runProbesCheck,
}

func init() {
	probesCmd.AddCommand(probesListCmd)
	probesCmd.AddCommand(probesCheckCmd)
	probesCmd.PersistentFlags().StringVar(&probesPath, "probes", "", "Path to a custom probes YAML file")
	probesCmd.PersistentFlags().StringVar(&probesInclude, "include", "", "Include probes whose ID matches regex pattern (comma-separated)")
	probesCmd.PersistentFlags().StringVar(&probesExclude, "exclude", "", "Exclude probes whose ID matches regex pattern (comma-separated)")
	probesListCmd.Flags().StringVar(&probesOutputFormat, "format", "table", "Output format: table, json")
}

func runProbesList(cmd *cobra.Command, args []string) error {
	probes, err := selectProbes(probesPath, probesInclude, probesExclude)
	if err != nil {
		return err
	}

	switch probesOutputFormat {
	case "json":
		return outputProbesJSON(cmd, probes)
	case "table":
		return outputProbesTable(cmd, probes)
	default:
		return fmt.Errorf("unknown output format: %s", probesOutputFormat)
	}
}

func runProbesCheck(cmd *cobra.Command, args []string) error {
	probes, err := selectProbes(probesPath, probesInclude, probesExclude)
	if err != nil {
		return err
	}

	failed := 0
	for _, p := range probes {
		if err := probe.Validate(p); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", p.ID, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", p.ID)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d probes failed validation", failed, len(probes))
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// readProbes loads probes without validating them, so check can report each failure.
func readProbes(path string) ([]*types.Probe, error) {
	loader := probe.NewLoader()
	if path == "" {
		probes, err := loader.LoadBuiltinProbes()
		if err != nil {
			return nil, fmt.Errorf("loading builtin probes: %w", err)
		}
		return probes, nil
	}
	probes, err := loader.LoadProbeFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading probes from %s: %w", path, err)
	}
	return probes, nil
}

// selectProbes reads probes and applies the include/exclude ID patterns.
func selectProbes(path, include, exclude string) ([]*types.Probe, error) {
	probes, err := readProbes(path)
	if err != nil {
		return nil, err
	}
	if include == "" && exclude == "" {
		return probes, nil
	}
	probes, err = probe.Filter(probes, probe.FilterConfig{
		Include: probe.ParsePatterns(include),
		Exclude: probe.ParsePatterns(exclude),
	})
	if err != nil {
		return nil, fmt.Errorf("filtering probes: %w", err)
	}
	return probes, nil
}

func outputProbesJSON(cmd *cobra.Command, probes []*types.Probe) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(probes)
}

func outputProbesTable(cmd *cobra.Command, probes []*types.Probe) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tKind\tContext\tPattern\n")
	fmt.Fprintf(w, "--\t----\t-------\t-------\n")

	for _, p := range probes {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\n", p.ID, p.Kind, p.Before, p.After, p.Pattern)
	}

	return nil
}
