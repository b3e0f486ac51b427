package probe

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/praetorian-inc/decodescan/pkg/matcher"
	"github.com/praetorian-inc/decodescan/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultID is the probe run when none is selected.
const DefaultID = "decode"

// Loader handles loading probes from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for built-in probes
}

// NewLoader creates a loader with built-in probes from the embedded filesystem.
func NewLoader() *Loader {
	return &Loader{
		fs: builtinProbesFS,
	}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs: fsys,
	}
}

// LoadProbes parses every probe in YAML bytes.
func (l *Loader) LoadProbes(data []byte) ([]*types.Probe, error) {
	var yamlFile yamlProbesFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(yamlFile.Probes) == 0 {
		return nil, fmt.Errorf("no probes found in YAML")
	}

	probes := make([]*types.Probe, 0, len(yamlFile.Probes))
	for _, yp := range yamlFile.Probes {
		probes = append(probes, convertYAMLProbe(yp))
	}
	return probes, nil
}

// LoadProbeFile loads probes from a YAML file path.
func (l *Loader) LoadProbeFile(path string) ([]*types.Probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.LoadProbes(data)
}

// LoadBuiltinProbes loads all built-in probes, sorted by ID.
func (l *Loader) LoadBuiltinProbes() ([]*types.Probe, error) {
	var probes []*types.Probe

	err := fs.WalkDir(l.fs, "probes", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		parsed, err := l.LoadProbes(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		probes = append(probes, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(probes, func(a, b *types.Probe) int { return strings.Compare(a.ID, b.ID) })
	return probes, nil
}

// Find returns the probe with id.
func Find(probes []*types.Probe, id string) (*types.Probe, error) {
	for _, p := range probes {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown probe %q", id)
}

// convertYAMLProbe converts yamlProbe to types.Probe, applying defaults.
func convertYAMLProbe(yp yamlProbe) *types.Probe {
	p := &types.Probe{
		ID:               yp.ID,
		Name:             yp.Name,
		Kind:             types.ProbeKind(yp.Kind),
		Pattern:          yp.Pattern,
		Label:            yp.Label,
		Description:      yp.Description,
		Before:           matcher.DefaultRadius,
		After:            matcher.DefaultRadius,
		Keywords:         yp.Keywords,
		Examples:         yp.Examples,
		NegativeExamples: yp.NegativeExamples,
	}
	if p.Kind == "" {
		p.Kind = types.ProbeLiteral
	}
	if yp.Context.Before != nil {
		p.Before = *yp.Context.Before
	}
	if yp.Context.After != nil {
		p.After = *yp.Context.After
	}
	return p
}
