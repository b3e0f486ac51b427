package probe

import (
	"testing"

	"github.com/praetorian-inc/decodescan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProbe() *types.Probe {
	return &types.Probe{
		ID:               "decode",
		Name:             "Decode",
		Kind:             types.ProbeLiteral,
		Pattern:          "decode",
		Before:           50,
		After:            50,
		Examples:         []string{"abc decode xyz"},
		NegativeExamples: []string{"abc"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *types.Probe)
		wantErr string
	}{
		{name: "valid", mutate: func(p *types.Probe) {}},
		{name: "missing ID", mutate: func(p *types.Probe) { p.ID = "" }, wantErr: "ID"},
		{name: "missing name", mutate: func(p *types.Probe) { p.Name = "" }, wantErr: "name"},
		{name: "missing pattern", mutate: func(p *types.Probe) { p.Pattern = "" }, wantErr: "pattern"},
		{name: "negative radius", mutate: func(p *types.Probe) { p.Before = -1 }, wantErr: "negative"},
		{
			name:    "invalid regex",
			mutate:  func(p *types.Probe) { p.Kind = types.ProbeRegex; p.Pattern = "decode(" },
			wantErr: "compile",
		},
		{
			name:    "example does not match",
			mutate:  func(p *types.Probe) { p.Examples = []string{"nothing"} },
			wantErr: "does not match",
		},
		{
			name: "keywords present in examples",
			mutate: func(p *types.Probe) {
				p.Keywords = []string{"decode"}
			},
		},
		{
			name: "example missing keyword",
			mutate: func(p *types.Probe) {
				p.Kind = types.ProbeRegex
				p.Pattern = "(?i)decode"
				p.Keywords = []string{"decode"}
				p.Examples = []string{"x DECODE y"}
			},
			wantErr: "none of the keywords",
		},
		{
			name:    "negative example matches",
			mutate:  func(p *types.Probe) { p.NegativeExamples = []string{"decode"} },
			wantErr: "negative example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProbe()
			tt.mutate(p)

			err := Validate(p)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestValidateAll_Duplicate(t *testing.T) {
	err := ValidateAll([]*types.Probe{validProbe(), validProbe()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
