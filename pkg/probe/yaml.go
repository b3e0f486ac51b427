package probe

// yamlContext holds the context radii. Unset fields take the default radius.
type yamlContext struct {
	Before *int `yaml:"before,omitempty"`
	After  *int `yaml:"after,omitempty"`
}

// yamlProbe is the intermediate struct for parsing the YAML probe format.
type yamlProbe struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Kind             string      `yaml:"kind,omitempty"`
	Pattern          string      `yaml:"pattern"`
	Label            string      `yaml:"label,omitempty"`
	Description      string      `yaml:"description,omitempty"`
	Context          yamlContext `yaml:"context,omitempty"`
	Keywords         []string    `yaml:"keywords,omitempty"`
	Examples         []string    `yaml:"examples,omitempty"`
	NegativeExamples []string    `yaml:"negative_examples,omitempty"`
}

// yamlProbesFile represents the top-level structure of a probes YAML file.
type yamlProbesFile struct {
	Probes []yamlProbe `yaml:"probes"`
}
