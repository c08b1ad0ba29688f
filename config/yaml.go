package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the YAML form of a Config.
type yamlConfig struct {
	Machines map[string][]string `yaml:"machines,omitempty"`
	MaxLines *int                `yaml:"max_lines,omitempty"`
	Verbose  *bool               `yaml:"verbose,omitempty"`
}

// LoadYAMLFile reads a YAML configuration file.
func LoadYAMLFile(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return LoadYAML(inf)
}

// LoadYAML decodes a YAML configuration. Unknown keys are rejected.
func LoadYAML(input io.Reader) (cfg *Config, err error) {
	var doc yamlConfig

	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)
	err = decoder.Decode(&doc)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return
	}

	cfg = Default()

	for name, names := range doc.Machines {
		err = cfg.setMachine(name, names)
		if err != nil {
			cfg = nil
			return
		}
	}

	if doc.MaxLines != nil {
		err = cfg.setMaxLines(*doc.MaxLines)
		if err != nil {
			cfg = nil
			return
		}
	}

	if doc.Verbose != nil {
		cfg.Verbose = *doc.Verbose
	}

	return
}
