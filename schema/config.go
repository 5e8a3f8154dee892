// Package schema provides the textkit configuration file schema.
package schema

import (
	"runtime"

	"dario.cat/mergo"

	"github.com/scenarigo/textkit/errors"
)

// SchemaVersion is the supported configuration schema version.
const SchemaVersion = "config/v1"

// Config represents a configuration file.
type Config struct {
	SchemaVersion string       `yaml:"schemaVersion,omitempty"`
	YAML          YAMLConfig   `yaml:"yaml,omitempty"`
	CSS           CSSConfig    `yaml:"css,omitempty"`
	SVG           SVGConfig    `yaml:"svg,omitempty"`
	Diff          DiffConfig   `yaml:"diff,omitempty"`
	Input         InputConfig  `yaml:"input,omitempty"`
	Output        OutputConfig `yaml:"output,omitempty"`

	// Root is the directory of the configuration file.
	Root string `yaml:"-"`
}

// YAMLConfig represents yaml2json and json2yaml settings.
type YAMLConfig struct {
	Indent int    `yaml:"indent,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
}

// CSSConfig represents css settings.
type CSSConfig struct {
	Indent int    `yaml:"indent,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
}

// SVGConfig represents svg settings.
type SVGConfig struct {
	Skip     []string `yaml:"skip,omitempty"`
	Parallel int      `yaml:"parallel,omitempty"`
}

// DiffConfig represents diff settings.
type DiffConfig struct {
	Mode string `yaml:"mode,omitempty"`
}

// InputConfig represents input settings.
type InputConfig struct {
	Charset string `yaml:"charset,omitempty"`
}

// OutputConfig represents output settings.
type OutputConfig struct {
	Colored *bool `yaml:"colored,omitempty"`
	Verbose bool  `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		YAML: YAMLConfig{
			Indent: 2,
			Mode:   "lite",
		},
		CSS: CSSConfig{
			Indent: 2,
			Mode:   "beautify",
		},
		SVG: SVGConfig{
			Parallel: runtime.NumCPU(),
		},
		Diff: DiffConfig{
			Mode: "positional",
		},
		Input: InputConfig{
			Charset: "utf-8",
		},
	}
}

// WithDefaults fills the zero fields of cfg with the default values.
func (c *Config) WithDefaults() (*Config, error) {
	if c == nil {
		return DefaultConfig(), nil
	}
	if err := mergo.Merge(c, DefaultConfig()); err != nil {
		return nil, errors.Wrap(err, "failed to apply default config")
	}
	return c, nil
}
