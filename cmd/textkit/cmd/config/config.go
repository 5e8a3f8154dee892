// Package config loads the configuration file of the textkit command.
package config

import (
	"os"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/schema"
)

// DefaultConfigPath is used when no path is specified.
const DefaultConfigPath = "textkit.yaml"

var (
	// ConfigPath is the configuration file path. "-" means the standard input.
	ConfigPath string
	// Stdin is read when ConfigPath is "-".
	Stdin = os.Stdin
)

// Load loads the configuration and fills unset fields with default values.
// It returns the default configuration if no path is given and the default file doesn't exist.
func Load() (*schema.Config, error) {
	var (
		cfg *schema.Config
		err error
	)
	switch ConfigPath {
	case "-":
		cfg, err = schema.LoadConfigFromReader(Stdin)
	case "":
		if _, statErr := os.Stat(DefaultConfigPath); statErr != nil {
			if os.IsNotExist(statErr) {
				return schema.DefaultConfig(), nil
			}
			return nil, errors.Wrapf(statErr, "failed to stat %s", DefaultConfigPath)
		}
		cfg, err = schema.LoadConfig(DefaultConfigPath)
	default:
		cfg, err = schema.LoadConfig(ConfigPath)
	}
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults()
}
