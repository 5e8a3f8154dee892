package schema

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/scenarigo/textkit/errors"
)

// LoadConfig loads a configuration from path.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfigFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get root directory")
	}
	cfg.Root = root
	return cfg, nil
}

// LoadConfigFromReader loads a configuration from r.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, errors.Wrap(err, "failed to decode YAML")
	}
	switch cfg.SchemaVersion {
	case "", SchemaVersion:
	default:
		return nil, errors.Errorf("unknown schema version %q", cfg.SchemaVersion)
	}
	return &cfg, nil
}
