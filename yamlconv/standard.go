package yamlconv

import (
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/value"
)

// ParseStandard parses a full YAML document.
func ParseStandard(src string) (value.Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(src), &v, yaml.UseOrderedMap()); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidFormat, yaml.FormatError(err, false, true))
	}
	return value.FromInterface(v)
}

// MarshalStandard renders v as YAML with proper quoting.
func MarshalStandard(v value.Value, indent int) (string, error) {
	if err := validateIndent(indent); err != nil {
		return "", err
	}
	b, err := yaml.MarshalWithOptions(value.ToInterface(v), yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal YAML")
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
