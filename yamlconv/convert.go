package yamlconv

import (
	"fmt"
	"strings"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/value"
)

// Mode selects the YAML dialect.
type Mode int

const (
	// ModeLite is the line oriented YAML subset.
	ModeLite Mode = iota
	// ModeStandard is YAML 1.2 handled by goccy/go-yaml.
	ModeStandard
)

// String implements fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModeLite:
		return "lite"
	case ModeStandard:
		return "standard"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "lite":
		return ModeLite, nil
	case "standard", "std":
		return ModeStandard, nil
	}
	return ModeLite, errors.Errorf("unknown YAML mode %q", s)
}

// Options configures a conversion.
type Options struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	Mode   Mode
}

// DefaultIndent is used when Options.Indent is zero.
const DefaultIndent = 2

func (o Options) indent() int {
	if o.Indent == 0 {
		return DefaultIndent
	}
	return o.Indent
}

// Decode parses YAML source according to the mode.
func Decode(src string, mode Mode) (value.Value, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errors.ErrEmptyInput
	}
	if mode == ModeStandard {
		return ParseStandard(src)
	}
	obj, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Encode renders v as YAML according to the mode.
func Encode(v value.Value, opts Options) (string, error) {
	if opts.Mode == ModeStandard {
		return MarshalStandard(v, opts.indent())
	}
	return Marshal(v, opts.indent())
}

// YAMLToJSON converts YAML source into indented JSON.
func YAMLToJSON(src string, opts Options) (string, error) {
	v, err := Decode(src, opts.Mode)
	if err != nil {
		return "", err
	}
	return string(value.EncodeJSON(v, opts.indent())), nil
}

// JSONToYAML converts JSON source into YAML.
func JSONToYAML(src string, opts Options) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", errors.ErrEmptyInput
	}
	v, err := value.DecodeJSON([]byte(src))
	if err != nil {
		return "", err
	}
	return Encode(v, opts)
}
