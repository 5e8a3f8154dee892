// Package yamlconv converts between a YAML subset and JSON values.
//
// The lite dialect handled by Parse and Marshal is line oriented: nested
// mappings are expressed by indentation and lists only as JSON literals
// ("tags: [1, 2]"). Multi-line scalars, anchors, tags and block sequences
// are not supported. Use ParseStandard and MarshalStandard for full YAML.
package yamlconv

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/value"
)

var numberPattern = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

type frame struct {
	obj    *value.Object
	indent int
}

// Parse parses the lite YAML dialect into an object.
func Parse(src string) (*value.Object, error) {
	root := value.NewObject()
	stack := []frame{{obj: root, indent: -1}}
	for i, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, raw, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, errors.WithLine(
				errors.Wrapf(errors.ErrInvalidFormat, "missing \":\" in %q", trimmed),
				src, i+1,
			)
		}
		key = strings.TrimSpace(key)
		raw = strings.TrimSpace(raw)

		indent := indentOf(line)
		for len(stack) > 1 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		current := stack[len(stack)-1].obj

		if raw == "" {
			child := value.NewObject()
			current.Set(key, child)
			stack = append(stack, frame{obj: child, indent: indent})
			continue
		}
		current.Set(key, coerce(raw))
	}
	return root, nil
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// coerce converts a raw scalar. Malformed JSON literals fall back to empty containers.
func coerce(raw string) value.Value {
	switch {
	case strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]"):
		if v, err := value.DecodeJSON([]byte(raw)); err == nil {
			if arr, ok := v.(value.Array); ok {
				return arr
			}
		}
		return value.Array{}
	case strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}"):
		if v, err := value.DecodeJSON([]byte(raw)); err == nil {
			if obj, ok := v.(*value.Object); ok {
				return obj
			}
		}
		return value.NewObject()
	case raw == "true":
		return value.Bool(true)
	case raw == "false":
		return value.Bool(false)
	case numberPattern.MatchString(raw):
		if v, err := value.DecodeJSON([]byte(normalizeNumber(raw))); err == nil {
			return v
		}
	}
	return value.String(unquote(raw))
}

// normalizeNumber rewrites a numeric literal into JSON number syntax.
func normalizeNumber(s string) string {
	s = strings.TrimPrefix(s, "+")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	mant, exp, hasExp := strings.Cut(strings.ToLower(s), "e")
	if strings.HasPrefix(mant, ".") {
		mant = "0" + mant
	}
	if strings.HasSuffix(mant, ".") {
		mant += "0"
	}
	intPart, frac, hasFrac := strings.Cut(mant, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	s = intPart
	if hasFrac {
		s += "." + frac
	}
	if hasExp {
		s += "e" + exp
	}
	if neg {
		s = "-" + s
	}
	return s
}

// unquote strips one leading and one trailing quote independently.
func unquote(s string) string {
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'") {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) || strings.HasSuffix(s, "'") {
		s = s[:len(s)-1]
	}
	return s
}
