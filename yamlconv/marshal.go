package yamlconv

import (
	"strings"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/value"
)

const (
	minIndent = 2
	maxIndent = 8
)

// Marshal renders v in the lite YAML dialect using indent spaces per level.
//
// Strings are written verbatim without quoting, so a string containing ": "
// or starting with a YAML indicator does not survive a round trip through Parse.
func Marshal(v value.Value, indent int) (string, error) {
	if err := validateIndent(indent); err != nil {
		return "", err
	}
	m := &marshaler{indent: indent}
	if isBlock(v) {
		return strings.Join(m.block(v, 0), "\n"), nil
	}
	return value.Scalar(v), nil
}

func validateIndent(indent int) error {
	if indent < minIndent || indent > maxIndent {
		return errors.Wrapf(errors.ErrInvalidIndent, "indent must be between %d and %d but got %d", minIndent, maxIndent, indent)
	}
	return nil
}

type marshaler struct {
	indent int
}

func (m *marshaler) pad(level int) string {
	return strings.Repeat(" ", level*m.indent)
}

// isBlock reports whether v is rendered as an indented block instead of inline.
func isBlock(v value.Value) bool {
	switch v.(type) {
	case value.Array, *value.Object:
		return !value.IsEmptyContainer(v)
	}
	return false
}

func (m *marshaler) block(v value.Value, level int) []string {
	var lines []string
	switch v := v.(type) {
	case *value.Object:
		for _, mem := range v.Members() {
			if isBlock(mem.Value) {
				lines = append(lines, m.pad(level)+mem.Key+":")
				lines = append(lines, m.block(mem.Value, level+1)...)
				continue
			}
			lines = append(lines, m.pad(level)+mem.Key+": "+value.Scalar(mem.Value))
		}
	case value.Array:
		dash := m.pad(level) + "-" + strings.Repeat(" ", m.indent-1)
		for _, elm := range v {
			if !isBlock(elm) {
				lines = append(lines, m.pad(level)+"- "+value.Scalar(elm))
				continue
			}
			// the first line of the nested block shares the dash line
			child := m.block(elm, level+1)
			child[0] = dash + strings.TrimPrefix(child[0], m.pad(level+1))
			lines = append(lines, child...)
		}
	}
	return lines
}
