// Package cssfmt reformats CSS text.
//
// Both Beautify and Minify are best-effort rewrites. Invalid CSS is not
// rejected and brace balance is not checked.
package cssfmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/scenarigo/textkit/errors"
)

var (
	commentPattern    = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	punctPattern      = regexp.MustCompile(`\s*([{};:,])\s*`)
	lastSemiPattern   = regexp.MustCompile(`;+}`)
)

// Mode selects the output style.
type Mode int

const (
	ModeBeautify Mode = iota
	ModeMinify
)

// String implements fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModeBeautify:
		return "beautify"
	case ModeMinify:
		return "minify"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "beautify", "pretty":
		return ModeBeautify, nil
	case "minify", "min":
		return ModeMinify, nil
	}
	return ModeBeautify, errors.Errorf("unknown CSS mode %q", s)
}

// Options configures Format.
type Options struct {
	Mode Mode
	// Indent is the number of spaces per level for ModeBeautify. Zero means 2.
	Indent int
}

// Format rewrites src according to opts.
func Format(src string, opts Options) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", errors.ErrEmptyInput
	}
	if opts.Mode == ModeMinify {
		return Minify(src), nil
	}
	indent := opts.Indent
	if indent == 0 {
		indent = 2
	}
	if indent < 0 {
		return "", errors.Wrapf(errors.ErrInvalidIndent, "indent must not be negative but got %d", indent)
	}
	return Beautify(src, indent), nil
}

// stripComments replaces every comment with a single space.
func stripComments(src string) string {
	return commentPattern.ReplaceAllString(src, " ")
}

// Minify removes comments and every whitespace which is not significant.
func Minify(src string) string {
	s := stripComments(src)
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = punctPattern.ReplaceAllString(s, "$1")
	s = lastSemiPattern.ReplaceAllString(s, "}")
	return strings.TrimSpace(s)
}
