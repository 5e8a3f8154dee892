package cssfmt

import (
	"strings"
)

// Beautify re-indents src with indent spaces per nesting level.
//
// It scans the source once: "{" opens a block, ";" ends a declaration,
// "}" closes a block and a blank line separates top-level rules.
// Declaration colons are followed by exactly one space.
func Beautify(src string, indent int) string {
	p := &beautifier{
		src:    []rune(stripComments(src)),
		indent: strings.Repeat(" ", indent),
	}
	return p.run()
}

type beautifier struct {
	src     []rune
	indent  string
	level   int
	pending strings.Builder
	lines   []string
}

func (p *beautifier) run() string {
	for i := 0; i < len(p.src); i++ {
		c := p.src[i]
		switch c {
		case '{':
			p.flush(" {", true)
			p.level++
		case ';':
			p.flush(";", true)
		case '}':
			p.flush("", false)
			if p.level > 0 {
				p.level--
			}
			p.line("}")
			if p.level == 0 {
				p.lines = append(p.lines, "")
			}
		case ':':
			p.pending.WriteRune(c)
			if p.isDeclarationColon(i) {
				p.pending.WriteRune(' ')
				for i+1 < len(p.src) && isSpace(p.src[i+1]) {
					i++
				}
			}
		case '"', '\'':
			i = p.quoted(i)
		default:
			if isSpace(c) {
				s := p.pending.String()
				if s != "" && !strings.HasSuffix(s, " ") {
					p.pending.WriteRune(' ')
				}
				continue
			}
			p.pending.WriteRune(c)
		}
	}
	p.flush("", false)
	for len(p.lines) > 0 && p.lines[len(p.lines)-1] == "" {
		p.lines = p.lines[:len(p.lines)-1]
	}
	return strings.Join(p.lines, "\n")
}

// flush ends the current line with suffix.
// Without force an empty pending text produces no line.
func (p *beautifier) flush(suffix string, force bool) {
	text := strings.TrimSpace(p.pending.String())
	p.pending.Reset()
	if text == "" && !force {
		return
	}
	if text == "" {
		suffix = strings.TrimLeft(suffix, " ")
	}
	p.line(text + suffix)
}

func (p *beautifier) line(s string) {
	p.lines = append(p.lines, strings.Repeat(p.indent, p.level)+s)
}

// isDeclarationColon reports whether the colon at i separates a property from its value.
// Colons of pseudo selectors are followed by "{" before any ";" or "}".
func (p *beautifier) isDeclarationColon(i int) bool {
	if i > 0 && p.src[i-1] == ':' {
		return false
	}
	if i+1 < len(p.src) && p.src[i+1] == ':' {
		return false
	}
	for j := i + 1; j < len(p.src); j++ {
		switch p.src[j] {
		case '{':
			return false
		case ';', '}':
			return true
		}
	}
	return true
}

// quoted copies the string literal starting at i verbatim and returns its last index.
func (p *beautifier) quoted(i int) int {
	q := p.src[i]
	p.pending.WriteRune(q)
	for j := i + 1; j < len(p.src); j++ {
		c := p.src[j]
		p.pending.WriteRune(c)
		switch c {
		case '\\':
			if j+1 < len(p.src) {
				j++
				p.pending.WriteRune(p.src[j])
			}
		case q:
			return j
		}
	}
	return len(p.src) - 1
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
