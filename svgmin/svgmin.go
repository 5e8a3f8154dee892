// Package svgmin minifies SVG markup with an ordered list of textual rewrites.
//
// No DOM is built, so malformed markup is rewritten rather than rejected.
package svgmin

import (
	"regexp"
	"strings"
)

// Step is a single rewrite of the pipeline.
type Step struct {
	Name  string
	Apply func(string) string
}

var (
	commentPattern      = regexp.MustCompile(`<!--[\s\S]*?-->`)
	interTagPattern     = regexp.MustCompile(`>\s+<`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	emptyAttrPattern    = regexp.MustCompile(`\s+[\w:.-]+=(""|'')`)
	quotedAttrPattern   = regexp.MustCompile(`=(?:"([\w.#%-]+)"|'([\w.#%-]+)')(\s|>)`)
	namespacePattern    = regexp.MustCompile(`\s+xmlns(?::xlink)?=["']?(?:http://www\.w3\.org/2000/svg|http://www\.w3\.org/1999/xlink)["']?`)
	versionPattern      = regexp.MustCompile(`\s+version=(?:"1\.1"|'1\.1'|1\.1\b)`)
	attrValuePattern    = regexp.MustCompile(`=("[^"]*"|'[^']*'|[^\s"'>/]+)`)
	valueTokenPattern   = regexp.MustCompile(`[^\s,;:()]+`)
	zeroFractionPattern = regexp.MustCompile(`^([-+]?\d+)\.0+$`)
	stylePattern        = regexp.MustCompile(`style=("[^"]*"|'[^']*')`)
	styleSpacePattern   = regexp.MustCompile(`\s*([:;])\s*`)
	emptyElemPattern    = regexp.MustCompile(`<([A-Za-z][\w:.-]*)\s*></([A-Za-z][\w:.-]*)>`)
	selfClosedPattern   = regexp.MustCompile(`<(?:g|defs|symbol)\s*/>`)
	emptyGroupPattern   = regexp.MustCompile(`<g(?:\s[^>]*)?></g>`)
	pathDataPattern     = regexp.MustCompile(`\sd=("[^"]*"|'[^']*')`)
	pathCommandPattern  = regexp.MustCompile(`([MmLlHhVvCcSsQqTtAaZz])\s+`)
	pathZeroPattern     = regexp.MustCompile(`(\.\d*?)0+\b`)
	pathDotPattern      = regexp.MustCompile(`(\d)\.(\D|$)`)
)

var steps = []Step{
	{Name: "strip-comments", Apply: stripComments},
	{Name: "collapse-whitespace", Apply: collapseWhitespace},
	{Name: "drop-empty-attrs", Apply: dropEmptyAttrs},
	{Name: "unquote-attrs", Apply: unquoteAttrs},
	{Name: "drop-default-namespaces", Apply: dropDefaultNamespaces},
	{Name: "trim-numeric-zeros", Apply: trimNumericZeros},
	{Name: "compact-style", Apply: compactStyle},
	{Name: "drop-empty-elements", Apply: dropEmptyElements},
	{Name: "compact-path-data", Apply: compactPathData},
}

// Steps returns the pipeline in the order it is applied.
func Steps() []Step {
	return append([]Step(nil), steps...)
}

// Result is the outcome of Minify.
type Result struct {
	Output       string
	OriginalSize int
	MinifiedSize int
}

// Savings returns the size reduction in percent.
func (r Result) Savings() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.OriginalSize-r.MinifiedSize) / float64(r.OriginalSize) * 100
}

// Option configures Minify.
type Option func(*config)

type config struct {
	skip map[string]struct{}
}

// WithSkip disables the named steps. Unknown names are ignored.
func WithSkip(names ...string) Option {
	return func(c *config) {
		for _, name := range names {
			c.skip[name] = struct{}{}
		}
	}
}

// Minify rewrites src through every enabled step.
func Minify(src string, opts ...Option) Result {
	cfg := &config{skip: map[string]struct{}{}}
	for _, opt := range opts {
		opt(cfg)
	}
	out := src
	for _, step := range steps {
		if _, ok := cfg.skip[step.Name]; ok {
			continue
		}
		out = step.Apply(out)
	}
	return Result{
		Output:       out,
		OriginalSize: len(src),
		MinifiedSize: len(out),
	}
}

func stripComments(s string) string {
	return commentPattern.ReplaceAllString(s, "")
}

func collapseWhitespace(s string) string {
	s = interTagPattern.ReplaceAllString(s, "><")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func dropEmptyAttrs(s string) string {
	return emptyAttrPattern.ReplaceAllString(s, "")
}

// unquoteAttrs removes the quotes of single word values.
// A value directly followed by "/" keeps its quotes so that "/>" is not absorbed.
func unquoteAttrs(s string) string {
	return quotedAttrPattern.ReplaceAllString(s, "=$1$2$3")
}

func dropDefaultNamespaces(s string) string {
	s = namespacePattern.ReplaceAllString(s, "")
	return versionPattern.ReplaceAllString(s, "")
}

// trimNumericZeros drops a zero fraction from numbers in attribute values.
// Only whole tokens are rewritten, so "icon-v2.0.svg" or "layer1.0" stay as they are.
func trimNumericZeros(s string) string {
	return attrValuePattern.ReplaceAllStringFunc(s, func(attr string) string {
		return valueTokenPattern.ReplaceAllStringFunc(attr, trimZeroFraction)
	})
}

func trimZeroFraction(tok string) string {
	head, tail := "", ""
	for len(tok) > 0 && strings.ContainsRune(`="'`, rune(tok[0])) {
		head, tok = head+tok[:1], tok[1:]
	}
	for len(tok) > 0 && strings.ContainsRune(`"'`, rune(tok[len(tok)-1])) {
		tok, tail = tok[:len(tok)-1], tok[len(tok)-1:]+tail
	}
	return head + zeroFractionPattern.ReplaceAllString(tok, "$1") + tail
}

func compactStyle(s string) string {
	return stylePattern.ReplaceAllStringFunc(s, func(attr string) string {
		quote := attr[len("style=")]
		body := attr[len("style=")+1 : len(attr)-1]
		body = styleSpacePattern.ReplaceAllString(strings.TrimSpace(body), "$1")
		body = strings.TrimRight(body, ";")
		return "style=" + string(quote) + body + string(quote)
	})
}

// dropEmptyElements removes attribute-less elements without content and empty groups.
// It repeats until nothing changes so nested empty groups disappear too.
func dropEmptyElements(s string) string {
	for {
		next := selfClosedPattern.ReplaceAllString(s, "")
		next = emptyGroupPattern.ReplaceAllString(next, "")
		next = emptyElemPattern.ReplaceAllStringFunc(next, func(elem string) string {
			m := emptyElemPattern.FindStringSubmatch(elem)
			if m[1] != m[2] {
				return elem
			}
			return ""
		})
		if next == s {
			return s
		}
		s = next
	}
}

func compactPathData(s string) string {
	return pathDataPattern.ReplaceAllStringFunc(s, func(attr string) string {
		quote := attr[len(" d=")]
		body := attr[len(" d=")+1 : len(attr)-1]
		body = whitespacePattern.ReplaceAllString(strings.TrimSpace(body), " ")
		body = pathCommandPattern.ReplaceAllString(body, "$1")
		body = pathZeroPattern.ReplaceAllString(body, "$1")
		body = pathDotPattern.ReplaceAllString(body, "$1$2")
		return attr[:1] + "d=" + string(quote) + body + string(quote)
	})
}
