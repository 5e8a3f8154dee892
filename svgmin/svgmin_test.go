package svgmin

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMinify(t *testing.T) {
	tests := map[string]struct {
		in     string
		opts   []Option
		expect string
	}{
		"default namespace": {
			in:     `<svg width="100" height="100" xmlns="http://www.w3.org/2000/svg"><circle r="40"/></svg>`,
			expect: `<svg width=100 height=100><circle r="40"/></svg>`,
		},
		"comments and whitespace": {
			in: `<svg>
  <!-- <g>not a tag</g> -->
  <rect   x="1.0"   y="2.50"  fill="" />
</svg>`,
			expect: `<svg><rect x=1 y=2.50 /></svg>`,
		},
		"xlink and version": {
			in:     `<svg version="1.1" xmlns:xlink="http://www.w3.org/1999/xlink"><use href="#a"/></svg>`,
			expect: `<svg><use href="#a"/></svg>`,
		},
		"style": {
			in:     `<path style=" fill : red ;  stroke-width: 1.0 ; " d="M 10.50 20.0 L 30 40 Z"/>`,
			expect: `<path style="fill:red;stroke-width:1" d="M10.5 20 L30 40 Z"/>`,
		},
		"zero fractions inside references": {
			in:     `<image href="icons-v2.0.svg" id="layer1.0" x="2.0"/>`,
			expect: `<image href=icons-v2.0.svg id=layer1.0 x="2"/>`,
		},
		"zero fractions in lists": {
			in:     `<svg viewBox="0.0 0 24.00 24"><polygon points="1.0,2.0 3.5,4.0" transform="translate(1.0;2)"/></svg>`,
			expect: `<svg viewBox="0 0 24 24"><polygon points="1,2 3.5,4" transform="translate(1;2)"/></svg>`,
		},
		"empty elements and groups": {
			in:     `<svg><g id="layer"><g></g></g><defs/><title></title><circle r="1"/></svg>`,
			expect: `<svg><circle r="1"/></svg>`,
		},
		"mismatched empty element": {
			in:     `<svg><a></b></svg>`,
			expect: `<svg><a></b></svg>`,
		},
		"skip unquote": {
			in:     `<svg width="100" height="100"></svg>`,
			opts:   []Option{WithSkip("unquote-attrs", "drop-empty-elements")},
			expect: `<svg width="100" height="100"></svg>`,
		},
		"skip unknown step": {
			in:     `<g></g>`,
			opts:   []Option{WithSkip("no-such-step")},
			expect: ``,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := Minify(test.in, test.opts...)
			if diff := cmp.Diff(test.expect, got.Output); diff != "" {
				t.Errorf("differs (-want +got):\n%s", diff)
			}
			if got.OriginalSize != len(test.in) {
				t.Errorf("expected original size %d but got %d", len(test.in), got.OriginalSize)
			}
			if got.MinifiedSize != len(got.Output) {
				t.Errorf("expected minified size %d but got %d", len(got.Output), got.MinifiedSize)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	var names []string
	for _, s := range Steps() {
		names = append(names, s.Name)
	}
	expect := []string{
		"strip-comments",
		"collapse-whitespace",
		"drop-empty-attrs",
		"unquote-attrs",
		"drop-default-namespaces",
		"trim-numeric-zeros",
		"compact-style",
		"drop-empty-elements",
		"compact-path-data",
	}
	if diff := cmp.Diff(expect, names); diff != "" {
		t.Errorf("differs (-want +got):\n%s", diff)
	}
}

func TestResult_Savings(t *testing.T) {
	tests := map[string]struct {
		result Result
		expect float64
	}{
		"empty":  {result: Result{}, expect: 0},
		"half":   {result: Result{OriginalSize: 200, MinifiedSize: 100}, expect: 50},
		"no-op":  {result: Result{OriginalSize: 10, MinifiedSize: 10}, expect: 0},
		"growth": {result: Result{OriginalSize: 4, MinifiedSize: 5}, expect: -25},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.result.Savings(); math.Abs(got-test.expect) > 1e-9 {
				t.Errorf("expect %f but got %f", test.expect, got)
			}
		})
	}
}
