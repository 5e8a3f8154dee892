package cssfmt

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/scenarigo/textkit/internal/testutil"
)

func TestFormat(t *testing.T) {
	exec := func(mode Mode) testutil.TestCaseExecutor {
		return func(t *testing.T, c testutil.TestCase) (string, error) {
			opts := Options{Mode: mode}
			if s, ok := c.Args["indent"]; ok {
				n, err := strconv.Atoi(s)
				if err != nil {
					t.Fatal(err)
				}
				opts.Indent = n
			}
			return Format(c.Input, opts)
		}
	}
	t.Run("beautify", func(t *testing.T) {
		testutil.RunTestCases(t, exec(ModeBeautify), filepath.Join("testdata", "beautify.yaml"))
	})
	t.Run("minify", func(t *testing.T) {
		testutil.RunTestCases(t, exec(ModeMinify), filepath.Join("testdata", "minify.yaml"))
	})
}

var samples = map[string]string{
	"simple":    ".a{color:red;}",
	"spaced":    "  .a  ,  .b  {  color :  red ;  margin : 0  auto  ;  }  ",
	"nested":    "@media screen and (max-width: 600px) { .a:hover { display : none } .b::after{content:' x '} }",
	"comments":  "/* a */ .a { /* b */ color: red; } /* c */",
	"semicolon": "a{b:c;;;}d{}",
	"strings":   `a[title="x ; y"]{content:"{ }"; font: 12px/1.5 "A B", serif}`,
	"newlines":  "a\n{\n\tcolor:\n\t\tred\n}\n\n\nb{c:d}",
}

func TestMinify_Idempotent(t *testing.T) {
	for name, src := range samples {
		t.Run(name, func(t *testing.T) {
			once := Minify(src)
			if twice := Minify(once); twice != once {
				t.Errorf("not idempotent:\n%s", testutil.PrettyDiff(once, twice))
			}
		})
	}
}

func TestBeautify_PreservesMinified(t *testing.T) {
	for name, src := range samples {
		for _, indent := range []int{2, 4} {
			t.Run(name+"/"+strconv.Itoa(indent), func(t *testing.T) {
				expect := Minify(src)
				if got := Minify(Beautify(src, indent)); got != expect {
					t.Errorf("differs:\n%s", testutil.PrettyDiff(expect, got))
				}
			})
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]struct {
		in     string
		expect Mode
		err    bool
	}{
		"default": {in: "", expect: ModeBeautify},
		"minify":  {in: "MINIFY", expect: ModeMinify},
		"alias":   {in: "min", expect: ModeMinify},
		"unknown": {in: "compress", err: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMode(test.in)
			if test.err {
				if err == nil {
					t.Fatal("no error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expect {
				t.Errorf("expect %s but got %s", test.expect, got)
			}
		})
	}
}
