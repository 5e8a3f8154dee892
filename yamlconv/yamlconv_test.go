package yamlconv

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/internal/testutil"
	"github.com/scenarigo/textkit/value"
)

func options(t *testing.T, args map[string]string) Options {
	t.Helper()
	var opts Options
	if s, ok := args["indent"]; ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			t.Fatal(err)
		}
		opts.Indent = n
	}
	mode, err := ParseMode(args["mode"])
	if err != nil {
		t.Fatal(err)
	}
	opts.Mode = mode
	return opts
}

func TestYAMLToJSON(t *testing.T) {
	testutil.RunTestCases(t, func(t *testing.T, c testutil.TestCase) (string, error) {
		return YAMLToJSON(c.Input, options(t, c.Args))
	}, filepath.Join("testdata", "yaml2json.yaml"))
}

func TestJSONToYAML(t *testing.T) {
	testutil.RunTestCases(t, func(t *testing.T, c testutil.TestCase) (string, error) {
		return JSONToYAML(c.Input, options(t, c.Args))
	}, filepath.Join("testdata", "json2yaml.yaml"))
}

func TestParse(t *testing.T) {
	obj, err := Parse("name: John\nage: 30\n")
	if err != nil {
		t.Fatal(err)
	}
	name, _ := obj.Get("name")
	age, _ := obj.Get("age")
	if diff := cmp.Diff([]value.Value{value.String("John"), value.Number(30)}, []value.Value{name, age}); diff != "" {
		t.Errorf("differs (-want +got):\n%s", diff)
	}
	if got := obj.Len(); got != 2 {
		t.Errorf("expected 2 keys but got %d", got)
	}
}

func TestParse_Error(t *testing.T) {
	src := "a: 1\nb: 2\noops\n"
	_, err := Parse(src)
	if err == nil {
		t.Fatal("no error")
	}
	if !errors.Is(err, errors.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat but got %v", err)
	}
	var lerr *errors.LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *errors.LineError but got %T", err)
	}
	if lerr.Line != 3 {
		t.Errorf("expected line 3 but got %d", lerr.Line)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := map[string]string{
		"flat": `name: John
age: 30
active: true
ratio: 0.25`,
		"nested": `server:
  host: localhost
  port: 8080
debug: false`,
		"empty containers": `empty: {}
none: []`,
	}
	for name, src := range tests {
		for _, indent := range []int{2, 4, 8} {
			t.Run(name+"/"+strconv.Itoa(indent), func(t *testing.T) {
				first, err := Parse(src)
				if err != nil {
					t.Fatal(err)
				}
				out, err := Marshal(first, indent)
				if err != nil {
					t.Fatal(err)
				}
				second, err := Parse(out)
				if err != nil {
					t.Fatalf("failed to parse %q: %s", out, err)
				}
				if diff := cmp.Diff(string(value.EncodeJSON(first, 0)), string(value.EncodeJSON(second, 0))); diff != "" {
					t.Errorf("differs (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestMarshalStandard_RoundTrip(t *testing.T) {
	v, err := value.DecodeJSON([]byte(`{"title":"a: b","flag":"true","empty":"","list":[{"k":1}],"n":null}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := MarshalStandard(v, 2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseStandard(out)
	if err != nil {
		t.Fatalf("failed to parse %q: %s", out, err)
	}
	if diff := cmp.Diff(string(value.EncodeJSON(v, 0)), string(value.EncodeJSON(got, 0))); diff != "" {
		t.Errorf("differs (-want +got):\n%s", diff)
	}
}

func TestYAMLToJSON_NonFinite(t *testing.T) {
	got, err := YAMLToJSON("x: .inf\ny: -.inf\nz: .nan\n", Options{Mode: ModeStandard})
	if err != nil {
		t.Fatal(err)
	}
	expect := `{
  "x": null,
  "y": null,
  "z": null
}`
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("differs (-want +got):\n%s", diff)
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]struct {
		in     string
		expect Mode
		err    bool
	}{
		"default":  {in: "", expect: ModeLite},
		"lite":     {in: "lite", expect: ModeLite},
		"standard": {in: "Standard", expect: ModeStandard},
		"unknown":  {in: "strict", err: true},
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
