package testutil

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

// TestCase is a test case loaded from a YAML file.
type TestCase struct {
	Name   string            `yaml:"name"`
	Input  string            `yaml:"input"`
	Expect string            `yaml:"expect"`
	Args   map[string]string `yaml:"args"`
	// Error is a substring of the expected error message.
	Error string `yaml:"error"`
}

// TestCaseExecutor runs a single test case and returns the output.
type TestCaseExecutor func(t *testing.T, c TestCase) (string, error)

// RunTestCases runs the test cases written in files as subtests.
// Each file may contain several YAML documents, one case per document.
func RunTestCases(t *testing.T, exec TestCaseExecutor, files ...string) {
	t.Helper()
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			for _, c := range LoadTestCases(t, file) {
				t.Run(c.Name, func(t *testing.T) {
					got, err := exec(t, c)
					if c.Error != "" {
						if err == nil {
							t.Fatalf("expected error %q but got output %q", c.Error, got)
						}
						if !strings.Contains(err.Error(), c.Error) {
							t.Fatalf("expected error %q but got %q", c.Error, err)
						}
						return
					}
					if err != nil {
						t.Fatalf("unexpected error: %s", err)
					}
					if got != c.Expect {
						t.Errorf("output differs:\n%s", PrettyDiff(c.Expect, got))
					}
				})
			}
		})
	}
}

// LoadTestCases decodes test cases from file.
func LoadTestCases(t *testing.T, file string) []TestCase {
	t.Helper()
	f, err := os.Open(file)
	if err != nil {
		t.Fatalf("failed to open file: %s", err)
	}
	defer f.Close()

	var cases []TestCase
	dec := yaml.NewDecoder(f, yaml.Strict())
	for {
		var c TestCase
		if err := dec.Decode(&c); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatalf("failed to decode test case: %s", err)
		}
		cases = append(cases, c)
	}
	return cases
}
