package textio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	latin1 := filepath.Join(dir, "latin1.txt")
	if err := os.WriteFile(latin1, []byte{'c', 'a', 'f', 0xe9}, 0o600); err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		path    string
		charset string
		stdin   string
		expect  string
	}{
		"stdin": {
			path:   Stdin,
			stdin:  "name: John",
			expect: "name: John",
		},
		"empty path reads stdin": {
			stdin:  "x",
			expect: "x",
		},
		"latin1 file": {
			path:    latin1,
			charset: "iso-8859-1",
			expect:  "café",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Read(test.path, test.charset, strings.NewReader(test.stdin))
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expect {
				t.Errorf("expect %q but got %q", test.expect, got)
			}
		})
	}
}

func TestRead_Error(t *testing.T) {
	tests := map[string]struct {
		path    string
		charset string
	}{
		"missing file":    {path: filepath.Join(t.TempDir(), "missing")},
		"unknown charset": {path: Stdin, charset: "no-such-charset"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Read(test.path, test.charset, strings.NewReader("")); err == nil {
				t.Fatal("no error")
			}
		})
	}
}
