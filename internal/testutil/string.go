package testutil

import (
	"regexp"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scenarigo/textkit/version"
)

var (
	versionPattern = regexp.MustCompile(regexp.QuoteMeta(version.String()))
	elapsedPattern = regexp.MustCompile(`elapsed=\S+`)
	goPattern      = regexp.MustCompile(`go\d+\.\d+(\.\d+)?\S* \w+/\w+`)
)

// ReplaceOutput normalizes environment dependent parts of command output.
func ReplaceOutput(s string) string {
	funcs := []func(string) string{
		ReplaceVersion,
		ResetElapsed,
	}
	for _, f := range funcs {
		s = f(s)
	}
	return s
}

// ReplaceVersion replaces the textkit version and the Go runtime information.
func ReplaceVersion(s string) string {
	s = versionPattern.ReplaceAllString(s, "v1.0.0")
	return goPattern.ReplaceAllString(s, "go1.0.0 os/arch")
}

// ResetElapsed resets elapsed time attributes of log lines.
func ResetElapsed(s string) string {
	return elapsedPattern.ReplaceAllString(s, "elapsed=0s")
}

// PrettyDiff returns a human readable character diff between expect and got.
func PrettyDiff(expect, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expect, got, false)
	return dmp.DiffPrettyText(diffs)
}
