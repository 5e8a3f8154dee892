// Package linediff compares texts line by line.
//
// Compute is a positional diff: lines are aligned by index, not by a minimal
// edit script, so a single inserted line marks every following line as
// changed. ComputeLCS is available for callers who want a real diff.
package linediff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scenarigo/textkit/errors"
)

// Kind is the kind of a diff line.
type Kind int

const (
	Unchanged Kind = iota
	Removed
	Added
)

// String implements fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Removed:
		return "removed"
	case Added:
		return "added"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Line is a single line of a diff.
type Line struct {
	Kind Kind
	Text string
	// LineNumber is 1-based.
	LineNumber int
}

// Mode selects the diff algorithm.
type Mode int

const (
	ModePositional Mode = iota
	ModeLCS
)

// String implements fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModePositional:
		return "positional"
	case ModeLCS:
		return "lcs"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "positional":
		return ModePositional, nil
	case "lcs", "myers":
		return ModeLCS, nil
	}
	return ModePositional, errors.Errorf("unknown diff mode %q", s)
}

// Diff compares a and b with the algorithm of mode.
func Diff(a, b string, mode Mode) []Line {
	if mode == ModeLCS {
		return ComputeLCS(a, b)
	}
	return Compute(a, b)
}

// Compute compares a and b line by line at the same index.
// A differing index yields the removed line followed by the added line.
func Compute(a, b string) []Line {
	lines1 := strings.Split(a, "\n")
	lines2 := strings.Split(b, "\n")
	n := max(len(lines1), len(lines2))
	result := make([]Line, 0, n)
	for i := range n {
		var l1, l2 *string
		if i < len(lines1) {
			l1 = &lines1[i]
		}
		if i < len(lines2) {
			l2 = &lines2[i]
		}
		if l1 != nil && l2 != nil && *l1 == *l2 {
			result = append(result, Line{Kind: Unchanged, Text: *l1, LineNumber: i + 1})
			continue
		}
		if l1 != nil {
			result = append(result, Line{Kind: Removed, Text: *l1, LineNumber: i + 1})
		}
		if l2 != nil {
			result = append(result, Line{Kind: Added, Text: *l2, LineNumber: i + 1})
		}
	}
	return result
}

// ComputeLCS compares a and b with a line-level Myers diff.
// LineNumber is the old line number for removed lines and the new one otherwise.
func ComputeLCS(a, b string) []Line {
	dmp := diffmatchpatch.New()
	// every line gets a terminator so that the last line compares like the others
	c1, c2, lines := dmp.DiffLinesToChars(a+"\n", b+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	var result []Line
	oldNum, newNum := 0, 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNum++
				newNum++
				result = append(result, Line{Kind: Unchanged, Text: text, LineNumber: newNum})
			case diffmatchpatch.DiffDelete:
				oldNum++
				result = append(result, Line{Kind: Removed, Text: text, LineNumber: oldNum})
			case diffmatchpatch.DiffInsert:
				newNum++
				result = append(result, Line{Kind: Added, Text: text, LineNumber: newNum})
			}
		}
	}
	return result
}

func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\n")
	}
	return lines
}

// Summary counts the lines of a diff by kind.
type Summary struct {
	Added     int
	Removed   int
	Unchanged int
}

// Identical reports whether there is no change.
func (s Summary) Identical() bool {
	return s.Added == 0 && s.Removed == 0
}

// Summarize counts lines by kind.
func Summarize(lines []Line) Summary {
	var s Summary
	for _, l := range lines {
		switch l.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Unchanged:
			s.Unchanged++
		}
	}
	return s
}
