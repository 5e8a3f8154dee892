package linediff

import (
	"fmt"
	"io"

	"github.com/scenarigo/textkit/color"
)

// Format writes lines with "+ ", "- " and "  " prefixes.
// Added and removed lines are colored when c is enabled.
func Format(w io.Writer, lines []Line, c *color.Config) error {
	for _, l := range lines {
		var s string
		switch l.Kind {
		case Added:
			s = "+ " + l.Text
			if c != nil {
				s = c.Green().Sprint(s)
			}
		case Removed:
			s = "- " + l.Text
			if c != nil {
				s = c.Red().Sprint(s)
			}
		default:
			s = "  " + l.Text
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// String implements fmt.Stringer interface.
func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d removed, %d unchanged", s.Added, s.Removed, s.Unchanged)
}
