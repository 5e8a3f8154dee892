package errors

import (
	"strings"
	"testing"
)

func TestLineError(t *testing.T) {
	src := "name: John\nfoo bar\nage: 30\n"
	err := WithLine(Wrap(ErrInvalidFormat, `line "foo bar" has no key`), src, 2)

	if !Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat in chain: %v", err)
	}
	var lerr *LineError
	if !As(err, &lerr) {
		t.Fatalf("expected *LineError but got %T", err)
	}
	if got, expect := lerr.Line, 2; got != expect {
		t.Errorf("expected line %d but got %d", expect, got)
	}
	msg := err.Error()
	for _, s := range []string{"line 2:", "invalid format", "foo bar"} {
		if !strings.Contains(msg, s) {
			t.Errorf("message %q does not contain %q", msg, s)
		}
	}
}

func TestLineError_WithoutSource(t *testing.T) {
	tests := map[string]struct {
		err    error
		expect string
	}{
		"with line": {
			err:    WithLine(Errorf("unexpected %q", "x"), "", 3),
			expect: `line 3: unexpected "x"`,
		},
		"without line": {
			err:    &LineError{Err: New("boom")},
			expect: "boom",
		},
		"wrapped": {
			err:    Wrapf(WithLine(New("bad"), "", 1), "failed to parse %s", "input"),
			expect: "line 1: failed to parse input: bad",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.err.Error(); got != test.expect {
				t.Errorf("expect %q but got %q", test.expect, got)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if err := Errors(nil, nil); err != nil {
			t.Fatalf("expected nil but got %v", err)
		}
	})
	t.Run("single", func(t *testing.T) {
		err := Errors(nil, New("a"))
		if got, expect := err.Error(), "1 error occurred:\na\n"; got != expect {
			t.Errorf("expect %q but got %q", expect, got)
		}
	})
	t.Run("multiple", func(t *testing.T) {
		err := Errors(New("a"), ErrEmptyInput)
		if got, expect := err.Error(), "2 errors occurred:\n* a\n* input is empty\n"; got != expect {
			t.Errorf("expect %q but got %q", expect, got)
		}
		if !Is(err, ErrEmptyInput) {
			t.Error("expected ErrEmptyInput in chain")
		}
	})
}
