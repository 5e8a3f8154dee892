package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		if FromContext(context.Background()) == nil {
			t.Fatal("expected a logger")
		}
	})
	t.Run("with logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), New(&buf, slog.LevelDebug))
		FromContext(ctx).Debug("converted", "bytes", 3)
		if got := buf.String(); !strings.Contains(got, "msg=converted bytes=3") {
			t.Errorf("unexpected log output %q", got)
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		in     string
		expect slog.Level
		err    bool
	}{
		"empty":   {in: "", expect: slog.LevelInfo},
		"debug":   {in: "DEBUG", expect: slog.LevelDebug},
		"warn":    {in: "warn", expect: slog.LevelWarn},
		"error":   {in: "error", expect: slog.LevelError},
		"unknown": {in: "trace", err: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLevel(test.in)
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
