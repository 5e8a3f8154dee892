package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"testing"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/internal/testutil"
	"github.com/scenarigo/textkit/version"
)

func TestVersion(t *testing.T) {
	var b bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&b)
	printVersion(cmd, nil)
	if got, expect := b.String(), fmt.Sprintf("%s version %s %s %s/%s\n", appName, version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH); got != expect {
		t.Errorf("output differs:\n%s", testutil.PrettyDiff(expect, got))
	}
	if got, expect := testutil.ReplaceOutput(b.String()), "textkit version v1.0.0 go1.0.0 os/arch\n"; got != expect {
		t.Errorf("output differs:\n%s", testutil.PrettyDiff(expect, got))
	}
}
