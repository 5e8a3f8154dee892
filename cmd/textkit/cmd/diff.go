package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/internal/ctxlog"
	"github.com/scenarigo/textkit/internal/textio"
	"github.com/scenarigo/textkit/linediff"
)

// ErrDifferencesFound is returned by the diff command with --exit-code when the texts differ.
var ErrDifferencesFound = errors.New("differences found")

var (
	diffMode     string
	diffStats    bool
	diffExitCode bool
)

func init() {
	diffCmd.Flags().StringVarP(&diffMode, "mode", "m", "", "diff algorithm, 'positional' or 'lcs' (default: positional)")
	diffCmd.Flags().BoolVar(&diffStats, "stats", false, "print the number of added, removed and unchanged lines")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "exit with status 10 if there are differences")
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff old new",
	Short: "compare two texts line by line",
	Long: `Compares two texts line by line.

The default 'positional' mode compares lines at the same line number, so an
inserted line marks every following line as changed. Use --mode lcs for a
diff based on the longest common subsequence.
Either file may be '-' to read the standard input.`,
	Args:          cobra.ExactArgs(2),
	RunE:          diff,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func diff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mode := cfg.Diff.Mode
	if cmd.Flags().Changed("mode") {
		mode = diffMode
	}
	m, err := linediff.ParseMode(mode)
	if err != nil {
		return err
	}
	if args[0] == textio.Stdin && args[1] == textio.Stdin {
		return errors.New("only one of the texts can be read from the standard input")
	}
	texts := make([]string, 2)
	for i, path := range args {
		if texts[i], err = textio.Read(path, cfg.Input.Charset, cmd.InOrStdin()); err != nil {
			return err
		}
	}

	lines := linediff.Diff(texts[0], texts[1], m)
	c := colorConfig(cmd, cfg)
	if err := linediff.Format(cmd.OutOrStdout(), lines, c); err != nil {
		return err
	}
	summary := linediff.Summarize(lines)
	if diffStats || cfg.Output.Verbose {
		fmt.Fprintln(cmd.OutOrStdout(), c.Yellow().Sprint(summary))
	}
	ctxlog.FromContext(cmd.Context()).Debug("compared texts", "mode", m, "added", summary.Added, "removed", summary.Removed)
	if diffExitCode && !summary.Identical() {
		return ErrDifferencesFound
	}
	return nil
}
