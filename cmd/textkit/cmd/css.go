package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/cssfmt"
	"github.com/scenarigo/textkit/internal/ctxlog"
)

var (
	cssMinify bool
	cssIndent int
)

func init() {
	cssCmd.Flags().BoolVar(&cssMinify, "minify", false, "minify instead of beautify")
	cssCmd.Flags().IntVarP(&cssIndent, "indent", "i", 0, "number of spaces per indentation level (default: 2)")
	rootCmd.AddCommand(cssCmd)
}

var cssCmd = &cobra.Command{
	Use:   "css [file]",
	Short: "beautify or minify CSS",
	Long: `Beautifies or minifies CSS.

The input is rewritten as is; invalid CSS is not rejected.
If no file is given, the standard input is read.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          css,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func css(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mode, err := cssfmt.ParseMode(cfg.CSS.Mode)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("minify") {
		mode = cssfmt.ModeBeautify
		if cssMinify {
			mode = cssfmt.ModeMinify
		}
	}
	opts := cssfmt.Options{Mode: mode, Indent: cfg.CSS.Indent}
	if cmd.Flags().Changed("indent") {
		opts.Indent = cssIndent
	}
	src, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}
	out, err := cssfmt.Format(src, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	ctxlog.FromContext(cmd.Context()).Debug("formatted CSS", "mode", mode, "before", len(src), "after", len(out))
	return nil
}
