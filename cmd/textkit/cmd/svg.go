package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/internal/batch"
	"github.com/scenarigo/textkit/internal/ctxlog"
	"github.com/scenarigo/textkit/internal/textio"
	"github.com/scenarigo/textkit/svgmin"
)

var (
	svgWrite    bool
	svgSkip     []string
	svgParallel int
	svgReport   bool
)

func init() {
	svgCmd.Flags().BoolVarP(&svgWrite, "write", "w", false, "write the result to the source files instead of the standard output")
	svgCmd.Flags().StringSliceVar(&svgSkip, "skip", nil, fmt.Sprintf("skip the named steps (%s)", strings.Join(stepNames(), ", ")))
	svgCmd.Flags().IntVarP(&svgParallel, "parallel", "", 0, "specify the number of files processed in parallel (the default value is the number of logical CPUs)")
	svgCmd.Flags().BoolVar(&svgReport, "report", false, "print the size reduction of each file to the standard error")
	rootCmd.AddCommand(svgCmd)
}

var svgCmd = &cobra.Command{
	Use:   "svg [file...]",
	Short: "minify SVG",
	Long: `Minifies SVG markup.

The markup is rewritten textually; malformed SVG is not detected.
If no file is given, the standard input is read.`,
	RunE:          svg,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func stepNames() []string {
	var names []string
	for _, s := range svgmin.Steps() {
		names = append(names, s.Name)
	}
	return names
}

func svg(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	skip := cfg.SVG.Skip
	if cmd.Flags().Changed("skip") {
		skip = svgSkip
	}
	parallel := cfg.SVG.Parallel
	if svgParallel > 0 {
		parallel = svgParallel
	}
	if len(args) == 0 {
		if svgWrite {
			return errors.New("--write requires file arguments")
		}
		args = []string{textio.Stdin}
	}
	if n := slices.Index(args, textio.Stdin); n >= 0 {
		if svgWrite {
			return errors.New("--write cannot be used with the standard input")
		}
		if slices.Contains(args[n+1:], textio.Stdin) {
			return errors.New("the standard input can be read only once")
		}
	}

	logger := ctxlog.FromContext(cmd.Context())
	results := make([]svgmin.Result, len(args))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = batch.Run(ctx, len(args), parallel, func(_ context.Context, i int) error {
		src, err := textio.Read(args[i], cfg.Input.Charset, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if strings.TrimSpace(src) == "" {
			return errors.Wrapf(errors.ErrEmptyInput, "%s", args[i])
		}
		results[i] = svgmin.Minify(src, svgmin.WithSkip(skip...))
		if svgWrite {
			if err := os.WriteFile(args[i], []byte(results[i].Output), 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", args[i])
			}
		}
		logger.Debug("minified SVG", "file", args[i], "before", results[i].OriginalSize, "after", results[i].MinifiedSize)
		return nil
	})
	if err != nil {
		return err
	}

	c := colorConfig(cmd, cfg)
	for i, r := range results {
		if !svgWrite {
			fmt.Fprintln(cmd.OutOrStdout(), r.Output)
		}
		if svgReport || svgWrite {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d -> %d bytes (%.1f%% smaller)\n", c.Cyan().Sprint(args[i]), r.OriginalSize, r.MinifiedSize, r.Savings())
		}
	}
	return nil
}
