package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/cmd/textkit/cmd/config"
	"github.com/scenarigo/textkit/color"
	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/internal/ctxlog"
	"github.com/scenarigo/textkit/internal/textio"
	"github.com/scenarigo/textkit/schema"
)

const appName = "textkit"

var (
	logLevel string
	charset  string
	colored  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "c", "", `specify the configuration file path (default: textkit.yaml, use '-' for stdin)`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", `set the logging level ('debug', 'info', 'warn' or 'error')`)
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "", `specify the character set of the input (default: utf-8)`)
	rootCmd.PersistentFlags().BoolVar(&colored, "color", false, "force colored output")
}

var rootCmd = &cobra.Command{
	Use:               appName,
	Short:             fmt.Sprintf("%s is a collection of text conversion tools.", appName),
	PersistentPreRunE: setupLogger,
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := ctxlog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, ctxlog.New(cmd.ErrOrStderr(), level)))
	return nil
}

func loadConfig(cmd *cobra.Command) (*schema.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if f := cmd.Flags().Lookup("charset"); f != nil && f.Changed {
		cfg.Input.Charset = charset
	}
	ctxlog.FromContext(cmd.Context()).Debug("config loaded", "path", config.ConfigPath, "root", cfg.Root)
	return cfg, nil
}

func colorConfig(cmd *cobra.Command, cfg *schema.Config) *color.Config {
	c := color.New()
	if cfg.Output.Colored != nil {
		c.SetEnabled(*cfg.Output.Colored)
	}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		c.SetEnabled(colored)
	}
	return c
}

// readInput reads the first argument, or the standard input if there is none.
func readInput(cmd *cobra.Command, cfg *schema.Config, args []string) (string, error) {
	path := textio.Stdin
	if len(args) > 0 {
		path = args[0]
	}
	return textio.Read(path, cfg.Input.Charset, cmd.InOrStdin())
}
