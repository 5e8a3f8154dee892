package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/errors"
	"github.com/scenarigo/textkit/internal/ctxlog"
	"github.com/scenarigo/textkit/schema"
	"github.com/scenarigo/textkit/value"
	"github.com/scenarigo/textkit/yamlconv"
)

var (
	yamlIndent int
	yamlMode   string
	yamlQuery  string
)

func init() {
	for _, c := range []*cobra.Command{yaml2jsonCmd, json2yamlCmd} {
		c.Flags().IntVarP(&yamlIndent, "indent", "i", 0, "number of spaces per indentation level (default: 2)")
		c.Flags().StringVarP(&yamlMode, "mode", "m", "", "YAML dialect, 'lite' or 'standard' (default: lite)")
		c.Flags().StringVarP(&yamlQuery, "query", "q", "", "output only the value at the query path (e.g. '.items[0].name')")
		rootCmd.AddCommand(c)
	}
}

var yaml2jsonCmd = &cobra.Command{
	Use:   "yaml2json [file]",
	Short: "convert YAML to JSON",
	Long: `Converts YAML to indented JSON.

The default 'lite' mode understands indented key/value lines and JSON literals
for lists and objects. Use --mode standard for full YAML.
If no file is given, the standard input is read.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          yaml2json,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var json2yamlCmd = &cobra.Command{
	Use:   "json2yaml [file]",
	Short: "convert JSON to YAML",
	Long: `Converts JSON to YAML.

In 'lite' mode strings are written without quotes, so the output may not
parse back to the same value. Use --mode standard for quoted output.
If no file is given, the standard input is read.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          json2yaml,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func yamlOptions(cmd *cobra.Command, cfg *schema.Config) (yamlconv.Options, error) {
	opts := yamlconv.Options{Indent: cfg.YAML.Indent}
	if cmd.Flags().Changed("indent") {
		opts.Indent = yamlIndent
	}
	mode := cfg.YAML.Mode
	if cmd.Flags().Changed("mode") {
		mode = yamlMode
	}
	m, err := yamlconv.ParseMode(mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = m
	return opts, nil
}

func queryValue(v value.Value) (value.Value, error) {
	if yamlQuery == "" {
		return v, nil
	}
	return value.Query(v, yamlQuery)
}

func yaml2json(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := yamlOptions(cmd, cfg)
	if err != nil {
		return err
	}
	src, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}
	v, err := yamlconv.Decode(src, opts.Mode)
	if err != nil {
		return err
	}
	if v, err = queryValue(v); err != nil {
		return err
	}
	indent := opts.Indent
	if indent == 0 {
		indent = yamlconv.DefaultIndent
	}
	out := string(value.EncodeJSON(v, indent))
	fmt.Fprintln(cmd.OutOrStdout(), colorConfig(cmd, cfg).Highlight(out))
	ctxlog.FromContext(cmd.Context()).Debug("converted YAML to JSON",
		"mode", opts.Mode, "bytes", len(out), "elapsed", time.Since(start))
	return nil
}

func json2yaml(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := yamlOptions(cmd, cfg)
	if err != nil {
		return err
	}
	src, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(src) == "" {
		return errors.ErrEmptyInput
	}
	v, err := value.DecodeJSON([]byte(src))
	if err != nil {
		return err
	}
	if v, err = queryValue(v); err != nil {
		return err
	}
	out, err := yamlconv.Encode(v, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), colorConfig(cmd, cfg).Highlight(out))
	ctxlog.FromContext(cmd.Context()).Debug("converted JSON to YAML",
		"mode", opts.Mode, "bytes", len(out), "elapsed", time.Since(start))
	return nil
}
