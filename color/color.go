// Package color provides colored output settings.
package color

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

const (
	envTextkitColor = "TEXTKIT_COLOR"
)

type Color = color.Color

// Config represents color configuration for a command.
type Config struct {
	enabled *bool // nil means use default behavior
	red     *Color
	green   *Color
	yellow  *Color
	cyan    *Color
	colors  []*Color
}

// New creates a new color configuration initialized from environment variables.
func New() *Config {
	c := &Config{
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
	c.colors = []*Color{c.red, c.green, c.yellow, c.cyan}

	if envColor := os.Getenv(envTextkitColor); envColor != "" {
		if result, err := strconv.ParseBool(envColor); err == nil {
			c.enabled = &result
			c.updateColorInstances()
		}
	}
	return c
}

func (c *Config) updateColorInstances() {
	if c.enabled == nil {
		return
	}
	for _, ci := range c.colors {
		if *c.enabled {
			ci.EnableColor()
		} else {
			ci.DisableColor()
		}
	}
}

// IsEnabled returns whether color output is enabled.
func (c *Config) IsEnabled() bool {
	if c != nil && c.enabled != nil {
		return *c.enabled
	}
	return !color.NoColor
}

// SetEnabled sets the enabled state and updates color instances.
func (c *Config) SetEnabled(enabled bool) {
	c.enabled = &enabled
	c.updateColorInstances()
}

func (c *Config) Red() *Color    { return c.red }
func (c *Config) Green() *Color  { return c.green }
func (c *Config) Yellow() *Color { return c.yellow }
func (c *Config) Cyan() *Color   { return c.cyan }

// Highlight colors YAML or JSON text. It returns src as is when color is disabled.
func (c *Config) Highlight(src string) string {
	if !c.IsEnabled() || src == "" {
		return src
	}
	tokens := lexer.Tokenize(src)
	var p printer.Printer
	p.Bool = property(color.FgHiMagenta)
	p.Number = property(color.FgHiMagenta)
	p.MapKey = property(color.FgHiCyan)
	p.Anchor = property(color.FgHiYellow)
	p.Alias = property(color.FgHiYellow)
	p.String = property(color.FgHiGreen)
	p.Comment = property(color.FgHiBlack)
	return p.PrintTokens(tokens)
}

func property(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: format(attr),
			Suffix: format(color.Reset),
		}
	}
}

const escape = "\x1b"

func format(attr color.Attribute) string {
	return fmt.Sprintf("%s[%dm", escape, attr)
}
