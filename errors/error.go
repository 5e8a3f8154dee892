// Package errors provides the error values and helpers shared by the textkit transforms.
package errors

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is returned when the input cannot be parsed.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmptyInput is returned when there is nothing to process.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInvalidIndent is returned for an unsupported indent width.
	ErrInvalidIndent = errors.New("invalid indent width")
)

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

func New(message string) error {
	return errors.New(message)
}

func Wrap(err error, message string) error {
	if e, ok := err.(*LineError); ok {
		e.Wrapf("%s", message)
		return e
	}
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...interface{}) error {
	if e, ok := err.(*LineError); ok {
		e.Wrapf(format, args...)
		return e
	}
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// WithLine attaches a source position to err.
func WithLine(err error, src string, line int) error {
	if e, ok := err.(*LineError); ok {
		e.Line = line
		e.Source = src
		return e
	}
	return &LineError{
		Line:   line,
		Source: src,
		Err:    err,
	}
}

// LineError is an error located at a line of the input text.
type LineError struct {
	Line   int
	Source string
	Err    error
}

func (e *LineError) Wrapf(message string, args ...interface{}) {
	e.Err = errors.Wrapf(e.Err, message, args...)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// snippet renders the lines around the error position.
func (e *LineError) snippet() string {
	if e.Source == "" || e.Line <= 0 {
		return ""
	}
	tk := tokenAt(lexer.Tokenize(e.Source), e.Line)
	if tk == nil {
		return ""
	}
	var p printer.Printer
	return p.PrintErrorToken(tk, false)
}

func tokenAt(tokens token.Tokens, line int) *token.Token {
	for _, tk := range tokens {
		if tk.Position != nil && tk.Position.Line == line {
			return tk
		}
	}
	return nil
}

func (e *LineError) Error() string {
	if s := e.snippet(); s != "" {
		return fmt.Sprintf("line %d: %s\n%s", e.Line, e.Err.Error(), s)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
	}
	return e.Err.Error()
}

// Errors combines errs into a single error. It returns nil if there are no errors.
func Errors(errs ...error) error {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = format
	return merr
}

func format(es []error) string {
	if len(es) == 1 {
		return fmt.Sprintf("1 error occurred:\n%s\n", strings.TrimLeft(es[0].Error(), "\t"))
	}
	points := make([]string, len(es))
	for i, err := range es {
		points[i] = fmt.Sprintf("* %s", strings.TrimLeft(err.Error(), "\t"))
	}
	return fmt.Sprintf("%d errors occurred:\n%s\n", len(es), strings.Join(points, "\n"))
}
