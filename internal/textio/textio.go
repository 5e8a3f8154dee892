// Package textio reads command input and decodes legacy character sets.
package textio

import (
	"io"
	"os"
	"strings"

	charset "github.com/mattn/go-encoding"
	"golang.org/x/text/transform"

	"github.com/scenarigo/textkit/errors"
)

// Stdin is the path which means the standard input.
const Stdin = "-"

// Read reads the file at path, or r when path is empty or "-", and decodes
// it from the named charset to UTF-8. An empty charset means UTF-8.
func Read(path, cs string, r io.Reader) (string, error) {
	if path != "" && path != Stdin {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()
		r = f
	}
	r, err := Decoder(r, cs)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to read input")
	}
	return string(b), nil
}

// Decoder wraps r so that it yields UTF-8 text.
func Decoder(r io.Reader, cs string) (io.Reader, error) {
	if isUTF8(cs) {
		return r, nil
	}
	enc := charset.GetEncoding(cs)
	if enc == nil {
		return nil, errors.Errorf("unsupported charset %q", cs)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func isUTF8(cs string) bool {
	switch strings.ToLower(strings.TrimSpace(cs)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
