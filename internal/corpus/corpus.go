// Package corpus loads training examples from text: a blob split on a single
// separator rune, one name per entry.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
)

// ErrNoPath is returned when a file-backed corpus has no path configured.
var ErrNoPath = errors.New("corpus: path is required")

// SeparatorError reports a separator that is not exactly one rune.
type SeparatorError struct {
	Value string
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("corpus: separator %q must be a single character", e.Value)
}

// Config locates and splits a corpus file.
type Config struct {
	// Path is the corpus file.
	Path string `env:"CORPUS"`

	// Separator splits the file into examples. It accepts a literal character
	// or one of the escapes \n, \t, \r, \\. Default: newline.
	Separator string `env:"SEPARATOR"`
}

// DefaultConfig returns a Config splitting on newlines.
func DefaultConfig() Config {
	return Config{Separator: `\n`}
}

// ConfigFromEnv reads NAMEGEN_CORPUS and NAMEGEN_SEPARATOR over the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "NAMEGEN_"}); err != nil {
		return Config{}, fmt.Errorf("parse corpus config: %w", err)
	}
	return cfg, nil
}

// ParseSeparator converts a configured separator into a rune.
func ParseSeparator(s string) (rune, error) {
	switch s {
	case `\n`:
		return '\n', nil
	case `\t`:
		return '\t', nil
	case `\r`:
		return '\r', nil
	case `\\`:
		return '\\', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, &SeparatorError{Value: s}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Split cuts raw on sep. Entries are trimmed of surrounding whitespace and
// blank entries are dropped, so trailing separators and CRLF line endings
// don't produce empty or carriage-return examples.
func Split(raw string, sep rune) []string {
	parts := strings.Split(raw, string(sep))
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Read reads r to the end and splits it on sep.
func Read(r io.Reader, sep rune) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Split(string(raw), sep), nil
}

// ReadFile reads and splits the file at path.
func ReadFile(path string, sep rune) ([]string, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Read(f, sep)
}

// Source returns a loader for cfg, suitable for namegen.Model.TrainFrom. The
// separator is validated eagerly; the file is read on every call so a
// retrain picks up edits.
func (c Config) Source() (func() ([]string, error), error) {
	if c.Path == "" {
		return nil, ErrNoPath
	}
	sep, err := ParseSeparator(c.Separator)
	if err != nil {
		return nil, err
	}
	path := c.Path
	return func() ([]string, error) {
		return ReadFile(path, sep)
	}, nil
}
