package namegen

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ContextWindow selects which part of a long name is used as the lookup
// context during generation.
type ContextWindow string

const (
	// WindowSkipHead drops the first MaxChunkSize runes of a name longer than
	// MaxChunkSize and looks up the remainder. Long names therefore match on
	// their tail past the first chunk, which is the historical behavior.
	WindowSkipHead ContextWindow = "skip-head"

	// WindowTail looks up the last MaxChunkSize runes of the name.
	WindowTail ContextWindow = "tail"
)

// UnmarshalText parses a window name; the empty string selects WindowSkipHead.
func (w *ContextWindow) UnmarshalText(text []byte) error {
	switch v := ContextWindow(text); v {
	case "":
		*w = WindowSkipHead
	case WindowSkipHead, WindowTail:
		*w = v
	default:
		return &ConfigError{Field: "context window", Value: string(text), Reason: fmt.Sprintf("want %q or %q", WindowSkipHead, WindowTail)}
	}
	return nil
}

// Config holds training and generation parameters.
type Config struct {
	// MaxChunkSize bounds both context keys and continuations, in runes.
	// Default: 8.
	MaxChunkSize int `env:"MAX_CHUNK_SIZE"`

	// MinLength is the shortest name the generator accepts as finished.
	// Default: 3.
	MinLength int `env:"MIN_LENGTH"`

	// Window selects the lookup context for long names. Default: skip-head.
	Window ContextWindow `env:"CONTEXT_WINDOW"`
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize: 8,
		MinLength:    3,
		Window:       WindowSkipHead,
	}
}

// ConfigFromEnv builds a Config from NAMEGEN_* environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "NAMEGEN_"}); err != nil {
		return Config{}, fmt.Errorf("parse namegen config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validateMaxChunkSize(c.MaxChunkSize); err != nil {
		return err
	}
	if c.MinLength < 0 {
		return &ConfigError{Field: "min length", Value: c.MinLength, Reason: "must not be negative"}
	}
	switch c.Window {
	case WindowSkipHead, WindowTail:
	default:
		return &ConfigError{Field: "context window", Value: c.Window, Reason: fmt.Sprintf("want %q or %q", WindowSkipHead, WindowTail)}
	}
	return nil
}

// GenerateOptions returns generation options for c starting from start.
func (c Config) GenerateOptions(start string) GenerateOptions {
	return GenerateOptions{
		Start:        start,
		MinLength:    c.MinLength,
		MaxChunkSize: c.MaxChunkSize,
		Window:       c.Window,
	}
}
