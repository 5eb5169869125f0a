package namegen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("invalid namegen configuration")

// ConfigError reports a configuration value that cannot be used for training
// or generation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func validateMaxChunkSize(n int) error {
	if n < 1 {
		return &ConfigError{Field: "max chunk size", Value: n, Reason: "must be at least 1"}
	}
	return nil
}
