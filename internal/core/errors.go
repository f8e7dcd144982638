package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrConfiguration is matched by every ConfigError.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInvalidInput reports malformed setup input that the caller may re-prompt for.
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError describes a run configuration that cannot be executed.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) hold for any ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }
