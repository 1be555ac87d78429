package balance

import (
	"errors"
	"fmt"
)

// ErrUnresolvable is returned by resolvers that cannot produce a label for a path
var ErrUnresolvable = errors.New("label cannot be resolved")

// ResolutionError reports the path whose label could not be resolved
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve label for %s: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a negative cap passed at construction time
type ConfigurationError struct {
	Field string
	Value int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %d (must be >= 0, 0 means unlimited)", e.Field, e.Value)
}

// CheckLimit returns a ConfigurationError when value is negative
func CheckLimit(field string, value int) error {
	if value < 0 {
		return &ConfigurationError{Field: field, Value: value}
	}
	return nil
}
