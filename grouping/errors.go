package grouping

import (
	"errors"
	"fmt"
)

// ErrInvalidGroupSize is returned when the requested group size is not positive.
var ErrInvalidGroupSize = errors.New("group size must be positive")

// ConfigError reports an invalid grouping parameter. It aborts a run before any
// student is placed.
type ConfigError struct {
	GroupSize int
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid grouping configuration (group size %d): %v", e.GroupSize, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
