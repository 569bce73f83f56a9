package impact

import "errors"

// Precondition violations, raised as panics wrapping these values
var (
	ErrInvalidBody = errors.New("invalid collision body")
	ErrInvalidRule = errors.New("invalid collision rule")
	ErrNilListener = errors.New("listener is nil")
)
