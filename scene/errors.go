package scene

import "errors"

// Scene configuration errors
var (
	ErrInvalidVector  = errors.New("vector must have 3 components")
	ErrInvalidShape   = errors.New("invalid shape")
	ErrDuplicateBody  = errors.New("duplicate body id")
	ErrUnknownTarget  = errors.New("unknown mover target")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidAction  = errors.New("invalid movement action")
	ErrInvalidLogging = errors.New("invalid log configuration")
)
