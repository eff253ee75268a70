package drawing

import "errors"

var (
	ErrInvalidOperation = errors.New("invalid-operation")
	ErrOutOfBounds      = errors.New("out-of-bounds")
)
