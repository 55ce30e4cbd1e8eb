package movement

import "errors"

var (
	ErrMissingReference = errors.New("movement: missing required reference")
	ErrInvalidPolarity  = errors.New("movement: invalid polarity")
)
