package window

import "errors"

var (
	ErrInvalidLength  = errors.New("window: length must be positive")
	ErrEmpty          = errors.New("window: no coefficients")
	ErrZeroGain       = errors.New("window: coherent gain is zero")
	ErrLengthMismatch = errors.New("window: sample and coefficient counts differ")
)
