package quadrature

import (
	"errors"
)

var (
	// ErrAllocationFailure is returned when the sample buffer cannot be acquired.
	ErrAllocationFailure = errors.New("quadrature: cannot allocate sample buffer")
	// ErrInvalidRange is returned when the sampling range or the number of intervals is degenerate.
	ErrInvalidRange = errors.New("quadrature: invalid range")
	// ErrInvalidInput is returned when an operation receives too few coefficients or samples.
	ErrInvalidInput = errors.New("quadrature: invalid input")
)
