package quadrature

import (
	"fmt"
)

// Trapezoidal integrates the samples with the trapezoidal rule:
//
//	integ = sum_i (stepsize/2) * (values[i+1] + values[i])
//
// It returns ErrInvalidInput if there are fewer than 2 samples.
func Trapezoidal[T Float](values []T, stepsize T) (integ T, err error) {

	size := len(values)

	if size < 2 {
		return 0, fmt.Errorf("cannot Trapezoidal: %w: at least 2 samples are required but got %d", ErrInvalidInput, size)
	}

	h := stepsize / 2

	for i := 0; i < size-1; i++ {
		integ += T(h * (values[i+1] + values[i]))
	}

	return
}
