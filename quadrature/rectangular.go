package quadrature

import (
	"fmt"
)

// Bounds is the pair of approximations produced by the rectangular rule.
//
// Left uses the first point of each interval as height and Right the second
// one. They bracket the integral only when the sampled function is monotonic
// on every interval; otherwise they are two unrelated approximations.
type Bounds[T Float] struct {
	Left  T `json:"left"`
	Right T `json:"right"`
}

// Lower returns min(Left, Right).
func (b Bounds[T]) Lower() T {
	if b.Right < b.Left {
		return b.Right
	}
	return b.Left
}

// Upper returns max(Left, Right).
func (b Bounds[T]) Upper() T {
	if b.Right > b.Left {
		return b.Right
	}
	return b.Left
}

// Contains reports whether v lies in [Lower(), Upper()].
func (b Bounds[T]) Contains(v T) bool {
	return b.Lower() <= v && v <= b.Upper()
}

// Rectangular integrates the samples with the left and right rectangular rules:
//
//	Left  = stepsize * (values[0] + ... + values[size-2])
//	Right = stepsize * (values[1] + ... + values[size-1])
//
// Each term is scaled by stepsize before being accumulated. It returns
// ErrInvalidInput if there are fewer than 2 samples.
func Rectangular[T Float](values []T, stepsize T) (b Bounds[T], err error) {

	size := len(values)

	if size < 2 {
		return b, fmt.Errorf("cannot Rectangular: %w: at least 2 samples are required but got %d", ErrInvalidInput, size)
	}

	b.Left += T(stepsize * values[0])

	for i := 1; i < size-1; i++ {
		term := T(stepsize * values[i])
		b.Left += term
		b.Right += term
	}

	b.Right += T(stepsize * values[size-1])

	return
}
