package quadrature

import (
	"fmt"
	"math"
)

// Grid is the sampled function: the values of a polynomial at
// xmin, xmin+gap, ..., xmin+intervals*gap with gap = (xmax-xmin)/intervals.
//
// The x-coordinates are accumulated by repeated addition of gap, hence the
// last one may drift from xmax by a few ulps per interval.
type Grid[T Float] struct {
	xmin, xmax T
	gap        T
	intervals  int
	values     []T
}

// NewGrid samples p over [xmin, xmax] split in intervals equal intervals.
// It returns ErrInvalidRange if intervals < 1 or if a bound is not finite,
// and ErrAllocationFailure if the intervals+1 samples cannot be allocated.
//
// ErrAllocationFailure only covers lengths the runtime refuses outright
// (overflowing or exceeding the address space). Running out of memory on a
// representable length is a fatal runtime error that no caller can recover
// from; bound intervals accordingly.
func NewGrid[T Float](p Polynomial[T], xmin, xmax T, intervals int) (g *Grid[T], err error) {

	if intervals < 1 {
		return nil, fmt.Errorf("cannot NewGrid: %w: intervals must be at least 1 but is %d", ErrInvalidRange, intervals)
	}

	if !isFinite(xmin) || !isFinite(xmax) {
		return nil, fmt.Errorf("cannot NewGrid: %w: [%v, %v] is not finite", ErrInvalidRange, xmin, xmax)
	}

	if len(p.coeffs) == 0 {
		return nil, fmt.Errorf("cannot NewGrid: %w: polynomial has no coefficients", ErrInvalidInput)
	}

	var values []T
	if values, err = allocate[T](intervals); err != nil {
		return nil, fmt.Errorf("cannot NewGrid: %w", err)
	}

	gap := (xmax - xmin) / T(intervals)

	in := xmin
	for k := range values {
		values[k] = p.Evaluate(in)
		in += gap
	}

	return &Grid[T]{
		xmin:      xmin,
		xmax:      xmax,
		gap:       gap,
		intervals: intervals,
		values:    values,
	}, nil
}

// allocate returns a zeroed buffer for intervals+1 samples. A length the
// runtime rejects ("makeslice: len out of range") is reported as
// ErrAllocationFailure; an out-of-memory condition is fatal and is not.
func allocate[T Float](intervals int) (values []T, err error) {

	if intervals < 0 || intervals == math.MaxInt {
		return nil, fmt.Errorf("%w: %d intervals", ErrAllocationFailure, intervals)
	}

	defer func() {
		if r := recover(); r != nil {
			values, err = nil, fmt.Errorf("%w: %d samples: %v", ErrAllocationFailure, intervals+1, r)
		}
	}()

	return make([]T, intervals+1), nil
}

// Values returns the samples. The slice is shared with the grid and must
// not be modified.
func (g *Grid[T]) Values() []T {
	return g.values
}

// Len returns the number of samples, intervals+1.
func (g *Grid[T]) Len() int {
	return len(g.values)
}

// Gap returns the spacing between two consecutive samples.
func (g *Grid[T]) Gap() T {
	return g.gap
}

// XMin returns the lower bound of the sampling range.
func (g *Grid[T]) XMin() T {
	return g.xmin
}

// XMax returns the upper bound of the sampling range.
func (g *Grid[T]) XMax() T {
	return g.xmax
}

// Intervals returns the number of intervals.
func (g *Grid[T]) Intervals() int {
	return g.intervals
}

// Points returns the x-coordinates of the samples, accumulated the same
// way NewGrid does.
func (g *Grid[T]) Points() (x []T) {
	x = make([]T, len(g.values))
	in := g.xmin
	for k := range x {
		x[k] = in
		in += g.gap
	}
	return
}

// Monotonic reports whether the samples are non-decreasing or
// non-increasing. Only then do the two rectangular sums bracket the
// trapezoidal one.
func (g *Grid[T]) Monotonic() bool {
	up, down := true, true
	for i := 1; i < len(g.values); i++ {
		up = up && g.values[i] >= g.values[i-1]
		down = down && g.values[i] <= g.values[i-1]
	}
	return up || down
}

// Equal reports whether g and other hold bit-identical samples over the same range.
func (g *Grid[T]) Equal(other *Grid[T]) bool {

	if g == nil || other == nil {
		return g == other
	}

	if g.intervals != other.intervals || len(g.values) != len(other.values) {
		return false
	}

	if !sameBits(g.xmin, other.xmin) || !sameBits(g.xmax, other.xmax) || !sameBits(g.gap, other.gap) {
		return false
	}

	for i := range g.values {
		if !sameBits(g.values[i], other.values[i]) {
			return false
		}
	}

	return true
}

func sameBits[T Float](a, b T) bool {
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}
