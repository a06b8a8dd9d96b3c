package quadrature

import (
	"fmt"
)

// Result holds the outputs of one pipeline run. The grid buffer is shared by
// both integrators and released with the Result.
type Result[T Float] struct {
	Grid        *Grid[T]
	Rectangular Bounds[T]
	Trapezoidal T
}

// Run samples p over [xmin, xmax] with the given number of intervals and
// integrates the samples with the rectangular and trapezoidal rules, using
// the grid gap as stepsize.
func Run[T Float](p Polynomial[T], xmin, xmax T, intervals int) (res *Result[T], err error) {

	res = new(Result[T])

	if res.Grid, err = NewGrid(p, xmin, xmax, intervals); err != nil {
		return nil, fmt.Errorf("cannot Run: %w", err)
	}

	values, gap := res.Grid.Values(), res.Grid.Gap()

	if res.Rectangular, err = Rectangular(values, gap); err != nil {
		return nil, fmt.Errorf("cannot Run: %w", err)
	}

	if res.Trapezoidal, err = Trapezoidal(values, gap); err != nil {
		return nil, fmt.Errorf("cannot Run: %w", err)
	}

	return
}

// RunParameters converts params to T and calls Run.
func RunParameters[T Float](params Parameters) (res *Result[T], err error) {

	coeffs := make([]T, len(params.coefficients))
	for i, c := range params.coefficients {
		coeffs[i] = T(c)
	}

	var p Polynomial[T]
	if p, err = NewPolynomial(coeffs); err != nil {
		return nil, fmt.Errorf("cannot RunParameters: %w", err)
	}

	return Run(p, T(params.xmin), T(params.xmax), params.intervals)
}
