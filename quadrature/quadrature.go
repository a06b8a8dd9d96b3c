// Package quadrature evaluates a polynomial over equally spaced sample points
// and integrates the sampled function with the rectangular and the
// trapezoidal rules.
//
// All components are generic over the floating-point type. The rounding
// order of every loop is fixed: a float32 pipeline reproduces a single
// precision reference implementation bit for bit, and two runs on identical
// inputs always produce identical outputs.
package quadrature

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point types the pipeline can operate on.
type Float interface {
	constraints.Float
}

func isFinite[T Float](x T) bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}
