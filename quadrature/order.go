package quadrature

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/polyquad/utils/bignum"
)

// Order is the observed order of convergence of each rule.
type Order struct {
	Rectangular float64 `json:"rectangular"`
	Trapezoidal float64 `json:"trapezoidal"`
}

// MarshalJSON encodes the order of a rule that has none as null.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rectangular *float64 `json:"rectangular"`
		Trapezoidal *float64 `json:"trapezoidal"`
	}{finite(o.Rectangular), finite(o.Trapezoidal)})
}

func finite(x float64) *float64 {
	if !isFinite(x) {
		return nil
	}
	return &x
}

// ObservedOrder runs the pipeline with Intervals and 2*Intervals intervals
// and returns log2(e(n)/e(2n)) for each rule, where e is the absolute
// deviation from the exact integral. The left rectangular sum is used for
// the rectangular rule.
//
// A rule that is exact on both grids has no observable order and NaN is
// returned for it. Values are only meaningful while the discretization error
// dominates the floating-point round-off.
func ObservedOrder(params Parameters) (o Order, err error) {

	if params.intervals > math.MaxInt/2-1 {
		return o, fmt.Errorf("cannot ObservedOrder: %w: %d intervals cannot be doubled", ErrAllocationFailure, params.intervals)
	}

	var coarse, fine *Report
	if coarse, err = Evaluate(params); err != nil {
		return o, fmt.Errorf("cannot ObservedOrder: %w", err)
	}

	refined := params
	refined.intervals *= 2

	if fine, err = Evaluate(refined); err != nil {
		return o, fmt.Errorf("cannot ObservedOrder: %w", err)
	}

	o.Rectangular = order(coarse.RectangularError.Left, fine.RectangularError.Left)
	o.Trapezoidal = order(coarse.TrapezoidalError, fine.TrapezoidalError)

	return
}

func order(coarse, fine float64) float64 {

	coarse, fine = math.Abs(coarse), math.Abs(fine)

	if coarse == 0 || fine == 0 || !isFinite(coarse) || !isFinite(fine) {
		return math.NaN()
	}

	r, _ := bignum.Log2Ratio(new(big.Float).SetFloat64(coarse), new(big.Float).SetFloat64(fine)).Float64()
	return r
}
