package quadrature

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/polyquad/utils/bignum"
)

// ReferencePrecision is the number of bits of precision of the exact integral.
const ReferencePrecision = uint(256)

// Summary holds descriptive statistics of the samples of a grid.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Summarize computes the Summary of values.
func Summarize[T Float](values []T) (s Summary, err error) {

	data := make(stats.Float64Data, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.Median, err = stats.Median(data); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	return
}

// Report gathers the results of a pipeline run converted to float64, along
// with their deviation from the exact integral of the polynomial.
//
// The rectangular pair brackets the integral only if Monotonic is true.
type Report struct {
	Parameters       ParametersLiteral `json:"parameters"`
	Rectangular      Bounds[float64]   `json:"rectangular"`
	Trapezoidal      float64           `json:"trapezoidal"`
	Exact            float64           `json:"exact"`
	RectangularError Bounds[float64]   `json:"rectangular_error"`
	TrapezoidalError float64           `json:"trapezoidal_error"`
	Monotonic        bool              `json:"monotonic"`
	Summary          Summary           `json:"summary"`
	Digest           string            `json:"digest"`
}

// Evaluate runs the pipeline in the precision of params and builds its Report.
func Evaluate(params Parameters) (*Report, error) {
	switch params.Precision() {
	case Double:
		return evaluate[float64](params)
	default:
		return evaluate[float32](params)
	}
}

func evaluate[T Float](params Parameters) (rep *Report, err error) {

	var res *Result[T]
	if res, err = RunParameters[T](params); err != nil {
		return nil, fmt.Errorf("cannot Evaluate: %w", err)
	}

	rep = &Report{
		Parameters: params.ParametersLiteral(),
		Rectangular: Bounds[float64]{
			Left:  float64(res.Rectangular.Left),
			Right: float64(res.Rectangular.Right),
		},
		Trapezoidal: float64(res.Trapezoidal),
		Monotonic:   res.Grid.Monotonic(),
		Digest:      res.Grid.DigestHex(),
	}

	if rep.Summary, err = Summarize(res.Grid.Values()); err != nil {
		return nil, fmt.Errorf("cannot Evaluate: %w", err)
	}

	exact := ExactIntegral(params)

	rep.Exact, _ = exact.Float64()
	rep.RectangularError.Left = deviation(rep.Rectangular.Left, exact)
	rep.RectangularError.Right = deviation(rep.Rectangular.Right, exact)
	rep.TrapezoidalError = deviation(rep.Trapezoidal, exact)

	return
}

// ExactIntegral returns the integral of the polynomial of params over
// [XMin, XMax] computed with ReferencePrecision bits.
func ExactIntegral(params Parameters) *big.Float {
	prec := ReferencePrecision
	return bignum.MonomialIntegral(
		bignum.NewFloatSlice(params.coefficients, prec),
		bignum.NewFloat(params.xmin, prec),
		bignum.NewFloat(params.xmax, prec))
}

// deviation returns approx - exact rounded to float64.
func deviation(approx float64, exact *big.Float) float64 {
	d := bignum.NewFloat(approx, exact.Prec())
	d.Sub(d, exact)
	f, _ := d.Float64()
	return f
}
