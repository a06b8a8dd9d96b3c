package quadrature

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
)

// Precision selects the floating-point type the pipeline computes with.
type Precision string

const (
	// Single computes in float32, as the reference program does.
	Single = Precision("float32")
	// Double computes in float64.
	Double = Precision("float64")
)

// ParametersLiteral is a literal representation of the pipeline parameters.
// It has public fields and is used to express unchecked user-defined
// parameters literally into Go programs or configuration files. The
// NewParametersFromLiteral function is used to generate the actual checked
// parameters from the literal representation.
type ParametersLiteral struct {
	Coefficients []float64 `json:"coefficients"`        // c[0] + c[1]*x + ...
	XMin         float64   `json:"xmin"`                // lower integration bound
	XMax         float64   `json:"xmax"`                // upper integration bound
	Intervals    int       `json:"intervals"`           // number of equally spaced intervals
	Precision    Precision `json:"precision,omitempty"` // Single if empty
}

// DefaultParametersLiteral integrates -10 + x + 2x^3 over [0, 5] with 1000
// intervals in single precision.
var DefaultParametersLiteral = ParametersLiteral{
	Coefficients: []float64{-10.0, 1.0, 0.0, 2.0},
	XMin:         0.0,
	XMax:         5.0,
	Intervals:    1000,
	Precision:    Single,
}

// Parameters represents a checked set of pipeline parameters. Its fields
// are private and immutable. See ParametersLiteral for user-specified
// parameters.
type Parameters struct {
	coefficients []float64
	xmin, xmax   float64
	intervals    int
	precision    Precision
}

// NewParametersFromLiteral instantiates a set of Parameters from a
// ParametersLiteral specification. It returns the empty parameters
// Parameters{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	if len(pl.Coefficients) == 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: no coefficients", ErrInvalidInput)
	}

	if pl.Intervals < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: intervals must be at least 1 but is %d", ErrInvalidRange, pl.Intervals)
	}

	if !isFinite(pl.XMin) || !isFinite(pl.XMax) {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: [%v, %v] is not finite", ErrInvalidRange, pl.XMin, pl.XMax)
	}

	precision := pl.Precision
	switch precision {
	case "":
		precision = Single
	case Single, Double:
	default:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: precision must be %q or %q but is %q", ErrInvalidInput, Single, Double, precision)
	}

	if precision == Single {
		for _, x := range []float64{pl.XMin, pl.XMax} {
			if math.Abs(x) > math.MaxFloat32 {
				return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: bound %v overflows float32", ErrInvalidRange, x)
			}
		}
	}

	coefficients := make([]float64, len(pl.Coefficients))
	copy(coefficients, pl.Coefficients)

	return Parameters{
		coefficients: coefficients,
		xmin:         pl.XMin,
		xmax:         pl.XMax,
		intervals:    pl.Intervals,
		precision:    precision,
	}, nil
}

// Coefficients returns a copy of the polynomial coefficients.
func (p Parameters) Coefficients() []float64 {
	c := make([]float64, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// XMin returns the lower integration bound.
func (p Parameters) XMin() float64 {
	return p.xmin
}

// XMax returns the upper integration bound.
func (p Parameters) XMax() float64 {
	return p.xmax
}

// Intervals returns the number of intervals.
func (p Parameters) Intervals() int {
	return p.intervals
}

// Precision returns the floating-point precision of the pipeline.
func (p Parameters) Precision() Precision {
	return p.precision
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Coefficients: p.Coefficients(),
		XMin:         p.xmin,
		XMax:         p.xmax,
		Intervals:    p.intervals,
		Precision:    p.precision,
	}
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
