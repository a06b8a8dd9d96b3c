package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonomial(t *testing.T) {

	prec := uint(256)
	poly := NewFloatSlice([]float64{-10, 1, 0, 2}, prec)

	t.Run("Eval", func(t *testing.T) {
		for x, want := range map[float64]float64{0: -10, 1: -7, 2: 8, -1: -13} {
			y, _ := MonomialEval(NewFloat(x, prec), poly).Float64()
			require.Equal(t, want, y, "x=%v", x)
		}
	})

	t.Run("Eval/Empty", func(t *testing.T) {
		require.Equal(t, 0, MonomialEval(NewFloat(3, prec), nil).Sign())
	})

	t.Run("Antiderivative", func(t *testing.T) {
		anti := MonomialAntiderivative(poly, prec)
		require.Len(t, anti, 5)
		want := []float64{0, -10, 0.5, 0, 0.5}
		for i := range want {
			f, _ := anti[i].Float64()
			require.Equal(t, want[i], f)
		}
	})

	t.Run("Integral", func(t *testing.T) {
		integ, _ := MonomialIntegral(poly, NewFloat(0, prec), NewFloat(5, prec)).Float64()
		require.Equal(t, 275.0, integ)

		// Reversed bounds flip the sign.
		integ, _ = MonomialIntegral(poly, NewFloat(5, prec), NewFloat(0, prec)).Float64()
		require.Equal(t, -275.0, integ)
	})
}
