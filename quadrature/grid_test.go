package quadrature

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyquad/utils/buffer"
	"github.com/tuneinsight/polyquad/utils/sampling"
)

func TestGrid(t *testing.T) {
	testGrid[float32](t, "float32", 0.05)
	testGrid[float64](t, "float64", 1e-8)
}

func testGrid[T float32 | float64](t *testing.T, name string, drift float64) {

	p, err := NewPolynomial([]T{-10, 1, 0, 2})
	require.NoError(t, err)

	t.Run(name+"/Length", func(t *testing.T) {
		for _, intervals := range []int{1, 2, 7, 1000} {
			g, err := NewGrid(p, 0, 5, intervals)
			require.NoError(t, err)
			require.Equal(t, intervals+1, g.Len())
			require.Len(t, g.Values(), intervals+1)
			require.Equal(t, intervals, g.Intervals())
			require.Equal(t, p.Evaluate(0), g.Values()[0])
			require.InDelta(t, float64(p.Evaluate(5)), float64(g.Values()[g.Len()-1]), drift)
		}
	})

	t.Run(name+"/Accumulation", func(t *testing.T) {
		g, err := NewGrid(p, 0, 5, 1000)
		require.NoError(t, err)

		gap := T(5) / T(1000)
		require.Equal(t, gap, g.Gap())

		in := T(0)
		for k, v := range g.Values() {
			require.Equal(t, p.Evaluate(in), v, "k=%d", k)
			in += gap
		}

		x := g.Points()
		require.Len(t, x, g.Len())
		require.Equal(t, T(0), x[0])
		require.InDelta(t, 5.0, float64(x[len(x)-1]), drift/100)
	})

	t.Run(name+"/Monotonic", func(t *testing.T) {
		g, err := NewGrid(p, 0, 5, 100)
		require.NoError(t, err)
		require.True(t, g.Monotonic())

		q, err := NewPolynomial([]T{0, 0, 1})
		require.NoError(t, err)
		g, err = NewGrid(q, -1, 1, 100)
		require.NoError(t, err)
		require.False(t, g.Monotonic())
	})

	t.Run(name+"/InvalidRange", func(t *testing.T) {
		for _, intervals := range []int{0, -1} {
			_, err := NewGrid(p, 0, 5, intervals)
			require.ErrorIs(t, err, ErrInvalidRange)
		}

		_, err := NewGrid(p, 0, T(math.Inf(1)), 10)
		require.ErrorIs(t, err, ErrInvalidRange)

		_, err = NewGrid(p, T(math.NaN()), 1, 10)
		require.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run(name+"/AllocationFailure", func(t *testing.T) {
		_, err := NewGrid(p, 0, 5, math.MaxInt)
		require.ErrorIs(t, err, ErrAllocationFailure)

		_, err = NewGrid(p, 0, 5, math.MaxInt/2)
		require.ErrorIs(t, err, ErrAllocationFailure)
	})

	t.Run(name+"/Codec", func(t *testing.T) {
		g, err := NewGrid(p, -1.5, 2.5, 333)
		require.NoError(t, err)

		data, err := g.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, g.BinarySize())

		var h Grid[T]
		require.NoError(t, h.UnmarshalBinary(data))
		require.True(t, g.Equal(&h))

		var buf bytes.Buffer
		n, err := g.WriteTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(g.BinarySize()), n)
		require.Equal(t, data, buf.Bytes())

		var k Grid[T]
		_, err = k.ReadFrom(&buf)
		require.NoError(t, err)
		require.True(t, g.Equal(&k))
		require.Equal(t, g.Digest(), k.Digest())

		require.Error(t, h.UnmarshalBinary(data[:len(data)-1]))
	})

	t.Run(name+"/ForgedHeader", func(t *testing.T) {
		// The header announces 1<<26 intervals but no sample follows.
		forged := buffer.NewBufferSize(16 + 3*buffer.FloatSize[T]())
		_, err := buffer.WriteUint64(forged, uint64(buffer.FloatSize[T]()))
		require.NoError(t, err)
		_, err = buffer.WriteUint64(forged, 1<<26)
		require.NoError(t, err)
		_, err = buffer.WriteFloatSlice(forged, []T{0, 5, 1})
		require.NoError(t, err)
		data := forged.Bytes()

		var h Grid[T]
		require.ErrorIs(t, h.UnmarshalBinary(data), ErrInvalidInput)
		require.Nil(t, h.Values())

		var k Grid[T]
		_, err = k.ReadFrom(bytes.NewReader(data))
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Nil(t, k.Values())
	})

	t.Run(name+"/EqualNil", func(t *testing.T) {
		g, err := NewGrid(p, 0, 5, 10)
		require.NoError(t, err)
		require.False(t, g.Equal(nil))

		var none *Grid[T]
		require.False(t, none.Equal(g))
		require.True(t, none.Equal(nil))
	})

	t.Run(name+"/Digest", func(t *testing.T) {
		g0, err := NewGrid(p, 0, 5, 1000)
		require.NoError(t, err)
		g1, err := NewGrid(p, 0, 5, 1000)
		require.NoError(t, err)
		require.Equal(t, g0.DigestHex(), g1.DigestHex())
		require.Len(t, g0.DigestHex(), 64)

		g2, err := NewGrid(p, 0, 5, 1001)
		require.NoError(t, err)
		require.NotEqual(t, g0.Digest(), g2.Digest())
		require.False(t, g0.Equal(g2))
	})

	t.Run(name+"/RandomPolynomials", func(t *testing.T) {
		prng := sampling.NewSeededPRNG([]byte(name))
		for i := 0; i < 8; i++ {
			coeffs := sampling.RandCoefficients(prng, 1+i, -2, 2)
			c := make([]T, len(coeffs))
			for j := range coeffs {
				c[j] = T(coeffs[j])
			}
			q, err := NewPolynomial(c)
			require.NoError(t, err)

			intervals := 1 + i*13
			g, err := NewGrid(q, -1, 1, intervals)
			require.NoError(t, err)
			require.Equal(t, intervals+1, g.Len())
			require.Equal(t, q.Evaluate(-1), g.Values()[0])
		}
	})
}

func TestGridCodecWidth(t *testing.T) {
	p, err := NewPolynomial([]float32{1, 2})
	require.NoError(t, err)
	g, err := NewGrid(p, 0, 1, 4)
	require.NoError(t, err)

	data, err := g.MarshalBinary()
	require.NoError(t, err)

	var h Grid[float64]
	require.ErrorIs(t, h.UnmarshalBinary(data), ErrInvalidInput)
}
