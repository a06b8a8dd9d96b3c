// Package sampling implements the sampling of random floats and random
// polynomial coefficients from a byte stream.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// RandFloat64 returns a float drawn uniformly in [min, max) from the bytes
// of prng. It panics if min >= max.
func RandFloat64(prng PRNG, min, max float64) float64 {

	if !(min < max) {
		panic(fmt.Errorf("cannot RandFloat64: empty range [%v, %v)", min, max))
	}

	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(prng, b); err != nil {
		panic(err)
	}

	// 53 bits fill the mantissa of a float64 in [0, 1).
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)

	// min + f*(max-min) can round up to max.
	if x := min + f*(max-min); x < max {
		return x
	}

	return math.Nextafter(max, min)
}

// RandCoefficients returns n coefficients drawn uniformly in [min, max).
func RandCoefficients(prng PRNG, n int, min, max float64) (coeffs []float64) {

	if n < 1 {
		panic(fmt.Errorf("cannot RandCoefficients: n must be at least 1 but is %d", n))
	}

	coeffs = make([]float64, n)
	for i := range coeffs {
		coeffs[i] = RandFloat64(prng, min, max)
	}

	return
}
