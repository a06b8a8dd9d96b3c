package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with Horner's scheme.
// The precision of x is used as reference precision for y.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	y = new(big.Float).SetPrec(x.Prec())

	if len(poly) == 0 {
		return
	}

	y.Set(poly[len(poly)-1])
	for i := len(poly) - 2; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}

	return
}

// MonomialAntiderivative returns the coefficients of the antiderivative of
// poly that vanishes at zero: [0, poly[0], poly[1]/2, ..., poly[n-1]/n].
func MonomialAntiderivative(poly []*big.Float, prec uint) (anti []*big.Float) {

	anti = make([]*big.Float, len(poly)+1)
	anti[0] = NewFloat(0, prec)

	for i, c := range poly {
		anti[i+1] = new(big.Float).SetPrec(prec).Quo(c, NewFloat(i+1, prec))
	}

	return
}

// MonomialIntegral returns the definite integral of poly over [a, b],
// computed with the larger precision of a and b.
func MonomialIntegral(poly []*big.Float, a, b *big.Float) (integ *big.Float) {

	prec := a.Prec()
	if b.Prec() > prec {
		prec = b.Prec()
	}

	anti := MonomialAntiderivative(poly, prec)

	lo := MonomialEval(NewFloat(a, prec), anti)
	hi := MonomialEval(NewFloat(b, prec), anti)

	return hi.Sub(hi, lo)
}
