// Package bignum implements arbitrary precision arithmetic used as a
// reference for the floating-point quadrature rules.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const log2 = "0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687542001481020570685733685520235758130557032670751635075961930727570828371435190307038623891673471123350115364497955239120475172681574932065155524734139525882950453007095326366642654104239157814952043740430385500801944170641671518644712839968171784546957026271631064546150257207402481637773389638550695260668341137273873722928956493547025762652098859693201965058554764703306793654432547632744951250406069438147104689946506220167720424524529612687946546193165174681392672504103802546259656869144192871608293803172714367782654877566485085674077648451464439940461422603193096735402574446070308096085047486638523138181676751438667476647890881437141985494231519973548803751658612753529166100071053558249879414729509293113897155998205654392871700072180857610252368892132449713893203784393530887748259701715591070882368362758984258918535302436342143670611892367891923723146723217205340164925687274778234453534764811494186423867767744060695626573796008670762571991847340226514628379048830620330611446300737194890027436439650025809365194430411911506080948793067865158870900605203468429736193841289652556539686022194122924207574321757489097706753"

// Log2 returns ln(2) with prec bits of precision.
func Log2(prec uint) *big.Float {
	log2, _ := new(big.Float).SetPrec(prec).SetString(log2)
	return log2
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float32, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float32:
		y.SetFloat64(float64(x))
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float32, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// NewFloatSlice converts values into a slice of big.Float with prec bits of precision.
func NewFloatSlice(values []float64, prec uint) (y []*big.Float) {
	y = make([]*big.Float, len(values))
	for i, v := range values {
		y[i] = NewFloat(v, prec)
	}
	return
}

// Log returns ln(x) with the precision of x.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Log2Ratio returns log2(a/b) with the larger precision of a and b.
// Both a and b must be strictly positive.
func Log2Ratio(a, b *big.Float) (r *big.Float) {

	if a.Sign() <= 0 || b.Sign() <= 0 {
		panic(fmt.Errorf("cannot Log2Ratio: a and b must be strictly positive but are %v and %v", a, b))
	}

	prec := a.Prec()
	if b.Prec() > prec {
		prec = b.Prec()
	}

	r = new(big.Float).SetPrec(prec).Quo(a, b)
	r = Log(r)
	return r.Quo(r, Log2(prec))
}
