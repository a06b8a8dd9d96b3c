package quadrature

import (
	"fmt"
)

// Polynomial is an immutable polynomial in the monomial basis:
// c[0] + c[1]*x + c[2]*x^2 + ... + c[n-1]*x^(n-1).
type Polynomial[T Float] struct {
	coeffs []T
}

// NewPolynomial returns a Polynomial with a copy of coeffs.
// At least one coefficient is required.
func NewPolynomial[T Float](coeffs []T) (Polynomial[T], error) {

	if len(coeffs) == 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot NewPolynomial: %w: no coefficients", ErrInvalidInput)
	}

	c := make([]T, len(coeffs))
	copy(c, coeffs)

	return Polynomial[T]{coeffs: c}, nil
}

// Degree returns the degree of the polynomial.
func (p Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients.
func (p Polynomial[T]) Coefficients() []T {
	c := make([]T, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Evaluate returns p(in).
//
// The powers of in are obtained by repeated multiplication and the terms are
// accumulated from the constant term upward. Evaluate panics if p has no
// coefficients.
func (p Polynomial[T]) Evaluate(in T) (out T) {

	if len(p.coeffs) == 0 {
		panic(fmt.Errorf("cannot Evaluate: polynomial has no coefficients"))
	}

	out = p.coeffs[0]

	x := in
	for _, c := range p.coeffs[1:] {
		// The conversion rounds the product and prevents fusing it with the addition.
		out += T(c * x)
		x *= in
	}

	return
}
