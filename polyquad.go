/*
Package polyquad is a pure Go library for the numerical integration of
polynomials sampled on equally spaced grids.

The quadrature package implements the pipeline: polynomial evaluation, grid
sampling and the rectangular and trapezoidal rules, generic over float32 and
float64 with a fixed rounding order. The utils packages provide the
arbitrary precision reference integral, the binary grid codec and the
deterministic sampling of random polynomials. cmd/polyquad is the command
line front end.
*/
package polyquad
