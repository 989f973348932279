/*
Package polyops is a generic Go library of polynomial kernels: evaluation of univariate and multivariate
polynomials over any numeric type, multiplication of two or many polynomials into caller-provided or
freshly allocated buffers, and generation of the exact coefficients of Chebyshev polynomials of any kind.
The cmd/polyops command line tool exposes the kernels together with sweeps, summary statistics and plots.
*/
package polyops
