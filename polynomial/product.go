package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polyops/utils"
)

// ProductLengthOf returns the number of coefficients of the product of
// polynomials having the given numbers of coefficients, obtained by
// applying ProductLength iteratively. It returns 0 for no polynomials.
func ProductLengthOf(lengths ...int) (n int) {

	if len(lengths) == 0 {
		return 0
	}

	n = lengths[0]
	for _, l := range lengths[1:] {
		n = ProductLength(n, l)
	}

	return
}

// ProductLengthUniform returns the number of coefficients of the product of
// m polynomials of n coefficients each.
func ProductLengthUniform(n, m int) int {
	switch {
	case m == 0 || n == 0:
		return 0
	case m == 1:
		return n
	default:
		return m*(n-1) + 1
	}
}

// Product writes the product of polys on out.
// All polynomials must have the same number of coefficients n and out must
// have length ProductLengthUniform(n, len(polys)).
//
// The running product is accumulated in place on out, zero padded to its
// final length, and a single scratch buffer of the same length is reused
// for every step. The product of no polynomials is empty: out must then be
// empty and is left untouched. out must not share memory with any of polys.
func Product[T Number](polys [][]T, out []T) {

	if len(polys) == 0 {
		if len(out) != 0 {
			panic(fmt.Errorf("cannot Product: len(out)=%d but the product of no polynomials is empty", len(out)))
		}
		return
	}

	n := len(polys[0])
	for i := range polys {
		if len(polys[i]) != n {
			panic(fmt.Errorf("cannot Product: len(polys[%d])=%d but len(polys[0])=%d", i, len(polys[i]), n))
		}
	}

	if length := ProductLengthUniform(n, len(polys)); len(out) != length {
		panic(fmt.Errorf("cannot Product: len(out)=%d but the product has %d coefficients", len(out), length))
	}

	if len(out) == 0 {
		return
	}

	for i := range polys {
		if utils.Alias1D(polys[i], out) {
			panic("cannot Product: out must not alias polys")
		}
	}

	copy(out, polys[0])
	clear(out[n:])

	// Degree of the running product.
	degree := n - 1

	scratch := make([]T, len(out))

	for _, p := range polys[1:] {

		degree += n - 1

		for k := 0; k <= degree; k++ {
			var acc T
			start, end := convolutionWindow(k, n, degree+1)
			for i := start; i < end; i++ {
				acc += p[i] * out[k-i]
			}
			scratch[k] = acc
		}

		copy(out[:degree+1], scratch[:degree+1])
	}
}

// ProductNew returns the product of polys in a newly allocated slice.
// The polynomials can have different numbers of coefficients.
// The product of no polynomials is empty, not the constant 1: callers
// needing a multiplicative identity must special-case it.
func ProductNew[T Number](polys ...[]T) (out []T) {
	return ProductWithNew(Native[T]{}, polys...)
}

// ProductWithNew returns the product of polys, computed with the arithmetic
// of m, in a newly allocated slice. See ProductNew.
func ProductWithNew[T any](m Multiplier[T, T, T], polys ...[]T) (out []T) {

	if len(polys) == 0 {
		return []T{}
	}

	out = utils.Resize(polys[0], len(polys[0]), nil)

	for _, p := range polys[1:] {
		out = MulWithNew(m, out, p)
	}

	return
}
