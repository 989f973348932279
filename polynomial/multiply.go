package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polyops/utils"
)

// ProductLength returns the number of coefficients of the product of two
// polynomials of n1 and n2 coefficients: n1+n2-1, or 0 if either is empty.
func ProductLength(n1, n2 int) int {
	if n1 == 0 || n2 == 0 {
		return 0
	}
	return n1 + n2 - 1
}

// convolutionWindow returns the range [start, end) of indices i of a, of
// length n1, such that k-i is a valid index of b, of length n2.
func convolutionWindow(k, n1, n2 int) (start, end int) {
	return utils.SaturatingSub(k+1, n2), utils.Min(k+1, n1)
}

// Mul writes the coefficients of a*b on out.
// out must have length ProductLength(len(a), len(b)) and must not share
// its backing array with a or b.
func Mul[T Number](a, b, out []T) {

	if n := ProductLength(len(a), len(b)); len(out) != n {
		panic(fmt.Errorf("cannot Mul: len(out)=%d but the product has %d coefficients", len(out), n))
	}

	if utils.Alias1D(a, out) || utils.Alias1D(b, out) {
		panic("cannot Mul: out must not alias a or b")
	}

	n1, n2 := len(a), len(b)

	for k := range out {
		var acc T
		start, end := convolutionWindow(k, n1, n2)
		for i := start; i < end; i++ {
			acc += a[i] * b[k-i]
		}
		out[k] = acc
	}
}

// MulNew returns the coefficients of a*b in a newly allocated slice.
// The result is empty if a or b is empty.
func MulNew[T Number](a, b []T) (out []T) {
	out = make([]T, ProductLength(len(a), len(b)))
	Mul(a, b, out)
	return
}

// MulWith writes the coefficients of a*b on out using the arithmetic of m.
// out must have length ProductLength(len(a), len(b)) and must not share
// memory with a or b, which is not checked since the types can differ.
// Each coefficient of out starts from the zero value of Y.
func MulWith[A, B, Y any](m Multiplier[A, B, Y], a []A, b []B, out []Y) {

	if n := ProductLength(len(a), len(b)); len(out) != n {
		panic(fmt.Errorf("cannot MulWith: len(out)=%d but the product has %d coefficients", len(out), n))
	}

	n1, n2 := len(a), len(b)

	for k := range out {
		var acc Y
		start, end := convolutionWindow(k, n1, n2)
		for i := start; i < end; i++ {
			acc = m.Add(acc, m.Mul(a[i], b[k-i]))
		}
		out[k] = acc
	}
}

// MulWithNew returns the coefficients of a*b, computed with the arithmetic
// of m, in a newly allocated slice. The result is empty if a or b is empty.
//
// Each coefficient is the reduction by m.Add of the products a[i]*b[j] with
// i+j=k, the indices of a walking forward while those of b walk backward.
func MulWithNew[A, B, Y any](m Multiplier[A, B, Y], a []A, b []B) (out []Y) {

	n1, n2 := len(a), len(b)

	out = make([]Y, ProductLength(n1, n2))

	for k := range out {
		start, end := convolutionWindow(k, n1, n2)
		terms := utils.Zip(a[start:end], utils.Reverse(b[k-end+1:k-start+1]), m.Mul)
		out[k], _ = utils.Reduce(terms, m.Add)
	}

	return
}
