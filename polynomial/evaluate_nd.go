package polynomial

import (
	"fmt"
)

// EvaluateND returns the value of the multivariable polynomial t at the point x.
// len(x) must be equal to t.Rank().
func EvaluateND[T Number](t *Tensor[T], x []T) (y T) {
	return EvaluateNDWith(Native[T]{}, t, x)
}

// EvaluateNDWith returns the value of the multivariable polynomial t at the
// point x using the arithmetic of ev. len(x) must be equal to t.Rank().
//
// The powers x_n^1, ..., x_n^{D_n-1} of every variable are computed once.
// For each coefficient the powers of the variables with a non-zero index are
// multiplied together with ev.MulPoint, then by the coefficient with ev.Mul.
// The coefficient of the constant monomial is only converted with ev.Lift.
// A tensor with no coefficient evaluates to the zero value of Y.
func EvaluateNDWith[C, X, Y any](ev Evaluator[C, X, Y], t *Tensor[C], x []X) (y Y) {

	if len(x) != t.Rank() {
		panic(fmt.Errorf("cannot EvaluateND: len(x)=%d but the polynomial has %d variables", len(x), t.Rank()))
	}

	if t.Len() == 0 {
		return
	}

	powers, offsets := pointPowers(ev, t.dims, x)

	index := make([]int, len(t.dims))

	for _, c := range t.Coeffs {

		var xprod X
		var nonConstant bool

		for n, i := range index {
			if i == 0 {
				continue
			}

			if xn := powers[offsets[n]+i-1]; nonConstant {
				xprod = ev.MulPoint(xprod, xn)
			} else {
				xprod = xn
				nonConstant = true
			}
		}

		if nonConstant {
			y = ev.Add(y, ev.Mul(c, xprod))
		} else {
			y = ev.Add(y, ev.Lift(c))
		}

		incrementIndex(index, t.dims)
	}

	return
}

// pointPowers returns the flattened powers x_n^1, ..., x_n^{D_n-1} of every
// variable, and for each variable the position of x_n^1 in the flattened slice.
// Variables with D_n < 2 have no entry.
func pointPowers[C, X, Y any](ev Evaluator[C, X, Y], dims []int, x []X) (powers []X, offsets []int) {

	var size int
	offsets = make([]int, len(dims))
	for n, d := range dims {
		offsets[n] = size
		if d > 1 {
			size += d - 1
		}
	}

	powers = make([]X, size)

	for n, d := range dims {
		if d < 2 {
			continue
		}

		xn := x[n]
		powers[offsets[n]] = xn
		for i := 1; i < d-1; i++ {
			xn = ev.MulPoint(xn, x[n])
			powers[offsets[n]+i] = xn
		}
	}

	return
}

// incrementIndex advances index to the next multi-index in row-major order.
func incrementIndex(index, dims []int) {
	for n := len(index) - 1; n >= 0; n-- {
		if index[n]++; index[n] < dims[n] {
			return
		}
		index[n] = 0
	}
}
