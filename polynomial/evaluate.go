package polynomial

import (
	"github.com/tuneinsight/polyops/utils"
)

// Evaluate returns y = sum p[i] * x^i.
// An empty p evaluates to zero.
func Evaluate[T Number](p []T, x T) (y T) {

	if len(p) == 0 {
		return
	}

	y = p[0]
	xn := x
	for _, c := range p[1:] {
		y += c * xn
		xn *= x
	}

	return
}

// EvaluateWith returns y = sum p[i] * x^i using the arithmetic of ev.
// The constant term is converted with ev.Lift and the powers of x are
// accumulated left to right with ev.MulPoint, so X is never required to
// have a multiplicative identity.
// An empty p evaluates to the zero value of Y.
func EvaluateWith[C, X, Y any](ev Evaluator[C, X, Y], p []C, x X) (y Y) {

	if len(p) == 0 {
		return
	}

	y = ev.Lift(p[0])
	xn := x
	for _, c := range p[1:] {
		y = ev.Add(y, ev.Mul(c, xn))
		xn = ev.MulPoint(xn, x)
	}

	return
}

// EvaluateMany evaluates p at every point of x and returns the values.
func EvaluateMany[T Number](p []T, x []T) (y []T) {
	return utils.Map(x, func(x T) T { return Evaluate(p, x) })
}
