// Package polynomial implements evaluation, multiplication and products of
// polynomials stored as coefficient sequences, the evaluation of multivariable
// polynomials stored as coefficient tensors, and the generation and evaluation
// of Chebyshev polynomials.
//
// Coefficients are stored in ascending order: index 0 is the constant term and
// index i is the coefficient of x^i. Sequences are never trimmed.
//
// Functions are provided in two flavours: a fast path over the built-in numeric
// types (Evaluate, MulNew, ...) and a generic path (EvaluateWith, MulWithNew, ...)
// for which the arithmetic is supplied by a [Multiplier] or an [Evaluator], so
// that coefficients, evaluation points and results can be of distinct types.
package polynomial

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the set of built-in integer and floating point types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Multiplier is the arithmetic needed to multiply coefficients of type A
// by coefficients of type B and to accumulate the products of type Y.
// The zero value of Y must be the additive identity.
type Multiplier[A, B, Y any] interface {
	Mul(a A, b B) Y
	Add(a, b Y) Y
}

// Evaluator is the arithmetic needed to evaluate polynomials with
// coefficients of type C at points of type X, yielding values of type Y.
type Evaluator[C, X, Y any] interface {
	Multiplier[C, X, Y]

	// Lift converts a coefficient into the output type.
	// It is used for the constant term, which is never multiplied by x^0.
	Lift(c C) Y

	// MulPoint returns a*b, used to compute the powers of the evaluation point.
	MulPoint(a, b X) X
}

// Native is the [Evaluator] and [Multiplier] of a built-in numeric type
// with itself.
type Native[T Number] struct{}

// Mul returns a*b.
func (Native[T]) Mul(a, b T) T {
	return a * b
}

// Add returns a+b.
func (Native[T]) Add(a, b T) T {
	return a + b
}

// Lift returns c.
func (Native[T]) Lift(c T) T {
	return c
}

// MulPoint returns a*b.
func (Native[T]) MulPoint(a, b T) T {
	return a * b
}

// Promote is the [Evaluator] and [Multiplier] of coefficients of type C with
// points of type X, where C is converted to X before each operation.
// For example Promote[int64, float64] evaluates integer coefficients at
// floating point values.
type Promote[C, X Real] struct{}

// Mul returns X(c)*x.
func (Promote[C, X]) Mul(c C, x X) X {
	return X(c) * x
}

// Add returns a+b.
func (Promote[C, X]) Add(a, b X) X {
	return a + b
}

// Lift returns X(c).
func (Promote[C, X]) Lift(c C) X {
	return X(c)
}

// MulPoint returns a*b.
func (Promote[C, X]) MulPoint(a, b X) X {
	return a * b
}

// Funcs is an [Evaluator] and [Multiplier] built from caller supplied
// functions. It allows non built-in types, such as *big.Int or *big.Float,
// to be used as coefficients or points.
//
// AddFunc must accept the zero value of Y as the additive identity.
// LiftFunc and MulPointFunc are only needed for evaluation.
type Funcs[C, X, Y any] struct {
	MulFunc      func(c C, x X) Y
	AddFunc      func(a, b Y) Y
	LiftFunc     func(c C) Y
	MulPointFunc func(a, b X) X
}

// Mul returns f.MulFunc(c, x).
func (f Funcs[C, X, Y]) Mul(c C, x X) Y {
	return f.MulFunc(c, x)
}

// Add returns f.AddFunc(a, b).
func (f Funcs[C, X, Y]) Add(a, b Y) Y {
	return f.AddFunc(a, b)
}

// Lift returns f.LiftFunc(c).
func (f Funcs[C, X, Y]) Lift(c C) Y {
	return f.LiftFunc(c)
}

// MulPoint returns f.MulPointFunc(a, b).
func (f Funcs[C, X, Y]) MulPoint(a, b X) X {
	return f.MulPointFunc(a, b)
}
