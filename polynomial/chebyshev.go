package polynomial

import (
	"errors"
	"fmt"
)

// Chebyshev identifies the Chebyshev polynomial of a given kind and order,
// defined by the recurrence
//
//	T_0(x) = 1
//	T_1(x) = Kind * x
//	T_k(x) = 2x * T_{k-1}(x) - T_{k-2}(x)
//
// Kind 1 gives the Chebyshev polynomials of the first kind and Kind 2 those
// of the second kind.
type Chebyshev struct {
	Kind  int
	Order int
}

// NewChebyshev returns the descriptor of the Chebyshev polynomial of the
// given kind and order. Both must be non-negative.
func NewChebyshev(kind, order int) Chebyshev {
	c := Chebyshev{Kind: kind, Order: order}
	c.mustValidate("NewChebyshev")
	return c
}

// NewChebyshevFirstKind returns the descriptor of T_order.
func NewChebyshevFirstKind(order int) Chebyshev {
	return NewChebyshev(1, order)
}

// NewChebyshevSecondKind returns the descriptor of U_order.
func NewChebyshevSecondKind(order int) Chebyshev {
	return NewChebyshev(2, order)
}

// Degree returns the degree of the polynomial, which is its order.
func (c Chebyshev) Degree() int {
	return c.Order
}

// Fits returns true if the coefficients of the polynomial fit in n slots.
func (c Chebyshev) Fits(n int) bool {
	return c.Order <= n-1
}

func (c Chebyshev) String() string {
	return fmt.Sprintf("Chebyshev{Kind: %d, Order: %d}", c.Kind, c.Order)
}

func (c Chebyshev) mustValidate(op string) {
	if c.Kind < 0 {
		panic(fmt.Errorf("cannot %s: kind must be non-negative but is %d", op, c.Kind))
	}
	if c.Order < 0 {
		panic(fmt.Errorf("cannot %s: order must be non-negative but is %d", op, c.Order))
	}
}

// ErrCapacityExceeded is matched by the errors returned when the coefficients
// of a Chebyshev polynomial do not fit in the requested number of slots.
var ErrCapacityExceeded = errors.New("chebyshev order exceeds capacity")

// CapacityError is returned when the coefficients of a Chebyshev polynomial
// do not fit in the requested number of slots. It carries back the unchanged
// descriptor so that the caller can retry with a larger length or with
// ChebyshevCoeffs.
type CapacityError struct {
	Chebyshev Chebyshev
	Length    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: order %d needs %d coefficients but only %d are available", ErrCapacityExceeded, e.Chebyshev.Order, e.Chebyshev.Order+1, e.Length)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// chebyshevScale returns kind as an element of T, computed by adding one
// kind times to zero.
func chebyshevScale[T Number](kind int) (k T) {
	for i := 0; i < kind; i++ {
		k++
	}
	return
}

// ChebyshevCoeffs returns the coefficients of c in a newly allocated slice
// of length c.Order+1.
func ChebyshevCoeffs[T Number](c Chebyshev) (coeffs []T) {
	c.mustValidate("ChebyshevCoeffs")
	coeffs = make([]T, c.Order+1)
	chebyshevCoeffs(c, coeffs)
	return
}

// ChebyshevCoeffsFixed returns the coefficients of c in a newly allocated
// slice of length n, padded with zeros. The second return value is false,
// and the slice nil, if c.Order > n-1.
func ChebyshevCoeffsFixed[T Number](c Chebyshev, n int) (coeffs []T, ok bool) {

	c.mustValidate("ChebyshevCoeffsFixed")

	if !c.Fits(n) {
		return nil, false
	}

	coeffs = make([]T, n)
	chebyshevCoeffs(c, coeffs)
	return coeffs, true
}

// TryChebyshevCoeffs returns the coefficients of c in a newly allocated
// slice of length n, padded with zeros. If c.Order > n-1 it returns a
// *CapacityError holding c.
func TryChebyshevCoeffs[T Number](c Chebyshev, n int) (coeffs []T, err error) {

	if coeffs, ok := ChebyshevCoeffsFixed[T](c, n); ok {
		return coeffs, nil
	}

	return nil, &CapacityError{Chebyshev: c, Length: n}
}

// ChebyshevCoeffsInto writes the coefficients of c on out, padded with zeros.
// If c.Order > len(out)-1 it returns a *CapacityError holding c and leaves
// out untouched.
func ChebyshevCoeffsInto[T Number](c Chebyshev, out []T) (err error) {

	c.mustValidate("ChebyshevCoeffsInto")

	if !c.Fits(len(out)) {
		return &CapacityError{Chebyshev: c, Length: len(out)}
	}

	chebyshevCoeffs(c, out)
	return nil
}

// chebyshevCoeffs runs the coefficient recurrence on out, which must hold at
// least c.Order+1 slots. Shifting T_{k-1} by one degree multiplies it by x,
// so T_k[0] = -T_{k-2}[0] and T_k[i] = 2*T_{k-1}[i-1] - T_{k-2}[i].
func chebyshevCoeffs[T Number](c Chebyshev, out []T) {

	clear(out)

	var one T = 1

	if c.Order == 0 {
		out[0] = one
		return
	}

	if c.Order == 1 {
		out[1] = chebyshevScale[T](c.Kind)
		return
	}

	// P_k only has terms of the parity of k, so P_k-1 and P_k-2 share out
	// without overlapping and P_k overwrites P_k-2 in place.
	out[0] = one
	out[1] = chebyshevScale[T](c.Kind)

	two := one + one

	for k := 2; k <= c.Order; k++ {
		if k&1 == 0 {
			out[0] = -out[0]
		}
		for i := 2 - k&1; i <= k; i += 2 {
			out[i] = two*out[i-1] - out[i]
		}
	}

	// Drop what is left of P_Order-1.
	for i := 1 - c.Order&1; i < c.Order; i += 2 {
		out[i] = 0
	}
}

// EvaluateChebyshev returns the value of c at x with the scalar recurrence,
// in O(c.Order) operations and without computing the coefficients.
func EvaluateChebyshev[T Number](c Chebyshev, x T) (y T) {

	c.mustValidate("EvaluateChebyshev")

	var one T = 1

	prev := one
	if c.Order == 0 {
		return prev
	}

	curr := x * chebyshevScale[T](c.Kind)

	two := one + one

	for k := 1; k < c.Order; k++ {
		prev, curr = curr, two*x*curr-prev
	}

	return curr
}
