package polynomial

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Polynomial is a single variable polynomial given by its coefficients in
// ascending order of degree.
type Polynomial[T Number] []T

// NewPolynomial returns a new Polynomial holding a copy of coeffs.
func NewPolynomial[T Number](coeffs ...T) (p Polynomial[T]) {
	p = make(Polynomial[T], len(coeffs))
	copy(p, coeffs)
	return
}

// Degree returns the degree of the polynomial, i.e. len(p)-1, trailing zero
// coefficients included. The empty polynomial has degree -1.
func (p Polynomial[T]) Degree() int {
	return len(p) - 1
}

// Evaluate returns p(x).
func (p Polynomial[T]) Evaluate(x T) T {
	return Evaluate([]T(p), x)
}

// Mul returns p*q in a new Polynomial.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	return Polynomial[T](MulNew([]T(p), []T(q)))
}

// MulEach returns the coefficient-wise product of p and q in a new Polynomial.
// p and q must have the same number of coefficients.
func (p Polynomial[T]) MulEach(q Polynomial[T]) (r Polynomial[T]) {

	if len(p) != len(q) {
		panic(fmt.Errorf("cannot MulEach: len(p)=%d != len(q)=%d", len(p), len(q)))
	}

	r = make(Polynomial[T], len(p))
	for i := range p {
		r[i] = p[i] * q[i]
	}

	return
}

// Scale returns s*p in a new Polynomial.
func (p Polynomial[T]) Scale(s T) (r Polynomial[T]) {
	r = make(Polynomial[T], len(p))
	for i := range p {
		r[i] = p[i] * s
	}
	return
}

// CopyNew returns a deep copy of the polynomial.
func (p Polynomial[T]) CopyNew() Polynomial[T] {
	return NewPolynomial([]T(p)...)
}

// Equal returns true if p and q have the same coefficients.
// Trailing zeros are significant, a nil polynomial equals an empty one.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	return cmp.Equal([]T(p), []T(q), cmpopts.EquateEmpty())
}

// String returns a human readable form of the polynomial, e.g. "1 + 2x + 3x^2".
// Zero coefficients are omitted; the zero polynomial is printed as "0".
func (p Polynomial[T]) String() string {

	var sb strings.Builder

	var zero T
	for i, c := range p {

		if c == zero {
			continue
		}

		if sb.Len() != 0 {
			sb.WriteString(" + ")
		}

		switch i {
		case 0:
			fmt.Fprintf(&sb, "%v", c)
		case 1:
			fmt.Fprintf(&sb, "%vx", c)
		default:
			fmt.Fprintf(&sb, "%vx^%d", c, i)
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
