package polynomial

// EvaluateChebyshevSeries returns y = sum coeffs[i] * P_i(x) where P_i is the
// Chebyshev polynomial of the given kind and order i.
// The basis polynomials are generated on the fly by the scalar recurrence.
func EvaluateChebyshevSeries[T Number](coeffs []T, kind int, x T) (y T) {

	Chebyshev{Kind: kind}.mustValidate("EvaluateChebyshevSeries")

	if len(coeffs) == 0 {
		return
	}

	var one T = 1
	two := one + one

	var T0, T1 T = one, x * chebyshevScale[T](kind)

	y = coeffs[0]

	for i := 1; i < len(coeffs); i++ {
		y += coeffs[i] * T1
		T0, T1 = T1, two*x*T1-T0
	}

	return
}

// ChebyshevSeriesToMonomial returns the coefficients, in the monomial basis,
// of the series sum coeffs[i] * P_i(x) where P_i is the Chebyshev polynomial
// of the given kind and order i. The result has len(coeffs) coefficients.
func ChebyshevSeriesToMonomial[T Number](coeffs []T, kind int) (monomial []T) {

	monomial = make([]T, len(coeffs))

	basis := make([]T, len(coeffs))

	for i, c := range coeffs {

		if err := ChebyshevCoeffsInto(NewChebyshev(kind, i), basis); err != nil {
			// unreachable: order i always fits in len(coeffs) slots
			panic(err)
		}

		for j := 0; j <= i; j++ {
			monomial[j] += c * basis[j]
		}
	}

	return
}
