package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyops/polynomial"
)

type polyResult struct {
	Polynomial string    `json:"polynomial"`
	Coeffs     []float64 `json:"coeffs"`
}

func (a *App) renderPolynomial(coeffs []float64) error {
	return a.render(coeffsTable(coeffs, formatFloat), polyResult{
		Polynomial: polynomial.Polynomial[float64](coeffs).String(),
		Coeffs:     coeffs,
	})
}

func (a *App) newMulCommand() *cobra.Command {
	var p, q []float64

	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply two polynomials",
		Long: `Multiply two polynomials given by their coefficients in ascending degree
order. The product of polynomials with n1 and n2 coefficients has
n1+n2-1 coefficients, or none if either is empty.`,
		Example: `  polyops mul --a 1,1 --b 1,-1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderPolynomial(polynomial.MulNew(p, q))
		},
	}

	cmd.Flags().Float64SliceVar(&p, "a", nil, "coefficients of the first polynomial")
	cmd.Flags().Float64SliceVar(&q, "b", nil, "coefficients of the second polynomial")

	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

var errNoPolynomial = errors.New("at least one --poly is required")

func (a *App) newProductCommand() *cobra.Command {
	var raw []string

	cmd := &cobra.Command{
		Use:   "product",
		Short: "Multiply many polynomials",
		Long: `Multiply all the polynomials given with repeated --poly flags.

When all the polynomials have the same number of coefficients, the product
is accumulated in a single preallocated buffer.`,
		Example: `  polyops product --poly 1,1 --poly 1,1 --poly 1,1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if len(raw) == 0 {
				return exitWithCode(ExitValidation, errNoPolynomial)
			}

			polys := make([][]float64, len(raw))
			for i := range raw {
				var err error
				if polys[i], err = parseFloats(raw[i]); err != nil {
					return exitWithCode(ExitValidation, fmt.Errorf("--poly #%d: %w", i, err))
				}
			}

			var out []float64
			if n, ok := uniformLength(polys); ok {
				a.logger.Debug("uniform product", "n", n, "m", len(polys))
				out = make([]float64, polynomial.ProductLengthUniform(n, len(polys)))
				polynomial.Product(polys, out)
			} else {
				a.logger.Debug("heterogeneous product", "m", len(polys))
				out = polynomial.ProductNew(polys...)
			}

			return a.renderPolynomial(out)
		},
	}

	// StringArray keeps the commas of each value.
	cmd.Flags().StringArrayVar(&raw, "poly", nil, "coefficients of a polynomial (repeatable)")

	return cmd
}

func uniformLength(polys [][]float64) (n int, ok bool) {
	n = len(polys[0])
	for _, p := range polys[1:] {
		if len(p) != n {
			return 0, false
		}
	}
	return n, true
}
