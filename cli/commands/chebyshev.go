package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyops/polynomial"
	"github.com/tuneinsight/polyops/utils"
)

type chebyshevPoint struct {
	X      float64 `json:"x"`
	Direct float64 `json:"direct"`
	Coeffs float64 `json:"coeffs"`
}

type chebyshevResult struct {
	Kind       int              `json:"kind"`
	Order      int              `json:"order"`
	Polynomial string           `json:"polynomial"`
	Coeffs     []int64          `json:"coeffs"`
	Points     []chebyshevPoint `json:"points,omitempty"`
}

func (a *App) newChebyshevCommand() *cobra.Command {
	var (
		kind   int
		order  int
		length int
		x      []float64
	)

	cmd := &cobra.Command{
		Use:   "chebyshev",
		Short: "Generate Chebyshev polynomial coefficients",
		Long: `Generate the exact integer coefficients of the Chebyshev polynomial of the
given kind and order, with P0 = 1, P1 = kind*x and Pn = 2x*Pn-1 - Pn-2.
Kind 1 gives the polynomials of the first kind, kind 2 those of the second.

With --length the coefficients are written to a fixed-length buffer and the
command fails if the order does not fit. With --x the polynomial is also
evaluated directly by the recurrence and through its coefficients.`,
		Example: `  polyops chebyshev --order 5
  polyops chebyshev --kind 2 --order 4 --x 0.5,1
  polyops chebyshev --order 13 --length 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if !cmd.Flags().Changed("kind") {
				kind = a.cfg.Kind
			}

			if kind < 0 || order < 0 || length < 0 {
				return exitWithCode(ExitValidation, fmt.Errorf("kind, order and length must be non-negative but are %d, %d and %d", kind, order, length))
			}

			c := polynomial.NewChebyshev(kind, order)

			var coeffs []int64
			if length > 0 {
				var err error
				if coeffs, err = polynomial.TryChebyshevCoeffs[int64](c, length); err != nil {
					var capErr *polynomial.CapacityError
					if errors.As(err, &capErr) {
						a.logger.Debug("capacity exceeded", "order", capErr.Chebyshev.Order, "length", capErr.Length)
						return exitWithCode(ExitValidation, err)
					}
					return err
				}
			} else {
				coeffs = polynomial.ChebyshevCoeffs[int64](c)
			}

			if overflows(c) {
				a.logger.Warn("coefficients overflow int64 and are reduced modulo 2^64", "kind", kind, "order", order)
			}

			res := chebyshevResult{
				Kind:       kind,
				Order:      order,
				Polynomial: polynomial.Polynomial[int64](coeffs).String(),
				Coeffs:     coeffs,
			}

			t := coeffsTable(coeffs, formatInt)

			if len(x) > 0 {

				ev := polynomial.Promote[int64, float64]{}

				t = table{header: []string{"x", "direct", "coeffs"}}
				for _, xi := range x {
					pt := chebyshevPoint{
						X:      xi,
						Direct: polynomial.EvaluateChebyshev(c, xi),
						Coeffs: polynomial.EvaluateWith[int64, float64, float64](ev, coeffs, xi),
					}
					res.Points = append(res.Points, pt)
					t.add(formatFloat(pt.X), formatFloat(pt.Direct), formatFloat(pt.Coeffs))
				}
			}

			return a.render(t, res)
		},
	}

	cmd.Flags().IntVar(&kind, "kind", 1, "Chebyshev kind (default from config)")
	cmd.Flags().IntVar(&order, "order", 0, "order of the polynomial")
	cmd.Flags().IntVar(&length, "length", 0, "fixed number of coefficients (0 for order+1)")
	cmd.Flags().Float64SliceVar(&x, "x", nil, "evaluation points")

	_ = cmd.MarkFlagRequired("order")

	return cmd
}

// overflows reports whether a coefficient of c exceeds the int64 range.
func overflows(c polynomial.Chebyshev) bool {
	m, _ := utils.MaxSlice(utils.Map(polynomial.ChebyshevCoeffs[float64](c), math.Abs))
	return m >= math.MaxInt64
}
