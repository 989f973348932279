package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyops/polynomial"
	"github.com/tuneinsight/polyops/utils"
)

type evalNDResult struct {
	Dims  []int     `json:"dims"`
	Point []float64 `json:"point"`
	Value float64   `json:"value"`
}

// newTensor validates the shape against the coefficients and returns the tensor.
func newTensor(dims []int, coeffs []float64) (*polynomial.Tensor[float64], error) {

	for i, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("--dims[%d] must be non-negative but is %d", i, d)
		}
	}

	if n := utils.Product(dims); n != len(coeffs) {
		return nil, fmt.Errorf("--dims %v needs %d coefficients but %d were given", dims, n, len(coeffs))
	}

	return polynomial.NewTensorFromSlice(coeffs, dims...), nil
}

func (a *App) newEvalNDCommand() *cobra.Command {
	var (
		dims   []int
		coeffs []float64
		x      []float64
	)

	cmd := &cobra.Command{
		Use:   "evalnd",
		Short: "Evaluate a multivariate polynomial",
		Long: `Evaluate the multivariate polynomial whose coefficient tensor has the shape
--dims and the row-major coefficients --coeffs. The coefficient at index
(i0, ..., ik) multiplies x0^i0 * ... * xk^ik.`,
		Example: `  polyops evalnd --dims 3,3 --coeffs 1,2,3,4,5,6,7,8,9 --point 2,3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			t, err := newTensor(dims, coeffs)
			if err != nil {
				return exitWithCode(ExitValidation, err)
			}

			if len(x) != t.Rank() {
				return exitWithCode(ExitValidation, fmt.Errorf("--point has %d coordinates but the polynomial has %d variables", len(x), t.Rank()))
			}

			res := evalNDResult{
				Dims:  dims,
				Point: x,
				Value: polynomial.EvaluateND(t, x),
			}

			tab := table{header: []string{"variable", "value"}}
			for i, xi := range x {
				tab.add("x"+strconv.Itoa(i), formatFloat(xi))
			}
			tab.add("p(x)", formatFloat(res.Value))

			return a.render(tab, res)
		},
	}

	cmd.Flags().IntSliceVar(&dims, "dims", nil, "number of coefficients along each variable")
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients in row-major order")
	cmd.Flags().Float64SliceVar(&x, "point", nil, "evaluation point, one coordinate per variable")

	_ = cmd.MarkFlagRequired("dims")
	_ = cmd.MarkFlagRequired("coeffs")
	_ = cmd.MarkFlagRequired("point")

	return cmd
}
