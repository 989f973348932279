package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyops/polynomial"
	"github.com/tuneinsight/polyops/utils/sampling"
)

type randomResult struct {
	Seed       string  `json:"seed,omitempty"`
	Key        string  `json:"key,omitempty"`
	Polynomial string  `json:"polynomial"`
	Coeffs     []int64 `json:"coeffs"`
}

func (a *App) newRandomCommand() *cobra.Command {
	var (
		degree int
		seed   string
		bound  int64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Sample a random integer polynomial",
		Long: `Sample a polynomial of the given degree with integer coefficients drawn
uniformly in [-bound, bound].

With --seed the coefficients are drawn from a keyed PRNG whose key is derived
from the seed, and the same seed always gives the same polynomial. Without
--seed they are drawn from crypto/rand.`,
		Example: `  polyops random --degree 4 --seed demo --bound 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if degree < 0 {
				return exitWithCode(ExitValidation, fmt.Errorf("--degree must be non-negative but is %d", degree))
			}

			if bound < 0 {
				return exitWithCode(ExitValidation, fmt.Errorf("--bound must be non-negative but is %d", bound))
			}

			res := randomResult{Seed: seed}

			var prng sampling.PRNG
			if seed != "" {
				keyed, err := sampling.NewKeyedPRNGFromLabel(seed)
				if err != nil {
					return err
				}
				res.Key = hex.EncodeToString(keyed.Key())
				prng = keyed
			} else {
				var err error
				if prng, err = sampling.NewPRNG(); err != nil {
					return err
				}
			}

			a.logger.Debug("sampling", "degree", degree, "bound", bound, "key", res.Key)

			res.Coeffs = sampling.NewSampler(prng).Int64s(degree+1, bound)
			res.Polynomial = polynomial.Polynomial[int64](res.Coeffs).String()

			return a.render(coeffsTable(res.Coeffs, formatInt), res)
		},
	}

	cmd.Flags().IntVar(&degree, "degree", 3, "degree of the polynomial")
	cmd.Flags().StringVar(&seed, "seed", "", "seed of the keyed PRNG (default is crypto/rand)")
	cmd.Flags().Int64Var(&bound, "bound", 10, "bound on the absolute value of the coefficients")

	return cmd
}
