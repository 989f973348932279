package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyops/polynomial"
	"github.com/tuneinsight/polyops/sweep"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type evalResult struct {
	Polynomial string         `json:"polynomial"`
	Points     []point        `json:"points"`
	Summary    *sweep.Summary `json:"summary,omitempty"`
}

// sweepFlags are the evaluation range flags shared by the commands that sweep.
type sweepFlags struct {
	from  float64
	to    float64
	steps int
}

func (s *sweepFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.from, "from", 0, "start of the sweep range (default from config)")
	cmd.Flags().Float64Var(&s.to, "to", 0, "end of the sweep range, excluded (default from config)")
	cmd.Flags().IntVar(&s.steps, "steps", 0, "number of sweep points (default from config)")
}

// resolveSweep fills the flags that were not set with the configured defaults.
func (a *App) resolveSweep(cmd *cobra.Command, s *sweepFlags) error {
	if !cmd.Flags().Changed("from") {
		s.from = a.cfg.Sweep.From
	}
	if !cmd.Flags().Changed("to") {
		s.to = a.cfg.Sweep.To
	}
	if !cmd.Flags().Changed("steps") {
		s.steps = a.cfg.Sweep.Steps
	}
	if s.steps < 0 {
		return exitWithCode(ExitValidation, fmt.Errorf("--steps must be non-negative but is %d", s.steps))
	}
	return nil
}

func (a *App) newEvalCommand() *cobra.Command {
	var (
		coeffs []float64
		x      []float64
		sw     sweepFlags
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a polynomial",
		Long: `Evaluate the polynomial c0 + c1*x + ... + cn*x^n.

The polynomial is evaluated at the points given with --x, or on the sweep
range [from, to) with a summary of the sampled values.`,
		Example: `  polyops eval --coeffs 1,2,3 --x 2
  polyops eval --coeffs 0,0,1 --from -1 --to 1 --steps 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			p := polynomial.NewPolynomial(coeffs...)
			res := evalResult{Polynomial: p.String()}

			if len(x) > 0 {
				for i, y := range polynomial.EvaluateMany(p, x) {
					res.Points = append(res.Points, point{X: x[i], Y: y})
				}
			} else {

				if err := a.resolveSweep(cmd, &sw); err != nil {
					return err
				}

				a.logger.Debug("sweeping", "from", sw.from, "to", sw.to, "steps", sw.steps)

				curve := sweep.Sample(p.Evaluate, sweep.Linspace(sw.from, sw.to, sw.steps))
				for i := range curve.X {
					res.Points = append(res.Points, point{X: curve.X[i], Y: curve.Y[i]})
				}

				if summary, err := curve.Summarize(); err == nil {
					res.Summary = &summary
				} else {
					a.logger.Warn("no summary", "error", err)
				}
			}

			t := table{header: []string{"x", "p(x)"}}
			for _, pt := range res.Points {
				t.add(formatFloat(pt.X), formatFloat(pt.Y))
			}

			if err := a.render(t, res); err != nil {
				return err
			}

			if res.Summary != nil && !a.jsonOutput {
				s := res.Summary
				fmt.Fprintf(a.stdout, "\nmin=%s max=%s mean=%s median=%s stddev=%s\n",
					formatFloat(s.Min), formatFloat(s.Max), formatFloat(s.Mean), formatFloat(s.Median), formatFloat(s.StdDev))
			}

			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients in ascending degree order")
	cmd.Flags().Float64SliceVar(&x, "x", nil, "evaluation points")
	sw.register(cmd)

	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}
