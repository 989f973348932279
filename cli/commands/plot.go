package commands

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/tuneinsight/polyops/plotting"
	"github.com/tuneinsight/polyops/polynomial"
	"github.com/tuneinsight/polyops/sweep"
)

type plotResult struct {
	Path   string `json:"path"`
	Series int    `json:"series"`
	Points int    `json:"points"`
}

// plotFlags are the flags shared by the plot subcommands.
type plotFlags struct {
	sweepFlags
	out string
}

func (p *plotFlags) register(cmd *cobra.Command) {
	p.sweepFlags.register(cmd)
	cmd.Flags().StringVar(&p.out, "out", "", "output file, the format follows the extension (default <plot.dir>/<name>.png)")
}

func (a *App) plotOptions(title string) plotting.Options {
	opts := plotting.DefaultOptions(title)
	opts.Width = vg.Length(a.cfg.Plot.Width) * vg.Inch
	opts.Height = vg.Length(a.cfg.Plot.Height) * vg.Inch
	return opts
}

// resolvePlot resolves the sweep range and the output path of a plot.
func (a *App) resolvePlot(cmd *cobra.Command, p *plotFlags, name string) error {

	if err := a.resolveSweep(cmd, &p.sweepFlags); err != nil {
		return err
	}

	if p.out == "" {
		p.out = filepath.Join(a.cfg.Plot.Dir, name+".png")
	}

	if dir := filepath.Dir(p.out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exitWithCode(ExitIO, err)
		}
	}

	return nil
}

func (a *App) newPlotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot polynomials to an image file",
	}

	cmd.AddCommand(a.newPlotChebyshevCommand())
	cmd.AddCommand(a.newPlotPolyCommand())
	cmd.AddCommand(a.newPlotSurfaceCommand())
	cmd.AddCommand(a.newPlotParametricCommand())
	cmd.AddCommand(a.newPlotPolarCommand())

	return cmd
}

func (a *App) newPlotChebyshevCommand() *cobra.Command {
	var (
		pf       plotFlags
		kind     int
		maxOrder int
	)

	cmd := &cobra.Command{
		Use:     "chebyshev",
		Short:   "Plot the Chebyshev polynomials of orders 0 to --max-order",
		Example: `  polyops plot chebyshev --kind 2 --max-order 5 --out chebyshev.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if !cmd.Flags().Changed("kind") {
				kind = a.cfg.Kind
			}

			if kind < 0 || maxOrder < 0 {
				return exitWithCode(ExitValidation, fmt.Errorf("kind and max-order must be non-negative but are %d and %d", kind, maxOrder))
			}

			if err := a.resolvePlot(cmd, &pf, "chebyshev"); err != nil {
				return err
			}

			x := sweep.Linspace(pf.from, pf.to, pf.steps)

			series := make([]plotting.Series, maxOrder+1)
			for order := range series {
				c := polynomial.NewChebyshev(kind, order)
				series[order] = plotting.Series{
					Name:  fmt.Sprintf("P%d", order),
					Curve: sweep.Sample(func(x float64) float64 { return polynomial.EvaluateChebyshev(c, x) }, x),
				}
			}

			title := fmt.Sprintf("Chebyshev polynomials of kind %d", kind)
			if err := plotting.SaveCurves(pf.out, a.plotOptions(title), series...); err != nil {
				return exitWithCode(ExitIO, err)
			}

			return a.renderPlot(plotResult{Path: pf.out, Series: len(series), Points: len(x)})
		},
	}

	pf.register(cmd)
	cmd.Flags().IntVar(&kind, "kind", 1, "Chebyshev kind (default from config)")
	cmd.Flags().IntVar(&maxOrder, "max-order", 4, "largest plotted order")

	return cmd
}

func (a *App) newPlotPolyCommand() *cobra.Command {
	var (
		pf     plotFlags
		coeffs []float64
	)

	cmd := &cobra.Command{
		Use:     "poly",
		Short:   "Plot a polynomial",
		Example: `  polyops plot poly --coeffs 0,-1,0,1 --from -2 --to 2 --steps 128`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if err := a.resolvePlot(cmd, &pf, "poly"); err != nil {
				return err
			}

			p := polynomial.NewPolynomial(coeffs...)
			curve := sweep.Sample(p.Evaluate, sweep.Linspace(pf.from, pf.to, pf.steps))

			if err := plotting.SaveCurves(pf.out, a.plotOptions(p.String()), plotting.Series{Curve: curve}); err != nil {
				return exitWithCode(ExitIO, err)
			}

			return a.renderPlot(plotResult{Path: pf.out, Series: 1, Points: curve.Len()})
		},
	}

	pf.register(cmd)
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients in ascending degree order")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}

func (a *App) newPlotSurfaceCommand() *cobra.Command {
	var (
		pf     plotFlags
		dims   []int
		coeffs []float64
	)

	cmd := &cobra.Command{
		Use:     "surface",
		Short:   "Plot a polynomial of two variables as a heat map",
		Example: `  polyops plot surface --dims 3,3 --coeffs 0,0,1,0,0,0,-1,0,0 --out saddle.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if len(dims) != 2 {
				return exitWithCode(ExitValidation, fmt.Errorf("--dims must have 2 entries but has %d", len(dims)))
			}

			t, err := newTensor(dims, coeffs)
			if err != nil {
				return exitWithCode(ExitValidation, err)
			}

			if err := a.resolvePlot(cmd, &pf, "surface"); err != nil {
				return err
			}

			if pf.steps < 2 {
				return exitWithCode(ExitValidation, fmt.Errorf("--steps must be at least 2 for a surface but is %d", pf.steps))
			}

			x := sweep.Linspace(pf.from, pf.to, pf.steps)
			xy := make([]float64, 2)
			s := sweep.SampleGrid(func(x, y float64) float64 {
				xy[0], xy[1] = x, y
				return polynomial.EvaluateND(t, xy)
			}, x, x)

			if err := plotting.SaveSurface(pf.out, a.plotOptions("p(x, y)"), s); err != nil {
				return exitWithCode(ExitIO, err)
			}

			return a.renderPlot(plotResult{Path: pf.out, Series: 1, Points: len(x) * len(x)})
		},
	}

	pf.register(cmd)
	cmd.Flags().IntSliceVar(&dims, "dims", nil, "number of coefficients along x and y")
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients in row-major order")
	_ = cmd.MarkFlagRequired("dims")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}

// planeFlags select a polynomial of two variables (u, v) sampled as a family
// of curves: one per value of u, traced along v.
type planeFlags struct {
	plotFlags
	dims   []int
	curves int
}

func (p *planeFlags) register(cmd *cobra.Command) {
	p.plotFlags.register(cmd)
	cmd.Flags().IntSliceVar(&p.dims, "dims", nil, "number of coefficients along u and v")
	cmd.Flags().IntVar(&p.curves, "curves", 8, "number of curves, one per value of u in [from, to)")
	_ = cmd.MarkFlagRequired("dims")
}

// resolvePlane validates the flags and builds the tensors of coeffs.
func (a *App) resolvePlane(cmd *cobra.Command, p *planeFlags, name string, coeffs ...[]float64) (tensors []*polynomial.Tensor[float64], err error) {

	if len(p.dims) != 2 {
		return nil, exitWithCode(ExitValidation, fmt.Errorf("--dims must have 2 entries but has %d", len(p.dims)))
	}

	if p.curves < 1 {
		return nil, exitWithCode(ExitValidation, fmt.Errorf("--curves must be positive but is %d", p.curves))
	}

	tensors = make([]*polynomial.Tensor[float64], len(coeffs))
	for i := range coeffs {
		if tensors[i], err = newTensor(p.dims, coeffs[i]); err != nil {
			return nil, exitWithCode(ExitValidation, err)
		}
	}

	if err = a.resolvePlot(cmd, &p.plotFlags, name); err != nil {
		return nil, err
	}

	if p.steps < 2 {
		return nil, exitWithCode(ExitValidation, fmt.Errorf("--steps must be at least 2 for a curve but is %d", p.steps))
	}

	return
}

// evaluator returns a function evaluating t at (u, v).
func evaluator(t *polynomial.Tensor[float64]) func(u, v float64) float64 {
	uv := make([]float64, 2)
	return func(u, v float64) float64 {
		uv[0], uv[1] = u, v
		return polynomial.EvaluateND(t, uv)
	}
}

func (a *App) newPlotParametricCommand() *cobra.Command {
	var (
		pf      planeFlags
		xCoeffs []float64
		yCoeffs []float64
		polar   bool
	)

	cmd := &cobra.Command{
		Use:   "parametric",
		Short: "Plot the planar map (p0(u, v), p1(u, v)) as a family of curves",
		Long: `Plot the planar map (p0(u, v), p1(u, v)) of two polynomials of two variables
sharing --dims. Each curve holds u fixed and traces v over [from, to).

With --polar, v is an angle traced over [0, 2pi) and (p0, p1) is read as a
(radius, angle) pair.`,
		Example: `  polyops plot parametric --dims 2,2 --x-coeffs 0,1,0,1 --y-coeffs 0,-1,1,-3
  polyops plot parametric --polar --dims 2,2 --x-coeffs 0,1,0.1,0 --y-coeffs 0,-1.5,1,0.1 --from 2 --to 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			tensors, err := a.resolvePlane(cmd, &pf, "parametric", xCoeffs, yCoeffs)
			if err != nil {
				return err
			}

			p0, p1 := evaluator(tensors[0]), evaluator(tensors[1])
			f := func(u, v float64) (float64, float64) { return p0(u, v), p1(u, v) }

			u := sweep.Linspace(pf.from, pf.to, pf.curves)

			var curves []sweep.Curve
			if polar {
				curves = sweep.SampleParametric(f, u, sweep.Linspace(0, 2*math.Pi, pf.steps))
				for i, c := range curves {
					curves[i] = sweep.Curve{X: c.Y, Y: c.X}.Polar()
				}
			} else {
				curves = sweep.SampleParametric(f, u, sweep.Linspace(pf.from, pf.to, pf.steps))
			}

			if err := plotting.SaveParametric(pf.out, a.plotOptions("(p0(u, v), p1(u, v))"), curves...); err != nil {
				return exitWithCode(ExitIO, err)
			}

			return a.renderPlot(plotResult{Path: pf.out, Series: len(curves), Points: len(curves) * pf.steps})
		},
	}

	pf.register(cmd)
	cmd.Flags().Float64SliceVar(&xCoeffs, "x-coeffs", nil, "coefficients of p0 in row-major order")
	cmd.Flags().Float64SliceVar(&yCoeffs, "y-coeffs", nil, "coefficients of p1 in row-major order")
	cmd.Flags().BoolVar(&polar, "polar", false, "read (p0, p1) as polar coordinates and trace v as an angle")
	_ = cmd.MarkFlagRequired("x-coeffs")
	_ = cmd.MarkFlagRequired("y-coeffs")

	return cmd
}

func (a *App) newPlotPolarCommand() *cobra.Command {
	var (
		pf     planeFlags
		coeffs []float64
	)

	cmd := &cobra.Command{
		Use:   "polar",
		Short: "Plot the polar curves of radius p(r, theta)",
		Long: `Plot the polar curves of radius p(r, theta) of a polynomial of two variables.
Each curve holds r fixed in [from, to) and traces theta over [0, 2pi).`,
		Example: `  polyops plot polar --dims 2,2 --coeffs 0,0,1,0.1 --from 1 --to 2 --curves 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			tensors, err := a.resolvePlane(cmd, &pf, "polar", coeffs)
			if err != nil {
				return err
			}

			curves := sweep.SamplePolar(evaluator(tensors[0]), sweep.Linspace(pf.from, pf.to, pf.curves), sweep.Linspace(0, 2*math.Pi, pf.steps))

			if err := plotting.SaveParametric(pf.out, a.plotOptions("p(r, theta)"), curves...); err != nil {
				return exitWithCode(ExitIO, err)
			}

			return a.renderPlot(plotResult{Path: pf.out, Series: len(curves), Points: len(curves) * pf.steps})
		},
	}

	pf.register(cmd)
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients in row-major order")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}

func (a *App) renderPlot(res plotResult) error {
	a.logger.Info("saved plot", "path", res.Path)
	t := table{header: []string{"path", "series", "points"}}
	t.add(res.Path, fmt.Sprint(res.Series), fmt.Sprint(res.Points))
	return a.render(t, res)
}
