// Package plotting renders sampled curves and surfaces to image files.
// The image format is inferred from the file extension (.png, .svg, .pdf, ...).
package plotting

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tuneinsight/polyops/sweep"
)

// Options are the labels and the size of a rendered plot.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns options for a 6x4 inches plot.
func DefaultOptions(title string) Options {
	return Options{
		Title:  title,
		XLabel: "x",
		YLabel: "y",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Series is a named sampled curve.
type Series struct {
	Name  string
	Curve sweep.Curve
}

func newPlot(opts Options) (p *plot.Plot) {
	p = plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	return
}

// NewCurvePlot returns a line plot of the given series.
// Each series gets its own color and a legend entry.
func NewCurvePlot(opts Options, series ...Series) (p *plot.Plot, err error) {

	p = newPlot(opts)
	p.Add(plotter.NewGrid())

	for i, s := range series {

		var line *plotter.Line
		if line, err = plotter.NewLine(s.Curve); err != nil {
			return nil, fmt.Errorf("cannot NewCurvePlot: series %q: %w", s.Name, err)
		}

		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))

		p.Add(line)

		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}

	return
}

// SaveCurves renders the given series to path.
func SaveCurves(path string, opts Options, series ...Series) (err error) {

	var p *plot.Plot
	if p, err = NewCurvePlot(opts, series...); err != nil {
		return
	}

	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("cannot SaveCurves: %w", err)
	}

	return
}

// NewParametricPlot returns a line plot of a family of planar curves, such
// as the output of sweep.SampleParametric or sweep.SamplePolar.
// Both axes span the same range so that the curves keep their shape.
func NewParametricPlot(opts Options, curves ...sweep.Curve) (p *plot.Plot, err error) {

	p = newPlot(opts)
	p.Add(plotter.NewGrid())

	for i, c := range curves {

		var line *plotter.Line
		if line, err = plotter.NewLine(c); err != nil {
			return nil, fmt.Errorf("cannot NewParametricPlot: curve %d: %w", i, err)
		}

		line.Color = plotutil.Color(i)

		p.Add(line)
	}

	if len(curves) == 0 {
		return
	}

	lo, hi := math.Min(p.X.Min, p.Y.Min), math.Max(p.X.Max, p.Y.Max)
	p.X.Min, p.Y.Min = lo, lo
	p.X.Max, p.Y.Max = hi, hi

	return
}

// SaveParametric renders a family of planar curves to path.
func SaveParametric(path string, opts Options, curves ...sweep.Curve) (err error) {

	var p *plot.Plot
	if p, err = NewParametricPlot(opts, curves...); err != nil {
		return
	}

	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("cannot SaveParametric: %w", err)
	}

	return
}

// grid adapts a sweep.Surface to plotter.GridXYZ.
// Columns follow X and rows follow Y.
type grid struct {
	s sweep.Surface
}

func (g grid) Dims() (c, r int) {
	return len(g.s.X), len(g.s.Y)
}

func (g grid) Z(c, r int) float64 {
	return g.s.Z[c][r]
}

func (g grid) X(c int) float64 {
	return g.s.X[c]
}

func (g grid) Y(r int) float64 {
	return g.s.Y[r]
}

// NewSurfacePlot returns a heat map of the sampled surface.
// The surface must be sampled on at least a 2x2 grid.
func NewSurfacePlot(opts Options, s sweep.Surface) (p *plot.Plot, err error) {

	if len(s.X) < 2 || len(s.Y) < 2 {
		return nil, fmt.Errorf("cannot NewSurfacePlot: grid must be at least 2x2 but is %dx%d", len(s.X), len(s.Y))
	}

	if len(s.Z) != len(s.X) {
		return nil, fmt.Errorf("cannot NewSurfacePlot: len(Z)=%d != len(X)=%d", len(s.Z), len(s.X))
	}

	for i := range s.Z {
		if len(s.Z[i]) != len(s.Y) {
			return nil, fmt.Errorf("cannot NewSurfacePlot: len(Z[%d])=%d != len(Y)=%d", i, len(s.Z[i]), len(s.Y))
		}
	}

	p = newPlot(opts)

	h := plotter.NewHeatMap(grid{s: s}, palette.Heat(64, 1))

	// flat surface: widen the range so that the palette scaling stays finite
	if h.Min == h.Max {
		h.Max = h.Min + 1
	}

	p.Add(h)

	return
}

// SaveSurface renders the sampled surface as a heat map to path.
func SaveSurface(path string, opts Options, s sweep.Surface) (err error) {

	var p *plot.Plot
	if p, err = NewSurfacePlot(opts, s); err != nil {
		return
	}

	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("cannot SaveSurface: %w", err)
	}

	return
}
