// Package sweep samples functions of one or two variables over linearly
// spaced points and summarises the sampled values.
package sweep

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/polyops/utils"
)

// Linspace returns n points evenly spaced over the half-open interval [a, b):
// a, a+h, ..., a+(n-1)h with h = (b-a)/n.
func Linspace(a, b float64, n int) (x []float64) {

	if n < 0 {
		panic(fmt.Errorf("cannot Linspace: n must be non-negative but is %d", n))
	}

	h := (b - a) / float64(n)

	return utils.Fill(n, func(i int) float64 { return a + float64(i)*h })
}

// Curve is a function of one variable sampled at the points X.
type Curve struct {
	X []float64
	Y []float64
}

// Sample evaluates f at every point of x.
func Sample(f func(x float64) float64, x []float64) (c Curve) {
	c.X = utils.Resize(x, len(x), nil)
	c.Y = utils.Map(x, f)
	return
}

// Len returns the number of samples of the curve.
func (c Curve) Len() int {
	return len(c.X)
}

// XY returns the i-th sample.
func (c Curve) XY(i int) (x, y float64) {
	return c.X[i], c.Y[i]
}

// SampleParametric evaluates the planar map f on the grid u × v and returns
// one curve per point of u, traced along v: the j-th sample of the i-th curve
// is f(u[i], v[j]).
func SampleParametric(f func(u, v float64) (x, y float64), u, v []float64) (curves []Curve) {
	return utils.Map(u, func(u float64) (c Curve) {
		c.X = make([]float64, len(v))
		c.Y = make([]float64, len(v))
		for j := range v {
			c.X[j], c.Y[j] = f(u, v[j])
		}
		return
	})
}

// SamplePolar evaluates the radius f on the grid r × theta and returns one
// curve per point of r, traced along theta, in cartesian coordinates.
func SamplePolar(f func(r, theta float64) float64, r, theta []float64) (curves []Curve) {
	curves = SampleParametric(func(r, theta float64) (float64, float64) { return theta, f(r, theta) }, r, theta)
	for i := range curves {
		curves[i] = curves[i].Polar()
	}
	return
}

// Polar reads every sample of c as an (angle, radius) pair and returns the
// curve of the corresponding cartesian points.
func (c Curve) Polar() (p Curve) {
	p.X = make([]float64, len(c.X))
	p.Y = make([]float64, len(c.X))
	for i := range c.X {
		sin, cos := math.Sincos(c.X[i])
		p.X[i], p.Y[i] = c.Y[i]*cos, c.Y[i]*sin
	}
	return
}

// Summary holds summary statistics of sampled values.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

// Summarize returns the summary statistics of the sampled values of the curve.
// It returns an error if the curve is empty.
func (c Curve) Summarize() (s Summary, err error) {
	return Summarize(c.Y)
}

// Summarize returns the summary statistics of values.
// It returns an error if values is empty.
func Summarize(values []float64) (s Summary, err error) {

	data := stats.Float64Data(values)

	s.Count = data.Len()

	if s.Min, err = data.Min(); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.Max, err = data.Max(); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.Mean, err = data.Mean(); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.Median, err = data.Median(); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, fmt.Errorf("cannot Summarize: %w", err)
	}

	return
}

// Surface is a function of two variables sampled on the grid X × Y.
// Z[i][j] is the value at (X[i], Y[j]).
type Surface struct {
	X []float64
	Y []float64
	Z [][]float64
}

// SampleGrid evaluates f on every point of the grid x × y.
func SampleGrid(f func(x, y float64) float64, x, y []float64) (s Surface) {

	s.X = make([]float64, len(x))
	s.Y = make([]float64, len(y))
	copy(s.X, x)
	copy(s.Y, y)

	s.Z = utils.Map(x, func(x float64) []float64 {
		return utils.Map(y, func(y float64) float64 { return f(x, y) })
	})

	return
}

// Values returns the sampled values of the surface in row-major order.
func (s Surface) Values() (v []float64) {
	v = make([]float64, 0, len(s.X)*len(s.Y))
	for i := range s.Z {
		v = append(v, s.Z[i]...)
	}
	return
}
