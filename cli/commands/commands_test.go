package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyops/cli/config"
	"github.com/tuneinsight/polyops/polynomial"
)

// run executes the command line args on a fresh App with the given config
// and returns what was written on stdout and stderr.
func run(t *testing.T, cfg *config.Config, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}

	var out, errOut bytes.Buffer
	a := NewApp(
		WithIO(strings.NewReader(""), &out, &errOut),
		WithConfigLoader(func(string) (*config.Config, error) { return cfg, nil }),
	)
	a.root.SetArgs(args)
	err = a.Execute()
	return out.String(), errOut.String(), err
}

func runJSON(t *testing.T, cfg *config.Config, v any, args ...string) {
	t.Helper()
	stdout, _, err := run(t, cfg, append(args, "--json")...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(stdout), v), stdout)
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var ec *exitError
	require.True(t, errors.As(err, &ec), "%v should carry an exit code", err)
	require.Equal(t, code, ec.ExitCode())
}

func TestEval(t *testing.T) {

	t.Run("Points", func(t *testing.T) {
		stdout, _, err := run(t, nil, "eval", "--coeffs", "1,2,3", "--x", "2,-1")
		require.NoError(t, err)
		require.Equal(t, "x\tp(x)\n2\t17\n-1\t2\n", stdout)
	})

	t.Run("Sweep", func(t *testing.T) {
		var res evalResult
		runJSON(t, nil, &res, "eval", "--coeffs", "0,1", "--from", "0", "--to", "1", "--steps", "4")
		require.Equal(t, "1x", res.Polynomial)
		require.Equal(t, []point{{0, 0}, {0.25, 0.25}, {0.5, 0.5}, {0.75, 0.75}}, res.Points)
		require.NotNil(t, res.Summary)
		require.Equal(t, 4, res.Summary.Count)
		require.Equal(t, 0.375, res.Summary.Mean)
		require.Equal(t, 0.75, res.Summary.Max)
	})

	t.Run("SweepFromConfig", func(t *testing.T) {
		cfg := config.Default()
		cfg.Sweep = config.SweepConfig{From: -2, To: 2, Steps: 8}

		var res evalResult
		runJSON(t, cfg, &res, "eval", "--coeffs", "1")
		require.Len(t, res.Points, 8)
		require.Equal(t, -2.0, res.Points[0].X)
		require.Equal(t, 0.0, res.Summary.StdDev)
	})

	t.Run("SweepSummary", func(t *testing.T) {
		stdout, _, err := run(t, nil, "eval", "--coeffs", "0,0,1", "--steps", "2")
		require.NoError(t, err)
		require.Contains(t, stdout, "min=0 max=1 mean=0.5")
	})

	t.Run("MissingCoeffs", func(t *testing.T) {
		_, _, err := run(t, nil, "eval", "--x", "1")
		require.Error(t, err)
	})
}

func TestMul(t *testing.T) {

	stdout, _, err := run(t, nil, "mul", "--a", "1,1", "--b", "1,-1")
	require.NoError(t, err)
	require.Equal(t, "degree\tcoeff\n0\t1\n1\t0\n2\t-1\n", stdout)

	var res polyResult
	runJSON(t, nil, &res, "mul", "--a", "1,2", "--b", "0,1")
	require.Equal(t, []float64{0, 1, 2}, res.Coeffs)
	require.Equal(t, "1x + 2x^2", res.Polynomial)
}

func TestProduct(t *testing.T) {

	t.Run("Uniform", func(t *testing.T) {
		var res polyResult
		runJSON(t, nil, &res, "product", "--poly", "1,1", "--poly", "1,1", "--poly", "1,1")
		require.Equal(t, []float64{1, 3, 3, 1}, res.Coeffs)
		require.Equal(t, "1 + 3x + 3x^2 + 1x^3", res.Polynomial)
	})

	t.Run("Heterogeneous", func(t *testing.T) {
		var res polyResult
		runJSON(t, nil, &res, "product", "--poly", "1,1", "--poly", "-1,0,2", "--poly", "0.5")
		require.Equal(t, []float64{-0.5, -0.5, 1, 1}, res.Coeffs)
	})

	t.Run("Empty", func(t *testing.T) {
		var res polyResult
		runJSON(t, nil, &res, "product", "--poly", "1,1", "--poly", "")
		require.Equal(t, []float64{}, res.Coeffs)
		require.Equal(t, "0", res.Polynomial)
	})

	t.Run("NoPolynomial", func(t *testing.T) {
		_, _, err := run(t, nil, "product")
		requireExitCode(t, err, ExitValidation)
	})

	t.Run("InvalidCoefficient", func(t *testing.T) {
		_, _, err := run(t, nil, "product", "--poly", "1,a")
		requireExitCode(t, err, ExitValidation)
	})
}

func TestChebyshevCommand(t *testing.T) {

	t.Run("Coefficients", func(t *testing.T) {
		var res chebyshevResult
		runJSON(t, nil, &res, "chebyshev", "--order", "5")
		require.Equal(t, 1, res.Kind)
		require.Equal(t, []int64{0, 5, 0, -20, 0, 16}, res.Coeffs)
	})

	t.Run("KindFromConfig", func(t *testing.T) {
		cfg := config.Default()
		cfg.Kind = 2

		var res chebyshevResult
		runJSON(t, cfg, &res, "chebyshev", "--order", "4")
		require.Equal(t, []int64{1, 0, -12, 0, 16}, res.Coeffs)

		runJSON(t, cfg, &res, "chebyshev", "--order", "2", "--kind", "1")
		require.Equal(t, []int64{-1, 0, 2}, res.Coeffs)
	})

	t.Run("Length", func(t *testing.T) {
		var res chebyshevResult
		runJSON(t, nil, &res, "chebyshev", "--order", "2", "--length", "5")
		require.Equal(t, []int64{-1, 0, 2, 0, 0}, res.Coeffs)
	})

	t.Run("CapacityExceeded", func(t *testing.T) {
		_, _, err := run(t, nil, "chebyshev", "--order", "13", "--length", "8")
		requireExitCode(t, err, ExitValidation)
		require.ErrorIs(t, err, polynomial.ErrCapacityExceeded)

		var capErr *polynomial.CapacityError
		require.ErrorAs(t, err, &capErr)
		require.Equal(t, 13, capErr.Chebyshev.Order)
		require.Equal(t, 8, capErr.Length)
	})

	t.Run("Points", func(t *testing.T) {
		var res chebyshevResult
		runJSON(t, nil, &res, "chebyshev", "--kind", "2", "--order", "4", "--x", "0.5,1")
		require.Len(t, res.Points, 2)
		for _, pt := range res.Points {
			require.InDelta(t, pt.Direct, pt.Coeffs, 1e-12)
		}
		require.InDelta(t, 5.0, res.Points[1].Direct, 1e-12)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, stderr, err := run(t, nil, "chebyshev", "--order", "80")
		require.NoError(t, err)
		require.Contains(t, stderr, "overflow")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, _, err := run(t, nil, "chebyshev", "--order", "-1")
		requireExitCode(t, err, ExitValidation)
	})
}

func TestEvalND(t *testing.T) {

	var res evalNDResult
	runJSON(t, nil, &res, "evalnd", "--dims", "3,3", "--coeffs", "1,2,3,4,5,6,7,8,9", "--point", "2,3")
	require.Equal(t, 628.0, res.Value)

	stdout, _, err := run(t, nil, "evalnd", "--dims", "2", "--coeffs", "1,1", "--point", "4")
	require.NoError(t, err)
	require.Equal(t, "variable\tvalue\nx0\t4\np(x)\t5\n", stdout)

	_, _, err = run(t, nil, "evalnd", "--dims", "2,2", "--coeffs", "1,2,3", "--point", "1,1")
	requireExitCode(t, err, ExitValidation)

	_, _, err = run(t, nil, "evalnd", "--dims", "2,2", "--coeffs", "1,2,3,4", "--point", "1")
	requireExitCode(t, err, ExitValidation)
}

func TestRandom(t *testing.T) {

	var a, b randomResult
	runJSON(t, nil, &a, "random", "--degree", "6", "--seed", "demo", "--bound", "5")
	runJSON(t, nil, &b, "random", "--degree", "6", "--seed", "demo", "--bound", "5")

	require.Equal(t, a, b)
	require.Len(t, a.Coeffs, 7)
	require.Len(t, a.Key, 64)
	for _, c := range a.Coeffs {
		require.LessOrEqual(t, c, int64(5))
		require.GreaterOrEqual(t, c, int64(-5))
	}

	var c randomResult
	runJSON(t, nil, &c, "random", "--degree", "0", "--bound", "0")
	require.Equal(t, []int64{0}, c.Coeffs)
	require.Empty(t, c.Key)

	_, _, err := run(t, nil, "random", "--degree", "-1")
	requireExitCode(t, err, ExitValidation)
}

func TestPlot(t *testing.T) {

	dir := t.TempDir()

	cfg := config.Default()
	cfg.Plot.Dir = dir
	cfg.Sweep.Steps = 32

	testCases := []struct {
		name string
		args []string
		path string
	}{
		{"Chebyshev", []string{"plot", "chebyshev", "--max-order", "3"}, filepath.Join(dir, "chebyshev.png")},
		{"Poly", []string{"plot", "poly", "--coeffs", "0,-1,0,1", "--out", filepath.Join(dir, "sub", "cubic.svg")}, filepath.Join(dir, "sub", "cubic.svg")},
		{"Surface", []string{"plot", "surface", "--dims", "3,3", "--coeffs", "0,0,1,0,0,0,-1,0,0", "--steps", "8"}, filepath.Join(dir, "surface.png")},
		{"Parametric", []string{"plot", "parametric", "--dims", "2,2", "--x-coeffs", "0,1,0,1", "--y-coeffs", "0,-1,1,-3"}, filepath.Join(dir, "parametric.png")},
		{"ParametricPolar", []string{"plot", "parametric", "--polar", "--dims", "2,2", "--x-coeffs", "0,1,0.1,0", "--y-coeffs", "0,-1.5,1,0.1", "--from", "2", "--to", "5", "--out", filepath.Join(dir, "rad.svg")}, filepath.Join(dir, "rad.svg")},
		{"Polar", []string{"plot", "polar", "--dims", "2,2", "--coeffs", "0,0,1,0.1", "--from", "1", "--to", "2", "--curves", "4"}, filepath.Join(dir, "polar.png")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var res plotResult
			runJSON(t, cfg, &res, tc.args...)
			require.Equal(t, tc.path, res.Path)

			info, err := os.Stat(tc.path)
			require.NoError(t, err)
			require.Greater(t, info.Size(), int64(0))
		})
	}

	t.Run("InvalidSurface", func(t *testing.T) {
		_, _, err := run(t, cfg, "plot", "surface", "--dims", "3", "--coeffs", "1,2,3")
		requireExitCode(t, err, ExitValidation)
	})

	t.Run("Curves", func(t *testing.T) {
		var res plotResult
		runJSON(t, cfg, &res, "plot", "polar", "--dims", "1,1", "--coeffs", "1", "--curves", "3", "--steps", "16")
		require.Equal(t, 3, res.Series)
		require.Equal(t, 48, res.Points)
	})

	t.Run("InvalidParametric", func(t *testing.T) {
		_, _, err := run(t, cfg, "plot", "parametric", "--dims", "2,2", "--x-coeffs", "1,2,3,4", "--y-coeffs", "1,2")
		requireExitCode(t, err, ExitValidation)

		_, _, err = run(t, cfg, "plot", "polar", "--dims", "1,1", "--coeffs", "1", "--curves", "0")
		requireExitCode(t, err, ExitValidation)
	})
}

func TestVersion(t *testing.T) {

	stdout, _, err := run(t, nil, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "polyops "+Version))

	var info versionInfo
	runJSON(t, nil, &info, "version")
	require.Equal(t, Version, info.Version)
	require.Equal(t, Commit, info.Commit)
	require.NotEmpty(t, info.GoVersion)
}

func TestConfigError(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(
		WithIO(nil, &out, &out),
		WithConfigLoader(func(string) (*config.Config, error) { return nil, errors.New("broken config") }),
	)
	a.root.SetArgs([]string{"version"})
	err := a.Execute()
	requireExitCode(t, err, ExitValidation)
	require.ErrorContains(t, err, "broken config")
}

func TestParseFloats(t *testing.T) {

	testCases := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"1,2,3", []float64{1, 2, 3}, false},
		{" 1 , -2.5 ", []float64{1, -2.5}, false},
		{"", []float64{}, false},
		{"1,,2", nil, true},
		{"x", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := parseFloats(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}
