package polynomial

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyops/utils/sampling"
)

func newTestSampler(t testing.TB, label string) *sampling.Sampler {
	prng, err := sampling.NewKeyedPRNGFromLabel(label)
	require.NoError(t, err)
	return sampling.NewSampler(prng)
}

// referenceEvaluate computes sum p[i] * x^i with an explicit power loop.
func referenceEvaluate(p []int64, x int64) (y int64) {
	for i, c := range p {
		xi := int64(1)
		for j := 0; j < i; j++ {
			xi *= x
		}
		y += c * xi
	}
	return
}

// referenceMul computes the convolution of a and b with the schoolbook
// out[i+j] += a[i]*b[j] loop.
func referenceMul(a, b []int64) (out []int64) {
	out = make([]int64, ProductLength(len(a), len(b)))
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}
	return
}

func bigFuncs() Funcs[*big.Int, *big.Int, *big.Int] {
	return Funcs[*big.Int, *big.Int, *big.Int]{
		MulFunc: func(c, x *big.Int) *big.Int {
			return new(big.Int).Mul(c, x)
		},
		AddFunc: func(a, b *big.Int) *big.Int {
			if a == nil {
				return new(big.Int).Set(b)
			}
			return new(big.Int).Add(a, b)
		},
		LiftFunc: func(c *big.Int) *big.Int {
			return new(big.Int).Set(c)
		},
		MulPointFunc: func(a, b *big.Int) *big.Int {
			return new(big.Int).Mul(a, b)
		},
	}
}

func toBig(v []int64) (b []*big.Int) {
	b = make([]*big.Int, len(v))
	for i := range v {
		b[i] = big.NewInt(v[i])
	}
	return
}

func TestEvaluate(t *testing.T) {

	t.Run("Example", func(t *testing.T) {
		p := []int64{1, 2, 3}
		for x := int64(0); x < 256; x++ {
			require.Equal(t, 1+x*2+x*x*3, Evaluate(p, x))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, int64(0), Evaluate([]int64{}, 5))
		require.Equal(t, 0.0, Evaluate[float64](nil, 1.5))
		require.Equal(t, 0.0, EvaluateWith[int64, float64, float64](Promote[int64, float64]{}, nil, 2))
	})

	t.Run("Constant", func(t *testing.T) {
		require.Equal(t, int64(7), Evaluate([]int64{7}, 1<<40))
	})

	sampler := newTestSampler(t, "TestEvaluate")

	for _, n := range []int{1, 2, 5, 8} {
		t.Run(fmt.Sprintf("Reference/N=%d", n), func(t *testing.T) {
			p := sampler.Int64s(n, 1000)
			for x := int64(-128); x < 128; x++ {
				require.Equal(t, referenceEvaluate(p, x), Evaluate(p, x))
				require.Equal(t, referenceEvaluate(p, x), EvaluateWith[int64, int64, int64](Native[int64]{}, p, x))
			}
		})
	}

	t.Run("Promote", func(t *testing.T) {
		p := []int64{3, -1, 0, 2}
		pf := []float64{3, -1, 0, 2}
		for _, x := range []float64{-2.5, -1, 0, 0.25, 1.5, 3} {
			require.Equal(t, Evaluate(pf, x), EvaluateWith[int64, float64, float64](Promote[int64, float64]{}, p, x))
		}
	})

	t.Run("Complex", func(t *testing.T) {
		// 1 + x^2 vanishes at x = i
		require.Equal(t, complex128(0), Evaluate([]complex128{1, 0, 1}, 1i))
	})

	t.Run("BigInt", func(t *testing.T) {
		p := sampler.Int64s(6, 100)
		for x := int64(-20); x <= 20; x++ {
			y := EvaluateWith[*big.Int, *big.Int, *big.Int](bigFuncs(), toBig(p), big.NewInt(x))
			require.Zero(t, y.Cmp(big.NewInt(Evaluate(p, x))))
		}
	})

	t.Run("EvaluateMany", func(t *testing.T) {
		require.Equal(t, []int64{1, 3, 7}, EvaluateMany([]int64{1, 1, 1}, []int64{0, 1, 2}))
	})
}

func TestPolynomial(t *testing.T) {

	p := NewPolynomial[int64](1, 1)
	q := NewPolynomial[int64](1, -1)

	t.Run("Degree", func(t *testing.T) {
		require.Equal(t, 1, p.Degree())
		require.Equal(t, -1, Polynomial[int64]{}.Degree())
	})

	t.Run("Mul", func(t *testing.T) {
		require.True(t, p.Mul(q).Equal(NewPolynomial[int64](1, 0, -1)))
		for x := int64(-10); x <= 10; x++ {
			require.Equal(t, p.Evaluate(x)*q.Evaluate(x), p.Mul(q).Evaluate(x))
		}
	})

	t.Run("MulEach", func(t *testing.T) {
		require.True(t, p.MulEach(q).Equal(NewPolynomial[int64](1, -1)))
		require.Panics(t, func() { p.MulEach(NewPolynomial[int64](1)) })
	})

	t.Run("Scale", func(t *testing.T) {
		require.True(t, p.Scale(3).Equal(NewPolynomial[int64](3, 3)))
	})

	t.Run("CopyNew", func(t *testing.T) {
		r := p.CopyNew()
		r[0] = 42
		require.Equal(t, int64(1), p[0])
	})

	t.Run("Equal", func(t *testing.T) {
		require.True(t, Polynomial[int64](nil).Equal(Polynomial[int64]{}))
		require.False(t, p.Equal(NewPolynomial[int64](1, 1, 0)))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "1 + 2x + 3x^2", NewPolynomial[int64](1, 2, 3).String())
		require.Equal(t, "-1x + 4x^3", NewPolynomial[int64](0, -1, 0, 4).String())
		require.Equal(t, "0", NewPolynomial[int64](0, 0).String())
		require.Equal(t, "0", Polynomial[int64]{}.String())
	})
}

func BenchmarkEvaluate(b *testing.B) {

	sampler := newTestSampler(b, "BenchmarkEvaluate")

	for _, n := range []int{16, 256} {
		p := sampler.Float64s(n, -1, 1)
		b.Run(fmt.Sprintf("Native/N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Evaluate(p, 0.5)
			}
		})

		b.Run(fmt.Sprintf("With/N=%d", n), func(b *testing.B) {
			ev := Native[float64]{}
			for i := 0; i < b.N; i++ {
				EvaluateWith[float64, float64, float64](ev, p, 0.5)
			}
		})
	}
}
