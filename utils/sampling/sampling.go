// Package sampling implements the sampling of random bytes, integers, floats
// and coefficient sequences from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Sampler draws uniform values from a PRNG.
type Sampler struct {
	prng PRNG
	buff [8]byte
}

// NewSampler returns a new Sampler reading from prng.
func NewSampler(prng PRNG) *Sampler {
	return &Sampler{prng: prng}
}

// Uint64 returns a uniform value in [0, 2^64-1].
func (s *Sampler) Uint64() uint64 {
	if _, err := s.prng.Read(s.buff[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buff[:])
}

// Uint64n returns a uniform value in [0, n-1] by rejection sampling.
// n must be positive.
func (s *Sampler) Uint64n(n uint64) uint64 {

	if n == 0 {
		panic("cannot Uint64n: n must be positive")
	}

	mask := uint64(1)<<bits.Len64(n-1) - 1

	for {
		if v := s.Uint64() & mask; v < n {
			return v
		}
	}
}

// Int64n returns a uniform value in [-bound, bound].
// bound must be non-negative.
func (s *Sampler) Int64n(bound int64) int64 {

	if bound < 0 {
		panic(fmt.Errorf("cannot Int64n: bound must be non-negative but is %d", bound))
	}

	return int64(s.Uint64n(2*uint64(bound)+1)) - bound
}

// Float64 returns a uniform value in [min, max).
func (s *Sampler) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// Int64s returns n values sampled with Int64n(bound).
func (s *Sampler) Int64s(n int, bound int64) (v []int64) {
	v = make([]int64, n)
	for i := range v {
		v[i] = s.Int64n(bound)
	}
	return
}

// Float64s returns n values sampled with Float64(min, max).
func (s *Sampler) Float64s(n int, min, max float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = s.Float64(min, max)
	}
	return
}
