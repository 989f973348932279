package polynomial

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tuneinsight/polyops/utils"
)

// Tensor is the coefficient tensor of a multivariable polynomial.
// The coefficient at the multi-index (i_0, ..., i_{N-1}) is the coefficient
// of the monomial x_0^{i_0} * ... * x_{N-1}^{i_{N-1}}.
// Coefficients are stored in row-major order: the last index varies fastest.
// The shape of a Tensor is fixed at construction.
type Tensor[C any] struct {
	dims    []int
	strides []int
	Coeffs  []C
}

// NewTensor returns a new Tensor of the given shape with all coefficients
// set to the zero value of C.
func NewTensor[C any](dims ...int) *Tensor[C] {
	t := newTensorShape[C](dims)
	t.Coeffs = make([]C, utils.Product(t.dims))
	return t
}

// NewTensorFromSlice returns a new Tensor of the given shape wrapping coeffs,
// which must be in row-major order and have exactly the number of elements
// of the shape.
func NewTensorFromSlice[C any](coeffs []C, dims ...int) *Tensor[C] {
	t := newTensorShape[C](dims)
	if n := utils.Product(t.dims); len(coeffs) != n {
		panic(fmt.Errorf("cannot NewTensorFromSlice: len(coeffs)=%d but shape %v has %d elements", len(coeffs), dims, n))
	}
	t.Coeffs = coeffs
	return t
}

// NewTensor2D returns a new two dimensional Tensor where m[i][j] is the
// coefficient of x^i * y^j. All rows of m must have the same length.
func NewTensor2D[C any](m [][]C) *Tensor[C] {

	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}

	t := NewTensor[C](len(m), cols)
	for i := range m {
		if len(m[i]) != cols {
			panic(fmt.Errorf("cannot NewTensor2D: len(m[%d])=%d but len(m[0])=%d", i, len(m[i]), cols))
		}
		copy(t.Coeffs[i*cols:], m[i])
	}

	return t
}

func newTensorShape[C any](dims []int) *Tensor[C] {

	for n, d := range dims {
		if d < 0 {
			panic(fmt.Errorf("cannot NewTensor: dimension %d is negative (%d)", n, d))
		}
	}

	t := &Tensor[C]{
		dims:    make([]int, len(dims)),
		strides: make([]int, len(dims)),
	}

	copy(t.dims, dims)

	stride := 1
	for n := len(dims) - 1; n >= 0; n-- {
		t.strides[n] = stride
		stride *= dims[n]
	}

	return t
}

// Rank returns the number of variables of the polynomial.
func (t *Tensor[C]) Rank() int {
	return len(t.dims)
}

// Dims returns a copy of the shape of the Tensor.
func (t *Tensor[C]) Dims() (dims []int) {
	dims = make([]int, len(t.dims))
	copy(dims, t.dims)
	return
}

// Len returns the number of coefficients of the Tensor.
func (t *Tensor[C]) Len() int {
	return len(t.Coeffs)
}

// Offset returns the position in t.Coeffs of the coefficient at the given
// multi-index.
func (t *Tensor[C]) Offset(index ...int) (offset int) {

	if len(index) != len(t.dims) {
		panic(fmt.Errorf("cannot Offset: len(index)=%d but rank is %d", len(index), len(t.dims)))
	}

	for n, i := range index {
		if i < 0 || i >= t.dims[n] {
			panic(fmt.Errorf("cannot Offset: index %d out of range [0, %d) on dimension %d", i, t.dims[n], n))
		}
		offset += i * t.strides[n]
	}

	return
}

// At returns the coefficient at the given multi-index.
func (t *Tensor[C]) At(index ...int) C {
	return t.Coeffs[t.Offset(index...)]
}

// Set sets the coefficient at the given multi-index.
func (t *Tensor[C]) Set(c C, index ...int) {
	t.Coeffs[t.Offset(index...)] = c
}

// CopyNew returns a deep copy of the Tensor.
func (t *Tensor[C]) CopyNew() *Tensor[C] {
	coeffs := make([]C, len(t.Coeffs))
	copy(coeffs, t.Coeffs)
	return NewTensorFromSlice(coeffs, t.dims...)
}

// Equal returns true if the two tensors have the same shape and coefficients.
// C must not hold unexported fields, see cmp.Equal.
func (t *Tensor[C]) Equal(other *Tensor[C]) bool {
	return cmp.Equal(t.dims, other.dims, cmpopts.EquateEmpty()) && cmp.Equal(t.Coeffs, other.Coeffs, cmpopts.EquateEmpty())
}
