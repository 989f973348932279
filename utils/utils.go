package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice.
// The second return value is false if the slice is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V, ok bool) {
	return Reduce(slice, Max[V])
}

// SaturatingSub returns a-b, or 0 if b > a.
func SaturatingSub(a, b int) int {
	if b > a {
		return 0
	}
	return a - b
}
