package utils

import (
	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Fill returns a new slice of length n whose i-th element is f(i).
func Fill[V any](n int, f func(i int) V) (s []V) {
	s = make([]V, n)
	for i := range s {
		s[i] = f(i)
	}
	return
}

// Map returns a new slice whose i-th element is f(s[i]).
func Map[V, W any](s []V, f func(v V) W) (r []W) {
	r = make([]W, len(s))
	for i := range s {
		r[i] = f(s[i])
	}
	return
}

// Zip returns a new slice whose i-th element is f(a[i], b[i]).
// The result has the length of the shortest input.
func Zip[A, B, W any](a []A, b []B, f func(a A, b B) W) (r []W) {
	r = make([]W, Min(len(a), len(b)))
	for i := range r {
		r[i] = f(a[i], b[i])
	}
	return
}

// Reduce folds s from the left with f.
// The second return value is false if s is empty.
func Reduce[V any](s []V, f func(a, b V) V) (acc V, ok bool) {
	if len(s) == 0 {
		return
	}

	acc = s[0]
	for _, v := range s[1:] {
		acc = f(acc, v)
	}

	return acc, true
}

// Resize returns a new slice of length n holding the first min(n, len(s))
// elements of s, the remaining slots being set to fill(i).
func Resize[V any](s []V, n int, fill func(i int) V) (r []V) {
	r = make([]V, n)
	m := copy(r, s)
	if fill != nil {
		for i := m; i < n; i++ {
			r[i] = fill(i)
		}
	}
	return
}

// ReverseInPlace reverses s in place.
func ReverseInPlace[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reverse returns a reversed copy of s.
func Reverse[V any](s []V) (r []V) {
	r = make([]V, len(s))
	copy(r, s)
	ReverseInPlace(r)
	return
}

// Product returns the product of the elements of s, or one if s is empty.
func Product[V constraints.Integer | constraints.Float](s []V) (prod V) {
	prod = 1
	for _, v := range s {
		prod *= v
	}
	return
}
