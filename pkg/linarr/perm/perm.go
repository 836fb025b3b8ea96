// Package perm enumerates permutations of 0..n-1. It backs the exhaustive
// arrangement search used to cross-check the branch and bound solver on
// small trees.
package perm

import (
	"iter"
	"slices"
)

// Seq returns the identity permutation [0, 1, ..., n-1].
// For n <= 0 it returns an empty slice.
func Seq(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	return out
}

// Factorial returns n!. For n <= 1 it returns 1.
// 20! is the largest factorial that fits in an int64.
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// All yields every permutation of 0..n-1 exactly once, in the order of
// Heap's algorithm. The yielded slice is reused between iterations; clone it
// to keep it. n <= 0 yields a single empty permutation.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := Seq(n)
		if !yield(p) {
			return
		}
		c := make([]int, len(p))
		for i := 1; i < len(p); {
			if c[i] >= i {
				c[i] = 0
				i++
				continue
			}
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			if !yield(p) {
				return
			}
			c[i]++
			i = 1
		}
	}
}

// Generate returns up to limit permutations of 0..n-1 (all n! when
// limit <= 0). Each returned slice is a separate allocation.
func Generate(n, limit int) [][]int {
	size := Factorial(min(max(n, 0), 10))
	if limit > 0 {
		size = min(size, limit)
	}
	out := make([][]int, 0, size)
	for p := range All(n) {
		out = append(out, slices.Clone(p))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Each calls fn for every permutation of 0..n-1 until fn returns false.
// The slice passed to fn is reused between calls.
func Each(n int, fn func(p []int) bool) {
	for p := range All(n) {
		if !fn(p) {
			return
		}
	}
}
