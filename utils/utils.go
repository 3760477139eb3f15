// Package utils implements generic helper functions used across the module.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// MinSlice returns the smallest element of s. Panics if s is empty.
func MinSlice[T constraints.Ordered](s []T) (min T) {
	if len(s) == 0 {
		panic("cannot MinSlice: empty slice")
	}
	min = s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return
}

// MaxSlice returns the largest element of s. Panics if s is empty.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	if len(s) == 0 {
		panic("cannot MaxSlice: empty slice")
	}
	max = s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// Float64Slice converts a numeric slice to a []float64.
func Float64Slice[T constraints.Integer | constraints.Float](s []T) (f []float64) {
	f = make([]float64, len(s))
	for i, v := range s {
		f[i] = float64(v)
	}
	return
}
