// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures for containers and element-wise kernels.
//   - A type-hiding wrapper to force the generic (non-*Dense) code paths.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvstats/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Container to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Container to forward all methods.
//   - Use hide{X} to force the AtIndex/SetIndex fallback in code under test.
//
// Notes:
//   - Like() still returns the wrapped backend, so only the input is de-optimized.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Container }

// MustDenseFrom builds an r×c *Dense from row-major data or fails the test.
func MustDenseFrom(t testing.TB, r, c int, data []float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data, opts...)
	require.NoError(t, err)

	return m
}

// MustAtIndex reads c[k] or fails the test.
func MustAtIndex(t testing.TB, c matrix.Container, k int) float64 {
	t.Helper()
	v, err := c.AtIndex(k)
	require.NoError(t, err)

	return v
}

// FlatOf copies every element of c in row-major order.
func FlatOf(t testing.TB, c matrix.Container) []float64 {
	t.Helper()
	out := make([]float64, c.Len())
	for k := range out {
		out[k] = MustAtIndex(t, c, k)
	}

	return out
}

// RandFlat returns n values uniform in [lo, hi) from a fixed seed.
func RandFlat(n int, lo, hi float64, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*r.Float64()
	}

	return out
}
