// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix and Container interfaces.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstats/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShapeLen verifies the dimension accessors agree.
func TestRowsColsShapeLen(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 12, m.Len())
	require.Equal(t, make([]float64, 12), m.Values())
}

// TestNewDenseFrom copies data in row-major order and rejects bad lengths.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m := MustDenseFrom(t, 2, 3, data)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	data[0] = 99 // the constructor copied
	require.Equal(t, 1.0, MustAtIndex(t, m, 0))

	_, err = matrix.NewDenseFrom(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, math.NaN(), 3, 4})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(0,1)")
}

// TestNewVector builds a 1×n row vector.
func TestNewVector(t *testing.T) {
	v, err := matrix.NewVector([]float64{1, 2, 3})
	require.NoError(t, err)
	r, c := v.Shape()
	require.Equal(t, 1, r)
	require.Equal(t, 3, c)
	require.Equal(t, []float64{1, 2, 3}, v.Values())
}

// TestAtSetOutOfBounds ensures indexers return ErrOutOfRange instead of panicking.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	_, err = m.AtIndex(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.AtIndex(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetIndex(4, 1), matrix.ErrOutOfRange)
}

// TestLinearIndexIsRowMajor checks AtIndex(k) == At(k/c, k%c).
func TestLinearIndexIsRowMajor(t *testing.T) {
	m := MustDenseFrom(t, 3, 4, RandFlat(12, -1, 1, 5))

	for k := 0; k < m.Len(); k++ {
		a, err := m.At(k/4, k%4)
		require.NoError(t, err)
		require.Equal(t, a, MustAtIndex(t, m, k))
	}

	require.NoError(t, m.SetIndex(6, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)
}

// TestNumericPolicy covers the default guard, WithAllowInf and WithNoValidateNaNInf.
func TestNumericPolicy(t *testing.T) {
	t.Run("default rejects NaN and Inf", func(t *testing.T) {
		m, _ := matrix.NewDense(1, 2)
		require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
		require.ErrorIs(t, m.SetIndex(1, math.Inf(1)), matrix.ErrNaNInf)
	})
	t.Run("allow Inf keeps rejecting NaN", func(t *testing.T) {
		m, _ := matrix.NewDense(1, 2, matrix.WithAllowInf())
		require.NoError(t, m.Set(0, 0, math.Inf(-1)))
		require.ErrorIs(t, m.SetIndex(1, math.NaN()), matrix.ErrNaNInf)
	})
	t.Run("no validation accepts everything", func(t *testing.T) {
		m, _ := matrix.NewDense(1, 2, matrix.WithNoValidateNaNInf())
		require.NoError(t, m.SetIndex(0, math.NaN()))
		require.NoError(t, m.SetIndex(1, math.Inf(-1)))
	})
}

// TestLike allocates a zeroed same-shape Dense that stores any float64.
func TestLike(t *testing.T) {
	m := MustDenseFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	l, err := m.Like()
	require.NoError(t, err)
	ld, ok := l.(*matrix.Dense)
	require.True(t, ok)

	r, c := ld.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, make([]float64, 6), ld.Values())

	require.NoError(t, ld.SetIndex(0, math.Inf(-1)))
	require.NoError(t, ld.SetIndex(1, math.NaN()))
	require.Equal(t, 1.0, MustAtIndex(t, m, 0), "source untouched")

	assert.False(t, matrix.PolicyOf_TestOnly(ld).ValidateNaNInf)
}

// TestCloneIsDeep verifies Clone copies data and policy.
func TestCloneIsDeep(t *testing.T) {
	m := MustDenseFrom(t, 2, 2, []float64{1, 2, 3, 4}, matrix.WithAllowInf())
	cl := matrix.CloneMatrix(m).(*matrix.Dense)

	require.NoError(t, cl.Set(0, 0, 100))
	require.Equal(t, 1.0, MustAtIndex(t, m, 0))
	require.Equal(t, matrix.PolicyOf_TestOnly(m), matrix.PolicyOf_TestOnly(cl))
}

// TestStringDoApply covers formatting and the visitors.
func TestStringDoApply(t *testing.T) {
	m := MustDenseFrom(t, 2, 2, []float64{1, 2.5, -3, 4})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2.5, -3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 2 }))
	require.Equal(t, []float64{2, 5, -6, 8}, m.Values())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "Dense.Apply(1,1)")
}
