// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstats/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromGonum_Errors(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestGonumDense_ContainerContract mirrors the Dense contract on the adapter.
func TestGonumDense_ContainerContract(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	gm := mat.NewDense(2, 3, append([]float64(nil), data...))
	g, err := matrix.FromGonum(gm)
	require.NoError(t, err)

	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 6, g.Len())
	require.Same(t, gm, g.Gonum())
	require.Equal(t, data, FlatOf(t, g))

	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.NoError(t, g.SetIndex(4, math.NaN())) // gonum stores any float64
	assert.True(t, math.IsNaN(gm.At(1, 1)))
	require.NoError(t, g.Set(0, 0, -1))
	assert.Equal(t, -1.0, gm.At(0, 0))

	_, err = g.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, 3, 1), matrix.ErrOutOfRange)
	_, err = g.AtIndex(6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, g.SetIndex(-1, 0), matrix.ErrOutOfRange)
}

func TestGonumDense_LikeAndClone(t *testing.T) {
	g, err := matrix.FromGonum(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)

	l, err := g.Like()
	require.NoError(t, err)
	lg, ok := l.(*matrix.GonumDense)
	require.True(t, ok)
	require.Equal(t, make([]float64, 6), FlatOf(t, lg))
	r, c := lg.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	cl := g.Clone().(*matrix.GonumDense)
	require.NoError(t, cl.Set(0, 0, 100))
	v, _ := g.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestToGonum(t *testing.T) {
	d := MustDenseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	gm, err := matrix.ToGonum(d)
	require.NoError(t, err)
	require.Equal(t, 3.0, gm.At(1, 0))

	gm.Set(0, 0, 9) // copy, not alias
	require.Equal(t, 1.0, MustAtIndex(t, d, 0))

	g, err := matrix.FromGonum(gm)
	require.NoError(t, err)
	back, err := matrix.ToGonum(g)
	require.NoError(t, err)
	require.True(t, mat.Equal(gm, back))

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGonumDense_ElementwiseMatchesDense runs the generic kernels on the adapter.
func TestGonumDense_ElementwiseMatchesDense(t *testing.T) {
	data := RandFlat(30, -2, 2, 17)
	d := MustDenseFrom(t, 5, 6, data)
	g, err := matrix.FromGonum(mat.NewDense(5, 6, append([]float64(nil), data...)))
	require.NoError(t, err)

	dc, err := matrix.Clip(d, -1, 1)
	require.NoError(t, err)
	gc, err := matrix.Clip(g, -1, 1)
	require.NoError(t, err)
	_, ok := gc.(*matrix.GonumDense)
	require.True(t, ok)

	eq, err := matrix.AllClose(dc, gc, 0, 0)
	require.NoError(t, err)
	require.True(t, eq)
}
