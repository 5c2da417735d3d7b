// SPDX-License-Identifier: MIT
package dens_test

import (
	"testing"

	"github.com/katalvlaran/lvstats/dens"
	"github.com/katalvlaran/lvstats/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParam_Modes(t *testing.T) {
	t.Parallel()

	s := dens.Scalar(2.5)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 2.5, s.Value())
	assert.Equal(t, -1, s.Len())

	var zero dens.Param
	assert.True(t, zero.IsScalar())
	assert.Equal(t, 0.0, zero.Value())

	ps := dens.PerElementSlice([]float64{1, 2, 3})
	assert.False(t, ps.IsScalar())
	assert.Equal(t, 3, ps.Len())
	assert.Equal(t, 0.0, ps.Value())

	d, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	pd := dens.PerElement(d)
	assert.False(t, pd.IsScalar())
	assert.Equal(t, 4, pd.Len())

	pc := dens.PerElement(&sliceContainer{rows: 5, cols: 1, vals: make([]float64, 5)})
	assert.Equal(t, 5, pc.Len())

	assert.Equal(t, 0, dens.PerElement(nil).Len())
	assert.Equal(t, 0, dens.PerElementSlice(nil).Len())
}

// TestParam_SliceIsNotCopied documents that PerElementSlice aliases its argument.
func TestParam_SliceIsNotCopied(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewVector([]float64{1, 1})
	require.NoError(t, err)

	sigmas := []float64{1, 1}
	p := dens.PerElementSlice(sigmas)
	sigmas[1] = 2

	Y, err := dens.DlnormMatParams(X, dens.Scalar(0), p, false)
	require.NoError(t, err)
	v, err := Y.AtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, dens.DlnormMuSigma(1.0, 0, 2), v)
}
