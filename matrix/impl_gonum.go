// SPDX-License-Identifier: MIT

// Package matrix - gonum backend adapter.
//
// Purpose:
//   - Let callers that already hold gonum matrices feed them to bulk kernels
//     without copying: GonumDense wraps a *mat.Dense and satisfies both
//     Matrix and Container.
//   - Keep the same bounds contract as Dense: indexers return ErrOutOfRange
//     instead of letting gonum panic.
//
// Behavior highlights:
//   - gonum storage has no numeric policy; every float64 is accepted.
//   - Views with Stride > Cols are handled through gonum's own At/Set.
//
// Complexity quicksheet:
//   - At/Set/AtIndex/SetIndex: O(1); Clone/Like: O(r*c).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GonumDense adapts a gonum *mat.Dense to Matrix and Container.
// The adapter shares storage with the wrapped matrix.
type GonumDense struct {
	m *mat.Dense // wrapped gonum matrix (never nil after FromGonum)
}

var (
	_ Matrix    = (*GonumDense)(nil)
	_ Container = (*GonumDense)(nil)
)

// FromGonum wraps m without copying.
// Errors: ErrNilMatrix for nil m; ErrInvalidDimensions for an empty matrix.
// Complexity: O(1).
func FromGonum(m *mat.Dense) (*GonumDense, error) {
	if m == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	if m.IsEmpty() {
		return nil, matrixErrorf("FromGonum", ErrInvalidDimensions)
	}

	return &GonumDense{m: m}, nil
}

// ToGonum copies any Matrix into a fresh gonum *mat.Dense.
// Fast path: *Dense values are copied in one pass.
// Complexity: O(r*c).
func ToGonum(src Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	r, c := src.Rows(), src.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("ToGonum", ErrInvalidDimensions)
	}

	if d, ok := src.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)
		return mat.NewDense(r, c, buf), nil
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// Gonum returns the wrapped gonum matrix (shared storage).
func (g *GonumDense) Gonum() *mat.Dense { return g.m }

// Rows returns the row count.
func (g *GonumDense) Rows() int { r, _ := g.m.Dims(); return r }

// Cols returns the column count.
func (g *GonumDense) Cols() int { _, c := g.m.Dims(); return c }

// Shape returns (rows, cols).
func (g *GonumDense) Shape() (rows, cols int) { return g.m.Dims() }

// Len returns rows*cols.
func (g *GonumDense) Len() int { r, c := g.m.Dims(); return r * c }

// At reads (i,j) or returns ErrOutOfRange.
func (g *GonumDense) At(i, j int) (float64, error) {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("GonumDense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.m.At(i, j), nil
}

// Set writes (i,j) or returns ErrOutOfRange.
func (g *GonumDense) Set(i, j int, v float64) error {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("GonumDense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	g.m.Set(i, j, v)

	return nil
}

// AtIndex reads row-major linear index k.
func (g *GonumDense) AtIndex(k int) (float64, error) {
	r, c := g.m.Dims()
	if k < 0 || k >= r*c {
		return 0, fmt.Errorf("GonumDense.AtIndex(%d): %w", k, ErrOutOfRange)
	}

	return g.m.At(k/c, k%c), nil
}

// SetIndex writes row-major linear index k.
func (g *GonumDense) SetIndex(k int, v float64) error {
	r, c := g.m.Dims()
	if k < 0 || k >= r*c {
		return fmt.Errorf("GonumDense.SetIndex(%d): %w", k, ErrOutOfRange)
	}
	g.m.Set(k/c, k%c, v)

	return nil
}

// Like allocates a zero gonum matrix of the same shape.
func (g *GonumDense) Like() (Container, error) {
	r, c := g.m.Dims()

	return &GonumDense{m: mat.NewDense(r, c, nil)}, nil
}

// Clone deep-copies the wrapped matrix.
func (g *GonumDense) Clone() Matrix {
	return &GonumDense{m: mat.DenseCopyOf(g.m)}
}
