// SPDX-License-Identifier: MIT

// Package matrix: public interfaces shared by Dense, GonumDense and callers.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Container is the capability set consumed by bulk element-wise kernels.
// Any rectangular numeric backend addressable by a row-major linear index
// qualifies.
//
// Contract:
//   - Len() == r*c where (r, c) = Shape().
//   - AtIndex/SetIndex address element (k / c, k % c); out-of-range k
//     returns ErrOutOfRange.
//   - Like() returns a zero-filled container of the same concrete kind and
//     shape whose SetIndex accepts any float64 (NaN and ±Inf included).
type Container interface {
	// Len returns the number of elements (rows*cols).
	// Complexity: O(1).
	Len() int

	// Shape returns (rows, cols).
	// Complexity: O(1).
	Shape() (rows, cols int)

	// AtIndex returns the element at row-major linear index k.
	// Complexity: O(1).
	AtIndex(k int) (float64, error)

	// SetIndex stores v at row-major linear index k.
	// Complexity: O(1).
	SetIndex(k int, v float64) error

	// Like allocates a zero container with identical shape.
	// Complexity: O(rows*cols).
	Like() (Container, error)
}
