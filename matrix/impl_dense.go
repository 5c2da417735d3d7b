// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/AtIndex/SetIndex return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot kernels: operate on Values() directly.
//   - Use NewVector for 1×n inputs; linear index == column index there.
//   - DefaultValidateNaNInf is on; build inputs containing +Inf with WithAllowInf.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AtIndex/SetIndex: O(1); Clone/Like: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // method tag used in error wrappers
	ctxSetIndex = "SetIndex" // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxFrom     = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf/allowInf carry the numeric policy resolved from options.go.
type Dense struct {
	r, c           int       // row and column counts (>0 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
	allowInf       bool      // numeric guard exception: accept ±Inf (never NaN)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ Container    = (*Dense)(nil) // *Dense is a bulk-kernel container
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve numeric policy from opts (defaults from options.go).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
		allowInf:       o.allowInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix initialized from a row-major slice.
// MAIN DESCRIPTION:
//   - Copying constructor; the caller keeps ownership of data.
//
// Implementation:
//   - Stage 1: allocate via NewDense (shape + policy).
//   - Stage 2: require len(data) == rows*cols.
//   - Stage 3: validate every value under the resolved policy, then copy.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrDimensionMismatch)
	}
	for k, v := range data {
		if !m.accepts(v) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, data) // single bulk copy after validation

	return m, nil
}

// NewVector creates a 1×n row vector from data (copied).
// Linear index k of the result addresses element (0, k).
// Errors: ErrInvalidDimensions for an empty slice; ErrNaNInf per policy.
// Complexity: O(n).
func NewVector(data []float64, opts ...Option) (*Dense, error) {
	return NewDenseFrom(1, len(data), data, opts...)
}

// accepts reports whether v passes the numeric policy of m.
func (m *Dense) accepts(v float64) bool {
	if !m.validateNaNInf {
		return true
	}
	if math.IsNaN(v) {
		return false
	}

	return m.allowInf || !math.IsInf(v, 0)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
// Complexity: O(1).
func (m *Dense) Len() int { return len(m.data) }

// Values returns the row-major backing slice. It shares storage with m:
// writes through it bypass the numeric policy. Intended for read-mostly
// fast paths in sibling packages.
// Complexity: O(1).
func (m *Dense) Values() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Behavior highlights:
//   - Returns a sentinel without context; public methods wrap with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns sentinel error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for values rejected by policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if !m.accepts(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AtIndex returns the element at row-major linear index k.
// Errors: ErrOutOfRange when k ∉ [0, Len()).
// Complexity: O(1).
func (m *Dense) AtIndex(k int) (float64, error) {
	if k < 0 || k >= len(m.data) {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxAtIndex, k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// SetIndex stores v at row-major linear index k under the numeric policy.
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(1).
func (m *Dense) SetIndex(k int, v float64) error {
	if k < 0 || k >= len(m.data) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, ErrOutOfRange)
	}
	if !m.accepts(v) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Like returns a zero r×c *Dense with validation disabled.
// MAIN DESCRIPTION:
//   - Output-buffer factory for kernels whose results may be NaN or ±Inf.
//
// Notes:
//   - Shape is copied; data and policy are not.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Like() (Container, error) {
	return NewDense(m.r, m.c, WithNoValidateNaNInf())
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
		allowInf:       m.allowInf,
	}
}

// String renders rows as lines with comma-separated values (%g).
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) { // stop if callback returns false
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a value rejected by policy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, use Map (fresh output) instead.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if !m.accepts(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
