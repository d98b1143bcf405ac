// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make ownership explicit: every successful NewDense is paired with one Release.
//
// Lifecycle:
//   - NewDense acquires a buffer from the grid allocator (alloc.go). A failed
//     acquisition returns (nil, ErrAllocation) and retains nothing.
//   - Release returns the buffer and zeroes the shape. The released value is
//     invalid for every operation and may be released again (no-op).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are 0 after Release.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     nil after Release.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: acquire a zero-filled buffer from the grid allocator.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - On allocation failure nothing is retained and the matrix is nil.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix; the caller owns it and calls Release.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrAllocation (buffer could not be obtained).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf, err := acquireGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Release frees the backing buffer and resets the shape to 0×0.
// Safe on a nil receiver and on an already released matrix.
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	if m.data != nil {
		releaseGrid()
		m.data = nil
	}
	m.r, m.c = 0, 0
}

// IsValid reports whether m can be used as an operand: non-nil, rows >= 1,
// cols >= 1 and, for *Dense, storage present with len == rows*cols.
// A nil reference (untyped or typed) is invalid.
// Complexity: O(1).
func IsValid(m Matrix) bool {
	switch d := m.(type) {
	case nil:
		return false
	case *Dense:
		return d != nil && d.r >= 1 && d.c >= 1 && d.data != nil && len(d.data) == d.r*d.c
	default:
		return m.Rows() >= 1 && m.Cols() >= 1
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// A released matrix has r == c == 0, so every index is out of range for it.
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
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer.
// Cloning an invalid matrix, or failing to allocate, yields an empty
// (released-state) *Dense that IsValid rejects; callers that must tell the
// two apart use CloneDense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp, err := CloneDense(m)
	if err != nil {
		return &Dense{}
	}

	return cp
}

// CloneDense is Clone with an explicit error and a concrete result type.
func CloneDense(m Matrix) (*Dense, error) {
	if !IsValid(m) {
		return nil, matrixErrorf("Clone", ErrInvalidMatrix)
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("Clone", err)
	}
	if err = copyInto(out, m); err != nil {
		out.Release()
		return nil, matrixErrorf("Clone", err)
	}

	return out, nil
}

// copyInto fills dst (same shape as src, validated by the caller) from src.
func copyInto(dst *Dense, src Matrix) error {
	if d, ok := src.(*Dense); ok {
		copy(dst.data, d.data)
		return nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			dst.data[i*dst.c+j] = v
		}
	}

	return nil
}

// asDense returns m itself when it is a *Dense, otherwise a fresh copy.
// The returned release func must be called exactly once; it frees the copy
// and is a no-op for the pass-through case.
func asDense(m Matrix) (*Dense, func(), error) {
	if d, ok := m.(*Dense); ok {
		return d, func() {}, nil
	}
	d, err := CloneDense(m)
	if err != nil {
		return nil, nil, err
	}

	return d, d.Release, nil
}

// ToRows copies the matrix into a freshly allocated [][]float64.
// A released matrix yields nil.
func (m *Dense) ToRows() [][]float64 {
	if m == nil || m.data == nil {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Format: one "[a, b, c]" line per row, values via %g.
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
