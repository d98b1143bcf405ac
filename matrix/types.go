// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface and numeric policy constants.
// Errors live in errors.go, storage in impl_dense.go.
package matrix

// Numeric policy (single source of truth).
const (
	// Epsilon is the absolute tolerance used by Equal: two elements are equal
	// when |a-b| <= Epsilon.
	Epsilon = 1e-7

	// ZeroDeterminant is compared with exact equality by Inverse.
	// A determinant of 1e-300 is NOT singular under this policy.
	ZeroDeterminant = 0.0
)

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the package implementation; every kernel accepts any Matrix and
// switches to a flat-slice fast path when it sees *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// sign returns (-1)^k as a float64.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}
