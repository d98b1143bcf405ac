// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and outcome classification.
// This file defines ONLY package-level sentinel errors used across the matrix
// package plus the Status classifier. All kernels MUST return these sentinels
// (optionally wrapped) and tests MUST check them via errors.Is. No kernel
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR KINDS
// -----------
// Every failure belongs to exactly one of two kinds:
//   - ErrMatrix: the operand itself is unusable (invalid/released matrix,
//     non-positive shape, out-of-range index, allocation failure).
//   - ErrCalc:   the operands are fine on their own, but the operation is
//     undefined for their shapes or values (dimension mismatch, non-square,
//     singular, 1×1 cofactor request).
//
// Specific sentinels below wrap their kind, so both
// errors.Is(err, ErrNonSquare) and errors.Is(err, ErrCalc) hold.

var (
	// ErrMatrix is the kind of every structural/precondition failure.
	ErrMatrix = errors.New("matrix: invalid matrix")

	// ErrCalc is the kind of every shape/value relationship failure.
	ErrCalc = errors.New("matrix: calculation error")
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrMatrix)

	// ErrInvalidMatrix indicates a nil, released or otherwise malformed operand.
	ErrInvalidMatrix = fmt.Errorf("%w: nil, released or malformed", ErrMatrix)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrMatrix)

	// ErrAllocation indicates that backing storage could not be obtained.
	// Nothing is retained when it is returned.
	ErrAllocation = fmt.Errorf("%w: allocation failed", ErrMatrix)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrCalc)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrCalc)

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrCalc)

	// ErrDegenerateCofactor is returned by Cofactors for a 1×1 input.
	// This is a deliberate restriction of the package, not a mathematical one.
	ErrDegenerateCofactor = fmt.Errorf("%w: cofactor matrix of 1x1 is not supported", ErrCalc)
)

// Status is the outcome of an operation as a small tagged value.
type Status int

const (
	// StatusOK reports success.
	StatusOK Status = iota
	// StatusMatrixError reports an ErrMatrix-kind failure.
	StatusMatrixError
	// StatusCalcError reports an ErrCalc-kind failure.
	StatusCalcError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMatrixError:
		return "MATRIX_ERROR"
	case StatusCalcError:
		return "CALC_ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StatusOf classifies err. ErrCalc wins when a chain carries both kinds
// (Inverse reports a failed cofactor step as a calculation error).
// Errors from outside this package are reported as StatusMatrixError.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrCalc):
		return StatusCalcError
	default:
		return StatusMatrixError
	}
}
