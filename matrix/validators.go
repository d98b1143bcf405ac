// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating validity/shape checks here.
//  - Return sentinels tagged with the validator name; kernels add their op tag.
//
// Order:
//  - Every composite validator checks validity of each operand first
//    (ErrMatrix kind) and only then their relationship (ErrCalc kind).
//    Tests rely on this priority.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateValid ensures m is usable as an operand (see IsValid).
//
// Errors: ErrInvalidMatrix.
// Complexity: O(1).
func ValidateValid(m Matrix) error {
	if !IsValid(m) {
		return validatorErrorf("ValidateValid", ErrInvalidMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are valid (caller must ensure).
//
// Errors: ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is valid.
//
// Errors: ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Valid(a) → Valid(b) → SameShape.
//
// Errors: ErrInvalidMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateValid(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateValid(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: Valid(a) → Valid(b) → a.Cols == b.Rows.
//
// Errors: ErrInvalidMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateValid(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateValid(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareValid – Composite: Valid → Square.
//
// Errors: ErrInvalidMatrix, ErrNonSquare.
func ValidateSquareValid(m Matrix) error {
	if err := ValidateValid(m); err != nil {
		return validatorErrorf("ValidateSquareValid", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareValid", err)
	}

	return nil
}

// ValidateIndex ensures 0 <= row < m.Rows() and 0 <= col < m.Cols().
//
// Errors: ErrOutOfRange.
func ValidateIndex(m Matrix, row, col int) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", row, col), ErrOutOfRange)
	}

	return nil
}
