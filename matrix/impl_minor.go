// SPDX-License-Identifier: MIT

// Package matrix - minor extraction.
//
// A minor of an r×c matrix is the (r-1)×(c-1) submatrix left after deleting
// one row and one column. Determinant and Cofactors call the unchecked
// extractMinor on *Dense operands; Minor and MinorOf are the validated
// public entry points.

package matrix

// extractMinor copies every src element outside (row, col) into dst in
// row-major scan order.
//
// The destination cursor wraps after dst.c writes. That bound equals
// src.c-1 only because dst is exactly (src.r-1)×(src.c-1); callers must
// guarantee this shape (Minor validates it, internal callers allocate it).
//
// Complexity: O(r*c).
func extractMinor(dst, src *Dense, row, col int) {
	var (
		i, j   int // destination cursor
		ki, kj int // source indices
		base   int
	)
	for ki = 0; ki < src.r; ki++ {
		if ki == row {
			continue
		}
		base = ki * src.c
		for kj = 0; kj < src.c; kj++ {
			if kj == col {
				continue
			}
			dst.data[i*dst.c+j] = src.data[base+kj]
			j++
			if j == dst.c {
				j = 0
				i++
			}
		}
	}
}

// Minor writes into dst the minor of src obtained by deleting row and col.
// MAIN DESCRIPTION:
//   - dst is caller-allocated and must be exactly (src.Rows()-1)×(src.Cols()-1).
//
// Implementation:
//   - Stage 1: validate src and dst, then dst shape, then indices.
//   - Stage 2: copy via the flat fast path for *Dense src, At otherwise.
//
// Errors:
//   - ErrInvalidMatrix (src or dst invalid; a 1×N src has no valid dst).
//   - ErrDimensionMismatch (dst shape is not one smaller in each dimension).
//   - ErrOutOfRange (row or col outside src).
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond dst.
func Minor(dst *Dense, src Matrix, row, col int) error {
	if err := ValidateValid(src); err != nil {
		return matrixErrorf(opMinor, err)
	}
	if err := ValidateValid(dst); err != nil {
		return matrixErrorf(opMinor, err)
	}
	if dst.r != src.Rows()-1 || dst.c != src.Cols()-1 {
		return matrixErrorf(opMinor, ErrDimensionMismatch)
	}
	if err := ValidateIndex(src, row, col); err != nil {
		return matrixErrorf(opMinor, err)
	}

	if ds, ok := src.(*Dense); ok {
		extractMinor(dst, ds, row, col)
		return nil
	}

	var (
		i, j, ki, kj int
		v            float64
		err          error
	)
	for ki = 0; ki < src.Rows(); ki++ {
		if ki == row {
			continue
		}
		for kj = 0; kj < src.Cols(); kj++ {
			if kj == col {
				continue
			}
			if v, err = src.At(ki, kj); err != nil {
				return matrixErrorf(opMinor, err)
			}
			dst.data[i*dst.c+j] = v
			j++
			if j == dst.c {
				j = 0
				i++
			}
		}
	}

	return nil
}

// MinorOf allocates and returns the minor of src without row and col.
// The caller owns the result and releases it.
func MinorOf(src Matrix, row, col int) (*Dense, error) {
	if err := ValidateValid(src); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if src.Rows() < 2 || src.Cols() < 2 {
		return nil, matrixErrorf(opMinor, ErrDimensionMismatch)
	}
	dst, err := NewDense(src.Rows()-1, src.Cols()-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err = Minor(dst, src, row, col); err != nil {
		dst.Release()
		return nil, err
	}

	return dst, nil
}
