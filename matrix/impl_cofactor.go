// SPDX-License-Identifier: MIT

// Package matrix - cofactor (complement) matrix.

package matrix

// Cofactors returns the matrix C with C[i,j] = (-1)^(i+j) · det(minor(m, i, j)).
// MAIN DESCRIPTION:
//   - Building block of Inverse: m⁻¹ = Cᵀ / det(m).
//
// Implementation:
//   - Stage 1: validate m, squareness, and reject 1×1.
//   - Stage 2: allocate the result and one (n-1)×(n-1) scratch minor.
//   - Stage 3: for each cell, refill the scratch, expand its determinant, store
//     the signed value.
//
// Behavior highlights:
//   - A 1×1 input fails with ErrDegenerateCofactor. The conventional cofactor
//     of a 1×1 matrix is [1]; the package deliberately does not define it.
//   - The scratch is released on every exit; the result is released when a
//     later step fails, so an error never leaves an allocation behind.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare, ErrDegenerateCofactor, ErrAllocation.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquareValid(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := m.Rows()
	if n == 1 {
		return nil, matrixErrorf(opCofactors, ErrDegenerateCofactor)
	}

	src, done, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	defer done()

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	scratch, err := NewDense(n-1, n-1)
	if err != nil {
		res.Release()
		return nil, matrixErrorf(opCofactors, err)
	}
	defer scratch.Release()

	var (
		i, j int
		det  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			extractMinor(scratch, src, i, j)
			if det, err = determinant(scratch); err != nil {
				res.Release()
				return nil, matrixErrorf(opCofactors, err)
			}
			res.data[i*n+j] = sign(i+j) * det
		}
	}

	return res, nil
}
