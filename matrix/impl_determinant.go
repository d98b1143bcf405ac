// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive cofactor expansion.
//
// The expansion runs along column 0:
//
//	det(A) = Σ_{i=0}^{n-1} (-1)^i · A[i,0] · det(minor(A, i, 0))
//
// with closed forms for 1×1 and 2×2. Cost is O(n!) time; each recursion
// level owns one (n-1)×(n-1) scratch matrix, released on return. This is
// the reference algorithm of the package; there is no LU shortcut.

package matrix

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - Exact cofactor expansion, no pivoting and no tolerance.
//
// Implementation:
//   - Stage 1: validate m (ErrMatrix kind), then squareness (ErrNonSquare).
//   - Stage 2: materialize a *Dense view of m if needed.
//   - Stage 3: recurse via determinant.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare, ErrAllocation (scratch matrices).
//     The first error stops the expansion and is returned unchanged in kind.
//
// Complexity:
//   - Time O(n!), Space O(n^2) live scratch across the recursion depth.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareValid(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, done, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	defer done()

	det, err := determinant(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant expands a valid square *Dense. Unexported: no validation.
func determinant(d *Dense) (float64, error) {
	n := d.r
	switch n {
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	scratch, err := NewDense(n-1, n-1)
	if err != nil {
		return 0, err
	}
	defer scratch.Release()

	det := ZeroSum
	for i := 0; i < n; i++ {
		extractMinor(scratch, d, i, 0)
		sub, err := determinant(scratch)
		if err != nil {
			return 0, err
		}
		det += sign(i) * d.data[i*n] * sub
	}

	return det, nil
}
