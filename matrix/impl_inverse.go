// SPDX-License-Identifier: MIT

// Package matrix - inverse via the adjugate.

package matrix

import "fmt"

// Inverse returns m⁻¹ = Cᵀ / det(m), where C is the cofactor matrix.
// MAIN DESCRIPTION:
//   - Exact adjugate formula on top of Determinant and Cofactors.
//
// Implementation:
//   - Stage 1: det := Determinant(m); its error is returned as is (kind kept).
//   - Stage 2: det == ZeroDeterminant (exact) → ErrSingular.
//   - Stage 3: 1×1 → [[1/m00]]; otherwise C := Cofactors(m), T := Cᵀ,
//     result[i,j] = T[i,j] / det.
//
// Behavior highlights:
//   - Singularity is EXACT equality with zero. A nearly singular matrix
//     (det = 1e-17) is inverted and the result may be huge; callers that want
//     a tolerance compare Determinant themselves.
//   - A Cofactors failure is reported with ErrCalc kind (cause kept in chain).
//   - C and T are released before returning on every path.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare (from Determinant), ErrSingular,
//     ErrCalc (cofactor step), ErrAllocation (result/transposition).
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.Rows()
	if n == 1 {
		a00, err := m.At(0, 0)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		res, err := NewDense(1, 1)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		res.data[0] = 1.0 / a00

		return res, nil
	}

	cof, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%w: %w", ErrCalc, err))
	}
	defer cof.Release()

	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	defer adj.Release()

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range res.data {
		res.data[idx] = adj.data[idx] / det
	}

	return res, nil
}
