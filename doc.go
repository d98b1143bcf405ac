// Package lvmatrix is a small dense linear-algebra toolkit: storage with
// explicit ownership, elementwise and product operators, and the classical
// cofactor route to determinants and inverses.
//
// What is inside?
//
//	matrix/   — Dense storage, Equal/Add/Sub/Scale/Transpose/Mul,
//	            Minor, Determinant, Cofactors, Inverse, error kinds
//	examples/ — a runnable solver for A·x = b
//
// Every constructor hands ownership to the caller, who calls Release
// exactly once. Failures are reported as errors of one of two kinds:
//
//	matrix.ErrMatrix — the operand itself is unusable (bad shape, released, allocation failed)
//	matrix.ErrCalc   — the operands are fine but the operation is undefined for them
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	defer a.Release()
//	inv, err := matrix.Inverse(a)
//	if err != nil {
//		// errors.Is(err, matrix.ErrCalc) for singular or non-square input
//	}
//	defer inv.Release()
//
// Determinant and Inverse expand cofactors recursively and cost O(n!);
// they are meant for small matrices.
package lvmatrix
