// Package matrix offers dense real-valued matrix arithmetic.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with explicit ownership. Every
//     successful NewDense is paired with one Release; LiveGrids reports how
//     many buffers are still held.
//   - Element-wise and linear operators: Equal (tolerance Epsilon = 1e-7),
//     Add, Sub, Scale, Transpose, Mul.
//   - Minor extraction, Determinant by recursive cofactor expansion,
//     Cofactors (complement matrix) and Inverse via the adjugate.
//
// Errors come in two kinds, matched with errors.Is: ErrMatrix for unusable
// operands (invalid, released, bad shape, allocation) and ErrCalc for
// operations undefined on the given shapes or values (mismatch, non-square,
// singular). StatusOf maps any returned error to a Status.
//
// Determinant costs O(n!) and is meant for small matrices.
// Operations never mutate their operands, so an already built matrix can be
// read from several goroutines; a single Dense must not be written
// concurrently.
//
// See the examples in this package for usage patterns.
package matrix
