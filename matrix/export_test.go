// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Test-Bridge (White-Box) for the grid allocator.
//
// Purpose:
//   - Let matrix_test inject allocation failures at an exact point inside an
//     algorithm (determinant recursion, cofactor scratch, inverse steps) and
//     then assert via LiveGrids that nothing was leaked.
//
// Tests that use these hooks mutate package state and MUST NOT run in parallel.

// ErrInjectedForTest is the cause carried by injected allocation failures.
var ErrInjectedForTest = errors.New("injected allocation failure")

// ExtractMinorForTest exposes the unchecked minor kernel.
var ExtractMinorForTest = extractMinor

// FailGridAfterForTest lets the next n grid allocations succeed and fails
// every one after that. The returned func restores the previous allocator.
func FailGridAfterForTest(n int) (restore func()) {
	prev := allocGrid
	left := n
	allocGrid = func(size int) ([]float64, error) {
		if left <= 0 {
			return nil, ErrInjectedForTest
		}
		left--
		return prev(size)
	}

	return func() { allocGrid = prev }
}

// ShortGridForTest makes the allocator return buffers one element short.
func ShortGridForTest() (restore func()) {
	prev := allocGrid
	allocGrid = func(size int) ([]float64, error) {
		return make([]float64, size-1), nil
	}

	return func() { allocGrid = prev }
}
