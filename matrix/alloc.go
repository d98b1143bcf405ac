// SPDX-License-Identifier: MIT

// Package matrix - grid allocator and live-grid accounting.
//
// Purpose:
//   - Route every backing-buffer allocation through one place so that a
//     failed allocation never leaves a partially built matrix behind.
//   - Count grids that were acquired and not yet released, so that tests can
//     prove every temporary (determinant recursion, cofactor scratch, inverse
//     intermediates) is released on every exit path.
//
// The counter is atomic because read-only operands may be shared across
// goroutines and every operation allocates its own result.

package matrix

import (
	"fmt"
	"math"
	"sync/atomic"
)

// gridAllocator returns a zero-filled buffer of exactly n elements.
type gridAllocator func(n int) ([]float64, error)

// maxGridLen bounds rows*cols so the byte size of a buffer fits in an int.
const maxGridLen = math.MaxInt / 8

var (
	// allocGrid is replaced by tests (see export_test.go) to inject failures.
	allocGrid gridAllocator = makeGrid

	// liveGrids is the number of acquired, not yet released grids.
	liveGrids atomic.Int64
)

// makeGrid is the production allocator.
func makeGrid(n int) ([]float64, error) {
	return make([]float64, n), nil
}

// acquireGrid allocates a rows×cols buffer and records it as live.
// Shape must already be validated (rows, cols >= 1).
// On failure nothing is recorded and ErrAllocation is returned.
func acquireGrid(rows, cols int) ([]float64, error) {
	if cols > maxGridLen/rows {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrAllocation)
	}
	n := rows * cols
	buf, err := allocGrid(n)
	if err != nil {
		return nil, fmt.Errorf("grid %dx%d: %w: %w", rows, cols, ErrAllocation, err)
	}
	if len(buf) != n {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrAllocation)
	}
	liveGrids.Add(1)

	return buf, nil
}

// releaseGrid records that one grid went out of use.
func releaseGrid() {
	liveGrids.Add(-1)
}

// LiveGrids reports how many Dense buffers are currently allocated and not
// yet released via (*Dense).Release. Useful to assert leak-freedom of
// caller code: a balanced program returns to its starting value.
func LiveGrids() int64 {
	return liveGrids.Load()
}
