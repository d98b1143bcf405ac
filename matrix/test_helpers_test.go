// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Tie every fixture to t.Cleanup so tests do not leak grids.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// approx is the absolute tolerance for grid comparisons of computed results;
// approxRel is the relative one, for large magnitudes.
const (
	approx    = 1e-9
	approxRel = 1e-12
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test; released at cleanup.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	t.Cleanup(m.Release)

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test; released at cleanup.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}
	t.Cleanup(m.Release)

	return m
}

// MustIdentity RETURNS I_n; released at cleanup.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}
	t.Cleanup(m.Release)

	return m
}

// Own REGISTERS a result for release at cleanup and returns it.
func Own(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	t.Cleanup(m.Release)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense BUILDS an n×m matrix with entries in [-1,1) from a fixed seed.
func RandomDense(t testing.TB, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// DominantDense BUILDS a strictly diagonally dominant (hence invertible,
// well-conditioned) n×n matrix from a fixed seed.
func DominantDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandomDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		v := MustAt(t, m, i, i)
		require.NoError(t, m.Set(i, i, v+float64(n)+1))
	}

	return m
}

// CompareRows asserts got matches want element-wise within approx.
func CompareRows(t testing.TB, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	if diff := cmp.Diff(want, got.ToRows(), cmpopts.EquateApprox(approxRel, approx)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// NoLeak snapshots LiveGrids and returns a check that it is back to the snapshot.
// Callers must not run in parallel.
func NoLeak(t testing.TB) func() {
	t.Helper()
	base := matrix.LiveGrids()

	return func() {
		t.Helper()
		require.Equal(t, base, matrix.LiveGrids(), "live grid count changed")
	}
}
