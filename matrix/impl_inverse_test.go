package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestInverse_Scenarios(t *testing.T) {
	t.Run("2x2", func(t *testing.T) {
		inv, err := matrix.Inverse(MustRows(t, [][]float64{{1, 2}, {3, 4}}))
		require.NoError(t, err)
		CompareRows(t, [][]float64{{-2, 1}, {1.5, -0.5}}, Own(t, inv))
	})
	t.Run("2I3", func(t *testing.T) {
		a := MustRows(t, [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})
		inv, err := matrix.Inverse(a)
		require.NoError(t, err)
		half, err := matrix.Scale(MustIdentity(t, 3), 0.5)
		require.NoError(t, err)
		require.True(t, matrix.Equal(Own(t, half), Own(t, inv)))
	})
	t.Run("3x3", func(t *testing.T) {
		inv, err := matrix.InverseOf(MustRows(t, [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}))
		require.NoError(t, err)
		// Cᵀ / 49.
		CompareRows(t, [][]float64{
			{4.0 / 49, 19.0 / 49, 3.0 / 49},
			{-11.0 / 49, 9.0 / 49, 4.0 / 49},
			{8.0 / 49, -11.0 / 49, 6.0 / 49},
		}, Own(t, inv))
	})
	t.Run("1x1", func(t *testing.T) {
		inv, err := matrix.Inverse(MustRows(t, [][]float64{{4}}))
		require.NoError(t, err)
		CompareRows(t, [][]float64{{0.25}}, Own(t, inv))
	})
}

// TestInverse_ProductIsIdentity checks A·A⁻¹ == I and A⁻¹·A == I.
func TestInverse_ProductIsIdentity(t *testing.T) {
	fixtures := []*matrix.Dense{
		MustRows(t, [][]float64{{1, 2}, {3, 4}}),
		MustRows(t, [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}),
		MustRows(t, [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}),
		DominantDense(t, 5, 2024),
		DominantDense(t, 6, 7),
	}
	for _, a := range fixtures {
		n := a.Rows()
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			Own(t, inv)

			right, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			require.True(t, matrix.Equal(MustIdentity(t, n), Own(t, right)), "A·A⁻¹:\n%v", right)

			left, err := matrix.Mul(inv, a)
			require.NoError(t, err)
			require.True(t, matrix.Equal(MustIdentity(t, n), Own(t, left)), "A⁻¹·A:\n%v", left)
		})
	}
}

func TestInverse_Singular(t *testing.T) {
	cases := map[string][][]float64{
		"zero row":      {{1, 2}, {0, 0}},
		"1x1 zero":      {{0}},
		"dependent 3x3": {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			a := MustRows(t, rows)
			check := NoLeak(t)

			inv, err := matrix.Inverse(a)
			require.Nil(t, inv)
			require.ErrorIs(t, err, matrix.ErrSingular)
			require.Equal(t, matrix.StatusCalcError, matrix.StatusOf(err))
			check()
		})
	}
}

// TestInverse_ExactZeroPolicy: a tiny but non-zero determinant is invertible.
func TestInverse_ExactZeroPolicy(t *testing.T) {
	a := MustRows(t, [][]float64{{1e-10, 0}, {0, 1e-10}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareRows(t, [][]float64{{1e10, 0}, {0, 1e10}}, Own(t, inv))
}

func TestInverse_Errors(t *testing.T) {
	rect := MustDense(t, 2, 3)

	_, err := matrix.Inverse(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Equal(t, matrix.StatusCalcError, matrix.StatusOf(err))

	_, err = matrix.Inverse(&matrix.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)
	require.Equal(t, matrix.StatusMatrixError, matrix.StatusOf(err))

	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrMatrix)
}

// TestInverse_AllocationFailureAtEveryStep walks the injected failure through
// the determinant, cofactor, transpose and result allocations. Every failed
// attempt must leave the live count untouched; failures inside the cofactor
// step are reported with the calculation kind.
func TestInverse_AllocationFailureAtEveryStep(t *testing.T) {
	a := MustRows(t, [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})
	want, err := matrix.Inverse(a)
	require.NoError(t, err)
	Own(t, want)
	check := NoLeak(t)

	sawCalc := false
	for k := 0; ; k++ {
		restore := matrix.FailGridAfterForTest(k)
		got, err := matrix.Inverse(a)
		restore()

		if err == nil {
			require.True(t, matrix.Equal(want, got))
			got.Release()
			check()
			require.True(t, sawCalc, "no failure surfaced from the cofactor step")
			return
		}
		check()
		require.Nil(t, got)
		require.ErrorIs(t, err, matrix.ErrAllocation, "k=%d", k)
		if matrix.StatusOf(err) == matrix.StatusCalcError {
			sawCalc = true
		}
		require.Less(t, k, 64, "inverse never succeeded")
	}
}
