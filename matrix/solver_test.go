// SPDX-License-Identifier: MIT
// Package matrix_test: linear-system solver tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlgo/matrixcalc/matrix"
)

// residual evaluates A·x − b for the augmented system [A|b] and returns the
// largest absolute component. Small residuals certify the solution without
// fixing an exact expected vector.
func residual(t *testing.T, aug matrix.Matrix, x []float64) float64 {
	t.Helper()
	var worst float64
	n := aug.Rows()
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += MustAt(t, aug, i, j) * x[j]
		}
		r := math.Abs(sum - MustAt(t, aug, i, n))
		if r > worst {
			worst = r
		}
	}

	return worst
}

func TestGaussianElimination_Known3x3(t *testing.T) {
	t.Parallel()

	aug := MustParse(t, "2 3 5 10\n1 -1 2 3\n3 2 -1 4")
	x, err := matrix.GaussianElimination(aug)
	require.NoError(t, err)
	require.Len(t, x, 3)

	// The solution must satisfy all three original equations.
	require.LessOrEqual(t, residual(t, aug, x), Tol)
}

func TestGaussianElimination_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	aug := MustParse(t, "2 3 5 10\n1 -1 2 3\n3 2 -1 4")
	snapshot := aug.Clone()
	_, err := matrix.GaussianElimination(aug)
	require.NoError(t, err)

	// The solver works on a private copy; the input stays untouched.
	var i, j int // loop iterators
	for i = 0; i < aug.Rows(); i++ {
		for j = 0; j < aug.Cols(); j++ {
			require.Equal(t, MustAt(t, snapshot, i, j), MustAt(t, aug, i, j), "cell [%d,%d]", i, j)
		}
	}
}

func TestGaussianElimination_PivotingHandlesZeroLead(t *testing.T) {
	t.Parallel()

	// Row 0 leads with zero; partial pivoting must swap before dividing.
	aug := MustParse(t, "0 2 4\n1 1 3")
	x, err := matrix.GaussianElimination(aug)
	require.NoError(t, err)
	VectorsClose(t, []float64{1, 2}, x)
}

func TestGaussianElimination_InvalidAugmented(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{3, 3}, {2, 4}, {3, 2},
	} {
		m := MustDense(t, tc.rows, tc.cols)
		_, err := matrix.GaussianElimination(m)
		require.ErrorIs(t, err, matrix.ErrInvalidAugmented, "%dx%d", tc.rows, tc.cols)
	}
	_, err := matrix.GaussianElimination(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGaussianElimination_SingularSystem(t *testing.T) {
	t.Parallel()

	// Second row is a multiple of the first; the pivot column below row 0
	// eliminates to exactly zero and the system has no unique solution.
	aug := MustParse(t, "1 2 3\n2 4 6")
	_, err := matrix.GaussianElimination(aug)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCramerRule_Known3x3(t *testing.T) {
	t.Parallel()

	aug := MustParse(t, "2 3 5 10\n1 -1 2 3\n3 2 -1 4")
	x, err := matrix.CramerRule(aug)
	require.NoError(t, err)
	require.Len(t, x, 3)
	require.LessOrEqual(t, residual(t, aug, x), Tol)
}

func TestCramerRule_InvalidAugmented(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3)
	_, err := matrix.CramerRule(m)
	require.ErrorIs(t, err, matrix.ErrInvalidAugmented)
}

func TestCramerRule_SingularCoefficients(t *testing.T) {
	t.Parallel()

	aug := MustParse(t, "1 2 3\n2 4 6")
	_, err := matrix.CramerRule(aug)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// For a well-conditioned system both solvers agree within tolerance.
func TestSolvers_Agree(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"2 3 5 10\n1 -1 2 3\n3 2 -1 4",
		"4 1 2\n1 3 5",
		"1 0 0 0 7\n0 2 0 0 8\n0 0 3 0 9\n0 0 0 4 10",
		"0 2 1 4\n3 1 -1 2\n1 1 1 6",
	} {
		t.Run(text, func(t *testing.T) {
			aug := MustParse(t, text)
			gauss, err := matrix.GaussianElimination(aug)
			require.NoError(t, err)
			cramer, err := matrix.CramerRule(aug)
			require.NoError(t, err)
			VectorsClose(t, gauss, cramer)
		})
	}
}

func TestSolvers_FallbackPath(t *testing.T) {
	t.Parallel()

	aug := MustParse(t, "2 3 5 10\n1 -1 2 3\n3 2 -1 4")
	fast, err := matrix.GaussianElimination(aug)
	require.NoError(t, err)
	slow, err := matrix.GaussianElimination(hide{aug})
	require.NoError(t, err)
	VectorsClose(t, fast, slow)

	fastC, err := matrix.CramerRule(aug)
	require.NoError(t, err)
	slowC, err := matrix.CramerRule(hide{aug})
	require.NoError(t, err)
	VectorsClose(t, fastC, slowC)
}

func TestSolverFacades(t *testing.T) {
	t.Parallel()

	aug := MustParse(t, "2 1 5\n1 3 5")
	g, err := matrix.SolveGaussian(aug)
	require.NoError(t, err)
	c, err := matrix.SolveCramer(aug)
	require.NoError(t, err)
	VectorsClose(t, g, c)
	VectorsClose(t, []float64{2, 1}, g)
}
