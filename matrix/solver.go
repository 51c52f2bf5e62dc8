// SPDX-License-Identifier: MIT
// Package matrix: linear-system solvers over augmented matrices [A|b].
//
// Both solvers consume an m×(m+1) augmented matrix, operate on private
// copies, and return the solution as a plain []float64 in variable order.
// Singularity is detected by exact zero comparison (pivot or determinant),
// matching the engine-wide numeric policy; no epsilon is applied.

package matrix

import (
	"fmt"
	"math"
)

// GaussianElimination solves A·x = b for the augmented system [A|b] using
// forward elimination with partial pivoting and back-substitution.
//
// Implementation:
//   - Stage 1: ValidateAugmented(m); clone into a private Dense working copy.
//   - Stage 2: Forward phase — for each pivot index i, scan rows i..n-1 for
//     the largest |value| in column i (strict >, first occurrence wins),
//     swap it into position i, then eliminate below over columns i..cols-1.
//     A pivot that is still exactly zero after the scan means the column has
//     no usable pivot; the system has no unique solution → ErrSingular.
//   - Stage 3: Back-substitution from the last row upward.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidAugmented, ErrSingular (zero pivot column).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// AI-Hints:
//   - Pass a *Dense to avoid the interface materialization copy.
func GaussianElimination(m Matrix) ([]float64, error) {
	// Validate augmented shape: cols == rows+1
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}

	// Materialize, then clone: the elimination mutates its own copy only.
	src, copied, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	aug := src
	if !copied {
		aug = src.Clone().(*Dense)
	}

	rows, cols := aug.r, aug.c
	var (
		i, j, k int     // loop iterators
		maxRow  int     // row index with the largest pivot candidate
		factor  float64 // elimination multiplier
		pivot   float64 // current pivot value
	)

	// Forward phase: reduce to upper-triangular form.
	for i = 0; i < rows; i++ {
		// Partial pivoting: find the largest |value| in column i at or below row i.
		maxRow = i
		for k = i + 1; k < rows; k++ {
			if math.Abs(aug.data[k*cols+i]) > math.Abs(aug.data[maxRow*cols+i]) {
				maxRow = k // strict >, so the first occurrence wins ties
			}
		}
		// Swap the pivot row into position i when needed.
		if maxRow != i {
			swapRows(aug, i, maxRow)
		}

		// Zero-pivot guard: the entire column below (and at) i is zero.
		pivot = aug.data[i*cols+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opGauss, ErrSingular)
		}

		// Eliminate entries below the pivot over columns i..cols-1.
		for k = i + 1; k < rows; k++ {
			factor = aug.data[k*cols+i] / pivot
			for j = i; j < cols; j++ {
				aug.data[k*cols+j] -= factor * aug.data[i*cols+j]
			}
		}
	}

	// Back-substitution: solve from the last variable upward.
	solution := make([]float64, rows)
	for i = rows - 1; i >= 0; i-- {
		solution[i] = aug.data[i*cols+cols-1] // start from the constants column
		for j = i + 1; j < rows; j++ {
			solution[i] -= aug.data[i*cols+j] * solution[j]
		}
		solution[i] /= aug.data[i*cols+i]
	}

	return solution, nil
}

// swapRows exchanges rows a and b of a Dense in place.
// Complexity: O(c).
func swapRows(m *Dense, a, b int) {
	baseA, baseB := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[baseA+j], m.data[baseB+j] = m.data[baseB+j], m.data[baseA+j]
	}
}

// CramerRule solves A·x = b for the augmented system [A|b] via ratios of
// determinants: x_i = det(A_i)/det(A), where A_i is A with column i replaced
// by the constants column.
//
// Implementation:
//   - Stage 1: ValidateAugmented(m); extract the leading n×n coefficient
//     block A; compute det(A); reject an exactly-zero determinant.
//   - Stage 2: For each variable index i, rebuild A with column i replaced by
//     the constants column and divide its determinant by det(A).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidAugmented, ErrSingular (det(A) exactly zero).
//
// Complexity:
//   - Time O(n·n!) through the cofactor determinants, Space O(n²).
//
// Notes:
//   - Built on the same Det kernel as Inverse; well-conditioned systems agree
//     with GaussianElimination within floating tolerance.
func CramerRule(m Matrix) ([]float64, error) {
	// Validate augmented shape: cols == rows+1
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opCramer, err)
	}

	// Materialize the augmented system for flat access.
	aug, _, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}

	// Extract the leading n×n coefficient block A.
	n := aug.r
	coeff, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			coeff.data[i*n+j] = aug.data[i*aug.c+j]
		}
	}

	// det(A) gate: exactly zero ⇒ no unique solution.
	detA := detDense(coeff)
	if detA == ZeroPivot {
		return nil, matrixErrorf(opCramer, fmt.Errorf("coefficient determinant: %w", ErrSingular))
	}

	// Per-variable column replacement: x_i = det(A_i)/det(A).
	solution := make([]float64, n)
	work := coeff.Clone().(*Dense) // private scratch copy, rebuilt per variable
	for i = 0; i < n; i++ {
		// Replace column i with the constants column b.
		for j = 0; j < n; j++ {
			work.data[j*n+i] = aug.data[j*aug.c+n]
		}
		solution[i] = detDense(work) / detA
		// Restore column i from the coefficient block for the next variable.
		for j = 0; j < n; j++ {
			work.data[j*n+i] = coeff.data[j*n+i]
		}
	}

	return solution, nil
}
