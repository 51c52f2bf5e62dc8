// SPDX-License-Identifier: MIT
// Package matrix: determinant and inverse kernels.
//
// Both kernels use naive cofactor expansion — O(n!) — on purpose: the
// recursion is the reference semantics for this engine and stays practical
// only for small n (≤ 8..10). Signatures are stable so an LU-based
// implementation can replace the internals without changing callers.
// Recursion depth equals n; very large inputs can exhaust the call stack,
// which is a documented resource limit of the algorithm, not a bug.

package matrix

// Det computes the determinant of a square matrix via cofactor expansion
// along row 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); materialize a *Dense view (copy for
//     foreign implementations, zero-cost for *Dense).
//   - Stage 2: Recursive expansion — 1×1 and 2×2 base cases, otherwise
//     Σ_j m[0,j]·det(minor(0,j))·(-1)^j in fixed j order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Det(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	// Materialize a Dense view for flat recursion
	d, _, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	// Recurse on flat storage
	return detDense(d), nil
}

// detDense is the recursive cofactor core. Input must be square and is never
// mutated; the minor buffer is rebuilt per column before each recursive call.
func detDense(m *Dense) float64 {
	n := m.r

	// Base case: 1×1 returns the single entry.
	if n == 1 {
		return m.data[0]
	}
	// Base case: 2×2 returns ad − bc.
	if n == 2 {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	// General case: expand along row 0 with alternating signs.
	var (
		det  float64
		term float64
		j    int
	)
	sub := &Dense{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1))}
	for j = 0; j < n; j++ { // fixed column order for determinism
		minorInto(m, 0, j, sub)          // rebuild the (n-1)×(n-1) minor
		term = m.data[j] * detDense(sub) // entry[0][j] · det(minor)
		if j%2 == 0 {                    // sign = (-1)^j
			det += term
		} else {
			det -= term
		}
	}

	return det
}

// minorInto fills dst with the minor of src obtained by deleting skipRow and
// skipCol. dst must be (src.r-1)×(src.c-1); every cell is overwritten.
// Complexity: O(n²).
func minorInto(src *Dense, skipRow, skipCol int, dst *Dense) {
	var i, j, di, dj int // source and destination cursors
	for i = 0; i < src.r; i++ {
		if i == skipRow {
			continue
		}
		dj = 0
		for j = 0; j < src.c; j++ {
			if j == skipCol {
				continue
			}
			dst.data[di*dst.c+dj] = src.data[i*src.c+j]
			dj++
		}
		di++
	}
}

// Inverse computes A⁻¹ via the adjugate: transpose of the cofactor matrix
// scaled by 1/det(A).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); Det(m); reject det == 0 with
//     ErrSingular (exact comparison, no epsilon — see package doc).
//   - Stage 2: 1×1 shortcut [[1/det]]. Otherwise build the cofactor matrix
//     C[i,j] = det(minor(i,j))·(-1)^(i+j), then compose Transpose and Scale.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (det exactly zero).
//
// Complexity:
//   - Time O(n²·n!) from the cofactor determinants, Space O(n²).
//
// Notes:
//   - The exact-zero singularity check is fragile near-singular inputs under
//     floating-point rounding; callers needing a tolerance must pre-screen.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Materialize a Dense view for flat recursion
	d, _, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Determinant gate: exactly zero ⇒ not invertible.
	det := detDense(d)
	if det == ZeroPivot {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// 1×1 shortcut: [[1/det]].
	n := d.r
	if n == 1 {
		res, allocErr := NewDense(1, 1)
		if allocErr != nil {
			return nil, matrixErrorf(opInverse, allocErr)
		}
		res.data[0] = 1.0 / det

		return res, nil
	}

	// Build the cofactor matrix C[i,j] = det(minor(i,j)) · (-1)^(i+j).
	cof, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		i, j int     // cell cursors
		c    float64 // signed minor determinant
	)
	sub := &Dense{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1))}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minorInto(d, i, j, sub)
			c = detDense(sub)
			if (i+j)%2 == 1 {
				c = -c
			}
			cof.data[i*n+j] = c
		}
	}

	// inverse = adjugate · (1/det) = transpose(C) · (1/det).
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1.0/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
