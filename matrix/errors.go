// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (offending row/column, operation name),
// wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.
//
// Two taxonomies live here:
// parse errors (textual ingestion) and dimension errors (algebra kernels),
// plus the structural sentinels every Matrix surface needs (nil, bounds).

var (
	// ErrEmptyInput is returned by Parse when splitting the input yields no
	// rows at all. strings.Split never produces that, so the sentinel is a
	// guard for future ingestion paths.
	ErrEmptyInput = errors.New("matrix: empty matrix string")

	// ErrEmptyRow is returned by Parse when the first row contains zero
	// whitespace-separated tokens, leaving the column count undefined.
	// Blank and all-whitespace inputs trim down to one empty row and land here.
	ErrEmptyRow = errors.New("matrix: empty matrix row")

	// ErrInvalidNumber signals a token that does not parse as a float64.
	// Parse wraps it with the offending row and column indices.
	ErrInvalidNumber = errors.New("matrix: invalid number")

	// ErrInconsistentColumns signals a row whose token count differs from the
	// first row's. Parse wraps it with the offending row index.
	ErrInconsistentColumns = errors.New("matrix: inconsistent number of columns")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Dense creation must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Det and Inverse return this for rectangular operands.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates operands whose shapes must agree but do
	// not, e.g. Add/Sub with different rows or columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatible indicates a matrix product A×B where A.Cols != B.Rows.
	ErrIncompatible = errors.New("matrix: incompatible dimensions for multiplication")

	// ErrInvalidAugmented indicates a solver input that is not an augmented
	// system [A|b], i.e. Cols != Rows+1.
	ErrInvalidAugmented = errors.New("matrix: invalid augmented matrix dimensions")

	// ErrSingular is returned when a determinant is exactly zero (Inverse,
	// CramerRule) or a zero pivot survives partial pivoting (GaussianElimination).
	// The check is exact by design; no epsilon tolerance is applied.
	ErrSingular = errors.New("matrix: singular matrix")
)
