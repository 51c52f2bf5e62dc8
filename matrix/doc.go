// SPDX-License-Identifier: MIT

// Package matrix implements a dense, real-valued matrix algebra engine.
//
// The matrix package provides:
//
//   - A textual parser/formatter (Parse, Format) for the line-per-row,
//     whitespace-separated representation used by interactive front-ends.
//   - Core algebra kernels (Add, Sub, Scale, Mul, Transpose) plus cofactor
//     determinants (Det) and adjugate inverses (Inverse).
//   - Linear-system solvers over augmented matrices: GaussianElimination
//     with partial pivoting and CramerRule.
//
// All operations are stateless and follow value semantics: inputs are never
// mutated, every result is freshly allocated, and nothing is shared between
// calls, so concurrent use needs no coordination.
//
// Failures are reported through package-level sentinel errors (ErrNonSquare,
// ErrSingular, ErrInvalidNumber, ...) matched via errors.Is; the package
// itself never logs and never panics on user input.
//
// Det and Inverse deliberately use naive cofactor expansion — O(n!) — and
// are practical only for small matrices (n ≤ 8..10). The signatures are
// stable so an LU-based implementation can replace the internals later
// without touching callers.
package matrix
