// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.
//   - Keep all data finite and well-formed unless a test exercises a failure path.

package matrix_test

import (
	"math"
	"testing"

	"github.com/lvlgo/matrixcalc/matrix"
)

// Tol is the shared floating tolerance for approximate comparisons.
const Tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the generic (non-*Dense) fallback path in kernels,
// asserting that fast-path and fallback agree.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustParse parses the textual representation or fails the test.
func MustParse(t *testing.T, text string) *matrix.Dense {
	t.Helper()
	m, err := matrix.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// CompareExact asserts m equals want cell-for-cell with == semantics.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d", len(want), len(want[0]), m.Rows(), m.Cols())
	}
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("cell [%d,%d]: want %g, got %g", i, j, want[i][j], got)
			}
		}
	}
}

// CompareClose asserts m equals want cell-for-cell within Tol.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d", len(want), len(want[0]), m.Rows(), m.Cols())
	}
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); math.Abs(got-want[i][j]) > Tol {
				t.Fatalf("cell [%d,%d]: want %g, got %g (tol %g)", i, j, want[i][j], got, Tol)
			}
		}
	}
}

// MatricesClose asserts a and b are equal cell-for-cell within Tol.
func MatricesClose(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int // loop iterators
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > Tol {
				t.Fatalf("cell [%d,%d]: %g vs %g (tol %g)", i, j, av, bv, Tol)
			}
		}
	}
}

// VectorsClose asserts two solution vectors are equal within Tol.
func VectorsClose(t *testing.T, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > Tol {
			t.Fatalf("x%d: want %g, got %g (tol %g)", i+1, want[i], got[i], Tol)
		}
	}
}
