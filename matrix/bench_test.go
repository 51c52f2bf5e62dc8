// SPDX-License-Identifier: MIT
// Package matrix_test: benchmarks for the hot kernels.
//
// The determinant benches stop at n=7: cofactor expansion is O(n!) and the
// point of benchmarking it is to document the cliff, not to climb it.

package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lvlgo/matrixcalc/matrix"
)

// benchDense builds an n×n Dense filled from a fixed-seed PRNG.
func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, rng.Float64()*10-5); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

func BenchmarkAdd_64x64(b *testing.B) {
	a := benchDense(b, 64)
	c := benchDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(a, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_64x64(b *testing.B) {
	a := benchDense(b, 64)
	c := benchDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(a, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranspose_128x128(b *testing.B) {
	m := benchDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Transpose(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDet(b *testing.B) {
	for _, n := range []int{3, 5, 7} {
		m := benchDense(b, n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Det(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGaussianElimination_8x9(b *testing.B) {
	aug, err := matrix.NewDense(8, 9)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	var i, j int
	for i = 0; i < 8; i++ {
		for j = 0; j < 9; j++ {
			if err = aug.Set(i, j, rng.Float64()*10-5); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.GaussianElimination(aug); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCramerRule_6x7(b *testing.B) {
	aug, err := matrix.NewDense(6, 7)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	var i, j int
	for i = 0; i < 6; i++ {
		for j = 0; j < 7; j++ {
			if err = aug.Set(i, j, rng.Float64()*10-5); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.CramerRule(aug); err != nil {
			b.Fatal(err)
		}
	}
}
