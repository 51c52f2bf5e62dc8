// Package matrixcalc is a small, deterministic engine for dense,
// real-valued matrix algebra — parse a matrix from text, compute with it,
// and format the result back.
//
// 🚀 What is matrixcalc?
//
//	A stateless, pure-Go library that brings together:
//		• Text I/O: whitespace-separated rows in, column-aligned rendering out
//		• Core algebra: Add, Sub, Scale, Mul, Transpose
//		• Determinants & inverses: cofactor expansion + adjugate
//		• Linear systems: Gaussian elimination (partial pivoting) and Cramer's rule
//
// ✨ Why choose matrixcalc?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – value semantics, no shared mutable state
//   - Predictable failures – sentinel errors matched via errors.Is
//   - Extensible – every operation targets the Matrix interface, not a struct
//
// Under the hood, everything is organized under two surfaces:
//
//	matrix/ — the engine: Dense storage, kernels, parser/formatter, solvers
//	cmd/    — mcalc, a thin command shell that forwards everything to matrix/
//
// Quick ASCII example:
//
//	⎡ 1 2 ⎤      det = -2
//	⎣ 3 4 ⎦      inv = ⎡ -2    1  ⎤
//	                   ⎣ 1.5 -0.5 ⎦
//
// Every operation reads its inputs and writes only freshly allocated output,
// so callers may invoke the engine concurrently without coordination.
//
//	go get github.com/lvlgo/matrixcalc/matrix
package matrixcalc
