// Package tangled is exact linear algebra over rational numbers: no
// floating-point drift, no epsilon comparisons, every answer reproducible.
//
// 🚀 What is tangled?
//
//	A small, pure-Go library that brings together:
//		• Rational scalars: int64 numerator/denominator, always reduced
//		• Vectors & matrices: immutable values, row-major storage
//		• Derived quantities: determinant, adjugate, inverse, rank
//		• Linear systems: Gauss, Gauss-Jordan, Cramer, inverse method
//		• Classification: determined / indeterminate / incompatible
//
// ✨ Why choose tangled?
//
//   - Exact – all four solvers agree bit-for-bit on every non-singular system
//   - Honest failures – overflow and singularity are errors, never wrong numbers
//   - Concurrency-safe – values are immutable, elimination state is per call
//
// Under the hood, everything is organized under three subpackages:
//
//	rational/ Q, checked arithmetic, parsing & float conversion
//	matrix/   Vector, Matrix, elimination engine, Determinant/Inverse/Rank
//	solvers/  Gauss, GaussJordan, Cramer, InverseMethod, Solve, CrossCheck
//
// Quick example:
//
//	A, _ := matrix.ParseMatrix("2 -1 -1; 3 4 -2; 3 -2 4")
//	x, _ := solvers.Solve(A, matrix.VectorOf(4, 11, 11))
//	fmt.Println(x) // (3,1,1)
//
// A command-line front end lives in cmd/tangled.
//
//	go get github.com/katalvlaran/tangled
package tangled
