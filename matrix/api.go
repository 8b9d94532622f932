// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented factory entry points (zeros, identity,
//     diagonal) and function-style aliases for the derived quantities.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or arithmetic of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/katalvlaran/tangled/rational"

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zeros returns the rows×cols zero matrix. Either dimension may be 0.
//
// Errors: ErrInvalidDimensions on negative dimensions.
func Zeros(rows, cols int) (Matrix, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return Matrix{}, matrixErrorf(opZeros, err)
	}

	return matrixOwning(rows, cols, make([]rational.Q, rows*cols)), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
//
// Errors: ErrInvalidDimensions if n < 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (Matrix, error) {
	if n < 0 {
		return Matrix{}, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	buf := make([]rational.Q, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = rational.One
	}

	return matrixOwning(n, n, buf), nil
}

// Diagonal returns the square matrix with v on its diagonal.
func Diagonal(v Vector) Matrix {
	n := len(v.elems)
	buf := make([]rational.Q, n*n)
	for i, x := range v.elems {
		buf[i*n+i] = x
	}

	return matrixOwning(n, n, buf)
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) Matrix {
	return matrixOwning(m.rows, m.cols, make([]rational.Q, m.rows*m.cols))
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
//
// Errors: ErrNonSquare.
func IdentityLike(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return Matrix{}, matrixErrorf(opIdentity, err)
	}

	return Identity(m.rows)
}

// ---------- Derived-quantity facades ----------

// Determinant is the function form of m.Determinant().
func Determinant(m Matrix) (rational.Q, error) { return m.Determinant() }

// Inverse is the function form of m.Inverse().
func Inverse(m Matrix) (Matrix, error) { return m.Inverse() }

// Rank is the function form of m.Rank().
func Rank(m Matrix) (int, error) { return m.Rank() }
