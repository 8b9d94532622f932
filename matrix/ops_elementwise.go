// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels (Add, Sub, Hadamard, DivElem, Scale).
//
// Purpose:
//   - One shared zip kernel with shape validation and overflow capture.
//   - Thin exported wrappers that only pick the scalar operation and tag.
//
// Determinism:
//   - Single flat walk 0..rows*cols-1 over row-major storage.

package matrix

import "github.com/katalvlaran/tangled/rational"

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opDivElem  = "DivElem"
	opScale    = "Scale"
)

// zipMatrix computes out[k] = f(a[k], b[k]) for identically shaped a, b.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: flat loop into a fresh buffer; Q overflow panics become ErrOverflow.
//
// Errors:
//   - ErrDimensionMismatch, ErrOverflow, and whatever f returns.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipMatrix(op string, a, b Matrix, f func(x, y rational.Q) (rational.Q, error)) (out Matrix, err error) {
	if err = ValidateSameShape(a, b); err != nil {
		return Matrix{}, matrixErrorf(op, err)
	}
	defer func() {
		if err != nil {
			out, err = Matrix{}, matrixErrorf(op, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	buf := make([]rational.Q, len(a.data))
	for k := range buf {
		if buf[k], err = f(a.data[k], b.data[k]); err != nil {
			return Matrix{}, err
		}
	}

	return matrixOwning(a.rows, a.cols, buf), nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrDimensionMismatch (shape mismatch), ErrOverflow.
func Add(a, b Matrix) (Matrix, error) {
	return zipMatrix(opAdd, a, b, func(x, y rational.Q) (rational.Q, error) { return x.Add(y), nil })
}

// Sub computes the element-wise difference C = A − B.
// Errors: ErrDimensionMismatch (shape mismatch), ErrOverflow.
func Sub(a, b Matrix) (Matrix, error) {
	return zipMatrix(opSub, a, b, func(x, y rational.Q) (rational.Q, error) { return x.Sub(y), nil })
}

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j].
// Errors: ErrDimensionMismatch (shape mismatch), ErrOverflow.
func Hadamard(a, b Matrix) (Matrix, error) {
	return zipMatrix(opHadamard, a, b, func(x, y rational.Q) (rational.Q, error) { return x.Mul(y), nil })
}

// DivElem computes the element-wise quotient C[i,j] = A[i,j]/B[i,j].
// Errors: ErrDimensionMismatch, ErrDivisionByZero, ErrOverflow.
func DivElem(a, b Matrix) (Matrix, error) {
	return zipMatrix(opDivElem, a, b, rational.Q.Div)
}

// Scale returns alpha·m.
// Errors: ErrOverflow.
func Scale(m Matrix, alpha rational.Q) (out Matrix, err error) {
	defer func() {
		if err != nil {
			out, err = Matrix{}, matrixErrorf(opScale, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	buf := make([]rational.Q, len(m.data))
	for k, x := range m.data {
		buf[k] = x.Mul(alpha)
	}

	return matrixOwning(m.rows, m.cols, buf), nil
}
