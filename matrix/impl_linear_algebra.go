// SPDX-License-Identifier: MIT
// Package matrix provides matrix products over exact rationals:
// matrix×matrix, row-vector×matrix and matrix×column-vector. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Every result cell is the exact dot product of a row and a column.
//   - Q overflow inside a product is reported as ErrOverflow, never wrapped.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tangled/rational"
)

const (
	opMul    = "Mul"
	opVecMul = "VecMul"
	opMulVec = "MulVec"
)

// matrixErrorf wraps err with an operation tag via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A·B.
//
// Implementation:
//   - Stage 1: validate A.Cols == B.Rows.
//   - Stage 2: transpose B once so each cell is a dot of two contiguous rows.
//
// Errors:
//   - ErrDimensionMismatch if A.Cols != B.Rows.
//   - ErrOverflow.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c) plus the transposed copy of B.
func Mul(a, b Matrix) (out Matrix, err error) {
	if a.cols != b.rows {
		return Matrix{}, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	defer func() {
		if err != nil {
			out, err = Matrix{}, matrixErrorf(opMul, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	bt := b.Transpose()
	buf := make([]rational.Q, a.rows*b.cols)
	for i := 0; i < a.rows; i++ {
		ar := a.rowView(i)
		for j := 0; j < b.cols; j++ {
			buf[i*b.cols+j] = dot(ar, bt.rowView(j))
		}
	}

	return matrixOwning(a.rows, b.cols, buf), nil
}

// VecMul computes the row-vector product v·m.
//
// Errors:
//   - ErrDimensionMismatch if v.Dim() != m.Rows().
//   - ErrOverflow.
func VecMul(v Vector, m Matrix) (out Vector, err error) {
	if err = ValidateVecLen(v, m.rows); err != nil {
		return Vector{}, matrixErrorf(opVecMul, err)
	}
	defer func() {
		if err != nil {
			out, err = Vector{}, matrixErrorf(opVecMul, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	buf := make([]rational.Q, m.cols)
	for j := range buf {
		buf[j] = dot(v.elems, m.col(j))
	}

	return vectorOwning(buf), nil
}

// MulVec computes the column-vector product m·v.
//
// Errors:
//   - ErrDimensionMismatch if v.Dim() != m.Cols().
//   - ErrOverflow.
func MulVec(m Matrix, v Vector) (out Vector, err error) {
	if err = ValidateVecLen(v, m.cols); err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}
	defer func() {
		if err != nil {
			out, err = Vector{}, matrixErrorf(opMulVec, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	buf := make([]rational.Q, m.rows)
	for i := range buf {
		buf[i] = dot(m.rowView(i), v.elems)
	}

	return vectorOwning(buf), nil
}
