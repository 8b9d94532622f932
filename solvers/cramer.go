// SPDX-License-Identifier: MIT
// Package solvers - determinant-based strategies: Cramer and InverseMethod.
//
// Both require a square, non-singular A. A non-square A is reported as
// ErrSingular wrapping ErrNonSquare, so errors.Is matches either sentinel.

package solvers

import (
	"fmt"

	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/rational"
)

// requireSquare returns ErrSingular joined with ErrNonSquare for non-square a.
func requireSquare(a matrix.Matrix) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("%w: %w", ErrSingular, err)
	}

	return nil
}

// Cramer solves Ax = b with Cramer's rule: x_i = det(A_i) / det(A), where
// A_i is A with column i replaced by b.
//
// Errors:
//   - ErrDimensionMismatch if b.Dim() != A.Rows().
//   - ErrSingular (also matching ErrNonSquare) for non-square A.
//   - ErrSingular if det(A) == 0.
//   - ErrOverflow.
//
// Complexity:
//   - Time O(n⁴): n+1 determinants of O(n³) each.
func Cramer(a matrix.Matrix, b matrix.Vector) (x matrix.Vector, err error) {
	defer func() {
		if err != nil {
			x, err = matrix.Vector{}, solverErrorf(opCramer, err)
		}
	}()
	if err = checkSystem(a, b); err != nil {
		return matrix.Vector{}, err
	}
	if err = requireSquare(a); err != nil {
		return matrix.Vector{}, err
	}
	det, err := a.Determinant()
	if err != nil {
		return matrix.Vector{}, err
	}
	if det.IsZero() {
		return matrix.Vector{}, ErrSingular
	}

	sol := make([]rational.Q, a.Cols())
	for i := range sol {
		ai, err := a.ReplaceCol(i, b)
		if err != nil {
			return matrix.Vector{}, err
		}
		di, err := ai.Determinant()
		if err != nil {
			return matrix.Vector{}, err
		}
		if sol[i], err = di.Div(det); err != nil {
			return matrix.Vector{}, err
		}
	}

	return matrix.NewVector(sol...), nil
}

// InverseMethod solves Ax = b as x = A⁻¹·b.
//
// Errors:
//   - ErrDimensionMismatch if b.Dim() != A.Rows().
//   - ErrSingular (also matching ErrNonSquare) for non-square A.
//   - ErrSingular if A is not invertible.
//   - ErrOverflow.
//
// Complexity:
//   - Time O(n⁵) for the adjugate-based inverse.
func InverseMethod(a matrix.Matrix, b matrix.Vector) (x matrix.Vector, err error) {
	defer func() {
		if err != nil {
			x, err = matrix.Vector{}, solverErrorf(opInverseMethod, err)
		}
	}()
	if err = checkSystem(a, b); err != nil {
		return matrix.Vector{}, err
	}
	if err = requireSquare(a); err != nil {
		return matrix.Vector{}, err
	}
	inv, err := a.Inverse()
	if err != nil {
		return matrix.Vector{}, err
	}

	return matrix.MulVec(inv, b)
}

// Rank returns the rank of A; it is the function form of A.Rank() and shares
// its rule, which can over-count on some wide matrices.
func Rank(a matrix.Matrix) (int, error) { return a.Rank() }
