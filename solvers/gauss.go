// SPDX-License-Identifier: MIT
// Package solvers - elimination-based strategies: Gauss and Gauss-Jordan.
//
// Both classify the system before touching the eliminated matrix, so an
// incompatible or indeterminate system never yields a partial result.
// Overdetermined systems (more equations than unknowns) are solved when they
// are consistent and of full column rank.

package solvers

import (
	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/rational"
)

// Gauss solves Ax = b by forward elimination of [A|b] and back-substitution.
//
// Implementation:
//   - Stage 1: classify; fail with ErrIncompatible or ErrIndeterminate.
//   - Stage 2: forward-eliminate [A|b]; stagger the rows if a diagonal
//     entry is zero.
//   - Stage 3: back-substitute over the first A.Cols() rows:
//     x_i = (r_i[n] − Σ_{j>i} r_i[j]·x_j) / r_i[i].
//
// Indeterminate is judged against the number of unknowns, not the number of
// equations: a consistent overdetermined system of full column rank is solved
// rather than rejected as it would be under a rank < Rows rule.
//
// Errors:
//   - ErrDimensionMismatch, ErrIncompatible, ErrIndeterminate, ErrOverflow.
//   - ErrSingular if a zero pivot survives staggering.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func Gauss(a matrix.Matrix, b matrix.Vector) (matrix.Vector, error) {
	rows, err := eliminated(a, b, false)
	if err != nil {
		return matrix.Vector{}, solverErrorf(opGauss, err)
	}
	x, err := backSubstitute(rows, a.Cols())
	if err != nil {
		return matrix.Vector{}, solverErrorf(opGauss, err)
	}

	return x, nil
}

// GaussJordan solves Ax = b by forward and backward elimination of [A|b],
// reading each unknown off its normalized row.
//
// Implementation:
//   - Stage 1: classify; fail with ErrIncompatible or ErrIndeterminate.
//   - Stage 2: forward pass, StaggerRows, backward pass from column A.Cols()-1.
//   - Stage 3: x_i = r_i[n] / r_i[i] for the first A.Cols() rows.
//
// Errors:
//   - ErrDimensionMismatch, ErrIncompatible, ErrIndeterminate, ErrOverflow.
//   - ErrSingular if a zero pivot survives staggering.
func GaussJordan(a matrix.Matrix, b matrix.Vector) (matrix.Vector, error) {
	rows, err := eliminated(a, b, true)
	if err != nil {
		return matrix.Vector{}, solverErrorf(opGaussJordan, err)
	}
	x, err := normalize(rows, a.Cols())
	if err != nil {
		return matrix.Vector{}, solverErrorf(opGaussJordan, err)
	}

	return x, nil
}

// eliminated classifies the system and returns the rows of the eliminated
// augmented matrix; jordan adds the backward pass.
func eliminated(a matrix.Matrix, b matrix.Vector, jordan bool) ([][]rational.Q, error) {
	aug, err := solvable(a, b)
	if err != nil {
		return nil, err
	}
	red, _, err := matrix.ForwardEliminate(aug)
	if err != nil {
		return nil, err
	}
	if jordan || !matrix.IsStaggered(red) {
		red = matrix.StaggerRows(red)
	}
	if jordan {
		if red, err = matrix.BackwardEliminate(red, a.Cols()-1); err != nil {
			return nil, err
		}
	}

	return red.ToSlices(), nil
}

// backSubstitute solves the upper-triangular part of rows for n unknowns.
func backSubstitute(rows [][]rational.Q, n int) (x matrix.Vector, err error) {
	defer rational.CatchOverflow(&err)

	sol := make([]rational.Q, n)
	for i := n - 1; i >= 0; i-- {
		r := rows[i]
		if r[i].IsZero() {
			return matrix.Vector{}, ErrSingular
		}
		s := r[n]
		for j := i + 1; j < n; j++ {
			s = s.Sub(r[j].Mul(sol[j]))
		}
		sol[i] = s.Quo(r[i])
	}

	return matrix.NewVector(sol...), nil
}

// normalize divides the augmented entry of each of the first n rows by its
// diagonal entry.
func normalize(rows [][]rational.Q, n int) (x matrix.Vector, err error) {
	defer rational.CatchOverflow(&err)

	sol := make([]rational.Q, n)
	for i := 0; i < n; i++ {
		if rows[i][i].IsZero() {
			return matrix.Vector{}, ErrSingular
		}
		sol[i] = rows[i][n].Quo(rows[i][i])
	}

	return matrix.NewVector(sol...), nil
}
