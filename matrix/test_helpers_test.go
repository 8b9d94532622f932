// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Fail fast (t.Fatalf via require) on construction errors so test bodies
//     stay focused on the behavior under test.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/rational"
)

// q is a terse rational literal.
func q(p, d int64) rational.Q { return rational.MustNew(p, d) }

// n is an integer rational literal.
func n(p int64) rational.Q { return rational.FromInt(p) }

// mustInts builds a Matrix of integers or fails the test.
func mustInts(t *testing.T, rows [][]int64) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// mustQs builds a Matrix of rationals or fails the test.
func mustQs(t *testing.T, rows [][]rational.Q) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(t *testing.T, size int) matrix.Matrix {
	t.Helper()
	id, err := matrix.Identity(size)
	require.NoError(t, err)

	return id
}

// requireMatrixEqual compares shapes and entries and prints both on failure.
func requireMatrixEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}

// Fixtures with known determinants and ranks.
var (
	// pascal3 is the 3×3 Pascal matrix: det 1, rank 3.
	pascal3 = [][]int64{{1, 1, 1}, {1, 2, 3}, {1, 3, 6}}

	// cyclic4 is a circulant-like 4×4: det 160, rank 4.
	cyclic4 = [][]int64{{1, 2, 3, 4}, {2, 3, 4, 1}, {3, 4, 1, 2}, {4, 1, 2, 3}}

	// diagHeavy5: det 394, rank 5.
	diagHeavy5 = [][]int64{
		{2, 1, 1, 1, 1},
		{1, 3, 1, 1, 1},
		{1, 1, 4, 1, 1},
		{1, 1, 1, 5, 1},
		{1, 1, 1, 1, 6},
	}

	// cramer3: det 60, rank 3.
	cramer3 = [][]int64{{2, -1, -1}, {3, 4, -2}, {3, -2, 4}}

	// singular4a and singular4b: det 0, rank 2.
	singular4a = [][]int64{{0, 4, 10, 1}, {4, 8, 18, 7}, {10, 18, 40, 17}, {1, 7, 17, 3}}
	singular4b = [][]int64{{2, 1, 11, 2}, {1, 0, 4, -1}, {11, 4, 56, 5}, {2, -1, 5, -6}}

	// incompatible4 is the coefficient matrix of an inconsistent system: det 0, rank 3.
	incompatible4 = [][]int64{{2, 0, 2, 0}, {0, 1, 1, 0}, {1, 0, 1, 0}, {0, 2, 0, 1}}

	// dupRows4x5 has two identical rows: rank 3.
	dupRows4x5 = [][]int64{
		{1, 1, 1, 1, 1},
		{0, 0, 1, 1, -3},
		{0, 0, 1, 1, -3},
		{0, 0, 0, 0, -1},
	}

	// tall7x5: rank 5.
	tall7x5 = [][]int64{
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 1, 1, 1},
		{1, 3, 4, 5, 1},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
	}

	// lowRank5: rank 2.
	lowRank5 = [][]int64{
		{1, 1, 1, 1, 1},
		{3, 2, 1, 1, -3},
		{0, 1, 2, 2, 6},
		{5, 4, 3, 3, -1},
		{5, 4, 3, 3, -1},
	}
)
