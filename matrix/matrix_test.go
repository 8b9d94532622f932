// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/rational"
)

func TestNewMatrix(t *testing.T) {
	t.Parallel()

	rows := [][]rational.Q{{q(1, 2), n(2)}, {n(-1), q(1, 4)}}
	m := mustQs(t, rows)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.True(t, m.IsSquare())
	assert.False(t, m.IsEmpty())
	assert.Equal(t, "0.5\t2\t\n-1\t0.25\t\n", m.String())

	// Mutating the source table must not leak into the matrix.
	rows[0][0] = n(100)
	got, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, q(1, 2), got)

	// Nor may mutating an exported copy.
	out := m.ToSlices()
	out[1][1] = n(7)
	got, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, q(1, 4), got)

	_, err = matrix.NewMatrix([][]rational.Q{{n(1), n(2)}, {n(3)}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromInts([][]int64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.NewMatrix(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.Equal(matrix.Matrix{}))
}

func TestSquare(t *testing.T) {
	t.Parallel()

	m, err := matrix.Square(n(1), n(2), n(3), n(4))
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 2}, {3, 4}}), m)

	_, err = matrix.Square(n(1), n(2), n(3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	one, err := matrix.Square(n(5))
	require.NoError(t, err)
	assert.Equal(t, 1, one.Rows())
}

func TestFactories(t *testing.T) {
	t.Parallel()

	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), mustIdentity(t, 3))
	requireMatrixEqual(t, mustInts(t, [][]int64{{2, 0}, {0, -3}}), matrix.Diagonal(matrix.VectorOf(2, -3)))

	z, err := matrix.Zeros(2, 3)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{0, 0, 0}, {0, 0, 0}}), z)
	requireMatrixEqual(t, z, matrix.ZerosLike(mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})))

	id, err := matrix.IdentityLike(mustInts(t, pascal3))
	require.NoError(t, err)
	requireMatrixEqual(t, mustIdentity(t, 3), id)

	_, err = matrix.IdentityLike(z)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Zeros(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	col := matrix.ColumnOf(matrix.VectorOf(4, 5, 6))
	requireMatrixEqual(t, mustInts(t, [][]int64{{4}, {5}, {6}}), col)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "(4,5,6)", row.String())

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, "(3,6)", col.String())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, n(4), v)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestReplace(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	r, err := m.ReplaceRow(0, matrix.VectorOf(7, 8, 9))
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{7, 8, 9}, {4, 5, 6}}), r)

	c, err := m.ReplaceCol(1, matrix.VectorOf(0, 0))
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 0, 3}, {4, 0, 6}}), c)

	// The receiver is untouched.
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}}), m)

	_, err = m.ReplaceRow(2, matrix.VectorOf(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.ReplaceRow(0, matrix.VectorOf(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.ReplaceCol(3, matrix.VectorOf(1, 2))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.ReplaceCol(0, matrix.VectorOf(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSlicing(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	rows, err := m.SliceRows(1, 2)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{4, 5, 6}, {7, 8, 9}}), rows)

	cols, err := m.SliceCols(0, 2)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 2}, {4, 5}, {7, 8}}), cols)

	bad := []struct {
		name         string
		start, count int
	}{
		{"negative start", -1, 1},
		{"start past end", 3, 1},
		{"zero count", 0, 0},
		{"window overflows", 2, 2},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.SliceRows(tc.start, tc.count)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			_, err = m.SliceCols(tc.start, tc.count)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

func TestMinorTransposeConcat(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	minor, err := m.Minor(1, 1)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 3}, {7, 9}}), minor)
	_, err = m.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	r := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}), r.Transpose())
	requireMatrixEqual(t, r, r.Transpose().Transpose())

	cat, err := matrix.Concat(r, mustInts(t, [][]int64{{0}, {1}}))
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 2, 3, 0}, {4, 5, 6, 1}}), cat)

	_, err = matrix.Concat(r, m)
	require.ErrorIs(t, err, matrix.ErrRowMismatch)

	aug, err := matrix.Augment(r, matrix.VectorOf(0, 1))
	require.NoError(t, err)
	requireMatrixEqual(t, cat, aug)
	_, err = matrix.Augment(r, matrix.VectorOf(0, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatrix_EqualAndHash(t *testing.T) {
	t.Parallel()

	a := mustQs(t, [][]rational.Q{{q(2, 4), n(1)}, {n(0), n(3)}})
	b := mustQs(t, [][]rational.Q{{q(1, 2), n(1)}, {n(0), q(9, 3)}})
	flat := mustQs(t, [][]rational.Q{{q(1, 2), n(1), n(0), n(3)}})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(flat), "same entries, different shape")
	assert.NotEqual(t, a.Hash(), flat.Hash())
}
