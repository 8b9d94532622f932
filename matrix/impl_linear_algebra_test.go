// Package matrix_test contains unit tests for matrix products.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangled/matrix"
)

func TestMul(t *testing.T) {
	t.Parallel()

	a := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := mustInts(t, [][]int64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{58, 64}, {139, 154}}), got)

	// Identity is neutral on both sides.
	p := mustInts(t, pascal3)
	left, err := matrix.Mul(mustIdentity(t, 3), p)
	require.NoError(t, err)
	requireMatrixEqual(t, p, left)
	right, err := matrix.Mul(p, mustIdentity(t, 3))
	require.NoError(t, err)
	requireMatrixEqual(t, p, right)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Overflow(t *testing.T) {
	t.Parallel()

	big := mustInts(t, [][]int64{{math.MaxInt64, math.MaxInt64}})
	_, err := matrix.Mul(big, big.Transpose())
	require.ErrorIs(t, err, matrix.ErrOverflow)
}

func TestVecMulAndMulVec(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	row, err := matrix.VecMul(matrix.VectorOf(1, -1), m)
	require.NoError(t, err)
	assert.Equal(t, "(-3,-3,-3)", row.String())

	col, err := matrix.MulVec(m, matrix.NewVector(q(1, 2), n(0), n(1)))
	require.NoError(t, err)
	assert.Equal(t, "(7/2,8)", col.String())

	_, err = matrix.VecMul(matrix.VectorOf(1, 2, 3), m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulVec(m, matrix.VectorOf(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
