// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/rational"
)

func TestForwardEliminate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   [][]int64
		want [][]rational.Q
		sign int
	}{
		{
			name: "pivot in place",
			in:   [][]int64{{2, 1}, {4, 3}},
			want: [][]rational.Q{{n(2), n(1)}, {n(0), n(1)}},
			sign: 1,
		},
		{
			name: "zero above pivot flips the sign",
			in:   [][]int64{{0, 1}, {1, 1}},
			want: [][]rational.Q{{n(0), n(1)}, {n(1), n(1)}},
			sign: -1,
		},
		{
			name: "pascal",
			in:   pascal3,
			want: [][]rational.Q{{n(1), n(1), n(1)}, {n(0), n(1), n(2)}, {n(0), n(0), n(1)}},
			sign: 1,
		},
		{
			name: "fractions appear",
			in:   cramer3,
			want: [][]rational.Q{{n(2), n(-1), n(-1)}, {n(0), q(11, 2), q(-1, 2)}, {n(0), n(0), q(60, 11)}},
			sign: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := mustInts(t, tc.in)
			got, sign, err := matrix.ForwardEliminate(src)
			require.NoError(t, err)
			requireMatrixEqual(t, mustQs(t, tc.want), got)
			assert.Equal(t, tc.sign, sign)
			// The input is never modified.
			requireMatrixEqual(t, mustInts(t, tc.in), src)
		})
	}
}

func TestStaggerRows(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{0, 1, 5}, {2, 0, 3}})
	assert.False(t, matrix.IsStaggered(m))

	s := matrix.StaggerRows(m)
	requireMatrixEqual(t, mustInts(t, [][]int64{{2, 0, 3}, {0, 1, 5}}), s)
	assert.True(t, matrix.IsStaggered(s))

	// Nothing to swap with: the matrix comes back unchanged.
	stuck := mustInts(t, [][]int64{{1, 2, 3}, {0, 0, 4}})
	requireMatrixEqual(t, stuck, matrix.StaggerRows(stuck))
	assert.False(t, matrix.IsStaggered(stuck))

	// Degenerate shapes are trivially staggered.
	assert.True(t, matrix.IsStaggered(matrix.Matrix{}))
	assert.True(t, matrix.IsStaggered(mustInts(t, [][]int64{{0}, {0}})))
}

func TestBackwardEliminate(t *testing.T) {
	t.Parallel()

	m := mustInts(t, [][]int64{{1, 1, 3}, {0, 1, 1}})
	got, err := matrix.BackwardEliminate(m, 1)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts(t, [][]int64{{1, 0, 2}, {0, 1, 1}}), got)

	same, err := matrix.BackwardEliminate(m, 0)
	require.NoError(t, err)
	requireMatrixEqual(t, m, same)

	_, err = matrix.BackwardEliminate(m, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
