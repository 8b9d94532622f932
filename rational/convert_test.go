// SPDX-License-Identifier: MIT
package rational_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangled/rational"
)

func TestFromFloat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "1/2"},
		{0.75, "3/4"},
		{-2.5, "-5/2"},
		{3.375, "27/8"},
		{0.6, "3/5"},
		{-0.6, "-3/5"},
		{1.0 / 3.0, "1/3"},
		{0.1, "1/10"},
		{2.0, "2"},
		{0, "0"},
		{-7, "-7"},
		{100.25, "401/4"},
		{1e-9, "0"},
		{math.Pi, "884279719003555/281474976710656"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.in), func(t *testing.T) {
			r, err := rational.FromFloat(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.String())
		})
	}
}

func TestFromFloat_Errors(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := rational.FromFloat(bad)
		require.ErrorIs(t, err, rational.ErrNotFinite)
	}
	_, err := rational.FromFloat(1e19)
	require.ErrorIs(t, err, rational.ErrOverflow)
	_, err = rational.FromFloat(-1e19)
	require.ErrorIs(t, err, rational.ErrOverflow)
}

func TestParse(t *testing.T) {
	t.Parallel()

	ok := []struct {
		in   string
		want rational.Q
	}{
		{"7", rational.FromInt(7)},
		{" -7 ", rational.FromInt(-7)},
		{"3/5", q(3, 5)},
		{"-12/4", rational.FromInt(-3)},
		{"6/-4", q(-3, 2)},
		{"1.25", q(5, 4)},
		{"-.5", q(-1, 2)},
		{"+0.125", q(1, 8)},
		{"5.", rational.FromInt(5)},
		{"0", rational.Zero},
	}
	for _, tc := range ok {
		t.Run(tc.in, func(t *testing.T) {
			got, err := rational.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	bad := []struct {
		in  string
		err error
	}{
		{"", rational.ErrSyntax},
		{"abc", rational.ErrSyntax},
		{"1/2/3", rational.ErrSyntax},
		{"1.2.3", rational.ErrSyntax},
		{".", rational.ErrSyntax},
		{"--1.5", rational.ErrSyntax},
		{"1.-5", rational.ErrSyntax},
		{"1/0", rational.ErrDivisionByZero},
		{"99999999999999999999", rational.ErrOverflow},
	}
	for _, tc := range bad {
		t.Run("bad "+tc.in, func(t *testing.T) {
			_, err := rational.Parse(tc.in)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	third := q(1, 3)
	assert.Equal(t, "1/3", fmt.Sprintf("%v", third))
	assert.Equal(t, "1/3", fmt.Sprintf("%s", third))
	assert.Equal(t, "   1/3", fmt.Sprintf("%6v", third))
	assert.Equal(t, "1/3   |", fmt.Sprintf("%-6v|", third))
	assert.Equal(t, "0.333", fmt.Sprintf("%.3f", third))
	assert.Equal(t, "-2.5", fmt.Sprintf("%g", q(-5, 2)))
	assert.Equal(t, "[1/2 2]", fmt.Sprint([]rational.Q{q(1, 2), rational.FromInt(2)}))
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		X rational.Q `json:"x"`
	}
	raw, err := json.Marshal(payload{X: q(-7, 3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":"-7/3"}`, string(raw))

	var back payload
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, q(-7, 3), back.X)

	var r rational.Q
	require.ErrorIs(t, r.UnmarshalText([]byte("x/y")), rational.ErrSyntax)
}
