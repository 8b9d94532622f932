// SPDX-License-Identifier: MIT
// Package matrix - text input for vectors and matrices.
//
// Grammar:
//   - cells are rational.Parse literals ("3", "-2/5", "1.25");
//   - cells are separated by commas and/or whitespace;
//   - matrix rows are separated by ';' or newlines, blank rows are ignored;
//   - a vector may be wrapped in parentheses, so Vector.String round-trips.

package matrix

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/tangled/rational"
)

const (
	opParseVector = "ParseVector"
	opParseMatrix = "ParseMatrix"
)

// splitCells splits a row on commas and whitespace.
func splitCells(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
}

func parseCells(cells []string) ([]rational.Q, error) {
	out := make([]rational.Q, len(cells))
	for i, c := range cells {
		q, err := rational.Parse(c)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		out[i] = q
	}

	return out, nil
}

// ParseVector reads a vector such as "(1,2/3,-4)" or "1 2/3 -4".
//
// Errors:
//   - ErrSyntax for unbalanced parentheses; rational.ErrSyntax,
//     rational.ErrDivisionByZero or rational.ErrOverflow for bad cells.
func ParseVector(s string) (Vector, error) {
	t := strings.TrimSpace(s)
	open, closed := strings.HasPrefix(t, "("), strings.HasSuffix(t, ")")
	if open != closed {
		return Vector{}, matrixErrorf(opParseVector, ErrSyntax)
	}
	if open {
		t = t[1 : len(t)-1]
	}
	elems, err := parseCells(splitCells(t))
	if err != nil {
		return Vector{}, matrixErrorf(opParseVector, err)
	}

	return vectorOwning(elems), nil
}

// ParseMatrix reads a matrix such as "1 2; 3 4" or "1,2\n3,4".
//
// Errors:
//   - ErrDimensionMismatch for ragged rows; cell errors as for ParseVector.
func ParseMatrix(s string) (Matrix, error) {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	rows := make([][]rational.Q, 0, len(lines))
	for i, line := range lines {
		cells := splitCells(line)
		if len(cells) == 0 {
			continue
		}
		row, err := parseCells(cells)
		if err != nil {
			return Matrix{}, matrixErrorf(opParseMatrix, fmt.Errorf("row %d: %w", i, err))
		}
		rows = append(rows, row)
	}
	m, err := NewMatrix(rows)
	if err != nil {
		return Matrix{}, matrixErrorf(opParseMatrix, err)
	}

	return m, nil
}
