// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. Error-returning
// operations never panic on user-triggered conditions. The value-returning
// Vector.Scale, Vector.SqrLength and Vector.Length follow rational.Q and panic
// on int64 overflow; Dot and DivScalar are their checked forms.

package matrix

import (
	"errors"

	"github.com/katalvlaran/tangled/rational"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(op, ErrX) so
// the message carries the failing operation; callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> index -> dimension mismatch -> square -> singular -> arithmetic.

var (
	// ErrInvalidDimensions indicates a negative row/column count or dimension.
	// Zero is valid and yields an empty matrix or vector.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (element, row or column) or a
	// slice window is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, or a ragged
	// input table.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRowMismatch signals that Concat operands have different row counts.
	ErrRowMismatch = errors.New("matrix: row count mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't, or that a flat value list has no integer square root.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a non-zero determinant is required but the
	// determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrSyntax is returned by ParseMatrix and ParseVector for malformed text.
	ErrSyntax = errors.New("matrix: invalid syntax")
)

// Arithmetic failures surface the rational sentinels unchanged so a single
// errors.Is works regardless of the package that detected them.
var (
	// ErrDivisionByZero aliases rational.ErrDivisionByZero.
	ErrDivisionByZero = rational.ErrDivisionByZero

	// ErrOverflow aliases rational.ErrOverflow.
	ErrOverflow = rational.ErrOverflow
)
