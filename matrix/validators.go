// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/index checks here.
//   - Return validator-tagged sentinels so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures rows and cols are non-negative.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d of %d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateWindow ensures [start, start+count) is a non-empty window inside [0, n).
// Complexity: O(1).
func ValidateWindow(start, count, n int) error {
	if start < 0 || start >= n || count <= 0 || count > n-start {
		return validatorErrorf(fmt.Sprintf("ValidateWindow(%d+%d of %d)", start, count, n), ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector dimension matches the required size n.
// Complexity: O(1).
func ValidateVecLen(v Vector, n int) error {
	if len(v.elems) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameDim ensures vectors a and b have the same dimension.
// Complexity: O(1).
func ValidateSameDim(a, b Vector) error {
	if len(a.elems) != len(b.elems) {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}
