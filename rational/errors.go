// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// All functions return these sentinels (optionally wrapped with context);
// callers match them with errors.Is.

package rational

import "errors"

var (
	// ErrDivisionByZero is returned when a rational is built with a zero
	// denominator or when a rational is divided by zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrOverflow signals that an exact result does not fit the int64
	// numerator/denominator representation.
	ErrOverflow = errors.New("rational: int64 overflow")

	// ErrNotFinite is returned by FromFloat for NaN or ±Inf input.
	ErrNotFinite = errors.New("rational: NaN or Inf has no rational value")

	// ErrSyntax is returned by Parse/UnmarshalText for malformed input.
	ErrSyntax = errors.New("rational: invalid syntax")
)
