// SPDX-License-Identifier: MIT
// Package solvers: sentinel error set.
// All entry points return these sentinels (wrapped with an operation tag);
// callers match them with errors.Is.

package solvers

import (
	"errors"

	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/rational"
)

var (
	// ErrIncompatible is returned when rank(A) != rank([A|b]): no solution exists.
	ErrIncompatible = errors.New("solvers: incompatible system")

	// ErrIndeterminate is returned when rank(A) == rank([A|b]) is below the
	// number of unknowns: infinitely many solutions exist.
	ErrIndeterminate = errors.New("solvers: indeterminate system")

	// ErrVerification is returned by Solve under WithVerify when A·x != b.
	ErrVerification = errors.New("solvers: solution does not satisfy the system")

	// ErrDisagreement is returned by CrossCheck when two methods that both
	// succeeded produced different solutions.
	ErrDisagreement = errors.New("solvers: methods disagree")

	// ErrUnknownMethod is returned by ParseMethod for an unrecognized name.
	ErrUnknownMethod = errors.New("solvers: unknown method")
)

// Sentinels of the lower layers, re-exported so callers need one import.
var (
	ErrSingular          = matrix.ErrSingular
	ErrNonSquare         = matrix.ErrNonSquare
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrOverflow          = rational.ErrOverflow
)
