// SPDX-License-Identifier: MIT

package solvers

import (
	"fmt"

	"github.com/katalvlaran/tangled/matrix"
)

// Operation tags.
const (
	opClassify      = "Classify"
	opGauss         = "Gauss"
	opGaussJordan   = "GaussJordan"
	opCramer        = "Cramer"
	opInverseMethod = "InverseMethod"
	opSolve         = "Solve"
	opCrossCheck    = "CrossCheck"
)

func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Classification describes the solution set of Ax = b.
type Classification int

const (
	// Determined: rank(A) == rank([A|b]) == number of unknowns; one solution.
	Determined Classification = iota
	// Indeterminate: rank(A) == rank([A|b]) < number of unknowns.
	Indeterminate
	// Incompatible: rank(A) != rank([A|b]); no solution.
	Incompatible
)

// String returns "determined", "indeterminate" or "incompatible".
func (c Classification) String() string {
	switch c {
	case Determined:
		return "determined"
	case Indeterminate:
		return "indeterminate"
	case Incompatible:
		return "incompatible"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Err returns the sentinel a solver reports for c, or nil for Determined.
func (c Classification) Err() error {
	switch c {
	case Indeterminate:
		return ErrIndeterminate
	case Incompatible:
		return ErrIncompatible
	default:
		return nil
	}
}

// checkSystem validates b.Dim() == A.Rows().
func checkSystem(a matrix.Matrix, b matrix.Vector) error {
	return matrix.ValidateVecLen(b, a.Rows())
}

// Classify compares rank(A) with rank([A|b]) and the number of unknowns.
//
// Implementation:
//   - Stage 1: rank(A) != rank([A|b]) → Incompatible.
//   - Stage 2: rank([A|b]) < A.Cols() → Indeterminate.
//   - Stage 3: otherwise Determined.
//
// Ranks follow matrix.Rank. On some wide systems that rule over-counts
// rank(A), so an incompatible system can be reported Indeterminate, e.g.
// [[0,0,0,-1],[0,1,-1,2],[0,-2,2,0]] | (0,-1,-1). Both outcomes reject the
// system; Determined is only reported for systems that are solved exactly.
//
// Errors:
//   - ErrDimensionMismatch if b.Dim() != A.Rows().
//   - ErrOverflow.
func Classify(a matrix.Matrix, b matrix.Vector) (Classification, error) {
	c, _, err := classify(a, b)
	if err != nil {
		return 0, solverErrorf(opClassify, err)
	}

	return c, nil
}

// classify is Classify that also returns the augmented matrix [A|b].
func classify(a matrix.Matrix, b matrix.Vector) (Classification, matrix.Matrix, error) {
	if err := checkSystem(a, b); err != nil {
		return 0, matrix.Matrix{}, err
	}
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return 0, matrix.Matrix{}, err
	}
	ra, err := a.Rank()
	if err != nil {
		return 0, matrix.Matrix{}, err
	}
	re, err := aug.Rank()
	if err != nil {
		return 0, matrix.Matrix{}, err
	}

	c := Determined
	switch {
	case ra != re:
		c = Incompatible
	case re < a.Cols():
		c = Indeterminate
	}
	log.Debugf("classify %dx%d: rank(A)=%d rank([A|b])=%d: %s", a.Rows(), a.Cols(), ra, re, c)

	return c, aug, nil
}

// solvable classifies the system and returns [A|b] only when it is Determined.
func solvable(a matrix.Matrix, b matrix.Vector) (matrix.Matrix, error) {
	c, aug, err := classify(a, b)
	if err != nil {
		return matrix.Matrix{}, err
	}
	if err = c.Err(); err != nil {
		return matrix.Matrix{}, err
	}

	return aug, nil
}
