// SPDX-License-Identifier: MIT

package solvers

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/tangled/matrix"
)

// Solve solves Ax = b with the configured method (DefaultMethod unless
// WithMethod is given). Under WithVerify the solution is multiplied back and
// compared with b exactly.
//
// Errors:
//   - whatever the selected method returns;
//   - ErrVerification if A·x != b under WithVerify.
func Solve(a matrix.Matrix, b matrix.Vector, opts ...Option) (matrix.Vector, error) {
	o := gatherOptions(opts...)
	log.Debugf("solve %dx%d with %s (verify=%t)", a.Rows(), a.Cols(), o.method, o.verify)

	x, err := o.method.solver()(a, b)
	if err != nil {
		return matrix.Vector{}, err
	}
	if o.verify {
		if err = verify(a, b, x); err != nil {
			return matrix.Vector{}, solverErrorf(opSolve, err)
		}
	}

	return x, nil
}

// verify checks A·x == b.
func verify(a matrix.Matrix, b, x matrix.Vector) error {
	ax, err := matrix.MulVec(a, x)
	if err != nil {
		return err
	}
	if !ax.Equal(b) {
		return fmt.Errorf("A·x = %s, want %s: %w", ax, b, ErrVerification)
	}

	return nil
}

// CrossCheckResult summarizes a CrossCheck run.
type CrossCheckResult struct {
	// Solution is the vector every successful method agreed on.
	Solution matrix.Vector

	// Solved lists the methods that produced Solution, in Methods order.
	Solved []Method

	// Failures combines the errors of the methods that failed (nil if none).
	// Use multierr.Errors to list them individually.
	Failures error
}

// CrossCheck runs every Method on Ax = b and compares the results.
//
// Behavior highlights:
//   - A method failing on its own preconditions (e.g. Cramer on a non-square
//     but consistent system) is recorded in Failures, not fatal.
//   - The result is an error only when no method succeeded, or when two
//     successful methods returned different vectors.
//
// Errors:
//   - the combined failures of all four methods when none succeeded;
//   - ErrDisagreement (combined with any failures) on disagreement.
func CrossCheck(a matrix.Matrix, b matrix.Vector) (CrossCheckResult, error) {
	return crossCheck(a, b, func(m Method, a matrix.Matrix, b matrix.Vector) (matrix.Vector, error) {
		return m.solver()(a, b)
	})
}

// crossCheck is CrossCheck with the per-method runner injected.
func crossCheck(a matrix.Matrix, b matrix.Vector, run func(Method, matrix.Matrix, matrix.Vector) (matrix.Vector, error)) (CrossCheckResult, error) {
	var res CrossCheckResult
	for _, m := range Methods {
		x, err := run(m, a, b)
		if err != nil {
			res.Failures = multierr.Append(res.Failures, fmt.Errorf("%s: %w", m, err))
			continue
		}
		if len(res.Solved) > 0 && !x.Equal(res.Solution) {
			log.Warnf("cross-check: %s returned %s, %s returned %s", res.Solved[0], res.Solution, m, x)
			err = fmt.Errorf("%s: %s gave %s, %s gave %s: %w",
				opCrossCheck, res.Solved[0], res.Solution, m, x, ErrDisagreement)

			return CrossCheckResult{Failures: res.Failures}, multierr.Append(res.Failures, err)
		}
		if len(res.Solved) == 0 {
			res.Solution = x
		}
		res.Solved = append(res.Solved, m)
	}
	if len(res.Solved) == 0 {
		return res, solverErrorf(opCrossCheck, res.Failures)
	}
	log.Debugf("cross-check: %d of %d methods agree on %s", len(res.Solved), len(Methods), res.Solution)

	return res, nil
}
