// SPDX-License-Identifier: MIT
// Package rational - checked int64 arithmetic.
//
// Purpose:
//   - Detect every int64 wrap-around in numerator/denominator arithmetic.
//   - Carry the failure out of value-returning methods as a typed panic that
//     CatchOverflow turns back into ErrOverflow at API boundaries.

package rational

import (
	"fmt"
	"math"
)

// overflowPanic is the value panicked with when an exact result does not fit.
// It is never exposed directly: CatchOverflow converts it into ErrOverflow.
type overflowPanic struct {
	op string // operation tag, e.g. "Add"
}

// CatchOverflow converts an overflow panic raised by Q arithmetic into an
// error wrapping ErrOverflow and stores it in *errp. Any other panic is
// re-raised untouched. It must be deferred directly:
//
//	func Determinant(...) (q rational.Q, err error) {
//		defer rational.CatchOverflow(&err)
//		...
//	}
func CatchOverflow(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ov, ok := r.(overflowPanic)
	if !ok {
		panic(r)
	}
	*errp = fmt.Errorf("%s: %w", ov.op, ErrOverflow)
}

// mul64 returns a*b or panics with overflowPanic{op}.
func mul64(a, b int64, op string) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	// c/b != a catches ordinary wrap-around; the MinInt64 × -1 pair wraps to
	// itself and needs the explicit checks.
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(overflowPanic{op})
	}

	return c
}

// add64 returns a+b or panics with overflowPanic{op}.
func add64(a, b int64, op string) int64 {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		panic(overflowPanic{op})
	}

	return c
}

// neg64 returns -a or panics with overflowPanic{op}.
func neg64(a int64, op string) int64 {
	if a == math.MinInt64 {
		panic(overflowPanic{op})
	}

	return -a
}

// absU returns |a| as uint64; well-defined for math.MinInt64.
func absU(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}

	return uint64(a)
}

// gcd is the iterative Euclid algorithm on magnitudes.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// approxGCD is an error-tolerant Euclid: it stops as soon as the remainder
// ratio b/a drops below eps and returns a. On exact inputs it behaves like
// gcd; on long binary expansions of non-dyadic values (0.6, 1/3, …) it
// returns the divisor that recovers the short fraction.
// Inputs must be non-negative with a+b > 0.
func approxGCD(a, b int64, eps float64) int64 {
	if a < b {
		a, b = b, a
	}
	for float64(b)/float64(a) >= eps {
		a, b = b, a%b
	}

	return a
}
