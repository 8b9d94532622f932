// SPDX-License-Identifier: MIT
// Package matrix - the elimination engine shared by Determinant, Rank and
// the solvers.
//
// Purpose:
//   - Forward pass: pivot selection top-down with sign bookkeeping.
//   - Backward pass: pivot selection bottom-up for Gauss-Jordan.
//   - Stagger fix-up: swap rows so the leading diagonal is non-zero.
//
// Determinism & Policy:
//   - All state (working rows, pivot marks, pivot count, sign) lives in an
//     eliminator owned by the calling frame. Nothing is shared between calls,
//     so concurrent eliminations on the same Matrix are safe.
//   - Rows are never physically reordered by the passes; only StaggerRows swaps.
//   - The sign flips once for every unmarked row with a zero in the pivot
//     column that is scanned before the pivot row. This is the defined sign
//     rule of Determinant, not a permutation parity.

package matrix

import "github.com/katalvlaran/tangled/rational"

const (
	opForward  = "ForwardEliminate"
	opBackward = "BackwardEliminate"
)

// eliminator is the per-call elimination context.
type eliminator struct {
	rows, cols int
	w          []rational.Q // working copy, row-major; exclusively owned
	marked     []bool       // rows already used as pivots
	pivots     int
	sign       int
}

// newEliminator copies m into a fresh working buffer.
func newEliminator(m Matrix) *eliminator {
	return &eliminator{
		rows:   m.rows,
		cols:   m.cols,
		w:      m.clone(),
		marked: make([]bool, m.rows),
		sign:   1,
	}
}

func (e *eliminator) row(i int) []rational.Q { return e.w[i*e.cols : (i+1)*e.cols] }

// result hands the working buffer over to a Matrix. e must not be used afterwards.
func (e *eliminator) result() Matrix {
	m := matrixOwning(e.rows, e.cols, e.w)
	e.w = nil

	return m
}

// eliminate clears column k of row i using pivot row p:
// row_i += (-row_i[k]/row_p[k]) · row_p over the full width.
// Panics on Q overflow.
func (e *eliminator) eliminate(i, p, k int) {
	target := e.row(i)
	if target[k].IsZero() {
		return
	}
	pivot := e.row(p)
	factor := target[k].Quo(pivot[k]).Neg()
	for c := range target {
		if pivot[c].IsZero() {
			continue
		}
		target[c] = target[c].Add(factor.Mul(pivot[c]))
	}
}

// selectPivot marks and returns the first unmarked row with a non-zero in
// column k, flipping the sign for every unmarked zero row scanned before it.
// Returns -1 when the column has no pivot.
func (e *eliminator) selectPivot(k int) int {
	for i := 0; i < e.rows; i++ {
		if e.marked[i] {
			continue
		}
		if e.row(i)[k].IsZero() {
			e.sign = -e.sign
			continue
		}
		e.marked[i] = true
		e.pivots++

		return i
	}

	return -1
}

// forward runs the forward pass over columns 0..min(rows, cols)-1.
func (e *eliminator) forward() {
	steps := min(e.rows, e.cols)
	for k := 0; k < steps; k++ {
		p := e.selectPivot(k)
		if p < 0 {
			continue // column k stays unreduced
		}
		for i := 0; i < e.rows; i++ {
			if !e.marked[i] {
				e.eliminate(i, p, k)
			}
		}
	}
}

// backward runs the backward pass over columns last..1. Pivots are searched
// bottom-up among rows rows-1..1 and eliminated bottom-up.
func (e *eliminator) backward(last int) {
	for k := last; k > 0; k-- {
		p := -1
		for i := e.rows - 1; i > 0; i-- {
			if !e.marked[i] && !e.row(i)[k].IsZero() {
				e.marked[i] = true
				e.pivots++
				p = i

				break
			}
		}
		if p < 0 {
			continue
		}
		for i := e.rows - 1; i >= 0; i-- {
			if !e.marked[i] {
				e.eliminate(i, p, k)
			}
		}
	}
}

// stagger swaps rows so that m[i][i] != 0 wherever a lower row allows it,
// for i < min(rows, cols-1).
func (e *eliminator) stagger() {
	n := min(e.rows, e.cols-1)
	for i := 0; i < n; i++ {
		if !e.row(i)[i].IsZero() {
			continue
		}
		for j := i + 1; j < e.rows; j++ {
			if !e.row(j)[i].IsZero() {
				ri, rj := e.row(i), e.row(j)
				for c := range ri {
					ri[c], rj[c] = rj[c], ri[c]
				}

				break
			}
		}
	}
}

// ForwardEliminate runs the forward elimination pass on a copy of m.
//
// Implementation:
//   - Stage 1: for each column k < min(Rows, Cols), pick the first unmarked
//     row with a non-zero in column k as pivot and mark it.
//   - Stage 2: clear column k from every other unmarked row by adding a
//     multiple of the pivot row across the full width.
//
// Returns:
//   - Matrix: the reduced copy; m is unchanged.
//   - int   : the accumulated sign (+1 or -1) used by Determinant.
//
// Errors:
//   - ErrOverflow if an intermediate rational does not fit in int64.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func ForwardEliminate(m Matrix) (out Matrix, sign int, err error) {
	defer func() {
		if err != nil {
			out, sign, err = Matrix{}, 0, matrixErrorf(opForward, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	e := newEliminator(m)
	e.forward()
	log.Debugf("forward %dx%d: %d pivots, sign %+d", e.rows, e.cols, e.pivots, e.sign)

	return e.result(), e.sign, nil
}

// BackwardEliminate runs the backward elimination pass on a copy of m for
// columns last down to 1. A last below 1 performs no elimination.
// Intended for an augmented matrix that was forward-eliminated and staggered.
//
// Errors:
//   - ErrOutOfRange if last >= Cols().
//   - ErrOverflow.
func BackwardEliminate(m Matrix, last int) (out Matrix, err error) {
	if last >= m.cols {
		return Matrix{}, matrixErrorf(opBackward, ValidateIndex(last, m.cols))
	}
	defer func() {
		if err != nil {
			out, err = Matrix{}, matrixErrorf(opBackward, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	e := newEliminator(m)
	e.backward(last)
	log.Debugf("backward %dx%d from column %d: %d pivots", e.rows, e.cols, last, e.pivots)

	return e.result(), nil
}

// StaggerRows returns a copy of m where, for every i < min(Rows, Cols-1)
// with m[i][i] == 0, row i is swapped with the first lower row holding a
// non-zero in column i. The last column is treated as the augmented one.
func StaggerRows(m Matrix) Matrix {
	e := newEliminator(m)
	e.stagger()

	return e.result()
}

// IsStaggered reports whether m[i][i] != 0 for every i < min(Rows, Cols-1).
func IsStaggered(m Matrix) bool {
	n := min(m.rows, m.cols-1)
	for i := 0; i < n; i++ {
		if m.at(i, i).IsZero() {
			return false
		}
	}

	return true
}
