// SPDX-License-Identifier: MIT
// Package matrix - quantities derived through elimination:
// Determinant, Adjoint, Inverse and Rank.
//
// Determinism & Policy:
//   - Pure functions of the matrix contents; nothing is cached.
//   - Every entry point defers rational.CatchOverflow, so int64 overflow is
//     reported as ErrOverflow rather than a wrong value.

package matrix

import "github.com/katalvlaran/tangled/rational"

// Determinant returns det(m).
//
// Implementation:
//   - Stage 1: forward-eliminate a copy, tracking the sign.
//   - Stage 2: multiply the first non-zero entry of every row.
//   - Stage 3: if some row is entirely zero the determinant is exactly 0;
//     otherwise apply the sign.
//
// Behavior highlights:
//   - The 0×0 matrix has determinant 1, so 1×1 adjoints are well-defined.
//
// Errors:
//   - ErrNonSquare if Rows() != Cols().
//   - ErrOverflow.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m Matrix) Determinant() (det rational.Q, err error) {
	if err = ValidateSquare(m); err != nil {
		return rational.Zero, matrixErrorf(opDeterminant, err)
	}
	defer func() {
		if err != nil {
			det, err = rational.Zero, matrixErrorf(opDeterminant, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	det = m.determinant()
	log.Debugf("determinant %dx%d = %s", m.rows, m.cols, det)

	return det, nil
}

// determinant is Determinant for a known-square m. Panics on overflow.
func (m Matrix) determinant() rational.Q {
	if m.rows == 0 {
		return rational.One
	}
	e := newEliminator(m)
	e.forward()

	prod := rational.One
	for i := 0; i < e.rows; i++ {
		lead := rational.Zero
		for _, x := range e.row(i) {
			if !x.IsZero() {
				lead = x

				break
			}
		}
		if lead.IsZero() {
			return rational.Zero
		}
		prod = prod.Mul(lead)
	}
	if e.sign < 0 {
		prod = prod.Neg()
	}

	return prod
}

// Adjoint returns the adjugate of m: the transpose of the matrix of signed
// cofactors (-1)^(i+j)·det(Minor(i, j)).
//
// Errors:
//   - ErrNonSquare, ErrOverflow.
//
// Complexity:
//   - Time O(n⁵) (n² minors, O(n³) each), Space O(n²).
func (m Matrix) Adjoint() (adj Matrix, err error) {
	if err = ValidateSquare(m); err != nil {
		return Matrix{}, matrixErrorf(opAdjoint, err)
	}
	defer func() {
		if err != nil {
			adj, err = Matrix{}, matrixErrorf(opAdjoint, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	return m.adjoint(), nil
}

// adjoint is Adjoint for a known-square m. Panics on overflow.
func (m Matrix) adjoint() Matrix {
	n := m.rows
	buf := make([]rational.Q, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := m.minor(i, j).determinant()
			if (i+j)%2 == 1 {
				c = c.Neg()
			}
			buf[j*n+i] = c // transposed on write
		}
	}

	return matrixOwning(n, n, buf)
}

// Inverse returns m⁻¹ = Adjoint(m) · (1/det(m)).
//
// Errors:
//   - ErrNonSquare if Rows() != Cols().
//   - ErrSingular if det(m) == 0.
//   - ErrOverflow.
func (m Matrix) Inverse() (inv Matrix, err error) {
	if err = ValidateSquare(m); err != nil {
		return Matrix{}, matrixErrorf(opInverse, err)
	}
	defer func() {
		if err != nil {
			inv, err = Matrix{}, matrixErrorf(opInverse, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	det := m.determinant()
	if det.IsZero() {
		log.Debugf("inverse %dx%d: determinant is zero", m.rows, m.cols)

		return Matrix{}, ErrSingular
	}
	adj := m.adjoint()
	for k, x := range adj.data {
		adj.data[k] = x.Quo(det)
	}

	return adj, nil
}

// Rank returns the rank of m as computed from its forward-eliminated form:
// min(Rows - zeroRows, Cols - zeroCols), counting all-zero rows and distinct
// all-zero columns.
//
// The forward pass visits only the first min(Rows, Cols) columns, so on some
// wide matrices a dependent row is left unreduced and the result exceeds the
// mathematical rank (e.g. [[0,0,0,-1],[0,1,-1,2],[0,-2,2,0]] yields 3, not 2).
// It is never below it.
//
// Errors:
//   - ErrOverflow.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func (m Matrix) Rank() (rank int, err error) {
	defer func() {
		if err != nil {
			rank, err = 0, matrixErrorf(opRank, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	e := newEliminator(m)
	e.forward()

	zeroRows := 0
	for i := 0; i < e.rows; i++ {
		if allZero(e.row(i)) {
			zeroRows++
		}
	}
	zeroCols := 0
	for j := 0; j < e.cols; j++ {
		nz := false
		for i := 0; i < e.rows && !nz; i++ {
			nz = !e.w[i*e.cols+j].IsZero()
		}
		if !nz {
			zeroCols++
		}
	}
	rank = min(e.rows-zeroRows, e.cols-zeroCols)
	log.Debugf("rank %dx%d = %d (zero rows %d, zero cols %d)", e.rows, e.cols, rank, zeroRows, zeroCols)

	return rank, nil
}

func allZero(qs []rational.Q) bool {
	for _, q := range qs {
		if !q.IsZero() {
			return false
		}
	}

	return true
}
