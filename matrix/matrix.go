// SPDX-License-Identifier: MIT
// Package matrix - the Matrix value type: construction, access and
// structural transforms.
//
// What & Why:
//
//	Matrix is an immutable rows×cols table of rational.Q stored row-major in
//	a single slice. Every operation that looks like a mutation (ReplaceRow,
//	ReplaceCol, Transpose, slicing, Concat) returns a new Matrix and leaves
//	the receiver untouched, so values can be shared freely between callers
//	and goroutines.
//
// Complexity:
//
//	Rows, Cols, At run in O(1). Row/Col copy O(cols)/O(rows).
//	Structural transforms allocate and copy O(rows·cols).
package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tangled/rational"
)

// Operation tags for Matrix errors.
const (
	opNewMatrix   = "NewMatrix"
	opFromInts    = "FromInts"
	opSquare      = "Square"
	opZeros       = "Zeros"
	opAt          = "At"
	opRow         = "Row"
	opCol         = "Col"
	opReplaceRow  = "ReplaceRow"
	opReplaceCol  = "ReplaceCol"
	opSliceRows   = "SliceRows"
	opSliceCols   = "SliceCols"
	opMinor       = "Minor"
	opConcat      = "Concat"
	opIdentity    = "Identity"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opRank        = "Rank"
)

// Matrix is an immutable dense rows×cols matrix of rationals.
// The zero value is the 0×0 empty matrix.
type Matrix struct {
	rows, cols int
	data       []rational.Q // row-major, len == rows*cols
}

// matrixOwning wraps buf without copying. buf must be freshly allocated by
// the caller, have len rows*cols, and never be touched again by it.
func matrixOwning(rows, cols int, buf []rational.Q) Matrix {
	return Matrix{rows: rows, cols: cols, data: buf}
}

// NewMatrix returns a matrix holding a copy of the rectangular table rows.
// A nil or empty table yields the 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch if the rows have different lengths.
//
// Complexity: O(rows·cols).
func NewMatrix(rows [][]rational.Q) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	r, c := len(rows), len(rows[0])
	buf := make([]rational.Q, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return Matrix{}, matrixErrorf(opNewMatrix,
				validatorErrorf("row "+strconv.Itoa(i), ErrDimensionMismatch))
		}
		buf = append(buf, row...)
	}

	return matrixOwning(r, c, buf), nil
}

// FromInts returns a matrix of integer entries.
//
// Errors:
//   - ErrDimensionMismatch if the rows have different lengths.
func FromInts(rows [][]int64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	r, c := len(rows), len(rows[0])
	buf := make([]rational.Q, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return Matrix{}, matrixErrorf(opFromInts,
				validatorErrorf("row "+strconv.Itoa(i), ErrDimensionMismatch))
		}
		for _, x := range row {
			buf = append(buf, rational.FromInt(x))
		}
	}

	return matrixOwning(r, c, buf), nil
}

// Square builds an n×n matrix from n² values listed row by row.
//
// Errors:
//   - ErrNonSquare if len(values) is not a perfect square.
func Square(values ...rational.Q) (Matrix, error) {
	n := isqrt(len(values))
	if n*n != len(values) {
		return Matrix{}, matrixErrorf(opSquare, ErrNonSquare)
	}
	buf := make([]rational.Q, len(values))
	copy(buf, values)

	return matrixOwning(n, n, buf), nil
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// ColumnOf returns v as an n×1 column matrix.
func ColumnOf(v Vector) Matrix {
	return matrixOwning(len(v.elems), 1, v.ToSlice())
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// IsEmpty reports whether either dimension is zero.
func (m Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// IsSquare reports whether Rows() == Cols().
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

// at is the unchecked element accessor.
func (m Matrix) at(i, j int) rational.Q { return m.data[i*m.cols+j] }

// rowView aliases row i of the backing storage; internal read-only use.
func (m Matrix) rowView(i int) []rational.Q { return m.data[i*m.cols : (i+1)*m.cols] }

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
func (m Matrix) At(row, col int) (rational.Q, error) {
	if err := ValidateIndex(row, m.rows); err != nil {
		return rational.Zero, matrixErrorf(opAt, err)
	}
	if err := ValidateIndex(col, m.cols); err != nil {
		return rational.Zero, matrixErrorf(opAt, err)
	}

	return m.at(row, col), nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m Matrix) Row(i int) (Vector, error) {
	if err := ValidateIndex(i, m.rows); err != nil {
		return Vector{}, matrixErrorf(opRow, err)
	}

	return NewVector(m.rowView(i)...), nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
func (m Matrix) Col(j int) (Vector, error) {
	if err := ValidateIndex(j, m.cols); err != nil {
		return Vector{}, matrixErrorf(opCol, err)
	}

	return vectorOwning(m.col(j)), nil
}

// col copies column j into fresh storage.
func (m Matrix) col(j int) []rational.Q {
	out := make([]rational.Q, m.rows)
	for i := range out {
		out[i] = m.at(i, j)
	}

	return out
}

// ToSlices returns a deep copy of the matrix as a table of rows.
func (m Matrix) ToSlices() [][]rational.Q {
	out := make([][]rational.Q, m.rows)
	for i := range out {
		out[i] = NewVector(m.rowView(i)...).elems
	}

	return out
}

// clone returns a copy of the backing storage.
func (m Matrix) clone() []rational.Q {
	buf := make([]rational.Q, len(m.data))
	copy(buf, m.data)

	return buf
}

// ReplaceRow returns a copy of m with row i replaced by v.
//
// Errors:
//   - ErrOutOfRange if i is not a row index.
//   - ErrDimensionMismatch if v.Dim() != Cols().
func (m Matrix) ReplaceRow(i int, v Vector) (Matrix, error) {
	if err := ValidateIndex(i, m.rows); err != nil {
		return Matrix{}, matrixErrorf(opReplaceRow, err)
	}
	if err := ValidateVecLen(v, m.cols); err != nil {
		return Matrix{}, matrixErrorf(opReplaceRow, err)
	}
	buf := m.clone()
	copy(buf[i*m.cols:(i+1)*m.cols], v.elems)

	return matrixOwning(m.rows, m.cols, buf), nil
}

// ReplaceCol returns a copy of m with column j replaced by v.
//
// Errors:
//   - ErrOutOfRange if j is not a column index.
//   - ErrDimensionMismatch if v.Dim() != Rows().
func (m Matrix) ReplaceCol(j int, v Vector) (Matrix, error) {
	if err := ValidateIndex(j, m.cols); err != nil {
		return Matrix{}, matrixErrorf(opReplaceCol, err)
	}
	if err := ValidateVecLen(v, m.rows); err != nil {
		return Matrix{}, matrixErrorf(opReplaceCol, err)
	}
	buf := m.clone()
	for i, x := range v.elems {
		buf[i*m.cols+j] = x
	}

	return matrixOwning(m.rows, m.cols, buf), nil
}

// SliceRows returns the sub-matrix made of count rows starting at start.
// Errors: ErrOutOfRange unless 0 <= start < Rows(), count >= 1 and
// start+count <= Rows().
func (m Matrix) SliceRows(start, count int) (Matrix, error) {
	if err := ValidateWindow(start, count, m.rows); err != nil {
		return Matrix{}, matrixErrorf(opSliceRows, err)
	}
	buf := make([]rational.Q, count*m.cols)
	copy(buf, m.data[start*m.cols:(start+count)*m.cols])

	return matrixOwning(count, m.cols, buf), nil
}

// SliceCols returns the sub-matrix made of count columns starting at start.
// Errors: ErrOutOfRange unless 0 <= start < Cols(), count >= 1 and
// start+count <= Cols().
func (m Matrix) SliceCols(start, count int) (Matrix, error) {
	if err := ValidateWindow(start, count, m.cols); err != nil {
		return Matrix{}, matrixErrorf(opSliceCols, err)
	}
	buf := make([]rational.Q, 0, m.rows*count)
	for i := 0; i < m.rows; i++ {
		buf = append(buf, m.rowView(i)[start:start+count]...)
	}

	return matrixOwning(m.rows, count, buf), nil
}

// Minor returns m without row i and column j.
// Errors: ErrOutOfRange.
// Complexity: O(rows·cols).
func (m Matrix) Minor(i, j int) (Matrix, error) {
	if err := ValidateIndex(i, m.rows); err != nil {
		return Matrix{}, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(j, m.cols); err != nil {
		return Matrix{}, matrixErrorf(opMinor, err)
	}

	return m.minor(i, j), nil
}

// minor is Minor without bounds checks.
func (m Matrix) minor(i, j int) Matrix {
	buf := make([]rational.Q, 0, (m.rows-1)*(m.cols-1))
	for r := 0; r < m.rows; r++ {
		if r == i {
			continue
		}
		row := m.rowView(r)
		buf = append(buf, row[:j]...)
		buf = append(buf, row[j+1:]...)
	}

	return matrixOwning(m.rows-1, m.cols-1, buf)
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	buf := make([]rational.Q, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			buf[j*m.rows+i] = m.at(i, j)
		}
	}

	return matrixOwning(m.cols, m.rows, buf)
}

// Concat joins left and right side by side: [left | right].
//
// Errors:
//   - ErrRowMismatch if left.Rows() != right.Rows().
func Concat(left, right Matrix) (Matrix, error) {
	if left.rows != right.rows {
		return Matrix{}, matrixErrorf(opConcat, ErrRowMismatch)
	}
	cols := left.cols + right.cols
	buf := make([]rational.Q, 0, left.rows*cols)
	for i := 0; i < left.rows; i++ {
		buf = append(buf, left.rowView(i)...)
		buf = append(buf, right.rowView(i)...)
	}

	return matrixOwning(left.rows, cols, buf), nil
}

// Augment returns [a | b] where b becomes the last column.
//
// Errors:
//   - ErrDimensionMismatch if b.Dim() != a.Rows().
func Augment(a Matrix, b Vector) (Matrix, error) {
	if err := ValidateVecLen(b, a.rows); err != nil {
		return Matrix{}, matrixErrorf(opConcat, err)
	}

	return Concat(a, ColumnOf(b))
}

// Equal reports whether m and o have the same shape and entries.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit hash consistent with Equal.
func (m Matrix) Hash() uint64 {
	h := newHasher(m.rows, m.cols)
	h.writeQs(m.data)

	return h.sum()
}

// String renders each cell as its float64 approximation followed by a tab,
// one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for _, x := range m.rowView(i) {
			sb.WriteString(strconv.FormatFloat(x.Float64(), 'g', -1, 64))
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
