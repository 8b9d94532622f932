// SPDX-License-Identifier: MIT
// Package matrix - Vector, an immutable ordered sequence of rationals.

package matrix

import (
	"math"
	"strings"

	"github.com/katalvlaran/tangled/rational"
)

// Operation tags for Vector errors.
const (
	opVecAdd       = "Vector.Add"
	opVecSub       = "Vector.Sub"
	opVecMulElem   = "Vector.MulElem"
	opVecDivElem   = "Vector.DivElem"
	opVecDivScalar = "Vector.DivScalar"
	opVecAt        = "Vector.At"
	opDot          = "Dot"
	opZeroVector   = "ZeroVector"
)

// Vector is an immutable row vector of rational.Q values.
// The zero value is the empty vector (dimension 0).
//
// A Vector owns its storage: constructors copy their input and accessors
// hand out copies, so no caller can observe or cause mutation.
type Vector struct {
	elems []rational.Q
}

// NewVector returns a vector holding a copy of elems.
func NewVector(elems ...rational.Q) Vector {
	buf := make([]rational.Q, len(elems))
	copy(buf, elems)

	return Vector{elems: buf}
}

// VectorOf returns a vector of integer components.
func VectorOf(ints ...int64) Vector {
	buf := make([]rational.Q, len(ints))
	for i, x := range ints {
		buf[i] = rational.FromInt(x)
	}

	return Vector{elems: buf}
}

// ZeroVector returns the n-dimensional zero vector.
// Errors: ErrInvalidDimensions if n < 0.
func ZeroVector(n int) (Vector, error) {
	if n < 0 {
		return Vector{}, matrixErrorf(opZeroVector, ErrInvalidDimensions)
	}

	return Vector{elems: make([]rational.Q, n)}, nil
}

// ExpandedVector returns the n-dimensional vector whose components all equal value.
// Errors: ErrInvalidDimensions if n < 0.
func ExpandedVector(n int, value rational.Q) (Vector, error) {
	v, err := ZeroVector(n)
	if err != nil {
		return Vector{}, err
	}
	for i := range v.elems {
		v.elems[i] = value
	}

	return v, nil
}

// vectorOwning wraps buf without copying. Callers hand over storage they
// allocated themselves and never touch again.
func vectorOwning(buf []rational.Q) Vector { return Vector{elems: buf} }

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.elems) }

// At returns component i.
// Errors: ErrOutOfRange if i is outside [0, Dim()).
func (v Vector) At(i int) (rational.Q, error) {
	if err := ValidateIndex(i, len(v.elems)); err != nil {
		return rational.Zero, matrixErrorf(opVecAt, err)
	}

	return v.elems[i], nil
}

// ToSlice returns a freshly allocated copy of the components.
func (v Vector) ToSlice() []rational.Q {
	out := make([]rational.Q, len(v.elems))
	copy(out, v.elems)

	return out
}

// zip applies f component-wise to a and b after a dimension check.
// Overflow panics raised by f are reported as ErrOverflow.
func zip(op string, a, b Vector, f func(x, y rational.Q) (rational.Q, error)) (out Vector, err error) {
	if err = ValidateSameDim(a, b); err != nil {
		return Vector{}, matrixErrorf(op, err)
	}
	defer func() {
		if err != nil {
			out, err = Vector{}, matrixErrorf(op, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	buf := make([]rational.Q, len(a.elems))
	for i := range buf {
		if buf[i], err = f(a.elems[i], b.elems[i]); err != nil {
			return Vector{}, err
		}
	}

	return vectorOwning(buf), nil
}

// Add returns v + o component-wise.
// Errors: ErrDimensionMismatch, ErrOverflow.
func (v Vector) Add(o Vector) (Vector, error) {
	return zip(opVecAdd, v, o, func(x, y rational.Q) (rational.Q, error) { return x.Add(y), nil })
}

// Sub returns v - o component-wise.
// Errors: ErrDimensionMismatch, ErrOverflow.
func (v Vector) Sub(o Vector) (Vector, error) {
	return zip(opVecSub, v, o, func(x, y rational.Q) (rational.Q, error) { return x.Sub(y), nil })
}

// MulElem returns the component-wise product of v and o.
// Errors: ErrDimensionMismatch, ErrOverflow.
func (v Vector) MulElem(o Vector) (Vector, error) {
	return zip(opVecMulElem, v, o, func(x, y rational.Q) (rational.Q, error) { return x.Mul(y), nil })
}

// DivElem returns the component-wise quotient of v and o.
// Errors: ErrDimensionMismatch, ErrDivisionByZero, ErrOverflow.
func (v Vector) DivElem(o Vector) (Vector, error) {
	return zip(opVecDivElem, v, o, rational.Q.Div)
}

// Scale returns alpha·v. Like Q arithmetic it panics on int64 overflow.
func (v Vector) Scale(alpha rational.Q) Vector {
	buf := make([]rational.Q, len(v.elems))
	for i, x := range v.elems {
		buf[i] = x.Mul(alpha)
	}

	return vectorOwning(buf)
}

// DivScalar returns v/alpha.
// Errors: ErrDivisionByZero if alpha == 0, ErrOverflow.
func (v Vector) DivScalar(alpha rational.Q) (out Vector, err error) {
	inv, err := alpha.Inv()
	if err != nil {
		return Vector{}, matrixErrorf(opVecDivScalar, err)
	}
	defer func() {
		if err != nil {
			err = matrixErrorf(opVecDivScalar, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	return v.Scale(inv), nil
}

// Dot returns the scalar product Σ a[i]·b[i].
// Errors: ErrDimensionMismatch, ErrOverflow.
// Complexity: O(n).
func Dot(a, b Vector) (q rational.Q, err error) {
	if err = ValidateSameDim(a, b); err != nil {
		return rational.Zero, matrixErrorf(opDot, err)
	}
	defer func() {
		if err != nil {
			err = matrixErrorf(opDot, err)
		}
	}()
	defer rational.CatchOverflow(&err)

	return dot(a.elems, b.elems), nil
}

// dot is the unchecked kernel shared by Dot, Mul, VecMul and MulVec.
// Panics on overflow; callers defer rational.CatchOverflow.
func dot(a, b []rational.Q) rational.Q {
	sum := rational.Zero
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}

	return sum
}

// SqrLength returns the exact squared Euclidean length v·v.
// Panics on int64 overflow; Dot(v, v) reports ErrOverflow instead.
func (v Vector) SqrLength() rational.Q { return dot(v.elems, v.elems) }

// Length returns the Euclidean length as a float64; square roots are not
// rational in general.
func (v Vector) Length() float64 { return math.Sqrt(v.SqrLength().Float64()) }

// Equal reports whether v and o have the same dimension and components.
func (v Vector) Equal(o Vector) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != o.elems[i] {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit hash consistent with Equal.
func (v Vector) Hash() uint64 {
	h := newHasher(len(v.elems))
	h.writeQs(v.elems)

	return h.sum()
}

// String renders v as "(c0,c1,…)" using each component's exact text form.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
