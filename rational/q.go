// SPDX-License-Identifier: MIT
// Package rational - the Q value type and its arithmetic.
//
// Determinism & Policy:
//   - Every constructor and operator returns a fully reduced value.
//   - No floating point is used in arithmetic or comparison.
//   - Overflow never wraps: see checked.go and the package documentation.

package rational

import (
	"math/bits"
	"strconv"
)

// Operation tags used in overflow errors.
const (
	opNew = "New"
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
	opNeg = "Neg"
	opInv = "Inv"
)

// Q is an immutable rational number p/q.
//
// The denominator is stored minus one so that the zero value Q{} is the
// canonical zero 0/1 and Q can be used without a constructor.
type Q struct {
	p   int64 // numerator, carries the sign
	qm1 int64 // denominator - 1, always >= 0
}

var (
	// Zero is the rational 0.
	Zero = Q{}

	// One is the rational 1.
	One = Q{p: 1}
)

// New returns the reduced rational p/q.
// The sign is moved onto the numerator and 0/q is canonicalized to 0/1.
//
// Errors:
//   - ErrDivisionByZero if q == 0.
//   - ErrOverflow if the reduced value cannot be represented
//     (only possible for math.MinInt64 inputs).
//
// Complexity: O(log min(|p|, |q|)).
func New(p, q int64) (r Q, err error) {
	if q == 0 {
		return Zero, ErrDivisionByZero
	}
	defer CatchOverflow(&err)

	return reduce(p, q, opNew), nil
}

// MustNew is New for literal tables; it panics on error.
func MustNew(p, q int64) Q {
	r, err := New(p, q)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns the rational p/1.
func FromInt(p int64) Q { return Q{p: p} }

// reduce canonicalizes p/q (q != 0) or panics with overflowPanic{op}.
func reduce(p, q int64, op string) Q {
	if p == 0 {
		return Zero
	}
	if p == q {
		return One
	}
	g := int64(gcd(absU(p), absU(q))) // < 2^63 because p != q rules out MinInt64/MinInt64
	p, q = p/g, q/g
	if q < 0 {
		p, q = neg64(p, op), neg64(q, op)
	}

	return Q{p: p, qm1: q - 1}
}

// Num returns the numerator; it carries the sign of the value.
func (x Q) Num() int64 { return x.p }

// Den returns the denominator; it is always positive.
func (x Q) Den() int64 { return x.qm1 + 1 }

// IsZero reports whether x == 0.
func (x Q) IsZero() bool { return x.p == 0 }

// Sign returns -1, 0 or +1.
func (x Q) Sign() int {
	switch {
	case x.p < 0:
		return -1
	case x.p > 0:
		return 1
	default:
		return 0
	}
}

// Add returns x + y. Panics on int64 overflow.
//
// Implementation:
//   - Stage 1: g = gcd(den(x), den(y)); scale numerators by the co-factors.
//   - Stage 2: reduce (p_x·d_y/g + p_y·d_x/g) / (d_x·d_y/g).
func (x Q) Add(y Q) Q {
	if x.p == 0 {
		return y
	}
	if y.p == 0 {
		return x
	}
	xd, yd := x.Den(), y.Den()
	g := int64(gcd(uint64(xd), uint64(yd)))
	xs, ys := xd/g, yd/g
	num := add64(mul64(x.p, ys, opAdd), mul64(y.p, xs, opAdd), opAdd)
	den := mul64(xd, ys, opAdd)

	return reduce(num, den, opAdd)
}

// Sub returns x - y. Panics on int64 overflow.
func (x Q) Sub(y Q) Q {
	if y.p == 0 {
		return x
	}
	xd, yd := x.Den(), y.Den()
	g := int64(gcd(uint64(xd), uint64(yd)))
	xs, ys := xd/g, yd/g
	num := add64(mul64(x.p, ys, opSub), neg64(mul64(y.p, xs, opSub), opSub), opSub)
	den := mul64(xd, ys, opSub)

	return reduce(num, den, opSub)
}

// Mul returns x · y. Panics on int64 overflow.
// Numerators are cross-reduced against the opposite denominators first,
// which keeps intermediate products as small as the result allows.
func (x Q) Mul(y Q) Q {
	if x.p == 0 || y.p == 0 {
		return Zero
	}
	xd, yd := x.Den(), y.Den()
	g1 := int64(gcd(absU(x.p), uint64(yd)))
	g2 := int64(gcd(absU(y.p), uint64(xd)))
	num := mul64(x.p/g1, y.p/g2, opMul)
	den := mul64(xd/g2, yd/g1, opMul)

	return reduce(num, den, opMul)
}

// Div returns x / y.
//
// Errors:
//   - ErrDivisionByZero if y == 0.
//   - ErrOverflow if the exact quotient does not fit.
func (x Q) Div(y Q) (r Q, err error) {
	if y.p == 0 {
		return Zero, ErrDivisionByZero
	}
	defer CatchOverflow(&err)

	return x.Mul(reduce(y.Den(), y.p, opDiv)), nil
}

// Inv returns 1/x, or ErrDivisionByZero when x == 0.
func (x Q) Inv() (r Q, err error) {
	if x.p == 0 {
		return Zero, ErrDivisionByZero
	}
	defer CatchOverflow(&err)

	return reduce(x.Den(), x.p, opInv), nil
}

// Quo is Div for divisors the caller has already checked to be non-zero.
// It panics if y == 0 (programmer error) or on int64 overflow.
func (x Q) Quo(y Q) Q {
	if y.p == 0 {
		panic(ErrDivisionByZero)
	}

	return x.Mul(reduce(y.Den(), y.p, opDiv))
}

// Neg returns -x. Panics on int64 overflow.
func (x Q) Neg() Q { return Q{p: neg64(x.p, opNeg), qm1: x.qm1} }

// Abs returns |x|. Panics on int64 overflow.
func (x Q) Abs() Q {
	if x.p < 0 {
		return x.Neg()
	}

	return x
}

// Sqr returns x². Panics on int64 overflow.
func (x Q) Sqr() Q { return x.Mul(x) }

// Cmp compares x and y and returns -1, 0 or +1.
// Cross products are formed in 128 bits, so Cmp never overflows.
func (x Q) Cmp(y Q) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}

		return 1
	}
	if sx == 0 {
		return 0
	}
	// Same non-zero sign: compare |x.p|·den(y) against |y.p|·den(x).
	lh, ll := bits.Mul64(absU(x.p), uint64(y.Den()))
	rh, rl := bits.Mul64(absU(y.p), uint64(x.Den()))
	c := 0
	switch {
	case lh < rh || (lh == rh && ll < rl):
		c = -1
	case lh > rh || (lh == rh && ll > rl):
		c = 1
	}

	return c * sx
}

// Equal reports whether x == y. Equivalent to the == operator because the
// representation is canonical.
func (x Q) Equal(y Q) bool { return x == y }

// Less reports whether x < y.
func (x Q) Less(y Q) bool { return x.Cmp(y) < 0 }

// LessEq reports whether x <= y.
func (x Q) LessEq(y Q) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Q) Greater(y Q) bool { return x.Cmp(y) > 0 }

// GreaterEq reports whether x >= y.
func (x Q) GreaterEq(y Q) bool { return x.Cmp(y) >= 0 }

// Min returns the smaller of x and y.
func Min(x, y Q) Q {
	if x.Less(y) {
		return x
	}

	return y
}

// Max returns the larger of x and y.
func Max(x, y Q) Q {
	if x.Greater(y) {
		return x
	}

	return y
}

// Float64 returns the nearest float64 approximation of x.
func (x Q) Float64() float64 { return float64(x.p) / float64(x.Den()) }

// Int64 returns x truncated toward zero.
func (x Q) Int64() int64 { return x.p / x.Den() }

// String renders x as "p/q", or just "p" when the denominator is 1.
func (x Q) String() string {
	if x.qm1 == 0 {
		return strconv.FormatInt(x.p, 10)
	}

	return strconv.FormatInt(x.p, 10) + "/" + strconv.FormatInt(x.Den(), 10)
}
