// Package rational implements Q, an exact rational number backed by a
// fixed-width int64 numerator and denominator.
//
// What & Why:
//
//	Elimination-based linear algebra (determinants, Gauss, Gauss-Jordan,
//	Cramer, inverses) accumulates rounding error quickly in float64. Q keeps
//	every intermediate value exact, so a solution either comes out exactly
//	right or the computation reports that it could not be represented.
//
// Invariants (hold for every Q value, including the zero value):
//   - gcd(|Num()|, Den()) == 1;
//   - Den() > 0, the sign always lives on the numerator;
//   - zero is always 0/1, so == on Q values is exact equality and Q is
//     usable directly as a map key.
//
// Overflow policy:
//
//	Q never silently wraps. Methods that return only a Q (Add, Sub, Mul, Neg,
//	Abs, Sqr) panic when the exact result does not fit in int64; methods
//	that already return an error (Div, Inv, FromFloat, Parse) report
//	ErrOverflow instead. Library code that returns errors defers
//	CatchOverflow to convert the panic into ErrOverflow at its boundary.
//
// Quick example:
//
//	a := rational.MustNew(1, 2)
//	b := rational.MustNew(3, 5)
//	fmt.Println(a.Add(b))  // 11/10
//	fmt.Println(a.Less(b)) // true
package rational
