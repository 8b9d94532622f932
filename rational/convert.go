// SPDX-License-Identifier: MIT
// Package rational - conversions between Q, float64 and text.

package rational

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// floatBits is the number of binary fraction digits FromFloat inspects.
	floatBits = 56

	// floatGCDTolerance is the remainder ratio at which the approximate GCD
	// used by FromFloat stops.
	floatGCDTolerance = 1e-7

	opFromFloat = "FromFloat"
	opParse     = "Parse"
)

// FromFloat converts a float64 into the closest short rational.
//
// Implementation:
//   - Stage 1: split d into floor(d) and a fractional part in [0, 1).
//   - Stage 2: test the halving weights 1/2, 1/4, … (56 of them) against the
//     fractional part, accumulating the matched weights over 2^56.
//   - Stage 3: simplify the accumulated fraction with an error-tolerant GCD,
//     so binary expansions such as 0.6 collapse back to 3/5.
//   - Stage 4: add the integer part back.
//
// Behavior highlights:
//   - Dyadic inputs (0.5, 3.375, -2.5, …) convert exactly.
//   - Irrational inputs yield a rational within ~2^-56·2^k of the input.
//   - Values below 2^-56 in magnitude beyond the integer part are dropped.
//
// Errors:
//   - ErrNotFinite for NaN/±Inf.
//   - ErrOverflow when the integer part does not fit in int64.
func FromFloat(d float64) (r Q, err error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Zero, ErrNotFinite
	}
	floor := math.Floor(d)
	if floor < math.MinInt64 || floor >= math.MaxInt64 {
		return Zero, fmt.Errorf("%s(%g): %w", opFromFloat, d, ErrOverflow)
	}
	defer CatchOverflow(&err)

	frac := d - floor
	var num int64
	weight, add := 0.5, int64(1)<<(floatBits-1)
	for i := 0; i < floatBits; i++ {
		if frac >= weight {
			frac -= weight
			num += add
		}
		weight /= 2
		add >>= 1
	}
	den := int64(1) << floatBits
	g := approxGCD(num, den, floatGCDTolerance)

	return FromInt(int64(floor)).Add(reduce(num/g, den/g, opFromFloat)), nil
}

// Format implements fmt.Formatter.
//
//   - %v and %s render the exact text form ("p/q" or "p"), honoring width
//     and the '-' flag.
//   - %e, %E, %f, %F, %g, %G render the float64 approximation with the given
//     width and precision.
func (x Q) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.Float64())
	case 'v', 's':
		s := x.String()
		w, ok := f.Width()
		if !ok || w <= len(s) {
			_, _ = io.WriteString(f, s)
			return
		}
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			_, _ = io.WriteString(f, s+pad)
			return
		}
		_, _ = io.WriteString(f, pad+s)
	default:
		fmt.Fprintf(f, "%%!%c(rational.Q=%s)", verb, x.String())
	}
}

// Parse reads a rational from text. Accepted forms:
//
//	"7", "-7"           integers
//	"3/5", "-12/4"      fractions (reduced on construction)
//	"1.25", "-.5"       exact decimals (1.25 → 5/4)
//
// Surrounding whitespace is ignored.
//
// Errors:
//   - ErrSyntax for malformed input.
//   - ErrDivisionByZero for a zero denominator.
//   - ErrOverflow when a component does not fit in int64.
func Parse(s string) (r Q, err error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Zero, parseErrorf(s, ErrSyntax)
	}
	defer CatchOverflow(&err)

	if num, den, ok := strings.Cut(t, "/"); ok {
		p, err := parseInt(s, num)
		if err != nil {
			return Zero, err
		}
		q, err := parseInt(s, den)
		if err != nil {
			return Zero, err
		}
		if q == 0 {
			return Zero, parseErrorf(s, ErrDivisionByZero)
		}

		return reduce(p, q, opParse), nil
	}

	if whole, fraction, ok := strings.Cut(t, "."); ok {
		return parseDecimal(s, whole, fraction)
	}

	p, err := parseInt(s, t)
	if err != nil {
		return Zero, err
	}

	return FromInt(p), nil
}

// parseDecimal builds whole.fraction exactly as a ratio over 10^len(fraction).
func parseDecimal(src, whole, fraction string) (Q, error) {
	neg := strings.HasPrefix(whole, "-")
	if neg || strings.HasPrefix(whole, "+") {
		whole = whole[1:]
	}
	digits := whole + fraction
	if digits == "" || strings.ContainsAny(digits, "+- ") {
		return Zero, parseErrorf(src, ErrSyntax)
	}
	num, err := parseInt(src, digits)
	if err != nil {
		return Zero, err
	}
	den := int64(1)
	for range fraction {
		den = mul64(den, 10, opParse)
	}
	if neg {
		num = -num
	}

	return reduce(num, den, opParse), nil
}

// parseInt wraps strconv.ParseInt with the package sentinels.
func parseInt(src, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err == nil {
		return v, nil
	}
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return 0, parseErrorf(src, ErrOverflow)
	}

	return 0, parseErrorf(src, ErrSyntax)
}

func parseErrorf(src string, err error) error {
	return fmt.Errorf("%s(%q): %w", opParse, src, err)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (x Q) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Q) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v

	return nil
}
