// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements ParseNumber, the string-to-Number conversion of
// ECMA-262 §9.3.1's StringNumericLiteral grammar, pivoting through a
// bigInt96 scratch value exactly as the original C conversion routine does,
// ported from its normalize/scale loop over the 91/92-bit and 84-bit windows.

package number

// explicitExponentCap bounds how far an explicit "e"/"E" exponent (and the
// digit-position exponent accumulated while scanning past MaxDigits
// significant digits) is allowed to push the decimal scaling loop below,
// so a literal like "1e999999999" saturates to ±Inf in a bounded number of
// loop iterations instead of an unbounded one. Any literal whose magnitude
// would already be ±Inf or ±0 at this exponent stays ±Inf or ±0 once
// clamped, so the cap changes no observable result.
const explicitExponentCap = 100000

// ParseNumber converts s to a Number following the ECMAScript ToNumber
// string grammar: optional surrounding whitespace, an optional sign, a
// decimal or "0x"/"0X"-prefixed hexadecimal integer literal, or the literal
// "Infinity". Input consisting only of whitespace (or empty) is 0. Anything
// else that the grammar doesn't fully consume yields NaN; there is no error
// return.
func ParseNumber(s string) Number {
	s = trimStrWhiteSpace(s)
	if s == "" {
		return 0
	}

	if n, ok := parseHexLiteral(s); ok {
		return n
	}

	negative := false
	rest := s
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		negative = true
		rest = rest[1:]
	}
	if rest == "" {
		return makeNaN()
	}

	if rest == magicStringInfinity.String() {
		return makeInfinity(negative)
	}

	lit := rest
	fraction, _, e := scanDecimalDigits(rest, &rest)
	// mant is the text the scan consumed: decimal digits and at most one '.'.
	mant := lit[:len(lit)-len(rest)]

	if rest != "" && (rest[0] == 'e' || rest[0] == 'E') {
		expVal, ok := scanExponent(rest[1:], &rest)
		if !ok {
			return makeNaN()
		}
		e += expVal
	}

	if rest != "" {
		// trailing characters the grammar didn't consume
		return makeNaN()
	}

	if mant == "" || mant == "." {
		// no digit at all, only an optional '.'
		return makeNaN()
	}
	if fraction == 0 {
		return makeZero(negative)
	}

	if e > explicitExponentCap {
		e = explicitExponentCap
	} else if e < -explicitExponentCap {
		e = -explicitExponentCap
	}

	return scaleToNumber(negative, fraction, e)
}

func trimStrWhiteSpace(s string) string {
	i, j := 0, len(s)
	for i < j {
		r := rune(s[i])
		if !isStrWhiteSpace(r) {
			break
		}
		i++
	}
	for j > i {
		r := rune(s[j-1])
		if !isStrWhiteSpace(r) {
			break
		}
		j--
	}
	return s[i:j]
}

// isStrWhiteSpace reports whether r is whitespace for the purposes of
// trimming a numeric literal: ASCII space and newline only, matching the
// source's white_space[] table (no tabs, no other Unicode space).
func isStrWhiteSpace(r rune) bool {
	return r == ' ' || r == '\n'
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexDigitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	default:
		return uint64(c-'A') + 10
	}
}

// parseHexLiteral recognizes a "0x"/"0X"-prefixed hexadecimal integer
// literal occupying the whole of s (no sign permitted, matching the
// original routine this is ported from). ok is false if s doesn't have the
// prefix, in which case the caller falls through to decimal parsing.
func parseHexLiteral(s string) (Number, bool) {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, false
	}
	digits := s[2:]
	var n float64
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return makeNaN(), true
		}
		n = n*16 + float64(hexDigitValue(digits[i]))
	}
	return Number(n), true
}

// scanDecimalDigits consumes the StrDecimalLiteral's digit sequence
// (integer part, optional fractional part) starting at s, returning the
// accumulated significant digits as fraction, the count of digits that
// contributed to it, and the decimal exponent adjustment e contributed by
// digits outside the MaxDigits significance window (dropped integer digits
// shift e up, dropped fractional digits don't, since they don't affect
// magnitude). *rest is left pointing at the first unconsumed byte.
//
// Leading zeros before the first nonzero digit don't count as significant:
// they're skipped rather than spent out of the MaxDigits budget, matching
// the source's "digits != 0 || digit_value != 0" accumulation guard.
func scanDecimalDigits(s string, rest *string) (fraction uint64, digits int, e int) {
	i := 0
	for i < len(s) && isDecDigit(s[i]) {
		d := s[i] - '0'
		if digits != 0 || d != 0 {
			if digits < MaxDigits {
				fraction = fraction*10 + uint64(d)
				digits++
			} else {
				e++
			}
		}
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDecDigit(s[i]) {
			d := s[i] - '0'
			if digits != 0 || d != 0 {
				if digits < MaxDigits {
					fraction = fraction*10 + uint64(d)
					digits++
					e--
				}
			} else {
				e--
			}
			i++
		}
	}

	*rest = s[i:]
	return fraction, digits, e
}

// scanExponent consumes an optional sign followed by one or more decimal
// digits (the "e"/"E" has already been consumed by the caller), returning
// the signed exponent value. ok is false if no digit follows, per the
// grammar's requirement that ExponentPart have at least one digit.
func scanExponent(s string, rest *string) (int, bool) {
	neg := false
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	val := 0
	for i < len(s) && isDecDigit(s[i]) {
		if val < explicitExponentCap {
			val = val*10 + int(s[i]-'0')
			if val > explicitExponentCap {
				val = explicitExponentCap
			}
		}
		i++
	}
	if i == start {
		return 0, false
	}
	*rest = s[i:]
	if neg {
		return -val, true
	}
	return val, true
}

// scaleToNumber carries fraction (an up-to-MaxDigits-digit decimal integer)
// through a bigInt96 scratch value to apply the decimal exponent e, then
// hands the result to the Float primitive that knows how to turn a 64-bit
// mantissa and binary exponent into a Number, saturating on overflow or
// underflow. This is the normalize/scale loop of the original routine: first
// left-shift the mantissa into a 91/92-bit window, walk off the decimal
// exponent via repeated mul10/div10 (each followed by a renormalizing
// shift), then reposition into an 84-bit window before extracting the top
// 64 significant bits.
func scaleToNumber(negative bool, fraction uint64, e int) Number {
	var v bigInt96
	v.init(fraction>>32, fraction&0xffffffff, 0)
	binaryExponent := int32(1)
	// exact stays true while v holds the scaled value with no bits lost, so
	// an exact halfway case can be rounded to even at the end.
	exact := true

	// Normalize into the 91/92-bit window: |4 zero bits|92-bit mantissa with
	// its top bit set|.
	for v.highBitsZero(91) {
		v.shl1()
		binaryExponent--
	}

	if e > 0 {
		for e > 0 {
			v.mul10()
			e--

			for v.bitLen() > 92 {
				exact = exact && v.lo&1 == 0
				v.shr1()
				binaryExponent++
			}
			for v.highBitsZero(91) {
				v.shl1()
				binaryExponent--
			}
		}
	} else if e < 0 {
		exact = false // div10 is not exact
		for e < 0 && !v.isZero() {
			// Denormalize so the mantissa's top bit sits at bit 95 before
			// dividing, so div10's reciprocal-multiply approximation has
			// maximal headroom and loses as little precision as possible.
			for v.highBitsZero(95) {
				v.shl1()
				binaryExponent--
			}
			v.div10()
			e++
		}

		for v.bitLen() > 92 {
			v.shr1()
			binaryExponent++
		}
		for !v.isZero() && v.highBitsZero(91) {
			v.shl1()
			binaryExponent--
		}
	}

	if v.isZero() {
		return makeZero(negative)
	}

	for v.bitLen() > 85 {
		exact = exact && v.lo&1 == 0
		v.shr1()
		binaryExponent++
	}
	for v.bitLen() < 85 {
		v.shl1()
		binaryExponent--
	}

	mantissa := v.roundHiMidToU64()
	if exact && v.lo == 1<<31 && v.mid&1 == 0 {
		// exactly halfway: round to the even mantissa instead of up
		mantissa--
	}
	return makeFromSignMantissaExponent(negative, mantissa, binaryExponent)
}
