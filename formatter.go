// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements FormatNumber/AppendNumber, the Number-to-string
// conversion of ECMA-262 §9.8.1's shortest-round-tripping-decimal algorithm,
// a direct port of the original C conversion routine's two-bound
// (Steele & White style) digit search followed by its four-shape
// positional/scientific dispatch.

package number

// calcNumberParams computes s, k and n per ECMA-262 §9.8.1 item 5: s is the
// shortest sequence of k decimal digits such that s * 10**(n-k), read back,
// round-trips to num, and n is the decimal point position relative to that
// digit sequence. It does so by computing, for each of the lowest and
// highest binary fractions that round to num's mantissa, the corresponding
// decimal digit string, then narrowing those two bounds to the same length
// and picking a value between them.
func calcNumberParams(num Number) (s uint64, k int32, n int32) {
	var sBound [2]uint64
	var kBound, nBound [2]int32

	for i := 0; i < 2; i++ {
		fractionU64, binaryExponent, dotShift := getFractionAndExponent(num)
		binaryExponent -= dotShift

		var v bigInt96
		if i == 0 {
			// lowest binary fraction that should round to fractionU64
			f := fractionU64 - 1
			v.init(f>>60, (f<<4)>>32, ((f<<36)>>32)|0x8)
		} else {
			// highest binary fraction that should round to fractionU64
			f := fractionU64
			v.init(f>>60, (f<<4)>>32, ((f<<36)>>32)|0x7)
		}
		binaryExponent -= 4

		decimalExp := int32(0)

		// Converting binary exponent to decimal exponent.
		if binaryExponent > 0 {
			for binaryExponent > 0 {
				if !v.highBitsZero(92) {
					v.inc()
					v.shr1()
					binaryExponent++
				} else {
					tmp := v
					tmp.div10()
					tmp.mul10()

					if !v.equal(tmp) && v.highBitsZero(91) {
						v.shl1()
						binaryExponent--
					} else {
						v.div10()
						decimalExp++
					}
				}
			}
		} else if binaryExponent < 0 {
			for binaryExponent < 0 {
				if v.lowBitsZero(1) || !v.highBitsZero(92) {
					v.shr1()
					binaryExponent++
				} else {
					v.mul10()
					decimalExp--
				}
			}
		}

		// While the fraction doesn't fit in the native digit-extraction
		// width, divide it down, tracking the decimal exponent.
		for v.bitLen() > nativeDigitBits {
			v.div10()
			decimalExp++
		}

		digits := v.roundMidLoToU64()
		digitsNum := int32(0)

		t := digits
		for t != 0 {
			if digitsNum < MaxDigits {
				digitsNum++
			} else {
				if t < 10 {
					digits += 5
				}
				digits /= 10
			}
			t /= 10
			decimalExp++
		}

		sBound[i] = digits
		kBound[i] = digitsNum
		nBound[i] = decimalExp
	}

	// Make the bound values' digit sets the same length.
	for i := 0; i < 2; i++ {
		j := 1 - i
		for nBound[i]-kBound[i] > nBound[j]-kBound[j] {
			sBound[i] *= 10
			kBound[i]++
		}
	}

	for sBound[0]/10 != sBound[1]/10 {
		sBound[0] /= 10
		sBound[1] /= 10
		kBound[0]--
		kBound[1]--
	}

	if kBound[0] == kBound[1] {
		s = (sBound[0] + sBound[1] + 1) / 2
	} else {
		s = sBound[1]
	}
	k = kBound[1]
	n = nBound[1]
	return
}

// FormatNumber returns the shortest decimal string that round-trips back to
// n through ParseNumber, formatted per ECMA-262 §9.8.1.
func FormatNumber(n Number) string {
	return string(AppendNumber(nil, n))
}

// AppendNumber appends the ECMA-262 §9.8.1 decimal representation of n to
// dst and returns the extended slice.
func AppendNumber(dst []byte, n Number) []byte {
	if isNaN(n) {
		return append(dst, magicStringNaN.String()...)
	}
	if isZero(n) {
		return append(dst, '0')
	}
	if isNegative(n) {
		dst = append(dst, '-')
		return AppendNumber(dst, negate(n))
	}
	if isInfinity(n) {
		return append(dst, magicStringInfinity.String()...)
	}
	return appendPositiveNumber(dst, n)
}

// appendPositiveNumber formats a finite, strictly positive n.
func appendPositiveNumber(dst []byte, n Number) []byte {
	if u := ToUint32(n); Uint32ToNumber(u) == n {
		return AppendUint32(dst, u)
	}

	s, k, n32 := calcNumberParams(n)

	switch {
	case k <= n32 && n32 <= 21:
		// digits, then trailing zeros up to the decimal point
		return appendDigitsThenZeros(dst, s, k, n32-k)
	case 0 < n32 && n32 <= 21:
		return appendDigitsWithEmbeddedDot(dst, s, k, n32)
	case -6 < n32 && n32 <= 0:
		return appendDigitsWithLeadingZeros(dst, s, k, n32)
	default:
		return appendScientific(dst, s, k, n32)
	}
}

// digitsOf renders the k decimal digits of s into a freshly allocated slice,
// most significant digit first.
func digitsOf(s uint64, k int32) []byte {
	var buf [32]byte
	i := len(buf)
	for j := int32(0); j < k; j++ {
		i--
		buf[i] = byte('0' + s%10)
		s /= 10
	}
	out := make([]byte, k)
	copy(out, buf[i:])
	return out
}

func appendDigitsThenZeros(dst []byte, s uint64, k, trailingZeros int32) []byte {
	dst = append(dst, digitsOf(s, k)...)
	for i := int32(0); i < trailingZeros; i++ {
		dst = append(dst, '0')
	}
	return dst
}

func appendDigitsWithEmbeddedDot(dst []byte, s uint64, k, dotPos int32) []byte {
	digits := digitsOf(s, k)
	dst = append(dst, digits[:dotPos]...)
	dst = append(dst, '.')
	dst = append(dst, digits[dotPos:]...)
	return dst
}

func appendDigitsWithLeadingZeros(dst []byte, s uint64, k, n int32) []byte {
	dst = append(dst, '0', '.')
	for i := int32(0); i < -n; i++ {
		dst = append(dst, '0')
	}
	dst = append(dst, digitsOf(s, k)...)
	return dst
}

func appendScientific(dst []byte, s uint64, k, n int32) []byte {
	digits := digitsOf(s, k)
	if k == 1 {
		dst = append(dst, digits[0])
	} else {
		dst = append(dst, digits[0], '.')
		dst = append(dst, digits[1:]...)
	}

	dst = append(dst, 'e')
	var exp int32
	if n >= 1 {
		dst = append(dst, '+')
		exp = n - 1
	} else {
		dst = append(dst, '-')
		exp = -(n - 1)
	}
	return appendExponentDigits(dst, exp)
}

func appendExponentDigits(dst []byte, exp int32) []byte {
	if exp == 0 {
		return append(dst, '0')
	}
	var buf [10]byte
	i := len(buf)
	for exp != 0 {
		i--
		buf[i] = byte('0' + exp%10)
		exp /= 10
	}
	return append(dst, buf[i:]...)
}
