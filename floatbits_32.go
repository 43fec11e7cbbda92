//go:build ecmanumber32

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Float primitives for the 32-bit Number configuration. See floatbits.go for
// the default 64-bit build and the shared makeFromSignMantissaExponent
// contract.

package number

import "math"

const (
	float32FractionBits = 23
	float32ExpBias       = 127
	float32ExpMask        = 0xff
)

func isNaN(n Number) bool { return math.IsNaN(float64(n)) }

func isZero(n Number) bool { return n == 0 }

func isInfinity(n Number) bool { return math.IsInf(float64(n), 0) }

func isNegative(n Number) bool { return math.Signbit(float64(n)) }

func makeNaN() Number { return Number(math.NaN()) }

func makeInfinity(negative bool) Number {
	if negative {
		return Number(math.Inf(-1))
	}
	return Number(math.Inf(1))
}

func makeZero(negative bool) Number {
	if negative {
		return Number(math.Copysign(0, -1))
	}
	return 0
}

func negate(n Number) Number { return -n }

// makeFromSignMantissaExponent mirrors floatbits.go's 64-bit constructor: the
// exact float64 scaling happens first (mantissa never exceeds 53 significant
// bits, so it is exact), and the single truncation to float32 at the end is
// the only rounding step, matching IEEE-754 single-rounding semantics.
func makeFromSignMantissaExponent(negative bool, mantissa uint64, binaryExponent int32) Number {
	if mantissa == 0 {
		return makeZero(negative)
	}
	v := math.Ldexp(float64(mantissa), int(binaryExponent)-1)
	if negative {
		v = -v
	}
	return Number(v)
}

// getFractionAndExponent splits n into its 23-bit fraction field (with the
// implicit leading bit folded in for normal values), raw binary exponent, and
// dotShift, such that n == ±mantissa * 2**(binaryExponent-dotShift).
func getFractionAndExponent(n Number) (fraction uint64, binaryExponent int32, dotShift int32) {
	bits := math.Float32bits(float32(math.Abs(float64(n))))
	rawExp := int32((bits >> float32FractionBits) & float32ExpMask)
	frac := bits &^ (uint32(float32ExpMask) << float32FractionBits)

	if rawExp == 0 {
		return uint64(frac), 1 - float32ExpBias, float32FractionBits
	}
	return uint64(frac | (1 << float32FractionBits)), rawExp - float32ExpBias, float32FractionBits
}
