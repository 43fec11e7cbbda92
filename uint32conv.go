// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the uint32/int32 conversions of ECMA-262 §§9.5, 9.6,
// and the plain decimal uint32 formatter the Number formatter's integer fast
// path (see formatter.go) delegates to.

package number

import "math"

const twoTo32 = 4294967296

// Uint32ToNumber converts an unsigned 32-bit integer to a Number. In the
// 64-bit configuration the conversion is always exact; in the 32-bit
// configuration values above 2**24 are rounded to the nearest float32.
func Uint32ToNumber(v uint32) Number { return Number(v) }

// Int32ToNumber converts a signed 32-bit integer to a Number: exactly in the
// 64-bit configuration, rounded to the nearest float32 for magnitudes above
// 2**24 in the 32-bit configuration.
func Int32ToNumber(v int32) Number { return Number(v) }

// ToUint32 implements ECMA-262 §9.6: NaN, ±0 and ±Infinity map to 0;
// otherwise the value is truncated toward zero and reduced modulo 2**32.
func ToUint32(n Number) uint32 {
	if isNaN(n) || isZero(n) || isInfinity(n) {
		return 0
	}
	posInt := math.Trunc(float64(n))
	m := math.Mod(posInt, twoTo32)
	if m < 0 {
		m += twoTo32
	}
	return uint32(m)
}

// ToInt32 implements ECMA-262 §9.5: identical to ToUint32 except the result
// is reinterpreted as two's complement, which is exactly what converting the
// uint32 result to int32 does in Go.
func ToInt32(n Number) int32 {
	return int32(ToUint32(n))
}

// AppendUint32 appends the plain decimal representation of v to dst and
// returns the extended slice.
func AppendUint32(dst []byte, v uint32) []byte {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// FormatUint32 returns the plain decimal representation of v.
func FormatUint32(v uint32) string {
	return string(AppendUint32(nil, v))
}
