// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements bigInt96, a fixed three-limb 96-bit unsigned integer
// scratch value: a stack-resident mantissa wide enough to carry a decimal
// literal through the parser's binary scaling and a binary mantissa through
// the formatter's decimal scaling, without allocating. Each operation here is
// a direct port of the bit-twiddling macros the original C conversion
// routine used for the same purpose, rewritten as Go methods over three
// uint32 limbs and carry propagation from math/bits, in the idiom the rest
// of this package's Word-width arithmetic follows.

package number

import "math/bits"

// debugBigInt96 gates the invariant checks below. They compile away to
// nothing when false; flip it to true locally to turn them into panics.
const debugBigInt96 = false

// bigInt96 holds a 96-bit unsigned integer as three 32-bit limbs, lo being
// the least significant. The zero value is zero.
type bigInt96 struct {
	hi, mid, lo uint32
}

// init sets v to hi<<64 | mid<<32 | lo. hi, mid and lo are accepted as uint64
// so callers can pass already-widened intermediates; each must fit in 32
// bits, mirroring the range assertion the original macro made at its call
// sites.
func (v *bigInt96) init(hi, mid, lo uint64) {
	if debugBigInt96 && (hi > 0xffffffff || mid > 0xffffffff || lo > 0xffffffff) {
		panic("number: bigInt96.init: limb out of range")
	}
	v.hi, v.mid, v.lo = uint32(hi), uint32(mid), uint32(lo)
}

func (v bigInt96) isZero() bool { return v.hi == 0 && v.mid == 0 && v.lo == 0 }

func (v bigInt96) equal(o bigInt96) bool { return v.hi == o.hi && v.mid == o.mid && v.lo == o.lo }

// bitLen returns the position one past v's most significant set bit, or 0 if
// v is zero.
func (v bigInt96) bitLen() uint {
	if v.hi != 0 {
		return 64 + uint(bits.Len32(v.hi))
	}
	if v.mid != 0 {
		return 32 + uint(bits.Len32(v.mid))
	}
	return uint(bits.Len32(v.lo))
}

// trailingZeros returns the number of trailing zero bits in v, or 96 if v is
// zero.
func (v bigInt96) trailingZeros() uint {
	if v.lo != 0 {
		return uint(bits.TrailingZeros32(v.lo))
	}
	if v.mid != 0 {
		return 32 + uint(bits.TrailingZeros32(v.mid))
	}
	if v.hi != 0 {
		return 64 + uint(bits.TrailingZeros32(v.hi))
	}
	return 96
}

// highBitsZero reports whether bits [b,96) of v are all zero, i.e. v < 2**b.
func (v bigInt96) highBitsZero(b uint) bool { return v.bitLen() <= b }

// lowBitsZero reports whether v is a multiple of 2**b, i.e. its low b bits
// (bit indices 0 through b-1) are all zero. Callers checking against an
// inclusive bit index n (bits 0 through n) should pass b = n+1.
func (v bigInt96) lowBitsZero(b uint) bool { return v.trailingZeros() >= b }

// shl1 shifts v left by one bit; the bit shifted out of bit 95 is discarded.
func (v *bigInt96) shl1() {
	v.hi = v.hi<<1 | v.mid>>31
	v.mid = v.mid<<1 | v.lo>>31
	v.lo = v.lo << 1
}

// shr1 shifts v right by one bit; bit 0 is discarded.
func (v *bigInt96) shr1() {
	v.lo = v.lo>>1 | v.mid<<31
	v.mid = v.mid>>1 | v.hi<<31
	v.hi = v.hi >> 1
}

// inc adds 1 to v.
func (v *bigInt96) inc() {
	lo, c := bits.Add32(v.lo, 1, 0)
	mid, c := bits.Add32(v.mid, 0, c)
	hi, c := bits.Add32(v.hi, 0, c)
	v.lo, v.mid, v.hi = lo, mid, hi
	if debugBigInt96 && c != 0 {
		panic("number: bigInt96.inc: overflow")
	}
}

// add sets v to v+o.
func (v *bigInt96) add(o bigInt96) {
	lo, c := bits.Add32(v.lo, o.lo, 0)
	mid, c := bits.Add32(v.mid, o.mid, c)
	hi, c := bits.Add32(v.hi, o.hi, c)
	v.lo, v.mid, v.hi = lo, mid, hi
	if debugBigInt96 && c != 0 {
		panic("number: bigInt96.add: overflow")
	}
}

// mul10 sets v to v*10, computed as v*2 + v*8 (three shl1 passes on a saved
// copy, one shl1 pass on v itself, then an add) rather than a general
// multiply, since 10 is the only multiplier this scratch value ever needs.
func (v *bigInt96) mul10() {
	orig := *v
	v.shl1() // v == orig*2

	t := orig
	t.shl1()
	t.shl1()
	t.shl1() // t == orig*8

	v.add(t) // v == orig*2 + orig*8 == orig*10
}

// div10Magic is floor(2**96/10), rounded up by 1 in the low limb: an
// approximation of 1/10 scaled to a 96-bit fixed-point reciprocal. Written
// high:mid:lo, matching the constant the original conversion routine
// cross-multiplied against.
const (
	div10MagicHi  = 0x19999999
	div10MagicMid = 0x99999999
	div10MagicLo  = 0x9999999a
)

// mul96 computes the full 192-bit product of two 96-bit values, each given
// as three limbs ordered [lo, mid, hi], returned the same way as six limbs
// ordered from least to most significant. This is the six-term schoolbook
// cross-multiply the reciprocal-multiply division below needs; math/bits
// supplies the 32x32->64 primitive and the carry propagation.
func mul96(a, b [3]uint32) [6]uint32 {
	var acc [7]uint64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			hi, lo := bits.Mul32(a[i], b[j])
			acc[i+j] += uint64(lo)
			acc[i+j+1] += uint64(hi)
		}
	}
	var r [6]uint32
	var carry uint64
	for i := 0; i < 6; i++ {
		acc[i] += carry
		r[i] = uint32(acc[i])
		carry = acc[i] >> 32
	}
	return r
}

// div10 sets v to floor(v/10), approximately: it multiplies v by div10Magic,
// a 96-bit fixed-point reciprocal of 10, and keeps only the top 96 bits of
// the 192-bit product. This is a literal port of the original conversion
// routine's reciprocal-multiply macro rather than an exact long division, so
// it carries the same small truncation bias the original had; the
// formatter's digit-count loop compensates for it (see formatter.go).
func (v *bigInt96) div10() {
	a := [3]uint32{v.lo, v.mid, v.hi}
	m := [3]uint32{div10MagicLo, div10MagicMid, div10MagicHi}
	r := mul96(a, m)
	v.lo, v.mid, v.hi = r[3], r[4], r[5]
}

// roundHiMidToU64 extracts the upper 64 bits of v (hi:mid) as a single
// uint64, rounding to nearest using the top bit of the discarded low limb.
func (v bigInt96) roundHiMidToU64() uint64 {
	r := uint64(v.hi)<<32 | uint64(v.mid)
	if v.lo>>31 != 0 {
		r++
	}
	return r
}

// roundMidLoToU64 extracts the middle and low limbs of v (mid:lo) as a
// single uint64, with no rounding.
func (v bigInt96) roundMidLoToU64() uint64 {
	return uint64(v.mid)<<32 | uint64(v.lo)
}
