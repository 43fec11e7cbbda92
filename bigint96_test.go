// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"
	"testing"
)

// toBig converts v to an independent big.Int representation, used here as
// the oracle the bit-twiddling methods are checked against.
func (v bigInt96) toBig() *big.Int {
	r := new(big.Int).SetUint64(uint64(v.hi))
	r.Lsh(r, 32)
	r.Or(r, new(big.Int).SetUint64(uint64(v.mid)))
	r.Lsh(r, 32)
	r.Or(r, new(big.Int).SetUint64(uint64(v.lo)))
	return r
}

func bigInt96FromBig(x *big.Int) bigInt96 {
	mask := new(big.Int).SetUint64(0xffffffff)
	lo := new(big.Int).And(x, mask).Uint64()
	mid := new(big.Int).And(new(big.Int).Rsh(x, 32), mask).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(x, 64), mask).Uint64()
	var v bigInt96
	v.init(hi, mid, lo)
	return v
}

func TestBigInt96InitAndEqual(t *testing.T) {
	var v bigInt96
	v.init(1, 2, 3)
	if v.hi != 1 || v.mid != 2 || v.lo != 3 {
		t.Fatalf("init: got %#v", v)
	}
	var w bigInt96
	w.init(1, 2, 3)
	if !v.equal(w) {
		t.Fatalf("equal: %#v != %#v", v, w)
	}
	w.lo++
	if v.equal(w) {
		t.Fatalf("equal: %#v should differ from %#v", v, w)
	}
}

func TestBigInt96IsZero(t *testing.T) {
	var v bigInt96
	if !v.isZero() {
		t.Fatal("zero value should be isZero")
	}
	v.init(0, 0, 1)
	if v.isZero() {
		t.Fatal("non-zero value reported isZero")
	}
}

func TestBigInt96BitsZero(t *testing.T) {
	var v bigInt96
	v.init(0, 1<<20, 0) // bit 52 set
	if !v.highBitsZero(53) {
		t.Fatal("highBitsZero(53) should hold: MSB is bit 52")
	}
	if v.highBitsZero(52) {
		t.Fatal("highBitsZero(52) should not hold: bit 52 is set")
	}
	if !v.lowBitsZero(52) {
		t.Fatal("lowBitsZero(52) should hold: only bit 52 is set")
	}
	if v.lowBitsZero(53) {
		t.Fatal("lowBitsZero(53) should not hold: bit 52 < 53")
	}
}

func TestBigInt96ShiftRoundTrip(t *testing.T) {
	var v bigInt96
	v.init(0, 0x80000000, 0x00000001)
	want := v.toBig()

	v.shl1()
	got := new(big.Int).Lsh(want, 1)
	got.And(got, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1)))
	if v.toBig().Cmp(got) != 0 {
		t.Fatalf("shl1: got %s want %s", v.toBig(), got)
	}

	v.shr1()
	if v.toBig().Cmp(want) != 0 {
		t.Fatalf("shr1 after shl1: got %s want %s", v.toBig(), want)
	}
}

func TestBigInt96IncAdd(t *testing.T) {
	var v bigInt96
	v.init(0, 0, 0xffffffff)
	v.inc()
	if v.hi != 0 || v.mid != 1 || v.lo != 0 {
		t.Fatalf("inc carry: got %#v", v)
	}

	var a, b bigInt96
	a.init(1, 2, 3)
	b.init(4, 5, 6)
	a.add(b)
	if a.hi != 5 || a.mid != 7 || a.lo != 9 {
		t.Fatalf("add: got %#v", a)
	}
}

func TestBigInt96Mul10(t *testing.T) {
	cases := []uint64{0, 1, 9, 42, 1_000_000_007, 0xffffffff}
	for _, c := range cases {
		var v bigInt96
		v.init(0, c>>32, c&0xffffffff)
		v.mul10()
		want := new(big.Int).Mul(new(big.Int).SetUint64(c), big.NewInt(10))
		if v.toBig().Cmp(want) != 0 {
			t.Errorf("mul10(%d): got %s want %s", c, v.toBig(), want)
		}
	}
}

func TestBigInt96Div10(t *testing.T) {
	cases := []uint64{0, 1, 9, 10, 11, 42, 999_999_999, 0xffffffffffffffff}
	for _, c := range cases {
		var v bigInt96
		v.init(c>>32, 0, c&0xffffffff)
		// the first init (c's halves in hi and lo) is overwritten: c is
		// placed in the mid:lo limbs, so these cases exercise div10 on
		// values far below the bit-95-normalized ones the parser divides.
		v.init(0, c>>32, c&0xffffffff)
		v.div10()
		want := new(big.Int).Div(new(big.Int).SetUint64(c), big.NewInt(10))
		got := v.toBig()
		diff := new(big.Int).Sub(got, want)
		diff.Abs(diff)
		// div10 is a reciprocal-multiply approximation, not exact long
		// division; it must never be off by more than 1.
		if diff.Cmp(big.NewInt(1)) > 0 {
			t.Errorf("div10(%d): got %s want %s (diff %s)", c, got, want, diff)
		}
	}
}

func TestBigInt96RoundExtract(t *testing.T) {
	var v bigInt96
	v.init(0x1, 0x2, 0x80000000) // top bit of lo set: rounds up
	if got, want := v.roundHiMidToU64(), uint64(0x1)<<32|uint64(0x3); got != want {
		t.Fatalf("roundHiMidToU64: got %#x want %#x", got, want)
	}

	v.init(0x1, 0x2, 0x7fffffff) // top bit of lo clear: no rounding
	if got, want := v.roundHiMidToU64(), uint64(0x1)<<32|uint64(0x2); got != want {
		t.Fatalf("roundHiMidToU64: got %#x want %#x", got, want)
	}

	v.init(0x1, 0x2, 0x3)
	if got, want := v.roundMidLoToU64(), uint64(0x2)<<32|uint64(0x3); got != want {
		t.Fatalf("roundMidLoToU64: got %#x want %#x", got, want)
	}
}
