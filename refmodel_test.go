// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// refmodel_test.go cross-checks ParseNumber and the formatter's digit-count
// search against two independent models instead of re-deriving correctness
// from the same bigInt96 arithmetic under test: math/big for exact decimal
// values (round-trip exactness), and strconv's own shortest-float algorithm
// for the expected significant digit count (shortest-ness).

package number

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"testing"
)

// exactDecimalValue parses a plain "[-]digits[.digits][e[+-]digits]"
// literal into an exact big.Rat, using only big.Int arithmetic. It is
// deliberately independent of parser.go's own digit-scanning code.
func exactDecimalValue(t *testing.T, s string) *big.Rat {
	t.Helper()

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	mantissa := s
	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			t.Fatalf("bad exponent in %q: %v", s, err)
		}
		exp = e
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
	}

	digits := intPart + fracPart
	num := new(big.Int)
	if _, ok := num.SetString(digits, 10); !ok {
		t.Fatalf("bad digits in %q", s)
	}
	exp -= len(fracPart)

	r := new(big.Rat).SetInt(num)
	ten := big.NewInt(10)
	if exp >= 0 {
		scale := new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil)
		r.Mul(r, new(big.Rat).SetInt(scale))
	} else {
		scale := new(big.Int).Exp(ten, big.NewInt(int64(-exp)), nil)
		r.Quo(r, new(big.Rat).SetInt(scale))
	}
	if neg {
		r.Neg(r)
	}
	return r
}

// nearestFloat64 returns the float64 nearest to the exact value r, using
// math/big's own correctly-rounded conversion as the independent oracle for
// "what ParseNumber should have produced".
func nearestFloat64(r *big.Rat) float64 {
	f := new(big.Float).SetPrec(200).SetRat(r)
	v, _ := f.Float64()
	return v
}

func TestRefModelParseNumberAgainstBigRat(t *testing.T) {
	literals := []string{
		"0.1", "0.2", "0.3", "3.14159265358979", "1.7976931348623157e308",
		"4.9406564584124654e-324", "123456789.987654321", "-2.5", "1e100",
		"1e-100", "9007199254740993", "2.2250738585072014e-308",
	}
	for _, lit := range literals {
		want := nearestFloat64(exactDecimalValue(t, lit))
		got := float64(ParseNumber(lit))
		if got != want {
			t.Errorf("ParseNumber(%q) = %v, big.Rat oracle wants %v", lit, got, want)
		}
	}
}

func TestRefModelShortestDigitCount(t *testing.T) {
	values := []float64{
		0.1, 0.2, 1.0 / 3.0, math.Pi, math.E, 100, 123456789,
		1e300, 1e-300, 5e-324, 1.7976931348623157e308, 2, 1024, 1.5,
	}
	for _, v := range values {
		_, k, _ := calcNumberParams(Number(v))

		ref := strconv.FormatFloat(v, 'e', -1, 64)
		mant := strings.SplitN(ref, "e", 2)[0]
		mant = strings.Replace(mant, ".", "", 1)
		wantK := int32(len(mant))

		if k != wantK {
			t.Errorf("digit count for %v: got %d, strconv oracle (%s) wants %d", v, k, ref, wantK)
		}
	}
}
