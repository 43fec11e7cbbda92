//go:build !ecmanumber32

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Number is the host ECMAScript Number representation. This build selects
// the 64-bit IEEE-754 double precision form; build with the ecmanumber32 tag
// to select float32 instead (see config_32.go). The two build-tagged files
// are this package's compile-time equivalent of a C preprocessor switch: the
// parser and formatter read Number/MaxDigits but never decide between them.
type Number = float64

// MaxDigits bounds the count of significant decimal digits the parser
// accumulates and the formatter emits before falling back to positional
// rounding of the tail. It is ECMA_NUMBER_MAX_DIGITS for the 64-bit
// configuration: enough to round-trip every double exactly.
const MaxDigits = 19

// nativeDigitBits is the width, in bits, that the formatter's shortest-digits
// loop reduces its BigInt96 scratch value into before extracting digits with
// roundMidLoToU64.
const nativeDigitBits = 64
