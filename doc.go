// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package number implements the bidirectional conversion between an
ECMAScript-style Number (an IEEE-754 binary floating-point value, 64-bit by
default) and its decimal textual form, per ECMA-262 §§9.3.1, 9.5, 9.6 and
9.8.1.

Both directions pivot on BigInt96, a fixed three-limb 96-bit unsigned integer
used as scratch storage wide enough to carry a decimal mantissa through the
binary scaling the parser performs, and a binary mantissa through the decimal
scaling the formatter performs, without losing the precision either
conversion needs to be correctly rounded.

	n := ParseNumber("3.14159")
	s := FormatNumber(n) // "3.14159"

ParseNumber accepts the grammar of ECMA-262 §9.3.1: optionally-signed decimal
or "0x"-prefixed hexadecimal integer literals, the literal "Infinity", and
whitespace-only or empty input. Any other input, or any trailing unconsumed
character, yields NaN; there is no error return, matching the ECMAScript
ToNumber abstract operation this mirrors.

FormatNumber produces the shortest decimal string that round-trips back to
the same Number through ParseNumber, formatted per the positional/scientific
rules of ECMA-262 §9.8.1.

ToUint32, ToInt32, Uint32ToNumber and Int32ToNumber implement the integer-width
conversions of ECMA-262 §§9.5, 9.6.

The Number type and digit-accumulation budget (MaxDigits) are a compile-time
choice: the default build targets the 64-bit double-precision Number ECMAScript
actually specifies; building with the ecmanumber32 tag switches Number to
float32 with a correspondingly smaller digit budget.
*/
package number
