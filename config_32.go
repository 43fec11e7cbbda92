//go:build ecmanumber32

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Number is the host ECMAScript Number representation: this build selects
// the 32-bit IEEE-754 single precision form. See config.go for the default
// 64-bit build.
type Number = float32

// MaxDigits is ECMA_NUMBER_MAX_DIGITS for the 32-bit configuration.
const MaxDigits = 9

const nativeDigitBits = 32
