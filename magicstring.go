// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

//go:generate stringer -type=magicString -linecomment

// magicString enumerates the small set of fixed literal strings the parser
// recognizes and the formatter emits for non-finite values, so they are
// spelled once instead of scattered as string literals through both.
type magicString int

const (
	magicStringNaN      magicString = iota // NaN
	magicStringInfinity                    // Infinity
)
