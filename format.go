// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"

	"github.com/db47h/bigint/internal/biguint"
)

// Text implements spec §4.2: render z in the given radix (2..36), with a
// leading '-' for negative values and no other decoration. Text panics if
// radix is out of range, matching strconv/math-big's convention for a
// programmer error rather than a data error.
func (z Int) Text(radix int) string {
	if radix < 2 || radix > 36 {
		panic("bigint: invalid radix " + fmt.Sprint(radix))
	}
	s := biguint.Format(z.mag, radix)
	if z.neg {
		return "-" + s
	}
	return s
}

// String formats z in base 10, implementing fmt.Stringer.
func (z Int) String() string {
	return z.Text(10)
}

// Format implements fmt.Formatter, supporting the 'd' (base 10), 'b' (base
// 2), 'o' (base 8) and 'x'/'X' (base 16) verbs, mirroring the subset of
// math/big.Int's formatting that makes sense for an integer-only type. Any
// other verb is reported in fmt's bad-verb style, as
// %!verb(bigint.Int=<base-10 value>).
func (z Int) Format(s fmt.State, verb rune) {
	var radix int
	switch verb {
	case 'd':
		radix = 10
	case 'b':
		radix = 2
	case 'o':
		radix = 8
	case 'x', 'X':
		radix = 16
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, z.String())
		return
	}

	text := z.Text(radix)
	if verb == 'X' {
		text = toUpperHex(text)
	}
	if s.Flag('+') && !z.neg {
		text = "+" + text
	}
	fmt.Fprint(s, text)
}

func toUpperHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
