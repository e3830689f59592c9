// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/db47h/bigint/internal/biguint"

// ParseOption controls how ParseString reports malformed input or
// allocation failure, mirroring the host engine's ability to return a
// neutral sentinel instead of raising an exception.
type ParseOption uint32

const (
	// SetNegative forces the parsed value to be negative, regardless of
	// any sign in the string. It is used when the caller has already
	// consumed a sign character (e.g. unary minus applied to a numeric
	// literal).
	SetNegative ParseOption = 1 << iota

	// DisallowSyntaxError makes ParseString report a malformed string by
	// returning ok=false instead of a non-nil *SyntaxError.
	DisallowSyntaxError

	// DisallowMemoryError makes ParseString report an allocation-style
	// failure by returning ok=false instead of a non-nil *MemoryError.
	// In practice parsing a string never hits this path (Go has no
	// recoverable allocation-failure signal), but the option is kept for
	// symmetry with the host engine's parse entry point.
	DisallowMemoryError
)

// ParseString parses s as a BigInt literal and reports whether parsing
// succeeded. When it returns ok=false the caller must look at err: a nil
// err with ok=false means a Disallow* option suppressed an error that
// would otherwise have been returned (the FALSE/NULL sentinel values of
// spec §4.1); a non-nil err always implies ok=false.
//
// Grammar (s need not have been trimmed of surrounding whitespace, none
// is accepted):
//
//	string   = [ sign ] digits
//	         | [ sign ] "0" ("x"|"X") hexdigits
//	         | [ sign ] "0" ("o"|"O") octdigits
//	         | [ sign ] "0" ("b"|"B") bindigits .
//	sign     = "+" | "-" .
//
// A sign may only precede the radix prefix; none is accepted after it.
// The SetNegative option makes the result negative in every form. The
// empty string is rejected as a syntax error.
func ParseString(s string, opts ParseOption) (z Int, ok bool, err error) {
	radix := uint32(10)
	neg := opts&SetNegative != 0

	if len(s) == 0 {
		return emptyStringResult(opts)
	}
	if len(s) >= 2 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-' || neg
		s = s[1:]
	}
	if len(s) >= 3 && s[0] == '0' && isRadixMarker(s[1]) {
		switch lower(s[1]) {
		case 'x':
			radix = 16
		case 'o':
			radix = 8
		case 'b':
			radix = 2
		}
		s = s[2:]
	}

	// skip leading zeros
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	s = s[i:]

	if len(s) == 0 {
		return Int{}, true, nil
	}

	var mag biguint.Nat
	for i := 0; i < len(s); i++ {
		digit, valid := digitValue(s[i])
		if !valid || digit >= radix {
			return invalidDigitResult(opts)
		}
		mag = biguint.MulDigit(mag, radix, digit)
	}

	return fromMag(neg, mag), true, nil
}

// ParseStringValue is ParseString with the default (no) options; it
// exists to mirror the exposed surface of spec §6 one-to-one. Unlike
// ParseString it always raises on malformed input (ok is always true
// when err is nil).
func ParseStringValue(s string) (Int, error) {
	z, ok, err := ParseString(s, 0)
	if !ok {
		return Int{}, err
	}
	return z, nil
}

func emptyStringResult(opts ParseOption) (Int, bool, error) {
	if opts&DisallowSyntaxError != 0 {
		return Int{}, false, nil
	}
	return Int{}, false, errEmptyString()
}

func invalidDigitResult(opts ParseOption) (Int, bool, error) {
	if opts&DisallowSyntaxError != 0 {
		return Int{}, false, nil
	}
	return Int{}, false, errInvalidDigit()
}

func isRadixMarker(b byte) bool {
	switch lower(b) {
	case 'x', 'o', 'b':
		return true
	default:
		return false
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// digitValue decodes a single ASCII byte as a digit value in 0..35. It
// does not itself check against a radix; the caller compares against the
// radix in effect.
func digitValue(b byte) (value uint32, ok bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0'), true
	case lower(b) >= 'a' && lower(b) <= 'z':
		return uint32(lower(b)-'a') + 10, true
	default:
		return 0, false
	}
}
