// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"

	"github.com/db47h/bigint/internal/biguint"
)

// IEEE-754 binary64 layout constants: F is the stored mantissa width, B
// the exponent bias.
const (
	fracWidth = 52
	expBias   = 1<<(11-1) - 1 // 1023
)

// decodedNumber is the structured equivalent of the packed 32-bit word
// the original decoder returns; see the design notes for why this
// package prefers a plain struct. digits holds up to 3 little-endian
// magnitude digits, valid in digits[:digitCount].
type decodedNumber struct {
	digits      [3]uint32
	digitCount  int
	zeroDigits  int
	hasFraction bool
}

// decodeNumber implements spec §4.3: unpack a finite float64 into up to
// three 32-bit digits, a count of leading (low-order) all-zero digits
// implied by a large exponent, and a flag recording whether any bits
// below the radix point were set. The sign of f is ignored; callers
// decide what to do with it.
func decodeNumber(f float64) decodedNumber {
	bits := math.Float64bits(f)
	biasedExp := uint32(bits>>fracWidth) & 0x7ff
	fraction := bits & (1<<fracWidth - 1)

	if biasedExp == 0 {
		// Denormal or zero: treated as exactly zero (see design notes).
		return decodedNumber{}
	}

	if biasedExp < expBias {
		// 0 < |f| < 1.
		return decodedNumber{hasFraction: true}
	}

	e := biasedExp - expBias
	m := fraction | (1 << fracWidth)

	if e <= fracWidth {
		shift := fracWidth - e
		hasFraction := m&(1<<shift-1) != 0
		intPart := m >> shift

		d := decodedNumber{hasFraction: hasFraction}
		d.digits[0] = uint32(intPart)
		if hi := uint32(intPart >> 32); hi != 0 {
			d.digits[1] = hi
			d.digitCount = 2
		} else {
			d.digitCount = 1
		}
		return d
	}

	extra := e - fracWidth
	zeroDigits := int(extra / biguint.DigitBits)
	shiftLeft := uint(extra % biguint.DigitBits)

	var d decodedNumber
	d.digits[0] = uint32(m)
	d.digits[1] = uint32(m >> 32)

	if shiftLeft == 0 {
		d.digitCount = 2
		d.zeroDigits = zeroDigits
		return trimTop(d)
	}

	shiftRight := biguint.DigitBits - shiftLeft
	d.digits[2] = d.digits[1] >> shiftRight
	d.digits[1] = (d.digits[1] << shiftLeft) | (d.digits[0] >> shiftRight)
	d.digits[0] <<= shiftLeft
	d.digitCount = 3
	d.zeroDigits = zeroDigits
	return trimTop(d)
}

// trimTop drops a top digit that turned out to be zero, matching the
// "top digit trimmed if zero" clause of spec §4.3 steps 4-5.
func trimTop(d decodedNumber) decodedNumber {
	for d.digitCount > 0 && d.digits[d.digitCount-1] == 0 {
		d.digitCount--
	}
	return d
}

func (d decodedNumber) magnitude() biguint.Nat {
	if d.digitCount == 0 {
		return nil
	}
	mag := make(biguint.Nat, d.zeroDigits+d.digitCount)
	copy(mag[d.zeroDigits:], d.digits[:d.digitCount])
	return mag
}

// NumberToBigInt implements spec §4.4: convert a finite, integral float64
// to an Int. Infinities, NaN, and non-integral values are reported as a
// *DomainError.
func NumberToBigInt(f float64) (Int, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Int{}, errNotFinite()
	}

	d := decodeNumber(f)
	if d.hasFraction {
		return Int{}, errNotInteger()
	}
	if d.digitCount == 0 {
		return Int{}, nil
	}

	return fromMag(f < 0, d.magnitude()), nil
}

// ToBigInt implements spec §4.5's value-to-BigInt coercion: bool and
// string are accepted, everything else (explicitly including numbers,
// per ECMA-262 7.1.13) is rejected with a *TypeError.
func ToBigInt(v any) (Int, error) {
	switch x := v.(type) {
	case bool:
		if !x {
			return Int{}, nil
		}
		return FromUint64(1), nil
	case string:
		return ParseStringValue(x)
	default:
		return Int{}, errUnsupportedValue()
	}
}
