// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package biguint implements the unsigned magnitude kernel that the bigint
// package's signed value layer is built on: digit-accurate little-endian
// uint32 magnitudes, with add/sub/mul/div/shift/compare/bitwise primitives.
//
// Every exported function here is pure and allocates a fresh result; none of
// them ever mutate an input Nat. A nil or empty Nat represents the magnitude
// zero, mirroring the zero-sentinel convention of the signed layer above it.
package biguint

import "math/big"

// Nat is an unsigned magnitude: digits in little-endian order (least
// significant digit first), with no leading (high-index) zero digit. The
// canonical representation of zero is a nil (or zero-length) Nat.
type Nat []uint32

// DigitBits is the width, in bits, of one magnitude digit.
const DigitBits = 32

// digitsPerWord is the number of digits one big.Word holds: 2 where
// big.Word is 64 bits wide, 1 where it is 32 bits wide.
const digitsPerWord = 1 + int(^big.Word(0)>>32&1)

// norm drops leading zero digits, returning nil for an all-zero value.
func (x Nat) norm() Nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return x[:i]
}

// IsZero reports whether x is the zero magnitude.
func (x Nat) IsZero() bool { return len(x) == 0 }

// Digit returns the i'th digit of x, or 0 if i is out of range.
func (x Nat) Digit(i int) uint32 {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// toBig converts x to a non-negative *big.Int.
func (x Nat) toBig() *big.Int {
	if len(x) == 0 {
		return new(big.Int)
	}
	words := make([]big.Word, (len(x)+digitsPerWord-1)/digitsPerWord)
	for i, d := range x {
		words[i/digitsPerWord] |= big.Word(d) << (DigitBits * uint(i%digitsPerWord))
	}
	return new(big.Int).SetBits(words)
}

// fromBig converts a non-negative *big.Int back to a normalized Nat, packing
// big.Word limbs (which may be wider than 32 bits) down into uint32 digits.
func fromBig(b *big.Int) Nat {
	if b.Sign() == 0 {
		return nil
	}
	words := b.Bits()
	out := make(Nat, 0, len(words)*2)
	for _, w := range words {
		out = append(out, uint32(w))
		if digitsPerWord == 2 {
			// big.Word is wider than 32 bits on this platform (64-bit Word);
			// emit the high half as a second digit.
			out = append(out, uint32(uint64(w)>>32))
		}
	}
	return out.norm()
}

// Compare returns -1, 0 or +1 as x<y, x==y, x>y.
func Compare(x, y Nat) int {
	x, y = x.norm(), y.norm()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x+y.
func Add(x, y Nat) Nat {
	return fromBig(new(big.Int).Add(x.toBig(), y.toBig()))
}

// Sub returns x-y. The caller must ensure x >= y.
func Sub(x, y Nat) Nat {
	return fromBig(new(big.Int).Sub(x.toBig(), y.toBig()))
}

// Mul returns x*y.
func Mul(x, y Nat) Nat {
	return fromBig(new(big.Int).Mul(x.toBig(), y.toBig()))
}

// MulDigit returns old*radix + add, treating a nil old as zero. This is the
// single primitive string parsing needs: accumulate one more digit.
func MulDigit(old Nat, radix, add uint32) Nat {
	z := new(big.Int).Mul(old.toBig(), big.NewInt(int64(radix)))
	z.Add(z, big.NewInt(int64(add)))
	return fromBig(z)
}

// DivMod returns the quotient of x/y if wantMod is false, or the remainder
// otherwise. The caller must ensure y is non-zero and x >= y (smaller cases
// are handled by the signed layer without calling into the kernel).
func DivMod(x, y Nat, wantMod bool) Nat {
	q, r := new(big.Int).QuoRem(x.toBig(), y.toBig(), new(big.Int))
	if wantMod {
		return fromBig(r)
	}
	return fromBig(q)
}

// ShiftLeft returns x<<shift, shift counted in bits.
func ShiftLeft(x Nat, shift uint) Nat {
	return fromBig(new(big.Int).Lsh(x.toBig(), shift))
}

// ShiftRight returns x>>shift, shift counted in bits.
func ShiftRight(x Nat, shift uint) Nat {
	return fromBig(new(big.Int).Rsh(x.toBig(), shift))
}

// Bitwise operation selectors, combined with the option bits below to form
// the operation_and_options word from spec §4.13.
const (
	OpAnd uint32 = iota
	OpOr
	OpXor
	OpAndNot
)

// Option bits, OR-combinable with an operation selector.
const (
	DecreaseLeft uint32 = 1 << (8 + iota)
	DecreaseRight
	DecreaseBoth
	IncreaseResult
)

// decrementOne subtracts 1 from a non-zero magnitude.
func decrementOne(x Nat) Nat {
	return fromBig(new(big.Int).Sub(x.toBig(), big.NewInt(1)))
}

// incrementOne adds 1 to a magnitude.
func incrementOne(x Nat) Nat {
	return fromBig(new(big.Int).Add(x.toBig(), big.NewInt(1)))
}

// BitwiseOp performs one of And/Or/Xor/AndNot on x and y after optionally
// decrementing either or both operands by one, and optionally incrementing
// the result by one afterwards. It returns only the magnitude: this
// function performs the +1 of IncreaseResult but does not interpret the
// sign, which the signed layer chooses on its own.
func BitwiseOp(opAndOpts uint32, x, y Nat) Nat {
	op := opAndOpts & 0xff
	if opAndOpts&(DecreaseLeft|DecreaseBoth) != 0 {
		x = decrementOne(x)
	}
	if opAndOpts&(DecreaseRight|DecreaseBoth) != 0 {
		y = decrementOne(y)
	}

	xb, yb := x.toBig(), y.toBig()
	var z *big.Int
	switch op {
	case OpAnd:
		z = new(big.Int).And(xb, yb)
	case OpOr:
		z = new(big.Int).Or(xb, yb)
	case OpXor:
		z = new(big.Int).Xor(xb, yb)
	case OpAndNot:
		z = new(big.Int).AndNot(xb, yb)
	default:
		panic("biguint: invalid bitwise operation selector")
	}

	result := fromBig(z)
	if opAndOpts&IncreaseResult != 0 {
		result = incrementOne(result)
	}
	return result
}

const digits36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Format renders x in the given base (2..36), with no sign and no leading
// zeros. It returns "0" for the zero magnitude.
func Format(x Nat, base int) string {
	if base < 2 || base > 36 {
		panic("biguint: invalid base")
	}
	if x.IsZero() {
		return "0"
	}
	return x.toBig().Text(base)
}

// ParseDigits converts a big-endian sequence of digit values (each already
// decoded to 0..base-1 by the caller) into a Nat. The bigint package does
// not call it: string parsing there goes through MulDigit one character at
// a time, matching spec §4.1.
func ParseDigits(base uint32, ds []uint32) Nat {
	var n Nat
	for _, d := range ds {
		n = MulDigit(n, base, d)
	}
	return n
}
