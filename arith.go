// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/db47h/bigint/internal/biguint"

// Neg implements spec §4.8: negate a BigInt value. Negating the zero
// sentinel returns the zero sentinel (-0 == 0, per I3).
func (z Int) Neg() Int {
	if z.IsZero() {
		return Int{}
	}
	return Int{neg: !z.neg, mag: z.mag}
}

// Add implements spec §4.9 with is_add=true.
func Add(x, y Int) Int { return addSub(x, y, true) }

// Sub implements spec §4.9 with is_add=false.
func Sub(x, y Int) Int { return addSub(x, y, false) }

// addSub implements the shared add/subtract identity of spec §4.9: the
// sign_xor_target trick picks, from the operands' signs, whether the
// magnitudes should be added or subtracted.
func addSub(x, y Int, isAdd bool) Int {
	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		if isAdd {
			return y
		}
		return y.Neg()
	}

	signsAgree := (x.neg != y.neg) == !isAdd

	if signsAgree {
		return Int{neg: x.neg, mag: biguint.Add(x.mag, y.mag)}
	}

	switch c := biguint.Compare(x.mag, y.mag); {
	case c == 0:
		return Int{}
	case c > 0:
		return Int{neg: x.neg, mag: biguint.Sub(x.mag, y.mag)}
	default:
		neg := y.neg
		if !isAdd {
			neg = !neg
		}
		return Int{neg: neg, mag: biguint.Sub(y.mag, x.mag)}
	}
}

// Mul implements spec §4.10.
func Mul(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}

	if isMagnitudeOne(x.mag) {
		if x.neg {
			return y.Neg()
		}
		return y
	}
	if isMagnitudeOne(y.mag) {
		if y.neg {
			return x.Neg()
		}
		return x
	}

	return Int{neg: x.neg != y.neg, mag: biguint.Mul(x.mag, y.mag)}
}

func isMagnitudeOne(mag biguint.Nat) bool {
	return len(mag) == 1 && mag[0] == 1
}

// DivMod implements spec §4.11: truncating division. When wantMod is
// false it returns the quotient, otherwise the remainder (which takes
// the dividend's sign). Division by zero is a *DomainError.
func DivMod(x, y Int, wantMod bool) (Int, error) {
	if y.IsZero() {
		return Int{}, errDivideByZero()
	}
	if x.IsZero() {
		return Int{}, nil
	}

	switch c := biguint.Compare(x.mag, y.mag); {
	case c < 0:
		if wantMod {
			return x, nil
		}
		return Int{}, nil
	case c == 0:
		if wantMod {
			return Int{}, nil
		}
		return Int{neg: x.neg != y.neg, mag: biguint.Nat{1}}, nil
	default:
		mag := biguint.DivMod(x.mag, y.mag, wantMod)
		if wantMod {
			return fromMag(x.neg, mag), nil
		}
		return fromMag(x.neg != y.neg, mag), nil
	}
}

// Quo implements truncating division (x/y), i.e. DivMod(x, y, false).
func Quo(x, y Int) (Int, error) { return DivMod(x, y, false) }

// Rem implements truncating remainder (x%y), i.e. DivMod(x, y, true).
func Rem(x, y Int) (Int, error) { return DivMod(x, y, true) }

// maxShiftBits bounds the shift amount this implementation is willing
// to honor for a left shift: a larger shift count is reported as a
// *MemoryError. This is the Go analogue of the astronomical-shift
// allocation failure in spec §4.12.
const maxShiftBits = 1 << 27 // 2^27 bits, a 16 MiB magnitude

// Shift implements spec §4.12. isLeft selects the direction before
// accounting for a negative shift count, which flips it.
func Shift(x, y Int, isLeft bool) (Int, error) {
	if x.IsZero() {
		return Int{}, nil
	}
	if y.IsZero() {
		return x, nil
	}

	if y.neg {
		isLeft = !isLeft
	}

	if len(y.mag) > 1 {
		if isLeft {
			return Int{}, errMemory()
		}
		return Int{}, nil
	}

	shift := uint(y.mag[0])

	if isLeft {
		if uint64(shift) > maxShiftBits {
			return Int{}, errMemory()
		}
		return Int{neg: x.neg, mag: biguint.ShiftLeft(x.mag, shift)}, nil
	}

	mag := biguint.ShiftRight(x.mag, shift)
	if mag.IsZero() {
		return Int{}, nil
	}
	return Int{neg: x.neg, mag: mag}, nil
}

// Lsh implements left shift (x << y).
func Lsh(x, y Int) (Int, error) { return Shift(x, y, true) }

// Rsh implements (truncating) right shift (x >> y).
func Rsh(x, y Int) (Int, error) { return Shift(x, y, false) }
