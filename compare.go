// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"

	"github.com/db47h/bigint/internal/biguint"
)

// Equal implements spec §4.6's BigInt-vs-BigInt equality: exact value
// equality, not merely equal magnitudes.
func (z Int) Equal(other Int) bool {
	if z.IsZero() || other.IsZero() {
		return z.IsZero() == other.IsZero()
	}
	return z.neg == other.neg && biguint.Compare(z.mag, other.mag) == 0
}

// EqualNumber implements spec §4.6's BigInt-vs-Number equality.
func (z Int) EqualNumber(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	if z.IsZero() {
		return f == 0
	}
	if z.neg {
		if f > 0 {
			return false
		}
	} else if f < 0 {
		return false
	}

	d := decodeNumber(f)
	if d.hasFraction {
		return false
	}

	mag := d.magnitude()
	return biguint.Compare(z.mag, mag) == 0
}

// Cmp implements spec §4.7's BigInt-vs-BigInt three-way comparison:
// -1 if z<other, 0 if equal, +1 if z>other.
func (z Int) Cmp(other Int) int {
	if z.neg != other.neg {
		return signOf(z.neg)
	}
	cmp := biguint.Compare(z.mag, other.mag)
	if z.neg {
		return -cmp
	}
	return cmp
}

// CmpNumber implements spec §4.7's BigInt-vs-Number three-way
// comparison. The caller must not pass a NaN right-hand side (the value
// this package models has no total order including NaN; ECMA-262
// handles NaN comparisons at a layer above this one).
func (z Int) CmpNumber(f float64) int {
	rightInvertSign := signOf(f > 0)

	if z.IsZero() {
		if f == 0 {
			return 0
		}
		return rightInvertSign
	}

	leftSign := signOf(z.neg)

	if f == 0 || leftSign == rightInvertSign {
		return leftSign
	}

	if math.IsInf(f, 0) {
		return rightInvertSign
	}

	d := decodeNumber(f)
	if d.digitCount == 0 {
		// |f| is in (0, 1), strictly between -1 and 1 exclusive of 0;
		// any non-zero BigInt magnitude wins.
		return leftSign
	}

	rightMag := d.magnitude()
	switch c := biguint.Compare(z.mag, rightMag); {
	case c != 0:
		if c > 0 {
			return leftSign
		}
		return -leftSign
	case d.hasFraction:
		return -leftSign
	default:
		return 0
	}
}
