// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/db47h/bigint/internal/biguint"

// Int is an arbitrary-precision signed integer with ECMA-262 BigInt
// semantics. The zero value represents 0 and is the canonical zero
// sentinel: it carries no allocation, and every operation that yields
// zero algebraically returns this value rather than a heap-backed
// magnitude of zero (see the package-level Zero invariant in the design
// notes).
//
// Int values are immutable: no exported method or function mutates an
// Int in place. Copying an Int (by assignment or by passing it by value)
// is always safe and cheap.
type Int struct {
	neg bool
	mag biguint.Nat
}

// Zero is the canonical zero-valued Int, identical to the zero value of
// Int. It exists only for readability at call sites.
var Zero Int

// IsZero reports whether z is the BigInt value 0.
func (z Int) IsZero() bool { return z.mag.IsZero() }

// Sign returns -1, 0 or +1 depending on the sign of z.
func (z Int) Sign() int {
	switch {
	case z.IsZero():
		return 0
	case z.neg:
		return -1
	default:
		return 1
	}
}

// signOf maps a negative flag to the +1/-1 convention used throughout
// this package's comparison logic: non-negative maps to +1, negative to
// -1. This is the "sign_of" helper of the ordering spec.
func signOf(negative bool) int {
	if negative {
		return -1
	}
	return 1
}

// fromMag builds an Int from a sign flag and a magnitude, normalizing the
// zero magnitude to the canonical zero sentinel (I1/I3: a zero-magnitude
// Int is never negative).
func fromMag(neg bool, mag biguint.Nat) Int {
	if mag.IsZero() {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// FromInt64 returns the Int value of v.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return FromUint64WithSign(neg, u)
}

// FromUint64 returns the Int value of v.
func FromUint64(v uint64) Int { return FromUint64WithSign(false, v) }

// FromUint64WithSign returns the Int value of v, negated if neg is true
// and v is non-zero.
func FromUint64WithSign(neg bool, v uint64) Int {
	if v == 0 {
		return Int{}
	}
	mag := biguint.Nat{uint32(v)}
	if hi := uint32(v >> 32); hi != 0 {
		mag = append(mag, hi)
	}
	return fromMag(neg, mag)
}
