// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic
with ECMA-262 BigInt value semantics.

The implementation is organized as two layers. The unsigned magnitude
kernel (internal/biguint) stores magnitudes as little-endian uint32 digit
slices and implements add, sub, mul, div/mod, shift, compare and bitwise
primitives. This package wraps the kernel with a sign, turning it into a
signed value type, and adds string parsing and formatting, conversions
to and from float64, and the two's-complement emulation that bitwise
operators need on top of a sign-magnitude representation.

The zero value of Int corresponds to 0 and requires no initialization:

	var z Int // z is an Int of value 0

Values are immutable: every function that computes a result returns a
new Int rather than mutating one of its arguments. This mirrors the
"operators always allocate a fresh record" invariant of the value this
package models, except where spec semantics call for returning an
operand unchanged (for instance Add(x, Int{}) returns x), which maps
directly onto an ordinary Go value copy since Int carries no pointers
into mutable state.

Parsing and formatting follow JavaScript's BigInt literal grammar:

	x, err := bigint.ParseStringValue("0x2a")   // 42
	y, err := bigint.ParseStringValue("-0b101") // -5
	s := x.Text(16)                             // "2a"

Arithmetic, comparison and bitwise operators are free functions taking
Int values and returning either an Int or an (Int, error) pair, following
the shape of the operations they implement:

	sum := bigint.Add(x, y)
	q, err := bigint.DivMod(x, y, false)
	and := bigint.And(x, y)

See bigintctx for a Context wrapper that accumulates the first error
across a chain of such calls.
*/
package bigint
