// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/db47h/bigint/internal/biguint"

// And implements spec §4.13's AND identities:
//
//	(+x) & (+y) ==   x & y
//	(+x) & (-y) ==   x &~ (y-1)
//	(-x) & (+y) ==   y &~ (x-1)
//	(-x) & (-y) == -(((x-1) | (y-1)) + 1)
func And(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	switch {
	case !x.neg && !y.neg:
		return applyBitwise(biguint.OpAnd, false, x.mag, y.mag)
	case !x.neg && y.neg:
		return applyBitwise(biguint.OpAndNot|biguint.DecreaseRight, false, x.mag, y.mag)
	case x.neg && !y.neg:
		return applyBitwise(biguint.OpAndNot|biguint.DecreaseRight, false, y.mag, x.mag)
	default:
		return applyBitwise(biguint.OpOr|biguint.DecreaseBoth|biguint.IncreaseResult, true, x.mag, y.mag)
	}
}

// Or implements spec §4.13's OR identities:
//
//	(+x) | (+y) ==   x | y
//	(+x) | (-y) == -(((y-1) &~ x) + 1)
//	(-x) | (+y) == -(((x-1) &~ y) + 1)
//	(-x) | (-y) == -(((x-1) & (y-1)) + 1)
func Or(x, y Int) Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	switch {
	case !x.neg && !y.neg:
		return applyBitwise(biguint.OpOr, false, x.mag, y.mag)
	case !x.neg && y.neg:
		return applyBitwise(biguint.OpAndNot|biguint.DecreaseLeft|biguint.IncreaseResult, true, y.mag, x.mag)
	case x.neg && !y.neg:
		return applyBitwise(biguint.OpAndNot|biguint.DecreaseLeft|biguint.IncreaseResult, true, x.mag, y.mag)
	default:
		return applyBitwise(biguint.OpAnd|biguint.DecreaseBoth|biguint.IncreaseResult, true, x.mag, y.mag)
	}
}

// Xor implements spec §4.13's XOR identities:
//
//	(+x) ^ (+y) ==   x ^ y
//	(+x) ^ (-y) == -((x ^ (y-1)) + 1)
//	(-x) ^ (+y) == -(((x-1) ^ y) + 1)
//	(-x) ^ (-y) ==   (x-1) ^ (y-1)
func Xor(x, y Int) Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	switch {
	case !x.neg && !y.neg:
		return applyBitwise(biguint.OpXor, false, x.mag, y.mag)
	case !x.neg && y.neg:
		return applyBitwise(biguint.OpXor|biguint.DecreaseRight|biguint.IncreaseResult, true, x.mag, y.mag)
	case x.neg && !y.neg:
		return applyBitwise(biguint.OpXor|biguint.DecreaseLeft|biguint.IncreaseResult, true, x.mag, y.mag)
	default:
		return applyBitwise(biguint.OpXor|biguint.DecreaseBoth, false, x.mag, y.mag)
	}
}

// applyBitwise runs the kernel operation opAndOpts and interprets the
// result's sign. A zero kernel result always collapses to the zero
// sentinel regardless of negate.
func applyBitwise(opAndOpts uint32, negate bool, x, y biguint.Nat) Int {
	mag := biguint.BitwiseOp(opAndOpts, x, y)
	return fromMag(negate, mag)
}
