// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// This file mirrors the error taxonomy of ECMA-262's BigInt operations:
// every producer that can fail reports one of four kinds, matching the
// host errors a JS engine would raise (RangeError, RangeError,
// SyntaxError, TypeError respectively).

// MemoryError is returned when an operation would require a magnitude
// larger than this implementation is willing to build — the Go analogue
// of an allocation failure in the host engine. The only operation that can
// currently trigger it is an astronomically large left shift (§4.12).
type MemoryError struct{}

func (*MemoryError) Error() string { return "Cannot allocate memory for a BigInt value" }

// DomainError reports an operation whose operands are individually valid
// values but whose combination is out of the BigInt domain: division or
// modulo by zero, or a Number with a fractional part or that is
// infinite/NaN passed to NumberToBigInt.
type DomainError struct{ Msg string }

func (e *DomainError) Error() string { return e.Msg }

// SyntaxError reports a malformed BigInt string literal.
type SyntaxError struct{ Msg string }

func (e *SyntaxError) Error() string { return e.Msg }

// TypeError reports a value of a kind ToBigint cannot coerce (ECMA-262
// 7.1.13 explicitly rejects Number, among others).
type TypeError struct{ Msg string }

func (e *TypeError) Error() string { return e.Msg }

func errMemory() error { return &MemoryError{} }

func errDivideByZero() error { return &DomainError{Msg: "BigInt division by zero"} }

func errNotInteger() error {
	return &DomainError{Msg: "Only integer numbers can be converted to BigInt"}
}

func errNotFinite() error {
	return &DomainError{Msg: "Infinity or NaN cannot be converted to BigInt"}
}

func errEmptyString() error {
	return &SyntaxError{Msg: "BigInt cannot be constructed from empty string"}
}

func errInvalidDigit() error {
	return &SyntaxError{Msg: "String cannot be converted to BigInt value"}
}

func errUnsupportedValue() error {
	return &TypeError{Msg: "Value cannot be converted to BigInt"}
}
