// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigintctx provides a chained-operation wrapper around bigint.Int
// arithmetic. All factory and operator methods of a Context return a
// bigint.Int and, once an operation has failed, every subsequent method
// becomes a no-op that returns the zero value until the accumulated error is
// read and cleared with (*Context).Err.
//
// This mirrors the teacher's NaN-poisoning decimal context (context/context.go
// in the original decimal package): an operation that would have raised a
// BigInt exception (division by zero, conversion from a non-integral or
// infinite float, an astronomical shift) instead "poisons" the chain, and
// the caller checks for an error once at the end instead of after every
// step.
package bigintctx

import "github.com/db47h/bigint"

// A Context accumulates the first error encountered across a chain of
// bigint operations.
type Context struct {
	err error
}

// New returns a new, unpoisoned Context.
func New() *Context { return new(Context) }

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context) poisoned() bool { return c.err != nil }

func (c *Context) fail(err error) bigint.Int {
	c.err = err
	return bigint.Int{}
}

// ParseString is bigint.ParseStringValue, poisoning c on a malformed
// string.
func (c *Context) ParseString(s string) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	z, err := bigint.ParseStringValue(s)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// NewFloat64 is bigint.NumberToBigInt, poisoning c if f is infinite, NaN,
// or not integral.
func (c *Context) NewFloat64(f float64) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	z, err := bigint.NumberToBigInt(f)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// Add sets the chain to x+y and returns it.
func (c *Context) Add(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return bigint.Add(x, y)
}

// Sub sets the chain to x-y and returns it.
func (c *Context) Sub(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return bigint.Sub(x, y)
}

// Mul sets the chain to x*y and returns it.
func (c *Context) Mul(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return bigint.Mul(x, y)
}

// Quo sets the chain to the truncating quotient x/y, poisoning c on
// division by zero.
func (c *Context) Quo(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	z, err := bigint.Quo(x, y)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// Rem sets the chain to the truncating remainder x%y, poisoning c on
// division by zero.
func (c *Context) Rem(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	z, err := bigint.Rem(x, y)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// Lsh sets the chain to x<<y, poisoning c if the shift is astronomical.
func (c *Context) Lsh(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	z, err := bigint.Lsh(x, y)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// Rsh sets the chain to x>>y.
func (c *Context) Rsh(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	z, err := bigint.Rsh(x, y)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// And sets the chain to x&y.
func (c *Context) And(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return bigint.And(x, y)
}

// Or sets the chain to x|y.
func (c *Context) Or(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return bigint.Or(x, y)
}

// Xor sets the chain to x^y.
func (c *Context) Xor(x, y bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return bigint.Xor(x, y)
}

// Neg sets the chain to -x.
func (c *Context) Neg(x bigint.Int) bigint.Int {
	if c.poisoned() {
		return bigint.Int{}
	}
	return x.Neg()
}
