// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint_test

import (
	"testing"

	"github.com/db47h/bigint"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	require.True(t, bigint.Add(bigint.FromInt64(2), bigint.FromInt64(3)).Equal(bigint.FromInt64(5)))
	require.True(t, bigint.Add(bigint.FromInt64(-2), bigint.FromInt64(3)).Equal(bigint.FromInt64(1)))
	require.True(t, bigint.Add(bigint.FromInt64(2), bigint.FromInt64(-3)).Equal(bigint.FromInt64(-1)))
	require.True(t, bigint.Add(bigint.FromInt64(-2), bigint.FromInt64(-3)).Equal(bigint.FromInt64(-5)))
	require.True(t, bigint.Add(bigint.FromInt64(5), bigint.FromInt64(-5)).IsZero())

	require.True(t, bigint.Sub(bigint.FromInt64(5), bigint.FromInt64(3)).Equal(bigint.FromInt64(2)))
	require.True(t, bigint.Sub(bigint.FromInt64(3), bigint.FromInt64(5)).Equal(bigint.FromInt64(-2)))
	require.True(t, bigint.Sub(bigint.FromInt64(5), bigint.FromInt64(-3)).Equal(bigint.FromInt64(8)))
	require.True(t, bigint.Sub(bigint.FromInt64(5), bigint.FromInt64(5)).IsZero())
}

func TestAddSubIdentityShortCircuit(t *testing.T) {
	x := bigint.FromInt64(123456789)
	require.True(t, bigint.Add(x, bigint.Zero).Equal(x))
	require.True(t, bigint.Add(bigint.Zero, x).Equal(x))
	require.True(t, bigint.Sub(x, bigint.Zero).Equal(x))
}

func TestMul(t *testing.T) {
	require.True(t, bigint.Mul(bigint.FromInt64(6), bigint.FromInt64(7)).Equal(bigint.FromInt64(42)))
	require.True(t, bigint.Mul(bigint.FromInt64(-6), bigint.FromInt64(7)).Equal(bigint.FromInt64(-42)))
	require.True(t, bigint.Mul(bigint.FromInt64(-6), bigint.FromInt64(-7)).Equal(bigint.FromInt64(42)))
	require.True(t, bigint.Mul(bigint.Zero, bigint.FromInt64(7)).IsZero())
	require.True(t, bigint.Mul(bigint.FromInt64(1), bigint.FromInt64(7)).Equal(bigint.FromInt64(7)))
	require.True(t, bigint.Mul(bigint.FromInt64(-1), bigint.FromInt64(7)).Equal(bigint.FromInt64(-7)))
}

func TestDivModTruncates(t *testing.T) {
	// Truncating division: -7/2 == -3, remainder takes the dividend's sign.
	q, err := bigint.Quo(bigint.FromInt64(-7), bigint.FromInt64(2))
	require.NoError(t, err)
	require.True(t, q.Equal(bigint.FromInt64(-3)))

	r, err := bigint.Rem(bigint.FromInt64(-7), bigint.FromInt64(2))
	require.NoError(t, err)
	require.True(t, r.Equal(bigint.FromInt64(-1)))

	q, err = bigint.Quo(bigint.FromInt64(7), bigint.FromInt64(-2))
	require.NoError(t, err)
	require.True(t, q.Equal(bigint.FromInt64(-3)))

	r, err = bigint.Rem(bigint.FromInt64(7), bigint.FromInt64(-2))
	require.NoError(t, err)
	require.True(t, r.Equal(bigint.FromInt64(1)))
}

func TestDivModByZero(t *testing.T) {
	_, err := bigint.Quo(bigint.FromInt64(1), bigint.Zero)
	require.Error(t, err)
	var domErr *bigint.DomainError
	require.ErrorAs(t, err, &domErr)

	_, err = bigint.Rem(bigint.FromInt64(1), bigint.Zero)
	require.ErrorAs(t, err, &domErr)
}

func TestDivModSmallerThanDivisor(t *testing.T) {
	q, err := bigint.Quo(bigint.FromInt64(3), bigint.FromInt64(7))
	require.NoError(t, err)
	require.True(t, q.IsZero())

	r, err := bigint.Rem(bigint.FromInt64(3), bigint.FromInt64(7))
	require.NoError(t, err)
	require.True(t, r.Equal(bigint.FromInt64(3)))
}

func TestShift(t *testing.T) {
	z, err := bigint.Lsh(bigint.FromInt64(1), bigint.FromInt64(10))
	require.NoError(t, err)
	require.True(t, z.Equal(bigint.FromInt64(1024)))

	z, err = bigint.Rsh(bigint.FromInt64(1024), bigint.FromInt64(10))
	require.NoError(t, err)
	require.True(t, z.Equal(bigint.FromInt64(1)))

	z, err = bigint.Rsh(bigint.FromInt64(5), bigint.FromInt64(10))
	require.NoError(t, err)
	require.True(t, z.IsZero())

	// A negative right operand flips the shift direction (1 << -10 == 1 >> 10).
	z, err = bigint.Lsh(bigint.FromInt64(1), bigint.FromInt64(-10))
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestShiftNegativeDividend(t *testing.T) {
	// Right shift operates on the magnitude and reattaches the left
	// operand's sign (spec §4.12); once all magnitude bits shift out the
	// kernel's zero sentinel collapses the result to 0, regardless of sign.
	z, err := bigint.Rsh(bigint.FromInt64(-1), bigint.FromInt64(5))
	require.NoError(t, err)
	require.True(t, z.IsZero())

	z, err = bigint.Rsh(bigint.FromInt64(-1024), bigint.FromInt64(5))
	require.NoError(t, err)
	require.True(t, z.Equal(bigint.FromInt64(-32)))
}

func TestShiftAstronomicalOverflow(t *testing.T) {
	huge, ok, err := bigint.ParseString("99999999999999999999999999999999999999", 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = bigint.Lsh(bigint.FromInt64(1), huge)
	require.Error(t, err)
	var memErr *bigint.MemoryError
	require.ErrorAs(t, err, &memErr)

	z, err := bigint.Rsh(bigint.FromInt64(1), huge)
	require.NoError(t, err)
	require.True(t, z.IsZero())
}
