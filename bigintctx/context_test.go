// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigintctx_test

import (
	"testing"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/bigintctx"
	"github.com/stretchr/testify/require"
)

func TestContextChaining(t *testing.T) {
	c := bigintctx.New()
	a := c.ParseString("10")
	b := c.ParseString("3")
	sum := c.Add(a, b)
	prod := c.Mul(sum, b)
	require.NoError(t, c.Err())
	require.True(t, prod.Equal(bigint.FromInt64(39)))
}

func TestContextPoisonsOnDivideByZero(t *testing.T) {
	c := bigintctx.New()
	a := c.ParseString("10")
	z := bigint.Zero

	q := c.Quo(a, z)
	require.True(t, q.IsZero())

	// Further operations become no-ops until Err is read.
	next := c.Add(a, a)
	require.True(t, next.IsZero())

	err := c.Err()
	require.Error(t, err)
	var domErr *bigint.DomainError
	require.ErrorAs(t, err, &domErr)

	// Err clears the error: the context is usable again.
	require.NoError(t, c.Err())
	sum := c.Add(a, a)
	require.True(t, sum.Equal(bigint.FromInt64(20)))
}

func TestContextPoisonsOnBadParse(t *testing.T) {
	c := bigintctx.New()
	z := c.ParseString("not a number")
	require.True(t, z.IsZero())

	err := c.Err()
	require.Error(t, err)
	var synErr *bigint.SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestContextPoisonsOnNonIntegralFloat(t *testing.T) {
	c := bigintctx.New()
	z := c.NewFloat64(3.5)
	require.True(t, z.IsZero())
	require.Error(t, c.Err())
}
