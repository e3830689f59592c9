// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint_test

import (
	"testing"

	"github.com/db47h/bigint"
	"github.com/stretchr/testify/require"
)

func TestParseStringRadixPrefixes(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0x10", 16},
		{"0X1F", 31},
		{"0o17", 15},
		{"0O17", 15},
		{"0b1010", 10},
		{"-0b1010", -10},
		{"+42", 42},
		{"-42", -42},
		{"0", 0},
		{"00042", 42},
		{"0x0", 0},
	}
	for _, c := range cases {
		z, ok, err := bigint.ParseString(c.in, 0)
		require.NoError(t, err, c.in)
		require.True(t, ok, c.in)
		require.True(t, z.Equal(bigint.FromInt64(c.want)), "ParseString(%q) = %s, want %d", c.in, z, c.want)
	}
}

func TestParseStringEmpty(t *testing.T) {
	_, ok, err := bigint.ParseString("", 0)
	require.False(t, ok)
	require.Error(t, err)
	var synErr *bigint.SyntaxError
	require.ErrorAs(t, err, &synErr)

	_, ok, err = bigint.ParseString("", bigint.DisallowSyntaxError)
	require.False(t, ok)
	require.NoError(t, err)
}

func TestParseStringInvalidDigit(t *testing.T) {
	_, ok, err := bigint.ParseString("12x4", 0)
	require.False(t, ok)
	var synErr *bigint.SyntaxError
	require.ErrorAs(t, err, &synErr)

	_, ok, err = bigint.ParseString("0x1g", 0)
	require.False(t, ok)
	require.ErrorAs(t, err, &synErr)

	_, ok, err = bigint.ParseString("12x4", bigint.DisallowSyntaxError)
	require.False(t, ok)
	require.NoError(t, err)
}

func TestParseStringSetNegative(t *testing.T) {
	z, ok, err := bigint.ParseString("42", bigint.SetNegative)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, z.Equal(bigint.FromInt64(-42)))
}

func TestParseStringLargeValue(t *testing.T) {
	z, ok, err := bigint.ParseString("123456789012345678901234567890", 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "123456789012345678901234567890", z.Text(10))
}

func TestParseStringValue(t *testing.T) {
	z, err := bigint.ParseStringValue("0xff")
	require.NoError(t, err)
	require.True(t, z.Equal(bigint.FromInt64(255)))

	_, err = bigint.ParseStringValue("")
	require.Error(t, err)
}
