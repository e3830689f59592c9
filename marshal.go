// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "fmt"

// MarshalText implements the encoding.TextMarshaler interface, rendering z
// in base 10.
func (z Int) MarshalText() (text []byte, err error) {
	return []byte(z.Text(10)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts the same grammar as ParseString, so it also round-trips
// MarshalText's base-10, unprefixed output.
func (z *Int) UnmarshalText(text []byte) error {
	v, ok, err := ParseString(string(text), DisallowSyntaxError|DisallowMemoryError)
	if !ok {
		if err != nil {
			return err
		}
		return fmt.Errorf("bigint: cannot unmarshal %q into a bigint.Int", text)
	}
	*z = v
	return nil
}
