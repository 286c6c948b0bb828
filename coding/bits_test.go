// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsAppend(t *testing.T) {
	var b Bits
	require.NoError(t, b.Append(0b101, 3))
	require.NoError(t, b.Append(0b0110, 4))
	require.NoError(t, b.Append(1, 1))
	require.Equal(t, 8, b.Bits())
	p, err := b.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0b1010_1101}, p)
}

func TestBitsAppendValue(t *testing.T) {
	var b Bits
	require.ErrorIs(t, b.Append(8, 3), ErrValue)
	require.ErrorIs(t, b.Append(1, 0), ErrValue)
	require.ErrorIs(t, b.Append(0, -1), ErrValue)
	require.ErrorIs(t, b.Append(1, 33), ErrValue)
	require.NoError(t, b.Append(0, 0))
	require.NoError(t, b.Append(0xffffffff, 32))
	require.Equal(t, 32, b.Bits())
}

func TestBitsAlignment(t *testing.T) {
	var b Bits
	require.NoError(t, b.Append(0b101, 3))
	_, err := b.Bytes()
	require.ErrorIs(t, err, ErrAlignment)
	require.NoError(t, b.Append(0b10110, 5))
	p, err := b.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0b101_10110}, p)
}

func TestBitsAppendBytes(t *testing.T) {
	// Byte-aligned and bit-by-bit appends produce the same stream.
	var aligned, shifted Bits
	aligned.AppendBytes([]byte{0xff, 0x0f, 0xa5})
	require.Equal(t, 24, aligned.Bits())
	require.NoError(t, shifted.Append(1, 1))
	shifted.AppendBytes([]byte{0xff, 0x0f, 0xa5})
	r, s := aligned.reader(), shifted.reader()
	require.EqualValues(t, 1, s.PopBit())
	for i := 0; i < 24; i++ {
		require.Equal(t, r.PopBit(), s.PopBit(), "bit %d", i)
	}
}

func TestBitsPopBit(t *testing.T) {
	b := newBits([]byte{0xa5})
	for _, want := range []byte{1, 0, 1, 0, 0, 1, 0, 1, 0, 0} {
		require.Equal(t, want, b.PopBit())
	}
}

func TestBitsReader(t *testing.T) {
	b := newBits([]byte{0x80})
	require.EqualValues(t, 1, b.PopBit())
	require.EqualValues(t, 0, b.PopBit())
	// A fresh reader starts over without disturbing the original.
	r := b.reader()
	require.EqualValues(t, 1, r.PopBit())
	require.EqualValues(t, 0, b.PopBit())
}
