// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testField = NewField(0x11d)

func TestNewPoly(t *testing.T) {
	for _, v := range []struct {
		in     []byte
		out    []byte
		degree int
		zero   bool
	}{
		{nil, []byte{0}, 0, true},
		{[]byte{0, 0, 0}, []byte{0}, 0, true},
		{[]byte{0, 0, 3, 1}, []byte{3, 1}, 1, false},
		{[]byte{1, 2, 3}, []byte{1, 2, 3}, 2, false},
		{[]byte{7}, []byte{7}, 0, false},
	} {
		p := NewPoly(testField, v.in)
		require.Equal(t, v.out, p.Coeffs(), "NewPoly(%v)", v.in)
		require.Equal(t, v.degree, p.Degree())
		require.Equal(t, v.zero, p.IsZero())
	}
}

func TestCoeff(t *testing.T) {
	p := NewPoly(testField, []byte{5, 0, 9}) // 5x² + 9
	require.EqualValues(t, 9, p.Coeff(0))
	require.EqualValues(t, 0, p.Coeff(1))
	require.EqualValues(t, 5, p.Coeff(2))
	require.EqualValues(t, 0, p.Coeff(3))
	require.EqualValues(t, 0, p.Coeff(-1))
}

func TestMonomial(t *testing.T) {
	p := Monomial(testField, 3, 2) // 2x³
	require.Equal(t, []byte{2, 0, 0, 0}, p.Coeffs())
	require.True(t, Monomial(testField, 5, 0).IsZero())
}

func TestPolyAdd(t *testing.T) {
	p := NewPoly(testField, []byte{1, 2, 3})
	q := NewPoly(testField, []byte{5, 7})
	require.Equal(t, []byte{1, 7, 4}, p.Add(q).Coeffs())
	require.Equal(t, []byte{1, 7, 4}, q.Add(p).Coeffs())
	// Addition is self-inverse; the sum cancels to zero.
	require.True(t, p.Add(p).IsZero())
	// Zero is the identity.
	z := NewPoly(testField, nil)
	require.Same(t, p, p.Add(z))
	require.Same(t, p, z.Add(p))
	// Leading terms cancelling must renormalise.
	r := NewPoly(testField, []byte{1, 0, 0})
	s := NewPoly(testField, []byte{1, 2, 3})
	require.Equal(t, []byte{2, 3}, r.Add(s).Coeffs())
}

func TestPolyMul(t *testing.T) {
	// (x+1)(x+2) = x² + 3x + 2 over GF(256).
	p := NewPoly(testField, []byte{1, 1})
	q := NewPoly(testField, []byte{1, 2})
	require.Equal(t, []byte{1, 3, 2}, p.Mul(q).Coeffs())
	require.Equal(t, []byte{1, 3, 2}, q.Mul(p).Coeffs())
	z := NewPoly(testField, nil)
	require.True(t, p.Mul(z).IsZero())
	require.True(t, z.Mul(p).IsZero())
}

func TestMulMonomial(t *testing.T) {
	p := NewPoly(testField, []byte{1, 2, 3})
	require.Equal(t, []byte{2, 4, 6, 0, 0}, p.MulMonomial(2, 2).Coeffs())
	require.Equal(t, []byte{1, 2, 3}, p.MulMonomial(0, 1).Coeffs())
	require.True(t, p.MulMonomial(3, 0).IsZero())
}

func TestPolyDiv(t *testing.T) {
	for _, v := range []struct {
		p, q []byte
	}{
		{[]byte{1, 2, 3, 4, 5}, []byte{1, 1}},
		{[]byte{1, 2, 3, 4, 5}, []byte{7, 0, 3}},
		{[]byte{90}, []byte{1, 1, 1}},
		{[]byte{1, 0, 0, 0, 0, 0}, []byte{1, 3, 2}},
	} {
		p := NewPoly(testField, v.p)
		q := NewPoly(testField, v.q)
		quo, rem, err := p.Div(q)
		require.NoError(t, err)
		if !rem.IsZero() {
			require.Less(t, rem.Degree(), q.Degree())
		}
		// quo·q + rem reconstructs p.
		require.Equal(t, p.Coeffs(), quo.Mul(q).Add(rem).Coeffs(),
			"p=%v q=%v", v.p, v.q)
	}
}

func TestPolyDivZero(t *testing.T) {
	p := NewPoly(testField, []byte{1, 2})
	_, _, err := p.Div(NewPoly(testField, nil))
	require.ErrorIs(t, err, ErrZeroDivisor)
}
