// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// and Reed-Solomon error correction codes over it.
package gf256

import "errors"

var (
	ErrDivZero     = errors.New("gf256: division by zero")
	ErrLogZero     = errors.New("gf256: log of zero")
	ErrZeroDivisor = errors.New("gf256: division by zero polynomial")
)

// A Field represents an instance of GF(256) defined by a primitive
// polynomial.  The zero Field is not usable; use NewField.
type Field struct {
	exp [255]byte // exp[i] = α^i
	log [256]byte // log[exp[i]] = i; log[0] is undefined
}

// NewField returns the field defined by the given primitive
// polynomial, a degree-8 polynomial with coefficients in GF(2)
// represented by the bits of poly.  The element tables are built by
// repeated multiplication of the generator α = 2.  NewField panics
// if poly does not have degree 8 or is not primitive.
func NewField(poly int) *Field {
	if poly>>8 != 1 {
		panic("gf256: polynomial does not have degree 8")
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: polynomial is not primitive")
		}
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= poly
		}
	}
	return &f
}

// Add returns the sum of a and b in the field.  Addition is its own
// inverse, so Add is also subtraction.
func (f *Field) Add(a, b byte) byte { return a ^ b }

// Exp returns α^i for i ≥ 0.
func (f *Field) Exp(i int) byte { return f.exp[i%255] }

// Log returns the logarithm of a base α.  The logarithm of zero is
// undefined.
func (f *Field) Log(a byte) (int, error) {
	if a == 0 {
		return 0, ErrLogZero
	}
	return int(f.log[a]), nil
}

// Mul returns the product of a and b in the field.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+int(f.log[b]))%255]
}

// Div returns the quotient of a and b in the field.
func (f *Field) Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivZero
	}
	if a == 0 {
		return 0, nil
	}
	return f.exp[(int(f.log[a])-int(f.log[b])+255)%255], nil
}
