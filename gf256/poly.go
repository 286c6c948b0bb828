// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over a Field.  Coefficients are stored from
// the highest-degree term down with leading zeros stripped; the zero
// polynomial is the canonical single coefficient [0].  A Poly is
// never mutated after construction: every operation returns a new
// polynomial.
type Poly struct {
	f *Field
	c []byte
}

// NewPoly returns the polynomial over f with the given coefficients,
// highest-degree term first.  The coefficients are copied and
// normalised.
func NewPoly(f *Field, coeff []byte) *Poly {
	i := 0
	for i < len(coeff) && coeff[i] == 0 {
		i++
	}
	if i == len(coeff) {
		return &Poly{f, []byte{0}}
	}
	c := make([]byte, len(coeff)-i)
	copy(c, coeff[i:])
	return &Poly{f, c}
}

// Monomial returns the polynomial coeff·x^degree over f.
func Monomial(f *Field, degree int, coeff byte) *Poly {
	if coeff == 0 {
		return &Poly{f, []byte{0}}
	}
	c := make([]byte, degree+1)
	c[0] = coeff
	return &Poly{f, c}
}

// Degree returns the degree of p.  The zero polynomial has degree 0.
func (p *Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.c) == 1 && p.c[0] == 0 }

// Coeff returns the coefficient of the x^i term.
func (p *Poly) Coeff(i int) byte {
	if i < 0 || i >= len(p.c) {
		return 0
	}
	return p.c[len(p.c)-1-i]
}

// Coeffs returns a copy of the coefficients, highest-degree term
// first.
func (p *Poly) Coeffs() []byte {
	c := make([]byte, len(p.c))
	copy(c, p.c)
	return c
}

// Add returns p + q.  Field addition is its own inverse, so Add is
// also subtraction.
func (p *Poly) Add(q *Poly) *Poly {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	long, short := p.c, q.c
	if len(short) > len(long) {
		long, short = short, long
	}
	c := make([]byte, len(long))
	copy(c, long)
	off := len(long) - len(short)
	for i, v := range short {
		c[off+i] ^= v
	}
	return NewPoly(p.f, c)
}

// Mul returns the product of p and q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return &Poly{p.f, []byte{0}}
	}
	c := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a == 0 {
			continue
		}
		for j, b := range q.c {
			c[i+j] ^= p.f.Mul(a, b)
		}
	}
	return NewPoly(p.f, c)
}

// MulMonomial returns p·coeff·x^degree.
func (p *Poly) MulMonomial(degree int, coeff byte) *Poly {
	if p.IsZero() || coeff == 0 {
		return &Poly{p.f, []byte{0}}
	}
	c := make([]byte, len(p.c)+degree)
	for i, a := range p.c {
		c[i] = p.f.Mul(a, coeff)
	}
	return &Poly{p.f, c}
}

// Div returns the quotient and remainder of p divided by q.
// Dividing by the zero polynomial returns ErrZeroDivisor.
func (p *Poly) Div(q *Poly) (quo, rem *Poly, err error) {
	if q.IsZero() {
		return nil, nil, ErrZeroDivisor
	}
	quo, rem = &Poly{p.f, []byte{0}}, p
	for !rem.IsZero() && rem.Degree() >= q.Degree() {
		// The lead coefficients are nonzero after normalisation,
		// so the field division cannot fail, and the remainder
		// degree strictly decreases.
		scale, _ := p.f.Div(rem.c[0], q.c[0])
		mono := Monomial(p.f, rem.Degree()-q.Degree(), scale)
		quo = quo.Add(mono)
		rem = rem.Add(q.Mul(mono))
	}
	return quo, rem, nil
}
