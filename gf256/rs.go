// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// An RSEncoder computes Reed-Solomon error correction codewords over
// a field.  It is safe for concurrent use.
type RSEncoder struct {
	f   *Field
	mu  sync.Mutex
	gen []*Poly // generator polynomials indexed by degree
}

// NewRSEncoder returns a new Reed-Solomon encoder over f.
func NewRSEncoder(f *Field) *RSEncoder {
	return &RSEncoder{f: f}
}

// Gen returns the generator polynomial of the given degree,
// ∏ (x − α^i) for 0 ≤ i < degree.  Generators are built
// incrementally and cached.
func (rs *RSEncoder) Gen(degree int) *Poly {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.gen == nil {
		rs.gen = []*Poly{NewPoly(rs.f, []byte{1})}
	}
	for len(rs.gen) <= degree {
		i := len(rs.gen)
		factor := NewPoly(rs.f, []byte{1, rs.f.Exp(i - 1)})
		rs.gen = append(rs.gen, rs.gen[i-1].Mul(factor))
	}
	return rs.gen[degree]
}

// ECC returns the n error correction codewords for msg: the
// remainder of msg·x^n divided by the degree-n generator polynomial,
// left-padded with zeros to exactly n bytes.  ECC returns nil for
// n ≤ 0.
func (rs *RSEncoder) ECC(msg []byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	m := NewPoly(rs.f, msg).MulMonomial(n, 1)
	_, rem, err := m.Div(rs.Gen(n))
	if err != nil {
		return nil, err
	}
	// The remainder degree may be smaller than n-1.
	ecc := make([]byte, n)
	copy(ecc[n-len(rem.c):], rem.c)
	return ecc, nil
}
