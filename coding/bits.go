// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "errors"

var (
	// ErrValue reports an Append value too wide for its bit count.
	ErrValue = errors.New("qr: value out of range")
	// ErrAlignment reports a bit stream not ending on a byte boundary.
	ErrAlignment = errors.New("qr: fractional byte")
)

// Bits is an ordered bit buffer with an append-only write cursor and
// an independent read cursor.  Bits are written and read most
// significant first.
type Bits struct {
	b    []byte
	nbit int // write position in bits
	pos  int // read position in bits
}

// newBits returns a Bits holding the bits of b.
func newBits(b []byte) *Bits {
	return &Bits{b: b, nbit: len(b) * 8}
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the written bits as bytes.  It fails unless the bit
// count is a multiple of eight.
func (b *Bits) Bytes() ([]byte, error) {
	if b.nbit&7 != 0 {
		return nil, ErrAlignment
	}
	return b.b, nil
}

// Append writes the nbit low bits of v, most significant first.
// It fails if v does not fit in nbit bits.
func (b *Bits) Append(v uint32, nbit int) error {
	if nbit < 0 || nbit > 32 || nbit < 32 && v>>nbit != 0 {
		return ErrValue
	}
	b.append(v, nbit)
	return nil
}

// append writes the nbit low bits of v, growing the buffer a byte at
// a time.  The value must fit.
func (b *Bits) append(v uint32, nbit int) {
	for i := nbit - 1; i >= 0; i-- {
		if b.nbit&7 == 0 {
			b.b = append(b.b, 0)
		}
		if v>>i&1 != 0 {
			b.b[b.nbit>>3] |= 0x80 >> (b.nbit & 7)
		}
		b.nbit++
	}
}

// AppendBytes appends each byte of p as eight bits.  When the stream
// is byte aligned the bytes are copied directly; the result is the
// same either way.
func (b *Bits) AppendBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, v := range p {
		b.append(uint32(v), 8)
	}
}

// PopBit consumes and returns the next unread bit as 0 or 1.
// Past the end of the stream PopBit returns 0.
func (b *Bits) PopBit() byte {
	if b.pos >= b.nbit {
		return 0
	}
	v := b.b[b.pos>>3] >> (7 &^ b.pos) & 1
	b.pos++
	return v
}

// reader returns a copy of b with the read cursor rewound, for a
// fresh pass over the stream.
func (b *Bits) reader() Bits {
	return Bits{b: b.b, nbit: b.nbit}
}
