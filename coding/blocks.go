// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// buildData builds the data codeword stream for a byte mode payload:
// mode indicator, character count, payload, terminator and padding,
// filling the version's data capacity exactly.
func (vi *VersionInfo) buildData(data []byte) (*Bits, error) {
	limit := vi.DataWords * 8
	need := 4 + vi.CountBits + 8*len(data)
	if need > limit {
		return nil, CapacityError{Bits: need, Cap: limit}
	}
	b := &Bits{}
	if err := b.Append(4, 4); err != nil { // byte mode indicator
		return nil, err
	}
	if err := b.Append(uint32(len(data)), vi.CountBits); err != nil {
		return nil, err
	}
	b.AppendBytes(data)
	// Terminator: up to four zero bits, as capacity allows.
	if t := min(4, limit-b.Bits()); t > 0 {
		b.append(0, t)
	}
	// Zero bits to the next byte boundary.
	if r := -b.Bits() & 7; r != 0 {
		b.append(0, r)
	}
	// Alternating pad codewords up to the data capacity.
	for i := 0; b.Bits() < limit; i++ {
		pad := uint32(0xec)
		if i&1 != 0 {
			pad = 0x11
		}
		b.append(pad, 8)
	}
	return b, nil
}

// interleave splits the data codewords into error correction blocks,
// computes the ECC codewords of each block, and interleaves data
// then ECC bytes in QR order into a single stream.
func (vi *VersionInfo) interleave(b *Bits) (*Bits, error) {
	data, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	// Short blocks come first; the trailing Words mod Blocks blocks
	// carry one extra data codeword each.
	long := vi.Words % vi.Blocks
	shortLen := vi.Words/vi.Blocks - vi.Check
	blocks := make([][]byte, vi.Blocks)
	eccs := make([][]byte, vi.Blocks)
	for i := range blocks {
		n := shortLen
		if i >= vi.Blocks-long {
			n++
		}
		blocks[i], data = data[:n], data[n:]
		if eccs[i], err = rsenc.ECC(blocks[i], vi.Check); err != nil {
			return nil, err
		}
	}
	out := make([]byte, 0, vi.Words)
	for i := 0; i <= shortLen; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < vi.Check; i++ {
		for _, ecc := range eccs {
			out = append(out, ecc[i])
		}
	}
	if len(out) != vi.Words {
		panic("qr: internal error")
	}
	return newBits(out), nil
}
