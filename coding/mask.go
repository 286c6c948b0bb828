// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// maskFunc holds the eight data mask predicates.  A true result
// flips the data bit at column x, row y.
var maskFunc = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// BCH generator polynomials for format and version information, and
// the fixed format mask.
const (
	formatPoly  = 0x537  // 101 0011 0111
	versionPoly = 0x1f25 // 1 1111 0010 0101
	formatXor   = 0x5412
)

// formatBits returns the 15 format information bits for the level
// and mask: the two-bit level code and the three-bit mask number,
// followed by their ten-bit BCH remainder, xored with the fixed
// format mask.
func formatBits(l Level, mask Mask) uint32 {
	fb := (l.code()<<3 | uint32(mask)) << 10
	rem := fb
	for i := 14; i >= 10; i-- {
		if rem>>i&1 != 0 {
			rem ^= formatPoly << (i - 10)
		}
	}
	return (fb | rem&0x3ff) ^ formatXor
}

// versionBits returns the 18 version information bits: the six-bit
// version number followed by its twelve-bit BCH remainder.
func versionBits(v Version) uint32 {
	vb := uint32(v) << 12
	rem := vb
	for i := 17; i >= 12; i-- {
		if rem>>i&1 != 0 {
			rem ^= versionPoly << (i - 12)
		}
	}
	return vb | rem&0xfff
}
