// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty scoring constants.
const (
	minRun  = 5  // rule 1: minimum scored run length
	runPen  = 3  // rule 1: penalty for a run of five
	boxPen  = 3  // rule 2: penalty per 2x2 block
	findPen = 40 // rule 3: penalty per finder-like pattern
	balPen  = 10 // rule 4: penalty per 5% colour imbalance
)

// The rule 3 patterns: the 1:1:3:1:1 finder-like run with four light
// modules on one side, as 11-bit sequences.
const (
	findBefore = 0b0000_1011101
	findAfter  = 0b1011101_0000
	findMask   = 1<<11 - 1
)

// penalty returns the total penalty score of a fully drawn code,
// the sum of the four mask evaluation rules.  Lower is better.
func (c *Code) penalty() int {
	return c.penaltyRuns() + c.penaltyBoxes() + c.penaltyFinders() +
		c.penaltyBalance()
}

// penaltyRuns scores every maximal horizontal or vertical run of at
// least minRun same-coloured modules.
func (c *Code) penaltyRuns() int {
	p := 0
	siz := c.Size
	for i := 0; i < siz; i++ {
		hrun, vrun := 1, 1
		for j := 1; j < siz; j++ {
			if c.At(j, i) == c.At(j-1, i) {
				hrun++
			} else {
				if hrun >= minRun {
					p += runPen + hrun - minRun
				}
				hrun = 1
			}
			if c.At(i, j) == c.At(i, j-1) {
				vrun++
			} else {
				if vrun >= minRun {
					p += runPen + vrun - minRun
				}
				vrun = 1
			}
		}
		if hrun >= minRun {
			p += runPen + hrun - minRun
		}
		if vrun >= minRun {
			p += runPen + vrun - minRun
		}
	}
	return p
}

// penaltyBoxes scores every 2x2 block of same-coloured modules,
// overlapping blocks included.
func (c *Code) penaltyBoxes() int {
	p := 0
	for y := 0; y < c.Size-1; y++ {
		for x := 0; x < c.Size-1; x++ {
			m := c.At(x, y)
			if c.At(x+1, y) == m && c.At(x, y+1) == m &&
				c.At(x+1, y+1) == m {
				p += boxPen
			}
		}
	}
	return p
}

// penaltyFinders scores every occurrence of the finder-like pattern
// with its light run in rows and columns, overlaps included.
func (c *Code) penaltyFinders() int {
	p := 0
	siz := c.Size
	for i := 0; i < siz; i++ {
		var hpat, vpat uint32
		for j := 0; j < siz; j++ {
			hpat = hpat<<1&findMask | uint32(c.At(j, i))
			vpat = vpat<<1&findMask | uint32(c.At(i, j))
			if j < 10 {
				continue
			}
			if hpat == findBefore || hpat == findAfter {
				p += findPen
			}
			if vpat == findBefore || vpat == findAfter {
				p += findPen
			}
		}
	}
	return p
}

// penaltyBalance scores the deviation of the dark module share from
// 50%, in whole 5% steps.
func (c *Code) penaltyBalance() int {
	dark := 0
	for _, m := range c.mod {
		if m == Dark {
			dark++
		}
	}
	pct := 100 * dark / (c.Size * c.Size)
	d := pct - 50
	if d < 0 {
		d = -d
	}
	return d / 5 * balPen
}
