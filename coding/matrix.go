// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is one cell of the grid.
type Module int8

const (
	unset Module = iota - 1 // not yet drawn
	Light                   // white module
	Dark                    // black module
)

// A Code is a square grid of modules.  During generation cells start
// unset and are resolved by the drawing passes; a finished code has
// no unset cells.  A Code belongs to the mask trial that drew it and
// is never mutated afterwards.
type Code struct {
	Size int  // number of modules on a side
	Mask Mask // mask the code was drawn with
	mod  []Module
}

func newCode(siz int) *Code {
	c := &Code{Size: siz, mod: make([]Module, siz*siz)}
	for i := range c.mod {
		c.mod[i] = unset
	}
	return c
}

// At returns the module at column x, row y.
func (c *Code) At(x, y int) Module { return c.mod[y*c.Size+x] }

// Black reports whether the module at column x, row y is dark.
// Out-of-range coordinates are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.mod[y*c.Size+x] == Dark
}

func (c *Code) set(x, y int, m Module) { c.mod[y*c.Size+x] = m }

func (c *Code) isSet(x, y int) bool { return c.mod[y*c.Size+x] != unset }

// drawFinders draws the three finder patterns at the corners other
// than the bottom right.
func (c *Code) drawFinders() {
	c.drawFinder(0, 0)
	c.drawFinder(c.Size-7, 0)
	c.drawFinder(0, c.Size-7)
}

// drawFinder draws a 7x7 finder pattern with its upper left module
// at (x, y), surrounded by a one-module light separator clipped to
// the grid.
func (c *Code) drawFinder(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= c.Size || yy < 0 || yy >= c.Size {
				continue
			}
			m := Light
			if 0 <= dx && dx <= 6 && (dy == 0 || dy == 6) ||
				0 <= dy && dy <= 6 && (dx == 0 || dx == 6) ||
				2 <= dx && dx <= 4 && 2 <= dy && dy <= 4 {
				m = Dark
			}
			c.set(xx, yy, m)
		}
	}
}

// drawAlignments draws the 5x5 alignment patterns.  Candidate
// centres are spaced evenly from the timing coordinate 6; any
// candidate whose footprint touches an already drawn cell is
// skipped, which excludes the three finder corners.
func (c *Code) drawAlignments(align int) {
	if align < 2 {
		return
	}
	step := (c.Size - 13) / (align - 1)
	for i := 0; i < align; i++ {
		for j := 0; j < align; j++ {
			c.drawAlignment(6+i*step, 6+j*step)
		}
	}
}

// drawAlignment draws one alignment pattern centred at (x, y).
func (c *Code) drawAlignment(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if c.isSet(x+dx, y+dy) {
				return
			}
		}
	}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m := Light
			if dx == -2 || dx == 2 || dy == -2 || dy == 2 ||
				dx == 0 && dy == 0 {
				m = Dark
			}
			c.set(x+dx, y+dy, m)
		}
	}
}

// drawTiming draws the alternating timing strips on row and column 6
// between the finder separators, leaving alignment patterns alone.
func (c *Code) drawTiming() {
	for i := 8; i < c.Size-8; i++ {
		m := Light
		if i&1 == 0 {
			m = Dark
		}
		if !c.isSet(i, 6) {
			c.set(i, 6, m)
		}
		if !c.isSet(6, i) {
			c.set(6, i, m)
		}
	}
}

// drawFormat draws the two copies of the 15 format information bits
// around the finder patterns, and the fixed dark module.
func (c *Code) drawFormat(l Level, mask Mask) {
	fb := formatBits(l, mask)
	siz := c.Size
	for i := 0; i < 15; i++ {
		m := Light
		if fb>>i&1 != 0 {
			m = Dark
		}
		// First copy, around the top left finder.
		switch {
		case i < 6:
			c.set(8, i, m)
		case i < 8:
			c.set(8, i+1, m) // skip the timing row
		case i == 8:
			c.set(7, 8, m)
		default:
			c.set(14-i, 8, m)
		}
		// Second copy, split between the top right and bottom left
		// finders.
		if i < 8 {
			c.set(siz-1-i, 8, m)
		} else {
			c.set(8, siz-15+i, m)
		}
	}
	c.set(8, siz-8, Dark) // fixed dark module
}

// drawVersionInfo draws the two 6x3 version information blocks next
// to the bottom left and top right finders.  The top right block is
// the transpose of the bottom left one.
func (c *Code) drawVersionInfo(v Version) {
	vb := versionBits(v)
	siz := c.Size
	for i := 0; i < 18; i++ {
		m := Light
		if vb>>i&1 != 0 {
			m = Dark
		}
		x, y := i/3, siz-11+i%3
		c.set(x, y, m)
		c.set(y, x, m)
	}
}

// fillData walks the zigzag path over the unreserved cells, placing
// one stream bit per cell xored with the mask pattern.  A stream
// that runs out supplies zero bits for the remainder modules.
func (c *Code) fillData(s *Bits, mask Mask) {
	f := maskFunc[mask]
	up := true
	for x := c.Size - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < c.Size; i++ {
			y := i
			if up {
				y = c.Size - 1 - i
			}
			for xx := x; xx > x-2; xx-- {
				if c.isSet(xx, y) {
					continue
				}
				bit := s.PopBit()
				if f(xx, y) {
					bit ^= 1
				}
				c.set(xx, y, Module(bit))
			}
		}
		up = !up
	}
}
