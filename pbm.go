// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a raw (P4) Portable Bit Map image displaying the
// code to w, for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	b := bufio.NewWriter(w)
	siz, scale, bord := c.Size, c.Scale, c.Border
	length := scale * (siz + 2*bord)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	// Each module row is built once and written scale times.
	row := make([]byte, (length+7)/8)
	for my := -bord; my < siz+bord; my++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < length; x++ {
			if c.Black(x/scale-bord, my) != c.Reverse {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
