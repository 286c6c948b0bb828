// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
)

// Image returns an image.Image displaying the code at c.Scale pixels
// per module inside a c.Border module quiet zone.
func (c *Code) Image() image.Image { return &codeImage{c} }

// EncodePNG writes the code to w as a PNG image.
func (c *Code) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// codeImage implements image.Image.
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorModel() color.Model { return color.GrayModel }

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

// String renders the code as UTF-8 half-block art with the quiet
// zone, two modules per character cell, suitable for terminals with
// light-on-dark colours.
func (c *Code) String() string {
	var b strings.Builder
	siz, bord := c.Size, c.Border
	for y := -bord; y < siz+bord; y += 2 {
		for x := -bord; x < siz+bord; x++ {
			n := 0
			if c.Black(x, y) != c.Reverse {
				n |= 2
			}
			if c.Black(x, y+1) != c.Reverse {
				n |= 1
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
