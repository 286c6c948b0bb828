// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR symbol encoding details:
// byte mode codeword construction, Reed-Solomon block interleaving,
// module grid generation and data mask selection.
package coding

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/agtkh/qrgen/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d)

// rsenc computes ECC codewords over Field, sharing the generator
// polynomial cache between encodings.
var rsenc = gf256.NewRSEncoder(Field)

// A Version represents a QR version.  A QR code with version v has
// 4v+17 modules on a side: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side of a code with
// version v.
func (v Version) Size() int { return 17 + int(v)*4 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// code returns the two-bit code identifying the level in the format
// information.  The format code is distinct from the table index:
// L=01, M=00, Q=11, H=10.
func (l Level) code() uint32 { return uint32(l ^ 1) }

// A Mask identifies one of the eight data mask patterns, or Auto.
type Mask int

// Auto selects the mask with the lowest penalty score.
const Auto Mask = -1

func (m Mask) String() string {
	if m == Auto {
		return "auto"
	}
	return strconv.Itoa(int(m))
}

// A VersionInfo holds the parameters of one version and level pair,
// derived once from the version table.
type VersionInfo struct {
	Version   Version
	Level     Level
	Size      int // modules on a side
	Words     int // total codewords
	Align     int // alignment patterns per axis
	CountBits int // width of the character count field
	Blocks    int // error correction blocks
	Check     int // ECC codewords per block
	DataWords int // data codewords: Words − Blocks·Check
}

// Info returns the VersionInfo for the given version and level.
func Info(v Version, l Level) (*VersionInfo, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	}
	if l < L || l > H {
		return nil, ErrLevel
	}
	vt := &vtab[v]
	lev := vt.level[l]
	vi := &VersionInfo{
		Version:   v,
		Level:     l,
		Size:      v.Size(),
		Words:     vt.words,
		Align:     vt.align,
		CountBits: 16,
		Blocks:    lev.nblock,
		Check:     lev.check,
		DataWords: vt.words - lev.nblock*lev.check,
	}
	if v <= 9 {
		vi.CountBits = 8
	}
	return vi, nil
}

// A CapacityError reports data that does not fit in the code.
type CapacityError struct {
	Bits int // bits required, including the segment header
	Cap  int // data bit capacity of the version and level
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Cap)
}

// Encode encodes data in byte mode as a QR code with the given
// version and level.  If mask is Auto, all eight masks are tried and
// the code with the lowest penalty is kept; on a tie the lowest mask
// number wins.
func Encode(data []byte, v Version, l Level, mask Mask) (*Code, error) {
	vi, err := Info(v, l)
	if err != nil {
		return nil, err
	}
	if mask != Auto && (mask < 0 || mask > 7) {
		return nil, ErrMask
	}
	b, err := vi.buildData(data)
	if err != nil {
		return nil, err
	}
	stream, err := vi.interleave(b)
	if err != nil {
		return nil, err
	}
	if mask != Auto {
		return vi.draw(stream, mask), nil
	}

	// The eight mask trials are independent: each draws a private
	// grid from a fresh read of the interleaved stream.
	var (
		g     errgroup.Group
		codes [8]*Code
		pens  [8]int
	)
	for m := Mask(0); m < 8; m++ {
		m := m
		g.Go(func() error {
			c := vi.draw(stream, m)
			codes[m], pens[m] = c, c.penalty()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	best := 0
	for m := 1; m < 8; m++ {
		if pens[m] < pens[best] {
			best = m
		}
	}
	return codes[best], nil
}

// draw generates the module grid for a single mask trial.  The
// drawing passes run in strict sequence: fixed patterns, format and
// version information, then masked data.
func (vi *VersionInfo) draw(stream *Bits, mask Mask) *Code {
	c := newCode(vi.Size)
	c.Mask = mask
	c.drawFinders()
	c.drawAlignments(vi.Align)
	c.drawTiming()
	c.drawFormat(vi.Level, mask)
	if vi.Version >= 7 {
		c.drawVersionInfo(vi.Version)
	}
	r := stream.reader()
	c.fillData(&r, mask)
	return c
}
