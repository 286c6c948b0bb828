// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qrgen encodes QR codes.
package qrgen

import (
	"errors"

	"golang.org/x/text/encoding/charmap"

	"github.com/agtkh/qrgen/coding"
)

// ErrTooLong reports data too long to encode at any version.
var ErrTooLong = errors.New("qrgen: text too long to encode as QR")

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

// A Code is a QR code with rendering parameters.
type Code struct {
	*coding.Code
	Scale   int  // image pixels per module
	Border  int  // quiet zone width in modules
	Reverse bool // swap black and white
}

// Encode encodes text in byte mode at the given error correction
// level, using the smallest version that fits and the mask with the
// lowest penalty.
func Encode(text string, level Level) (*Code, error) {
	return EncodeData([]byte(text), 0, level, coding.Auto)
}

// EncodeLatin1 is Encode with the text recoded as ISO 8859-1 first.
// QR readers commonly assume Latin-1 for byte mode data without an
// ECI segment.
func EncodeLatin1(text string, level Level) (*Code, error) {
	t, err := Latin1(text)
	if err != nil {
		return nil, err
	}
	return Encode(t, level)
}

// Latin1 recodes UTF-8 text as ISO 8859-1 for byte mode encoding.
func Latin1(text string) (string, error) {
	return charmap.ISO8859_1.NewEncoder().String(text)
}

// EncodeData encodes data in byte mode.  Version zero selects the
// smallest version that fits at the given level; mask pins one of
// the eight data masks or is coding.Auto.
func EncodeData(data []byte, version coding.Version, level Level, mask coding.Mask) (*Code, error) {
	l := coding.Level(level)
	v := version
	if v == 0 {
		var err error
		if v, err = minVersion(len(data), l); err != nil {
			return nil, err
		}
	}
	cc, err := coding.Encode(data, v, l, mask)
	if err != nil {
		return nil, err
	}
	return &Code{Code: cc, Scale: 8, Border: 4}, nil
}

// minVersion returns the smallest version whose byte mode capacity
// at the given level fits n payload bytes.
func minVersion(n int, l coding.Level) (coding.Version, error) {
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		vi, err := coding.Info(v, l)
		if err != nil {
			return 0, err
		}
		if 4+vi.CountBits+8*n <= vi.DataWords*8 {
			return v, nil
		}
	}
	return 0, ErrTooLong
}
