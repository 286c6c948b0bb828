// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A version holds the table-derived quantities for one QR version:
// the total codeword count, the number of alignment patterns per
// axis, and the error correction geometry per level.
type version struct {
	words int
	align int
	level [4]level
}

// A level holds the error correction block count and the number of
// ECC codewords per block for one error correction level.
type level struct {
	nblock int
	check  int
}

// Version table, indexed by version number.  Codeword counts and
// block geometry are from the JIS X 0510 / ISO 18004 tables as
// distributed with qrencode 3.1.1.
var vtab = [MaxVersion + 1]version{
	1:  {26, 1, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},
	2:  {44, 2, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	3:  {70, 2, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	4:  {100, 2, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
	5:  {134, 2, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}},
	6:  {172, 2, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},
	7:  {196, 3, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},
	8:  {242, 3, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},
	9:  {292, 3, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},
	10: {346, 3, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}},
	11: {404, 3, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},
	12: {466, 3, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},
	13: {532, 3, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},
	14: {581, 4, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},
	15: {655, 4, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}},
	16: {733, 4, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},
	17: {815, 4, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},
	18: {901, 4, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},
	19: {991, 4, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},
	20: {1085, 4, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}},
	21: {1156, 5, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},
	22: {1258, 5, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},
	23: {1364, 5, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},
	24: {1474, 5, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}},
	25: {1588, 5, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}},
	26: {1706, 5, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}},
	27: {1828, 5, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}},
	28: {1921, 6, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}},
	29: {2051, 6, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}},
	30: {2185, 6, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}},
	31: {2323, 6, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}},
	32: {2465, 6, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}},
	33: {2611, 6, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}},
	34: {2761, 6, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}},
	35: {2876, 7, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}},
	36: {3034, 7, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}},
	37: {3196, 7, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}},
	38: {3362, 7, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}},
	39: {3532, 7, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}},
	40: {3706, 7, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}},
}
