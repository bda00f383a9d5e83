// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details.
package coding // import "github.com/unixdj/qrencode/coding"

import (
	"strconv"
	"strings"
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

// Version limits.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is in the range MinVersion to MaxVersion.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a code of version v.
func (v Version) Size() int { return 4*int(v) + 17 }

// QR version size classes.  The class determines the length of the
// character count field.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% of codewords can be restored
	M              // 15%
	Q              // 25%
	H              // 30%
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// code returns the 2-bit level indicator of the format information:
// L=01, M=00, Q=11, H=10.
func (l Level) code() uint32 { return uint32(l) ^ 1 }

// ParseLevel returns the Level named by a single letter in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("LMQH", s[0]&^0x20); i >= 0 {
			return Level(i), nil
		}
	}
	return 0, ErrLevel
}

// A version describes metadata associated with a version.
type version struct {
	align     []int    // alignment pattern centre coordinates
	bytes     int      // total number of codewords
	remainder int      // remainder bits after the last codeword
	level     [4]level // block layout per level
}

// A level describes the Reed-Solomon block layout of a version at an
// error correction level.  Blocks in the second group hold one more
// data codeword than those in the first.
type level struct {
	check int      // check codewords per block
	group [2]group // block groups
}

type group struct {
	count int // number of blocks
	data  int // data codewords per block
}

// A Block describes one Reed-Solomon block.
type Block struct {
	Data  int // data codewords
	Check int // error correction codewords
}

// TotalBytes returns the total number of codewords in a code of
// version v.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// RemainderBits returns the number of data modules left over after
// placing all codewords of a code of version v.
func (v Version) RemainderBits() int { return vtab[v].remainder }

// AlignmentPositions returns the row and column coordinates of
// alignment pattern centres for version v.
func (v Version) AlignmentPositions() []int {
	return append([]int(nil), vtab[v].align...)
}

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	lev := &vtab[v].level[l]
	n := 0
	for _, g := range lev.group {
		n += g.count * g.data
	}
	return n
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// Blocks returns the Reed-Solomon blocks of a code with the given
// version and level in codeword order: all blocks of the first group,
// then all blocks of the second.
func (v Version) Blocks(l Level) []Block {
	lev := &vtab[v].level[l]
	var b []Block
	for _, g := range lev.group {
		for i := 0; i < g.count; i++ {
			b = append(b, Block{g.data, lev.check})
		}
	}
	return b
}

// Character capacity per version, level and mode.
var capacity [MaxVersion + 1][H + 1][Kanji + 1]int

func init() {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			for m := Numeric; m <= Kanji; m++ {
				capacity[v][l][m] = calcCapacity(v, l, m)
			}
		}
	}
}

// calcCapacity returns the largest character count of a mode m
// segment fitting in a code with version v and level l.
func calcCapacity(v Version, l Level, m Mode) int {
	me := &modes[m]
	cl := me.countLength[v.SizeClass()]
	n := v.DataBits(l) - 4 - int(cl)
	var c int
	switch m {
	case Numeric:
		c = n / 10 * 3
		if n %= 10; n >= 7 {
			c += 2
		} else if n >= 4 {
			c++
		}
	case Alphanumeric:
		c = n / 11 * 2
		if n%11 >= 6 {
			c++
		}
	case Byte:
		c = n / 8
	case Kanji:
		c = n / 13
	}
	return min(c, 1<<cl-1)
}

// Capacity returns the maximum number of characters of mode m that
// fit in a code with version v and level l, or 0 if any argument is
// invalid.  Characters are bytes for Byte mode.
func (v Version) Capacity(l Level, m Mode) int {
	if !v.IsValid() || !l.IsValid() || !m.IsValid() {
		return 0
	}
	return capacity[v][l][m]
}

// Fit returns the smallest version holding seg at level l.
func Fit(seg Segment, l Level) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	} else if !seg.Mode.IsValid() {
		return 0, ModeError(seg.Mode)
	}
	n := seg.Count()
	for v := MinVersion; v <= MaxVersion; v++ {
		if n <= capacity[v][l][seg.Mode] {
			return v, nil
		}
	}
	return 0, newCapacityError(seg, MaxVersion, l)
}

// check returns an error unless seg fits in a code with version v and
// level l.
func check(seg Segment, v Version, l Level) error {
	if seg.Count() > capacity[v][l][seg.Mode] {
		return newCapacityError(seg, v, l)
	}
	return nil
}
