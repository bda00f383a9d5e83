// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = iota // decimal digits
	Alphanumeric             // digits, upper case letters and " $%*+-./:"
	Byte                     // any data
	Kanji                    // UTF-8 text encodable as Shift JIS Kanji
)

// modeEncoder implements a QR segment encoding.
type modeEncoder struct {
	name      string // name for error reporting
	indicator uint32 // 4 bit mode indicator

	// valid reports whether the string is encodable in the mode.
	valid func(string) bool

	// countLength lists lengths of the character count field in
	// the three size classes.
	countLength [3]byte

	// encodedLength returns the payload length in bits of a valid
	// string of n characters.
	encodedLength func(n int) int

	// encode writes the payload of a valid string to b.
	encode func(b *Bits, s string)
}

var modes = [...]modeEncoder{
	Numeric: {
		name:        "numeric",
		indicator:   1,
		valid:       isNumeric,
		countLength: [3]byte{10, 12, 14},
		encodedLength: func(n int) int {
			return n/3*10 + [3]int{0, 4, 7}[n%3]
		},
		encode: encodeNumeric,
	},
	Alphanumeric: {
		name:        "alphanumeric",
		indicator:   2,
		valid:       isAlphanumeric,
		countLength: [3]byte{9, 11, 13},
		encodedLength: func(n int) int {
			return n/2*11 + n%2*6
		},
		encode: encodeAlphanumeric,
	},
	Byte: {
		name:          "byte",
		indicator:     4,
		valid:         func(string) bool { return true },
		countLength:   [3]byte{8, 16, 16},
		encodedLength: func(n int) int { return n * 8 },
		encode:        encodeByte,
	},
	Kanji: {
		name:          "kanji",
		indicator:     8,
		valid:         func(s string) bool { _, ok := shiftJIS(s); return ok },
		countLength:   [3]byte{8, 10, 12},
		encodedLength: func(n int) int { return n * 13 },
		encode:        encodeKanji,
	},
}

func (m Mode) String() string {
	if m.IsValid() {
		return modes[m].name
	}
	return strconv.Itoa(int(m))
}

// IsValid reports whether m is one of the defined modes.
func (m Mode) IsValid() bool { return Numeric <= m && m <= Kanji }

// Indicator returns the 4 bit mode indicator of m.
func (m Mode) Indicator() int { return int(modes[m].indicator) }

// CountLength returns the length in bits of the character count field
// of mode m in the given size class.
func (m Mode) CountLength(class int) int { return int(modes[m].countLength[class]) }

// Classify returns the most compact mode able to encode the whole of
// s, trying Numeric, Alphanumeric, Kanji and Byte in this order.
func Classify(s string) Mode {
	for _, m := range [...]Mode{Numeric, Alphanumeric, Kanji} {
		if modes[m].valid(s) {
			return m
		}
	}
	return Byte
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if uint(s[i]-'0') >= 10 {
			return false
		}
	}
	return true
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if alphamask>>(uint32(s[i])-' ')&1 == 0 {
			return false
		}
	}
	return true
}

// Shift JIS ranges of the QR Kanji mode.
const (
	kanjiLo1, kanjiHi1 = 0x8140, 0x9ffc
	kanjiLo2, kanjiHi2 = 0xe040, 0xebbf
)

// Row 13 of Windows-31J (NEC special characters such as ① and ㈱)
// lies inside the first Kanji range but is not JIS X 0208.
const necLo, necHi = 0x8740, 0x879f

// shiftJIS returns s converted to Shift JIS and whether every
// character of s converted to a double byte code in the QR Kanji
// ranges.
func shiftJIS(s string) (string, bool) {
	if s == "" || !utf8.ValidString(s) {
		return "", false
	}
	t, err := japanese.ShiftJIS.NewEncoder().String(s)
	if err != nil || len(t) != 2*utf8.RuneCountInString(s) {
		return "", false
	}
	for i := 0; i < len(t); i += 2 {
		c := uint32(t[i])<<8 | uint32(t[i+1])
		if !(kanjiLo1 <= c && c <= kanjiHi1 || kanjiLo2 <= c && c <= kanjiHi2) ||
			necLo <= c && c <= necHi {
			return "", false
		}
	}
	return t, true
}

func encodeNumeric(b *Bits, s string) {
	for ; len(s) >= 3; s = s[3:] {
		b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+uint32(s[2]-'0'), 10)
	}
	switch len(s) {
	case 2:
		b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
	case 1:
		b.Write(uint32(s[0]-'0'), 4)
	}
}

func encodeAlphanumeric(b *Bits, s string) {
	for ; len(s) >= 2; s = s[2:] {
		b.Write(uint32(alpha[s[0]&0x3f])*45+uint32(alpha[s[1]&0x3f]), 11)
	}
	if len(s) == 1 {
		b.Write(uint32(alpha[s[0]&0x3f]), 6)
	}
}

func encodeByte(b *Bits, s string) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
		return
	}
	for i := 0; i < len(s); i++ {
		b.Write(uint32(s[i]), 8)
	}
}

func encodeKanji(b *Bits, s string) {
	t, _ := shiftJIS(s)
	for ; len(t) >= 2; t = t[2:] {
		c := uint32(t[0])<<8 | uint32(t[1])
		if c <= kanjiHi1 {
			c -= kanjiLo1
		} else {
			c -= 0xc140
		}
		b.Write(c>>8*0xc0+c&0xff, 13)
	}
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// NewSegment returns a segment holding s in the mode chosen by Classify.
func NewSegment(s string) Segment { return Segment{s, Classify(s)} }

// Count returns the character count of seg: the number of characters
// for Kanji mode and the number of bytes otherwise.
func (seg Segment) Count() int {
	if seg.Mode == Kanji {
		return utf8.RuneCountInString(seg.Text)
	}
	return len(seg.Text)
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	return seg.Mode.IsValid() && modes[seg.Mode].valid(seg.Text)
}

// EncodedLength returns the encoded length in bits of seg in the
// given QR version size class, including the header.  EncodedLength
// returns 0 if and only if the mode is invalid.  The segment is not
// validated.
func (seg Segment) EncodedLength(class int) int {
	if !seg.Mode.IsValid() {
		return 0
	}
	m := &modes[seg.Mode]
	return 4 + int(m.countLength[class]) + m.encodedLength(seg.Count())
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	if !seg.Mode.IsValid() {
		return ModeError(seg.Mode)
	}
	m := &modes[seg.Mode]
	if !m.valid(seg.Text) {
		return SegmentError(seg)
	}
	b.Write(m.indicator, 4)
	b.Write(uint32(seg.Count()), int(m.countLength[class]))
	m.encode(b, seg.Text)
	return nil
}
