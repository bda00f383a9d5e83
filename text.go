// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"io"
	"strings"
)

// textPixel reports whether the module at (x,y) is black, with the
// quiet zone and colour reversal applied.  Coordinates are relative to
// the top left corner of the quiet zone.
func (c *Code) textPixel(x, y int) bool {
	return c.Black(x-c.Border, y-c.Border) != c.Reverse
}

// halfBlocks is indexed by top<<1|bottom, where 1 is a white module.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String returns the code as UTF-8 text, one character per module
// horizontally and two vertically, for display on a terminal with
// light text on a dark background: white modules are drawn with block
// elements.  Set Reverse for dark text on a light background.
// c.Scale is ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	pix := c.Size + 2*c.Border
	var b strings.Builder
	b.Grow((pix*len(halfBlocks[3]) + 1) * (pix + 1) / 2)
	for y := 0; y < pix; y += 2 {
		for x := 0; x < pix; x++ {
			var i int
			if !c.textPixel(x, y) {
				i = 2
			}
			// Below the last row is terminal background.
			if y+1 < pix && !c.textPixel(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeUTF8 writes c.String() to w.
func (c *Code) EncodeUTF8(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	_, err := io.WriteString(w, c.String())
	return err
}

// EncodeASCII writes the code to w as text, two characters "##" per
// black module and two spaces per white one.  c.Scale is ignored.
func (c *Code) EncodeASCII(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	pix := c.Size + 2*c.Border
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := 0; y < pix; y++ {
		for x := 0; x < pix; x++ {
			var p byte = ' '
			if c.textPixel(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
