// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	length, err := c.pixels()
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	// Rows of a module are identical, so each is packed once and
	// written Scale times.
	for y := 0; y < length; y += c.Scale {
		pbmRow(row, c, y, length)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow packs image row y of c into row, most significant bit first,
// with 1 for black.  Padding bits at the end are 0.
func pbmRow(row []byte, c *Code, y, length int) {
	clear(row)
	for x := 0; x < length; x++ {
		if c.pixel(x, y) {
			row[x>>3] |= 0x80 >> uint(x&7)
		}
	}
}
