// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"bufio"
	"fmt"
	"io"
)

// Letter page size in points.  The code is centred on the page.
const pageWidth, pageHeight = 612, 792

// EncodeEPS writes an Encapsulated PostScript image displaying the code
// to w, with c.Scale points per module.  Black modules are drawn as
// horizontal runs, one stroke per run.
func (c *Code) EncodeEPS(w io.Writer) error {
	d, err := c.pixels()
	if err != nil {
		return err
	}
	siz, scale, bord := c.Size, c.Scale, c.Border
	xorig := (pageWidth - d) / 2
	yorig := (pageHeight - d) / 2
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `%%!PS-Adobe-3.0 EPSF-3.0
%%%%Creator: qrencode https://github.com/unixdj/qrencode
%%%%Title: QR Code version %d-%s
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
gsave
%d %d translate
%d dup neg scale
1 setlinewidth
/p { moveto 0 rlineto } def
`,
		c.Version, c.Level, xorig, yorig, xorig+d, yorig+d,
		xorig+bord*scale, yorig+d-bord*scale, scale)
	if c.Reverse {
		// Paint the quiet zone and white modules black, then draw
		// black modules in white.
		fmt.Fprintf(b, "%d dup %d dup rectfill 1 setgray\n",
			-bord, siz+2*bord)
	}
	fmt.Fprintln(b, "newpath")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			start := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d %d.5 p\n", x-start, start, y)
		}
	}
	b.WriteString("stroke\ngrestore\n%%EOF\n")
	return b.Flush()
}
