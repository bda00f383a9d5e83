// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"bytes"
	"image/png"
	"io"
)

// pngEncoder favours speed over size.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	img := c.Image()
	if img == nil {
		_, err := c.pixels()
		return err
	}
	return pngEncoder.Encode(w, img)
}

// PNG returns a PNG image displaying the code, or nil if c is invalid
// or the image would be too large.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}
