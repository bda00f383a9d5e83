// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrencode encodes QR codes.

The whole input is encoded as a single segment in the most compact
mode able to hold it: numeric, alphanumeric, kanji (for text
representable in Shift JIS double byte characters) or byte.  The
smallest version fitting the data is used unless one is given, and
the mask pattern with the lowest penalty is chosen unless forced.

A Code can be rendered as an image.Image, PNG, PBM, UTF-8 or ASCII
text, or serialised as CBOR.
*/
package qrencode // import "github.com/unixdj/qrencode"

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrencode/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H,
// recovering about the given share of codewords.
type Level int

const (
	L Level = iota // 7%
	M              // 15%
	Q              // 25%
	H              // 30%
)

// DefaultLevel is the error correction level used when none is given.
const DefaultLevel = H

func (l Level) String() string { return coding.Level(l).String() }

// ParseLevel returns the Level named by one of the letters L, M, Q
// and H in either case.
func ParseLevel(s string) (Level, error) {
	l, err := coding.ParseLevel(s)
	return Level(l), err
}

// Options control encoding.  The zero value encodes at level L with
// automatic version and mask selection.
type Options struct {
	Level     Level // error correction level
	Version   int   // QR version from 1 to 40, or 0 for the smallest fitting
	Mask      int   // mask pattern from 0 to 7, used if ForceMask is set
	ForceMask bool  // use Mask instead of the lowest penalty mask
}

// DefaultOptions encode at DefaultLevel with automatic version and
// mask selection.
var DefaultOptions = Options{Level: DefaultLevel}

// Default rendering parameters.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 4 // quiet zone width in modules
)

// Encode returns an encoding of text at the given error correction
// level.
func Encode(text string, level Level) (*Code, error) {
	return EncodeOptions(text, Options{Level: level})
}

// EncodeVersion returns an encoding of text at the given error
// correction level and version.  Version 0 selects the smallest
// version holding text.
func EncodeVersion(text string, level Level, version int) (*Code, error) {
	return EncodeOptions(text, Options{Level: level, Version: version})
}

// EncodeOptions returns an encoding of text using the given options.
func EncodeOptions(text string, o Options) (*Code, error) {
	e, err := coding.NewEncoder(coding.Version(o.Version), coding.Level(o.Level))
	if err != nil {
		return nil, err
	}
	if o.ForceMask {
		if o.Mask < 0 {
			return nil, coding.ErrMask
		}
		if err := e.SetMask(o.Mask); err != nil {
			return nil, err
		}
	}
	cc, err := e.Encode(coding.NewSegment(text))
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Version: int(cc.Version),
		Level:   Level(cc.Level),
		Mode:    cc.Mode,
		Mask:    cc.Mask,
		Scores:  cc.Scores,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
	}, nil
}

// A Code is a square pixel grid.
// It can be rendered as an image.Image, PNG, PBM or text, and encoded
// as CBOR.
type Code struct {
	Bitmap  []byte      // 1 is black, 0 is white
	Size    int         // number of pixels on a side
	Stride  int         // number of bytes per row
	Version int         // QR version
	Level   Level       // error correction level
	Mode    coding.Mode // encoding mode of the data
	Mask    int         // mask pattern
	Scores  [8]int      // penalty per mask; zero if the mask was forced

	Scale   int  // number of image pixels per QR pixel
	Border  int  // quiet zone width in QR pixels
	Reverse bool // reverse colours
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// Matrix returns the modules of c by row, true for black.  The quiet
// zone is not included.
func (c *Code) Matrix() [][]bool {
	m := make([][]bool, c.Size)
	for y := range m {
		m[y] = make([]bool, c.Size)
		for x := range m[y] {
			m[y][x] = c.Black(x, y)
		}
	}
	return m
}

// maxPixels limits the side of rendered images.
const maxPixels = 1 << 16

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c.Size > 0 && c.Stride == (c.Size+7)/8 &&
		len(c.Bitmap) == c.Size*c.Stride &&
		c.Scale > 0 && c.Border >= 0
}

// pixels returns the number of image pixels on a side, including the
// quiet zone.
func (c *Code) pixels() (int, error) {
	if !c.isValid() {
		return 0, ErrArgs
	}
	if c.Size+2*c.Border > maxPixels/c.Scale {
		return 0, ErrLargeImage
	}
	return (c.Size + 2*c.Border) * c.Scale, nil
}

// pixel reports whether the image pixel at (x,y) is black, taking
// scale, quiet zone and colour reversal into account.
func (c *Code) pixel(x, y int) bool {
	return c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse
}

// Image returns an Image displaying the code, or nil if c is invalid.
func (c *Code) Image() image.Image {
	d, err := c.pixels()
	if err != nil {
		return nil
	}
	return &codeImage{c, d}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	d int
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.d, c.d)
}

func (c *codeImage) At(x, y int) color.Color {
	if 0 <= x && x < c.d && 0 <= y && y < c.d && c.pixel(x, y) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
