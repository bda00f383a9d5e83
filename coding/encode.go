// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// AutoMask lets the encoder choose the mask with the lowest penalty.
const AutoMask = -1

// A Code is a square pixel grid.
type Code struct {
	Version Version
	Level   Level
	Mode    Mode
	Mask    int    // mask pattern, 0 to 7
	Scores  [8]int // penalty per mask; zero unless the mask was chosen
	Bitmap  []byte // 1 is black, 0 is white
	Size    int    // number of pixels on a side
	Stride  int    // number of bytes per row
}

// Black reports whether the module at column x and row y is dark.
// Coordinates outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Penalty returns the penalty score of the chosen mask, or 0 if the
// mask was forced.
func (c *Code) Penalty() int { return c.Scores[c.Mask] }

// newCode packs a complete matrix into a Code.
func newCode(m *Matrix) *Code {
	siz := m.Size()
	stride := (siz + 7) >> 3
	c := &Code{Size: siz, Stride: stride, Bitmap: make([]byte, siz*stride)}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x := 0; x < siz; x++ {
			if m.Dark(y, x) {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// Encoder encodes a QR code.
type Encoder struct {
	version Version // 0 to choose the smallest fitting version
	level   Level
	mask    int
	b       Bits
}

// NewEncoder returns an Encoder for the given version and level.
// Version 0 selects the smallest version the data fits in.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if version != 0 && !version.IsValid() {
		return nil, ErrVersion
	}
	if !level.IsValid() {
		return nil, ErrLevel
	}
	return &Encoder{version: version, level: level, mask: AutoMask}, nil
}

// SetMask forces the mask pattern used by e.  AutoMask restores
// automatic selection.
func (e *Encoder) SetMask(mask int) error {
	if mask < AutoMask || mask > 7 {
		return ErrMask
	}
	e.mask = mask
	return nil
}

// codewords returns the interleaved data and error correction
// codewords of seg in a code with the given version and level.
func (e *Encoder) codewords(seg Segment, v Version) ([]byte, error) {
	e.b.Reset()
	if err := seg.Encode(&e.b, v.SizeClass()); err != nil {
		return nil, err
	}
	nd := v.DataBytes(e.level)
	if e.b.Bits() > nd*8 {
		return nil, &OverflowError{v, e.level, (e.b.Bits() + 7) >> 3, nd}
	}
	e.b.PadTo(4, nd*8)
	if n := len(e.b.Bytes()); n != nd {
		return nil, &OverflowError{v, e.level, n, nd}
	}
	return Interleave(e.b.Bytes(), v.Blocks(e.level))
}

// Encode returns a QR code containing seg.
func (e *Encoder) Encode(seg Segment) (*Code, error) {
	if seg.Text == "" {
		return nil, ErrEmpty
	}
	if !seg.Mode.IsValid() {
		return nil, ModeError(seg.Mode)
	}
	if !seg.IsValid() {
		return nil, SegmentError(seg)
	}
	v := e.version
	if v == 0 {
		var err error
		if v, err = Fit(seg, e.level); err != nil {
			return nil, err
		}
	} else if err := check(seg, v, e.level); err != nil {
		return nil, err
	}
	cw, err := e.codewords(seg, v)
	if err != nil {
		return nil, err
	}

	mask := e.mask
	var scores [8]int
	if mask == AutoMask {
		mask, scores = chooseMask(v, e.level, cw)
	}
	// Rebuild the winner from scratch.
	m := NewMatrix(v.Size())
	m.build(v, e.level, mask, cw)
	if !m.Complete() {
		return nil, ErrIncomplete
	}
	c := newCode(m)
	c.Version, c.Level, c.Mode = v, e.level, seg.Mode
	c.Mask, c.Scores = mask, scores
	return c, nil
}

// Encode encodes seg using an Encoder with the given version and
// level.
func Encode(version Version, level Level, seg Segment) (*Code, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(seg)
}
