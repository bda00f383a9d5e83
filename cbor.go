// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/unixdj/qrencode/coding"
)

// cborRecord is the CBOR form of a Code.  Bitmap holds Size rows of
// (Size+7)/8 bytes, most significant bit first, 1 for black.
type cborRecord struct {
	Version int    `cbor:"version"`
	Level   int    `cbor:"level"`
	Mode    int    `cbor:"mode"`
	Mask    int    `cbor:"mask"`
	Size    int    `cbor:"size"`
	Bitmap  []byte `cbor:"bitmap"`
}

// cborEncMode encodes deterministically.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("qr: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalCBOR returns the CBOR encoding of the code's symbol.
// Rendering parameters are not included.
func (c *Code) MarshalCBOR() ([]byte, error) {
	if !c.isValid() {
		return nil, ErrArgs
	}
	return cborEncMode.Marshal(&cborRecord{
		Version: c.Version,
		Level:   int(c.Level),
		Mode:    int(c.Mode),
		Mask:    c.Mask,
		Size:    c.Size,
		Bitmap:  c.Bitmap,
	})
}

// EncodeCBOR writes the CBOR encoding of the code's symbol to w.
func (c *Code) EncodeCBOR(w io.Writer) error {
	b, err := c.MarshalCBOR()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// DecodeCBOR decodes a symbol encoded by EncodeCBOR.  The returned
// Code has default rendering parameters.
func DecodeCBOR(data []byte) (*Code, error) {
	var r cborRecord
	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("qr: unmarshal code: %w", err)
	}
	v := coding.Version(r.Version)
	switch {
	case !v.IsValid():
		return nil, coding.ErrVersion
	case !coding.Level(r.Level).IsValid():
		return nil, coding.ErrLevel
	case !coding.Mode(r.Mode).IsValid():
		return nil, coding.ModeError(r.Mode)
	case r.Mask < 0 || r.Mask > 7:
		return nil, coding.ErrMask
	}
	c := &Code{
		Bitmap:  r.Bitmap,
		Size:    r.Size,
		Stride:  (r.Size + 7) / 8,
		Version: r.Version,
		Level:   Level(r.Level),
		Mode:    coding.Mode(r.Mode),
		Mask:    r.Mask,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
	}
	if r.Size != v.Size() || !c.isValid() {
		return nil, fmt.Errorf("qr: unmarshal code: %w", ErrArgs)
	}
	return c, nil
}

// UnmarshalCBOR sets *c to the symbol decoded from data, as DecodeCBOR.
func (c *Code) UnmarshalCBOR(data []byte) error {
	d, err := DecodeCBOR(data)
	if err != nil {
		return err
	}
	*c = *d
	return nil
}
