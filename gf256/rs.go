// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given
// field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// NewRSEncoderGen returns a new Reed-Solomon encoder using the
// precomputed generator polynomial gen, which must equal
// f.Generator(len(gen)-1).
func NewRSEncoderGen(f *Field, gen Poly) *RSEncoder {
	return &RSEncoder{f: f, c: len(gen) - 1, gen: gen}
}

// Check returns the number of error correction bytes.
func (rs *RSEncoder) Check() int { return rs.c }

// ECC writes to check the error correction bytes for data using the
// given Reed-Solomon parameters: the remainder of data*x^c divided by
// the generator polynomial, left-padded with zeros to c bytes.
// check must be at least c bytes long.
func (rs *RSEncoder) ECC(data, check []byte) error {
	check = check[:rs.c]
	rem, err := rs.f.ModPoly(NewPoly(data, rs.c), rs.gen)
	if err != nil {
		return err
	}
	n := copy(check, make([]byte, rs.c-len(rem)))
	copy(check[n:], rem)
	return nil
}
