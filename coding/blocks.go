// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrencode/gf256"

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// Generator polynomials for the check codeword counts used by the
// version table, built once at initialisation.
var generators = func() map[int]gf256.Poly {
	g := make(map[int]gf256.Poly)
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, lev := range vtab[v].level {
			if _, ok := g[lev.check]; !ok {
				g[lev.check] = Field.Generator(lev.check)
			}
		}
	}
	return g
}()

// generator returns the generator polynomial for n check codewords.
func generator(n int) gf256.Poly {
	if g, ok := generators[n]; ok {
		return g
	}
	return Field.Generator(n)
}

// Interleave splits data into blocks, appends the error correction
// codewords of each block and returns the codeword sequence in
// placement order: data codewords taken column by column across the
// blocks, then check codewords in the same manner.  The sum of data
// codewords of blocks must equal len(data).
func Interleave(data []byte, blocks []Block) ([]byte, error) {
	var nd, nc, maxd, maxc int
	for _, b := range blocks {
		nd += b.Data
		nc += b.Check
		maxd = max(maxd, b.Data)
		maxc = max(maxc, b.Check)
	}
	if nd != len(data) {
		return nil, &OverflowError{Bytes: len(data), Want: nd}
	}
	dat := make([][]byte, len(blocks))
	chk := make([][]byte, len(blocks))
	buf := make([]byte, nc)
	for i, b := range blocks {
		dat[i], data = data[:b.Data], data[b.Data:]
		chk[i], buf = buf[:b.Check], buf[b.Check:]
		rs := gf256.NewRSEncoderGen(Field, generator(b.Check))
		if err := rs.ECC(dat[i], chk[i]); err != nil {
			return nil, &FieldError{"error correction", err}
		}
	}
	out := make([]byte, 0, nd+nc)
	out = interleave(out, dat, maxd)
	return interleave(out, chk, maxc), nil
}

// interleave appends to dst the bytes of src column by column, up to
// n columns.  Short rows contribute nothing past their length.
func interleave(dst []byte, src [][]byte, n int) []byte {
	for j := 0; j < n; j++ {
		for _, b := range src {
			if j < len(b) {
				dst = append(dst, b[j])
			}
		}
	}
	return dst
}
