// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256).  Coefficients are stored from
// the highest degree term down: p[0] multiplies x^(len(p)-1) and
// p[len(p)-1] is the constant term.  The zero polynomial is empty.
type Poly []byte

// NewPoly returns the polynomial with coefficients coef multiplied by
// x^shift.  Leading zero coefficients are stripped; the zero
// polynomial stays empty regardless of shift.  coef is not modified.
func NewPoly(coef []byte, shift int) Poly {
	p := Poly(coef).Normalize()
	if len(p) == 0 {
		return nil
	}
	q := make(Poly, len(p)+shift)
	copy(q, p)
	return q
}

// Normalize returns p with leading zero coefficients removed.  The
// result shares storage with p.
func (p Poly) Normalize() Poly {
	for len(p) != 0 && p[0] == 0 {
		p = p[1:]
	}
	return p
}

// Degree returns the degree of p, or -1 for the zero polynomial.
// p must be normalized.
func (p Poly) Degree() int { return len(p) - 1 }

// MulPoly returns the product p*q.
func (f *Field) MulPoly(p, q Poly) Poly {
	p, q = p.Normalize(), q.Normalize()
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return r.Normalize()
}

// ModPoly returns the remainder of p divided by d, computed by
// synthetic division.  The remainder is normalized and may be
// shorter than d.Degree().  ModPoly returns ErrLogZero if d is the
// zero polynomial.
func (f *Field) ModPoly(p, d Poly) (Poly, error) {
	d = d.Normalize()
	if len(d) == 0 {
		return nil, ErrLogZero
	}
	ld := int(f.log[d[0]])
	r := append(Poly(nil), p.Normalize()...)
	for len(r) >= len(d) {
		// r[0] != 0 after normalization.
		k := int(f.log[r[0]]) - ld + 255
		for i, c := range d {
			if c != 0 {
				r[i] ^= f.exp[(int(f.log[c])+k)%255]
			}
		}
		r = r.Normalize()
	}
	return r, nil
}

// Generator returns the Reed-Solomon generator polynomial with n
// check symbols, the product of (x - α^i) for i in [0, n).
func (f *Field) Generator(n int) Poly {
	g := Poly{1}
	for i := 0; i < n; i++ {
		g = f.MulPoly(g, Poly{1, f.exp[i%255]})
	}
	return g
}
