// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/bits"
	"sync"
)

// A Cell is the state of one module of a Matrix.
type Cell byte

// Cell states.
const (
	Unset Cell = iota // not yet drawn
	Light
	Dark
)

func (c Cell) String() string {
	switch c {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "unset"
}

// A Matrix is a square grid of modules under construction.
type Matrix struct {
	size  int
	cells []Cell // row major
}

// NewMatrix returns a Matrix with size modules on a side, all Unset.
func NewMatrix(size int) *Matrix {
	return &Matrix{size: size, cells: make([]Cell, size*size)}
}

// Size returns the number of modules on a side of m.
func (m *Matrix) Size() int { return m.size }

// At returns the cell at the given row and column.
func (m *Matrix) At(row, col int) Cell { return m.cells[row*m.size+col] }

// Dark reports whether the cell at the given row and column is dark.
func (m *Matrix) Dark(row, col int) bool { return m.At(row, col) == Dark }

// Set sets the cell at the given row and column to Dark or Light.
func (m *Matrix) Set(row, col int, dark bool) {
	c := Light
	if dark {
		c = Dark
	}
	m.cells[row*m.size+col] = c
}

// Reset sets all cells of m to Unset.
func (m *Matrix) Reset() { clear(m.cells) }

// Complete reports whether every cell of m is set.
func (m *Matrix) Complete() bool {
	for _, c := range m.cells {
		if c == Unset {
			return false
		}
	}
	return true
}

// Matrix buffers per version, reset before reuse.
var matrixPool [MaxVersion + 1]sync.Pool

func getMatrix(v Version) *Matrix {
	if m, ok := matrixPool[v].Get().(*Matrix); ok {
		m.Reset()
		return m
	}
	return NewMatrix(v.Size())
}

func putMatrix(v Version, m *Matrix) { matrixPool[v].Put(m) }

// build draws a complete code of version v and level l with codewords
// placed under the given mask into m, which must be Unset.
func (m *Matrix) build(v Version, l Level, mask int, codewords []byte) {
	m.drawFinders()
	m.drawAlignment(v)
	m.drawTiming()
	m.Set(m.size-8, 8, true) // dark module at (4v+9, 8)
	m.drawFormat(FormatBits(l, mask))
	m.drawVersion(v)
	m.placeData(codewords, mask)
}

// drawFinders draws the three finder patterns with their separators,
// clipped at the edges.
func (m *Matrix) drawFinders() {
	for _, p := range [3][2]int{{0, 0}, {0, m.size - 7}, {m.size - 7, 0}} {
		for dr := -1; dr <= 7; dr++ {
			r := p[0] + dr
			if r < 0 || r >= m.size {
				continue
			}
			for dc := -1; dc <= 7; dc++ {
				c := p[1] + dc
				if c < 0 || c >= m.size {
					continue
				}
				// Chebyshev distance from the centre: 0-1 and 3
				// dark, 2 and 4 (separator) light.
				d := max(abs(dr-3), abs(dc-3))
				m.Set(r, c, d != 2 && d != 4)
			}
		}
	}
}

// drawAlignment draws the alignment patterns of v at every pair of
// listed coordinates whose centre is not yet drawn.
func (m *Matrix) drawAlignment(v Version) {
	pos := vtab[v].align
	for _, r := range pos {
		for _, c := range pos {
			if m.At(r, c) != Unset {
				continue
			}
			for dr := -2; dr <= 2; dr++ {
				for dc := -2; dc <= 2; dc++ {
					m.Set(r+dr, c+dc, max(abs(dr), abs(dc)) != 1)
				}
			}
		}
	}
}

// drawTiming draws the timing patterns on row 6 and column 6 where
// cells are still Unset.
func (m *Matrix) drawTiming() {
	for i := 0; i < m.size; i++ {
		if m.At(6, i) == Unset {
			m.Set(6, i, i%2 == 0)
		}
		if m.At(i, 6) == Unset {
			m.Set(i, 6, i%2 == 0)
		}
	}
}

// drawFormat writes both copies of the 15 format bits.
func (m *Matrix) drawFormat(fb uint32) {
	bit := func(i int) bool { return fb>>i&1 != 0 }
	// around the top left finder
	for i := 0; i < 6; i++ {
		m.Set(i, 8, bit(i))
	}
	m.Set(7, 8, bit(6))
	m.Set(8, 8, bit(7))
	m.Set(8, 7, bit(8))
	for i := 9; i < 15; i++ {
		m.Set(8, 14-i, bit(i))
	}
	// below the top right and right of the bottom left finders
	for i := 0; i < 8; i++ {
		m.Set(8, m.size-1-i, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.Set(m.size-15+i, 8, bit(i))
	}
}

// drawVersion writes both copies of the 18 version bits for versions
// 7 and up.
func (m *Matrix) drawVersion(v Version) {
	if v < 7 {
		return
	}
	vb := VersionBits(v)
	for i := 0; i < 18; i++ {
		a, b := m.size-11+i%3, i/3
		m.Set(b, a, vb>>i&1 != 0)
		m.Set(a, b, vb>>i&1 != 0)
	}
}

// placeData fills the Unset cells in zigzag scan order with the bits
// of codewords, most significant bit first, each inverted where the
// mask predicate holds.  Cells past the end of codewords get 0 bits.
func (m *Matrix) placeData(codewords []byte, mask int) {
	f := maskFunc[mask]
	n := len(codewords) * 8
	i := 0
	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 { // vertical timing strip
			right = 5
		}
		up := (right+1)&2 == 0
		for vert := 0; vert < m.size; vert++ {
			r := vert
			if up {
				r = m.size - 1 - vert
			}
			for c := right; c > right-2; c-- {
				if m.At(r, c) != Unset {
					continue
				}
				var dark bool
				if i < n {
					dark = codewords[i>>3]>>(7&^i)&1 != 0
					i++
				}
				m.Set(r, c, dark != f(r, c))
			}
		}
	}
}

// FormatBits returns the 15 bit format information for level l and
// the given mask: the 5 data bits followed by their BCH(15,5) check
// bits, XORed with 0x5412.
func FormatBits(l Level, mask int) uint32 {
	d := l.code()<<3 | uint32(mask)
	return (d<<10 | bchRemainder(d, 0x537)) ^ 0x5412
}

// VersionBits returns the 18 bit version information for v: the 6
// version bits followed by their BCH(18,6) check bits.
func VersionBits(v Version) uint32 {
	return uint32(v)<<12 | bchRemainder(uint32(v), 0x1f25)
}

// bchRemainder returns the remainder of data multiplied by x^deg
// divided by poly over GF(2), where deg is the degree of poly.
func bchRemainder(data, poly uint32) uint32 {
	deg := bits.Len32(poly) - 1
	rem := data << deg
	for n := bits.Len32(rem); n > deg; n = bits.Len32(rem) {
		rem ^= poly << (n - 1 - deg)
	}
	return rem
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
