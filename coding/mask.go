// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/sync/errgroup"

// Mask patterns.  A data module at row r and column c is inverted
// where the predicate holds.
var maskFunc = [8]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return r*c%2+r*c%3 == 0 },
	func(r, c int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+r*c%3)%2 == 0 },
}

// Penalty weights.
const (
	penaltyRun     = 3  // run of 5, plus 1 per extra module
	penaltyBlock   = 3  // 2x2 block
	penaltyFinder  = 40 // finder-like pattern
	penaltyBalance = 10 // per 5% deviation from half dark
)

// Penalty returns the mask penalty score of a complete matrix: the
// sum of the run, block, finder-like and balance penalties.  The
// lower the score, the easier the code is to read.
func (m *Matrix) Penalty() int {
	return m.penaltyRuns() + m.penaltyBlocks() +
		m.penaltyFinders() + m.penaltyBalance()
}

// line returns the cell at index j along line i, reading rows if
// vert is false and columns otherwise.
func (m *Matrix) line(i, j int, vert bool) Cell {
	if vert {
		return m.At(j, i)
	}
	return m.At(i, j)
}

// penaltyRuns scores runs of 5 or more same colour modules in each
// row and each column.
func (m *Matrix) penaltyRuns() int {
	p := 0
	for _, vert := range [2]bool{false, true} {
		for i := 0; i < m.size; i++ {
			run, last := 0, Unset
			for j := 0; j < m.size; j++ {
				if c := m.line(i, j, vert); c == last {
					run++
				} else {
					if run >= 5 {
						p += penaltyRun + run - 5
					}
					run, last = 1, c
				}
			}
			if run >= 5 {
				p += penaltyRun + run - 5
			}
		}
	}
	return p
}

// penaltyBlocks scores every 2x2 block of one colour, overlapping
// blocks included.
func (m *Matrix) penaltyBlocks() int {
	p := 0
	for r := 0; r < m.size-1; r++ {
		for c := 0; c < m.size-1; c++ {
			x := m.At(r, c)
			if x == m.At(r, c+1) && x == m.At(r+1, c) &&
				x == m.At(r+1, c+1) {
				p += penaltyBlock
			}
		}
	}
	return p
}

// Finder-like patterns: 1011101 with four light modules on either side.
const (
	finderLeft  = 0b00001011101
	finderRight = 0b10111010000
	finderMask  = 1<<11 - 1
)

// penaltyFinders scores each occurrence of a finder-like pattern in
// each row and each column, overlapping occurrences included.
func (m *Matrix) penaltyFinders() int {
	p := 0
	for _, vert := range [2]bool{false, true} {
		for i := 0; i < m.size; i++ {
			var w uint // last 11 modules, most recent in bit 0
			for j := 0; j < m.size; j++ {
				w = w<<1 & finderMask
				if m.line(i, j, vert) == Dark {
					w |= 1
				}
				if j >= 10 && (w == finderLeft || w == finderRight) {
					p += penaltyFinder
				}
			}
		}
	}
	return p
}

// penaltyBalance scores the deviation of the proportion of dark
// modules from one half, in whole steps of 5%.
func (m *Matrix) penaltyBalance() int {
	dark := 0
	for _, c := range m.cells {
		if c == Dark {
			dark++
		}
	}
	total := len(m.cells)
	return penaltyBalance * (abs(100*dark-50*total) / (5 * total))
}

// trial builds the code of version v and level l with codewords under
// the given mask into a pooled matrix and returns its penalty.
func trial(v Version, l Level, mask int, codewords []byte) int {
	m := getMatrix(v)
	defer putMatrix(v, m)
	m.build(v, l, mask, codewords)
	return m.Penalty()
}

// chooseMask scores all eight masks concurrently and returns the one
// with the lowest penalty, the lowest numbered on ties, along with
// all scores.
func chooseMask(v Version, l Level, codewords []byte) (int, [8]int) {
	var scores [8]int
	var g errgroup.Group
	for mask := range scores {
		mask := mask
		g.Go(func() error {
			scores[mask] = trial(v, l, mask, codewords)
			return nil
		})
	}
	g.Wait()
	best := 0
	for mask, p := range scores {
		if p < scores[best] {
			best = mask
		}
	}
	return best, scores
}
