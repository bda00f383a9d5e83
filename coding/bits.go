// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer written most significant bit
// first.  The zero value is an empty buffer ready to use.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].bytes)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the bits written to b as bytes.  It panics unless the
// length of b is a whole number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v to b, most significant first.
// Higher bits of v are discarded.  nbit must be between 0 and 32.
func (b *Bits) Write(v uint32, nbit int) {
	for nbit > 0 {
		free := -b.nbit & 7
		if free == 0 {
			b.b = append(b.b, 0)
			free = 8
		}
		n := min(free, nbit)
		nbit -= n
		b.b[len(b.b)-1] |= byte(v>>uint(nbit)&(1<<n-1)) << uint(free-n)
		b.nbit += n
	}
}

// WriteBit appends a single bit to b.
func (b *Bits) WriteBit(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Write(v, 1)
}

// PadTo adds up to t terminator bits to b without exceeding n bits,
// zero fills the last byte and pads b to n bits with alternating
// bytes 0xec and 0x11.  PadTo does nothing if b already holds n bits
// or more.
func (b *Bits) PadTo(t, n int) {
	if b.nbit >= n {
		return
	}
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); b.nbit+8 <= n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}
