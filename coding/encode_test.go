// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// HELLO WORLD at version 1-Q, mask 6.
var helloWorld1Q = []string{
	"#######....#..#######",
	"#.....#.##..#.#.....#",
	"#.###.#..#.##.#.###.#",
	"#.###.#.#####.#.###.#",
	"#.###.#.##.#..#.###.#",
	"#.....#..#..#.#.....#",
	"#######.#.#.#.#######",
	"........##.##........",
	".#.####.##..###.##.#.",
	"#.####.#....####.###.",
	"..#.#.##...#..##.....",
	"#.##.#...#.##...##...",
	"##.########.###.#####",
	"........#...#..#.#...",
	"#######..##..##..####",
	"#.....#.#.#..#..#.###",
	"#.###.#.##.#..#...###",
	"#.###.#.#.###...#.#..",
	"#.###.#..#....#....##",
	"#.....#.###..###..##.",
	"#######..#.#.......#.",
}
var helloWorld1QScores = [8]int{347, 470, 506, 441, 539, 516, 314, 558}

// HELLO WORLD at version 2-H, mask 5.
var helloWorld2H = []string{
	"#######.###.##.##.#######",
	"#.....#...#.##.##.#.....#",
	"#.###.#.#.#.....#.#.###.#",
	"#.###.#..##..####.#.###.#",
	"#.###.#.##..#.##..#.###.#",
	"#.....#..#.....#..#.....#",
	"#######.#.#.#.#.#.#######",
	"........#.#.##..#........",
	".....##...####.#..#.#.#.#",
	"##.##..####...#.#.##.#..#",
	"....#.#....#...#..#.#....",
	"#.###..#.#.#...#.####..#.",
	"#.#.###..###.....####.#.#",
	"###.##..#....#...##..#.#.",
	"#...#.##....#.####....#..",
	"#..##....#.##.#.#..##.#.#",
	"#.#.#.#..#...#.########.#",
	"........##..#.#.#...####.",
	"#######...##.####.#.#.##.",
	"#.....#.#..#.####...#####",
	"#.###.#......##.######.##",
	"#.###.#...###....#.#.##.#",
	"#.###.#..#.#..#.#.#..#..#",
	"#.....#.....####..#..##..",
	"#######...###..##.#.#.###",
}
var helloWorld2HScores = [8]int{498, 650, 623, 571, 769, 481, 682, 549}

func requireSymbol(t *testing.T, want []string, c *Code) {
	t.Helper()
	require.Equal(t, len(want), c.Size)
	for y, row := range want {
		var b strings.Builder
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		require.Equal(t, row, b.String(), "row %d", y)
	}
}

func TestEncodeSymbol(t *testing.T) {
	for _, tc := range []struct {
		name   string
		v      Version
		l      Level
		mask   int
		want   []string
		scores [8]int
	}{
		{"1-Q", 1, Q, 6, helloWorld1Q, helloWorld1QScores},
		{"2-H", 2, H, 5, helloWorld2H, helloWorld2HScores},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Encode(tc.v, tc.l, Segment{"HELLO WORLD", Alphanumeric})
			require.NoError(t, err)
			require.Equal(t, tc.v, c.Version)
			require.Equal(t, tc.l, c.Level)
			require.Equal(t, Alphanumeric, c.Mode)
			require.Equal(t, tc.mask, c.Mask)
			require.Equal(t, tc.scores, c.Scores)
			require.Equal(t, tc.scores[tc.mask], c.Penalty())
			requireSymbol(t, tc.want, c)
		})
	}
}

func TestEncodeAutoVersion(t *testing.T) {
	c, err := Encode(0, H, NewSegment("HELLO WORLD"))
	require.NoError(t, err)
	require.Equal(t, Version(2), c.Version)
	require.Equal(t, 25, c.Size)
	requireSymbol(t, helloWorld2H, c)
}

func TestEncodeForcedMask(t *testing.T) {
	e, err := NewEncoder(1, Q)
	require.NoError(t, err)
	require.ErrorIs(t, e.SetMask(8), ErrMask)
	require.ErrorIs(t, e.SetMask(-2), ErrMask)
	for mask := 0; mask < 8; mask++ {
		require.NoError(t, e.SetMask(mask))
		c, err := e.Encode(Segment{"HELLO WORLD", Alphanumeric})
		require.NoError(t, err)
		require.Equal(t, mask, c.Mask)
		require.Equal(t, [8]int{}, c.Scores)
		m := NewMatrix(21)
		for y := 0; y < 21; y++ {
			for x := 0; x < 21; x++ {
				m.Set(y, x, c.Black(x, y))
			}
		}
		a, b := readFormat(m)
		require.Equal(t, FormatBits(Q, mask), a)
		require.Equal(t, FormatBits(Q, mask), b)
		require.Equal(t, helloWorld1QScores[mask], m.Penalty())
	}
	require.NoError(t, e.SetMask(AutoMask))
	c, err := e.Encode(Segment{"HELLO WORLD", Alphanumeric})
	require.NoError(t, err)
	requireSymbol(t, helloWorld1Q, c)
}

func TestEncodeAllModes(t *testing.T) {
	for _, s := range []string{
		"0123456789012345",
		"HTTPS://EXAMPLE.COM/QR",
		"https://example.com/qr?q=1",
		"点茗漢字",
		strings.Repeat("Grüße ", 40),
	} {
		for l := L; l <= H; l++ {
			seg := NewSegment(s)
			c, err := Encode(0, l, seg)
			require.NoError(t, err, "%q at %s", s, l)
			v, err := Fit(seg, l)
			require.NoError(t, err)
			require.Equal(t, v, c.Version)
			require.Equal(t, v.Size(), c.Size)
			require.Equal(t, (c.Size+7)/8, c.Stride)
			require.Len(t, c.Bitmap, c.Size*c.Stride)
			require.Equal(t, seg.Mode, c.Mode)
		}
	}
}

func TestEncodeLargeVersions(t *testing.T) {
	for _, v := range []Version{7, 14, 27, 40} {
		c, err := Encode(v, M, Segment{"VERSION TEST", Alphanumeric})
		require.NoError(t, err)
		m := NewMatrix(c.Size)
		for y := 0; y < c.Size; y++ {
			for x := 0; x < c.Size; x++ {
				m.Set(y, x, c.Black(x, y))
			}
		}
		var a uint32
		for i := 0; i < 18; i++ {
			if m.Dark(i/3, m.size-11+i%3) {
				a |= 1 << i
			}
		}
		require.Equal(t, VersionBits(v), a)
		require.True(t, m.Dark(4*int(v)+9, 8))
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(1, L, Segment{"", Byte})
	require.ErrorIs(t, err, ErrEmpty)

	_, err = NewEncoder(41, L)
	require.ErrorIs(t, err, ErrVersion)
	_, err = NewEncoder(-1, L)
	require.ErrorIs(t, err, ErrVersion)
	_, err = NewEncoder(1, Level(4))
	require.ErrorIs(t, err, ErrLevel)

	_, err = Encode(1, L, Segment{"abc", Numeric})
	require.ErrorAs(t, err, new(SegmentError))
	_, err = Encode(1, L, Segment{"abc", Mode(5)})
	require.ErrorAs(t, err, new(ModeError))

	_, err = Encode(1, H, Segment{strings.Repeat("a", 3000), Byte})
	var ce *CapacityError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, Version(1), ce.Version)
	require.Equal(t, 3000, ce.Count)
	require.Equal(t, 7, ce.Capacity)
	require.Equal(t, 3002, ce.Required)
	require.Equal(t, 9, ce.Available)
	require.Contains(t, err.Error(), "3002 data codewords required, 9 available")

	_, err = Encode(0, L, Segment{strings.Repeat("1", 7090), Numeric})
	require.ErrorAs(t, err, &ce)
	require.Equal(t, MaxVersion, ce.Version)
}

func TestEncodeDeterministic(t *testing.T) {
	seg := NewSegment("The quick brown fox jumps over the lazy dog")
	a, err := Encode(0, M, seg)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		b, err := Encode(0, M, seg)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}
