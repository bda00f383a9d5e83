// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unixdj/qrencode/coding"
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

// codeFrom returns a Code drawn by rows of '#' (black) and '.' (white)
// with no quiet zone at scale 1.
func codeFrom(rows []string) *Code {
	siz := len(rows)
	stride := (siz + 7) / 8
	c := &Code{
		Bitmap:  make([]byte, siz*stride),
		Size:    siz,
		Stride:  stride,
		Version: (siz - 17) / 4,
		Level:   Q,
		Mode:    coding.Alphanumeric,
		Mask:    6,
		Scale:   1,
	}
	for y, row := range rows {
		for x := range row {
			if row[x] == '#' {
				c.Bitmap[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return c
}

func requireSymbol(t *testing.T, want []string, c *Code) {
	t.Helper()
	require.Equal(t, len(want), c.Size)
	got := make([]string, c.Size)
	for y := range got {
		var b strings.Builder
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		got[y] = b.String()
	}
	require.Equal(t, want, got)
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]Level{"l": L, "M": M, "q": Q, "H": H} {
		l, err := ParseLevel(s)
		require.NoError(t, err, s)
		require.Equal(t, want, l, s)
		require.Equal(t, strings.ToUpper(s), l.String())
	}
	_, err := ParseLevel("x")
	require.ErrorIs(t, err, coding.ErrLevel)
	require.Equal(t, H, DefaultLevel)
}

func TestEncode(t *testing.T) {
	c, err := EncodeVersion("HELLO WORLD", Q, 1)
	require.NoError(t, err)
	require.Equal(t, 1, c.Version)
	require.Equal(t, Q, c.Level)
	require.Equal(t, coding.Alphanumeric, c.Mode)
	require.Equal(t, 6, c.Mask)
	require.Equal(t, DefaultScale, c.Scale)
	require.Equal(t, DefaultBorder, c.Border)
	require.False(t, c.Reverse)
	requireSymbol(t, helloWorld1Q, c)
}

func TestEncodeAuto(t *testing.T) {
	c, err := Encode("HELLO WORLD", DefaultLevel)
	require.NoError(t, err)
	require.Equal(t, 2, c.Version)
	require.Equal(t, 25, c.Size)
	require.Equal(t, 4, c.Stride)
	require.Len(t, c.Bitmap, 100)
	require.Equal(t, H, c.Level)
	require.Equal(t, coding.Alphanumeric, c.Mode)
	require.Equal(t, 5, c.Mask)
	for _, tc := range []struct {
		text string
		mode coding.Mode
	}{
		{"0123456789", coding.Numeric},
		{"点茗", coding.Kanji},
		{"hello", coding.Byte},
	} {
		c, err := Encode(tc.text, M)
		require.NoError(t, err, tc.text)
		require.Equal(t, tc.mode, c.Mode, tc.text)
		require.Equal(t, 1, c.Version, tc.text)
	}
}

func TestEncodeMask(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		c, err := EncodeOptions("HELLO WORLD", Options{Level: Q, Mask: mask, ForceMask: true})
		require.NoError(t, err)
		require.Equal(t, mask, c.Mask)
		require.Equal(t, 1, c.Version)
	}
}

func TestEncodeOptionsZeroMask(t *testing.T) {
	// Mask 0 is not forced unless asked for.
	c, err := EncodeOptions("HELLO WORLD", Options{Level: Q})
	require.NoError(t, err)
	require.Equal(t, 6, c.Mask)
	require.Equal(t, 314, c.Scores[6])

	c, err = EncodeOptions("HELLO WORLD", Options{Level: Q, ForceMask: true})
	require.NoError(t, err)
	require.Zero(t, c.Mask)
	require.Equal(t, [8]int{}, c.Scores)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("", H)
	require.ErrorIs(t, err, coding.ErrEmpty)

	_, err = EncodeVersion("HELLO", H, 41)
	require.ErrorIs(t, err, coding.ErrVersion)

	_, err = Encode("HELLO", Level(4))
	require.ErrorIs(t, err, coding.ErrLevel)

	_, err = EncodeOptions("HELLO", Options{Level: H, Mask: 8, ForceMask: true})
	require.ErrorIs(t, err, coding.ErrMask)

	_, err = EncodeOptions("HELLO", Options{Level: H, Mask: -1, ForceMask: true})
	require.ErrorIs(t, err, coding.ErrMask)

	c, err := EncodeVersion(strings.Repeat("a", 3000), H, 1)
	require.Nil(t, c)
	var ce *coding.CapacityError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, coding.Version(1), ce.Version)
	require.Equal(t, coding.Byte, ce.Mode)
	require.Equal(t, 9, ce.Available)

	_, err = Encode(strings.Repeat("a", 2954), L)
	require.True(t, errors.As(err, &ce))
	require.Equal(t, coding.Version(40), ce.Version)
}

func TestMatrix(t *testing.T) {
	c := codeFrom(helloWorld1Q)
	m := c.Matrix()
	require.Len(t, m, 21)
	for y, row := range m {
		require.Len(t, row, 21)
		for x, dark := range row {
			require.Equal(t, helloWorld1Q[y][x] == '#', dark, "(%d,%d)", x, y)
		}
	}
	require.False(t, c.Black(-1, 0))
	require.False(t, c.Black(0, 21))
}

func TestImage(t *testing.T) {
	c := codeFrom(helloWorld1Q)
	c.Scale, c.Border = 3, 2
	img := c.Image()
	require.NotNil(t, img)
	d := (21 + 2*2) * 3
	require.Equal(t, d, img.Bounds().Dx())
	require.Equal(t, d, img.Bounds().Dy())
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			want := c.Black(x/3-2, y/3-2)
			r, _, _, _ := img.At(x, y).RGBA()
			require.Equal(t, want, r == 0, "(%d,%d)", x, y)
		}
	}

	c.Reverse = true
	r, _, _, _ := c.Image().At(0, 0).RGBA()
	require.Zero(t, r)
	r, _, _, _ = c.Image().At(6, 6).RGBA()
	require.NotZero(t, r)

	c.Scale = 0
	require.Nil(t, c.Image())
	c.Scale = maxPixels
	require.Nil(t, c.Image())
}
