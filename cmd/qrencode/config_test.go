// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pborman/getopt/v2"
	"github.com/stretchr/testify/require"
	"github.com/unixdj/qrencode"
	"github.com/unixdj/qrencode/coding"
)

func TestParseConfig(t *testing.T) {
	c, err := parseConfig(`
level = "m"
version = 5
scale = 3
border = 0
type = "pbmi"
reverse = true
`)
	require.NoError(t, err)
	require.Equal(t, "m", c.Level)
	require.Equal(t, 5, c.Version)
	require.Equal(t, 3, c.Scale)
	require.NotNil(t, c.Border)
	require.Zero(t, *c.Border)
	require.Equal(t, "pbmi", c.Type)
	require.True(t, c.Reverse)

	c, err = parseConfig("")
	require.NoError(t, err)
	require.Equal(t, &config{}, c)
}

func TestParseConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name, data string
	}{
		{"syntax", `level = `},
		{"unknown key", `colour = "red"`},
		{"level", `level = "x"`},
		{"version", `version = 41`},
		{"negative version", `version = -1`},
		{"scale", `scale = 1000`},
		{"border", `border = -1`},
		{"type", `type = "gif"`},
		{"wrong type", `scale = "big"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.data)
			require.Error(t, err)
		})
	}
	_, err := parseConfig(`version = 41`)
	require.ErrorIs(t, err, coding.ErrVersion)
	_, err = parseConfig(`level = "x"`)
	require.ErrorIs(t, err, coding.ErrLevel)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// No default file.
	c, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, &config{}, c)

	// Default file.
	path := filepath.Join(dir, "qrencode", "config.toml")
	require.Equal(t, path, defaultConfigPath())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, []byte(`level = "q"`), 0666))
	c, err = loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "q", c.Level)

	// Explicit file.
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(other, []byte("scale = 2\n"), 0666))
	c, err = loadConfig(other)
	require.NoError(t, err)
	require.Equal(t, 2, c.Scale)
	require.Empty(t, c.Level)

	// Explicit file must exist.
	_, err = loadConfig(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(other, []byte("scale = 0.5\n"), 0666))
	_, err = loadConfig(other)
	require.ErrorContains(t, err, other)
}

// parse parses command line arguments and merges them over cfg.
func parse(t *testing.T, cfg *config, tty bool, args ...string) *settings {
	t.Helper()
	f := defineFlags(getopt.New())
	require.NoError(t, f.set.Getopt(append([]string{"qrencode"}, args...), nil))
	s, err := f.settings(cfg, tty)
	require.NoError(t, err)
	return s
}

func TestSettingsDefaults(t *testing.T) {
	s := parse(t, &config{}, false)
	require.Equal(t, qrencode.Options{
		Level:   qrencode.H,
		Version: 0,
		Mask:    -1,
	}, s.opts)
	require.Equal(t, qrencode.DefaultScale, s.scale)
	require.Equal(t, qrencode.DefaultBorder, s.border)
	require.Equal(t, 0, s.format) // png
	require.False(t, s.rev)
	require.Empty(t, s.fn)

	s = parse(t, &config{}, true)
	require.Equal(t, 2, s.format) // utf8

	s = parse(t, &config{}, true, "-o", "out.png")
	require.Equal(t, 0, s.format)
	require.Equal(t, "out.png", s.fn)

	s = parse(t, &config{}, true, "-o", "-")
	require.Equal(t, 0, s.format)
	require.Empty(t, s.fn)
}

func TestSettingsFlags(t *testing.T) {
	s := parse(t, &config{}, true,
		"-lq", "-v", "7", "-k", "3", "-s", "2", "-m", "1", "-t", "asciii")
	require.Equal(t, qrencode.Options{Level: qrencode.Q, Version: 7, Mask: 3, ForceMask: true}, s.opts)
	require.Equal(t, 2, s.scale)
	require.Equal(t, 1, s.border)
	require.Equal(t, 3, s.format)
	require.True(t, s.rev)

	s = parse(t, &config{}, false, "-t", "epsi")
	require.Equal(t, 4, s.format)
	require.True(t, s.rev)

	s = parse(t, &config{}, false, "-t", "cbor")
	require.Equal(t, 5, s.format)
	require.False(t, s.rev)

	f := defineFlags(getopt.New())
	require.Error(t, f.set.Getopt([]string{"qrencode", "-v", "41"}, nil))
	f = defineFlags(getopt.New())
	require.Error(t, f.set.Getopt([]string{"qrencode", "-k", "8"}, nil))
	f = defineFlags(getopt.New())
	require.Error(t, f.set.Getopt([]string{"qrencode", "-t", "gif"}, nil))
}

func TestSettingsConfig(t *testing.T) {
	border := 0
	cfg := &config{
		Level:   "L",
		Version: 10,
		Scale:   3,
		Border:  &border,
		Type:    "PBM",
		Reverse: true,
	}
	s := parse(t, cfg, true)
	require.Equal(t, qrencode.L, s.opts.Level)
	require.Equal(t, 10, s.opts.Version)
	require.Equal(t, 3, s.scale)
	require.Equal(t, 0, s.border)
	require.Equal(t, 1, s.format)
	require.True(t, s.rev)

	// Flags override the file.
	s = parse(t, cfg, true, "-l", "m", "-v", "2", "-s", "5", "-m", "4", "-t", "png")
	require.Equal(t, qrencode.M, s.opts.Level)
	require.Equal(t, 2, s.opts.Version)
	require.Equal(t, 5, s.scale)
	require.Equal(t, 4, s.border)
	require.Equal(t, 0, s.format)
	require.False(t, s.rev)
}
