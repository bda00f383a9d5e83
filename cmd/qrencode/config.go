// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/unixdj/qrencode"
	"github.com/unixdj/qrencode/coding"
)

// config holds defaults read from a TOML file.  Zero values are unset.
type config struct {
	Level   string `toml:"level"`
	Version int    `toml:"version"`
	Scale   int    `toml:"scale"`
	Border  *int   `toml:"border"`
	Type    string `toml:"type"`
	Reverse bool   `toml:"reverse"`
}

// defaultConfigPath returns the path of the user's config file, or ""
// if the config directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qrencode", "config.toml")
}

// loadConfig reads the config file at path.  If path is empty the
// default file is read, and its absence is not an error.
func loadConfig(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		if path = defaultConfigPath(); path == "" {
			return &config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	c, err := parseConfig(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// parseConfig decodes and validates a config file.
func parseConfig(data string) (*config, error) {
	var c config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		return nil, fmt.Errorf("unknown key %q", keys[0].String())
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *config) validate() error {
	if c.Level != "" {
		if _, err := qrencode.ParseLevel(c.Level); err != nil {
			return fmt.Errorf("level %q: %w", c.Level, err)
		}
	}
	if c.Version < 0 || c.Version > int(coding.MaxVersion) {
		return fmt.Errorf("version %d: %w", c.Version, coding.ErrVersion)
	}
	if c.Scale < 0 || c.Scale > maxScale {
		return fmt.Errorf("scale %d out of range 1..%d", c.Scale, maxScale)
	}
	if c.Border != nil && (*c.Border < 0 || *c.Border > maxBorder) {
		return fmt.Errorf("border %d out of range 0..%d", *c.Border, maxBorder)
	}
	if c.Type != "" && !slices.Contains(formats, strings.ToLower(c.Type)) {
		return fmt.Errorf("type %q not one of %s", c.Type,
			strings.Join(formats, ", "))
	}
	return nil
}
