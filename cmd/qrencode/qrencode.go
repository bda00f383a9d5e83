// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrencode encodes text as a QR code.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/qrencode"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"
)

var log = commonlog.GetLogger("qrencode")

const (
	maxScale  = 256
	maxBorder = 64
)

// formats lists output types.  Odd entries are inverted, except cbor.
var formats = []string{
	"png", "pngi", "pbm", "pbmi",
	"utf8", "utf8i", "ascii", "asciii",
	"eps", "epsi", "cbor",
}

var encoders = [...]func(*qrencode.Code, io.Writer) error{
	(*qrencode.Code).EncodePNG,
	(*qrencode.Code).EncodePBM,
	(*qrencode.Code).EncodeUTF8,
	(*qrencode.Code).EncodeASCII,
	(*qrencode.Code).EncodeEPS,
	(*qrencode.Code).EncodeCBOR,
}

// settings are the effective parameters of a run.
type settings struct {
	opts   qrencode.Options
	scale  int    // image pixels per module
	border int    // quiet zone
	format int    // index into encoders
	rev    bool   // reverse colours
	fn     string // output file name, "" for standard output
}

// flags holds the command line options.
type flags struct {
	set     *getopt.Set
	config  string
	fn      string
	fno     getopt.Option
	level   *string
	version *uint64
	mask    *int64
	scale   *uint64
	border  *uint64
	format  *string
	verbose *int
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func defineFlags(s *getopt.Set) *flags {
	f := &flags{set: s}
	s.Flag(opt(help), 'h', "show this help").SetFlag()
	s.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	f.verbose = s.Counter('d', "increase log verbosity; may be repeated")
	s.Flag(&f.config, 'c', `config file [`+defaultConfigPath()+`]`, "file")
	f.level = s.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "h",
		"error correction level, lowest to highest", "l|m|q|h")
	f.version = s.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version; smallest fitting if not given", "ver")
	f.mask = s.Signed('k', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern; lowest penalty if not given", "mask")
	f.scale = s.Unsigned('s', qrencode.DefaultScale,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: maxScale},
		`image pixels (type eps[i]: points) per QR module ("pixel"); `+
			`ignored for types utf8[i], ascii[i] and cbor`, "scale")
	f.border = s.Unsigned('m', qrencode.DefaultBorder,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: maxBorder},
		"quiet zone width in QR modules", "margin")
	f.format = s.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -t or -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")
	f.fno = s.Flag(&f.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	return f
}

// settings merges command line options over cfg.
func (f *flags) settings(cfg *config, tty bool) (*settings, error) {
	s := &settings{
		opts: qrencode.Options{
			Version:   int(*f.version),
			Mask:      int(*f.mask),
			ForceMask: *f.mask >= 0,
		},
		scale:  int(*f.scale),
		border: int(*f.border),
		fn:     f.fn,
	}
	lev := *f.level
	if !f.set.IsSet('l') && cfg.Level != "" {
		lev = cfg.Level
	}
	var err error
	if s.opts.Level, err = qrencode.ParseLevel(lev); err != nil {
		return nil, err
	}
	if !f.set.IsSet('v') {
		s.opts.Version = cfg.Version
	}
	if !f.set.IsSet('s') && cfg.Scale != 0 {
		s.scale = cfg.Scale
	}
	if !f.set.IsSet('m') && cfg.Border != nil {
		s.border = *cfg.Border
	}
	ff := *f.format
	if !f.set.IsSet('t') {
		ff = strings.ToLower(cfg.Type)
		s.rev = cfg.Reverse
	}
	if ff == "" {
		if !f.fno.Seen() && tty {
			ff = "utf8"
		} else {
			ff = "png"
		}
	}
	for i, v := range formats {
		if ff == v {
			s.format = i >> 1
			s.rev = s.rev || i&1 != 0
			break
		}
	}
	if s.fn == "-" {
		s.fn = ""
	}
	return s, nil
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Settings from the config file are overridden by
options.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	bb := b.Bytes()
	if n := bytes.Index(bb, []byte(" [-1]")); n >= 0 {
		w.Write(bb[:n])
		bb = bb[n+len(" [-1]"):]
	}
	w.Write(bb)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrencode version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

// fatal logs err and exits, flushing the log.
func fatal(err error) {
	log.Error(err.Error())
	util.Exit(1)
}

// readInput returns the arguments joined by spaces, or standard input
// without the final newline.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(
		strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}

// encode encodes text and logs the outcome.
func encode(text string, s *settings) (*qrencode.Code, error) {
	c, err := qrencode.EncodeOptions(text, s.opts)
	if err != nil {
		return nil, err
	}
	log.Infof("encoded %d bytes in %s mode as version %d-%s, mask %d",
		len(text), c.Mode, c.Version, c.Level, c.Mask)
	if !s.opts.ForceMask {
		for m, p := range c.Scores {
			log.Debugf("mask %d: penalty %d", m, p)
		}
	}
	c.Scale = s.scale
	c.Border = s.border
	c.Reverse = s.rev
	return c, nil
}

// write writes c to the output file in the chosen format.
func write(c *qrencode.Code, s *settings) error {
	w := os.Stdout
	if s.fn != "" {
		var err error
		if w, err = os.OpenFile(s.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			return err
		}
	}
	err := encoders[s.format](c, w)
	if s.fn != "" {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err == nil {
		log.Debugf("wrote %s", formats[s.format<<1])
	}
	return err
}

func main() {
	getopt.SetUsage(usage)
	f := defineFlags(getopt.CommandLine)
	getopt.Parse()
	commonlog.Configure(*f.verbose, nil)

	cfg, err := loadConfig(f.config)
	if err != nil {
		fatal(err)
	}
	s, err := f.settings(cfg, isatty.IsTerminal(uintptr(syscall.Stdout)))
	if err != nil {
		fatal(err)
	}
	text, err := readInput(getopt.Args(), os.Stdin)
	if err != nil {
		fatal(err)
	}
	c, err := encode(text, s)
	if err != nil {
		fatal(err)
	}
	if err := write(c, s); err != nil {
		fatal(err)
	}
	util.Exit(0)
}
