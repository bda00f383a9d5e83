// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = errors.New("qr: empty input")
	ErrLevel      = errors.New("qr: invalid level")
	ErrVersion    = errors.New("qr: invalid version")
	ErrMask       = errors.New("qr: invalid mask")
	ErrIncomplete = errors.New("qr: incomplete matrix")
)

// SegmentError represents a Segment whose text is not encodable in its
// mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode.IsValid() {
		return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %d", int(e))
}

// CapacityError is returned when a segment does not fit in any
// permitted version.
type CapacityError struct {
	Version   Version // largest version tried
	Level     Level
	Mode      Mode
	Count     int // character count of the input
	Capacity  int // character capacity of Version at Level in Mode
	Required  int // data codewords needed
	Available int // data codewords available
}

func newCapacityError(seg Segment, v Version, l Level) *CapacityError {
	return &CapacityError{
		Version:   v,
		Level:     l,
		Mode:      seg.Mode,
		Count:     seg.Count(),
		Capacity:  capacity[v][l][seg.Mode],
		Required:  (seg.EncodedLength(v.SizeClass()) + 7) >> 3,
		Available: v.DataBytes(l),
	}
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d %s characters exceed capacity %d of version %s-%s: "+
		"%d data codewords required, %d available",
		e.Count, e.Mode, e.Capacity, e.Version, e.Level,
		e.Required, e.Available)
}

// OverflowError is returned when the padded data does not match the
// data capacity of the chosen version.  It indicates an internal
// inconsistency.
type OverflowError struct {
	Version Version
	Level   Level
	Bytes   int // padded data length
	Want    int // data codewords of Version at Level
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("qr: %d data bytes for version %s-%s holding %d",
		e.Bytes, e.Version, e.Level, e.Want)
}

// FieldError wraps a GF(256) arithmetic failure during error
// correction coding.
type FieldError struct {
	Op  string
	Err error
}

func (e *FieldError) Error() string { return "qr: " + e.Op + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }
