// Package ffi is the buffer-and-status-code boundary used by foreign bindings.
//
// Every function takes caller-owned fixed-size buffers, validates their
// shape, calls into package uuid and reports the outcome as a Status. A nil
// slice stands in for a null pointer. Nothing is written to any output on a
// non-zero status, and panics are recovered into StatusUnknown.
package ffi

import (
	"errors"

	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

// Status is the integer result code returned across the boundary.
type Status int32

const (
	StatusOK             Status = 0
	StatusEntropyFailure Status = 1
	StatusInvalidBuffer  Status = 2
	StatusBufferTooSmall Status = 3
	StatusUnknown        Status = 99
)

// StringBufferLen is the minimum output capacity for ToString: 36 characters and a NUL.
const StringBufferLen = uuid.StringLen + 1

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusEntropyFailure:
		return "failed to generate random data from entropy source"
	case StatusInvalidBuffer:
		return "invalid buffer (nil or wrong size)"
	case StatusBufferTooSmall:
		return "buffer too small for output"
	case StatusUnknown:
		return "unknown error"
	default:
		return "undefined status code"
	}
}

// Err maps a status back to its error class. StatusOK maps to nil.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusEntropyFailure:
		return errclass.ErrEntropyUnavailable
	case StatusInvalidBuffer:
		return errclass.ErrInvalidBuffer
	case StatusBufferTooSmall:
		return errclass.ErrBufferTooSmall
	default:
		return errors.New(s.String())
	}
}

// generate is swapped in tests to simulate an entropy failure.
var generate = uuid.New

// Generate fills out with a fresh v4 UUID. out must be exactly 16 bytes.
func Generate(out []byte) (status Status) {
	defer recoverStatus(&status)

	if len(out) != uuid.Size {
		return StatusInvalidBuffer
	}
	u, err := generate()
	if err != nil {
		return StatusEntropyFailure
	}
	b := u.Bytes()
	copy(out, b[:])
	return StatusOK
}

// ToString writes the canonical form of in, NUL-terminated, into out.
func ToString(in, out []byte) (status Status) {
	defer recoverStatus(&status)

	u, ok := load(in)
	if !ok || out == nil {
		return StatusInvalidBuffer
	}
	if len(out) < StringBufferLen {
		return StatusBufferTooSmall
	}
	n := copy(out, u.String())
	out[n] = 0
	return StatusOK
}

// Info writes the version and variant of in.
func Info(in []byte, version, variant *uint8) (status Status) {
	defer recoverStatus(&status)

	u, ok := load(in)
	if !ok || version == nil || variant == nil {
		return StatusInvalidBuffer
	}
	*version = uint8(u.Version())
	*variant = uint8(u.Variant())
	return StatusOK
}

// Compare writes 1 to equal if a and b hold the same bytes, 0 otherwise.
func Compare(a, b []byte, equal *uint8) (status Status) {
	defer recoverStatus(&status)

	ua, okA := load(a)
	ub, okB := load(b)
	if !okA || !okB || equal == nil {
		return StatusInvalidBuffer
	}
	if ua.Equal(ub) {
		*equal = 1
	} else {
		*equal = 0
	}
	return StatusOK
}

func load(in []byte) (uuid.UUID, bool) {
	u, err := uuid.FromSlice(in)
	return u, err == nil
}

func recoverStatus(status *Status) {
	if r := recover(); r != nil {
		*status = StatusUnknown
	}
}
