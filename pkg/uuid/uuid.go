// Package uuid implements RFC 4122/9562 version 4 identifiers.
//
// A UUID is a 16-byte array in network byte order. Values are produced by
// New from the platform's secure random source, or wrapped verbatim from
// external bytes with FromBytes. The version and variant accessors work on
// any value regardless of origin.
package uuid

import (
	"crypto/rand"
	"io"

	"github.com/jvs-project/uuidgen/pkg/errclass"
)

// Size is the length of a UUID in bytes.
const Size = 16

// UUID is a 128-bit universally unique identifier.
//
// Layout: time_low[0:4], time_mid[4:6], time_hi_and_version[6:8],
// clock_seq[8:10], node[10:16].
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// Variants reported by Variant.
const (
	VariantNCS       = 0 // 0xx
	VariantRFC4122   = 2 // 10x
	VariantMicrosoft = 6 // 110
	VariantFuture    = 7 // 111
)

// New generates a random UUID v4 using crypto/rand.
func New() (UUID, error) {
	return NewFromReader(rand.Reader)
}

// NewFromReader generates a UUID v4 from 16 bytes read from r.
// A failing or short reader yields errclass.ErrEntropyUnavailable.
func NewFromReader(r io.Reader) (UUID, error) {
	var u UUID
	if r == nil {
		return Nil, errclass.ErrEntropyUnavailable.WithMessage("no random source")
	}
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return Nil, errclass.ErrEntropyUnavailable.WithMessage("read random bytes").WithCause(err)
	}
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // variant RFC 4122
	return u, nil
}

// Must returns u or panics if err is non-nil.
func Must(u UUID, err error) UUID {
	if err != nil {
		panic("uuidgen: " + err.Error())
	}
	return u
}

// FromBytes wraps b verbatim. Version and variant bits are not checked.
func FromBytes(b [Size]byte) UUID {
	return UUID(b)
}

// FromSlice copies b into a UUID. b must be exactly Size bytes long.
func FromSlice(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, errclass.ErrInvalidFormat.WithMessagef("need %d bytes, got %d", Size, len(b))
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// Bytes returns a copy of the 16 bytes in network order.
func (u UUID) Bytes() [Size]byte {
	return u
}

// Version returns bits 48-51, the upper nibble of byte 6.
func (u UUID) Version() int {
	return int((u[6] & 0xf0) >> 4)
}

// Variant decodes the variable-width variant field in byte 8.
// The 111 pattern covers two reserved sub-cases and is reported as 7.
func (u UUID) Variant() int {
	b := u[8]
	switch {
	case b&0x80 == 0x00:
		return VariantNCS
	case b&0xc0 == 0x80:
		return VariantRFC4122
	case b&0xe0 == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Equal reports whether u and v hold the same 16 bytes.
func (u UUID) Equal(v UUID) bool {
	return u == v
}

// IsNil reports whether every byte of u is zero.
func (u UUID) IsNil() bool {
	return u == Nil
}
