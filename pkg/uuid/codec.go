package uuid

import (
	"encoding/hex"

	"github.com/jvs-project/uuidgen/pkg/errclass"
)

// StringLen is the length of the canonical text form.
const StringLen = 36

// dashPositions are the indexes of '-' in the canonical form.
var dashPositions = [4]int{8, 13, 18, 23}

// String returns the canonical 8-4-4-4-12 lowercase form.
func (u UUID) String() string {
	var buf [StringLen]byte
	encodeCanonical(buf[:], u)
	return string(buf[:])
}

func encodeCanonical(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse decodes the canonical 36-character form. Hex digits may be of
// either case; everything else yields errclass.ErrInvalidFormat.
func Parse(s string) (UUID, error) {
	var u UUID
	if len(s) != StringLen {
		return Nil, errclass.ErrInvalidFormat.WithMessagef("length %d, want %d", len(s), StringLen)
	}
	for _, i := range dashPositions {
		if s[i] != '-' {
			return Nil, errclass.ErrInvalidFormat.WithMessagef("expected '-' at position %d", i)
		}
	}

	j := 0
	for i := 0; i < StringLen; i += 2 {
		if s[i] == '-' {
			i++
		}
		hi, ok1 := fromHexChar(s[i])
		lo, ok2 := fromHexChar(s[i+1])
		if !ok1 || !ok2 {
			return Nil, errclass.ErrInvalidFormat.WithMessagef("invalid character in %q", s[i:i+2])
		}
		u[j] = hi<<4 | lo
		j++
	}
	return u, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic("uuidgen: " + err.Error())
	}
	return u
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	buf := make([]byte, StringLen)
	encodeCanonical(buf, u)
	return buf, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
