package ffi

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []byte{
	0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0x4d, 0xef,
	0x81, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
}

func withGenerator(t *testing.T, fn func() (uuid.UUID, error)) {
	t.Helper()
	orig := generate
	generate = fn
	t.Cleanup(func() { generate = orig })
}

func TestGenerate(t *testing.T) {
	out := make([]byte, 16)
	require.Equal(t, StatusOK, Generate(out))

	u, err := uuid.FromSlice(out)
	require.NoError(t, err)
	assert.Equal(t, 4, u.Version())
	assert.Equal(t, 2, u.Variant())
	assert.NotEqual(t, make([]byte, 16), out)
}

func TestGenerate_InvalidBuffer(t *testing.T) {
	assert.Equal(t, StatusInvalidBuffer, Generate(nil))

	short := bytes.Repeat([]byte{0xee}, 15)
	assert.Equal(t, StatusInvalidBuffer, Generate(short))
	assert.Equal(t, bytes.Repeat([]byte{0xee}, 15), short, "no partial write")
}

func TestGenerate_EntropyFailure(t *testing.T) {
	withGenerator(t, func() (uuid.UUID, error) {
		return uuid.Nil, errclass.ErrEntropyUnavailable.WithCause(errors.New("no device"))
	})

	out := bytes.Repeat([]byte{0xee}, 16)
	assert.Equal(t, StatusEntropyFailure, Generate(out))
	assert.Equal(t, bytes.Repeat([]byte{0xee}, 16), out, "no partial write")
}

func TestGenerate_PanicRecovered(t *testing.T) {
	withGenerator(t, func() (uuid.UUID, error) { panic("boom") })
	assert.Equal(t, StatusUnknown, Generate(make([]byte, 16)))
}

func TestToString(t *testing.T) {
	out := make([]byte, StringBufferLen)
	require.Equal(t, StatusOK, ToString(sample, out))
	assert.Equal(t, "12345678-9abc-4def-8123-456789abcdef", string(out[:36]))
	assert.Equal(t, byte(0), out[36])
}

func TestToString_LargerBuffer(t *testing.T) {
	out := bytes.Repeat([]byte{'x'}, 64)
	require.Equal(t, StatusOK, ToString(sample, out))
	assert.Equal(t, byte(0), out[36])
	assert.Equal(t, byte('x'), out[37])
}

func TestToString_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		out  []byte
		want Status
	}{
		{"nil input", nil, make([]byte, 37), StatusInvalidBuffer},
		{"short input", sample[:8], make([]byte, 37), StatusInvalidBuffer},
		{"nil output", sample, nil, StatusInvalidBuffer},
		{"output 36 bytes", sample, bytes.Repeat([]byte{0xee}, 36), StatusBufferTooSmall},
		{"output empty", sample, []byte{}, StatusBufferTooSmall},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var before []byte
			if tc.out != nil {
				before = bytes.Clone(tc.out)
			}
			assert.Equal(t, tc.want, ToString(tc.in, tc.out))
			if tc.out != nil {
				assert.Equal(t, before, tc.out, "no partial write")
			}
		})
	}
}

func TestInfo(t *testing.T) {
	var version, variant uint8
	require.Equal(t, StatusOK, Info(sample, &version, &variant))
	assert.Equal(t, uint8(4), version)
	assert.Equal(t, uint8(2), variant)

	nonV4 := bytes.Clone(sample)
	nonV4[6] = 0x1a
	nonV4[8] = 0xc0
	require.Equal(t, StatusOK, Info(nonV4, &version, &variant))
	assert.Equal(t, uint8(1), version)
	assert.Equal(t, uint8(6), variant)
}

func TestInfo_Errors(t *testing.T) {
	version, variant := uint8(0xee), uint8(0xee)

	assert.Equal(t, StatusInvalidBuffer, Info(nil, &version, &variant))
	assert.Equal(t, StatusInvalidBuffer, Info(sample[:15], &version, &variant))
	assert.Equal(t, StatusInvalidBuffer, Info(sample, nil, &variant))
	assert.Equal(t, StatusInvalidBuffer, Info(sample, &version, nil))

	assert.Equal(t, uint8(0xee), version, "no partial write")
	assert.Equal(t, uint8(0xee), variant, "no partial write")
}

func TestCompare(t *testing.T) {
	var equal uint8
	require.Equal(t, StatusOK, Compare(sample, bytes.Clone(sample), &equal))
	assert.Equal(t, uint8(1), equal)

	other := make([]byte, 16)
	require.Equal(t, StatusOK, Generate(other))
	require.Equal(t, StatusOK, Compare(sample, other, &equal))
	assert.Equal(t, uint8(0), equal)
}

func TestCompare_Errors(t *testing.T) {
	equal := uint8(0xee)

	assert.Equal(t, StatusInvalidBuffer, Compare(nil, sample, &equal))
	assert.Equal(t, StatusInvalidBuffer, Compare(sample, nil, &equal))
	assert.Equal(t, StatusInvalidBuffer, Compare(sample, sample[:3], &equal))
	assert.Equal(t, StatusInvalidBuffer, Compare(sample, sample, nil))
	assert.Equal(t, uint8(0xee), equal, "no partial write")
}

func TestStatus_Err(t *testing.T) {
	assert.NoError(t, StatusOK.Err())
	assert.ErrorIs(t, StatusEntropyFailure.Err(), errclass.ErrEntropyUnavailable)
	assert.ErrorIs(t, StatusInvalidBuffer.Err(), errclass.ErrInvalidBuffer)
	assert.ErrorIs(t, StatusBufferTooSmall.Err(), errclass.ErrBufferTooSmall)
	assert.EqualError(t, StatusUnknown.Err(), "unknown error")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", StatusOK.String())
	assert.Equal(t, "buffer too small for output", StatusBufferTooSmall.String())
	assert.Equal(t, "undefined status code", Status(42).String())
}
