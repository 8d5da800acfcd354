package uuid_test

import (
	"encoding/json"
	"testing"

	guuid "github.com/google/uuid"
	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse_RoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		u := uuid.Must(uuid.New())
		parsed, err := uuid.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}
}

func TestParse_UppercaseAccepted(t *testing.T) {
	u, err := uuid.Parse("12345678-9ABC-4DEF-8123-456789ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, uuid.FromBytes(vectorBytes), u)
	assert.Equal(t, "12345678-9abc-4def-8123-456789abcdef", u.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", "123"},
		{"no dashes", "123456789abc4def8123456789abcdef0000"},
		{"misplaced dash", "1234567-89abc-4def-8123-456789abcdef"},
		{"invalid char", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"},
		{"invalid last char", "12345678-9abc-4def-8123-456789abcdeg"},
		{"braces", "{12345678-9abc-4def-8123-456789abcde}"},
		{"too long", "12345678-9abc-4def-8123-456789abcdef0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := uuid.Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errclass.ErrInvalidFormat)
			assert.True(t, u.IsNil())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { uuid.MustParse("not-a-uuid") })
}

func TestText_JSON(t *testing.T) {
	type record struct {
		ID uuid.UUID `json:"id"`
	}
	in := record{ID: uuid.FromBytes(vectorBytes)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"12345678-9abc-4def-8123-456789abcdef"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"id":"nope"}`), &out)
	assert.ErrorIs(t, err, errclass.ErrInvalidFormat)
}

func TestText_YAML(t *testing.T) {
	type record struct {
		ID uuid.UUID `yaml:"id"`
	}
	in := record{ID: uuid.FromBytes(vectorBytes)}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "id: 12345678-9abc-4def-8123-456789abcdef\n", string(data))

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

// google/uuid is used as an independent oracle for the text form and bit fields.
func TestInterop_GoogleUUID(t *testing.T) {
	for i := 0; i < 20; i++ {
		u := uuid.Must(uuid.New())
		g := guuid.UUID(u.Bytes())
		assert.Equal(t, g.String(), u.String())
		assert.Equal(t, guuid.Version(4), g.Version())
		assert.Equal(t, guuid.RFC4122, g.Variant())
	}

	g := guuid.New()
	u, err := uuid.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, [16]byte(g), u.Bytes())
	assert.Equal(t, int(g.Version()), u.Version())
}

func TestInspect(t *testing.T) {
	info := uuid.Inspect(uuid.FromBytes(vectorBytes))
	assert.Equal(t, 4, info.Version)
	assert.Equal(t, 2, info.Variant)
	assert.Equal(t, "rfc4122", info.VariantName)
	assert.Equal(t, uuid.Fields{
		TimeLow:          "12345678",
		TimeMid:          "9abc",
		TimeHiAndVersion: "4def",
		ClockSeq:         "8123",
		Node:             "456789abcdef",
	}, info.Fields)

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"uuid":"12345678-9abc-4def-8123-456789abcdef"`)
	assert.Contains(t, string(data), `"variant_name":"rfc4122"`)
}

func TestTimeHiAndClockSeq(t *testing.T) {
	u := uuid.FromBytes(vectorBytes)
	assert.Equal(t, uint16(0xdef), u.TimeHi())
	assert.Equal(t, uint16(0x0123), u.ClockSeq())
}

func TestVariantName(t *testing.T) {
	assert.Equal(t, "ncs", uuid.VariantName(uuid.VariantNCS))
	assert.Equal(t, "rfc4122", uuid.VariantName(uuid.VariantRFC4122))
	assert.Equal(t, "microsoft", uuid.VariantName(uuid.VariantMicrosoft))
	assert.Equal(t, "future", uuid.VariantName(uuid.VariantFuture))
	assert.Equal(t, "unknown", uuid.VariantName(3))
}
