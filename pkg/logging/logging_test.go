package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level)
	l.SetOutput(&buf)
	return l, &buf
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(LevelInfo)
	assert.Equal(t, LevelInfo, logger.level)
	assert.Equal(t, FormatJSON, logger.format)
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level   Level
		written []Level
	}{
		{LevelDebug, []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}},
		{LevelInfo, []Level{LevelInfo, LevelWarn, LevelError}},
		{LevelWarn, []Level{LevelWarn, LevelError}},
		{LevelError, []Level{LevelError}},
	}
	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			logger, buf := newBufferedLogger(tc.level)
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, len(tc.written))
			for i, want := range tc.written {
				assert.Contains(t, lines[i], `"level":"`+string(want)+`"`)
			}
		})
	}
}

func TestLogger_ErrorErr(t *testing.T) {
	logger, buf := newBufferedLogger(LevelError)
	logger.ErrorErr("generate failed", errors.New("entropy"), map[string]any{"attempt": 1})

	output := buf.String()
	assert.Contains(t, output, `"error":"entropy"`)
	assert.Contains(t, output, `"attempt":1`)
}

func TestLogger_WithFields(t *testing.T) {
	logger, buf := newBufferedLogger(LevelInfo)

	child := logger.WithFields(map[string]any{"component": "natsvc"})
	child.Info("started", map[string]any{"subject": "uuid"})

	output := buf.String()
	assert.Contains(t, output, `"component":"natsvc"`)
	assert.Contains(t, output, `"subject":"uuid"`)

	buf.Reset()
	logger.Info("parent")
	assert.NotContains(t, buf.String(), "component")
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferedLogger(LevelInfo)
	logger.Info("generated", map[string]any{"count": 42})

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated", entry.Message)
	assert.Equal(t, LevelInfo, entry.Level)
	assert.Equal(t, float64(42), entry.Fields["count"])
	assert.NotEmpty(t, entry.Timestamp)
}

func TestLogger_NoFieldsOmitted(t *testing.T) {
	logger, buf := newBufferedLogger(LevelInfo)
	logger.Info("plain")
	assert.NotContains(t, buf.String(), `"fields"`)
}

func TestLogger_TextFormat(t *testing.T) {
	logger, buf := newBufferedLogger(LevelInfo)
	logger.SetFormat(FormatText)
	logger.Info("uuid generated", map[string]any{"version": 4, "uuid": "12345678-9abc-4def-8123-456789abcdef", "note": "two words"})

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "time="))
	assert.Contains(t, line, `level=info msg="uuid generated"`)
	assert.Contains(t, line, ` note="two words" uuid=12345678-9abc-4def-8123-456789abcdef version=4`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestLogger_SetLevel(t *testing.T) {
	logger := NewLogger(LevelError)
	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.level)
	assert.True(t, logger.Enabled(LevelDebug))

	logger.SetLevel(LevelWarn)
	assert.False(t, logger.Enabled(LevelInfo))
	assert.True(t, logger.Enabled(LevelError))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, " warn ": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	orig := Global()
	t.Cleanup(func() { SetGlobal(orig) })

	testLogger, buf := newBufferedLogger(LevelDebug)
	SetGlobal(testLogger)

	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error")
	ErrorErr("global errorerr", errors.New("boom"))
	WithFields(map[string]any{"component": "test"}).Info("component message")

	output := buf.String()
	for _, msg := range []string{"global debug", "global info", "global warn", "global error", "global errorerr", "component message"} {
		assert.Contains(t, output, `"message":"`+msg+`"`)
	}
	assert.Contains(t, output, `"component":"test"`)
	assert.Contains(t, output, `"error":"boom"`)
}
