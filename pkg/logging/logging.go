// Package logging provides structured logging for uuidgen.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a log level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel converts a config or flag value into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelRank[l]; !ok {
		return "", fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
	return l, nil
}

// Format selects the line encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat converts a config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("unknown log format %q (want json or text)", s)
}

// Logger provides structured logging.
type Logger struct {
	mu     *sync.Mutex
	level  Level
	format Format
	output io.Writer
	fields map[string]any
}

// LogEntry represents a structured log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// NewLogger creates a new JSON logger with the specified level.
func NewLogger(level Level) *Logger {
	return &Logger{
		mu:     &sync.Mutex{},
		level:  level,
		format: FormatJSON,
		output: os.Stderr,
		fields: make(map[string]any),
	}
}

// WithFields returns a new logger with additional fields.
// The derived logger shares output and lock with its parent.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &Logger{
		mu:     l.mu,
		level:  l.level,
		format: l.format,
		output: l.output,
		fields: newFields,
	}
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return levelRank[level] >= levelRank[l.level]
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	l.log(LevelError, msg, fields...)
}

// ErrorErr logs an error message with an error value.
func (l *Logger) ErrorErr(msg string, err error, fields ...map[string]any) {
	combined := map[string]any{"error": err.Error()}
	for _, f := range fields {
		for k, v := range f {
			combined[k] = v
		}
	}
	l.log(LevelError, msg, combined)
}

func (l *Logger) log(level Level, msg string, fields ...map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if levelRank[level] < levelRank[l.level] {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Message:   msg,
		Fields:    make(map[string]any),
	}

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			entry.Fields[k] = v
		}
	}
	if len(entry.Fields) == 0 {
		entry.Fields = nil
	}

	if l.format == FormatText {
		io.WriteString(l.output, formatText(entry))
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.output, `{"level":"error","message":"failed to marshal log entry"}`+"\n")
		return
	}

	l.output.Write(append(data, '\n'))
}

// formatText renders entry as space-separated key=value pairs with sorted field keys.
func formatText(entry LogEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "time=%s level=%s msg=%q", entry.Timestamp, entry.Level, entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fmt.Sprint(entry.Fields[k])
		if strings.ContainsAny(v, " \t\"=") {
			v = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(&sb, " %s=%s", k, v)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetLevel sets the log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetFormat sets the line encoding.
func (l *Logger) SetFormat(format Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
}

// Global logger instance
var global = NewLogger(LevelWarn)

// SetGlobal sets the global logger.
func SetGlobal(l *Logger) {
	global = l
}

// Global returns the global logger.
func Global() *Logger {
	return global
}

// Debug logs to the global logger.
func Debug(msg string, fields ...map[string]any) {
	global.Debug(msg, fields...)
}

// Info logs to the global logger.
func Info(msg string, fields ...map[string]any) {
	global.Info(msg, fields...)
}

// Warn logs to the global logger.
func Warn(msg string, fields ...map[string]any) {
	global.Warn(msg, fields...)
}

// Error logs to the global logger.
func Error(msg string, fields ...map[string]any) {
	global.Error(msg, fields...)
}

// ErrorErr logs to the global logger with an error.
func ErrorErr(msg string, err error, fields ...map[string]any) {
	global.ErrorErr(msg, err, fields...)
}

// WithFields returns a new logger from global with additional fields.
func WithFields(fields map[string]any) *Logger {
	return global.WithFields(fields)
}
