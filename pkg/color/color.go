// Package color provides terminal color output support for uuidgen.
// It respects the NO_COLOR environment variable (https://no-color.org/).
package color

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// state holds the global color configuration.
var state struct {
	once       sync.Once
	enabled    atomic.Bool
	overridden atomic.Bool
}

// Init initializes the color system based on environment and flags.
// Only the first call inspects the environment; Enable and Disable
// override the result afterwards.
func Init(noColorFlag bool) {
	state.once.Do(func() {
		if state.overridden.Load() {
			return
		}
		disabled := noColorFlag
		if _, exists := os.LookupEnv("NO_COLOR"); exists {
			disabled = true
		}
		if os.Getenv("TERM") == "dumb" {
			disabled = true
		}
		state.enabled.Store(!disabled)
	})
}

// Enabled returns true if color output is enabled.
func Enabled() bool {
	Init(false)
	return state.enabled.Load()
}

// Disable turns off color output.
func Disable() {
	state.overridden.Store(true)
	state.enabled.Store(false)
}

// Enable turns on color output.
func Enable() {
	state.overridden.Store(true)
	state.enabled.Store(true)
}

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	DimCode = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

type colorFunc func(string) string

func makeColorFunc(code string) colorFunc {
	return func(s string) string {
		if !Enabled() {
			return s
		}
		return code + s + Reset
	}
}

var (
	Redf     = makeColorFunc(Red)
	Greenf   = makeColorFunc(Green)
	Yellowf  = makeColorFunc(Yellow)
	Bluef    = makeColorFunc(Blue)
	Magentaf = makeColorFunc(Magenta)
	Cyanf    = makeColorFunc(Cyan)
	Boldf    = makeColorFunc(Bold)
	Dimf     = makeColorFunc(DimCode)
)

// Success formats a success message in green.
func Success(s string) string {
	return Greenf(s)
}

// Error formats an error message in red.
func Error(s string) string {
	return Redf(s)
}

// Errorf formats an error message with printf-style arguments.
func Errorf(format string, args ...any) string {
	return Redf(fmt.Sprintf(format, args...))
}

// Warning formats a warning message in yellow.
func Warning(s string) string {
	return Yellowf(s)
}

// UUID formats a canonical UUID string in cyan.
func UUID(s string) string {
	return Cyanf(s)
}

// VersionBits marks the version nibble in magenta.
func VersionBits(s string) string {
	return Magentaf(s)
}

// VariantBits marks the variant bits in blue.
func VariantBits(s string) string {
	return Bluef(s)
}

// Header formats a header in bold.
func Header(s string) string {
	return Boldf(s)
}

// Dim formats dimmed text (for secondary information).
func Dim(s string) string {
	return Dimf(s)
}

// Code formats code/command strings in a distinct style (bold + dim).
func Code(s string) string {
	if !Enabled() {
		return s
	}
	return Bold + DimCode + s + Reset
}
