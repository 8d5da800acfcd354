package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jvs-project/uuidgen/pkg/color"
	"github.com/jvs-project/uuidgen/pkg/metrics"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

const urnPrefix = "urn:uuid:"

func fmtErr(format string, args ...any) {
	prefix := "uuidgen: "
	if color.Enabled() {
		prefix = color.Error("uuidgen:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}

// normalizeInput folds compatibility characters such as full-width digits,
// then strips surrounding space, a urn:uuid: prefix and one pair of braces.
func normalizeInput(s string) string {
	s = strings.TrimSpace(norm.NFKC.String(s))
	if len(s) >= len(urnPrefix) && strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		s = s[len(urnPrefix):]
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}
	return s
}

// parseArg normalizes a user-typed identifier and parses it.
func parseArg(arg string) (uuid.UUID, error) {
	u, err := uuid.Parse(normalizeInput(arg))
	metricsRegistry().RecordParse(metrics.SurfaceCLI, err == nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse %q: %w", arg, err)
	}
	return u, nil
}
