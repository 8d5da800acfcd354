package cli

import (
	"github.com/jvs-project/uuidgen/pkg/metrics"
)

// metricsRegistry returns the default registry, or nil when metrics are
// disabled in config. A nil registry records nothing.
func metricsRegistry() *metrics.Registry {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.Default()
}
