// Package metrics provides Prometheus metrics export for uuidgen.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "uuidgen"

// Surface labels identify which entry point recorded an operation.
const (
	SurfaceCLI  = "cli"
	SurfaceNATS = "nats"
	SurfaceHTTP = "http"
)

var (
	enabled         bool
	enabledMutex    sync.RWMutex
	defaultRegistry *Registry
)

// Init enables metrics and creates the default registry.
func Init() {
	enabledMutex.Lock()
	defer enabledMutex.Unlock()
	enabled = true
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
}

// Enabled returns true if metrics are enabled.
func Enabled() bool {
	enabledMutex.RLock()
	defer enabledMutex.RUnlock()
	return enabled
}

// Default returns the default metrics registry, initializing it on first use.
func Default() *Registry {
	enabledMutex.RLock()
	r := defaultRegistry
	enabledMutex.RUnlock()
	if r == nil {
		Init()
		enabledMutex.RLock()
		r = defaultRegistry
		enabledMutex.RUnlock()
	}
	return r
}

// Registry holds all uuidgen collectors on a private prometheus.Registry.
// A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	generated        *prometheus.CounterVec
	entropyFailures  *prometheus.CounterVec
	parsed           *prometheus.CounterVec
	generateDuration prometheus.Histogram
}

// NewRegistry creates a new metrics registry.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Number of version 4 UUIDs generated.",
		}, []string{"surface"}),
		entropyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entropy_failures_total",
			Help:      "Number of generation attempts that failed to read the random source.",
		}, []string{"surface"}),
		parsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parsed_total",
			Help:      "Number of UUID strings parsed, by result.",
		}, []string{"surface", "result"}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "Time spent reading entropy and building a UUID.",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3, 1e-2},
		}),
	}
	r.reg.MustRegister(
		r.generated,
		r.entropyFailures,
		r.parsed,
		r.generateDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RecordGenerate records one generation attempt.
func (r *Registry) RecordGenerate(surface string, success bool, duration time.Duration) {
	if r == nil {
		return
	}
	if !success {
		r.entropyFailures.WithLabelValues(surface).Inc()
		return
	}
	r.generated.WithLabelValues(surface).Inc()
	r.generateDuration.Observe(duration.Seconds())
}

// RecordParse records one parse of user-supplied text.
func (r *Registry) RecordParse(surface string, success bool) {
	if r == nil {
		return
	}
	result := "ok"
	if !success {
		result = "invalid"
	}
	r.parsed.WithLabelValues(surface, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
