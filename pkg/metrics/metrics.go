// Package metrics adapts the teacher's Prometheus Registry pattern to this
// tool's counters. Since the tool never runs a server (spec.md's
// interactive-use Non-goal), the registry is dumped once as Prometheus text
// format to --metrics-file at exit rather than served over HTTP.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric this tool emits (SPEC_FULL §3 domain stack).
type Registry struct {
	LinesScannedTotal    prometheus.Counter
	ItemsIndexed         prometheus.Gauge
	BuildDurationSeconds prometheus.Histogram
	GroupsTotal          prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with every metric initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.init()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
