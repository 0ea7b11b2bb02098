package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) init() {
	r.LinesScannedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "panacus_lines_scanned_total",
			Help: "Total number of GFA lines scanned across both passes",
		},
	)

	r.ItemsIndexed = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "panacus_items_indexed",
			Help: "Number of distinct items (nodes or edges) assigned by the indexer",
		},
	)

	r.BuildDurationSeconds = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "panacus_build_duration_seconds",
			Help:    "Wall-clock duration of the abacus builder's second pass",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	r.GroupsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "panacus_groups_total",
			Help: "Number of distinct groups resolved for this invocation",
		},
	)
}
