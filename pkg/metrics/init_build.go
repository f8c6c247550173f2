package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBuildMetrics() {
	r.BuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_builds_total",
			Help: "Total number of build_trees invocations, partitioned by outcome.",
		},
		[]string{"result"}, // ok, invalid_data, invalid_argument, subhalo_not_found
	)

	r.BuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shark_treebuilder_build_duration_seconds",
			Help:    "Wall-clock duration of a full build_trees call.",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"result"},
	)

	r.BuildsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "shark_treebuilder_builds_in_flight",
			Help: "Number of build_trees calls currently executing (0 or 1; builds are not reentrant).",
		},
	)

	r.TreesBuilt = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "shark_treebuilder_trees_total",
			Help: "Number of merger trees produced by the last successful build.",
		},
	)
}
