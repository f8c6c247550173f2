package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLinkerMetrics() {
	r.HalosLinkedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_halos_linked_total",
			Help: "Halos that were successfully attached to a merger tree via at least one linked subhalo.",
		},
	)

	r.HalosPrunedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_halos_pruned_total",
			Help: "Halos dropped from the id index during linking, by reason.",
		},
		[]string{"reason"}, // missing_descendant_halo, no_subhalo_linked
	)

	r.SubhalosLinkedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_subhalos_linked_total",
			Help: "Subhalos successfully resolved to a descendant subhalo.",
		},
	)

	r.SubhalosSkippedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_subhalos_skipped_total",
			Help: "Subhalos removed from their host halo without being linked, by reason.",
		},
		[]string{"reason"}, // no_descendant_flag, missing_descendant_subhalo
	)

	r.LinkerDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shark_treebuilder_linker_duration_seconds",
			Help:    "Duration of the serial linking pass.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
	)
}
