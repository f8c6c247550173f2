package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCentralMetrics() {
	r.CentralPromotionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_central_promotions_total",
			Help: "Subhalos promoted to CENTRAL across all trees.",
		},
	)

	r.MainProgenitorGuessTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_main_progenitor_guesses_total",
			Help: "Times a main progenitor had to be inferred from Mvir because no ascendant carried the flag.",
		},
	)

	r.CentralDefinerDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shark_treebuilder_central_definer_duration_seconds",
			Help:    "Duration of the central-subhalo definition stage (both passes).",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
	)
}
