package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAccretionMetrics() {
	r.MassGrowthCorrectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_mass_growth_corrections_total",
			Help: "Descendant halo masses overwritten because a progenitor was heavier.",
		},
	)

	r.NegativeAccretionClampedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_negative_accretion_clamped_total",
			Help: "Central subhalos whose computed accreted_mass was clamped from negative to zero.",
		},
	)

	r.BaryonTotalCreated = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "shark_treebuilder_baryon_total_created",
			Help: "Running total of baryons created, as of the last snapshot processed in Phase B.",
		},
	)
}
