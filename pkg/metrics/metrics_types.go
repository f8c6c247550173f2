package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics emitted by the merger-tree builder.
type Registry struct {
	// Build lifecycle
	BuildsTotal    *prometheus.CounterVec
	BuildDuration  *prometheus.HistogramVec
	BuildsInFlight prometheus.Gauge
	TreesBuilt     prometheus.Gauge

	// Linker
	HalosLinkedTotal     prometheus.Counter
	HalosPrunedTotal     *prometheus.CounterVec
	SubhalosLinkedTotal  prometheus.Counter
	SubhalosSkippedTotal *prometheus.CounterVec
	LinkerDuration       prometheus.Histogram

	// Central subhalo definer
	CentralPromotionsTotal   prometheus.Counter
	MainProgenitorGuessTotal prometheus.Counter
	CentralDefinerDuration   prometheus.Histogram

	// Mass-growth enforcer
	MassGrowthCorrectionsTotal prometheus.Counter

	// Accretion
	NegativeAccretionClampedTotal prometheus.Counter
	BaryonTotalCreated            prometheus.Gauge

	// System
	GoRoutines        prometheus.Gauge
	MemoryAllocBytes  prometheus.Gauge
	WorkerPanicsTotal prometheus.Counter

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// defaultRegistry is the process-wide metrics registry.
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry, creating it on first use.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
// against a fresh, isolated prometheus.Registry (safe for use in tests).
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initBuildMetrics()
	r.initLinkerMetrics()
	r.initCentralMetrics()
	r.initAccretionMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry, e.g. for
// wiring into an HTTP /metrics handler.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
