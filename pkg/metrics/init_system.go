package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// initSystemMetrics registers the gauges Builder.Build snapshots via
// runtime.NumGoroutine/runtime.ReadMemStats once the pipeline finishes,
// plus the counter fed by a pool.WithPanicHandler callback wired in
// Builder.build — a panic recovered from a task submitted directly via
// WorkerPool.Submit, as opposed to one raised inside a RunAndWait task,
// which is recovered into a returned error instead and never reaches here.
func (r *Registry) initSystemMetrics() {
	r.GoRoutines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "shark_treebuilder_goroutines",
			Help: "Number of goroutines observed at the last build.",
		},
	)

	r.MemoryAllocBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "shark_treebuilder_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects observed at the last build.",
		},
	)

	r.WorkerPanicsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "shark_treebuilder_worker_panics_total",
			Help: "Panics recovered from a task submitted directly to the worker pool via Submit.",
		},
	)
}
