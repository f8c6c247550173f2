package metrics

import (
	"time"
)

// RecordBuild records the outcome and duration of a full build_trees call.
func (r *Registry) RecordBuild(result string, duration time.Duration) {
	r.BuildsTotal.WithLabelValues(result).Inc()
	r.BuildDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordHaloPruned records a halo dropped from the id index during linking.
func (r *Registry) RecordHaloPruned(reason string) {
	r.HalosPrunedTotal.WithLabelValues(reason).Inc()
}

// RecordSubhaloSkipped records a subhalo removed from its host without linking.
func (r *Registry) RecordSubhaloSkipped(reason string) {
	r.SubhalosSkippedTotal.WithLabelValues(reason).Inc()
}

// SetTreesBuilt records the number of trees produced by the last build.
func (r *Registry) SetTreesBuilt(n int) {
	r.TreesBuilt.Set(float64(n))
}

// SetBaryonTotalCreated records the running baryon total as of the latest
// snapshot processed by accretion Phase B.
func (r *Registry) SetBaryonTotalCreated(total float64) {
	r.BaryonTotalCreated.Set(total)
}

// SetGoRoutines records the number of live goroutines observed at a
// build lifecycle boundary.
func (r *Registry) SetGoRoutines(n int) {
	r.GoRoutines.Set(float64(n))
}

// SetMemoryAllocBytes records heap bytes allocated as of a build
// lifecycle boundary.
func (r *Registry) SetMemoryAllocBytes(bytes uint64) {
	r.MemoryAllocBytes.Set(float64(bytes))
}

// RecordWorkerPanic records a panic recovered from a task submitted
// directly to the worker pool via Submit; panics inside RunAndWait tasks
// become returned errors and are not counted here.
func (r *Registry) RecordWorkerPanic() {
	r.WorkerPanicsTotal.Inc()
}
