package treebuilder

import (
	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/metrics"
	"github.com/LBJ-Wade/shark/pkg/parallel"
)

// enforceMassGrowth walks each tree ascending from minSnapshot to
// maxSnapshot-1, overwriting a descendant halo's Mvir whenever a
// progenitor is heavier. Parallelizable across trees; not
// parallelizable across snapshots within a tree, since each step reads
// the descendant written by the previous one.
func enforceMassGrowth(pool *parallel.WorkerPool, trees []*halo.MergerTree, minSnapshot, maxSnapshot halo.Snapshot, reg *metrics.Registry) error {
	return parallel.RunAndWait(pool, trees, func(t *halo.MergerTree) error {
		for s := minSnapshot; s < maxSnapshot; s++ {
			for _, h := range t.HalosBySnapshot[s] {
				if h.Descendant == nil {
					continue
				}
				if h.Mvir > h.Descendant.Mvir {
					h.Descendant.Mvir = h.Mvir
					if reg != nil {
						reg.MassGrowthCorrectionsTotal.Inc()
					}
				}
			}
		}
		return nil
	})
}
