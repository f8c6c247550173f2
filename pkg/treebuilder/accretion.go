package treebuilder

import (
	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/metrics"
	"github.com/LBJ-Wade/shark/pkg/parallel"
	"github.com/LBJ-Wade/shark/pkg/physics"
)

// computeAccretion runs both phases of accretion. Phase A computes
// each halo's central-subhalo accreted_mass from its ascendants' Mvir;
// it is safe to parallelize across trees and snapshots since each halo
// only reads its own ascendants. Phase B is strictly serial on
// snapshot: it accumulates a running total into the global baryon
// accumulator.
func computeAccretion(pool *parallel.WorkerPool, trees []*halo.MergerTree, minSnapshot, maxSnapshot halo.Snapshot, cosmology physics.Cosmology, allBaryons *physics.AllBaryons, reg *metrics.Registry) error {
	fb := cosmology.UniversalBaryonFraction()

	if err := parallel.RunAndWait(pool, trees, func(t *halo.MergerTree) error {
		for _, halos := range t.HalosBySnapshot {
			for _, h := range halos {
				computeHaloAccretion(h, fb, reg)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	runningTotal := 0.0
	for s := minSnapshot; s <= maxSnapshot; s++ {
		snapshotTotal := 0.0
		for _, t := range trees {
			for _, h := range t.HalosBySnapshot[s] {
				if h.CentralSubhalo != nil {
					snapshotTotal += h.CentralSubhalo.AccretedMass
				}
			}
		}
		runningTotal += snapshotTotal
		allBaryons.BaryonTotalCreated[s] = runningTotal
		if reg != nil {
			reg.SetBaryonTotalCreated(runningTotal)
		}
	}

	return nil
}

func computeHaloAccretion(h *halo.Halo, universalBaryonFraction float64, reg *metrics.Registry) {
	if h.CentralSubhalo == nil {
		return
	}

	ascendantMvir := 0.0
	for _, asc := range h.Ascendants {
		ascendantMvir += asc.Mvir
	}

	accreted := (h.Mvir - ascendantMvir) * universalBaryonFraction
	if accreted < 0 {
		accreted = 0
		if reg != nil {
			reg.NegativeAccretionClampedTotal.Inc()
		}
	}

	h.CentralSubhalo.AccretedMass = accreted
}
