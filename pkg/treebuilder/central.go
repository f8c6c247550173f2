package treebuilder

import (
	"github.com/LBJ-Wade/shark/pkg/errs"
	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/logging"
	"github.com/LBJ-Wade/shark/pkg/metrics"
	"github.com/LBJ-Wade/shark/pkg/parallel"
)

// defineCentralSubhalos runs both passes of central-subhalo
// definition: promotion (Pass 1) and validation (Pass 2). Both passes
// are parallelizable across trees.
func defineCentralSubhalos(pool *parallel.WorkerPool, trees []*halo.MergerTree, minSnapshot, maxSnapshot halo.Snapshot, reg *metrics.Registry, logger logging.Logger) error {
	if err := parallel.RunAndWait(pool, trees, func(t *halo.MergerTree) error {
		return promoteCentralsForTree(t, minSnapshot, maxSnapshot, reg, logger)
	}); err != nil {
		return err
	}

	return parallel.RunAndWait(pool, trees, func(t *halo.MergerTree) error {
		return validateCentralsForTree(t, minSnapshot, maxSnapshot)
	})
}

// promoteCentralsForTree is Pass 1. Snapshot order within a tree is a
// correctness requirement: the algorithm assumes the descendant branch
// has already been promoted before its progenitors are visited.
func promoteCentralsForTree(t *halo.MergerTree, minSnapshot, maxSnapshot halo.Snapshot, reg *metrics.Registry, logger logging.Logger) error {
	for s := maxSnapshot; s >= minSnapshot; s-- {
		for _, h := range t.HalosBySnapshot[s] {
			if h.CentralSubhalo != nil {
				continue
			}
			subs := h.Subhalos()
			if len(subs) == 0 {
				continue
			}
			if err := defineCentralSubhalo(h, subs[0]); err != nil {
				return err
			}
			if reg != nil {
				reg.CentralPromotionsTotal.Inc()
			}
			if err := walkMainProgenitorBranch(h.CentralSubhalo, reg, logger); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkMainProgenitorBranch follows a subhalo's main-progenitor
// ascendant backward in time, promoting each ascendant halo's main
// progenitor to central, until it reaches a halo that already has a
// central subhalo or runs out of ascendants.
func walkMainProgenitorBranch(sub *halo.Subhalo, reg *metrics.Registry, logger logging.Logger) error {
	current := sub
	for {
		if len(current.Ascendants) == 0 {
			return nil
		}

		mainProgenitor := findMainProgenitor(current.Ascendants)
		if mainProgenitor == nil {
			mainProgenitor = mostMassiveAscendant(current.Ascendants)
			mainProgenitor.MainProgenitor = true
			if reg != nil {
				reg.MainProgenitorGuessTotal.Inc()
			}
			logger.Warn("no ascendant flagged main_progenitor; auto-selected by Mvir",
				logging.HaloID(int64(mainProgenitor.Host.ID)),
				logging.SubhaloID(int64(current.ID)),
				logging.Int64("main_progenitor_id", int64(mainProgenitor.ID)))
		}

		ascendantHalo := mainProgenitor.Host
		if ascendantHalo.CentralSubhalo != nil {
			return nil
		}

		if err := defineCentralSubhalo(ascendantHalo, mainProgenitor); err != nil {
			return err
		}
		if reg != nil {
			reg.CentralPromotionsTotal.Inc()
		}

		for _, asc := range current.Ascendants {
			if asc != mainProgenitor {
				asc.LastSnapshotIdentified = asc.Snapshot
			}
		}

		current = mainProgenitor
	}
}

func findMainProgenitor(ascendants []*halo.Subhalo) *halo.Subhalo {
	for _, a := range ascendants {
		if a.MainProgenitor {
			return a
		}
	}
	return nil
}

func mostMassiveAscendant(ascendants []*halo.Subhalo) *halo.Subhalo {
	best := ascendants[0]
	for _, a := range ascendants[1:] {
		if a.Mvir > best.Mvir {
			best = a
		}
	}
	return best
}

// defineCentralSubhalo promotes sub to central of halo h.
func defineCentralSubhalo(h *halo.Halo, sub *halo.Subhalo) error {
	h.CentralSubhalo = sub
	h.Position = sub.Position
	h.Velocity = sub.Velocity
	h.Concentration = sub.Concentration
	h.Lambda = sub.Lambda
	if h.Vvir < sub.Vvir {
		h.Vvir = sub.Vvir
	}

	if !h.RemoveSatellite(sub) {
		return errs.InvalidData("central.defineCentralSubhalo").
			Halo(int64(h.ID)).Subhalo(int64(sub.ID)).
			Msg("subhalo %d not found in halo %d's satellite list", sub.ID, h.ID).Err()
	}

	sub.SubhaloType = halo.Central
	return nil
}

// validateCentralsForTree is Pass 2. It corrects a documented defect in
// the original validation loop (see DESIGN.md): rather than a loop that
// never executes, every halo in the inclusive snapshot range
// [minSnapshot, maxSnapshot] is checked for exactly one CENTRAL
// subhalo.
func validateCentralsForTree(t *halo.MergerTree, minSnapshot, maxSnapshot halo.Snapshot) error {
	for s := minSnapshot; s <= maxSnapshot; s++ {
		for _, h := range t.HalosBySnapshot[s] {
			count := 0
			for _, sub := range h.Subhalos() {
				if sub.SubhaloType == halo.Central {
					count++
				}
			}
			if count != 1 {
				return errs.InvalidArgument("central.validateCentralsForTree").
					Halo(int64(h.ID)).Snapshot(int(s)).
					Msg("halo %d at snapshot %d has %d CENTRAL subhalos, want exactly 1", h.ID, s, count).Err()
			}
		}
	}
	return nil
}
