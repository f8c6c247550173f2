package treebuilder

import (
	"sort"

	"github.com/LBJ-Wade/shark/pkg/errs"
	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/logging"
	"github.com/LBJ-Wade/shark/pkg/metrics"
)

// linkHalos resolves every subhalo's nominal descendant reference into
// concrete halo/subhalo edges and propagates tree membership backward
// to progenitors. Serial: it mutates the shared halo-by-id index as it
// prunes unreachable halos.
func linkHalos(halos []*halo.Halo, skipMissingDescendants, warnOnMissingDescendants bool, reg *metrics.Registry, logger logging.Logger) error {
	halosBySnapshot := make(map[halo.Snapshot][]*halo.Halo)
	idIndex := make(map[halo.Id]*halo.Halo, len(halos))
	snapshotSet := make(map[halo.Snapshot]bool)

	for _, h := range halos {
		halosBySnapshot[h.Snapshot] = append(halosBySnapshot[h.Snapshot], h)
		idIndex[h.ID] = h
		snapshotSet[h.Snapshot] = true
	}

	snapshots := make([]halo.Snapshot, 0, len(snapshotSet))
	for s := range snapshotSet {
		snapshots = append(snapshots, s)
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i] > snapshots[j] })
	if len(snapshots) > 0 {
		snapshots = snapshots[1:] // the largest is the terminal snapshot, seeded already
	}

	for _, ss := range snapshots {
		for _, h := range halosBySnapshot[ss] {
			if err := linkHaloSubhalos(h, idIndex, skipMissingDescendants, warnOnMissingDescendants, reg, logger); err != nil {
				return err
			}
		}
	}

	return nil
}

func linkHaloSubhalos(h *halo.Halo, idIndex map[halo.Id]*halo.Halo, skipMissingDescendants, warnOnMissingDescendants bool, reg *metrics.Registry, logger logging.Logger) error {
	linked := false

	for _, sub := range h.Subhalos() {
		if !sub.HasDescendant {
			h.RemoveSatellite(sub)
			if reg != nil {
				reg.RecordSubhaloSkipped("no_descendant_flag")
			}
			continue
		}

		descHalo, ok := idIndex[sub.DescendantHaloID]
		if !ok {
			delete(idIndex, h.ID)
			if reg != nil {
				reg.RecordHaloPruned("missing_descendant_halo")
			}
			return nil
		}

		var descSub *halo.Subhalo
		for _, ds := range descHalo.Subhalos() {
			if ds.ID == sub.DescendantID {
				descSub = ds
				break
			}
		}

		if descSub != nil {
			if descSub.Snapshot != sub.Snapshot+1 {
				return errs.InvalidData("linker.linkHaloSubhalos").
					Halo(int64(h.ID)).Subhalo(int64(sub.ID)).Snapshot(int(sub.Snapshot)).
					Msg("descendant subhalo %d is at snapshot %d, not %d+1", descSub.ID, descSub.Snapshot, sub.Snapshot).Err()
			}
			if err := link(sub, descSub, h, descHalo); err != nil {
				return err
			}
			if reg != nil {
				if !linked {
					reg.HalosLinkedTotal.Inc()
				}
				reg.SubhalosLinkedTotal.Inc()
			}
			linked = true
			continue
		}

		if !skipMissingDescendants {
			return errs.SubhaloNotFoundErr("linker.linkHaloSubhalos").
				Halo(int64(h.ID)).Subhalo(int64(sub.ID)).
				MissingDescendant(int64(sub.DescendantID)).
				Msg("subhalo %d names descendant_id %d in halo %d which was not found", sub.ID, sub.DescendantID, descHalo.ID).Err()
		}
		if warnOnMissingDescendants {
			logger.Warn("skipping subhalo with missing descendant",
				logging.HaloID(int64(h.ID)), logging.SubhaloID(int64(sub.ID)),
				logging.Int64("descendant_id", int64(sub.DescendantID)))
		}
		h.RemoveSatellite(sub)
		if reg != nil {
			reg.RecordSubhaloSkipped("missing_descendant_subhalo")
		}
	}

	if !linked {
		delete(idIndex, h.ID)
		if reg != nil {
			reg.RecordHaloPruned("no_subhalo_linked")
		}
	}

	return nil
}

// link installs the bidirectional ascendant/descendant edges between a
// progenitor subhalo/halo pair and their resolved descendants, and
// propagates tree membership backward.
func link(parentSub, descSub *halo.Subhalo, parentHalo, descHalo *halo.Halo) error {
	descSub.Ascendants = append(descSub.Ascendants, parentSub)

	if parentSub.Descendant != nil {
		return errs.InvalidData("linker.link").
			Subhalo(int64(parentSub.ID)).
			Msg("subhalo %d already has a descendant assigned", parentSub.ID).Err()
	}
	parentSub.Descendant = descSub

	novel := descHalo.AddAscendant(parentHalo)

	if parentHalo.Descendant != nil && parentHalo.Descendant != descHalo {
		return errs.InvalidData("linker.link").
			Halo(int64(parentHalo.ID)).
			Msg("halo %d already has a different descendant assigned", parentHalo.ID).Err()
	}
	parentHalo.Descendant = descHalo

	if descHalo.Tree == nil {
		return errs.InvalidData("linker.link").
			Halo(int64(descHalo.ID)).
			Msg("descendant halo %d has no tree assigned; descendants must be linked before their progenitors", descHalo.ID).Err()
	}

	parentHalo.Tree = descHalo.Tree
	if novel {
		descHalo.Tree.HalosBySnapshot[parentHalo.Snapshot] = append(descHalo.Tree.HalosBySnapshot[parentHalo.Snapshot], parentHalo)
	}

	return nil
}
