package treebuilder

import (
	"github.com/LBJ-Wade/shark/pkg/errs"
	"github.com/LBJ-Wade/shark/pkg/halo"
)

// seedTrees creates one tree per halo at the terminal snapshot, in
// input order, and returns them. The terminal snapshot is the first
// element of outputSnapshots.
func seedTrees(halos []*halo.Halo, outputSnapshots []int) ([]*halo.MergerTree, error) {
	if len(outputSnapshots) == 0 {
		return nil, errs.InvalidData("seeder.seedTrees").
			Msg("execution parameters name no output snapshots").Err()
	}
	terminal := halo.Snapshot(outputSnapshots[0])

	var trees []*halo.MergerTree
	nextID := 0
	found := false
	for _, h := range halos {
		if h.Snapshot != terminal {
			continue
		}
		found = true
		tree := halo.NewMergerTree(nextID)
		nextID++
		tree.AddHalo(h)
		trees = append(trees, tree)
	}

	if !found {
		present := presentSnapshots(halos)
		return nil, errs.InvalidData("seeder.seedTrees").
			Snapshot(int(terminal)).
			Msg("no halo found at configured terminal snapshot %d; snapshots present in input: %v; configured output snapshots: %v",
				terminal, present, outputSnapshots).Err()
	}

	return trees, nil
}

func presentSnapshots(halos []*halo.Halo) []int {
	seen := make(map[halo.Snapshot]bool)
	var out []int
	for _, h := range halos {
		if !seen[h.Snapshot] {
			seen[h.Snapshot] = true
			out = append(out, int(h.Snapshot))
		}
	}
	return out
}
