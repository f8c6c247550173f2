package treebuilder

import (
	"github.com/LBJ-Wade/shark/pkg/errs"
	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/parallel"
)

// verifySelfContainment confirms every halo reachable from a tree
// belongs to that tree. Parallelizable across trees.
func verifySelfContainment(pool *parallel.WorkerPool, trees []*halo.MergerTree) error {
	return parallel.RunAndWait(pool, trees, func(t *halo.MergerTree) error {
		for snapshot, halos := range t.HalosBySnapshot {
			for _, h := range halos {
				if h.Tree != t {
					return errs.InvalidData("verifier.verifySelfContainment").
						Halo(int64(h.ID)).Snapshot(int(snapshot)).
						Msg("halo %d claims tree %d but is bucketed under tree %d", h.ID, treeID(h.Tree), t.ID).Err()
				}
			}
		}
		return nil
	})
}

func treeID(t *halo.MergerTree) int {
	if t == nil {
		return -1
	}
	return t.ID
}
