// Package graphcheck provides invariant checkers over the halo/subhalo
// graph, used by tests to confirm the DAG, self-containment, and
// single-central-per-halo properties the builder is responsible for.
package graphcheck

import "github.com/LBJ-Wade/shark/pkg/halo"

// IsDAG reports whether the descendant edges among halos form a
// directed acyclic graph, using Kahn's algorithm over the
// halo-descendant relation. The snapshot-oriented construction makes
// cycles impossible by construction, so this is a belt-and-braces
// check rather than a load-bearing one.
func IsDAG(halos []*halo.Halo) bool {
	inDegree := make(map[*halo.Halo]int, len(halos))
	for _, h := range halos {
		if _, ok := inDegree[h]; !ok {
			inDegree[h] = 0
		}
		if h.Descendant != nil {
			inDegree[h.Descendant]++
		}
	}

	queue := make([]*halo.Halo, 0, len(halos))
	for _, h := range halos {
		if inDegree[h] == 0 {
			queue = append(queue, h)
		}
	}

	visited := 0
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		visited++

		if h.Descendant == nil {
			continue
		}
		inDegree[h.Descendant]--
		if inDegree[h.Descendant] == 0 {
			queue = append(queue, h.Descendant)
		}
	}

	return visited == len(halos)
}

// IsSelfContained reports whether every halo bucketed under t actually
// refers back to t.
func IsSelfContained(t *halo.MergerTree) bool {
	for _, halos := range t.HalosBySnapshot {
		for _, h := range halos {
			if h.Tree != t {
				return false
			}
		}
	}
	return true
}

// SingleCentralPerHalo reports whether every halo in t has exactly one
// CENTRAL subhalo.
func SingleCentralPerHalo(t *halo.MergerTree) bool {
	for _, halos := range t.HalosBySnapshot {
		for _, h := range halos {
			count := 0
			for _, sub := range h.Subhalos() {
				if sub.SubhaloType == halo.Central {
					count++
				}
			}
			if count != 1 {
				return false
			}
		}
	}
	return true
}

// NoDoubleDescendants reports whether no subhalo among halos appears in
// the ascendant lists of two different descendant subhalos, i.e. it
// returns false as soon as some subhalo has been claimed by more than
// one descendant (the data model only allows a single pointer, so this
// also catches accidental overwrites during testing of the linker in
// isolation).
func NoDoubleDescendants(halos []*halo.Halo) bool {
	seen := make(map[*halo.Subhalo]*halo.Subhalo)
	for _, h := range halos {
		for _, sub := range h.Subhalos() {
			for _, asc := range sub.Ascendants {
				if prior, ok := seen[asc]; ok && prior != sub {
					return false
				}
				seen[asc] = sub
			}
		}
	}
	return true
}
