// Package physics holds the narrow external interfaces the builder
// consumes from collaborators it does not own: cosmology and the
// global baryon accumulator.
package physics

import "github.com/LBJ-Wade/shark/pkg/halo"

// Cosmology supplies the scalar cosmological quantities the accretion
// calculator needs. The concrete implementation lives outside this
// module; this is the entire surface the builder requires of it.
type Cosmology interface {
	UniversalBaryonFraction() float64
}

// AllBaryons is the global per-snapshot baryon accumulator written by
// accretion Phase B.
type AllBaryons struct {
	BaryonTotalCreated map[halo.Snapshot]float64
}

// NewAllBaryons returns a zero-filled accumulator spanning
// [minSnapshot, maxSnapshot] inclusive, matching the orchestrator's
// responsibility to zero-fill before Phase B runs.
func NewAllBaryons(minSnapshot, maxSnapshot halo.Snapshot) *AllBaryons {
	m := make(map[halo.Snapshot]float64, int(maxSnapshot-minSnapshot)+1)
	for s := minSnapshot; s <= maxSnapshot; s++ {
		m[s] = 0
	}
	return &AllBaryons{BaryonTotalCreated: m}
}
