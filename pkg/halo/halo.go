// Package halo defines the entity model the merger-tree builder
// operates on: halos, subhalos, and merger trees, linked by
// ascendant/descendant edges oriented by snapshot.
package halo

import "fmt"

// Id is a simulation-wide unique halo identifier.
type Id int64

// SubhaloId is a simulation-wide unique subhalo identifier.
type SubhaloId int64

// Snapshot is a time-slice index; larger values are later cosmic times.
type Snapshot int

func (s Snapshot) String() string {
	return fmt.Sprintf("snapshot:%d", int(s))
}

// SubhaloType classifies a subhalo's role within its host halo.
type SubhaloType int

const (
	Satellite SubhaloType = iota
	Central
)

func (t SubhaloType) String() string {
	switch t {
	case Central:
		return "CENTRAL"
	case Satellite:
		return "SATELLITE"
	default:
		return "UNKNOWN"
	}
}

// Vec3 is a 3-component physical vector (position, velocity).
type Vec3 struct {
	X, Y, Z float64
}

// Halo is a dark-matter structure at a single snapshot.
type Halo struct {
	ID       Id
	Snapshot Snapshot

	Mvir         float64
	Vvir         float64
	Position     Vec3
	Velocity     Vec3
	Concentration float64
	Lambda       float64

	CentralSubhalo   *Subhalo
	SatelliteSubhalos []*Subhalo

	// Ascendants holds earlier-snapshot halos that link into this one,
	// de-duplicated by the linker.
	Ascendants []*Halo
	Descendant *Halo

	Tree *MergerTree
}

// Subhalos returns every subhalo hosted by h: the central (if set)
// followed by the satellites, matching the original's iteration order
// (central first) when walking a halo's full subhalo population.
func (h *Halo) Subhalos() []*Subhalo {
	subs := make([]*Subhalo, 0, len(h.SatelliteSubhalos)+1)
	if h.CentralSubhalo != nil {
		subs = append(subs, h.CentralSubhalo)
	}
	subs = append(subs, h.SatelliteSubhalos...)
	return subs
}

// RemoveSatellite removes sub from h's satellite list. Returns false if
// sub was not present.
func (h *Halo) RemoveSatellite(sub *Subhalo) bool {
	for i, s := range h.SatelliteSubhalos {
		if s == sub {
			h.SatelliteSubhalos = append(h.SatelliteSubhalos[:i], h.SatelliteSubhalos[i+1:]...)
			return true
		}
	}
	return false
}

// AddAscendant inserts asc into h's ascendant set if not already
// present. Returns true if the insertion was novel.
func (h *Halo) AddAscendant(asc *Halo) bool {
	for _, a := range h.Ascendants {
		if a == asc {
			return false
		}
	}
	h.Ascendants = append(h.Ascendants, asc)
	return true
}

// Subhalo is a gravitationally bound substructure within a halo.
type Subhalo struct {
	ID       SubhaloId
	Snapshot Snapshot
	Host     *Halo

	Mvir          float64
	Vvir          float64
	Position      Vec3
	Velocity      Vec3
	AngularMomentum Vec3
	Concentration float64
	Lambda        float64

	HasDescendant   bool
	MainProgenitor  bool
	IsInterpolated  bool
	DescendantHaloID Id
	DescendantID     SubhaloId

	SubhaloType            SubhaloType
	LastSnapshotIdentified Snapshot

	Ascendants []*Subhalo
	Descendant *Subhalo

	AccretedMass float64
}

// MergerTree is the connected subgraph of halos linked by descendant
// edges back from a single terminal-snapshot halo.
type MergerTree struct {
	ID int

	// HalosBySnapshot is insertion-ordered per snapshot.
	HalosBySnapshot map[Snapshot][]*Halo
}

// NewMergerTree creates an empty tree with the given id.
func NewMergerTree(id int) *MergerTree {
	return &MergerTree{
		ID:              id,
		HalosBySnapshot: make(map[Snapshot][]*Halo),
	}
}

// AddHalo attaches h to the tree's snapshot mapping and sets h.Tree.
func (t *MergerTree) AddHalo(h *Halo) {
	h.Tree = t
	t.HalosBySnapshot[h.Snapshot] = append(t.HalosBySnapshot[h.Snapshot], h)
}

// Halos returns every halo in the tree across all snapshots.
func (t *MergerTree) Halos() []*Halo {
	total := 0
	for _, hs := range t.HalosBySnapshot {
		total += len(hs)
	}
	out := make([]*Halo, 0, total)
	for _, hs := range t.HalosBySnapshot {
		out = append(out, hs...)
	}
	return out
}
