package network

import (
	"fmt"
	"sort"

	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/region"
)

// SymmetryGroups declares which component indices are interchangeable, per
// spec.md §4.3 "Canonical form under symmetry groups". Groups must be
// pairwise disjoint; spec.md §9 rejects overlapping declarations outright
// rather than guessing a resolution.
type SymmetryGroups []bitset.Set

// NewSymmetryGroups validates that groups are pairwise disjoint over a
// network of numComponents components.
func NewSymmetryGroups(groups []bitset.Set, numComponents int) (SymmetryGroups, error) {
	seen := bitset.New(numComponents)
	for _, g := range groups {
		if !seen.Disjoint(g) {
			return nil, fmt.Errorf("network: overlapping symmetry groups declared over component set %v", g.Slice())
		}
		seen = seen.Or(g)
	}
	return SymmetryGroups(groups), nil
}

// Canonicalize relabels each symmetry group's component slots so that the
// slot with the smallest original index always holds the least region under
// compareRegions, the next-smallest slot the next-least region, and so on.
// Two network regions that differ only by a permutation within a declared
// group canonicalize to the same NetworkRegion, and so hash and compare
// equal — the mechanism spec.md §4.4 relies on to fold symmetric states
// together in the visited set.
//
// It returns the canonicalized region together with the permutation applied
// (old component index -> new component index), so callers can re-apply it
// to anything else keyed by component index (e.g. a per-component goal).
func (sg SymmetryGroups) Canonicalize(nr NetworkRegion) (NetworkRegion, map[int]int) {
	out := nr.Clone()
	perm := make(map[int]int, nr.NumComponents())
	for i := range nr.Regions {
		perm[i] = i
	}

	for _, g := range sg {
		members := g.Slice()
		if len(members) < 2 {
			continue
		}
		type occupant struct {
			oldIdx int
			r      region.Region
		}
		occupants := make([]occupant, len(members))
		for k, idx := range members {
			occupants[k] = occupant{oldIdx: idx, r: nr.Regions[idx]}
		}
		sort.SliceStable(occupants, func(a, b int) bool {
			return compareRegions(occupants[a].r, occupants[b].r) < 0
		})
		for slot, occ := range occupants {
			out.Regions[members[slot]] = occ.r.Clone()
			perm[occ.oldIdx] = members[slot]
		}
	}

	relabelClassAorC(&out, nr, perm)
	relabelClockOrdering(&out, nr, perm)
	return out, perm
}

func relabelClassAorC(out *NetworkRegion, nr NetworkRegion, perm map[int]int) {
	relabeled := bitset.New(nr.ClassAorC.Len())
	for _, i := range nr.ClassAorC.Slice() {
		relabeled.Set(perm[i])
	}
	out.ClassAorC = relabeled
}

func relabelClockOrdering(out *NetworkRegion, nr NetworkRegion, perm map[int]int) {
	relabeled := make([]ClockGroup, len(nr.ClockOrdering))
	for gi, group := range nr.ClockOrdering {
		ng := make(ClockGroup, len(group))
		for i, clocks := range group {
			ng[perm[i]] = clocks.Clone()
		}
		relabeled[gi] = ng
	}
	out.ClockOrdering = relabeled
}

// compareRegions is a total order over regions, used only to pick a
// canonical representative among symmetric components — it carries no
// semantic meaning beyond "is reproducible and total".
func compareRegions(a, b region.Region) int {
	if a.Q != b.Q {
		return a.Q - b.Q
	}
	if c := compareIntSlices(a.H, b.H); c != 0 {
		return c
	}
	if c := compareBitset(a.X0, b.X0); c != 0 {
		return c
	}
	if c := compareGroupSlices(a.Bounded, b.Bounded); c != 0 {
		return c
	}
	return compareGroupSlices(a.Unbounded, b.Unbounded)
}

func compareIntSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return len(a) - len(b)
}

func compareBitset(a, b bitset.Set) int {
	as, bs := a.Slice(), b.Slice()
	return compareIntSlices(as, bs)
}

func compareGroupSlices(a, b []bitset.Set) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareBitset(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
