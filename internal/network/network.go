// Package network implements the synchronous composition of per-component
// regions (spec.md §3 "Network region", §4.3 "NetworkRegion and
// synchronous stepping").
//
// Grounded on original_source/TARZAN/regions/networkOfTA/NetworkRegion.cpp,
// which is present up to (and including) the discrete-successor loop this
// package ports: the class-A/C delay-successor case split, the
// updateNetRegionWithDiscSucc reset/ordering maintenance helper, and the
// two-pass (non-sync, then paired-sync with output-first) discrete
// successor structure all come directly from that file.
package network

import (
	"hash/fnv"

	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/region"
)

// ClockGroup maps a component index to the bit-set of that component's
// clocks sharing one fractional value, within one ClockOrdering entry.
type ClockGroup map[int]bitset.Set

// NetworkRegion is a synchronous composition of per-component regions,
// per spec.md §3.
type NetworkRegion struct {
	Regions []region.Region
	// ClassAorC is the set of component indices whose local region
	// currently has at least one clock at zero fraction.
	ClassAorC bitset.Set
	// ClockOrdering is ordered ascending by fractional value: front is
	// smallest, back is largest.
	ClockOrdering []ClockGroup
	// Vars is the shared integer-variable store.
	Vars map[string]int
}

// NumComponents reports how many automata participate in this network.
func (nr NetworkRegion) NumComponents() int { return len(nr.Regions) }

// Clone returns a deep copy with no shared backing state.
func (nr NetworkRegion) Clone() NetworkRegion {
	out := NetworkRegion{
		Regions:   make([]region.Region, len(nr.Regions)),
		ClassAorC: nr.ClassAorC.Clone(),
		Vars:      make(map[string]int, len(nr.Vars)),
	}
	for i, r := range nr.Regions {
		out.Regions[i] = r.Clone()
	}
	for k, v := range nr.Vars {
		out.Vars[k] = v
	}
	if nr.ClockOrdering != nil {
		out.ClockOrdering = make([]ClockGroup, len(nr.ClockOrdering))
		for i, g := range nr.ClockOrdering {
			cg := make(ClockGroup, len(g))
			for k, v := range g {
				cg[k] = v.Clone()
			}
			out.ClockOrdering[i] = cg
		}
	}
	return out
}

// Equal reports whether nr and other describe the same composite state.
func (nr NetworkRegion) Equal(other NetworkRegion) bool {
	if len(nr.Regions) != len(other.Regions) {
		return false
	}
	for i := range nr.Regions {
		if !nr.Regions[i].Equal(other.Regions[i]) {
			return false
		}
	}
	if !nr.ClassAorC.Equal(other.ClassAorC) {
		return false
	}
	if len(nr.ClockOrdering) != len(other.ClockOrdering) {
		return false
	}
	for i := range nr.ClockOrdering {
		if !clockGroupEqual(nr.ClockOrdering[i], other.ClockOrdering[i]) {
			return false
		}
	}
	if len(nr.Vars) != len(other.Vars) {
		return false
	}
	for k, v := range nr.Vars {
		if other.Vars[k] != v {
			return false
		}
	}
	return true
}

func clockGroupEqual(a, b ClockGroup) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Hash combines the component regions, ClassAorC and ClockOrdering (every
// field Equal compares except Vars, which is not hashed), for use as the
// network RTS's visited-set key (spec.md §4.4 "The visited set uses the
// network region's hash, applied to the canonical form when symmetry
// reduction is enabled.").
func (nr NetworkRegion) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeUint := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, r := range nr.Regions {
		writeUint(r.Hash())
	}
	writeUint(nr.ClassAorC.Hash())
	for _, g := range nr.ClockOrdering {
		for _, k := range sortedKeys(g) {
			writeUint(uint64(k))
			writeUint(g[k].Hash())
		}
	}
	return h.Sum64()
}

func sortedKeys(g ClockGroup) []int {
	keys := make([]int, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
