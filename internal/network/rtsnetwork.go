// Package network's RTSNetwork driver mirrors internal/rts's RTS for a
// composed system of automata, per spec.md §4.4.
//
// Grounded on original_source/TARZAN/regions/networkOfTA/RTSNetwork.cpp's
// forwardReachability: the worklist/visited-set loop, "insert delay
// successor before discrete successors", and the per-component urgency
// check before computing a delay step are ported directly from it.
//
// RTSNetwork.cpp carries no backward/predecessor logic at all — the
// original implementation only explores networks forward; backward
// verification (spec.md §8's worked backward examples) always targets a
// single automaton via internal/rts. This package follows that lead rather
// than inventing an unmodeled network-level predecessor operator; see
// DESIGN.md.
package network

import (
	"time"

	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/region"
)

// Strategy selects which end of the worklist RTSNetwork dequeues from.
type Strategy int

const (
	BFS Strategy = iota
	DFS
)

// RTSNetwork precomputes everything forward reachability needs: the
// components' derived indices, their per-clock max constants, and the
// cartesian-product initial network regions.
type RTSNetwork struct {
	Components     []Component
	Symmetry       SymmetryGroups
	MaxConstant    [][]int
	InitialRegions []NetworkRegion
}

// New builds an RTSNetwork from already-indexed components.
func New(components []Component, symmetry SymmetryGroups) *RTSNetwork {
	rn := &RTSNetwork{Components: components, Symmetry: symmetry}
	rn.MaxConstant = make([][]int, len(components))
	for i, c := range components {
		rn.MaxConstant[i] = c.Index.MaxConstant
	}

	perComponentInitial := make([][]int, len(components))
	vars := map[string]int{}
	for i, c := range components {
		perComponentInitial[i] = append([]int(nil), c.Index.Initial...)
		for k, v := range c.Index.Variables {
			vars[k] = v
		}
	}

	rn.InitialRegions = buildInitialRegions(components, perComponentInitial, vars)
	return rn
}

func cloneVars(vars map[string]int) map[string]int {
	out := make(map[string]int, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}

// Result reports a network reachability run's outcome, mirroring
// rts.Result.
type Result struct {
	Reachable       bool
	Witness         *NetworkRegion
	RegionsExplored int
	Elapsed         time.Duration
	Reached         []NetworkRegion
}

type worklist struct {
	states []NetworkRegion
}

func (w *worklist) push(s NetworkRegion) { w.states = append(w.states, s) }

func (w *worklist) pop(strategy Strategy) (NetworkRegion, bool) {
	if len(w.states) == 0 {
		return NetworkRegion{}, false
	}
	if strategy == BFS {
		s := w.states[0]
		w.states = w.states[1:]
		return s, true
	}
	last := len(w.states) - 1
	s := w.states[last]
	w.states = w.states[:last]
	return s, true
}

func (w *worklist) empty() bool { return len(w.states) == 0 }

// visitedSet dedups by NetworkRegion.Hash, applied to the canonical form
// when symmetry reduction is enabled (spec.md §4.4).
type visitedSet struct {
	byHash   map[uint64][]NetworkRegion
	symmetry SymmetryGroups
}

func newVisitedSet(symmetry SymmetryGroups) *visitedSet {
	return &visitedSet{byHash: make(map[uint64][]NetworkRegion), symmetry: symmetry}
}

func (v *visitedSet) canonical(nr NetworkRegion) NetworkRegion {
	if len(v.symmetry) == 0 {
		return nr
	}
	c, _ := v.symmetry.Canonicalize(nr)
	return c
}

func (v *visitedSet) contains(nr NetworkRegion) bool {
	c := v.canonical(nr)
	for _, seen := range v.byHash[c.Hash()] {
		if seen.Equal(c) {
			return true
		}
	}
	return false
}

func (v *visitedSet) add(nr NetworkRegion) {
	c := v.canonical(nr)
	v.byHash[c.Hash()] = append(v.byHash[c.Hash()], c)
}

// buildInitialRegions is the cartesian product of per-component initial
// locations (spec.md §4.4 "the cartesian product of per-component initial
// locations, with global initial integer-variable values").
func buildInitialRegions(components []Component, perComponentInitial [][]int, vars map[string]int) []NetworkRegion {
	locCombos := cartesianLocations(perComponentInitial)
	out := make([]NetworkRegion, 0, len(locCombos))
	for _, combo := range locCombos {
		regions := make([]region.Region, len(components))
		for i, q := range combo {
			regions[i] = region.NewInitial(len(components[i].Index.ClockNames), q)
		}
		// Every component starts in its initial region, so every component
		// starts in class A (NetworkRegion.h's constructor: "If every region
		// is initial, they must all belong to class A").
		classAorC := bitset.New(len(components))
		for i := range components {
			classAorC.Set(i)
		}
		out = append(out, NetworkRegion{
			Regions:   regions,
			ClassAorC: classAorC,
			Vars:      cloneVars(vars),
		})
	}
	return out
}

// cartesianLocations is the n-ary cartesian product of per-component
// candidate location lists.
func cartesianLocations(lists [][]int) [][]int {
	result := [][]int{{}}
	for _, opts := range lists {
		next := make([][]int, 0, len(result)*len(opts))
		for _, combo := range result {
			for _, o := range opts {
				nc := make([]int, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = o
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}
