// Package rts drives forward and backward reachability exploration of a
// single automaton's region transition system, per spec.md §4.2.
//
// Grounded on original_source/TARZAN/regions/RTS.cpp, which is fully
// present (unlike Region.h/.cpp): the worklist/visited-set loop, the
// insert-with-invariant-check helper, the delay-successor-before-discrete-
// successors insertion order, and the termination tests are ported directly
// from its forwardReachability/backwardReachability bodies.
package rts

import (
	"time"

	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/region"
)

// Strategy selects which end of the worklist the driver dequeues from.
type Strategy int

const (
	// BFS dequeues from the front — shortest-path-first exploration.
	BFS Strategy = iota
	// DFS dequeues from the back — depth-first exploration.
	DFS
)

// RTS precomputes everything forward/backward reachability needs from a
// parsed automaton: the derived index plus the initial regions (spec.md
// §4.2 "one per initial location, with all clocks in x0 and zero integer
// parts").
type RTS struct {
	Index          *automaton.Index
	InitialRegions []region.Region
}

// New builds an RTS from an already-computed automaton.Index.
func New(idx *automaton.Index) *RTS {
	r := &RTS{Index: idx}
	for _, q := range idx.Initial {
		r.InitialRegions = append(r.InitialRegions, region.NewInitial(len(idx.ClockNames), q))
	}
	return r
}

// Result reports a reachability run's outcome, per spec.md §4.2 "Reports:
// number of regions computed, elapsed time, and witness region on success."
type Result struct {
	Reachable       bool
	Witness         *region.Region
	RegionsExplored int
	Elapsed         time.Duration
	// Reached is populated only when the driving Goal has ExploreAll set:
	// every region visited during the run, in discovery order.
	Reached []region.Region
}

// worklist is a double-ended queue of (region, variable-store) pairs. Front
// pops serve BFS, back pops serve DFS, mirroring RTS.cpp's std::deque use.
type worklist struct {
	states []state
}

type state struct {
	Region region.Region
	Vars   map[string]int
}

func (w *worklist) push(s state) { w.states = append(w.states, s) }

func (w *worklist) pop(strategy Strategy) (state, bool) {
	if len(w.states) == 0 {
		return state{}, false
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

// visitedSet deduplicates by Region.Hash, per spec.md §4.1 "Equality and
// hashing" (variable-store state is never part of region identity —
// spec.md §9 restricts integer-variable handling).
type visitedSet struct {
	byHash map[uint64][]region.Region
}

func newVisitedSet() *visitedSet {
	return &visitedSet{byHash: make(map[uint64][]region.Region)}
}

func (v *visitedSet) contains(r region.Region) bool {
	for _, seen := range v.byHash[r.Hash()] {
		if seen.Equal(r) {
			return true
		}
	}
	return false
}

func (v *visitedSet) add(r region.Region) {
	h := r.Hash()
	v.byHash[h] = append(v.byHash[h], r)
}

func cloneVars(vars map[string]int) map[string]int {
	out := make(map[string]int, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}
