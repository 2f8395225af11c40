package rts

import (
	"time"

	"github.com/kolkov/tarzan/internal/region"
)

// BackwardReachability explores from one or more starting regions using
// delay and discrete predecessors, per spec.md §4.2 "Backward
// reachability" / original_source RTS.cpp's backwardReachability.
// Termination tests whether every clock's integer part is zero with no
// fraction and the region's location is one of the automaton's initial
// locations.
//
// Per spec.md §9, integer-variable state plays no role here: discrete
// predecessors never attempt to invert variable assignments.
func (r *RTS) BackwardReachability(startingRegions []region.Region, strategy Strategy) Result {
	start := time.Now()
	w := &worklist{}
	visited := newVisitedSet()

	for _, sr := range startingRegions {
		w.push(state{Region: sr})
		visited.add(sr)
	}

	initialLocations := make(map[int]bool, len(r.Index.Initial))
	for _, q := range r.Index.Initial {
		initialLocations[q] = true
	}

	explored := 0

	for {
		cur, ok := w.pop(strategy)
		if !ok {
			break
		}

		if r.isInitialRegion(cur.Region, initialLocations) {
			witness := cur.Region
			return Result{Reachable: true, Witness: &witness, RegionsExplored: explored, Elapsed: time.Since(start)}
		}

		for _, dp := range region.DelayPredecessors(cur.Region, r.Index.MaxConstant) {
			explored++
			r.tryInsertBackward(w, visited, dp)
		}

		for _, tr := range r.Index.InTransitions[cur.Region.Q] {
			sourceQ := r.Index.LocationIndex[tr.Source]
			for _, dp := range region.DiscretePredecessors(cur.Region, tr, r.Index.ClockIndex, sourceQ, r.Index.Invariant[sourceQ], r.Index.MaxConstant) {
				explored++
				r.tryInsertBackward(w, visited, dp)
			}
		}
	}

	return Result{Reachable: false, RegionsExplored: explored, Elapsed: time.Since(start)}
}

func (r *RTS) isInitialRegion(cand region.Region, initialLocations map[int]bool) bool {
	for _, h := range cand.H {
		if h != 0 {
			return false
		}
	}
	if cand.X0.Count() != len(cand.H) {
		return false
	}
	return initialLocations[cand.Q]
}

func (r *RTS) tryInsertBackward(w *worklist, visited *visitedSet, candidate region.Region) {
	if !satisfiesInvariant(r.Index.ClockIndex, candidate, r.Index.Invariant[candidate.Q]) {
		return
	}
	if visited.contains(candidate) {
		return
	}
	visited.add(candidate)
	w.push(state{Region: candidate})
}
