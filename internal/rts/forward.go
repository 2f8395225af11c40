package rts

import (
	"time"

	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/region"
)

// ForwardReachability explores from the initial regions outward, per
// spec.md §4.2 "Forward reachability" / original_source RTS.cpp's
// forwardReachability: seed, then repeatedly dequeue, test against goal,
// expand via delay successor (unless urgent) then discrete successors,
// inserting each previously-unseen, invariant-satisfying result.
func (r *RTS) ForwardReachability(goal Goal, strategy Strategy) Result {
	start := time.Now()
	w := &worklist{}
	visited := newVisitedSet()

	for _, init := range r.InitialRegions {
		s := state{Region: init, Vars: cloneVars(r.Index.Variables)}
		w.push(s)
		visited.add(init)
	}

	explored := 0
	var allReached []region.Region

	for {
		cur, ok := w.pop(strategy)
		if !ok {
			break
		}

		if goal.ExploreAll {
			allReached = append(allReached, cur.Region)
		} else if goal.Matches(r.Index, cur.Region) {
			witness := cur.Region
			return Result{Reachable: true, Witness: &witness, RegionsExplored: explored, Elapsed: time.Since(start)}
		}

		if !r.Index.Urgent[cur.Region.Q] {
			ds := region.DelaySuccessor(cur.Region, r.Index.MaxConstant)
			explored++
			r.tryInsertForward(w, visited, ds, cur.Vars)
		}

		for _, tr := range r.Index.OutTransitions[cur.Region.Q] {
			targetQ := r.Index.LocationIndex[tr.Target]
			succ, newVars, ok := region.DiscreteSuccessor(cur.Region, tr, r.Index.ClockIndex, targetQ, r.Index.Invariant[targetQ], cur.Vars)
			if !ok {
				continue
			}
			explored++
			r.tryInsertForward(w, visited, succ, newVars)
		}
	}

	res := Result{Reachable: false, RegionsExplored: explored, Elapsed: time.Since(start)}
	if goal.ExploreAll {
		res.Reached = allReached
	}
	return res
}

func (r *RTS) tryInsertForward(w *worklist, visited *visitedSet, candidate region.Region, vars map[string]int) {
	if !satisfiesInvariant(r.Index.ClockIndex, candidate, r.Index.Invariant[candidate.Q]) {
		return
	}
	if visited.contains(candidate) {
		return
	}
	visited.add(candidate)
	w.push(state{Region: candidate, Vars: vars})
}

// satisfiesInvariant mirrors original_source RTS.cpp's
// insertRegionInMapAndToProcess: a location with no recorded invariant
// always admits the region.
func satisfiesInvariant(clockIdx map[string]int, r region.Region, invariant []automaton.ClockConstraint) bool {
	for _, c := range invariant {
		ci, ok := clockIdx[c.Clock]
		if !ok {
			return false
		}
		ip, hf := r.Valuation(ci)
		if !c.Satisfied(ip, hf) {
			return false
		}
	}
	return true
}
