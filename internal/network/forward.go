package network

import "time"

// ForwardReachability explores the network's composite state space, per
// spec.md §4.4 and RTSNetwork.cpp's forwardReachability: seed from the
// cartesian-product initial regions, then repeatedly dequeue, test against
// goal, compute a delay successor (unless any component is urgent) and
// every discrete successor, inserting each previously-unseen,
// invariant-satisfying result. Insertion order (delay before discrete)
// matches the source.
func (rn *RTSNetwork) ForwardReachability(goal Goal, strategy Strategy) Result {
	start := time.Now()
	w := &worklist{}
	visited := newVisitedSet(rn.Symmetry)

	for _, init := range rn.InitialRegions {
		w.push(init)
		visited.add(init)
	}

	explored := 0
	var allReached []NetworkRegion

	for {
		cur, ok := w.pop(strategy)
		if !ok {
			break
		}

		if goal.ExploreAll {
			allReached = append(allReached, cur)
		} else if goal.Matches(rn.Components, cur) {
			witness := cur
			return Result{Reachable: true, Witness: &witness, RegionsExplored: explored, Elapsed: time.Since(start)}
		}

		if rn.delayPermitted(cur) {
			ds := DelaySuccessor(cur, rn.MaxConstant)
			explored++
			rn.tryInsert(w, visited, ds)
		}

		for _, succ := range DiscreteSuccessors(rn.Components, cur) {
			explored++
			rn.tryInsert(w, visited, succ)
		}
	}

	res := Result{Reachable: false, RegionsExplored: explored, Elapsed: time.Since(start)}
	if goal.ExploreAll {
		res.Reached = allReached
	}
	return res
}

// delayPermitted reports whether the network may take a delay step: a
// network delay is permitted only when no component is in an urgent
// location (spec.md §4.4).
func (rn *RTSNetwork) delayPermitted(cur NetworkRegion) bool {
	for i, comp := range rn.Components {
		if comp.Index.Urgent[cur.Regions[i].Q] {
			return false
		}
	}
	return true
}

func (rn *RTSNetwork) tryInsert(w *worklist, visited *visitedSet, candidate NetworkRegion) {
	if !rn.satisfiesInvariants(candidate) {
		return
	}
	if visited.contains(candidate) {
		return
	}
	visited.add(candidate)
	w.push(candidate)
}

func (rn *RTSNetwork) satisfiesInvariants(nr NetworkRegion) bool {
	for i, comp := range rn.Components {
		r := nr.Regions[i]
		for _, c := range comp.Index.Invariant[r.Q] {
			ci, ok := comp.Index.ClockIndex[c.Clock]
			if !ok {
				return false
			}
			ip, hf := r.Valuation(ci)
			if !c.Satisfied(ip, hf) {
				return false
			}
		}
	}
	return true
}
