package network

import (
	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/region"
)

// Component pairs an automaton's derived Index with the transition set it
// contributes to network stepping.
type Component struct {
	Index *automaton.Index
}

// applyDiscreteUpdate writes succ into component i's slot and maintains
// ClockOrdering/ClassAorC exactly as NetworkRegion.cpp's
// updateNetRegionWithDiscSucc does: any clock i just reset is stripped out
// of every ClockOrdering entry for i (dropping the component's key, or the
// whole entry, once it empties), and i re-joins ClassAorC since a reset
// clock always lands in x0.
func applyDiscreteUpdate(nr *NetworkRegion, i int, succ region.Region, resets []string, clockIdx map[string]int) {
	nr.Regions[i] = succ
	if len(resets) == 0 {
		return
	}

	toReset := bitset.New(succ.NumClocks())
	for _, name := range resets {
		if ci, ok := clockIdx[name]; ok {
			toReset.Set(ci)
		}
	}
	if toReset.None() {
		return
	}

	newOrdering := make([]ClockGroup, 0, len(nr.ClockOrdering))
	for _, group := range nr.ClockOrdering {
		if g, ok := group[i]; ok {
			g = g.AndNot(toReset)
			if g.None() {
				delete(group, i)
			} else {
				group[i] = g
			}
		}
		if len(group) > 0 {
			newOrdering = append(newOrdering, group)
		}
	}
	nr.ClockOrdering = newOrdering
	nr.ClassAorC.Set(i)
}

// DiscreteSuccessors enumerates every network-level discrete successor of
// cur, per spec.md §4.3/§9 and NetworkRegion.cpp's
// getImmediateDiscreteSuccessors: an independent pass over every
// non-synchronizing transition, then a paired pass over every two
// components offering matching synchronized actions.
//
// Per spec.md §9 "preserve this order; do not refactor without a failing
// test": within a synchronized pair, the component holding the OUTPUT tag
// always computes its discrete successor first, and the INPUT side's
// successor is computed against the variable store the output side already
// updated — never the other way around. At most two components
// synchronize per step; broadcast is out of scope (spec.md §3 Non-goals).
func DiscreteSuccessors(components []Component, cur NetworkRegion) []NetworkRegion {
	var out []NetworkRegion

	for i, comp := range components {
		q := cur.Regions[i].Q
		for _, tr := range comp.Index.OutTransitions[q] {
			if tr.Action.Tag != automaton.SyncNone {
				continue
			}
			targetQ := comp.Index.LocationIndex[tr.Target]
			succ, newVars, ok := region.DiscreteSuccessor(cur.Regions[i], tr, comp.Index.ClockIndex, targetQ, comp.Index.Invariant[targetQ], cur.Vars)
			if !ok {
				continue
			}
			nr := cur.Clone()
			nr.Vars = newVars
			applyDiscreteUpdate(&nr, i, succ, tr.Resets, comp.Index.ClockIndex)
			out = append(out, nr)
		}
	}

	for i, compI := range components {
		qi := cur.Regions[i].Q
		for _, trI := range compI.Index.OutTransitions[qi] {
			if trI.Action.Tag == automaton.SyncNone {
				continue
			}
			for j := i + 1; j < len(components); j++ {
				compJ := components[j]
				qj := cur.Regions[j].Q
				for _, trJ := range compJ.Index.OutTransitions[qj] {
					if trJ.Action.Tag == automaton.SyncNone {
						continue
					}
					if !trI.Action.Matches(trJ.Action) {
						continue
					}
					if nr, ok := stepSyncPair(components, cur, i, trI, j, trJ); ok {
						out = append(out, nr)
					}
				}
			}
		}
	}

	return out
}

// stepSyncPair steps a matched (output, input) transition pair, computing
// the output side's successor first and feeding its resulting variable
// store into the input side's computation.
func stepSyncPair(components []Component, cur NetworkRegion, i int, trI automaton.Transition, j int, trJ automaton.Transition) (NetworkRegion, bool) {
	outIdx, outTr := i, trI
	inIdx, inTr := j, trJ
	if trI.Action.Tag != automaton.SyncOutput {
		outIdx, outTr = j, trJ
		inIdx, inTr = i, trI
	}
	outComp := components[outIdx]
	inComp := components[inIdx]

	outTargetQ := outComp.Index.LocationIndex[outTr.Target]
	succOut, varsAfterOut, ok := region.DiscreteSuccessor(cur.Regions[outIdx], outTr, outComp.Index.ClockIndex, outTargetQ, outComp.Index.Invariant[outTargetQ], cur.Vars)
	if !ok {
		return NetworkRegion{}, false
	}

	inTargetQ := inComp.Index.LocationIndex[inTr.Target]
	succIn, varsAfterIn, ok := region.DiscreteSuccessor(cur.Regions[inIdx], inTr, inComp.Index.ClockIndex, inTargetQ, inComp.Index.Invariant[inTargetQ], varsAfterOut)
	if !ok {
		return NetworkRegion{}, false
	}

	nr := cur.Clone()
	nr.Vars = varsAfterIn
	applyDiscreteUpdate(&nr, outIdx, succOut, outTr.Resets, outComp.Index.ClockIndex)
	applyDiscreteUpdate(&nr, inIdx, succIn, inTr.Resets, inComp.Index.ClockIndex)
	return nr, true
}
