package network

import (
	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/region"
)

// DelaySuccessor advances the composite region's time, per spec.md §4.3 and
// NetworkRegion.cpp's getImmediateDelaySuccessor.
//
// Two cases, mutually exclusive:
//
//  1. ClassAorC non-empty: every listed component still has a clock at zero
//     fraction (class A) or is at the fixed point (class C). Each such
//     component takes its own local delay successor. Any clocks that were in
//     that component's x0 and end up in the front Bounded group (i.e. they
//     just left the zero-fraction unit) are recorded as a brand-new
//     ClockOrdering entry, pushed to the front (smallest fraction).
//     ClassAorC is then cleared.
//
//  2. ClassAorC empty and ClockOrdering non-empty: the back entry (the
//     largest current fraction) is popped, each component it names takes its
//     own local delay successor, and those components re-join ClassAorC —
//     their next delay step is case 1 again.
//
// If neither holds, the whole composite is at its joint fixed point and
// DelaySuccessor is a no-op clone (mirrors region.DelaySuccessor's Case C).
func DelaySuccessor(nr NetworkRegion, maxConstant [][]int) NetworkRegion {
	out := nr.Clone()

	if out.ClassAorC.Any() {
		newOrdering := make(ClockGroup)
		for _, i := range out.ClassAorC.Slice() {
			originalX0 := out.Regions[i].X0.Clone()
			out.Regions[i] = region.DelaySuccessor(out.Regions[i], maxConstant[i])
			newBounded := out.Regions[i].Bounded
			if len(newBounded) == 0 {
				continue
			}
			left := originalX0.And(newBounded[0])
			if left.Any() {
				newOrdering[i] = left
			}
		}
		out.ClassAorC = bitset.New(out.ClassAorC.Len())
		if len(newOrdering) > 0 {
			out.ClockOrdering = append([]ClockGroup{newOrdering}, out.ClockOrdering...)
		}
		return out
	}

	if len(out.ClockOrdering) > 0 {
		back := out.ClockOrdering[len(out.ClockOrdering)-1]
		out.ClockOrdering = out.ClockOrdering[:len(out.ClockOrdering)-1]
		for i := range back {
			out.Regions[i] = region.DelaySuccessor(out.Regions[i], maxConstant[i])
			out.ClassAorC.Set(i)
		}
	}

	return out
}
