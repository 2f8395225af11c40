package region

import (
	"testing"

	"github.com/kolkov/tarzan/internal/bitset"
)

func TestDelaySuccessorCycleSingleClock(t *testing.T) {
	maxConstant := []int{2}
	r := NewInitial(1, 0) // x0 = {0}

	r = DelaySuccessor(r, maxConstant) // Case A: bounded=[{0}]
	if r.X0.Any() || len(r.Bounded) != 1 {
		t.Fatalf("expected Case A to move clock into bounded, got x0=%v bounded=%v", r.X0, r.Bounded)
	}

	r = DelaySuccessor(r, maxConstant) // Case B: h=1, re-enters x0
	if r.H[0] != 1 || !r.X0.Test(0) || len(r.Bounded) != 0 {
		t.Fatalf("expected clock to re-enter x0 with h=1, got h=%v x0=%v bounded=%v", r.H, r.X0, r.Bounded)
	}

	r = DelaySuccessor(r, maxConstant) // Case A again
	r = DelaySuccessor(r, maxConstant) // Case B: h=2, still within max, re-enters x0
	if r.H[0] != 2 || !r.X0.Test(0) {
		t.Fatalf("expected h=2 and x0 membership at the max constant boundary, got h=%v x0=%v", r.H, r.X0)
	}

	r = DelaySuccessor(r, maxConstant) // Case A again
	r = DelaySuccessor(r, maxConstant) // Case B: h=3 exceeds max 2, becomes unbounded
	if len(r.Unbounded) != 1 || !r.Unbounded[0].Test(0) {
		t.Fatalf("expected clock to become unbounded, got unbounded=%v", r.Unbounded)
	}
	if r.H[0] != maxConstant[0]+1 {
		t.Fatalf("expected sentinel h=%d, got %d", maxConstant[0]+1, r.H[0])
	}

	fixed := DelaySuccessor(r, maxConstant) // Case C: fixed point
	if !fixed.Equal(r) {
		t.Fatalf("expected Case C (all-unbounded) to be a delay fixed point")
	}
}

func TestDelayPredecessorsUndoesCaseA(t *testing.T) {
	maxConstant := []int{2, 2}
	r := NewInitial(2, 0)
	succ := DelaySuccessor(r, maxConstant) // x0 -> bounded front

	preds := DelayPredecessors(succ, maxConstant)
	found := false
	for _, p := range preds {
		if p.Equal(r) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DelayPredecessors(%v) to include the original region %v; got %v", succ, r, preds)
	}
}

func TestDelayPredecessorsUndoesCaseB(t *testing.T) {
	maxConstant := []int{2}
	r := NewInitial(1, 0)
	s1 := DelaySuccessor(r, maxConstant)  // bounded=[{0}], h=0
	s2 := DelaySuccessor(s1, maxConstant) // x0={0}, h=1

	preds := DelayPredecessors(s2, maxConstant)
	found := false
	for _, p := range preds {
		if p.Equal(s1) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DelayPredecessors(%v) to include %v; got %v", s2, s1, preds)
	}
}

func TestDelayPredecessorsUndoesBecomingUnbounded(t *testing.T) {
	maxConstant := []int{2}
	r := NewInitial(1, 0)
	s1 := DelaySuccessor(r, maxConstant)  // bounded=[{0}], h=0
	s2 := DelaySuccessor(s1, maxConstant) // x0={0}, h=1
	s3 := DelaySuccessor(s2, maxConstant) // bounded=[{0}], h=1
	s4 := DelaySuccessor(s3, maxConstant) // x0={0}, h=2
	s5 := DelaySuccessor(s4, maxConstant) // bounded=[{0}], h=2
	s6 := DelaySuccessor(s5, maxConstant) // unbounded=[{0}], h=3 (sentinel)

	preds := DelayPredecessors(s6, maxConstant)
	found := false
	for _, p := range preds {
		if p.Equal(s5) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DelayPredecessors(%v) to include %v (the just-below-max bounded state); got %v", s6, s5, preds)
	}
}

// TestDelayPredecessorsSoundWithX0AndUnboundedFront covers a region shape
// none of the above single-clock cases exercise: clock 0 freshly reset
// (x0), clock 1 already unbounded. x0 and Unbounded partition disjoint
// clocks, so this is an ordinary, invariant-satisfying region — not a
// contradiction. Every candidate DelayPredecessors returns must satisfy
// the round-trip law (spec.md §8): DelaySuccessor(p) == r.
func TestDelayPredecessorsSoundWithX0AndUnboundedFront(t *testing.T) {
	maxConstant := []int{2, 2}
	r := Region{
		Q:         0,
		H:         []int{0, maxConstant[1] + 1},
		X0:        bitset.FromSlice(2, []int{0}),
		Unbounded: []bitset.Set{bitset.FromSlice(2, []int{1})},
	}

	for _, p := range DelayPredecessors(r, maxConstant) {
		if succ := DelaySuccessor(p, maxConstant); !succ.Equal(r) {
			t.Fatalf("unsound predecessor %v of %v: DelaySuccessor gave %v", p, r, succ)
		}
	}
}
