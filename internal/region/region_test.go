package region

import (
	"testing"

	"github.com/kolkov/tarzan/internal/bitset"
)

func TestNewInitialAllClocksInX0(t *testing.T) {
	r := NewInitial(3, 0)
	if r.X0.Count() != 3 {
		t.Fatalf("expected all 3 clocks in x0, got %d", r.X0.Count())
	}
	for _, h := range r.H {
		if h != 0 {
			t.Fatalf("expected zero integer parts, got %v", r.H)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	r := NewInitial(2, 0)
	c := r.Clone()
	c.H[0] = 5
	c.X0.Clear(0)
	if r.H[0] != 0 {
		t.Fatalf("mutating clone's H leaked into original")
	}
	if !r.X0.Test(0) {
		t.Fatalf("mutating clone's X0 leaked into original")
	}
}

func TestEqualAndHash(t *testing.T) {
	a := NewInitial(2, 1)
	b := NewInitial(2, 1)
	if !a.Equal(b) {
		t.Fatalf("expected equal initial regions")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("expected equal regions to hash equal")
	}

	b.Q = 2
	if a.Equal(b) {
		t.Fatalf("regions with different Q must not be equal")
	}
}

func TestValuationReflectsGroupMembership(t *testing.T) {
	r := Region{
		Q:         0,
		H:         []int{1, 3},
		X0:        bitset.FromSlice(2, nil),
		Bounded:   []bitset.Set{bitset.FromSlice(2, []int{0})},
		Unbounded: []bitset.Set{bitset.FromSlice(2, []int{1})},
	}
	ip, hf := r.Valuation(0)
	if ip != 1 || !hf {
		t.Fatalf("expected bounded clock 0 to report (1,true), got (%d,%v)", ip, hf)
	}
	ip, hf = r.Valuation(1)
	if ip != 3 || hf {
		t.Fatalf("expected unbounded clock 1 to report (3,false), got (%d,%v)", ip, hf)
	}
}
