package bitset

import "testing"

func TestSetClearTest(t *testing.T) {
	s := New(10)
	if s.Any() {
		t.Fatalf("New(10) should start empty")
	}
	s.Set(3)
	s.Set(9)
	if !s.Test(3) || !s.Test(9) {
		t.Fatalf("expected bits 3 and 9 set")
	}
	if s.Test(4) {
		t.Fatalf("bit 4 should not be set")
	}
	s.Clear(3)
	if s.Test(3) {
		t.Fatalf("bit 3 should be cleared")
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestCloneIndependence(t *testing.T) {
	s := New(64)
	s.Set(1)
	c := s.Clone()
	c.Set(2)
	if s.Test(2) {
		t.Fatalf("mutating clone must not affect original")
	}
	if !c.Test(1) {
		t.Fatalf("clone must preserve original bits")
	}
}

func TestOrAndAndNot(t *testing.T) {
	a := FromSlice(8, []int{0, 1, 2})
	b := FromSlice(8, []int{2, 3})

	or := a.Or(b)
	if !or.Equal(FromSlice(8, []int{0, 1, 2, 3})) {
		t.Fatalf("Or mismatch: %v", or.Slice())
	}

	and := a.And(b)
	if !and.Equal(FromSlice(8, []int{2})) {
		t.Fatalf("And mismatch: %v", and.Slice())
	}

	diff := a.AndNot(b)
	if !diff.Equal(FromSlice(8, []int{0, 1})) {
		t.Fatalf("AndNot mismatch: %v", diff.Slice())
	}
}

func TestDisjointAndEqual(t *testing.T) {
	a := FromSlice(16, []int{0, 5})
	b := FromSlice(16, []int{1, 6})
	if !a.Disjoint(b) {
		t.Fatalf("a and b should be disjoint")
	}
	c := FromSlice(16, []int{0, 5})
	if !a.Equal(c) {
		t.Fatalf("a should equal c")
	}
	if a.Equal(b) {
		t.Fatalf("a should not equal b")
	}
}

func TestSliceRoundTrip(t *testing.T) {
	idx := []int{0, 3, 7, 63, 64, 130}
	s := FromSlice(200, idx)
	got := s.Slice()
	if len(got) != len(idx) {
		t.Fatalf("Slice() length = %d, want %d", len(got), len(idx))
	}
	for i, v := range idx {
		if got[i] != v {
			t.Fatalf("Slice()[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestHashStableAcrossClone(t *testing.T) {
	a := FromSlice(32, []int{1, 2, 3})
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Fatalf("clone must hash identically")
	}
}
