package network

import (
	"testing"

	"github.com/kolkov/tarzan/internal/bitset"
)

func TestSymmetryGroupsRejectsOverlap(t *testing.T) {
	g1 := bitset.FromSlice(3, []int{0, 1})
	g2 := bitset.FromSlice(3, []int{1, 2})
	if _, err := NewSymmetryGroups([]bitset.Set{g1, g2}, 3); err == nil {
		t.Fatalf("expected an error for overlapping symmetry groups")
	}
}

func TestCanonicalizeOrdersSlotsByRegionTotalOrder(t *testing.T) {
	components := twoComponentToy(t)
	rn := New(components, nil)
	cur := rn.InitialRegions[0]

	// Drive component 1 further than component 0 so their regions differ,
	// then swap which slot holds which content: canonicalization should put
	// them back in the same relative order regardless of which slot we put
	// the more-advanced region in.
	advanced := DelaySuccessor(cur, rn.MaxConstant)

	group := bitset.FromSlice(2, []int{0, 1})
	sg, err := NewSymmetryGroups([]bitset.Set{group}, 2)
	if err != nil {
		t.Fatalf("NewSymmetryGroups: %v", err)
	}

	a := cur.Clone()
	a.Regions[0] = advanced.Regions[0]
	a.Regions[1] = cur.Regions[1]

	b := cur.Clone()
	b.Regions[0] = cur.Regions[0]
	b.Regions[1] = advanced.Regions[1]

	canonA, _ := sg.Canonicalize(a)
	canonB, _ := sg.Canonicalize(b)

	if !canonA.Equal(canonB) {
		t.Fatalf("expected symmetric permutations to canonicalize to the same network region:\nA=%+v\nB=%+v", canonA, canonB)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	components := twoComponentToy(t)
	rn := New(components, nil)
	cur := DelaySuccessor(rn.InitialRegions[0], rn.MaxConstant)

	group := bitset.FromSlice(2, []int{0, 1})
	sg, err := NewSymmetryGroups([]bitset.Set{group}, 2)
	if err != nil {
		t.Fatalf("NewSymmetryGroups: %v", err)
	}

	once, _ := sg.Canonicalize(cur)
	twice, _ := sg.Canonicalize(once)
	if !once.Equal(twice) {
		t.Fatalf("expected canonicalization to be idempotent")
	}
}
