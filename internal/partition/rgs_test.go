package partition

import (
	"testing"

	"github.com/kolkov/tarzan/internal/bitset"
)

// bellNumbers for n = 0..5, used to check enumeration completeness.
var bellNumbers = []int{1, 1, 2, 5, 15, 52}

func TestEnumerateOrderedBellCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		s := bitset.FromSlice(n, idx)
		got := EnumerateOrdered(s)
		if len(got) != bellNumbers[n] {
			t.Errorf("EnumerateOrdered over %d clocks: got %d partitions, want Bell(%d)=%d", n, len(got), n, bellNumbers[n])
		}
	}
}

func TestEnumerateOrderedCoversEveryIndex(t *testing.T) {
	s := bitset.FromSlice(4, []int{0, 1, 2, 3})
	for _, part := range EnumerateOrdered(s) {
		union := bitset.New(4)
		for i, block := range part {
			if block.None() {
				t.Fatalf("partition block %d is empty", i)
			}
			for _, blockOther := range part[i+1:] {
				if !block.Disjoint(blockOther) {
					t.Fatalf("partition blocks are not pairwise disjoint")
				}
			}
			union = union.Or(block)
		}
		if !union.Equal(s) {
			t.Fatalf("partition %v does not cover all active indices", part)
		}
	}
}

func TestEnumerateOrderedEmptyBitset(t *testing.T) {
	got := EnumerateOrdered(bitset.New(3))
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("empty bitset should yield exactly one empty partition, got %v", got)
	}
}

func TestEnumerateOrderedSingleClock(t *testing.T) {
	s := bitset.FromSlice(1, []int{0})
	got := EnumerateOrdered(s)
	if len(got) != 1 {
		t.Fatalf("single clock should yield exactly one partition, got %d", len(got))
	}
	if len(got[0]) != 1 || got[0][0].Count() != 1 {
		t.Fatalf("single clock partition should have one singleton block")
	}
}
