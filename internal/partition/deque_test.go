package partition

import (
	"testing"

	"github.com/kolkov/tarzan/internal/bitset"
)

func block(n int, idx int) bitset.Set {
	return bitset.FromSlice(n, []int{idx})
}

func TestGenerateAllDequesFactorial(t *testing.T) {
	base := Ordered{block(4, 0), block(4, 3)}
	ins := Insertions{
		1: {block(4, 1), block(4, 2)},
	}

	out := GenerateAllDeques(ins, base)
	if len(out) != 2 {
		t.Fatalf("expected 2! = 2 deques, got %d", len(out))
	}
	for _, d := range out {
		if len(d) != 4 {
			t.Fatalf("expected deque of length 4, got %d", len(d))
		}
	}
}

func TestGenerateAllDequesEmptyInsertions(t *testing.T) {
	base := Ordered{block(2, 0), block(2, 1)}
	out := GenerateAllDeques(Insertions{}, base)
	if len(out) != 1 {
		t.Fatalf("expected exactly 1 deque with no insertions, got %d", len(out))
	}
	if len(out[0]) != 2 {
		t.Fatalf("unexpected deque length %d", len(out[0]))
	}
}

func TestGenerateAllDequesDescendingKeyOrder(t *testing.T) {
	base := Ordered{block(6, 0)}
	ins := Insertions{
		0: {block(6, 1)},
		1: {block(6, 2), block(6, 3)},
	}
	out := GenerateAllDeques(ins, base)
	// 1 permutation for key 0's single-element vector, 2 permutations for
	// key 1's two-element vector => 2 total deques, each of length
	// 1 (base) + 1 + 2 = 4.
	if len(out) != 2 {
		t.Fatalf("expected 2 deques, got %d", len(out))
	}
	for _, d := range out {
		if len(d) != 4 {
			t.Fatalf("expected deque length 4, got %d", len(d))
		}
	}
}

func TestAllPermutationsCount(t *testing.T) {
	vec := Ordered{block(3, 0), block(3, 1), block(3, 2)}
	perms := allPermutations(vec)
	if len(perms) != 6 {
		t.Fatalf("expected 3! = 6 permutations, got %d", len(perms))
	}
}
