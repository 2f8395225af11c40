package partition

import "sort"

// Insertions maps an insertion position within a base deque to the vector
// of blocks that must be permuted and inserted there. It plays the role of
// the C++ original's position-descending ordered map
// (original_source/TARZAN/utilities/partition_utilities.h: insOrdMap).
type Insertions map[int]Ordered

// permutationCache memoizes the permutations of each position's block
// vector for the duration of one GenerateAllDeques call. It is created on
// the stack by the caller and discarded on return — spec.md §9 calls this
// out as a hard contract (the C++ original uses a function-local static,
// i.e. a process-wide cache, which would race under any future
// parallelization of the predecessor search).
type permutationCache map[int][]Ordered

// GenerateAllDeques computes every deque obtainable by inserting, at each
// key's designated position, some permutation of that key's block vector
// into base, for every combination of per-key permutations. Keys are
// processed from largest to smallest position so that an insertion never
// invalidates a smaller, not-yet-processed position.
func GenerateAllDeques(ins Insertions, base Ordered) []Ordered {
	if len(ins) == 0 {
		return []Ordered{append(Ordered(nil), base...)}
	}

	keys := make([]int, 0, len(ins))
	for k := range ins {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	cache := permutationCache{}
	var out []Ordered
	generateDeques(ins, keys, 0, base, cache, &out)
	return out
}

func generateDeques(ins Insertions, keys []int, keyPos int, current Ordered, cache permutationCache, out *[]Ordered) {
	if keyPos == len(keys) {
		*out = append(*out, append(Ordered(nil), current...))
		return
	}

	pos := keys[keyPos]
	vec := ins[pos]

	perms, ok := cache[pos]
	if !ok {
		perms = allPermutations(vec)
		cache[pos] = perms
	}

	for _, perm := range perms {
		next := make(Ordered, 0, len(current)+len(perm))
		next = append(next, current[:pos]...)
		next = append(next, perm...)
		next = append(next, current[pos:]...)

		generateDeques(ins, keys, keyPos+1, next, cache, out)
	}
}

// allPermutations returns every ordering of vec. Blocks within one ordered
// partition are pairwise disjoint, hence pairwise distinct, so a plain
// Heap's-algorithm enumeration (no deduplication needed) suffices.
func allPermutations(vec Ordered) []Ordered {
	if len(vec) == 0 {
		return []Ordered{{}}
	}

	work := append(Ordered(nil), vec...)
	var out []Ordered

	var heap func(k int)
	heap = func(k int) {
		if k == 1 {
			out = append(out, append(Ordered(nil), work...))
			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	heap(len(work))
	return out
}
