// Package partition implements the ordered-partition combinatorics that
// back discrete predecessor computation (spec.md §4.5): restricted-growth-
// string enumeration of set partitions, permutation-into-deque insertion,
// and the two cartesian-product helpers used to enumerate admissible
// integer assignments.
//
// None of this is concurrency-aware by design: spec.md §5 scopes the
// permutation cache used by GenerateAllDeques to a single call, created on
// the stack and dropped on return — the opposite of the C++ original's
// process-global cache (see original_source/TARZAN/utilities/
// partition_utilities.h, "get_p_cache"), which the spec's §9 design notes
// flag as unsound under any future parallelization.
package partition

import "github.com/kolkov/tarzan/internal/bitset"

// Ordered is one restricted-growth-string partition of a bitset's active
// indices, materialized as a sequence of pairwise-disjoint, non-empty
// bitset.Set blocks in block-index order.
type Ordered []bitset.Set

// EnumerateOrdered enumerates every set partition of the indices active in
// s, each represented as an Ordered block sequence. The count of results is
// the Bell number of len(s.Slice()).
//
// This is a direct port of the reflected-Gray-code restricted-growth-string
// algorithm from "Maximize the Rightmost Digit: Gray Codes for Restricted
// Growth Strings" (Ehrlich), as used by
// original_source/TARZAN/utilities/partition_utilities.h:partitionBitset.
func EnumerateOrdered(s bitset.Set) []Ordered {
	active := s.Slice()
	n := len(active)

	rgs := enumerateRGS(n)

	out := make([]Ordered, 0, len(rgs))
	for _, a := range rgs {
		out = append(out, materialize(s.Len(), active, a))
	}
	return out
}

// enumerateRGS returns every restricted-growth string of length n (a[0]=0,
// a[i] <= 1+max(a[0..i-1])) exactly once, in Gray-code order (O(1)
// amortized transitions between successive strings).
func enumerateRGS(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	a := make([]int, n)
	f := make([]int, n+1)
	for i := range f {
		f[i] = i
	}
	s := make([]int, n)
	var stack []int
	v := make([]bool, n)

	result := [][]int{append([]int(nil), a...)}

	threshold := n - 1
	for f[0] < threshold {
		idx := f[0]
		f[0] = 0

		switch {
		case a[idx] == s[idx]:
			var m int
			if v[idx] {
				m = 0
				v[idx] = false
			} else if len(stack) == 0 {
				// No digit above idx holds a value >= 2, so the maximum
				// above idx is 1 if any of them is nonzero, else 0.
				for _, x := range a[idx+1:] {
					if x != 0 {
						m = 1
						break
					}
				}
			} else {
				m = a[stack[len(stack)-1]]
			}
			if m == 0 && s[idx] == 1 {
				a[idx] = 0
			} else {
				a[idx] = m + 1
				if m+1 != 1 {
					stack = append(stack, idx)
				}
			}
		case a[idx] == 2 && s[idx] == 1:
			a[idx] -= 2
			if stack[len(stack)-1] == idx {
				stack = stack[:len(stack)-1]
			}
		default:
			a[idx] -= 1
			if stack[len(stack)-1] == idx {
				stack = stack[:len(stack)-1]
			}
		}

		result = append(result, append([]int(nil), a...))

		if a[idx] == 1-s[idx] {
			f[idx] = f[idx+1]
			f[idx+1] = idx + 1
			s[idx] = a[idx]
		}
	}

	return result
}

// materialize turns one restricted-growth string (indexed by position
// within `active`) into the corresponding block sequence over a domain of
// size n.
func materialize(n int, active []int, rgs []int) Ordered {
	if len(rgs) == 0 {
		return Ordered{}
	}

	maxBlock := 0
	for _, v := range rgs {
		if v > maxBlock {
			maxBlock = v
		}
	}

	blocks := make(Ordered, maxBlock+1)
	for i := range blocks {
		blocks[i] = bitset.New(n)
	}
	for i, clockIdx := range active {
		blocks[rgs[i]].Set(clockIdx)
	}
	return blocks
}
