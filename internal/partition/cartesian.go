package partition

// Interval is an inclusive [Lo, Hi] integer range.
type Interval struct {
	Lo, Hi int
}

// IntervalProduct enumerates every assignment key -> v with v in
// ranges[key], using a mixed-radix counter (ports
// original_source/TARZAN/utilities/partition_utilities.h:
// generateAllIntegerIntervalCombinations). Used when a discrete predecessor
// must enumerate admissible integer values for a reset clock constrained by
// the transition's guard.
func IntervalProduct[K comparable](ranges map[K]Interval) []map[K]int {
	if len(ranges) == 0 {
		return nil
	}

	keys := make([]K, 0, len(ranges))
	sizes := make([]int, 0, len(ranges))
	total := 1
	for k, iv := range ranges {
		keys = append(keys, k)
		size := iv.Hi - iv.Lo + 1
		sizes = append(sizes, size)
		total *= size
	}

	result := make([]map[K]int, 0, total)
	for i := 0; i < total; i++ {
		assignment := make(map[K]int, len(keys))
		rem := i
		for j, k := range keys {
			size := sizes[j]
			assignment[k] = ranges[k].Lo + rem%size
			rem /= size
		}
		result = append(result, assignment)
	}
	return result
}

// VectorProduct computes the cartesian product of the given integer
// vectors, i.e. every combination obtainable by picking one element from
// each inner slice in order (ports
// original_source/TARZAN/utilities/partition_utilities.h:
// vectorsCartesianProduct).
func VectorProduct(input [][]int) [][]int {
	if len(input) == 0 {
		return nil
	}

	result := [][]int{{}}
	for _, inner := range input {
		next := make([][]int, 0, len(result)*len(inner))
		for _, combo := range result {
			for _, v := range inner {
				nc := make([]int, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = v
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}
