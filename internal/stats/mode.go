package stats

import "sort"

// Count pairs a value with its number of occurrences.
type Count[T comparable] struct {
	Value T
	N     int
}

// ValueCounts tallies values, most frequent first. Equal counts keep the
// order in which each value was first seen.
func ValueCounts[T comparable](values []T) []Count[T] {
	index := make(map[T]int, len(values))
	counts := make([]Count[T], 0)
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].N++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, N: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	return counts
}

// Mode returns the most frequent value; ties go to the value seen first.
// The boolean is false for an empty input.
func Mode[T comparable](values []T) (T, bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		var zero T
		return zero, false
	}
	return counts[0].Value, true
}
