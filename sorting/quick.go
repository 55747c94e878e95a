package sorting

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// QuickSort sorts s in place with Lomuto partitioning around the last element.
// less must be a strict less-than predicate. The sort is not stable.
//
// Complexity: O(n log n) average, O(n²) worst case; O(log n) stack.
func QuickSort[T any](s []T, less func(a, b T) bool) {
	quickSort(s, less, nil)
}

// QuickSortRandom is QuickSort with a random pivot drawn from rnd.
// A nil rnd uses a generator seeded from the global source.
//
// Complexity: O(n log n) expected, O(log n) stack.
func QuickSortRandom[T any](s []T, less func(a, b T) bool, rnd *rand.Rand) {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	quickSort(s, less, rnd)
}

func quickSort[T any](s []T, less func(a, b T) bool, rnd *rand.Rand) {
	for len(s) > 1 {
		if rnd != nil {
			k := rnd.Intn(len(s))
			s[k], s[len(s)-1] = s[len(s)-1], s[k]
		}
		p := partition(s, less)
		// recurse on the smaller side, iterate on the larger
		if p < len(s)-1-p {
			quickSort(s[:p], less, rnd)
			s = s[p+1:]
		} else {
			quickSort(s[p+1:], less, rnd)
			s = s[:p]
		}
	}
}

// partition moves every element less than the pivot s[len(s)-1] to the
// front and places the pivot right after them, returning its final index.
func partition[T any](s []T, less func(a, b T) bool) int {
	last := len(s) - 1
	pivot := s[last]
	i := 0
	for j := 0; j < last; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]

	return i
}

// IsSorted reports whether s is in non-descending order.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
