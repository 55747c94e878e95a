package sorting

import "golang.org/x/exp/constraints"

// MergeSort sorts s in non-descending order using a stable merge sort.
//
// Complexity: O(n log n) time, O(n) auxiliary space.
func MergeSort[T constraints.Ordered](s []T) {
	MergeSortFunc(s, func(a, b T) bool { return a < b })
}

// MergeSortFunc sorts s stably using less as a strict ordering.
//
// Complexity: O(n log n) time, O(n) auxiliary space.
func MergeSortFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	MergeSortFunc(s[:mid], less)
	MergeSortFunc(s[mid:], less)
	merge(s, mid, less)
}

// merge combines the sorted runs s[:mid] and s[mid:] and copies the result back.
func merge[T any](s []T, mid int, less func(a, b T) bool) {
	tmp := make([]T, 0, len(s))
	left, right := 0, mid
	for left < mid && right < len(s) {
		// left wins ties: !(right < left) is left <= right
		if !less(s[right], s[left]) {
			tmp = append(tmp, s[left])
			left++
		} else {
			tmp = append(tmp, s[right])
			right++
		}
	}
	tmp = append(tmp, s[left:mid]...)
	tmp = append(tmp, s[right:]...)
	copy(s, tmp)
}
