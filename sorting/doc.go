// Package sorting provides comparison-based sorts over caller-owned slices.
//
// MergeSort / MergeSortFunc
//
//	Recursive top-down merge sort. The slice is split at its midpoint, both
//	halves are sorted, and the merge always takes the left head unless the
//	right head is strictly smaller. Equal elements therefore keep their
//	original relative order (stable). O(n log n) time, O(n) scratch per merge.
//
// QuickSort
//
//	Lomuto partitioning with the last element as pivot; less is a strict
//	less-than predicate. Unstable. O(n log n) on average, O(n²) on sorted or
//	adversarial input because the pivot is fixed.
//	Recursion descends into the smaller partition and loops over the larger,
//	so stack depth stays O(log n) even in the quadratic case.
//
// QuickSortRandom
//
//	Same partition scheme, but a uniformly chosen element is swapped into the
//	pivot slot first. This trades reproducible output order of equal elements
//	for expected O(n log n) on every input.
//
// All functions sort in place and accept empty or single-element slices.
package sorting
