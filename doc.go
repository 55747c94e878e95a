// Package lvlkit is a small toolkit of generic containers and classic
// algorithms: a shared-ownership handle, a growable array, an undirected
// weighted graph with Dijkstra and BFS, merge sort and quicksort, and
// KMP / LCS string matching.
//
// 🚀 What is inside?
//
//   - handle/   – reference-counted Handle[T]; the last release frees the resource
//   - vector/   – Vector[T] with doubling growth and bounds-checked access
//   - core/     – thread-safe undirected weighted Graph (adjacency lists)
//   - dijkstra/ – single-source shortest paths with options and path rebuild
//   - bfs/      – breadth-first traversal with hooks, depth limit and filters
//   - sorting/  – stable MergeSort, in-place QuickSort (fixed or random pivot)
//   - strmatch/ – KMP search over any comparable slice, LCS with a fixed tie rule
//
// ✨ Conventions
//
//   - Each package exposes sentinel errors ("pkg: ...") that callers match
//     with errors.Is; details are wrapped with %w.
//   - Tunables are functional options (Option / DefaultOptions); invalid
//     values are recorded and reported when the algorithm runs.
//   - Libraries do not log. The cmd/lvdemo driver logs with zap when asked.
//
// Quick ASCII example, the network used across the docs and demo:
//
//	    [0]──4──[1]
//	     │     / │
//	     1   2   1
//	     │ /     │
//	    [2]──5──[3]──3──[4]
//
//	Dijkstra from 0: {0:0 1:3 2:1 3:4 4:7}, path 0→4 = 0 2 1 3 4.
//
//	go run github.com/katalvlaran/lvlkit/cmd/lvdemo all
package lvlkit
