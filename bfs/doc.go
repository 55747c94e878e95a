// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Walk offers the plain visitor form: Walk(g, start, func(id int) { ... }).
//
// Marking policy
//
//	A node is marked visited when it is enqueued, not when it is dequeued.
//	Parallel edges and self-loops therefore never enqueue a node twice, and
//	every reachable node is visited exactly once.
//
// Edge weights are ignored; BFS counts hops only.
//
// Unknown start
//
//	A start node the graph has never seen is still visited (Order = [start])
//	but contributes no further expansion.
//
// Determinism
//
//	core.Neighbors returns adjacency lists in insertion order, and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
