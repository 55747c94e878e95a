// Package core provides the weighted, undirected adjacency-map Graph shared by
// the traversal and shortest-path packages (bfs, dijkstra).
//
// The Graph G = (V,E) is deliberately small:
//
//   - Node identifiers are plain ints; they need not be contiguous or bounded.
//   - Nodes are discovered implicitly: AddEdge(u, v) makes both u and v known.
//   - Every edge is undirected. AddEdge(u, v, w) appends (v,w) to u's neighbor
//     list and (u,w) to v's neighbor list.
//   - No deduplication: adding the same edge twice yields two parallel edges.
//     A self-loop (u == u) appends two entries to u's list.
//   - Weight defaults to 1 unless WithWeight is supplied.
//   - Neighbor lists preserve insertion order, so traversals are reproducible.
//
// Edge validation is left to the algorithms that care about it: the graph
// accepts negative weights, and dijkstra rejects them with ErrNegativeWeight.
//
// Core Methods:
//
//	// Mutation
//	AddEdge(u, v int, opts ...EdgeOption)       // O(1) amortized
//
//	// Queries
//	HasNode(id int) bool                        // O(1)
//	Nodes() []int                               // O(V log V), ascending
//	Neighbors(id int) ([]Neighbor, error)       // O(deg), insertion order
//	NodeCount() int                             // O(1)
//	EdgeCount() int                             // O(1)
//	Edges() []Edge                              // O(E), AddEdge order
//	HasNegativeWeight() bool                    // O(E)
//	Clone() *Graph                              // O(V+E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map and the edge log. Queries
//	take the read lock, AddEdge takes the write lock. Algorithms in bfs and
//	dijkstra read through the public API and never hold the lock across
//	user callbacks.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge(0, 1, core.WithWeight(4))
//	g.AddEdge(0, 2) // weight 1
//	nbrs, _ := g.Neighbors(0) // [{1 4} {2 1}]
package core
