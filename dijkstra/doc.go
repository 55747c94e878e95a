// Package dijkstra implements single-source shortest paths over a core.Graph
// with non-negative integer edge weights.
//
// Overview:
//
//   - Every node the graph knows about starts at Infinity (math.MaxInt64);
//     the start node starts at 0, and is included in the result even when the
//     graph has never seen it.
//   - A min-heap frontier, seeded with (start, 0), is drained in ascending
//     tentative distance. An entry whose distance exceeds the best known
//     distance for its node is stale and is skipped.
//   - Relaxing edge (u→v, w) replaces dist[v] when dist[u]+w is strictly
//     smaller, and pushes (v, dist[u]+w) onto the frontier.
//   - Nodes never reached keep the Infinity sentinel.
//
// Negative weights are rejected up front with ErrNegativeWeight; the scan
// happens before any distance is computed, so no partial result is returned.
//
// Options:
//
//   - WithReturnPath():         also return the predecessor map.
//   - WithMaxDistance(d):       do not settle nodes farther than d (d ≥ 0).
//   - WithInfEdgeThreshold(t):  treat edges with weight ≥ t as impassable (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with lazy decrease-key.
//   - Space: O(V + E); the frontier may hold one entry per relaxation.
//
// Example:
//
//	g := core.NewGraph()
//	g.AddEdge(0, 1, core.WithWeight(4))
//	g.AddEdge(0, 2, core.WithWeight(1))
//	g.AddEdge(2, 1, core.WithWeight(2))
//	dist, _, err := dijkstra.Dijkstra(g, 0)
//	// dist == map[int]int64{0: 0, 1: 3, 2: 1}
package dijkstra
