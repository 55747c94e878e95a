package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlkit/core"
)

// Dijkstra computes shortest distances from start to every node of g.
//
// Returns:
//
//   - dist: every node known to g, plus start, mapped to its minimum distance
//     (Infinity if unreachable).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v ends with the edge u→v.
//     start and unreachable nodes have no entry.
//   - err:  ErrNilGraph, ErrNegativeWeight, or an option error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start int, opts ...Option) (map[int]int64, map[int]int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 2) Pre-scan all edges to detect negative weights. Fail fast.
	if e, found := g.FirstNegativeEdge(); found {
		return nil, nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, len(nodes)+1),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, len(nodes))
	}

	r.init(nodes, start)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph   // input graph; read-only here
	options Options       // thresholds and path flag
	dist    map[int]int64 // node → best known distance
	prev    map[int]int   // node → predecessor (nil unless ReturnPath)
	pq      nodePQ        // frontier, lazy decrease-key
}

// init sets every known node to Infinity, start to 0, and seeds the frontier.
func (r *runner) init(nodes []int, start int) {
	for _, v := range nodes {
		r.dist[v] = Infinity
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})
}

// process drains the frontier. Stale entries (d > dist[u]) are skipped.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int, du int64) error {
	// start may be unknown to the graph; it simply has no edges.
	if !r.g.HasNode(u) {
		return nil
	}
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Safety check: the pre-scan already rejected negative weights.
		if nb.Weight < 0 {
			return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, nb.ID, nb.Weight)
		}
		// Saturate instead of overflowing past Infinity.
		if nb.Weight > Infinity-du {
			continue
		}

		newDist := du + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = newDist
		if r.prev != nil {
			r.prev[nb.ID] = u
		}
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// PathTo rebuilds the node sequence start → … → dest from a predecessor map
// returned by Dijkstra with WithReturnPath.
// Returns ErrUnreachable if dest has no predecessor chain back to start.
//
// Complexity: O(path length).
func PathTo(prev map[int]int, start, dest int) ([]int, error) {
	path := []int{dest}
	for cur := dest; cur != start; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dest, start)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem is a frontier entry: a node and its tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
