// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior on the reference network, option
// handling, error paths, and edge cases such as unknown start nodes,
// disconnected graphs, parallel edges and self-loops.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkit/core"
	"github.com/katalvlaran/lvlkit/dijkstra"
)

// buildReference returns the six-edge network used throughout the docs:
// (0,1,4) (0,2,1) (2,1,2) (2,3,5) (1,3,1) (3,4,3).
func buildReference() *core.Graph {
	g := core.NewGraph()
	for _, e := range []struct{ u, v, w int }{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {2, 3, 5}, {1, 3, 1}, {3, 4, 3},
	} {
		g.AddEdge(e.u, e.v, core.WithWeight(int64(e.w)))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := buildReference()
	g.AddEdge(4, 5, core.WithWeight(-5))

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "weight=-5")
	assert.Nil(t, dist)
	assert.Nil(t, prev)
}

func TestDijkstra_NegativeWeightUnreachableStillRejected(t *testing.T) {
	// The offending edge lives in a separate component; the scan is global.
	g := core.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(10, 11, core.WithWeight(-1))

	_, _, err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := buildReference()

	_, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_ReferenceNetwork(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(buildReference(), 0)
	require.NoError(t, err)

	assert.Equal(t, map[int]int64{0: 0, 1: 3, 2: 1, 3: 4, 4: 7}, dist)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")
}

func TestDijkstra_ReferenceNetwork_WithPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(buildReference(), 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, int64(7), dist[4])

	assert.Equal(t, map[int]int{1: 2, 2: 0, 3: 1, 4: 3}, prev)

	path, err := dijkstra.PathTo(prev, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3, 4}, path)

	self, err := dijkstra.PathTo(prev, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, self)
}

func TestDijkstra_DefaultWeightIsOne(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	dist, _, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 0, 2: 1, 3: 2}, dist)
}

// ------------------------------------------------------------------------
// 3. Unreachable and unknown nodes
// ------------------------------------------------------------------------

func TestDijkstra_DisconnectedKeepsSentinel(t *testing.T) {
	g := buildReference()
	g.AddEdge(100, 101, core.WithWeight(2))

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist[100])
	assert.Equal(t, dijkstra.Infinity, dist[101])
	assert.NotContains(t, prev, 100)

	_, err = dijkstra.PathTo(prev, 0, 101)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestDijkstra_UnknownStart(t *testing.T) {
	// Start is not part of the graph: it is reported at 0, everything else unreached.
	g := buildReference()

	dist, _, err := dijkstra.Dijkstra(g, 99)
	require.NoError(t, err)
	assert.Len(t, dist, 6)
	assert.Equal(t, int64(0), dist[99])
	for _, v := range []int{0, 1, 2, 3, 4} {
		assert.Equal(t, dijkstra.Infinity, dist[v], "node %d", v)
	}
}

func TestDijkstra_EmptyGraph(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(core.NewGraph(), 5)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{5: 0}, dist)
}

// ------------------------------------------------------------------------
// 4. Parallel edges, self-loops, zero weights
// ------------------------------------------------------------------------

func TestDijkstra_ParallelEdgesUseCheapest(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1, core.WithWeight(9))
	g.AddEdge(0, 1, core.WithWeight(2))
	g.AddEdge(1, 1, core.WithWeight(0))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[1])
}

func TestDijkstra_ZeroWeightChain(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1, core.WithWeight(0))
	g.AddEdge(1, 2, core.WithWeight(0))

	dist, _, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{0: 0, 1: 0, 2: 0}, dist)
}

// ------------------------------------------------------------------------
// 5. Options: MaxDistance and InfEdgeThreshold
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(buildReference(), 0, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)

	assert.Equal(t, int64(4), dist[3])
	assert.Equal(t, dijkstra.Infinity, dist[4], "node 4 lies at 7 > cap")
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Treat weight ≥ 2 as walls: only 0-2 (1) and 1-3 (1) remain passable.
	dist, _, err := dijkstra.Dijkstra(buildReference(), 0, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)

	assert.Equal(t, int64(1), dist[2])
	assert.Equal(t, dijkstra.Infinity, dist[1])
	assert.Equal(t, dijkstra.Infinity, dist[3])
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1, core.WithWeight(dijkstra.Infinity-1))
	g.AddEdge(1, 2, core.WithWeight(dijkstra.Infinity-1))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity-1, dist[1])
	assert.Equal(t, dijkstra.Infinity, dist[2])
}

// ------------------------------------------------------------------------
// 6. Property check against Bellman–Ford relaxation on random graphs.
// ------------------------------------------------------------------------

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		g := core.NewGraph()
		n := 2 + rnd.Intn(12)
		for k := 0; k < n*2; k++ {
			g.AddEdge(rnd.Intn(n), rnd.Intn(n), core.WithWeight(int64(rnd.Intn(10))))
		}

		dist, _, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)
		assert.Equal(t, bellmanFord(g, 0), dist, "round %d", round)
	}
}

// bellmanFord is a brute-force reference used only by the property test.
func bellmanFord(g *core.Graph, start int) map[int]int64 {
	dist := make(map[int]int64)
	for _, v := range g.Nodes() {
		dist[v] = dijkstra.Infinity
	}
	dist[start] = 0
	edges := g.Edges()
	for i := 0; i < len(dist); i++ {
		for _, e := range edges {
			for _, pair := range [][2]int{{e.From, e.To}, {e.To, e.From}} {
				u, v := pair[0], pair[1]
				if dist[u] != dijkstra.Infinity && dist[u]+e.Weight < dist[v] {
					dist[v] = dist[u] + e.Weight
				}
			}
		}
	}

	return dist
}
