// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries over the adjacency map.
// Determinism:
//   - Nodes() is sorted ascending.
//   - Neighbors() and Edges() preserve insertion order.
// Concurrency:
//   - AddEdge under write lock; every query under read lock.

package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AddEdge records the undirected edge u-v.
//
// Steps:
//  1. Build the Edge with DefaultWeight and apply opts.
//  2. Append (v,w) to adjacency[u] and (u,w) to adjacency[v].
//  3. Append the Edge to the insertion log.
//
// No validation is performed: parallel edges, self-loops and negative
// weights are all stored as given.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) {
	e := Edge{From: u, To: v, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: e.Weight})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: e.Weight})
	g.edges = append(g.edges, e)
}

// HasNode reports whether id has appeared as an endpoint of any edge.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns every known node identifier in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns a copy of id's adjacency list in insertion order.
// Returns ErrNodeNotFound if id is unknown.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return slices.Clone(nbrs), nil
}

// NodeCount returns the number of known nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls, counting parallel edges separately.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns every recorded edge in AddEdge order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.edges)
}

// HasNegativeWeight reports whether any edge carries a weight below zero.
// Complexity: O(E).
func (g *Graph) HasNegativeWeight() bool {
	_, found := g.FirstNegativeEdge()

	return found
}

// FirstNegativeEdge returns the earliest-added edge with a negative weight.
// Complexity: O(E).
func (g *Graph) FirstNegativeEdge() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return e, true
		}
	}

	return Edge{}, false
}

// Clone returns a deep copy of the graph. Mutating the clone never affects g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacityHint(len(g.adjacency)))
	for id, nbrs := range g.adjacency {
		clone.adjacency[id] = slices.Clone(nbrs)
	}
	clone.edges = slices.Clone(g.edges)

	return clone
}
