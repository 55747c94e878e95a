// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Neighbor, Edge types, options, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// DefaultWeight is the weight assigned by AddEdge when WithWeight is not given.
const DefaultWeight int64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node the graph has never seen.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Neighbor is one entry of a node's adjacency list: the node on the other end
// of the edge and the edge weight.
type Neighbor struct {
	// ID is the adjacent node identifier.
	ID int

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Edge is the record of a single AddEdge call, kept in insertion order.
type Edge struct {
	// From is the first endpoint passed to AddEdge.
	From int

	// To is the second endpoint passed to AddEdge.
	To int

	// Weight is the edge cost.
	Weight int64
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight overrides DefaultWeight for this edge.
func WithWeight(w int64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithCapacityHint pre-sizes the adjacency map for n nodes.
func WithCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[int][]Neighbor, n)
		}
	}
}

// Graph is a weighted undirected multigraph keyed by int node identifiers.
//
// mu guards adjacency and edges.
type Graph struct {
	mu sync.RWMutex

	// adjacency[u] = ordered neighbor list of u
	adjacency map[int][]Neighbor

	// edges records every AddEdge call in order; used for weight scans and cloning.
	edges []Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
