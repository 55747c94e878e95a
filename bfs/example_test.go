package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkit/bfs"
	"github.com/katalvlaran/lvlkit/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 nodes).
// Node (i,j) is numbered 3*i+j.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				g.AddEdge(3*i+j, 3*i+j+1)
			}
			// connect to down neighbor
			if i+1 < 3 {
				g.AddEdge(3*i+j, 3*(i+1)+j)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Order follows non-decreasing Manhattan distance from the corner.
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleWalk shows the plain visitor form on the reference network.
func ExampleWalk() {
	g := core.NewGraph()
	g.AddEdge(0, 1, core.WithWeight(4))
	g.AddEdge(0, 2, core.WithWeight(1))
	g.AddEdge(2, 1, core.WithWeight(2))
	g.AddEdge(2, 3, core.WithWeight(5))
	g.AddEdge(1, 3, core.WithWeight(1))
	g.AddEdge(3, 4, core.WithWeight(3))

	_ = bfs.Walk(g, 0, func(id int) { fmt.Print(id, " ") })
	fmt.Println()
	// Output: 0 1 2 3 4
}
