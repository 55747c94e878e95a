package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkit/bfs"
	"github.com/katalvlaran/lvlkit/core"
	"github.com/katalvlaran/lvlkit/dijkstra"
)

// sampleEdges is the weighted network the graph command runs on.
var sampleEdges = []core.Edge{
	{From: 0, To: 1, Weight: 4},
	{From: 0, To: 2, Weight: 1},
	{From: 2, To: 1, Weight: 2},
	{From: 2, To: 3, Weight: 5},
	{From: 1, To: 3, Weight: 1},
	{From: 3, To: 4, Weight: 3},
}

func sampleGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(5))
	for _, e := range sampleEdges {
		g.AddEdge(e.From, e.To, core.WithWeight(e.Weight))
	}
	return g
}

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Run Dijkstra and BFS over the sample network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, _ := cmd.Flags().GetInt("start")
			to, _ := cmd.Flags().GetInt("to")
			return c.showGraph(cmd.Context(), cmd.OutOrStdout(), start, to)
		},
	}

	cmd.Flags().IntP("start", "s", 0, "Source node")
	cmd.Flags().IntP("to", "t", 4, "Destination node for the printed path")

	return cmd
}

func (c *CLI) showGraph(ctx context.Context, w io.Writer, start, to int) error {
	g := sampleGraph()
	c.logger.Debug("graph built", zap.Int("nodes", g.NodeCount()), zap.Int("edges", g.EdgeCount()))

	dist, prev, err := dijkstra.Dijkstra(g, start, dijkstra.WithReturnPath())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "dijkstra failed"), "start", strconv.Itoa(start))
	}

	var sb strings.Builder
	for _, id := range g.Nodes() {
		d, ok := dist[id]
		if !ok || d == dijkstra.Infinity {
			fmt.Fprintf(&sb, "Node %d: unreachable | ", id)
			continue
		}
		fmt.Fprintf(&sb, "Node %d: %d | ", id, d)
	}
	if _, err = fmt.Fprintf(w, "Dijkstra from node %d: %s\n", start, strings.TrimSuffix(sb.String(), " ")); err != nil {
		return err
	}

	path, err := dijkstra.PathTo(prev, start, to)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		_, err = fmt.Fprintf(w, "Shortest path %d -> %d: unreachable\n", start, to)
	case err == nil:
		_, err = fmt.Fprintf(w, "Shortest path %d -> %d: %s\n", start, to, joinInts(path))
	}
	if err != nil {
		return err
	}

	res, err := bfs.BFS(g, start,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(id, depth int) error {
			c.logger.Debug("bfs visit", zap.Int("node", id), zap.Int("depth", depth))
			return nil
		}),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "bfs failed"), "start", strconv.Itoa(start))
	}

	_, err = fmt.Fprintf(w, "BFS from node %d: %s\n", start, joinInts(res.Order))
	return err
}
