package sssp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Achrafbennanizia/Dijkstra/graph"
	"github.com/Achrafbennanizia/Dijkstra/sssp"
)

// The reference graph: 4 nodes, shortest route to 4 goes 1->2->4 (cost 11),
// not through the cheaper first hop to 3.
func buildDiamond(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(2, 4, 1))
	require.NoError(t, g.AddEdge(3, 4, 9))
	return g
}

func TestSequentialDiamond(t *testing.T) {
	g := buildDiamond(t)
	res := sssp.RunSequential(g, 1)

	require.Equal(t, []int64{0, 10, 5, 11}, res.Dist[1:])
	require.Equal(t, []int32{1, 2, 4}, res.PathTo(4))
}

func TestSequentialSingleNode(t *testing.T) {
	g, err := graph.New(1)
	require.NoError(t, err)

	res := sssp.RunSequential(g, 1)
	require.Equal(t, int64(0), res.Dist[1])
	require.Equal(t, []int32{1}, res.PathTo(1))
}

func TestSequentialUnreachable(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 7))
	// Node 3 has no incoming edges.

	res := sssp.RunSequential(g, 1)
	require.False(t, res.Reachable(3))
	require.Equal(t, sssp.Infinity, res.Dist[3])
	require.Nil(t, res.PathTo(3))
	require.Equal(t, sssp.NoPredecessor, res.Pred[3])
}

func TestSequentialParallelEdges(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 9))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 5))

	res := sssp.RunSequential(g, 1)
	require.Equal(t, int64(3), res.Dist[2])
}

func TestSequentialZeroWeight(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))

	res := sssp.RunSequential(g, 1)
	require.Equal(t, int64(0), res.Dist[3])
	require.Equal(t, []int32{1, 2, 3}, res.PathTo(3))
}

// A node first reached expensively, then improved via a cheaper detour. The
// superseded frontier entry must be discarded as stale when popped, and the
// improved distance must never regress.
func TestSequentialStaleEntryDiscarded(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(3, 2, 2))

	res := sssp.RunSequential(g, 1)
	require.Equal(t, int64(3), res.Dist[2])
	require.Equal(t, int32(3), res.Pred[2])

	par := sssp.NewEngine(sssp.Options{Threshold: 1, Threads: 2}).Run(g, 1)
	require.Equal(t, res.Dist, par.Dist)
}

// Weights at the accepted maximum must never wrap a candidate distance
// negative; a route whose total cost would pass the unreached sentinel
// simply stays unreached.
func TestSequentialMaxWeightNoWrap(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, graph.MaxWeight))
	require.NoError(t, g.AddEdge(2, 3, graph.MaxWeight))

	res := sssp.RunSequential(g, 1)
	require.Equal(t, graph.MaxWeight, res.Dist[2])
	require.True(t, res.Reachable(2))
	require.False(t, res.Reachable(3))
	for _, d := range res.Dist[1:] {
		require.GreaterOrEqual(t, d, int64(0))
	}

	par := sssp.NewEngine(sssp.Options{Threshold: 1, Threads: 2}).Run(g, 1)
	require.Equal(t, res.Dist, par.Dist)
}

// After termination no edge can improve any distance, and every reached
// non-source node has a predecessor whose committed edge accounts for its
// distance.
func checkSettled(t *testing.T, g *graph.Graph, res sssp.Result) {
	t.Helper()
	for u := int32(1); int(u) < len(g.OutEdges); u++ {
		if !res.Reachable(u) {
			continue
		}
		for _, e := range g.OutEdges[u] {
			require.LessOrEqual(t, res.Dist[e.To], res.Dist[u]+e.Weight,
				"edge %d->%d can still relax", u, e.To)
		}
		if u == res.Source {
			continue
		}
		prev := res.Pred[u]
		require.True(t, g.Valid(prev))
		require.Equal(t, res.Dist[u], res.Dist[prev]+minEdgeWeight(t, g, prev, u))
	}
}

// The cheapest edge between a pair; the committed predecessor edge must be
// exactly this cheap, or the distance would still be improvable.
func minEdgeWeight(t *testing.T, g *graph.Graph, from, to int32) int64 {
	t.Helper()
	w := sssp.Infinity
	for _, e := range g.OutEdges[from] {
		if e.To == to && e.Weight < w {
			w = e.Weight
		}
	}
	require.NotEqual(t, sssp.Infinity, w, "no edge %d->%d", from, to)
	return w
}

func TestSequentialSettledRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		g, err := graph.Generate(graph.GenerateOptions{Nodes: 200, EdgesPerNode: 4, MaxWeight: 50}, rng)
		require.NoError(t, err)
		res := sssp.RunSequential(g, 1)
		checkSettled(t, g, res)
	}
}

// The reconstructed path must account exactly for the reported distance.
func checkPathCost(t *testing.T, g *graph.Graph, res sssp.Result, target int32) {
	t.Helper()
	path := res.PathTo(target)
	if !res.Reachable(target) {
		require.Nil(t, path)
		return
	}
	require.Equal(t, res.Source, path[0])
	require.Equal(t, target, path[len(path)-1])
	cost := int64(0)
	for i := 1; i < len(path); i++ {
		cost += minEdgeWeight(t, g, path[i-1], path[i])
	}
	require.Equal(t, res.Dist[target], cost)
}

func TestSequentialPathCostRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := graph.Generate(graph.GenerateOptions{Nodes: 300, EdgesPerNode: 3, MaxWeight: 100}, rng)
	require.NoError(t, err)
	res := sssp.RunSequential(g, 1)
	for target := int32(1); target <= 300; target++ {
		checkPathCost(t, g, res, target)
	}
}
